package catalog

import "bookstore/internal/entity"

var categories = []entity.Category{
	{ID: "all", Label: "ሁሉም", Icon: "📚"},
	{ID: "new", Label: "አዲስ የገቡ", Icon: "✨"},
	{ID: "fiction", Label: "ልብ ወለድ", Icon: "🎨"},
	{ID: "history", Label: "ታሪክ", Icon: "🏛️"},
	{ID: "romance", Label: "ፍቅር", Icon: "💖"},
	{ID: "self-help", Label: "ራስን ማገዝ", Icon: "🧘"},
	{ID: "kids", Label: "ለልጆች", Icon: "🧸"},
}

var books = []entity.Book{
	{
		ID:          "1",
		Title:       "ፍቅር እስከ መቃብር",
		Author:      "ሀዲስ አለማየሁ",
		Description: "የኢትዮጵያ ስነ-ጽሁፍ ድንቅ ስራ የሆነው ይህ መፅሀፍ ስለ ፍቅር፣ ስለ ማህበራዊ ህይወት እና ስለ ባህል በጥልቀት ይተርካል።",
		Price:       350,
		Category:    "fiction",
		CoverImage:  "https://images.unsplash.com/photo-1589998059171-988d887df646?q=80&w=800&h=1067&auto=format&fit=crop",
		Rating:      4.9,
		Year:        "1958",
		IsNew:       true,
		PreviewPages: []string{
			"ምዕራፍ አንድ፡ የመጀመርያው ገጽ። በኢትዮጵያ ስነ-ጽሁፍ ውስጥ ትልቅ ቦታ ያለው ይህ ድንቅ ስራ ሲጀምር እንዲህ ይላል...",
			"ፍቅር ማለት ምን እንደሆነ የሚገልጽ ድንቅ ምንባብ። ቦጋለ እና ሰብለ ወንጌል ለመጀመርያ ጊዜ የተገናኙበት ቅጽበት...",
			"የማህበራዊ ህይወት እና የባህል ግጭቶች የሚታዩበት ጥልቅ የታሪክ ክፍል...",
		},
	},
	{
		ID:          "2",
		Title:       "አደፍርስ",
		Author:      "ዳኛቸው ወርቁ",
		Description: "በዘመናዊ የኢትዮጵያ ስነ-ጽሁፍ ውስጥ ልዩ ስፍራ ያለውና የሰውን ልጅ ማንነት የሚመረምር ድንቅ ስራ።",
		Price:       280,
		Category:    "fiction",
		CoverImage:  "https://picsum.photos/seed/book2/400/600",
		Rating:      4.7,
		Year:        "1962",
		PreviewPages: []string{
			"ገጽ ፩፡ አደፍርስ በሃሳብ ተውጧል። በአዲስ አበባ ጎዳናዎች ላይ ሲራመድ የነበረው ጥልቅ ትዝታ...",
			"የሰው ልጅ ማንነት እና የዘመናዊነት ግጭት በዳኛቸው ወርቁ ብዕር ሲገለጽ...",
			"የፍልስፍና እና የታሪክ ውህደት የሚታይበት ድንቅ ገጽ...",
		},
	},
	{
		ID:          "3",
		Title:       "ኦሮማይ",
		Author:      "በአሉ ግርማ",
		Description: "የታሪክ፣ የፖለቲካ እና የሰው ልጅ እልህ የሚታይበት፣ በኢትዮጵያ ስነ-ጽሁፍ ውስጥ ትልቅ አነጋጋሪነት የነበረው መፅሀፍ።",
		Price:       320,
		Category:    "history",
		CoverImage:  "https://picsum.photos/seed/book3/400/600",
		Rating:      4.8,
		Year:        "1983",
		IsNew:       true,
		PreviewPages: []string{
			"ምዕራፍ አንድ፡ የቀይ ኮከብ ዘመቻ። የአስመራ ከተማ ግርግር እና የወታደራዊ እንቅስቃሴው መጀመሪያ...",
			"ጸጋዬ እና አሊማ ለመጀመሪያ ጊዜ የተያዩበት ቅጽበት። በጦርነት መሃል የበቀለ ፍቅር...",
			"የእልህ እና የፖለቲካ ውጥረት የሚታይበት አነጋጋሪ ክፍል...",
		},
	},
	{
		ID:          "4",
		Title:       "ሰመመን",
		Author:      "ሲሳይ ንጉሱ",
		Description: "በወጣቶች ህይወት and በፍቅር ዙሪያ የሚያጠነጥን፣ በርካታ አንባቢዎችን ቀልብ የገዛ መፅሀፍ።",
		Price:       250,
		Category:    "romance",
		CoverImage:  "https://picsum.photos/seed/book4/400/600",
		Rating:      4.5,
		Year:        "1987",
		PreviewPages: []string{
			"በዩኒቨርሲቲ ግቢ ውስጥ የጀመረው የሰመመን ታሪክ። የወጣቶች ህልም እና ተስፋ...",
			"የፍቅር ሰመመን ውስጥ የገቡት ገጸ-ባህሪያት ስሜት የሚገልጽ ክፍል...",
			"የህይወት ፈተናዎች እና የፍቅር ጥንካሬ የሚታይበት ድንቅ ምዕራፍ...",
		},
	},
	{
		ID:          "5",
		Title:       "የኢትዮጵያ ታሪክ",
		Author:      "ተክለፃዲቅ መኩሪያ",
		Description: "ስለ ኢትዮጵያ ዘመናዊ ታሪክ ግንዛቤን የሚሰጥ መሰረታዊ መፅሀፍ።",
		Price:       450,
		Category:    "history",
		CoverImage:  "https://picsum.photos/seed/book5/400/600",
		Rating:      4.9,
		Year:        "1945",
		IsNew:       true,
	},
	{
		ID:          "6",
		Title:       "Atomic Habits",
		Author:      "James Clear",
		Description: "An easy & proven way to build good habits & break bad ones.",
		Price:       420,
		Category:    "self-help",
		CoverImage:  "https://picsum.photos/seed/book6/400/600",
		Rating:      4.8,
		Year:        "2018",
		IsNew:       true,
	},
	{
		ID:          "7",
		Title:       "የቀይ ኮከብ ጥሪ",
		Author:      "በአሉ ግርማ",
		Description: "ስለ ኢትዮጵያ አብዮት እና ስለ ሶማሊያ ጦርነት የሚተርክ ድንቅ ስራ።",
		Price:       310,
		Category:    "history",
		CoverImage:  "https://picsum.photos/seed/book7/400/600",
		Rating:      4.6,
		Year:        "1980",
	},
	{
		ID:          "8",
		Title:       "ልጅነት",
		Author:      "ዘነበ ወላ",
		Description: "ስለ ልጅነት ትዝታ እና ስለ ኢትዮጵያ ማህበረሰብ የሚተርክ መፅሀፍ።",
		Price:       180,
		Category:    "fiction",
		CoverImage:  "https://picsum.photos/seed/book8/400/600",
		Rating:      4.4,
		Year:        "2005",
	},
	{
		ID:          "9",
		Title:       "ተልባ",
		Author:      "አዳም ረታ",
		Description: "የአዳም ረታን ልዩ የፅሁፍ ስልት የሚያሳይ ድንቅ የልብ ወለድ ስራ።",
		Price:       290,
		Category:    "fiction",
		CoverImage:  "https://picsum.photos/seed/book9/400/600",
		Rating:      4.7,
		Year:        "2010",
	},
	{
		ID:          "10",
		Title:       "The Alchemist",
		Author:      "Paulo Coelho",
		Description: "A fable about following your dreams and listening to your heart.",
		Price:       380,
		Category:    "fiction",
		CoverImage:  "https://picsum.photos/seed/book10/400/600",
		Rating:      4.9,
		Year:        "1988",
	},
	{
		ID:          "11",
		Title:       "ባለ እጅ ስራው",
		Author:      "ስብሃት ገብረእግዚአብሔር",
		Description: "ስለ ህይወት እና ስለ ፍልስፍና የሚተርኩ የስብሃት ድንቅ አጫጭር ታሪኮች።",
		Price:       220,
		Category:    "fiction",
		CoverImage:  "https://picsum.photos/seed/book11/400/600",
		Rating:      4.8,
		Year:        "1995",
	},
	{
		ID:          "12",
		Title:       "Deep Work",
		Author:      "Cal Newport",
		Description: "Rules for focused success in a distracted world.",
		Price:       450,
		Category:    "self-help",
		CoverImage:  "https://picsum.photos/seed/book12/400/600",
		Rating:      4.7,
		Year:        "2016",
	},
	{
		ID:          "13",
		Title:       "ሀገሬ",
		Author:      "ፀጋዬ ገብረመድህን",
		Description: "ስለ ኢትዮጵያዊነት እና ስለ ሀገር ፍቅር የሚሰብኩ ድንቅ ግጥሞች።",
		Price:       150,
		Category:    "fiction",
		CoverImage:  "https://picsum.photos/seed/book13/400/600",
		Rating:      5.0,
		Year:        "1970",
	},
	{
		ID:          "14",
		Title:       "The Power of Now",
		Author:      "Eckhart Tolle",
		Description: "A guide to spiritual enlightenment.",
		Price:       410,
		Category:    "self-help",
		CoverImage:  "https://picsum.photos/seed/book14/400/600",
		Rating:      4.6,
		Year:        "1997",
	},
	{
		ID:          "15",
		Title:       "Sapiens",
		Author:      "Yuval Noah Harari",
		Description: "A brief history of humankind.",
		Price:       550,
		Category:    "history",
		CoverImage:  "https://picsum.photos/seed/book15/400/600",
		Rating:      4.8,
		Year:        "2011",
	},
	{
		ID:          "16",
		Title:       "Thinking, Fast and Slow",
		Author:      "Daniel Kahneman",
		Description: "An exploration of the two systems that drive the way we think.",
		Price:       490,
		Category:    "self-help",
		CoverImage:  "https://picsum.photos/seed/book16/400/600",
		Rating:      4.7,
		Year:        "2011",
	},
	{
		ID:          "17",
		Title:       "መቅደስ",
		Author:      "ይስማዕከ ወርቁ",
		Description: "ዘመናዊ የኢትዮጵያ ስነ-ጽሁፍ ፍጥረት የሆነ አሳታሚ ስራ።",
		Price:       260,
		Category:    "fiction",
		CoverImage:  "https://picsum.photos/seed/book17/400/600",
		Rating:      4.5,
		Year:        "2014",
		IsNew:       true,
	},
	{
		ID:          "18",
		Title:       "ኑሮ በዘዴ",
		Author:      "ዶ/ር ምህረት ደበበ",
		Description: "የስነ-ልቦና እውቀትን ለህይወት ስኬት የሚጠቀም ድንቅ መፅሀፍ።",
		Price:       340,
		Category:    "self-help",
		CoverImage:  "https://picsum.photos/seed/book18/400/600",
		Rating:      4.8,
		Year:        "2013",
	},
}
