package browse

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"bookstore/internal/catalog"
	"bookstore/internal/entity"
)

func testBooks() []entity.Book {
	return catalog.New().Books()
}

func TestFilter_AllPredicatesHold(t *testing.T) {
	books := testBooks()

	tests := []struct {
		name string
		c    Criteria
	}{
		{"category only", Criteria{Category: "history"}},
		{"new sentinel", Criteria{Category: catalog.CategoryNew}},
		{"search", Criteria{Query: "በአሉ"}},
		{"price band", Criteria{PriceMin: 200, PriceMax: 400}},
		{"rating floor", Criteria{MinRating: 4.8}},
		{"author set", Criteria{Authors: []string{"James Clear", "Paulo Coelho"}}},
		{"combined", Criteria{Category: "fiction", Query: "the", PriceMin: 100, PriceMax: 500, MinRating: 4.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(books, tt.c)
			assert.LessOrEqual(t, len(got), len(books))
			for _, b := range got {
				assert.True(t, tt.c.matches(b), "book %s escaped predicate", b.ID)
			}
		})
	}
}

func TestFilter_CategorySentinels(t *testing.T) {
	books := testBooks()

	assert.Len(t, Filter(books, Criteria{Category: catalog.CategoryAll}), len(books))
	assert.Len(t, Filter(books, Criteria{}), len(books))

	for _, b := range Filter(books, Criteria{Category: catalog.CategoryNew}) {
		assert.True(t, b.IsNew)
	}
}

func TestFilter_SearchMatchesTitleOrAuthor(t *testing.T) {
	books := []entity.Book{
		{ID: "1", Title: "Deep Work", Author: "Cal Newport"},
		{ID: "2", Title: "Sapiens", Author: "Yuval Noah Harari"},
	}

	got := Filter(books, Criteria{Query: "deep"})
	assert.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	got = Filter(books, Criteria{Query: "HARARI"})
	assert.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	assert.Len(t, Filter(books, Criteria{Query: "  "}), 2)
}

func TestFilter_PriceBandScenario(t *testing.T) {
	// A 350 ETB fiction title sits inside [300,400] and outside [0,100].
	books := []entity.Book{{ID: "x", Title: "t", Author: "a", Price: 350, Category: "fiction"}}

	assert.Len(t, Filter(books, Criteria{Category: "fiction", PriceMin: 300, PriceMax: 400}), 1)
	assert.Empty(t, Filter(books, Criteria{Category: "fiction", PriceMin: 0, PriceMax: 100}))
}

func TestFilter_EmptyCatalog(t *testing.T) {
	assert.Empty(t, Filter(nil, Criteria{Category: "fiction", Query: "x"}))
}

func TestSort_PriceOrders(t *testing.T) {
	books := testBooks()

	asc := Sort(books, SortPriceLow)
	for i := 1; i < len(asc); i++ {
		assert.LessOrEqual(t, asc[i-1].Price, asc[i].Price)
	}

	desc := Sort(books, SortPriceHigh)
	for i := 1; i < len(desc); i++ {
		assert.GreaterOrEqual(t, desc[i-1].Price, desc[i].Price)
	}
}

func TestSort_AscendingReversesDescendingForDistinctPrices(t *testing.T) {
	books := []entity.Book{
		{ID: "a", Price: 300},
		{ID: "b", Price: 100},
		{ID: "c", Price: 500},
		{ID: "d", Price: 200},
	}

	asc := Sort(books, SortPriceLow)
	desc := Sort(books, SortPriceHigh)
	for i := range asc {
		assert.Equal(t, asc[i].ID, desc[len(desc)-1-i].ID)
	}
}

func TestSort_StablePreservesCatalogOrderOnTies(t *testing.T) {
	books := []entity.Book{
		{ID: "a", Price: 100},
		{ID: "b", Price: 100},
		{ID: "c", Price: 100},
	}
	got := Sort(books, SortPriceLow)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.Equal(t, "c", got[2].ID)
}

func TestSort_TitleUsesCollationNotBytes(t *testing.T) {
	books := []entity.Book{
		{ID: "am", Title: "ፍቅር እስከ መቃብር"},
		{ID: "en", Title: "Atomic Habits"},
	}
	got := Sort(books, SortTitle)
	assert.Len(t, got, 2)
	// Default order must be untouched by the copy-and-sort.
	assert.Equal(t, "am", books[0].ID)
}

func TestSort_DefaultKeepsCatalogOrder(t *testing.T) {
	books := testBooks()
	got := Sort(books, SortDefault)
	for i := range books {
		assert.Equal(t, books[i].ID, got[i].ID)
	}
}

func TestPaginate_ConcatenationReproducesList(t *testing.T) {
	books := make([]entity.Book, 30)
	for i := range books {
		books[i] = entity.Book{ID: fmt.Sprintf("b%d", i)}
	}

	first := Paginate(books, 1)
	assert.Equal(t, 3, first.TotalPages)
	assert.Equal(t, 30, first.TotalItems)

	var all []entity.Book
	for p := 1; p <= first.TotalPages; p++ {
		page := Paginate(books, p)
		all = append(all, page.Books...)
	}
	assert.Len(t, all, len(books))
	for i := range books {
		assert.Equal(t, books[i].ID, all[i].ID)
	}
}

func TestPaginate_Clamping(t *testing.T) {
	books := make([]entity.Book, 15) // 2 pages

	assert.Equal(t, 1, Paginate(books, 0).Number)
	assert.Equal(t, 1, Paginate(books, -3).Number)
	assert.Equal(t, 2, Paginate(books, 99).Number)
	assert.Len(t, Paginate(books, 2).Books, 3)
}

func TestPaginate_Empty(t *testing.T) {
	p := Paginate(nil, 5)
	assert.Empty(t, p.Books)
	assert.Equal(t, 1, p.Number)
	assert.Zero(t, p.TotalPages)
	assert.Zero(t, p.TotalItems)
}

func TestListing_FullPipeline(t *testing.T) {
	p := Listing(testBooks(), Criteria{Category: "fiction"}, SortPriceLow, 1)
	assert.NotEmpty(t, p.Books)
	assert.Equal(t, PageSize, p.PageSize)
	for i, b := range p.Books {
		assert.Equal(t, "fiction", b.Category)
		if i > 0 {
			assert.LessOrEqual(t, p.Books[i-1].Price, b.Price)
		}
	}
}
