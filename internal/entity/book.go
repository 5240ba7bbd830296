package entity

// Book is a single catalog record. Prices are whole ETB units, ratings run
// 0.0 through 5.0. Books are immutable after catalog load; everything
// downstream holds IDs or read-only references.
type Book struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Author       string   `json:"author"`
	Description  string   `json:"description"`
	Price        int      `json:"price"`
	Category     string   `json:"category"`
	CoverImage   string   `json:"coverImage"`
	Rating       float64  `json:"rating"`
	Year         string   `json:"year,omitempty"`
	PreviewPages []string `json:"previewPages,omitempty"`
	IsNew        bool     `json:"isNew,omitempty"`
}

// Category is a filter shortcut shown in the storefront sidebar. The "all"
// and "new" entries are synthetic: they select across real categories
// rather than naming one.
type Category struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}
