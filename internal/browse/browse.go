// Package browse derives the storefront listing: a pure
// filter/sort/paginate pipeline over the catalog. Given the same catalog,
// criteria, sort key and page number it always produces the same page;
// there is no intermediate state and no error path — degenerate input
// yields an empty page.
package browse

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"bookstore/internal/catalog"
	"bookstore/internal/entity"
)

// PageSize is the fixed number of books per listing page.
const PageSize = 12

// SortOption is the closed set of listing sort keys.
type SortOption string

const (
	SortDefault   SortOption = "default"
	SortTitle     SortOption = "title"
	SortAuthor    SortOption = "author"
	SortPriceLow  SortOption = "price-low"
	SortPriceHigh SortOption = "price-high"
)

// ParseSort maps a query value onto a SortOption, falling back to the
// default catalog order for anything unknown.
func ParseSort(s string) SortOption {
	switch SortOption(s) {
	case SortTitle, SortAuthor, SortPriceLow, SortPriceHigh:
		return SortOption(s)
	default:
		return SortDefault
	}
}

// Criteria is the ephemeral filter state. The zero value matches every
// book: an empty category behaves like the "all" sentinel, an empty query
// and author set match everything, and PriceMax == 0 means no upper bound.
type Criteria struct {
	Category  string
	Query     string
	PriceMin  int
	PriceMax  int
	Authors   []string
	MinRating float64
}

func (c Criteria) matches(b entity.Book) bool {
	switch c.Category {
	case "", catalog.CategoryAll:
	case catalog.CategoryNew:
		if !b.IsNew {
			return false
		}
	default:
		if b.Category != c.Category {
			return false
		}
	}

	if q := strings.ToLower(strings.TrimSpace(c.Query)); q != "" {
		if !strings.Contains(strings.ToLower(b.Title), q) &&
			!strings.Contains(strings.ToLower(b.Author), q) {
			return false
		}
	}

	if b.Price < c.PriceMin {
		return false
	}
	if c.PriceMax > 0 && b.Price > c.PriceMax {
		return false
	}

	if b.Rating < c.MinRating {
		return false
	}

	if len(c.Authors) > 0 {
		found := false
		for _, a := range c.Authors {
			if a == b.Author {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

// Filter returns the books matching every active predicate, in catalog
// order.
func Filter(books []entity.Book, c Criteria) []entity.Book {
	var out []entity.Book
	for _, b := range books {
		if c.matches(b) {
			out = append(out, b)
		}
	}
	return out
}

// Sort orders books by the given key. The input slice is not modified;
// SortDefault returns it as-is (catalog order is the curated popularity
// order). Title and author sorts collate for Ethiopic script rather than
// comparing bytes, and all sorts are stable.
func Sort(books []entity.Book, by SortOption) []entity.Book {
	if by == SortDefault || len(books) < 2 {
		return books
	}

	out := make([]entity.Book, len(books))
	copy(out, books)

	switch by {
	case SortTitle:
		col := collate.New(language.Amharic)
		sort.SliceStable(out, func(i, j int) bool {
			return col.CompareString(out[i].Title, out[j].Title) < 0
		})
	case SortAuthor:
		col := collate.New(language.Amharic)
		sort.SliceStable(out, func(i, j int) bool {
			return col.CompareString(out[i].Author, out[j].Author) < 0
		})
	case SortPriceLow:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price < out[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Price > out[j].Price
		})
	}
	return out
}

// Page is one fixed-size slice of a derived listing.
type Page struct {
	Books      []entity.Book
	Number     int
	PageSize   int
	TotalItems int
	TotalPages int
}

// Paginate slices the list into pages of PageSize and returns the
// requested one. Out-of-range page numbers clamp into [1, TotalPages];
// an empty list yields page 1 of 0.
func Paginate(books []entity.Book, page int) Page {
	total := len(books)
	pages := (total + PageSize - 1) / PageSize

	if page < 1 {
		page = 1
	}
	if pages > 0 && page > pages {
		page = pages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Books:      books[start:end],
		Number:     page,
		PageSize:   PageSize,
		TotalItems: total,
		TotalPages: pages,
	}
}

// Listing runs the whole pipeline: filter, sort, paginate.
func Listing(books []entity.Book, c Criteria, by SortOption, page int) Page {
	return Paginate(Sort(Filter(books, c), by), page)
}
