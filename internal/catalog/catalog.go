// Package catalog holds the static storefront inventory. The catalog is
// loaded once and never written; its slice order doubles as the curated
// "popularity" order used by the default sort.
package catalog

import "bookstore/internal/entity"

// Sentinel category IDs. Neither names a real catalog partition.
const (
	CategoryAll = "all"
	CategoryNew = "new"
)

// Store owns the book and category lists. All accessors return copies of
// the slice headers over shared immutable backing data, so callers may not
// mutate the records they receive.
type Store struct {
	books      []entity.Book
	categories []entity.Category
	byID       map[string]int
}

// New builds a Store over the compiled-in catalog.
func New() *Store {
	return newStore(books, categories)
}

// NewWith builds a Store over an explicit book list. Used by tests.
func NewWith(bs []entity.Book, cats []entity.Category) *Store {
	return newStore(bs, cats)
}

func newStore(bs []entity.Book, cats []entity.Category) *Store {
	byID := make(map[string]int, len(bs))
	for i, b := range bs {
		byID[b.ID] = i
	}
	return &Store{books: bs, categories: cats, byID: byID}
}

// Books returns the full catalog in curation order.
func (s *Store) Books() []entity.Book {
	return s.books
}

// Categories returns the sidebar category list, sentinels included.
func (s *Store) Categories() []entity.Category {
	return s.categories
}

// Get looks a book up by ID.
func (s *Store) Get(id string) (entity.Book, bool) {
	i, ok := s.byID[id]
	if !ok {
		return entity.Book{}, false
	}
	return s.books[i], true
}

// Has reports whether the ID names a catalog book.
func (s *Store) Has(id string) bool {
	_, ok := s.byID[id]
	return ok
}

// NewArrivals returns the books flagged as new, in catalog order.
func (s *Store) NewArrivals() []entity.Book {
	var out []entity.Book
	for _, b := range s.books {
		if b.IsNew {
			out = append(out, b)
		}
	}
	return out
}

// Authors returns the distinct author names in catalog order.
func (s *Store) Authors() []string {
	seen := make(map[string]bool, len(s.books))
	var out []string
	for _, b := range s.books {
		if !seen[b.Author] {
			seen[b.Author] = true
			out = append(out, b.Author)
		}
	}
	return out
}

// PriceBounds returns the lowest and highest price in the catalog, or
// (0, 0) for an empty catalog.
func (s *Store) PriceBounds() (min, max int) {
	if len(s.books) == 0 {
		return 0, 0
	}
	min, max = s.books[0].Price, s.books[0].Price
	for _, b := range s.books[1:] {
		if b.Price < min {
			min = b.Price
		}
		if b.Price > max {
			max = b.Price
		}
	}
	return min, max
}
