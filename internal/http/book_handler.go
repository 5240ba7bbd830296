package http

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"bookstore/internal/browse"
	"bookstore/internal/catalog"
	"bookstore/internal/entity"
	"bookstore/internal/httpx"
	"bookstore/internal/prefs"
)

type BookHandler struct {
	catalog   *catalog.Store
	prefs     *prefs.Store
	publicURL string
}

func NewBookHandler(cat *catalog.Store, pf *prefs.Store, publicURL string) *BookHandler {
	return &BookHandler{catalog: cat, prefs: pf, publicURL: strings.TrimRight(publicURL, "/")}
}

// List serves the storefront listing. Filter criteria, sort key and page
// all come from the query string on every request, so a criteria change
// naturally lands the client back on the page it asks for — and stale
// page numbers on a shrunk result set clamp instead of failing.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	criteria := browse.Criteria{
		Category: q.Get("category"),
		Query:    q.Get("q"),
	}
	if v, err := strconv.Atoi(q.Get("price_min")); err == nil && v > 0 {
		criteria.PriceMin = v
	}
	if v, err := strconv.Atoi(q.Get("price_max")); err == nil && v > 0 {
		criteria.PriceMax = v
	}
	if v, err := strconv.ParseFloat(q.Get("min_rating"), 64); err == nil && v > 0 {
		criteria.MinRating = v
	}
	if authors := q.Get("authors"); authors != "" {
		for _, a := range strings.Split(authors, ",") {
			if a = strings.TrimSpace(a); a != "" {
				criteria.Authors = append(criteria.Authors, a)
			}
		}
	}

	page, _ := strconv.Atoi(q.Get("page"))
	result := browse.Listing(h.catalog.Books(), criteria, browse.ParseSort(q.Get("sort")), page)

	books := result.Books
	if books == nil {
		books = []entity.Book{}
	}
	httpx.JSONSuccess(w, books, map[string]interface{}{
		"page":        result.Number,
		"page_size":   result.PageSize,
		"total":       result.TotalItems,
		"total_pages": result.TotalPages,
	})
}

type bookDetail struct {
	entity.Book
	ReadLater  bool `json:"readLater"`
	Bookmarked bool `json:"bookmarked"`
}

// Get serves the detail view and records the interaction.
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	book, ok := h.catalog.Get(id)
	if !ok {
		h.notFound(w, id)
		return
	}

	h.prefs.RecordInteraction(book)

	saved := false
	for _, b := range h.prefs.ReadLater() {
		if b.ID == id {
			saved = true
			break
		}
	}
	httpx.JSONSuccess(w, bookDetail{
		Book:       book,
		ReadLater:  saved,
		Bookmarked: h.prefs.IsBookmarked(id),
	}, nil)
}

// NewArrivals serves the "new in store" rail.
func (h *BookHandler) NewArrivals(w http.ResponseWriter, r *http.Request) {
	books := h.catalog.NewArrivals()
	if books == nil {
		books = []entity.Book{}
	}
	httpx.JSONSuccess(w, books, nil)
}

// Categories serves the sidebar category list.
func (h *BookHandler) Categories(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, h.catalog.Categories(), nil)
}

type shareLink struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
	URL  string `json:"url"`
}

type shareResponse struct {
	URL   string      `json:"url"`
	Links []shareLink `json:"links"`
}

// Share builds the canonical link for a book plus ready-made share URLs
// for the usual networks.
func (h *BookHandler) Share(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	book, ok := h.catalog.Get(id)
	if !ok {
		h.notFound(w, id)
		return
	}

	shareURL := fmt.Sprintf("%s/book/%s", h.publicURL, book.ID)
	esc := url.QueryEscape

	httpx.JSONSuccess(w, shareResponse{
		URL: shareURL,
		Links: []shareLink{
			{
				Name: "Telegram",
				Icon: "✈️",
				URL: fmt.Sprintf("https://t.me/share/url?url=%s&text=%s", esc(shareURL),
					esc(fmt.Sprintf("Check out %q on Awash Digital Book Store!", book.Title))),
			},
			{
				Name: "Facebook",
				Icon: "👥",
				URL:  fmt.Sprintf("https://www.facebook.com/sharer/sharer.php?u=%s", esc(shareURL)),
			},
			{
				Name: "X (Twitter)",
				Icon: "✖️",
				URL: fmt.Sprintf("https://twitter.com/intent/tweet?url=%s&text=%s", esc(shareURL),
					esc(fmt.Sprintf("Reading %q by %s", book.Title, book.Author))),
			},
			{
				Name: "WhatsApp",
				Icon: "💬",
				URL: fmt.Sprintf("https://wa.me/?text=%s",
					esc(fmt.Sprintf("I found this book on Awash: %s - %s", book.Title, shareURL))),
			},
		},
	}, nil)
}

func (h *BookHandler) notFound(w http.ResponseWriter, id string) {
	httpx.JSONError(w, http.StatusNotFound, "BOOK_NOT_FOUND",
		fmt.Sprintf("no book with id %q; browse the catalog at /api/books", id), nil)
}
