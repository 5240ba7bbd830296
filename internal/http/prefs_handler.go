package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"bookstore/internal/catalog"
	"bookstore/internal/entity"
	"bookstore/internal/httpx"
	"bookstore/internal/prefs"
)

type PrefsHandler struct {
	catalog *catalog.Store
	prefs   *prefs.Store
}

func NewPrefsHandler(cat *catalog.Store, pf *prefs.Store) *PrefsHandler {
	return &PrefsHandler{catalog: cat, prefs: pf}
}

func (h *PrefsHandler) ListReadLater(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, orEmpty(h.prefs.ReadLater()), nil)
}

// ToggleReadLater flips the saved state for one book and reports it.
func (h *PrefsHandler) ToggleReadLater(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	book, ok := h.catalog.Get(id)
	if !ok {
		httpx.JSONError(w, http.StatusNotFound, "BOOK_NOT_FOUND", "unknown book id", nil)
		return
	}

	saved, err := h.prefs.ToggleReadLater(book)
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "PERSIST_FAILED", "could not save preference", nil)
		return
	}
	httpx.JSONSuccess(w, map[string]interface{}{"id": id, "saved": saved}, nil)
}

func (h *PrefsHandler) ListBookmarks(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, orEmpty(h.prefs.Bookmarks()), nil)
}

func (h *PrefsHandler) ToggleBookmark(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !h.catalog.Has(id) {
		httpx.JSONError(w, http.StatusNotFound, "BOOK_NOT_FOUND", "unknown book id", nil)
		return
	}

	saved, err := h.prefs.ToggleBookmark(id)
	if err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "PERSIST_FAILED", "could not save preference", nil)
		return
	}
	httpx.JSONSuccess(w, map[string]interface{}{"id": id, "bookmarked": saved}, nil)
}

func (h *PrefsHandler) RecentlyViewed(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, orEmpty(h.prefs.RecentlyViewed()), nil)
}

func (h *PrefsHandler) GetTheme(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, map[string]string{"theme": h.prefs.Theme()}, nil)
}

func (h *PrefsHandler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Theme string `json:"theme"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "INVALID_BODY", "expected JSON body with a theme field", nil)
		return
	}

	if err := h.prefs.SetTheme(body.Theme); err != nil {
		if errors.Is(err, prefs.ErrInvalidTheme) {
			httpx.JSONError(w, http.StatusBadRequest, "INVALID_THEME", `theme must be "dark" or "light"`, []httpx.ErrorDetail{
				{Field: "theme", Message: "unknown value"},
			})
			return
		}
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "PERSIST_FAILED", "could not save preference", nil)
		return
	}
	httpx.JSONSuccess(w, map[string]string{"theme": body.Theme}, nil)
}

func orEmpty(books []entity.Book) []entity.Book {
	if books == nil {
		return []entity.Book{}
	}
	return books
}
