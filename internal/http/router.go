// Package http wires the storefront handlers onto the routing surface.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"bookstore/internal/httpx"
)

const maxBodyBytes = 64 << 10

// RouterConfig carries everything the routing surface needs.
type RouterConfig struct {
	Books          *BookHandler
	Prefs          *PrefsHandler
	Recommend      *RecommendHandler
	Librarian      *LibrarianHandler
	Logger         zerolog.Logger
	AllowedOrigins []string
	// AIRateRPS throttles the endpoints that reach the generative
	// service. Zero disables the limiter.
	AIRateRPS   float64
	AIRateBurst int
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(httpx.RequestIDMiddleware)
	r.Use(httpx.AccessLogMiddleware(cfg.Logger))
	r.Use(httpx.RecoveryMiddleware(cfg.Logger))
	r.Use(httpx.SecurityHeadersMiddleware)
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(httpx.CORSMiddleware(cfg.AllowedOrigins))
	}
	r.Use(httpx.RequestSizeLimitMiddleware(maxBodyBytes))

	var aiLimit func(http.Handler) http.Handler
	if cfg.AIRateRPS > 0 {
		aiLimit = httpx.NewRateLimitMiddleware(cfg.AIRateRPS, cfg.AIRateBurst).Middleware
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		httpx.JSONSuccess(w, map[string]string{
			"name":  "Awash Digital Book Store",
			"books": "/api/books",
		}, nil)
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/books", cfg.Books.List)
		r.Get("/books/new", cfg.Books.NewArrivals)
		r.Get("/books/{id}", cfg.Books.Get)
		r.Get("/books/{id}/share", cfg.Books.Share)
		r.Get("/categories", cfg.Books.Categories)

		r.Get("/read-later", cfg.Prefs.ListReadLater)
		r.Post("/read-later/{id}", cfg.Prefs.ToggleReadLater)
		r.Get("/bookmarks", cfg.Prefs.ListBookmarks)
		r.Post("/bookmarks/{id}", cfg.Prefs.ToggleBookmark)
		r.Get("/recently-viewed", cfg.Prefs.RecentlyViewed)
		r.Get("/theme", cfg.Prefs.GetTheme)
		r.Put("/theme", cfg.Prefs.SetTheme)

		r.Group(func(r chi.Router) {
			if aiLimit != nil {
				r.Use(aiLimit)
			}
			r.Get("/recommendations", cfg.Recommend.Current)
			r.Post("/recommendations/refresh", cfg.Recommend.Refresh)
			r.Get("/librarian", cfg.Librarian.History)
			r.Post("/librarian", cfg.Librarian.Send)
			r.Delete("/librarian", cfg.Librarian.Clear)
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.JSONError(w, http.StatusNotFound, "NOT_FOUND", "unknown route; the catalog lives at /api/books", nil)
	})

	return r
}
