package http

import (
	"net/http"

	"bookstore/internal/httpx"
	"bookstore/internal/recommend"
)

type RecommendHandler struct {
	svc *recommend.Service
}

func NewRecommendHandler(svc *recommend.Service) *RecommendHandler {
	return &RecommendHandler{svc: svc}
}

// Current serves the cached picks. While a refresh is outstanding the
// response says so, so clients can render placeholder slots.
func (h *RecommendHandler) Current(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, orEmpty(h.svc.Current()), map[string]interface{}{
		"fetching": h.svc.InFlight(),
	})
}

// Refresh is the explicit "suggest again" action. A request arriving
// while a fetch is already in flight gets 202 and the prior picks; it
// does not start a second fetch. Refresh failures also hand back the
// prior picks — recommendations never block or break browsing.
func (h *RecommendHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	if h.svc.InFlight() {
		httpx.JSONAccepted(w, orEmpty(h.svc.Current()), map[string]interface{}{
			"fetching": true,
		})
		return
	}

	books, err := h.svc.Refresh(r.Context())
	httpx.JSONSuccess(w, orEmpty(books), map[string]interface{}{
		"refreshed": err == nil,
	})
}
