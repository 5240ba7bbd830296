package http

import (
	"net/http"

	"github.com/goccy/go-json"

	"bookstore/internal/httpx"
	"bookstore/internal/librarian"
)

type LibrarianHandler struct {
	svc *librarian.Service
}

func NewLibrarianHandler(svc *librarian.Service) *LibrarianHandler {
	return &LibrarianHandler{svc: svc}
}

func (h *LibrarianHandler) History(w http.ResponseWriter, r *http.Request) {
	httpx.JSONSuccess(w, h.svc.History(), nil)
}

func (h *LibrarianHandler) Send(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "INVALID_BODY", "expected JSON body with a message field", nil)
		return
	}

	reply, err := h.svc.Send(r.Context(), body.Message)
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "EMPTY_MESSAGE", "message must not be empty", []httpx.ErrorDetail{
			{Field: "message", Message: "required"},
		})
		return
	}
	httpx.JSONSuccess(w, reply, nil)
}

func (h *LibrarianHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Clear(); err != nil {
		httpx.JSONErrorWithRequest(r, w, http.StatusInternalServerError, "PERSIST_FAILED", "could not clear history", nil)
		return
	}
	httpx.JSONSuccess(w, h.svc.History(), nil)
}
