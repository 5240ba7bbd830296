package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"bookstore/internal/catalog"
	"bookstore/internal/librarian"
	"bookstore/internal/platform/gemini"
	"bookstore/internal/prefs"
	"bookstore/internal/recommend"
	"bookstore/internal/store"
)

// stubAI stands in for the gemini client on both call paths.
type stubAI struct {
	ids  []string
	text string
	err  error
}

func (s *stubAI) GenerateStrings(ctx context.Context, prompt string) ([]string, error) {
	return s.ids, s.err
}

func (s *stubAI) GenerateText(ctx context.Context, system string, history []gemini.Content, temp float64) (string, error) {
	return s.text, s.err
}

type harness struct {
	router    http.Handler
	prefs     *prefs.Store
	recommend *recommend.Service
	kv        *store.MemoryKV
	ai        *stubAI
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	kv := store.NewMemoryKV()
	cat := catalog.New()
	log := zerolog.Nop()

	pf := prefs.New(kv, cat, log)
	pf.Load()

	ai := &stubAI{ids: []string{"1", "2", "3", "5"}, text: "እንኳን ደህና መጡ"}
	rec := recommend.New(ai, cat, pf, kv, log)
	rec.Load()
	lib := librarian.New(ai, pf, kv, log)
	lib.Load()

	router := NewRouter(RouterConfig{
		Books:     NewBookHandler(cat, pf, "http://store.test"),
		Prefs:     NewPrefsHandler(cat, pf),
		Recommend: NewRecommendHandler(rec),
		Librarian: NewLibrarianHandler(lib),
		Logger:    log,
	})

	return &harness{router: router, prefs: pf, recommend: rec, kv: kv, ai: ai}
}

func (h *harness) do(t *testing.T, method, path string, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, path, strings.NewReader(body))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, r)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func dataList(t *testing.T, w *httptest.ResponseRecorder) []interface{} {
	t.Helper()
	body := decodeBody(t, w)
	list, ok := body["data"].([]interface{})
	require.True(t, ok, "data is not a list: %v", body["data"])
	return list
}
