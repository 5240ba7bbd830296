package gemini

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidateBody(text string) string {
	b, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
		},
	})
	return string(b)
}

func TestGenerateText(t *testing.T) {
	var gotPath string
	var gotReq map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_, _ = w.Write([]byte(candidateBody("ሰላም!")))
	}))
	defer srv.Close()

	c := NewClient("k", "", 100, 0).WithBaseURL(srv.URL)
	text, err := c.GenerateText(context.Background(), "persona", []Content{
		{Role: "user", Parts: []Part{{Text: "hi"}}},
	}, 0.8)

	require.NoError(t, err)
	assert.Equal(t, "ሰላም!", text)
	assert.Equal(t, "/models/"+DefaultModel+":generateContent", gotPath)
	assert.Contains(t, gotReq, "systemInstruction")
}

func TestGenerateStrings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		cfg, ok := req["generationConfig"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "application/json", cfg["responseMimeType"])
		_, _ = w.Write([]byte(candidateBody(`["3","15","10","6"]`)))
	}))
	defer srv.Close()

	c := NewClient("k", "test-model", 100, 0).WithBaseURL(srv.URL)
	ids, err := c.GenerateStrings(context.Background(), "pick books")

	require.NoError(t, err)
	assert.Equal(t, []string{"3", "15", "10", "6"}, ids)
}

func TestGenerateStrings_MalformedPayloadIsNoUsableResult(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(candidateBody(`{"not":"an array"}`)))
	}))
	defer srv.Close()

	c := NewClient("k", "", 100, 0).WithBaseURL(srv.URL)
	_, err := c.GenerateStrings(context.Background(), "pick books")
	assert.ErrorIs(t, err, ErrNoUsableResult)
}

func TestGenerate_EmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	c := NewClient("k", "", 100, 0).WithBaseURL(srv.URL)
	_, err := c.GenerateText(context.Background(), "", []Content{{Parts: []Part{{Text: "hi"}}}}, 0)
	assert.ErrorIs(t, err, ErrNoUsableResult)
}

func TestGenerate_RetriesServerErrors(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(candidateBody("ok")))
	}))
	defer srv.Close()

	c := NewClient("k", "", 100, 1).WithBaseURL(srv.URL)
	text, err := c.GenerateText(context.Background(), "", []Content{{Parts: []Part{{Text: "hi"}}}}, 0)

	require.NoError(t, err)
	assert.Equal(t, "ok", text)
	assert.Equal(t, 2, calls)
}

func TestGenerate_ClientErrorsDoNotRetry(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	c := NewClient("k", "", 100, 3).WithBaseURL(srv.URL)
	_, err := c.GenerateText(context.Background(), "", []Content{{Parts: []Part{{Text: "hi"}}}}, 0)

	assert.Error(t, err)
	assert.Equal(t, 1, calls)
}
