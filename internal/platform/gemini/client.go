// Package gemini is a thin REST client for the Google generative language
// API. The service is treated as unreliable and slow: every call takes a
// context, is rate limited, and retries transient failures a bounded
// number of times before giving up.
package gemini

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"
)

// DefaultModel is used when no model name is configured.
const DefaultModel = "gemini-3-flash-preview"

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

// ErrNoUsableResult covers every response shape deviation: no candidates,
// empty text, or JSON that does not match the requested schema. Callers
// must treat it as "nothing came back", never guess at partial output.
var ErrNoUsableResult = errors.New("gemini: no usable result")

type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	limiter    *rate.Limiter
	maxRetries int
}

func NewClient(apiKey, model string, rps float64, maxRetries int) *Client {
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		model:      model,
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		maxRetries: maxRetries,
	}
}

// WithBaseURL points the client at a different endpoint. Used by tests.
func (c *Client) WithBaseURL(u string) *Client {
	c.baseURL = u
	return c
}

// Content is one conversation turn in API terms.
type Content struct {
	Role  string `json:"role,omitempty"`
	Parts []Part `json:"parts"`
}

type Part struct {
	Text string `json:"text"`
}

type generateRequest struct {
	Contents          []Content         `json:"contents"`
	SystemInstruction *Content          `json:"systemInstruction,omitempty"`
	GenerationConfig  *generationConfig `json:"generationConfig,omitempty"`
}

type generationConfig struct {
	Temperature      float64 `json:"temperature,omitempty"`
	ResponseMIMEType string  `json:"responseMimeType,omitempty"`
	ResponseSchema   *schema `json:"responseSchema,omitempty"`
}

type schema struct {
	Type  string  `json:"type"`
	Items *schema `json:"items,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []Part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateText runs a chat-mode call: free-form text out, the system
// instruction carrying the persona and context.
func (c *Client) GenerateText(ctx context.Context, system string, history []Content, temperature float64) (string, error) {
	req := generateRequest{
		Contents: history,
		GenerationConfig: &generationConfig{
			Temperature: temperature,
		},
	}
	if system != "" {
		req.SystemInstruction = &Content{Parts: []Part{{Text: system}}}
	}

	text, err := c.generate(ctx, req)
	if err != nil {
		return "", err
	}
	return text, nil
}

// GenerateStrings runs a structured call constrained to a JSON array of
// strings and decodes it.
func (c *Client) GenerateStrings(ctx context.Context, prompt string) ([]string, error) {
	req := generateRequest{
		Contents: []Content{{Role: "user", Parts: []Part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   &schema{Type: "ARRAY", Items: &schema{Type: "STRING"}},
		},
	}

	text, err := c.generate(ctx, req)
	if err != nil {
		return nil, err
	}

	var out []string
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("%w: decode structured output: %v", ErrNoUsableResult, err)
	}
	return out, nil
}

func (c *Client) generate(ctx context.Context, payload generateRequest) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}
	u := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)

	var lastErr error
	for i := 0; i <= c.maxRetries; i++ {
		if i > 0 {
			// Backoff: 1s, 2s, 4s...
			backoff := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return "", err
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
		if err != nil {
			return "", err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("x-goog-api-key", c.apiKey)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		text, retryable, err := decodeResponse(resp)
		if err == nil {
			return text, nil
		}
		if !retryable {
			return "", err
		}
		lastErr = err
	}
	return "", fmt.Errorf("after %d retries: %w", c.maxRetries, lastErr)
}

func decodeResponse(resp *http.Response) (text string, retryable bool, err error) {
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		retryable = resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return "", retryable, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var gr generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gr); err != nil {
		return "", false, fmt.Errorf("%w: decode body: %v", ErrNoUsableResult, err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return "", false, fmt.Errorf("%w: empty candidates", ErrNoUsableResult)
	}
	text = gr.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", false, fmt.Errorf("%w: empty text", ErrNoUsableResult)
	}
	return text, false, nil
}
