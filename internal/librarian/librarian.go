// Package librarian runs the "Awash Librarian" chat: a persisted
// conversation with the generative service, primed with the reader's
// recent browsing so replies stay personal. The chat degrades gracefully:
// when the service fails the reader gets a canned apology, never an error
// page.
package librarian

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"bookstore/internal/entity"
	"bookstore/internal/platform/gemini"
	"bookstore/internal/prefs"
	"bookstore/internal/store"
)

const (
	greeting   = "ሰላም! እኔ አዋሽ መጻሕፍት መደብር ረዳት ነኝ። የሚፈልጉትን መፅሀፍ ለመጠቆም ዝግጁ ነኝ። ምን አይነት መፅሀፍ ማንበብ ይፈልጋሉ?"
	errorReply = "ስህተት ተከስቷል። እባክዎ ግንኙነትዎን ያረጋግጡ።"

	temperature = 0.8
)

// Texter is the chat-mode slice of the gemini client.
type Texter interface {
	GenerateText(ctx context.Context, system string, history []gemini.Content, temperature float64) (string, error)
}

type Service struct {
	gen   Texter
	prefs *prefs.Store
	kv    store.KV
	log   zerolog.Logger

	mu       sync.Mutex
	messages []entity.Message
}

func New(gen Texter, pf *prefs.Store, kv store.KV, log zerolog.Logger) *Service {
	return &Service{gen: gen, prefs: pf, kv: kv, log: log}
}

// Load restores the persisted conversation, falling back to the default
// greeting when nothing usable is stored.
func (s *Service) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.kv.Get(store.KeyLibrarianHistory)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			s.log.Warn().Err(err).Msg("reading chat history failed, starting fresh")
		}
		s.messages = defaultHistory()
		return
	}

	var msgs []entity.Message
	if err := json.Unmarshal(raw, &msgs); err != nil || len(msgs) == 0 {
		s.log.Debug().Msg("discarding unusable chat history")
		s.messages = defaultHistory()
		return
	}
	s.messages = msgs
}

func defaultHistory() []entity.Message {
	return []entity.Message{{Role: entity.RoleModel, Text: greeting}}
}

// History returns the conversation so far.
func (s *Service) History() []entity.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]entity.Message(nil), s.messages...)
}

// Clear drops the conversation and restores the greeting.
func (s *Service) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Delete(store.KeyLibrarianHistory); err != nil {
		return fmt.Errorf("clear chat history: %w", err)
	}
	s.messages = defaultHistory()
	return nil
}

// Send appends the user message, asks the service for a reply and appends
// that too. A service failure yields the canned apology as the reply; the
// call itself still succeeds.
func (s *Service) Send(ctx context.Context, text string) (entity.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return entity.Message{}, errors.New("librarian: empty message")
	}

	s.mu.Lock()
	s.messages = append(s.messages, entity.Message{Role: entity.RoleUser, Text: text})
	history := make([]gemini.Content, 0, len(s.messages))
	for _, m := range s.messages {
		history = append(history, gemini.Content{Role: m.Role, Parts: []gemini.Part{{Text: m.Text}}})
	}
	s.mu.Unlock()

	replyText, err := s.gen.GenerateText(ctx, s.systemInstruction(), history, temperature)
	if err != nil {
		s.log.Warn().Err(err).Msg("librarian reply failed")
		replyText = errorReply
	}

	reply := entity.Message{Role: entity.RoleModel, Text: replyText}

	s.mu.Lock()
	s.messages = append(s.messages, reply)
	s.persistLocked()
	s.mu.Unlock()

	return reply, nil
}

func (s *Service) persistLocked() {
	raw, err := json.Marshal(s.messages)
	if err != nil {
		s.log.Warn().Err(err).Msg("marshal chat history failed")
		return
	}
	if err := s.kv.Set(store.KeyLibrarianHistory, raw); err != nil {
		s.log.Warn().Err(err).Msg("persist chat history failed")
	}
}

func (s *Service) systemInstruction() string {
	recent := s.prefs.RecentlyViewed()

	var ctxBlock string
	if len(recent) > 0 {
		var lines []string
		for _, b := range recent {
			lines = append(lines, fmt.Sprintf("- %q by %s (Genre: %s, Rating: %.1f/5): %s",
				b.Title, b.Author, b.Category, b.Rating, b.Description))
		}
		ctxBlock = "The user has recently shown interest in the following books in our store:\n" +
			strings.Join(lines, "\n") +
			"\nUse this history to provide highly personalized advice. If they like these, suggest similar books. If they didn't like them, pivot to something else."
	} else {
		ctxBlock = "The user hasn't browsed specific books in detail yet in this session."
	}

	return `You are the "Awash Librarian," a personalized digital book expert for Awash Digital Book Store.

CURRENT USER CONTEXT:
` + ctxBlock + `

CRITICAL: You have a long-term memory. You MUST remember the context of the current conversation and use the provided interaction history to suggest books the user is likely to enjoy.

Guidelines:
1. Leverage the browsing history above. If a user has been looking at history books, recommend more history or historical fiction.
2. If you already suggested a book in the chat, do not repeat yourself.
3. If the user mentions a book from their interaction history, show you know they've been looking at it.
4. Primary language is Amharic (አማርኛ), secondary is English. Mix naturally if helpful.
5. Be sophisticated, friendly, and book-smart.
6. Mention Ethiopian classics (Haddis Alemayehu, Bealu Girma, etc.) alongside international ones.
7. Keep responses helpful and concise.`
}
