// Package recommend asks the generative service for a handful of catalog
// picks based on what the reader has been looking at. Recommendations are
// best-effort: a failed or garbled fetch leaves the previous picks in
// place and never surfaces into the browsing flow.
package recommend

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"bookstore/internal/catalog"
	"bookstore/internal/entity"
	"bookstore/internal/prefs"
	"bookstore/internal/store"
)

// Count is how many picks are requested and kept.
const Count = 4

// Generator is the structured-output slice of the gemini client.
type Generator interface {
	GenerateStrings(ctx context.Context, prompt string) ([]string, error)
}

// Service caches the current picks and coalesces refreshes so at most one
// request is ever in flight; a stale response can therefore never clobber
// a newer one.
type Service struct {
	gen   Generator
	cat   *catalog.Store
	prefs *prefs.Store
	kv    store.KV
	log   zerolog.Logger

	group    singleflight.Group
	inflight atomic.Bool

	mu     sync.Mutex
	cached []string // book IDs, already reconciled
}

func New(gen Generator, cat *catalog.Store, pf *prefs.Store, kv store.KV, log zerolog.Logger) *Service {
	return &Service{gen: gen, cat: cat, prefs: pf, kv: kv, log: log}
}

// Load restores the cached picks from the substrate, dropping IDs the
// catalog no longer knows. Malformed data means no cached picks.
func (s *Service) Load() {
	raw, err := s.kv.Get(store.KeyRecommendations)
	if err != nil {
		if !errors.Is(err, store.ErrKeyNotFound) {
			s.log.Warn().Err(err).Msg("reading cached recommendations failed")
		}
		return
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		s.log.Debug().Err(err).Msg("discarding malformed recommendation cache")
		return
	}

	kept := ids[:0]
	for _, id := range ids {
		if s.cat.Has(id) {
			kept = append(kept, id)
		}
	}

	s.mu.Lock()
	s.cached = kept
	s.mu.Unlock()
}

// Current returns the cached picks resolved against the catalog.
func (s *Service) Current() []entity.Book {
	s.mu.Lock()
	ids := append([]string(nil), s.cached...)
	s.mu.Unlock()

	var out []entity.Book
	for _, id := range ids {
		if b, ok := s.cat.Get(id); ok {
			out = append(out, b)
		}
	}
	return out
}

// InFlight reports whether a fetch is currently outstanding.
func (s *Service) InFlight() bool {
	return s.inflight.Load()
}

// Refresh fetches a new set of picks. Calls arriving while a fetch is in
// flight join it rather than starting another. Without any interaction
// history it is a no-op returning the current picks.
func (s *Service) Refresh(ctx context.Context) ([]entity.Book, error) {
	if !s.prefs.HasHistory() {
		return s.Current(), nil
	}

	_, err, _ := s.group.Do("refresh", func() (interface{}, error) {
		s.inflight.Store(true)
		defer s.inflight.Store(false)
		return nil, s.fetch(ctx)
	})
	if err != nil {
		// Prior picks stay untouched.
		return s.Current(), err
	}
	return s.Current(), nil
}

// TriggerAsync starts a refresh in the background. Used by the preference
// store's threshold hook; errors are logged and swallowed.
func (s *Service) TriggerAsync() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
		defer cancel()
		if _, err := s.Refresh(ctx); err != nil {
			s.log.Warn().Err(err).Msg("background recommendation refresh failed")
		}
	}()
}

func (s *Service) fetch(ctx context.Context) error {
	ids, err := s.gen.GenerateStrings(ctx, s.buildPrompt())
	if err != nil {
		return fmt.Errorf("generate recommendations: %w", err)
	}

	// Keep only IDs the catalog knows, at most Count, even if the
	// service over-delivers.
	kept := make([]string, 0, Count)
	for _, id := range ids {
		if !s.cat.Has(id) {
			continue
		}
		kept = append(kept, id)
		if len(kept) == Count {
			break
		}
	}
	if len(kept) == 0 {
		return fmt.Errorf("generate recommendations: %w", errNoCatalogMatch)
	}

	s.mu.Lock()
	s.cached = kept
	s.mu.Unlock()

	raw, err := json.Marshal(kept)
	if err != nil {
		return fmt.Errorf("marshal recommendation cache: %w", err)
	}
	if err := s.kv.Set(store.KeyRecommendations, raw); err != nil {
		s.log.Warn().Err(err).Msg("persisting recommendation cache failed")
	}
	return nil
}

var errNoCatalogMatch = errors.New("no returned id matched the catalog")

type bookProjection struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

func (s *Service) buildPrompt() string {
	proj := make([]bookProjection, 0, len(s.cat.Books()))
	for _, b := range s.cat.Books() {
		proj = append(proj, bookProjection{
			ID:          b.ID,
			Title:       b.Title,
			Description: b.Description,
			Category:    b.Category,
		})
	}
	catalogJSON, _ := json.Marshal(proj)

	var history []string
	for _, b := range s.prefs.RecentlyViewed() {
		history = append(history, fmt.Sprintf("%q by %s", b.Title, b.Author))
	}
	var saved []string
	for _, b := range s.prefs.ReadLater() {
		saved = append(saved, fmt.Sprintf("%q by %s", b.Title, b.Author))
	}

	var sb strings.Builder
	sb.WriteString("You are the recommendation engine of the Awash Digital Book Store.\n")
	sb.WriteString("Store catalog as JSON (id, title, description, category):\n")
	sb.Write(catalogJSON)
	sb.WriteString("\n\nThe reader recently viewed: ")
	if len(history) > 0 {
		sb.WriteString(strings.Join(history, ", "))
	} else {
		sb.WriteString("nothing yet")
	}
	sb.WriteString("\nSaved for later: ")
	if len(saved) > 0 {
		sb.WriteString(strings.Join(saved, ", "))
	} else {
		sb.WriteString("nothing yet")
	}
	fmt.Fprintf(&sb, "\n\nPick exactly %d books from the catalog the reader is most likely to enjoy next. ", Count)
	sb.WriteString("Respond with a JSON array containing only the chosen book id strings, best match first. ")
	sb.WriteString("Never invent ids that are not in the catalog.")
	return sb.String()
}
