// Package prefs tracks per-reader state: the recently-viewed list, the
// read-later list, bookmarked descriptions and the theme choice. The two
// saved lists and the theme write through to the key-value substrate on
// every mutation; the recently-viewed list is session-scoped only.
package prefs

import (
	"errors"
	"fmt"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"bookstore/internal/catalog"
	"bookstore/internal/entity"
	"bookstore/internal/store"
)

// RecentLimit caps the recently-viewed list.
const RecentLimit = 10

// Theme values.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// ErrInvalidTheme is returned for theme values outside the enum.
var ErrInvalidTheme = errors.New("prefs: invalid theme")

// Store guards all preference state behind one mutex; every operation is
// atomic with respect to the others. The threshold callback is invoked
// outside the lock so it may call back into the rest of the system.
type Store struct {
	kv  store.KV
	cat *catalog.Store
	log zerolog.Logger

	mu           sync.Mutex
	recent       []string // most-recent-first book IDs, deduplicated
	readLater    []string // ordered book IDs
	bookmarks    []string // book IDs, insertion order
	theme        string
	interactions int // running total, never decremented

	onThreshold func()
}

func New(kv store.KV, cat *catalog.Store, log zerolog.Logger) *Store {
	return &Store{
		kv:    kv,
		cat:   cat,
		log:   log,
		theme: ThemeLight,
	}
}

// OnThreshold registers the hook fired when the combined total of
// interactions and read-later items lands on a positive multiple of 3.
// The hook must not block.
func (s *Store) OnThreshold(fn func()) {
	s.onThreshold = fn
}

// Load reads the persisted lists and reconciles them against the live
// catalog: unknown IDs are dropped silently, malformed values reset the
// affected list to empty. Load never fails.
func (s *Store) Load() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.readLater = s.loadIDList(store.KeyReadLater)
	s.bookmarks = s.loadIDList(store.KeyBookmarks)

	s.theme = ThemeLight
	if raw, err := s.kv.Get(store.KeyTheme); err == nil {
		var theme string
		if err := json.Unmarshal(raw, &theme); err == nil && (theme == ThemeDark || theme == ThemeLight) {
			s.theme = theme
		} else {
			s.log.Debug().Str("key", store.KeyTheme).Msg("discarding unusable persisted theme")
		}
	}
}

func (s *Store) loadIDList(key string) []string {
	raw, err := s.kv.Get(key)
	if errors.Is(err, store.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("reading persisted list failed, starting empty")
		return nil
	}

	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		s.log.Debug().Err(err).Str("key", key).Msg("discarding malformed persisted list")
		return nil
	}

	// Stale IDs referencing books no longer in the catalog vanish from
	// the effective view.
	kept := ids[:0]
	for _, id := range ids {
		if s.cat.Has(id) {
			kept = append(kept, id)
		}
	}
	return kept
}

func (s *Store) persistIDList(key string, ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := s.kv.Set(key, raw); err != nil {
		return fmt.Errorf("persist %s: %w", key, err)
	}
	return nil
}

// RecordInteraction moves the book to the front of the recently-viewed
// list, dropping any older entry for the same ID and capping the list at
// RecentLimit.
func (s *Store) RecordInteraction(b entity.Book) {
	s.fireThreshold(s.record(b))
}

// record performs the move-to-front insert and reports whether the
// threshold hook should fire.
func (s *Store) record(b entity.Book) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]string, 0, len(s.recent)+1)
	next = append(next, b.ID)
	for _, id := range s.recent {
		if id != b.ID {
			next = append(next, id)
		}
	}
	if len(next) > RecentLimit {
		next = next[:RecentLimit]
	}
	s.recent = next

	s.interactions++
	return s.atThresholdLocked()
}

func (s *Store) atThresholdLocked() bool {
	total := s.interactions + len(s.readLater)
	return total > 0 && total%3 == 0
}

func (s *Store) fireThreshold(fire bool) {
	if fire && s.onThreshold != nil {
		s.onThreshold()
	}
}

// RecentlyViewed resolves the recent IDs against the catalog,
// most-recent-first.
func (s *Store) RecentlyViewed() []entity.Book {
	s.mu.Lock()
	ids := append([]string(nil), s.recent...)
	s.mu.Unlock()
	return s.resolve(ids)
}

// ToggleReadLater adds the book if absent and removes it if present,
// reporting whether it is now saved. Toggling also counts as an
// interaction.
func (s *Store) ToggleReadLater(b entity.Book) (saved bool, err error) {
	s.mu.Lock()
	idx := -1
	for i, id := range s.readLater {
		if id == b.ID {
			idx = i
			break
		}
	}
	if idx >= 0 {
		s.readLater = append(s.readLater[:idx], s.readLater[idx+1:]...)
	} else {
		s.readLater = append(s.readLater, b.ID)
		saved = true
	}
	err = s.persistIDList(store.KeyReadLater, s.readLater)
	s.mu.Unlock()
	if err != nil {
		return saved, err
	}

	s.RecordInteraction(b)
	return saved, nil
}

// ReadLater returns the saved books in the order they were added.
func (s *Store) ReadLater() []entity.Book {
	s.mu.Lock()
	ids := append([]string(nil), s.readLater...)
	s.mu.Unlock()
	return s.resolve(ids)
}

// ToggleBookmark flips the bookmark flag for the ID and reports the new
// state. Unlike read-later this records no interaction.
func (s *Store) ToggleBookmark(id string) (saved bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, v := range s.bookmarks {
		if v == id {
			idx = i
			break
		}
	}
	if idx >= 0 {
		s.bookmarks = append(s.bookmarks[:idx], s.bookmarks[idx+1:]...)
	} else {
		s.bookmarks = append(s.bookmarks, id)
		saved = true
	}
	return saved, s.persistIDList(store.KeyBookmarks, s.bookmarks)
}

// Bookmarks resolves the bookmarked IDs against the catalog.
func (s *Store) Bookmarks() []entity.Book {
	s.mu.Lock()
	ids := append([]string(nil), s.bookmarks...)
	s.mu.Unlock()
	return s.resolve(ids)
}

// IsBookmarked reports whether the ID carries a bookmark.
func (s *Store) IsBookmarked(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.bookmarks {
		if v == id {
			return true
		}
	}
	return false
}

// Theme returns the active theme.
func (s *Store) Theme() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.theme
}

// SetTheme persists the theme choice.
func (s *Store) SetTheme(theme string) error {
	if theme != ThemeDark && theme != ThemeLight {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, theme)
	}
	raw, err := json.Marshal(theme)
	if err != nil {
		return fmt.Errorf("marshal theme: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Set(store.KeyTheme, raw); err != nil {
		return fmt.Errorf("persist theme: %w", err)
	}
	s.theme = theme
	return nil
}

// InteractionCount returns the running total of recorded interactions.
func (s *Store) InteractionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interactions
}

// HasHistory reports whether any personalization signal exists yet.
func (s *Store) HasHistory() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.recent) > 0 || len(s.readLater) > 0
}

func (s *Store) resolve(ids []string) []entity.Book {
	var out []entity.Book
	for _, id := range ids {
		if b, ok := s.cat.Get(id); ok {
			out = append(out, b)
		}
	}
	return out
}
