// Package store is the persistence substrate for user preferences: a
// local, synchronous key-value store holding JSON-encoded values under
// fixed key names. A missing key is a valid state meaning "use default".
package store

import "errors"

// Fixed keys, namespaced under the store's prefix.
const (
	KeyReadLater        = "awash_read_later"
	KeyBookmarks        = "awash_bookmarks"
	KeyTheme            = "awash_theme"
	KeyRecommendations  = "awash_recommendations"
	KeyLibrarianHistory = "awash_librarian_history"
)

// ErrKeyNotFound is returned by Get for absent keys.
var ErrKeyNotFound = errors.New("store: key not found")

// KV is the minimal key-value contract the preference stores write
// through to. Implementations must make Set durable before returning;
// last write wins per key.
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
