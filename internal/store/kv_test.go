package store

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryKV(t *testing.T) {
	testKV(t, NewMemoryKV())
}

func TestBadgerKV(t *testing.T) {
	kv, err := OpenBadger(t.TempDir(), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })

	testKV(t, kv)
}

func testKV(t *testing.T, kv KV) {
	t.Helper()

	_, err := kv.Get(KeyReadLater)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, kv.Set(KeyReadLater, []byte(`["1","2"]`)))
	got, err := kv.Get(KeyReadLater)
	require.NoError(t, err)
	assert.Equal(t, `["1","2"]`, string(got))

	// Last write wins.
	require.NoError(t, kv.Set(KeyReadLater, []byte(`["3"]`)))
	got, err = kv.Get(KeyReadLater)
	require.NoError(t, err)
	assert.Equal(t, `["3"]`, string(got))

	require.NoError(t, kv.Delete(KeyReadLater))
	_, err = kv.Get(KeyReadLater)
	assert.ErrorIs(t, err, ErrKeyNotFound)

	// Deleting an absent key is not an error.
	assert.NoError(t, kv.Delete("awash_nothing"))
}
