package librarian

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookstore/internal/catalog"
	"bookstore/internal/entity"
	"bookstore/internal/platform/gemini"
	"bookstore/internal/prefs"
	"bookstore/internal/store"
)

type fakeTexter struct {
	reply      string
	err        error
	lastSystem string
	history    []gemini.Content
}

func (f *fakeTexter) GenerateText(ctx context.Context, system string, history []gemini.Content, temp float64) (string, error) {
	f.lastSystem = system
	f.history = history
	return f.reply, f.err
}

func testService(t *testing.T, gen Texter) (*Service, *prefs.Store, *store.MemoryKV) {
	t.Helper()
	kv := store.NewMemoryKV()
	cat := catalog.New()
	pf := prefs.New(kv, cat, zerolog.Nop())
	pf.Load()
	svc := New(gen, pf, kv, zerolog.Nop())
	svc.Load()
	return svc, pf, kv
}

func TestLoad_StartsWithGreeting(t *testing.T) {
	svc, _, _ := testService(t, &fakeTexter{})

	h := svc.History()
	require.Len(t, h, 1)
	assert.Equal(t, entity.RoleModel, h[0].Role)
	assert.Equal(t, greeting, h[0].Text)
}

func TestLoad_MalformedHistoryResets(t *testing.T) {
	kv := store.NewMemoryKV()
	require.NoError(t, kv.Set(store.KeyLibrarianHistory, []byte(`broken`)))

	pf := prefs.New(kv, catalog.New(), zerolog.Nop())
	svc := New(&fakeTexter{}, pf, kv, zerolog.Nop())
	svc.Load()

	h := svc.History()
	require.Len(t, h, 1)
	assert.Equal(t, greeting, h[0].Text)
}

func TestSend_AppendsBothTurnsAndPersists(t *testing.T) {
	gen := &fakeTexter{reply: "ድንቅ ምርጫ!"}
	svc, _, kv := testService(t, gen)

	reply, err := svc.Send(context.Background(), "ታሪክ መፅሀፍ ጠቁመኝ")
	require.NoError(t, err)
	assert.Equal(t, "ድንቅ ምርጫ!", reply.Text)

	h := svc.History()
	require.Len(t, h, 3) // greeting, user, model
	assert.Equal(t, entity.RoleUser, h[1].Role)
	assert.Equal(t, entity.RoleModel, h[2].Role)

	raw, err := kv.Get(store.KeyLibrarianHistory)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "ድንቅ ምርጫ!")

	// The full conversation, user turn included, went to the service.
	require.Len(t, gen.history, 2)
	assert.Equal(t, "ታሪክ መፅሀፍ ጠቁመኝ", gen.history[1].Parts[0].Text)
}

func TestSend_ServiceFailureYieldsCannedReply(t *testing.T) {
	gen := &fakeTexter{err: errors.New("timeout")}
	svc, _, _ := testService(t, gen)

	reply, err := svc.Send(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, errorReply, reply.Text)
	assert.Len(t, svc.History(), 3)
}

func TestSend_EmptyMessageRejected(t *testing.T) {
	svc, _, _ := testService(t, &fakeTexter{})
	_, err := svc.Send(context.Background(), "   ")
	assert.Error(t, err)
	assert.Len(t, svc.History(), 1)
}

func TestSystemInstruction_CarriesInteractionContext(t *testing.T) {
	gen := &fakeTexter{reply: "ok"}
	svc, pf, _ := testService(t, gen)

	_, err := svc.Send(context.Background(), "hi")
	require.NoError(t, err)
	assert.Contains(t, gen.lastSystem, "hasn't browsed specific books")

	b, ok := catalog.New().Get("3")
	require.True(t, ok)
	pf.RecordInteraction(b)

	_, err = svc.Send(context.Background(), "more")
	require.NoError(t, err)
	assert.Contains(t, gen.lastSystem, "ኦሮማይ")
	assert.Contains(t, gen.lastSystem, "personalized")
}

func TestClear_RestoresGreeting(t *testing.T) {
	gen := &fakeTexter{reply: "ok"}
	svc, _, kv := testService(t, gen)

	_, err := svc.Send(context.Background(), "hi")
	require.NoError(t, err)
	require.NoError(t, svc.Clear())

	h := svc.History()
	require.Len(t, h, 1)
	assert.Equal(t, greeting, h[0].Text)

	_, err = kv.Get(store.KeyLibrarianHistory)
	assert.ErrorIs(t, err, store.ErrKeyNotFound)
}
