package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_CreateGetDestroy(t *testing.T) {
	store := NewStore(time.Hour)

	u := User{ID: "u1", Name: "Ana", Email: "ana@example.com"}
	token := store.Create(u)
	require.NotEmpty(t, token)

	got, ok := store.Get(token)
	require.True(t, ok)
	assert.Equal(t, u, got)

	store.Destroy(token)
	_, ok = store.Get(token)
	assert.False(t, ok, "token destruido no resuelve usuario")
}

func TestStore_UnknownTokenIsNotAnError(t *testing.T) {
	store := NewStore(time.Hour)

	_, ok := store.Get("nope")
	assert.False(t, ok)

	_, ok = store.Get("")
	assert.False(t, ok)

	// Destroy de un token inexistente es no-op.
	store.Destroy("nope")
}

func TestStore_Expiry(t *testing.T) {
	store := NewStore(30 * time.Minute)

	current := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	token := store.Create(User{ID: "u1"})

	_, ok := store.Get(token)
	require.True(t, ok)

	// Justo después del TTL, la sesión vence.
	current = current.Add(31 * time.Minute)
	_, ok = store.Get(token)
	assert.False(t, ok)

	// Y la entrada vencida quedó limpiada: sigue sin resolver.
	_, ok = store.Get(token)
	assert.False(t, ok)
}

func TestStore_TokensAreUniquePerSession(t *testing.T) {
	store := NewStore(time.Hour)

	t1 := store.Create(User{ID: "u1"})
	t2 := store.Create(User{ID: "u1"})
	assert.NotEqual(t, t1, t2, "doble login del mismo usuario genera sesiones independientes")

	store.Destroy(t1)
	_, ok := store.Get(t2)
	assert.True(t, ok, "destruir una sesión no toca la otra")
}
