package sqlite

import (
	"context"
	"testing"

	"github.com/akwrites/penlight/internal/store"
	"github.com/stretchr/testify/require"
)

func TestStateStore_GetAbsent(t *testing.T) {
	db := NewTestDB(t)
	s := NewStateStore(db, "")
	ctx := context.Background()

	_, ok, err := s.Get(ctx)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestStateStore_SetGet(t *testing.T) {
	db := NewTestDB(t)
	s := NewStateStore(db, "")
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, []byte(`{"version":1,"projects":[]}`)))

	blob, ok, err := s.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `{"version":1,"projects":[]}`, string(blob))
}

func TestStateStore_SetReplaces(t *testing.T) {
	db := NewTestDB(t)
	s := NewStateStore(db, "")
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, []byte(`{"version":1}`)))
	require.NoError(t, s.Set(ctx, []byte(`{"version":1,"activeProjectId":"p1"}`)))

	blob, ok, err := s.Get(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.JSONEq(t, `{"version":1,"activeProjectId":"p1"}`, string(blob))

	// Still a single row for the key.
	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM app_state`).Scan(&count))
	require.Equal(t, 1, count)
}

func TestStateStore_KeyIsolation(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()

	a := NewStateStore(db, store.StateKey)
	b := NewStateStore(db, "other.key")

	require.NoError(t, a.Set(ctx, []byte(`{"version":1}`)))

	_, ok, err := b.Get(ctx)
	require.NoError(t, err)
	require.False(t, ok)
}
