package sqlite

import (
	"context"
	"testing"

	"github.com/akwrites/penlight/internal/domain/plan"
	"github.com/akwrites/penlight/internal/registry"
	"github.com/akwrites/penlight/internal/registry/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Full round trip: registry mutations persisted through the SQLite cell and
// reloaded by a second service instance.
func TestRegistryOverSQLite(t *testing.T) {
	ctx := context.Background()
	db := NewTestDB(t)
	st := NewStateStore(db, "")

	doc := &mocks.DocumentReader{}
	doc.On("ReadText", mock.Anything).Return("four words right here", nil)

	first := registry.NewService(st, doc, nil)
	require.NoError(t, first.Load(ctx))

	p, err := first.CreateProject(ctx, "Novel")
	require.NoError(t, err)
	require.NoError(t, first.UpdatePlan(ctx, p.ID, plan.Update{
		Name: "Novel", TargetWords: 1000, Deadline: "2030-06-01", DailyTarget: 400,
	}))

	words, err := first.UpdateProgress(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, 4, words)

	second := registry.NewService(st, doc, nil)
	require.NoError(t, second.Load(ctx))

	got, err := second.Get(p.ID)
	require.NoError(t, err)
	require.Equal(t, "Novel", got.Name)
	require.Equal(t, 1000, got.TargetWords)
	require.Equal(t, 4, got.Progress.LatestTotal())
	require.Equal(t, p.ID, second.ActiveProjectID())
}
