// internal/storage/sqlite/sqlite_test.go
package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/agrotools/feedlot-calc/internal/model"
	"github.com/agrotools/feedlot-calc/internal/storage"
	"github.com/agrotools/feedlot-calc/internal/storage/models"
)

func newTestStorage(t *testing.T) storage.Storage {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feedlot_test.db")

	store, err := NewStorage(path, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, store.RunMigrations())
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestScenarioRoundTrip(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	params := model.DefaultParams()
	params.PurchasePrice = 2750
	scenario := models.NewScenario("autumn lot", params)

	require.NoError(t, store.SaveScenario(ctx, scenario))
	require.NotZero(t, scenario.ID)

	loaded, err := store.GetScenario(ctx, scenario.ID)
	require.NoError(t, err)
	assert.Equal(t, "autumn lot", loaded.Name)
	assert.Equal(t, params, loaded.Params)
	assert.False(t, loaded.CreatedAt.IsZero())
}

func TestScenarioUpdate(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	scenario := models.NewScenario("lot", model.DefaultParams())
	require.NoError(t, store.SaveScenario(ctx, scenario))

	scenario.Name = "renamed lot"
	scenario.Params.SalePrice = 4200
	require.NoError(t, store.SaveScenario(ctx, scenario))

	loaded, err := store.GetScenario(ctx, scenario.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed lot", loaded.Name)
	assert.Equal(t, 4200.0, loaded.Params.SalePrice)
}

func TestListScenariosNewestFirst(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	first := models.NewScenario("first", model.DefaultParams())
	second := models.NewScenario("second", model.DefaultParams())
	require.NoError(t, store.SaveScenario(ctx, first))
	require.NoError(t, store.SaveScenario(ctx, second))

	// touch the older one so it bubbles to the top
	first.Params.SalePrice = 3900
	require.NoError(t, store.SaveScenario(ctx, first))

	listed, err := store.ListScenarios(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "first", listed[0].Name)
}

func TestDeleteScenario(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	scenario := models.NewScenario("doomed", model.DefaultParams())
	require.NoError(t, store.SaveScenario(ctx, scenario))
	require.NoError(t, store.DeleteScenario(ctx, scenario.ID))

	_, err := store.GetScenario(ctx, scenario.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.ErrorIs(t, store.DeleteScenario(ctx, scenario.ID), storage.ErrNotFound)
}

func TestUpdateMissingScenario(t *testing.T) {
	store := newTestStorage(t)

	ghost := models.NewScenario("ghost", model.DefaultParams())
	ghost.ID = 4242
	err := store.SaveScenario(context.Background(), ghost)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDuplicateNameRejected(t *testing.T) {
	store := newTestStorage(t)
	ctx := context.Background()

	require.NoError(t, store.SaveScenario(ctx, models.NewScenario("dup", model.DefaultParams())))
	assert.Error(t, store.SaveScenario(ctx, models.NewScenario("dup", model.DefaultParams())))
}
