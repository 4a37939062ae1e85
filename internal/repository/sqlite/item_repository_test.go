package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reshmiresh07/Angular-js-with-sql-integation-11/internal/db"
	domain "github.com/reshmiresh07/Angular-js-with-sql-integation-11/internal/domain/model"
)

func newTestRepo(t *testing.T) *ItemRepository {
	t.Helper()

	conn, err := db.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return NewItemRepository(conn)
}

func TestInsertThenListAll(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.Insert(ctx, "Pen", 3)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	items, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, &domain.Item{ID: 1, Name: "Pen", Qty: 3}, items[0])
}

func TestInsert_IDsIncrease(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.Insert(ctx, "Pen", 1)
	require.NoError(t, err)
	second, err := repo.Insert(ctx, "Pencil", 1)
	require.NoError(t, err)

	assert.Greater(t, second, first)
}

func TestInsert_NameRequired(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Insert(context.Background(), "", 1)
	assert.ErrorIs(t, err, domain.ErrNameRequired)
}

func TestInsert_QtyDefaults(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// A zero quantity is falsy and defaults, same as an omitted one.
	id, err := repo.Insert(ctx, "Pen", 0)
	require.NoError(t, err)

	items, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, id, items[0].ID)
	assert.Equal(t, int64(1), items[0].Qty)
}

func TestInsert_NegativeQtyStoredAsGiven(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Insert(ctx, "Pen", -2)
	require.NoError(t, err)

	items, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(-2), items[0].Qty)
}

func TestListAll_Empty(t *testing.T) {
	repo := newTestRepo(t)

	items, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestListAll_OrderedByIDDescending(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	for _, name := range []string{"Pen", "Pencil", "Eraser"} {
		_, err := repo.Insert(ctx, name, 1)
		require.NoError(t, err)
	}

	items, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)

	for i := 1; i < len(items); i++ {
		assert.Greater(t, items[i-1].ID, items[i].ID)
	}
	assert.Equal(t, "Eraser", items[0].Name)
}

func TestUpdate_RoundTrip(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.Insert(ctx, "Pen", 1)
	require.NoError(t, err)

	affected, err := repo.Update(ctx, id, "Fountain Pen", 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	items, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, &domain.Item{ID: id, Name: "Fountain Pen", Qty: 7}, items[0])
}

func TestUpdate_QtyDefaults(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.Insert(ctx, "Pen", 5)
	require.NoError(t, err)

	_, err = repo.Update(ctx, id, "Pen", 0)
	require.NoError(t, err)

	items, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), items[0].Qty)
}

func TestUpdate_MissingIDAffectsZeroRows(t *testing.T) {
	repo := newTestRepo(t)

	affected, err := repo.Update(context.Background(), 999, "Pen", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)
}

func TestUpdate_NameRequired(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Update(context.Background(), 1, "", 1)
	assert.ErrorIs(t, err, domain.ErrNameRequired)
}

func TestDelete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	id, err := repo.Insert(ctx, "Pen", 1)
	require.NoError(t, err)

	affected, err := repo.Delete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	items, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestStorageFaultSurfacesDriverMessage(t *testing.T) {
	conn, err := db.NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	repo := NewItemRepository(conn)
	ctx := context.Background()

	var storageErr *domain.StorageError

	_, err = repo.ListAll(ctx)
	require.ErrorAs(t, err, &storageErr)
	assert.Equal(t, "sql: database is closed", err.Error())

	_, err = repo.Insert(ctx, "Pen", 1)
	require.ErrorAs(t, err, &storageErr)

	_, err = repo.Update(ctx, 1, "Pen", 1)
	require.ErrorAs(t, err, &storageErr)

	_, err = repo.Delete(ctx, 1)
	require.ErrorAs(t, err, &storageErr)
}

func TestDelete_MissingIDIsNotAnError(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// Deleting an absent id always reports zero affected rows, never an
	// error, no matter how often it is repeated.
	for i := 0; i < 2; i++ {
		affected, err := repo.Delete(ctx, 999)
		require.NoError(t, err)
		assert.Equal(t, int64(0), affected)
	}
}
