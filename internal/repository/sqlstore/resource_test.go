package sqlstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1230harry/commercial-db-api/internal/entity"
	"github.com/1230harry/commercial-db-api/internal/repository"
	"github.com/1230harry/commercial-db-api/internal/repository/sqlstore/sqlstoretest"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(sqlstoretest.Open(t), SQLite)
}

func TestResourceRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	repo := NewResourceRepository(newTestStore(t), entity.Warehouses)

	id, err := repo.Create(ctx, map[string]any{"name": "North", "location": "Oslo"})
	require.NoError(t, err)
	assert.Positive(t, id)

	row, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, row["id"])
	assert.Equal(t, "North", row["name"])
	assert.Equal(t, "Oslo", row["location"])

	require.NoError(t, repo.Update(ctx, id, map[string]any{"name": "North Hub", "location": "Bergen"}))
	row, err = repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "North Hub", row["name"])
	assert.Equal(t, "Bergen", row["location"])

	rows, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 1)

	require.NoError(t, repo.Delete(ctx, id))
	_, err = repo.FindByID(ctx, id)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestResourceRepository_MissingRows(t *testing.T) {
	ctx := context.Background()
	repo := NewResourceRepository(newTestStore(t), entity.Categories)

	_, err := repo.FindByID(ctx, 9999)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = repo.Update(ctx, 9999, map[string]any{"name": "x"})
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = repo.Delete(ctx, 9999)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestResourceRepository_DeleteTwice(t *testing.T) {
	ctx := context.Background()
	repo := NewResourceRepository(newTestStore(t), entity.Categories)

	id, err := repo.Create(ctx, map[string]any{"name": "Tools"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, id))
	assert.ErrorIs(t, repo.Delete(ctx, id), repository.ErrNotFound)
}

func TestResourceRepository_FindAllEmpty(t *testing.T) {
	repo := NewResourceRepository(newTestStore(t), entity.Payments)

	rows, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestResourceRepository_MissingRequiredFieldIsStoreError(t *testing.T) {
	repo := NewResourceRepository(newTestStore(t), entity.Orders)

	_, err := repo.Create(context.Background(), map[string]any{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
}

func TestResourceRepository_NarrowUpdate(t *testing.T) {
	ctx := context.Background()
	store := newTestStore(t)
	repo := NewResourceRepository(store, entity.Orders)

	id, err := repo.Create(ctx, map[string]any{
		"customer_id":         int64(1),
		"total":               99.5,
		"shipping_address_id": int64(1),
		"billing_address_id":  int64(2),
	})
	require.NoError(t, err)

	// Only status is writable; total in the payload is ignored.
	require.NoError(t, repo.Update(ctx, id, map[string]any{"status": "shipped", "total": 1.0}))

	row, err := repo.FindByID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "shipped", row["status"])
	assert.Equal(t, 99.5, row["total"])
}

func TestResourceRepository_ClosedPool(t *testing.T) {
	db := sqlstoretest.Open(t)
	repo := NewResourceRepository(NewStore(db, SQLite), entity.Products)
	require.NoError(t, db.Close())

	_, err := repo.FindAll(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
}
