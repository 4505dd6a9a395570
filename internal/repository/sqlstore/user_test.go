package sqlstore

import (
	"context"
	"database/sql"
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/1230harry/commercial-db-api/internal/entity"
	"github.com/1230harry/commercial-db-api/internal/repository"
	"github.com/1230harry/commercial-db-api/internal/repository/sqlstore/sqlstoretest"
)

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestStore(t))

	id, err := repo.Create(ctx, &entity.User{
		Fullname: mo.Some("Grace Hopper"),
		Email:    mo.Some("grace@example.com"),
		Username: mo.Some("grace"),
		Password: "$2a$10$hash",
		Admin:    true,
	})
	require.NoError(t, err)

	u, err := repo.FindByUsername(ctx, "grace")
	require.NoError(t, err)
	assert.Equal(t, id, u.ID)
	assert.Equal(t, "$2a$10$hash", u.Password)
	assert.True(t, u.Admin)
	assert.Equal(t, mo.Some("grace"), u.Username)

	_, err = repo.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepository_DuplicateUsernameIsStoreError(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestStore(t))

	_, err := repo.Create(ctx, &entity.User{Username: mo.Some("dup"), Email: mo.Some("a@example.com"), Password: "x"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &entity.User{Username: mo.Some("dup"), Email: mo.Some("b@example.com"), Password: "x"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
}

func TestUserRepository_AbsentFieldsBindNull(t *testing.T) {
	ctx := context.Background()
	db := sqlstoretest.Open(t)
	repo := NewUserRepository(NewStore(db, SQLite))

	// username is NOT NULL.
	_, err := repo.Create(ctx, &entity.User{Password: "x"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrNotFound)

	_, err = repo.Create(ctx, &entity.User{Username: mo.Some("solo"), Password: "x"})
	require.NoError(t, err)

	var email, contact sql.NullString
	require.NoError(t, db.QueryRow("SELECT email, contact FROM users WHERE username = 'solo'").Scan(&email, &contact))
	assert.False(t, email.Valid)
	assert.False(t, contact.Valid)
}
