package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/samber/mo"

	"github.com/1230harry/commercial-db-api/internal/entity"
	"github.com/1230harry/commercial-db-api/internal/repository"
)

type userRepository struct {
	*Store
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(store *Store) repository.UserRepository {
	return &userRepository{Store: store}
}

// Create stores a user whose Password is already hashed. Duplicate usernames
// or emails surface as the store's own constraint error.
func (r *userRepository) Create(ctx context.Context, user *entity.User) (int64, error) {
	id, err := r.insert(ctx,
		"INSERT INTO users (fullname, email, contact, username, password, admin) VALUES (?, ?, ?, ?, ?, ?)",
		optionArg(user.Fullname), optionArg(user.Email), optionArg(user.Contact), optionArg(user.Username),
		user.Password, user.Admin,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert user: %w", err)
	}
	return id, nil
}

func (r *userRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var u entity.User
	err := r.db.QueryRowContext(ctx,
		r.dialect.Rebind("SELECT id, password, admin FROM users WHERE username = ?"),
		username,
	).Scan(&u.ID, &u.Password, &u.Admin)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user %q: %w", username, err)
	}
	u.Username = mo.Some(username)
	return &u, nil
}

// optionArg binds an absent value as NULL.
func optionArg(o mo.Option[string]) any {
	if v, ok := o.Get(); ok {
		return v
	}
	return nil
}
