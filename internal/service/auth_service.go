package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/samber/mo"

	"github.com/1230harry/commercial-db-api/internal/auth"
	"github.com/1230harry/commercial-db-api/internal/entity"
	"github.com/1230harry/commercial-db-api/internal/repository"
)

var (
	// ErrInvalidCredentials covers both an unknown username and a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrPasswordRequired rejects a signup without a password before anything is hashed or stored.
	ErrPasswordRequired = errors.New("password is required")
)

// TokenIssuer signs bearer tokens for an authenticated identity.
type TokenIssuer interface {
	Issue(id int64, admin bool) (string, error)
}

// AuthService handles signup and login.
type AuthService struct {
	users  repository.UserRepository
	tokens TokenIssuer
}

func NewAuthService(users repository.UserRepository, tokens TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// SignupRequest carries the signup fields. Absent fields stay absent all the
// way to the store, where NOT NULL columns reject them.
type SignupRequest struct {
	Fullname mo.Option[string]
	Email    mo.Option[string]
	Contact  mo.Option[string]
	Username mo.Option[string]
	Password mo.Option[string]
	Admin    bool
}

type LoginResult struct {
	Token string `json:"token"`
	Admin bool   `json:"admin"`
}

// Signup hashes the password and stores the user. Uniqueness is left to the store.
func (s *AuthService) Signup(ctx context.Context, req SignupRequest) (int64, error) {
	password, ok := req.Password.Get()
	if !ok {
		return 0, ErrPasswordRequired
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return 0, err
	}

	id, err := s.users.Create(ctx, &entity.User{
		Fullname: req.Fullname,
		Email:    req.Email,
		Contact:  req.Contact,
		Username: req.Username,
		Password: hash,
		Admin:    req.Admin,
	})
	if err != nil {
		return 0, err
	}

	slog.Info("User created", "user_id", id, "admin", req.Admin)
	return id, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Admin)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token for user %d: %w", user.ID, err)
	}
	return &LoginResult{Token: token, Admin: user.Admin}, nil
}
