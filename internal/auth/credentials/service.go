package credentials

import (
	"context"
	"errors"

	"gestion-etudiants/internal/auth"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type Service struct {
	store Store
}

func NewService(store Store) *Service {
	return &Service{store: store}
}

// Register hashes the password and creates the account. Username
// uniqueness is enforced by the store and surfaces as ErrUsernameTaken.
func (s *Service) Register(
	ctx context.Context,
	username string,
	password string,
	role auth.Role,
) (string, error) {

	hash, err := HashPassword(password)
	if err != nil {
		return "", err
	}

	return s.store.Create(ctx, username, hash, role)
}

// Authenticate resolves the account and verifies the password.
// Unknown username and wrong password both collapse into
// ErrInvalidCredentials so callers cannot tell them apart.
func (s *Service) Authenticate(
	ctx context.Context,
	username string,
	password string,
) (auth.Identity, error) {

	acct, err := s.store.GetByUsername(ctx, username)
	if err != nil {
		return auth.Identity{}, ErrInvalidCredentials
	}

	if err := VerifyPassword(acct.PasswordHash, password); err != nil {
		return auth.Identity{}, ErrInvalidCredentials
	}

	return auth.Identity{
		AccountID: acct.ID,
		Username:  acct.Username,
		Role:      acct.Role,
	}, nil
}
