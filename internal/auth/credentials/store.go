package credentials

import (
	"context"
	"database/sql"
	"errors"

	"gestion-etudiants/internal/auth"
	"gestion-etudiants/internal/db"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var (
	ErrUsernameTaken   = errors.New("username already taken")
	ErrAccountNotFound = errors.New("account not found")
)

// Store persists accounts. The database-backed implementation is the
// canonical one; tests substitute in-memory fakes.
type Store interface {
	Create(ctx context.Context, username, passwordHash string, role auth.Role) (string, error)
	GetByUsername(ctx context.Context, username string) (*Account, error)
}

type SQLStore struct {
	db *db.DB
}

func NewSQLStore(db *db.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Create(
	ctx context.Context,
	username string,
	passwordHash string,
	role auth.Role,
) (string, error) {

	var id uuid.UUID

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO accounts (username, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id
	`, username, passwordHash, string(role)).Scan(&id)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return "", ErrUsernameTaken
		}
		return "", err
	}

	return id.String(), nil
}

func (s *SQLStore) GetByUsername(
	ctx context.Context,
	username string,
) (*Account, error) {

	var (
		id   uuid.UUID
		acct Account
		role string
	)

	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, password_hash, role, created_at
		FROM accounts
		WHERE username = $1
	`, username).Scan(&id, &acct.Username, &acct.PasswordHash, &role, &acct.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAccountNotFound
	}
	if err != nil {
		return nil, err
	}

	acct.ID = id.String()
	acct.Role = auth.Role(role)

	return &acct, nil
}
