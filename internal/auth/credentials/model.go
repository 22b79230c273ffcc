package credentials

import (
	"time"

	"gestion-etudiants/internal/auth"
)

type Account struct {
	ID           string
	Username     string
	PasswordHash string
	Role         auth.Role
	CreatedAt    time.Time
}
