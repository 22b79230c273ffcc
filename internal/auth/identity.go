package auth

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Identity is the authenticated-account snapshot attached to a session.
// It contains facts only, no decisions.
type Identity struct {
	AccountID string // references accounts.id
	Username  string
	Role      Role
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
