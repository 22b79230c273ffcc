package credentials

import (
	"context"
	"errors"
	"os"

	"gestion-etudiants/internal/auth"

	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Accounts []struct {
		Username string    `yaml:"username"`
		Password string    `yaml:"password"`
		Role     auth.Role `yaml:"role"`
	} `yaml:"accounts"`
}

// SeedFromFile creates bootstrap accounts from a yaml file. Accounts
// that already exist are left untouched, so seeding is safe to run on
// every startup.
func (s *Service) SeedFromFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var sf seedFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return err
	}

	for _, a := range sf.Accounts {
		if a.Username == "" || a.Password == "" {
			continue
		}
		role := a.Role
		if role != auth.RoleAdmin {
			role = auth.RoleUser
		}
		_, err := s.Register(ctx, a.Username, a.Password, role)
		if errors.Is(err, ErrUsernameTaken) {
			continue
		}
		if err != nil {
			return err
		}
	}

	return nil
}
