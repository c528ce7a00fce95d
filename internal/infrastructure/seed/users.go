// Package seed provisions users listed in a YAML file at startup.
package seed

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/Farhadhossain379/pythonFastApi/internal/core/ports"
)

// UserEntry is one user in the seed file.
type UserEntry struct {
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
}

type usersFile struct {
	Users []UserEntry `yaml:"users"`
}

// LoadUsers parses a seed file of the form:
//
//	users:
//	  - username: admin
//	    email: admin@example.com
//	    password: change-me
//	    role: admin
func LoadUsers(path string) ([]UserEntry, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read %s: %w", path, err)
	}
	var f usersFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("seed: parse %s: %w", path, err)
	}
	return f.Users, nil
}

// Users provisions every entry through svc and returns how many were created.
// Entries without username or password are skipped.
func Users(ctx context.Context, svc ports.AuthService, entries []UserEntry, log zerolog.Logger) (int, error) {
	created := 0
	for _, e := range entries {
		if e.Username == "" || e.Password == "" {
			log.Warn().Str("username", e.Username).Msg("seed entry skipped: username and password are required")
			continue
		}
		ok, err := svc.EnsureUser(ctx, ports.ProvisionInput{
			Username: e.Username,
			Email:    e.Email,
			Password: e.Password,
			Role:     e.Role,
		})
		if err != nil {
			return created, fmt.Errorf("seed user %s: %w", e.Username, err)
		}
		if ok {
			created++
			log.Info().Str("username", e.Username).Msg("seed user created")
		}
	}
	return created, nil
}
