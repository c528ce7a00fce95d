package ports

import (
	"context"

	"github.com/Farhadhossain379/pythonFastApi/internal/core/domain"
)

// RegisterInput is the DTO passed from the transport layer to AuthService.Register.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// ProvisionInput creates a user with an explicit role (seeding, admin tooling).
type ProvisionInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// LoginResult is returned on a successful login.
type LoginResult struct {
	AccessToken string
	TokenType   string
	User        *domain.User
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	// EnsureUser creates the user unless the username is already taken.
	EnsureUser(ctx context.Context, in ProvisionInput) (created bool, err error)
}
