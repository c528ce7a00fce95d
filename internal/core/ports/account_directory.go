package ports

import (
	"context"

	"github.com/Farhadhossain379/pythonFastApi/internal/core/domain"
)

// AccountDirectory is the storage the auth core depends on. Implementations
// must enforce username and email uniqueness themselves.
type AccountDirectory interface {
	// FindUserByUsername returns domain.ErrUserNotFound when no row matches.
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	// InsertUser returns domain.ErrDuplicateUsername or domain.ErrDuplicateEmail
	// when a uniqueness constraint rejects the row.
	InsertUser(ctx context.Context, user domain.NewUser) (*domain.User, error)
	InsertLoginEvent(ctx context.Context, event domain.LoginEvent) error
}
