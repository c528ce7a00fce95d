package ports

import (
	"context"

	"github.com/Farhadhossain379/pythonFastApi/internal/core/domain"
)

// CustomerRepository defines persistence operations for customers.
type CustomerRepository interface {
	// Create stores c and sets its ID.
	Create(ctx context.Context, c *domain.Customer) error
	List(ctx context.Context, skip, limit int) ([]domain.Customer, error)
	// FindByID returns domain.ErrCustomerNotFound when no row matches.
	FindByID(ctx context.Context, id int64) (*domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, id int64) error
}
