package ports

import (
	"context"

	"github.com/Farhadhossain379/pythonFastApi/internal/core/domain"
)

// CustomerService runs the customer CRUD use cases behind the auth gate.
type CustomerService interface {
	Create(ctx context.Context, c domain.Customer) (*domain.Customer, error)
	List(ctx context.Context, skip, limit int) ([]domain.Customer, error)
	Get(ctx context.Context, id int64) (*domain.Customer, error)
	Update(ctx context.Context, id int64, patch domain.CustomerPatch) (*domain.Customer, error)
	Delete(ctx context.Context, id int64) (*domain.Customer, error)
}
