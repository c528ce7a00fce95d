package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Farhadhossain379/pythonFastApi/internal/core/domain"
	"github.com/Farhadhossain379/pythonFastApi/internal/core/ports"
)

// Page size bounds for List.
const (
	DefaultCustomerLimit = 100
	MaxCustomerLimit     = 1000
)

type CustomerService struct {
	repo   ports.CustomerRepository
	logger zerolog.Logger
}

func NewCustomerService(repo ports.CustomerRepository, logger zerolog.Logger) *CustomerService {
	return &CustomerService{repo: repo, logger: logger}
}

func (s *CustomerService) Create(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	c.ID = 0
	if err := s.repo.Create(ctx, &c); err != nil {
		return nil, fmt.Errorf("create customer: %w", err)
	}
	s.logger.Info().Int64("customer_id", c.ID).Msg("customer created")
	return &c, nil
}

// List returns one page of customers ordered by id.
func (s *CustomerService) List(ctx context.Context, skip, limit int) ([]domain.Customer, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultCustomerLimit
	}
	if limit > MaxCustomerLimit {
		limit = MaxCustomerLimit
	}
	customers, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	return customers, nil
}

func (s *CustomerService) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get customer %d: %w", id, err)
	}
	return c, nil
}

// Update applies patch to the stored customer and returns the result.
func (s *CustomerService) Update(ctx context.Context, id int64, patch domain.CustomerPatch) (*domain.Customer, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("update customer %d: %w", id, err)
	}
	patch.Apply(c)
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, fmt.Errorf("update customer %d: %w", id, err)
	}
	s.logger.Info().Int64("customer_id", id).Msg("customer updated")
	return c, nil
}

// Delete removes the customer and returns the record as it was.
func (s *CustomerService) Delete(ctx context.Context, id int64) (*domain.Customer, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("delete customer %d: %w", id, err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, fmt.Errorf("delete customer %d: %w", id, err)
	}
	s.logger.Info().Int64("customer_id", id).Msg("customer deleted")
	return c, nil
}
