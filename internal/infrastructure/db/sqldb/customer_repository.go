package sqldb

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Farhadhossain379/pythonFastApi/internal/core/domain"
)

// CustomerRepository stores customers in the CUSTOMER table.
type CustomerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{db: db}
}

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	rec := toCustomerRecord(c)
	rec.ID = 0
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	c.ID = rec.ID
	return nil
}

func (r *CustomerRepository) List(ctx context.Context, skip, limit int) ([]domain.Customer, error) {
	var recs []customerRecord
	err := r.db.WithContext(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Name: "customerid"}}).
		Offset(skip).
		Limit(limit).
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	out := make([]domain.Customer, 0, len(recs))
	for _, rec := range recs {
		out = append(out, rec.toDomain())
	}
	return out, nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	var rec customerRecord
	err := r.db.WithContext(ctx).First(&rec, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find customer: %w", err)
	}
	c := rec.toDomain()
	return &c, nil
}

// Update writes every column of c, nil values included. MySQL reports zero
// affected rows for an unchanged row, so existence is not checked here.
func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	err := r.db.WithContext(ctx).
		Model(&customerRecord{ID: c.ID}).
		Updates(map[string]interface{}{
			"NAME":           c.Name,
			"ADDRESS":        c.Address,
			"PHONE":          c.Phone,
			"FAX":            c.Fax,
			"EMAIL":          c.Email,
			"CONTACT_PERSON": c.ContactPerson,
			"WEBSITE":        c.Website,
		}).Error
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&customerRecord{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete customer: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrCustomerNotFound
	}
	return nil
}
