package sqldb

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Farhadhossain379/pythonFastApi/internal/core/domain"
)

// AccountDirectory stores users in tblUser and login events in tblUserLog.
type AccountDirectory struct {
	db *gorm.DB
}

func NewAccountDirectory(db *gorm.DB) *AccountDirectory {
	return &AccountDirectory{db: db}
}

func (d *AccountDirectory) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var rec userRecord
	err := d.db.WithContext(ctx).Where(&userRecord{Username: username}).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return rec.toDomain(), nil
}

// InsertUser relies on the unique keys on Username and Email. When one of
// them fires, a username lookup tells which.
func (d *AccountDirectory) InsertUser(ctx context.Context, nu domain.NewUser) (*domain.User, error) {
	rec := userRecord{
		Username:     nu.Username,
		PasswordHash: nu.PasswordHash,
		PasswordSalt: nu.PasswordSalt,
		Email:        nu.Email,
		Role:         nu.Role,
		CreatedDate:  nu.CreatedAt,
		ModifiedDate: nu.CreatedAt,
	}
	err := d.db.WithContext(ctx).Create(&rec).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		if _, findErr := d.FindUserByUsername(ctx, nu.Username); findErr == nil {
			return nil, domain.ErrDuplicateUsername
		}
		return nil, domain.ErrDuplicateEmail
	}
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return rec.toDomain(), nil
}

func (d *AccountDirectory) InsertLoginEvent(ctx context.Context, e domain.LoginEvent) error {
	rec := loginEventRecord{Username: e.Username, Date: e.Date(), Time: e.Time()}
	if err := d.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return fmt.Errorf("insert login event: %w", err)
	}
	return nil
}
