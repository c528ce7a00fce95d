package sqldb

import (
	"time"

	"github.com/Farhadhossain379/pythonFastApi/internal/core/domain"
)

type userRecord struct {
	ID           int64     `gorm:"column:Id;primaryKey;autoIncrement"`
	CompanyID    *int64    `gorm:"column:CompanyId"`
	Username     string    `gorm:"column:Username"`
	PasswordHash string    `gorm:"column:PasswordHash"`
	PasswordSalt string    `gorm:"column:PasswordSalt"`
	Email        string    `gorm:"column:Email"`
	Role         string    `gorm:"column:Role"`
	CreatedDate  time.Time `gorm:"column:CreatedDate"`
	ModifiedDate time.Time `gorm:"column:ModifiedDate"`
}

func (userRecord) TableName() string { return "tblUser" }

func (r userRecord) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		CompanyID:    r.CompanyID,
		Username:     r.Username,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		PasswordSalt: r.PasswordSalt,
		Role:         r.Role,
		CreatedAt:    r.CreatedDate,
		ModifiedAt:   r.ModifiedDate,
	}
}

type loginEventRecord struct {
	ID       int64  `gorm:"column:Id;primaryKey;autoIncrement"`
	Username string `gorm:"column:Username"`
	Date     string `gorm:"column:Date"`
	Time     string `gorm:"column:Time"`
}

func (loginEventRecord) TableName() string { return "tblUserLog" }

type customerRecord struct {
	ID            int64   `gorm:"column:customerid;primaryKey;autoIncrement"`
	Name          *string `gorm:"column:NAME"`
	Address       *string `gorm:"column:ADDRESS"`
	Phone         *string `gorm:"column:PHONE"`
	Fax           *string `gorm:"column:FAX"`
	Email         *string `gorm:"column:EMAIL"`
	ContactPerson *string `gorm:"column:CONTACT_PERSON"`
	Website       *string `gorm:"column:WEBSITE"`
}

func (customerRecord) TableName() string { return "CUSTOMER" }

func toCustomerRecord(c *domain.Customer) customerRecord {
	return customerRecord{
		ID:            c.ID,
		Name:          c.Name,
		Address:       c.Address,
		Phone:         c.Phone,
		Fax:           c.Fax,
		Email:         c.Email,
		ContactPerson: c.ContactPerson,
		Website:       c.Website,
	}
}

func (r customerRecord) toDomain() domain.Customer {
	return domain.Customer{
		ID:            r.ID,
		Name:          r.Name,
		Address:       r.Address,
		Phone:         r.Phone,
		Fax:           r.Fax,
		Email:         r.Email,
		ContactPerson: r.ContactPerson,
		Website:       r.Website,
	}
}
