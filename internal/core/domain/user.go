package domain

import "time"

// RoleUser is assigned to every self-registered account.
const RoleUser = "user"

// User models an account in the directory.
type User struct {
	ID           int64     `json:"id"`
	CompanyID    *int64    `json:"company_id,omitempty"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	PasswordSalt string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	ModifiedAt   time.Time `json:"modified_at"`
}

// NewUser carries the fields needed to insert a user. The hash and salt are
// always produced together by the credential hasher.
type NewUser struct {
	Username     string
	Email        string
	PasswordHash string
	PasswordSalt string
	Role         string
	CreatedAt    time.Time
}
