package domain

import (
	"errors"
	"fmt"
)

// Account directory and credential errors.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrDuplicateCredential = errors.New("duplicate credential")
	ErrDuplicateUsername   = fmt.Errorf("%w: username already exists", ErrDuplicateCredential)
	ErrDuplicateEmail      = fmt.Errorf("%w: email already exists", ErrDuplicateCredential)
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrTooManyAttempts     = errors.New("too many failed login attempts")
)

// Session token errors. ErrTokenPayload wraps ErrTokenMalformed so callers
// that only care about "malformed" can match either.
var (
	ErrMissingCredentials = errors.New("not authenticated")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenMalformed     = errors.New("invalid token")
	ErrTokenPayload       = fmt.Errorf("%w payload", ErrTokenMalformed)
)

var ErrCustomerNotFound = errors.New("customer not found")
