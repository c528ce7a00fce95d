package ports

import "github.com/Farhadhossain379/pythonFastApi/internal/core/domain"

// CredentialHasher derives and checks salted password digests.
type CredentialHasher interface {
	GenerateSalt() string
	Hash(password, salt string) string
	Verify(password, salt, digest string) bool
}

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	Issue(userID int64, username string) (string, error)
}

// TokenVerifier checks a session token and recovers the identity it carries.
// Errors are domain.ErrTokenExpired or (a wrap of) domain.ErrTokenMalformed.
type TokenVerifier interface {
	Verify(token string) (domain.Identity, error)
}

// TokenService issues and verifies session tokens.
type TokenService interface {
	TokenIssuer
	TokenVerifier
}
