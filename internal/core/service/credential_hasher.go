package service

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Password digest schemes understood by CredentialHasher.
const (
	SchemeSHA256   = "sha256"
	SchemeArgon2id = "argon2id"
)

const (
	saltBytes     = 16
	argon2Prefix  = SchemeArgon2id + "$"
	argon2Time    = 1
	argon2Memory  = 64 * 1024
	argon2Threads = 4
	argon2KeyLen  = 32
)

// CredentialHasher derives salted password digests. New digests use the
// configured scheme; Verify accepts digests of every known scheme.
type CredentialHasher struct {
	scheme string
}

// NewCredentialHasher returns a hasher writing digests with scheme. An empty
// scheme selects SchemeSHA256.
func NewCredentialHasher(scheme string) (*CredentialHasher, error) {
	switch scheme {
	case "", SchemeSHA256:
		return &CredentialHasher{scheme: SchemeSHA256}, nil
	case SchemeArgon2id:
		return &CredentialHasher{scheme: SchemeArgon2id}, nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", scheme)
	}
}

// GenerateSalt returns 16 random bytes as 32 lowercase hex characters.
func (h *CredentialHasher) GenerateSalt() string {
	b := make([]byte, saltBytes)
	if _, err := rand.Read(b); err != nil {
		panic(fmt.Sprintf("credential hasher: read random salt: %v", err))
	}
	return hex.EncodeToString(b)
}

// Hash panics when salt was not produced by GenerateSalt.
func (h *CredentialHasher) Hash(password, salt string) string {
	mustValidSalt(salt)
	if h.scheme == SchemeArgon2id {
		return argon2Digest(password, salt)
	}
	return sha256Digest(password, salt)
}

func (h *CredentialHasher) Verify(password, salt, digest string) bool {
	mustValidSalt(salt)
	var computed string
	if strings.HasPrefix(digest, argon2Prefix) {
		computed = argon2Digest(password, salt)
	} else {
		computed = sha256Digest(password, salt)
	}
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}

func sha256Digest(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}

func argon2Digest(password, salt string) string {
	key := argon2.IDKey([]byte(password), []byte(salt), argon2Time, argon2Memory, argon2Threads, argon2KeyLen)
	return argon2Prefix + hex.EncodeToString(key)
}

func mustValidSalt(salt string) {
	if len(salt) != saltBytes*2 {
		panic(fmt.Sprintf("credential hasher: salt must be %d hex characters, got %d", saltBytes*2, len(salt)))
	}
	for _, c := range salt {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			panic("credential hasher: salt is not lowercase hex")
		}
	}
}
