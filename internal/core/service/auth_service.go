package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/Farhadhossain379/pythonFastApi/internal/core/domain"
	"github.com/Farhadhossain379/pythonFastApi/internal/core/ports"
)

const tokenTypeBearer = "bearer"

// AuthService implements registration, login and user provisioning on top of
// an account directory.
type AuthService struct {
	dir    ports.AccountDirectory
	hasher ports.CredentialHasher
	tokens ports.TokenIssuer
	log    zerolog.Logger
	now    func() time.Time
}

func NewAuthService(dir ports.AccountDirectory, hasher ports.CredentialHasher, tokens ports.TokenIssuer, log zerolog.Logger) *AuthService {
	return &AuthService{dir: dir, hasher: hasher, tokens: tokens, log: log, now: time.Now}
}

// Register creates a user with the default role.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	return s.create(ctx, in.Username, in.Email, in.Password, domain.RoleUser)
}

// Login checks the password and issues a session token. Unknown users and
// wrong passwords both yield domain.ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	user, err := s.dir.FindUserByUsername(ctx, username)
	if errors.Is(err, domain.ErrUserNotFound) {
		s.log.Info().Str("username", username).Msg("login rejected: unknown user")
		return nil, domain.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("login: find user: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordSalt, user.PasswordHash) {
		s.log.Info().Str("username", username).Msg("login rejected: wrong password")
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.ID, user.Username)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	if err := s.dir.InsertLoginEvent(ctx, domain.NewLoginEvent(user.Username, s.now())); err != nil {
		return nil, fmt.Errorf("login: record event: %w", err)
	}

	s.log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("user logged in")
	return &ports.LoginResult{AccessToken: token, TokenType: tokenTypeBearer, User: user}, nil
}

// EnsureUser creates the user unless the username is already taken.
func (s *AuthService) EnsureUser(ctx context.Context, in ports.ProvisionInput) (bool, error) {
	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	if _, err := s.create(ctx, in.Username, in.Email, in.Password, role); err != nil {
		if errors.Is(err, domain.ErrDuplicateUsername) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *AuthService) create(ctx context.Context, username, email, password, role string) (*domain.User, error) {
	_, err := s.dir.FindUserByUsername(ctx, username)
	switch {
	case err == nil:
		return nil, domain.ErrDuplicateUsername
	case !errors.Is(err, domain.ErrUserNotFound):
		return nil, fmt.Errorf("register: find user: %w", err)
	}

	salt := s.hasher.GenerateSalt()
	now := s.now().UTC()
	user, err := s.dir.InsertUser(ctx, domain.NewUser{
		Username:     username,
		Email:        email,
		PasswordHash: s.hasher.Hash(password, salt),
		PasswordSalt: salt,
		Role:         role,
		CreatedAt:    now,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateCredential) {
			return nil, err
		}
		return nil, fmt.Errorf("register: insert user: %w", err)
	}

	s.log.Info().Int64("user_id", user.ID).Str("username", user.Username).Str("role", role).Msg("user registered")
	return user, nil
}
