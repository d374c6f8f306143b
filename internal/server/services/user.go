// Package services contains server-side business logic. This file implements
// UserService, which handles registration, login, Google sign-in, and issuing
// JWTs.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/puptrack/puptrack/internal/common"
	"github.com/puptrack/puptrack/internal/dbx"
	"github.com/puptrack/puptrack/internal/server/auth"
	"github.com/puptrack/puptrack/internal/server/config"
	"github.com/puptrack/puptrack/internal/server/models"
	"github.com/puptrack/puptrack/internal/server/password"
	"github.com/puptrack/puptrack/internal/server/repositories/repomanager"
)

// IdentityVerifier validates an externally issued identity token and returns
// the verified email claim.
type IdentityVerifier interface {
	Verify(ctx context.Context, rawToken string) (string, error)
}

// RegisterInput carries the fields accepted by Register. Email or Phone must
// be present; the rest of the profile is optional.
type RegisterInput struct {
	Name     string
	Address  string
	Phone    string
	Email    string
	Password string
}

// UserService provides authentication-related operations:
// - Register: create users and mint a token
// - Login: verify credentials and mint a token
// - GoogleAuth: verify a Google ID token and find-or-create the local user
type UserService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	identity              IdentityVerifier
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewUserService constructs a UserService using repositories and server config.
func NewUserService(db *sql.DB, m repomanager.RepositoryManager, identity IdentityVerifier, cfg *config.Config) *UserService {
	return &UserService{
		db:                    db,
		repomanager:           m,
		identity:              identity,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// Register creates a new account and returns a signed token. The duplicate
// check and the insert run in one transaction; the schema's unique index on
// email is the final word, surfacing as common.ErrorAlreadyExists either way.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (string, error) {
	if input.Password == "" {
		return "", fmt.Errorf("%w: password is required", common.ErrorValidation)
	}
	if input.Email == "" && input.Phone == "" {
		return "", fmt.Errorf("%w: email or phone is required", common.ErrorValidation)
	}

	hash, err := password.Hash(input.Password)
	if err != nil {
		return "", common.ErrorInternal
	}

	user := &models.User{
		Name:         input.Name,
		Address:      input.Address,
		Phone:        input.Phone,
		Email:        input.Email,
		PasswordHash: hash,
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)
		if input.Email != "" {
			_, err := repo.GetUserByEmail(ctx, input.Email)
			if err == nil {
				return common.ErrorAlreadyExists
			}
			if !errors.Is(err, common.ErrorNotFound) {
				return err
			}
		}
		_, err := repo.Create(ctx, user)
		return err
	}); err != nil {
		return "", s.mapStoreError(err)
	}

	return s.issueToken(user.LoginIdentifier())
}

// Login verifies the identifier (email or phone) and password and returns a
// signed token. common.ErrorNotFound and common.ErrInvalidCredentials are
// distinct here; the transport layer collapses them into one client message.
func (s *UserService) Login(ctx context.Context, identifier, pass string) (string, error) {
	if identifier == "" || pass == "" {
		return "", fmt.Errorf("%w: identifier and password are required", common.ErrorValidation)
	}

	repo := s.repomanager.Users(s.db)
	user, err := repo.GetUserByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorNotFound
		}
		return "", s.mapStoreError(err)
	}

	// Federated accounts carry no local password.
	if user.PasswordHash == "" {
		return "", common.ErrInvalidCredentials
	}

	ok, err := password.Verify(pass, user.PasswordHash)
	if err != nil {
		return "", common.ErrorInternal
	}
	if !ok {
		return "", common.ErrInvalidCredentials
	}

	return s.issueToken(user.LoginIdentifier())
}

// GoogleAuth verifies a Google-issued ID token, finds or creates the local
// account keyed on the verified email, and returns a signed token.
func (s *UserService) GoogleAuth(ctx context.Context, rawIDToken string) (string, error) {
	if rawIDToken == "" {
		return "", fmt.Errorf("%w: idToken is required", common.ErrorValidation)
	}

	email, err := s.identity.Verify(ctx, rawIDToken)
	if err != nil {
		return "", err
	}

	if err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Users(tx)
		_, err := repo.GetUserByEmail(ctx, email)
		if errors.Is(err, common.ErrorNotFound) {
			_, err = repo.Create(ctx, &models.User{Email: email})
			// a concurrent first sign-in may have won the race
			if errors.Is(err, common.ErrorAlreadyExists) {
				return nil
			}
			return err
		}
		return err
	}); err != nil {
		return "", s.mapStoreError(err)
	}

	return s.issueToken(email)
}

// --- helpers below ---

func (s *UserService) issueToken(subject string) (string, error) {
	token, err := auth.GenerateToken(subject, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// mapStoreError keeps flow-control sentinels intact and collapses everything
// else into ErrTimeout or ErrorInternal so no driver detail escapes.
func (s *UserService) mapStoreError(err error) error {
	switch {
	case errors.Is(err, common.ErrorAlreadyExists),
		errors.Is(err, common.ErrorNotFound),
		errors.Is(err, common.ErrorValidation):
		return err
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, common.ErrTimeout):
		return common.ErrTimeout
	default:
		return common.ErrorInternal
	}
}
