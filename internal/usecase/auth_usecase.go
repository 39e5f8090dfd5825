package usecase

import (
	"context"
	"errors"

	"hr-registry/internal/pkg/jwt"
	"hr-registry/internal/repository"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

type AuthUsecase interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type Auth struct {
	admins repository.AdminRepository
	tokens jwt.Service
	logger zerolog.Logger
}

func NewAuthUsecase(admins repository.AdminRepository, tokens jwt.Service, logger zerolog.Logger) *Auth {
	return &Auth{admins: admins, tokens: tokens, logger: logger}
}

// Login verifies admin credentials and issues a bearer token for the
// approval endpoints. Unknown email and wrong password are
// indistinguishable to the caller.
func (u *Auth) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", ErrInvalidCredentials
	}

	admin, err := u.admins.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAdminNotFound) {
			return "", ErrInvalidCredentials
		}
		u.logger.Error().Err(err).Msg("admin lookup failed")
		return "", ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := u.tokens.GenerateToken(admin.ID, admin.Email)
	if err != nil {
		u.logger.Error().Err(err).Msg("token generation failed")
		return "", ErrInternal
	}
	return token, nil
}
