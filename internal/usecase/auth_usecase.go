package usecase

import (
	"context"
	"errors"

	"go-careers-backend/internal/domain"
	"go-careers-backend/pkg/apperror"
	"go-careers-backend/pkg/auth"
)

type authUsecase struct {
	adminRepo domain.AdminRepository
	tokens    *auth.TokenService
}

func NewAuthUsecase(adminRepo domain.AdminRepository, tokens *auth.TokenService) domain.AuthUsecase {
	return &authUsecase{adminRepo: adminRepo, tokens: tokens}
}

// Login verifies admin credentials and mints a session token.
//
// The "no account" and "wrong password" cases are deliberately distinct in
// the user-facing text. That trades a little account enumeration for clearer
// UX on an admin-only login; do not "fix" it silently.
func (u *authUsecase) Login(ctx context.Context, email, password string) (*domain.Admin, string, error) {
	admin, err := u.adminRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, "", apperror.NotFound("No account found with the provided email address.")
		}
		return nil, "", apperror.Internal(err)
	}

	if !auth.VerifyPassword(password, admin.PasswordHash) {
		return nil, "", apperror.BadRequest("You entered a wrong password.")
	}

	token, err := u.tokens.Issue(admin.ID, admin.Email)
	if err != nil {
		return nil, "", apperror.Internal(err)
	}

	return admin, token, nil
}
