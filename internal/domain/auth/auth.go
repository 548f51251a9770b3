package auth

import (
	"context"
	"errors"

	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/worker"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/pkg/validator"
)

var (
	ErrInvalidCredentials = errors.New("invalid phone number or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

type LoginRequest struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone is required",
		})
	}

	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r *RefreshTokenRequest) Validate() error {
	if validator.IsEmpty(r.RefreshToken) {
		return validator.ValidationErrors{{
			Field:   "refresh_token",
			Message: "refresh_token is required",
		}}
	}
	return nil
}

type TokenResponse struct {
	AccessToken           string                `json:"access_token"`
	AccessTokenExpiresIn  int64                 `json:"access_token_expires_in"`
	RefreshToken          string                `json:"refresh_token"`
	RefreshTokenExpiresIn int64                 `json:"refresh_token_expires_in"`
	User                  worker.WorkerResponse `json:"user"`
}

// AuthService handles phone+password login and token refresh. Registration is
// admin-only: new workers are created through the worker service.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Refresh(ctx context.Context, req RefreshTokenRequest) (TokenResponse, error)
}
