package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/auth"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/domain/worker"
	"github.com/mohsinsultanriyad-crypto/Fastep-Work/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	workerRepo worker.WorkerRepository
	jwtService jwt.Service
}

func NewAuthService(workerRepo worker.WorkerRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		workerRepo: workerRepo,
		jwtService: jwtService,
	}
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userData, err := a.workerRepo.GetByPhone(ctx, req.Phone)
	if err != nil {
		if errors.Is(err, worker.ErrWorkerNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by phone: %w", err)
	}

	if !userData.IsActive {
		return auth.TokenResponse{}, worker.ErrWorkerInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(userData)
}

// Refresh implements auth.AuthService.
func (a *AuthServiceImpl) Refresh(ctx context.Context, req auth.RefreshTokenRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	userID, err := a.jwtService.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		return auth.TokenResponse{}, auth.ErrInvalidToken
	}

	userData, err := a.workerRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, worker.ErrWorkerNotFound) {
			return auth.TokenResponse{}, auth.ErrInvalidToken
		}
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if !userData.IsActive {
		return auth.TokenResponse{}, worker.ErrWorkerInactive
	}

	return a.issueTokens(userData)
}

func (a *AuthServiceImpl) issueTokens(userData worker.Worker) (auth.TokenResponse, error) {
	var tokenResponse auth.TokenResponse
	var err error

	tokenResponse.AccessToken, tokenResponse.AccessTokenExpiresIn, err = a.jwtService.GenerateAccessToken(userData.ID, userData.Name, userData.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	tokenResponse.RefreshToken, tokenResponse.RefreshTokenExpiresIn, err = a.jwtService.GenerateRefreshToken(userData.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}

	tokenResponse.User = worker.NewWorkerResponse(userData)
	return tokenResponse, nil
}
