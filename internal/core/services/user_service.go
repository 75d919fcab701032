package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fadee/my_expenses_app/internal/apperrors"
	"github.com/fadee/my_expenses_app/internal/core/domain"
	portsrepo "github.com/fadee/my_expenses_app/internal/core/ports/repositories"
	portssvc "github.com/fadee/my_expenses_app/internal/core/ports/services"
	"github.com/fadee/my_expenses_app/internal/middleware"
	"github.com/fadee/my_expenses_app/internal/utils"
)

// ErrInvalidCredentials is returned when the username or PIN does not match.
var ErrInvalidCredentials = errors.New("invalid username or PIN")

// userService provides user lookup and authentication.
type userService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &userService{userRepo: userRepo}
}

// Ensure userService implements the portssvc.UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*userService)(nil)

// GetUserByID retrieves a user by their ID.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user %s: %w", userID, err)
	}
	return user, nil
}

// AuthenticateUser verifies the username and PIN and returns the user.
// Lookup misses and PIN mismatches are indistinguishable to the caller.
func (s *userService) AuthenticateUser(ctx context.Context, username string, pin string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		logger.Error("Failed to look up user for login", "error", err)
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	if !utils.CheckPINHash(pin, user.PINHash) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}
