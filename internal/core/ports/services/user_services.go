package services

import (
	"context"

	"github.com/fadee/my_expenses_app/internal/core/domain"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by their ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
}

// UserAuthSvc defines authentication operations
type UserAuthSvc interface {
	// AuthenticateUser verifies the username and PIN and returns the user.
	AuthenticateUser(ctx context.Context, username string, pin string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserAuthSvc
}
