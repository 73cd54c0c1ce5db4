package auth

import (
	"context"

	"github.com/Shayanthavi/employee-management-go/internal/domain/user"
)

// AuthService defines username/password authentication
type AuthService interface {
	// Login verifies credentials and issues a bearer token
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)

	// Register creates a new account with uniqueness pre-checks
	Register(ctx context.Context, req RegisterRequest) (user.User, error)
}
