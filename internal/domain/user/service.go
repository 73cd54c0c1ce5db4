package user

import "context"

// UserService defines business logic for the signed-in user's own account.
// The identity comes from the bearer token claims in the request context.
type UserService interface {
	// GetProfile returns the current user's profile, without the password hash
	GetProfile(ctx context.Context) (User, error)

	// UpdateProfile partially updates the current user's profile, with
	// uniqueness pre-checks on username and email
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (User, error)

	// ChangePassword re-verifies the current password before storing a new one
	ChangePassword(ctx context.Context, req ChangePasswordRequest) error
}
