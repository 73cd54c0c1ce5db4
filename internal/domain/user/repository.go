package user

import "context"

// UserRepository defines data access methods for application accounts.
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)

	GetByID(ctx context.Context, id int64) (User, error)

	// GetByUsername and GetByEmail return nil (no error) on a miss; they
	// back the uniqueness pre-checks on registration and profile updates.
	GetByUsername(ctx context.Context, username string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)

	Update(ctx context.Context, u User) (User, error)

	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
}
