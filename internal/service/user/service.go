package user

import (
	"context"

	"github.com/Shayanthavi/employee-management-go/internal/domain/auth"
	"github.com/Shayanthavi/employee-management-go/internal/domain/user"
	"github.com/Shayanthavi/employee-management-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	userRepo user.UserRepository
}

func NewUserService(userRepo user.UserRepository) user.UserService {
	return &UserServiceImpl{userRepo: userRepo}
}

// currentUserID extracts the authenticated user's id from the bearer token
// claims placed in the request context by the auth middleware.
func (s *UserServiceImpl) currentUserID(ctx context.Context) (int64, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return 0, auth.ErrInvalidToken
	}

	id, ok := jwt.UserIDFromClaims(claims)
	if !ok {
		return 0, auth.ErrInvalidToken
	}
	return id, nil
}

// GetProfile implements user.UserService.
func (s *UserServiceImpl) GetProfile(ctx context.Context) (user.User, error) {
	userID, err := s.currentUserID(ctx)
	if err != nil {
		return user.User{}, err
	}

	return s.userRepo.GetByID(ctx, userID)
}

// UpdateProfile implements user.UserService.
func (s *UserServiceImpl) UpdateProfile(ctx context.Context, req user.UpdateProfileRequest) (user.User, error) {
	if err := req.Validate(); err != nil {
		return user.User{}, err
	}

	userID, err := s.currentUserID(ctx)
	if err != nil {
		return user.User{}, err
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, err
	}

	if req.Username != "" && req.Username != u.Username {
		existing, err := s.userRepo.GetByUsername(ctx, req.Username)
		if err != nil {
			return user.User{}, err
		}
		if existing != nil && existing.ID != userID {
			return user.User{}, user.ErrUsernameTaken
		}
	}

	if req.Email != "" && req.Email != u.Email {
		existing, err := s.userRepo.GetByEmail(ctx, req.Email)
		if err != nil {
			return user.User{}, err
		}
		if existing != nil && existing.ID != userID {
			return user.User{}, user.ErrEmailTaken
		}
	}

	req.ApplyTo(&u)
	return s.userRepo.Update(ctx, u)
}

// ChangePassword implements user.UserService.
func (s *UserServiceImpl) ChangePassword(ctx context.Context, req user.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userID, err := s.currentUserID(ctx)
	if err != nil {
		return err
	}

	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return user.ErrWrongPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.userRepo.UpdatePassword(ctx, userID, string(hashed))
}
