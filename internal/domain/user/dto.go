package user

import (
	"github.com/Shayanthavi/employee-management-go/internal/pkg/validator"
)

// UpdateProfileRequest carries a partial profile update. Username and email
// follow the usual non-empty merge rule; the remaining fields are pointers
// so that an explicitly supplied empty string clears the stored value, which
// is how the previous system behaved for profile text fields.
type UpdateProfileRequest struct {
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	FullName   *string `json:"fullName"`
	Phone      *string `json:"phone"`
	Department *string `json:"department"`
	Position   *string `json:"position"`
	Bio        *string `json:"bio"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Username != "" && !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "username must be 3-50 characters (letters, digits, . _ -)",
		})
	}

	if r.Email != "" && !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email format is invalid",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ApplyTo merges the request into the stored account.
func (r *UpdateProfileRequest) ApplyTo(u *User) {
	if r.Username != "" {
		u.Username = r.Username
	}
	if r.Email != "" {
		u.Email = r.Email
	}
	if r.FullName != nil {
		u.FullName = *r.FullName
	}
	if r.Phone != nil {
		u.Phone = *r.Phone
	}
	if r.Department != nil {
		u.Department = *r.Department
	}
	if r.Position != nil {
		u.Position = *r.Position
	}
	if r.Bio != nil {
		u.Bio = *r.Bio
	}
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (r *ChangePasswordRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CurrentPassword) {
		errs = append(errs, validator.ValidationError{
			Field:   "currentPassword",
			Message: "current password is required",
		})
	}

	if validator.IsEmpty(r.NewPassword) {
		errs = append(errs, validator.ValidationError{
			Field:   "newPassword",
			Message: "new password is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
