package employee

import (
	"github.com/Shayanthavi/employee-management-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
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

type UpdateEmployeeRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Department string `json:"department"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

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

// ApplyTo merges the request into an existing record. Empty fields are
// treated as "not provided" and keep their stored value, so a field cannot
// be cleared through update. Known quirk carried over from the previous
// system; clients rely on it.
func (r *UpdateEmployeeRequest) ApplyTo(e *Employee) {
	if r.Name != "" {
		e.Name = r.Name
	}
	if r.Email != "" {
		e.Email = r.Email
	}
	if r.Phone != "" {
		e.Phone = r.Phone
	}
	if r.Department != "" {
		e.Department = r.Department
	}
}
