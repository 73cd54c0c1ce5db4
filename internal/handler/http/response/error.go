package response

import (
	"errors"
	"net/http"

	"github.com/Shayanthavi/employee-management-go/internal/domain/attendance"
	"github.com/Shayanthavi/employee-management-go/internal/domain/auth"
	"github.com/Shayanthavi/employee-management-go/internal/domain/department"
	"github.com/Shayanthavi/employee-management-go/internal/domain/employee"
	"github.com/Shayanthavi/employee-management-go/internal/domain/leave"
	"github.com/Shayanthavi/employee-management-go/internal/domain/user"
	"github.com/Shayanthavi/employee-management-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses. Anything unrecognized
// becomes a 500; the reporting and profile endpoints use this directly.
func HandleError(w http.ResponseWriter, err error) {
	if handleKnownError(w, err) {
		return
	}
	InternalServerError(w, "An unexpected error occurred")
}

// HandleCRUDError is HandleError with a 400 fallback carrying the given
// message. The CRUD endpoints have always answered 400 to unexpected
// failures where the reporting endpoints answer 500; both are kept as-is.
func HandleCRUDError(w http.ResponseWriter, err error, fallback string) {
	if handleKnownError(w, err) {
		return
	}
	BadRequest(w, fallback)
}

func handleKnownError(w http.ResponseWriter, err error) bool {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		BadRequest(w, validationErrs.Error())
		return true
	}

	switch {
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance not found")
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave not found")
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentExists):
		BadRequest(w, "Department already exists")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameTaken):
		BadRequest(w, "Username already taken")
	case errors.Is(err, user.ErrEmailTaken):
		BadRequest(w, "Email already in use")
	case errors.Is(err, user.ErrWrongPassword):
		Unauthorized(w, "Current password is incorrect")
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid username or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or missing token")
	default:
		return false
	}
	return true
}
