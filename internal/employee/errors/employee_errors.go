package employeeerrors

import (
	"fmt"
	"net/http"

	"go-worksphere/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidHireDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid hireDate format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)

// EmployeeNotFound carries the offending id so callers can tell which lookup
// failed.
func EmployeeNotFound(id int64) *apperror.AppError {
	return apperror.New(
		apperror.CodeNotFound,
		fmt.Sprintf("Employee not found with id: %d", id),
		http.StatusNotFound,
	)
}

// EmailAlreadyExists surfaces as 400, not 409: the published API contract
// treats duplicate email as a validation failure.
func EmailAlreadyExists(email string) *apperror.AppError {
	return apperror.New(
		apperror.CodeConflict,
		"Email already exists: "+email,
		http.StatusBadRequest,
	)
}
