package employee

import (
	"errors"
	"strings"

	employeeerrors "go-worksphere/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapNotFound(err error, id int64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.EmployeeNotFound(id)
	}
	return err
}

// mapDuplicateEmail catches unique-index violations that slip past the
// application-level existence pre-check (a create/create race). The index is
// the real guarantee; the pre-check only makes the common case readable.
func mapDuplicateEmail(err error, email string) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_employee_email" {
			return employeeerrors.EmailAlreadyExists(email)
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_employee_email") {
		return employeeerrors.EmailAlreadyExists(email)
	}
	// sqlite wording
	if strings.Contains(errMsg, "unique constraint failed") && strings.Contains(errMsg, "employees.email") {
		return employeeerrors.EmailAlreadyExists(email)
	}

	return err
}
