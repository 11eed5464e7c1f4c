package employee

import (
	"context"
	"database/sql"
	"time"

	employeeerrors "go-worksphere/internal/employee/errors"
	"go-worksphere/internal/shared/contextutil"

	"go.uber.org/zap"
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id int64) (EmployeeResponse, error)
	Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id int64) error
	Search(ctx context.Context, term string) ([]EmployeeResponse, error)
	GetByDepartment(ctx context.Context, department string) ([]EmployeeResponse, error)
	GetByStatus(ctx context.Context, status string) ([]EmployeeResponse, error)
	SearchWithFilters(ctx context.Context, term, department, status string) ([]EmployeeResponse, error)
	GetStatistics(ctx context.Context) (Statistics, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithClock(db, repo, time.Now, logger...)
}

// NewServiceWithClock lets tests pin the reference time the recent-hire
// window is computed against.
func NewServiceWithClock(db *sql.DB, repo Repository, now func() time.Time, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		now:    now,
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("email", req.Email),
	)

	hireDate, err := parseHireDate(req.HireDate)
	if err != nil {
		s.logger.Warn("create employee invalid hire date",
			zap.String("request_id", rid),
			zap.String("hire_date", req.HireDate),
		)
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.ExistsByEmail(ctx, req.Email)
	if err != nil {
		s.logger.Error("create employee email check failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	if exists {
		s.logger.Warn("create employee duplicate email",
			zap.String("request_id", rid),
			zap.String("email", req.Email),
		)
		return EmployeeResponse{}, employeeerrors.EmailAlreadyExists(req.Email)
	}

	empl := &Employee{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		Phone:        req.Phone,
		Department:   req.Department,
		Position:     req.Position,
		Salary:       req.Salary,
		HireDate:     hireDate,
		Status:       req.Status,
		Address:      req.Address,
		LeaveBalance: req.LeaveBalance,
		LeavesTaken:  req.LeavesTaken,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapDuplicateEmail(err, req.Email)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.Int64("employee_id", empl.ID),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested")
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, err
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetByID(ctx context.Context, id int64) (EmployeeResponse, error) {
	s.logger.Debug("get employee by id requested", zap.Int64("employee_id", id))
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("get employee by id failed", zap.Int64("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapNotFound(err, id)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, id int64, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("update employee requested",
		zap.String("request_id", rid),
		zap.Int64("employee_id", id),
	)

	hireDate, err := parseHireDate(req.HireDate)
	if err != nil {
		s.logger.Warn("update employee invalid hire date",
			zap.String("request_id", rid),
			zap.String("hire_date", req.HireDate),
		)
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByID(ctx, id)
	if err != nil {
		s.logger.Warn("update employee fetch existing failed",
			zap.String("request_id", rid),
			zap.Int64("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapNotFound(err, id)
	}

	// Uniqueness is only re-checked when the email actually changes
	if empl.Email != req.Email {
		exists, err := qtx.ExistsByEmail(ctx, req.Email)
		if err != nil {
			s.logger.Error("update employee email check failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}
		if exists {
			s.logger.Warn("update employee duplicate email",
				zap.String("request_id", rid),
				zap.String("email", req.Email),
			)
			return EmployeeResponse{}, employeeerrors.EmailAlreadyExists(req.Email)
		}
	}

	empl.FirstName = req.FirstName
	empl.LastName = req.LastName
	empl.Email = req.Email
	empl.Phone = req.Phone
	empl.Department = req.Department
	empl.Position = req.Position
	empl.Salary = req.Salary
	empl.HireDate = hireDate
	empl.Status = req.Status
	empl.Address = req.Address
	// LeaveBalance/LeavesTaken stay as persisted

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapDuplicateEmail(err, req.Email)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success",
		zap.String("request_id", rid),
		zap.Int64("employee_id", id),
	)

	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("delete employee requested",
		zap.String("request_id", rid),
		zap.Int64("employee_id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, id); err != nil {
		s.logger.Warn("delete employee fetch existing failed",
			zap.String("request_id", rid),
			zap.Int64("employee_id", id),
			zap.Error(err),
		)
		return mapNotFound(err, id)
	}

	if err := qtx.Delete(ctx, id); err != nil {
		s.logger.Error("delete employee failed", zap.String("request_id", rid), zap.Error(err))
		return mapNotFound(err, id)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	s.logger.Info("delete employee success",
		zap.String("request_id", rid),
		zap.Int64("employee_id", id),
	)
	return nil
}

func (s *service) Search(ctx context.Context, term string) ([]EmployeeResponse, error) {
	s.logger.Debug("search employees requested", zap.String("term", term))
	empls, err := s.repo.Search(ctx, term)
	if err != nil {
		s.logger.Error("search employees failed", zap.Error(err))
		return nil, err
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetByDepartment(ctx context.Context, department string) ([]EmployeeResponse, error) {
	s.logger.Debug("get employees by department requested", zap.String("department", department))
	empls, err := s.repo.FindByDepartment(ctx, department)
	if err != nil {
		s.logger.Error("get employees by department failed", zap.Error(err))
		return nil, err
	}

	return mapToListResponse(empls), nil
}

func (s *service) GetByStatus(ctx context.Context, status string) ([]EmployeeResponse, error) {
	s.logger.Debug("get employees by status requested", zap.String("status", status))
	empls, err := s.repo.FindByStatus(ctx, status)
	if err != nil {
		s.logger.Error("get employees by status failed", zap.Error(err))
		return nil, err
	}

	return mapToListResponse(empls), nil
}

func (s *service) SearchWithFilters(ctx context.Context, term, department, status string) ([]EmployeeResponse, error) {
	s.logger.Debug("search employees with filters requested",
		zap.String("term", term),
		zap.String("department", department),
		zap.String("status", status),
	)
	empls, err := s.repo.SearchWithFilters(ctx, term, department, status)
	if err != nil {
		s.logger.Error("search employees with filters failed", zap.Error(err))
		return nil, err
	}

	return mapToListResponse(empls), nil
}

// GetStatistics recomputes from a full scan on every call. Nothing is cached.
func (s *service) GetStatistics(ctx context.Context) (Statistics, error) {
	s.logger.Debug("get statistics requested")
	empls, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("get statistics failed", zap.Error(err))
		return Statistics{}, err
	}

	return ComputeStatistics(empls, s.now()), nil
}

func parseHireDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, employeeerrors.ErrInvalidHireDate
	}
	return &t, nil
}

func mapToResponse(empl Employee) EmployeeResponse {
	var hireDate *string
	if empl.HireDate != nil {
		formatted := empl.HireDate.Format("2006-01-02")
		hireDate = &formatted
	}
	return EmployeeResponse{
		ID:           empl.ID,
		FirstName:    empl.FirstName,
		LastName:     empl.LastName,
		Email:        empl.Email,
		Phone:        empl.Phone,
		Department:   empl.Department,
		Position:     empl.Position,
		Salary:       empl.Salary,
		HireDate:     hireDate,
		Status:       empl.Status,
		Address:      empl.Address,
		LeaveBalance: empl.LeaveBalance,
		LeavesTaken:  empl.LeavesTaken,
	}
}

func mapToListResponse(empls []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(empls))
	for i, e := range empls {
		res[i] = mapToResponse(e)
	}
	return res
}
