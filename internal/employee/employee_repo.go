package employee

import (
	"context"
	"database/sql"
	"strings"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id int64) (*Employee, error)
	Update(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, id int64) error
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByDepartment(ctx context.Context, department string) ([]Employee, error)
	FindByStatus(ctx context.Context, status string) ([]Employee, error)
	Search(ctx context.Context, term string) ([]Employee, error)
	SearchWithFilters(ctx context.Context, term, department, status string) ([]Employee, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).First(&empl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ExistsByEmail compares exactly, so uniqueness is case-sensitive.
func (r *repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) FindByDepartment(ctx context.Context, department string) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Where("department = ?", department).
		Order("id ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByStatus(ctx context.Context, status string) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("id ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) Search(ctx context.Context, term string) ([]Employee, error) {
	var empls []Employee
	pattern := likePattern(term)
	err := r.db.WithContext(ctx).
		Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?",
			pattern, pattern, pattern).
		Order("id ASC").
		Find(&empls).Error
	return empls, err
}

// SearchWithFilters ANDs every non-empty filter; empty arguments impose no
// constraint. The text filter keeps Search's OR-substring semantics.
func (r *repository) SearchWithFilters(ctx context.Context, term, department, status string) ([]Employee, error) {
	q := r.db.WithContext(ctx).Model(&Employee{})

	if term != "" {
		pattern := likePattern(term)
		q = q.Where("LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ?",
			pattern, pattern, pattern)
	}
	if department != "" {
		q = q.Where("department = ?", department)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	var empls []Employee
	err := q.Order("id ASC").Find(&empls).Error
	return empls, err
}

func likePattern(term string) string {
	return "%" + strings.ToLower(term) + "%"
}
