package employee

import (
	"time"
)

type Employee struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	FirstName    string `gorm:"not null"`
	LastName     string `gorm:"not null"`
	Email        string `gorm:"not null;uniqueIndex:uq_employee_email"`
	Phone        string
	Department   string `gorm:"not null"`
	Position     string `gorm:"not null"`
	Salary       *float64
	HireDate     *time.Time `gorm:"type:date"`
	Status       string     // Active, Inactive, On Leave
	Address      string
	LeaveBalance *int
	LeavesTaken  *int
}

func (Employee) TableName() string {
	return "employees"
}
