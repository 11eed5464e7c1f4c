package employee

type CreateEmployeeRequest struct {
	FirstName    string   `json:"firstName" binding:"required"`
	LastName     string   `json:"lastName" binding:"required"`
	Email        string   `json:"email" binding:"required,email"`
	Phone        string   `json:"phone"`
	Department   string   `json:"department" binding:"required"`
	Position     string   `json:"position" binding:"required"`
	Salary       *float64 `json:"salary"`
	HireDate     string   `json:"hireDate"`
	Status       string   `json:"status"`
	Address      string   `json:"address"`
	LeaveBalance *int     `json:"leaveBalance"`
	LeavesTaken  *int     `json:"leavesTaken"`
}

// Updates replace the record wholesale, except leaveBalance/leavesTaken which
// only the create path accepts.
type UpdateEmployeeRequest struct {
	FirstName  string   `json:"firstName" binding:"required"`
	LastName   string   `json:"lastName" binding:"required"`
	Email      string   `json:"email" binding:"required,email"`
	Phone      string   `json:"phone"`
	Department string   `json:"department" binding:"required"`
	Position   string   `json:"position" binding:"required"`
	Salary     *float64 `json:"salary"`
	HireDate   string   `json:"hireDate"`
	Status     string   `json:"status"`
	Address    string   `json:"address"`
}

type EmployeeResponse struct {
	ID           int64    `json:"id"`
	FirstName    string   `json:"firstName"`
	LastName     string   `json:"lastName"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Department   string   `json:"department"`
	Position     string   `json:"position"`
	Salary       *float64 `json:"salary"`
	HireDate     *string  `json:"hireDate"`
	Status       string   `json:"status"`
	Address      string   `json:"address"`
	LeaveBalance *int     `json:"leaveBalance"`
	LeavesTaken  *int     `json:"leavesTaken"`
}

// Statistics is the dashboard payload. Breakdowns are counts grouped by a
// categorical field value.
type Statistics struct {
	TotalEmployees      int              `json:"totalEmployees"`
	StatusBreakdown     map[string]int64 `json:"statusBreakdown"`
	DepartmentBreakdown map[string]int64 `json:"departmentBreakdown"`
	AverageSalary       float64          `json:"averageSalary"`
	TotalSalary         float64          `json:"totalSalary"`
	RecentHires         int64            `json:"recentHires"`
}
