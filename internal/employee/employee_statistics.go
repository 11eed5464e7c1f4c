package employee

import (
	"math"
	"strings"
	"time"
)

// The three statuses the dashboard recognises. Anything else is excluded from
// the status breakdown (not an error).
var canonicalStatuses = []string{"Active", "Inactive", "On Leave"}

const recentHireWindow = 30 * 24 * time.Hour

// ComputeStatistics aggregates the full record set. Pure: results depend only
// on the employees given and the reference time, so callers pin `now` in
// tests.
func ComputeStatistics(empls []Employee, now time.Time) Statistics {
	stats := Statistics{
		TotalEmployees:      len(empls),
		StatusBreakdown:     make(map[string]int64, len(canonicalStatuses)),
		DepartmentBreakdown: make(map[string]int64),
	}

	for _, status := range canonicalStatuses {
		var count int64
		for _, e := range empls {
			if strings.EqualFold(e.Status, status) {
				count++
			}
		}
		stats.StatusBreakdown[status] = count
	}

	// Exact string grouping, no case folding
	for _, e := range empls {
		stats.DepartmentBreakdown[e.Department]++
	}

	var total float64
	var withSalary int
	for _, e := range empls {
		if e.Salary != nil {
			total += *e.Salary
			withSalary++
		}
	}
	if withSalary > 0 {
		stats.AverageSalary = round2(total / float64(withSalary))
		stats.TotalSalary = round2(total)
	}

	cutoff := now.Add(-recentHireWindow)
	for _, e := range empls {
		if e.HireDate != nil && e.HireDate.After(cutoff) {
			stats.RecentHires++
		}
	}

	return stats
}

// round2 rounds half-up at two decimals
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
