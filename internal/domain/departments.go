package domain

import (
	"math"
	"sort"
)

// previousPeriodFactor simulates the prior-period headcount until historical data exists.
const previousPeriodFactor = 0.9

// DepartmentStat is the headcount trend of one department.
type DepartmentStat struct {
	Department    string  `json:"department"`
	CurrentCount  int     `json:"currentCount"`
	PreviousCount int     `json:"previousCount"`
	GrowthPercent float64 `json:"growthPercent"`
}

// DepartmentStats maps department name to its statistics.
type DepartmentStats map[string]DepartmentStat

// AggregateDepartments groups the full collection by exact department name.
// Records without a department are left out.
func AggregateDepartments(employees []Employee) DepartmentStats {
	counts := make(map[string]int)
	for i := range employees {
		if dept := employees[i].Department; dept != "" {
			counts[dept]++
		}
	}

	stats := make(DepartmentStats, len(counts))
	for dept, current := range counts {
		previous := int(math.Floor(float64(current) * previousPeriodFactor))
		stats[dept] = DepartmentStat{
			Department:    dept,
			CurrentCount:  current,
			PreviousCount: previous,
			GrowthPercent: growthPercent(current, previous),
		}
	}
	return stats
}

// growthPercent is rounded to one decimal; a zero baseline yields 0.
func growthPercent(current, previous int) float64 {
	if previous == 0 {
		return 0
	}
	g := float64(current-previous) / float64(previous) * 100
	return math.Round(g*10) / 10
}

// Sorted returns the statistics ordered by department name.
func (s DepartmentStats) Sorted() []DepartmentStat {
	result := make([]DepartmentStat, 0, len(s))
	for _, stat := range s {
		result = append(result, stat)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Department < result[j].Department
	})
	return result
}

// Total returns the sum of current counts.
func (s DepartmentStats) Total() int {
	total := 0
	for _, stat := range s {
		total += stat.CurrentCount
	}
	return total
}
