package statistics

import "github.com/cmlabs-hris/hris-workforce-stats/internal/domain/employee"

// ========== EMPLOYEE STATISTICS ==========

// StatisticsResponse is the dtoOut of the pipeline.
// Age-derived fields and MedianWorkload are nil when there are no employees.
type StatisticsResponse struct {
	Total                int                 `json:"total"`
	Workload10           int                 `json:"workload10"`
	Workload20           int                 `json:"workload20"`
	Workload30           int                 `json:"workload30"`
	Workload40           int                 `json:"workload40"`
	AverageAge           *float64            `json:"averageAge"`     // 1 decimal
	MinAge               *int                `json:"minAge"`         // rounded minimum
	MaxAge               *int                `json:"maxAge"`         // rounded maximum
	MedianAge            *int                `json:"medianAge"`      // rounded median
	MedianWorkload       *float64            `json:"medianWorkload"` // not rounded
	AverageWomenWorkload float64             `json:"averageWomenWorkload"`
	SortedByWorkload     []employee.Employee `json:"sortedByWorkload"`
}

// WorkloadCount returns the number of employees in tier w, 0 for unknown tiers.
func (r *StatisticsResponse) WorkloadCount(w employee.Workload) int {
	switch w {
	case employee.Workload10:
		return r.Workload10
	case employee.Workload20:
		return r.Workload20
	case employee.Workload30:
		return r.Workload30
	case employee.Workload40:
		return r.Workload40
	}
	return 0
}
