package statistics

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"github.com/cmlabs-hris/hris-workforce-stats/internal/domain/employee"
	"github.com/cmlabs-hris/hris-workforce-stats/internal/domain/statistics"
	"github.com/cmlabs-hris/hris-workforce-stats/internal/pkg/stats"
	"github.com/cmlabs-hris/hris-workforce-stats/internal/pkg/utils"
)

type StatisticsServiceImpl struct {
	now    func() time.Time
	logger *slog.Logger
}

func NewStatisticsService(now func() time.Time, logger *slog.Logger) statistics.StatisticsService {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &StatisticsServiceImpl{
		now:    now,
		logger: logger,
	}
}

// GetEmployeeStatistics aggregates employees against the wall clock.
func GetEmployeeStatistics(employees []employee.Employee) *statistics.StatisticsResponse {
	return aggregate(employees, time.Now())
}

// CalculateMedian returns the sort-and-pick median, or 0 for no values.
func CalculateMedian[T stats.Number](values []T) float64 {
	median, _ := stats.Median(values)
	return median
}

func (s *StatisticsServiceImpl) GetEmployeeStatistics(ctx context.Context, employees []employee.Employee) (*statistics.StatisticsResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := aggregate(employees, s.now())

	s.logger.Debug("Computed employee statistics",
		"total", result.Total,
		"workload10", result.Workload10,
		"workload20", result.Workload20,
		"workload30", result.Workload30,
		"workload40", result.Workload40,
	)
	return result, nil
}

func aggregate(employees []employee.Employee, now time.Time) *statistics.StatisticsResponse {
	ages := make([]float64, len(employees))
	workloads := make([]employee.Workload, len(employees))
	var womenWorkloads []employee.Workload

	result := &statistics.StatisticsResponse{
		Total: len(employees),
	}

	for i, e := range employees {
		ages[i] = utils.CalculateAge(e.Birthdate, now)
		workloads[i] = e.Workload

		switch e.Workload {
		case employee.Workload10:
			result.Workload10++
		case employee.Workload20:
			result.Workload20++
		case employee.Workload30:
			result.Workload30++
		case employee.Workload40:
			result.Workload40++
		}

		if e.Gender == employee.Female {
			womenWorkloads = append(womenWorkloads, e.Workload)
		}
	}

	// Age-derived fields stay nil for an empty population.
	if mean, ok := stats.Mean(ages); ok {
		averageAge := stats.Round1(mean)
		result.AverageAge = &averageAge
	}
	if lo, hi, ok := stats.Extrema(ages); ok {
		minAge, maxAge := stats.RoundInt(lo), stats.RoundInt(hi)
		result.MinAge = &minAge
		result.MaxAge = &maxAge
	}
	if median, ok := stats.Median(ages); ok {
		medianAge := stats.RoundInt(median)
		result.MedianAge = &medianAge
	}
	if median, ok := stats.Median(workloads); ok {
		result.MedianWorkload = &median
	}

	if mean, ok := stats.Mean(womenWorkloads); ok {
		result.AverageWomenWorkload = stats.Round1(mean)
	}

	result.SortedByWorkload = sortByWorkload(employees)

	return result
}

// sortByWorkload returns a stably sorted copy; the input order is left intact.
func sortByWorkload(employees []employee.Employee) []employee.Employee {
	sorted := make([]employee.Employee, len(employees))
	copy(sorted, employees)
	slices.SortStableFunc(sorted, func(a, b employee.Employee) int {
		return int(a.Workload) - int(b.Workload)
	})
	return sorted
}
