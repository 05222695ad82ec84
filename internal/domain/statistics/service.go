package statistics

import (
	"context"

	"github.com/cmlabs-hris/hris-workforce-stats/internal/domain/employee"
)

// StatisticsService defines the interface for employee statistics
type StatisticsService interface {
	// GetEmployeeStatistics aggregates employees into a fresh StatisticsResponse
	GetEmployeeStatistics(ctx context.Context, employees []employee.Employee) (*StatisticsResponse, error)
}
