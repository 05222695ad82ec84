package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/cmlabs-hris/hris-workforce-stats/internal/domain/employee"
	"github.com/cmlabs-hris/hris-workforce-stats/internal/domain/statistics"
)

type ReportService interface {
	// Build generates req.Count employees and returns their statistics
	Build(ctx context.Context, req employee.GenerateRequest) (*statistics.StatisticsResponse, error)
}

type ReportServiceImpl struct {
	generator         employee.EmployeeGenerator
	statisticsService statistics.StatisticsService
	logger            *slog.Logger
}

func NewReportService(
	generator employee.EmployeeGenerator,
	statisticsService statistics.StatisticsService,
	logger *slog.Logger,
) ReportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ReportServiceImpl{
		generator:         generator,
		statisticsService: statisticsService,
		logger:            logger,
	}
}

func (s *ReportServiceImpl) Build(ctx context.Context, req employee.GenerateRequest) (*statistics.StatisticsResponse, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return nil, err
	}

	employees, err := s.generator.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to generate employees: %w", err)
	}

	result, err := s.statisticsService.GetEmployeeStatistics(ctx, employees)
	if err != nil {
		return nil, fmt.Errorf("failed to compute statistics: %w", err)
	}

	s.logger.Info("Built employee statistics report", "count", req.Count, "age_min", req.Age.Min, "age_max", req.Age.Max, "total", result.Total)
	return result, nil
}
