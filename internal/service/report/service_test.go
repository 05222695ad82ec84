package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-workforce-stats/internal/domain/employee"
	"github.com/cmlabs-hris/hris-workforce-stats/internal/domain/statistics"
	"github.com/cmlabs-hris/hris-workforce-stats/internal/pkg/logger"
	"github.com/cmlabs-hris/hris-workforce-stats/internal/pkg/random"
	"github.com/cmlabs-hris/hris-workforce-stats/internal/pkg/utils"
	"github.com/cmlabs-hris/hris-workforce-stats/internal/pkg/validator"
	"github.com/cmlabs-hris/hris-workforce-stats/internal/service/generator"
	statisticsService "github.com/cmlabs-hris/hris-workforce-stats/internal/service/statistics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.October, 15, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return testNow }

func newTestReportService(seed uint64) ReportService {
	log := logger.Discard()
	gen := generator.NewGeneratorService(random.New(seed), fixedClock, generator.Config{}, log)
	stats := statisticsService.NewStatisticsService(fixedClock, log)
	return NewReportService(gen, stats, log)
}

type failingGenerator struct{ err error }

func (g failingGenerator) Generate(context.Context, employee.GenerateRequest) ([]employee.Employee, error) {
	return nil, g.err
}

type recordingStatistics struct {
	got []employee.Employee
}

func (s *recordingStatistics) GetEmployeeStatistics(_ context.Context, employees []employee.Employee) (*statistics.StatisticsResponse, error) {
	s.got = employees
	return &statistics.StatisticsResponse{Total: len(employees)}, nil
}

func TestReportService_Build_EndToEnd(t *testing.T) {
	svc := newTestReportService(100)
	req := employee.GenerateRequest{Count: 100, Age: employee.AgeRange{Min: 18, Max: 65}}

	result, err := svc.Build(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 100, result.Total)
	assert.Len(t, result.SortedByWorkload, 100)
	assert.Equal(t, result.Total, result.Workload10+result.Workload20+result.Workload30+result.Workload40)

	require.NotNil(t, result.MinAge)
	require.NotNil(t, result.MaxAge)
	require.NotNil(t, result.AverageAge)
	require.NotNil(t, result.MedianAge)
	require.NotNil(t, result.MedianWorkload)
	assert.GreaterOrEqual(t, *result.MinAge, 18)
	assert.LessOrEqual(t, *result.MaxAge, 65)
	assert.GreaterOrEqual(t, *result.AverageAge, 18.0)
	assert.LessOrEqual(t, *result.AverageAge, 65.0)
	assert.GreaterOrEqual(t, *result.MedianAge, *result.MinAge)
	assert.LessOrEqual(t, *result.MedianAge, *result.MaxAge)
	assert.Contains(t, []float64{10, 15, 20, 25, 30, 35, 40}, *result.MedianWorkload)

	for i, e := range result.SortedByWorkload {
		age := utils.CalculateAge(e.Birthdate, testNow)
		assert.GreaterOrEqual(t, age, 18-1e-6)
		assert.LessOrEqual(t, age, 65+1e-6)
		if i > 0 {
			assert.LessOrEqual(t, int(result.SortedByWorkload[i-1].Workload), int(e.Workload))
		}
	}
}

func TestReportService_Build_ZeroCount(t *testing.T) {
	result, err := newTestReportService(1).Build(context.Background(), employee.GenerateRequest{Count: 0, Age: employee.AgeRange{Min: 18, Max: 65}})
	require.NoError(t, err)

	assert.Zero(t, result.Total)
	assert.Nil(t, result.AverageAge)
	assert.Empty(t, result.SortedByWorkload)
}

func TestReportService_Build_InvalidRequest(t *testing.T) {
	cases := []employee.GenerateRequest{
		{Count: -1, Age: employee.AgeRange{Min: 18, Max: 65}},
		{Count: 10, Age: employee.AgeRange{Min: 65, Max: 18}},
	}

	for _, req := range cases {
		_, err := newTestReportService(1).Build(context.Background(), req)
		require.Error(t, err)

		var validationErrs validator.ValidationErrors
		assert.True(t, errors.As(err, &validationErrs))
	}
}

func TestReportService_Build_GeneratorError(t *testing.T) {
	stats := &recordingStatistics{}
	svc := NewReportService(failingGenerator{err: employee.ErrBirthdateAttemptsExhausted}, stats, logger.Discard())

	_, err := svc.Build(context.Background(), employee.GenerateRequest{Count: 1, Age: employee.AgeRange{Min: 30, Max: 30}})
	require.Error(t, err)
	assert.ErrorIs(t, err, employee.ErrBirthdateAttemptsExhausted)
	assert.Nil(t, stats.got)
}

func TestReportService_Build_PassesGeneratedEmployees(t *testing.T) {
	stats := &recordingStatistics{}
	gen := generator.NewGeneratorService(random.New(3), fixedClock, generator.Config{}, logger.Discard())
	svc := NewReportService(gen, stats, logger.Discard())

	result, err := svc.Build(context.Background(), employee.GenerateRequest{Count: 7, Age: employee.AgeRange{Min: 30, Max: 40}})
	require.NoError(t, err)
	assert.Len(t, stats.got, 7)
	assert.Equal(t, 7, result.Total)
}

func TestReportService_Build_Deterministic(t *testing.T) {
	req := employee.GenerateRequest{Count: 30, Age: employee.AgeRange{Min: 18, Max: 65}}

	first, err := newTestReportService(77).Build(context.Background(), req)
	require.NoError(t, err)
	second, err := newTestReportService(77).Build(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
