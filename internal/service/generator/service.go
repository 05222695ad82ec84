package generator

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/cmlabs-hris/hris-workforce-stats/internal/domain/employee"
	"github.com/cmlabs-hris/hris-workforce-stats/internal/fixtures"
	"github.com/cmlabs-hris/hris-workforce-stats/internal/pkg/random"
	"github.com/cmlabs-hris/hris-workforce-stats/internal/pkg/utils"
)

// DefaultMaxAttempts bounds the birthdate rejection loop per employee.
const DefaultMaxAttempts = 100000

type Config struct {
	MaxAttempts int
	Pools       fixtures.NamePools
}

type GeneratorServiceImpl struct {
	src         random.Source
	now         func() time.Time
	pools       fixtures.NamePools
	maxAttempts int
	logger      *slog.Logger
}

func NewGeneratorService(
	src random.Source,
	now func() time.Time,
	cfg Config,
	logger *slog.Logger,
) employee.EmployeeGenerator {
	if now == nil {
		now = time.Now
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if !cfg.Pools.Complete() {
		cfg.Pools = fixtures.DefaultNamePools()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &GeneratorServiceImpl{
		src:         src,
		now:         now,
		pools:       cfg.Pools,
		maxAttempts: cfg.MaxAttempts,
		logger:      logger,
	}
}

// GenerateEmployeeData generates employees with a freshly seeded source and the wall clock.
func GenerateEmployeeData(ctx context.Context, req employee.GenerateRequest) ([]employee.Employee, error) {
	return NewGeneratorService(random.New(0), time.Now, Config{}, nil).Generate(ctx, req)
}

func (s *GeneratorServiceImpl) Generate(ctx context.Context, req employee.GenerateRequest) ([]employee.Employee, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	employees := make([]employee.Employee, 0, req.Count)

	for i := 0; i < req.Count; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		emp, err := s.generateEmployee(now, req.Age)
		if err != nil {
			s.logger.Warn("Failed to generate employee", "index", i, "age_min", req.Age.Min, "age_max", req.Age.Max, "error", err)
			return nil, fmt.Errorf("generate employee %d: %w", i, err)
		}
		employees = append(employees, emp)
	}

	s.logger.Debug("Generated employees", "count", len(employees), "age_min", req.Age.Min, "age_max", req.Age.Max)
	return employees, nil
}

// generateEmployee draws gender, birthdate, name, surname and workload in that order.
func (s *GeneratorServiceImpl) generateEmployee(now time.Time, ageRange employee.AgeRange) (employee.Employee, error) {
	gender := employee.Female
	if s.src.Float64() < 0.5 {
		gender = employee.Male
	}

	birthdate, err := s.generateBirthdate(now, ageRange.Min, ageRange.Max)
	if err != nil {
		return employee.Employee{}, err
	}

	return employee.Employee{
		Gender:    gender,
		Birthdate: birthdate,
		Name:      random.Pick(s.src, s.pools.Given[gender]),
		Surname:   random.Pick(s.src, s.pools.Surnames),
		Workload:  random.Pick(s.src, employee.Workloads),
	}, nil
}

// generateBirthdate rejection-samples a UTC midnight date whose age at now is within [minAge, maxAge].
// Day of month is capped at 28 so every candidate is a valid date.
func (s *GeneratorServiceImpl) generateBirthdate(now time.Time, minAge, maxAge float64) (time.Time, error) {
	currentYear := now.UTC().Year()

	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		age := random.Uniform(s.src, minAge, maxAge)
		year := currentYear - int(math.Floor(age))
		month := time.Month(s.src.IntN(12) + 1)
		day := s.src.IntN(28) + 1

		candidate := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		actual := utils.CalculateAge(candidate, now)
		if actual >= minAge && actual <= maxAge {
			return candidate, nil
		}
	}

	return time.Time{}, employee.ErrBirthdateAttemptsExhausted
}
