package employee

import (
	"context"
)

// EmployeeGenerator synthesizes employee records
type EmployeeGenerator interface {
	// Generate returns exactly req.Count employees whose age lies within req.Age
	Generate(ctx context.Context, req GenerateRequest) ([]Employee, error)
}
