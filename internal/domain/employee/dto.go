package employee

import "github.com/cmlabs-hris/hris-workforce-stats/internal/pkg/validator"

const (
	MinSupportedAge = 0
	MaxSupportedAge = 150
)

// AgeRange bounds the fractional age of generated employees, inclusive.
type AgeRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// GenerateRequest is the dtoIn of the pipeline.
type GenerateRequest struct {
	Count int      `json:"count"`
	Age   AgeRange `json:"age"`
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	// Count
	if r.Count < 0 {
		errs.Add("count", "count must not be negative")
	}

	// Age bounds
	minOK := r.validateBound(&errs, "age.min", r.Age.Min)
	maxOK := r.validateBound(&errs, "age.max", r.Age.Max)

	if minOK && maxOK && r.Age.Min > r.Age.Max {
		errs = append(errs, validator.ValidationError{
			Field:   "age",
			Message: ErrInvalidAgeRange.Error(),
		})
	}

	return errs.Err()
}

func (r *GenerateRequest) validateBound(errs *validator.ValidationErrors, field string, v float64) bool {
	if !validator.IsFinite(v) {
		errs.Add(field, field+" must be a finite number")
		return false
	}
	if !validator.IsInRange(v, MinSupportedAge, MaxSupportedAge) {
		errs.Add(field, field+" must be between "+validator.Itoa(MinSupportedAge)+" and "+validator.Itoa(MaxSupportedAge))
		return false
	}
	return true
}
