// Package stats holds the small numeric helpers shared by the statistics engine.
package stats

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Number is any value the helpers can aggregate.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Median returns the sort-and-pick median of values. Even-length input
// yields the mean of the two central elements. ok is false for an empty slice.
// values is not modified.
func Median[T Number](values []T) (median float64, ok bool) {
	n := len(values)
	if n == 0 {
		return 0, false
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	mid := n / 2
	if n%2 == 0 {
		return (float64(sorted[mid-1]) + float64(sorted[mid])) / 2, true
	}
	return float64(sorted[mid]), true
}

// Mean returns the arithmetic mean of values. ok is false for an empty slice.
func Mean[T Number](values []T) (mean float64, ok bool) {
	if len(values) == 0 {
		return 0, false
	}

	var sum float64
	for _, v := range values {
		sum += float64(v)
	}
	return sum / float64(len(values)), true
}

// Extrema returns the minimum and maximum of values. ok is false for an empty slice.
func Extrema[T Number](values []T) (lo, hi T, ok bool) {
	if len(values) == 0 {
		return lo, hi, false
	}
	return slices.Min(values), slices.Max(values), true
}

// Round1 rounds f to one decimal place, half away from zero.
func Round1(f float64) float64 {
	return decimal.NewFromFloat(f).Round(1).InexactFloat64()
}

// RoundInt rounds f to the nearest integer, half away from zero.
func RoundInt(f float64) int {
	return int(decimal.NewFromFloat(f).Round(0).IntPart())
}
