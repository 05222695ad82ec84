package utils

import "time"

// YearDuration is a Julian year: 365.25 days.
const YearDuration = 8766 * time.Hour

// CalculateAge returns the fractional number of years between birthdate and now.
func CalculateAge(birthdate, now time.Time) float64 {
	return float64(now.Sub(birthdate)) / float64(YearDuration)
}
