package work

import (
	"math"
	"time"
)

// ElapsedHours converts raw clock boundaries into worked hours: the span from
// start to end minus the break. An end before the start is taken as a shift
// crossing midnight, so 24 hours are added first. The result never goes below
// zero (an oversized break clamps to 0).
func ElapsedHours(start, end time.Time, breakMinutes int) float64 {
	if end.Before(start) {
		end = end.Add(24 * time.Hour)
	}

	worked := end.Sub(start) - time.Duration(breakMinutes)*time.Minute
	hours := worked.Hours()
	if hours < 0 {
		return 0
	}
	return hours
}

// SplitRegularOvertime partitions total worked hours at the regular threshold.
// regular + overtime always equals totalHours for non-negative input.
func SplitRegularOvertime(totalHours, regularThreshold float64) (regular, overtime float64) {
	regular = math.Min(totalHours, regularThreshold)
	overtime = math.Max(0, totalHours-regularThreshold)
	return regular, overtime
}
