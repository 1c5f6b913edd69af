package goals

import (
	"github.com/2beens/liftlog/internal/records"
)

// Progress returns how far along a goal is, in percent, based on the best
// lift so far: 100 * best weight / target weight, capped at 100. No record
// yet, or a non-positive target, means zero. Target reps never gate the
// percentage, the goal is tracked by weight alone.
func Progress(goal Goal, best *records.PersonalBest) float64 {
	if best == nil || goal.TargetWeight <= 0 {
		return 0
	}

	// weights are integer hundredths, so the two-decimal percentage is
	// computed exactly in basis points, no float in between
	basisPoints := int64(best.Weight) * 10000 / int64(goal.TargetWeight)
	if basisPoints > 10000 {
		basisPoints = 10000
	}

	return float64(basisPoints) / 100
}
