package records

import (
	"time"

	"github.com/2beens/liftlog/pkg"
)

// PersonalBest is one entry of a user's append-only record history for an
// exercise. The newest achievement never overwrites older rows.
type PersonalBest struct {
	ID           int        `json:"id"`
	UserID       int        `json:"userId"`
	ExerciseID   int        `json:"exerciseId"`
	Weight       pkg.Weight `json:"weight"`
	Reps         int        `json:"reps"`
	DateAchieved time.Time  `json:"dateAchieved"`
	WorkoutID    int        `json:"workoutId"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// Beats reports whether a set of (weight, reps) outranks this record.
// Heavier always wins, equal weight wins on more reps.
func (pb *PersonalBest) Beats(weight pkg.Weight, reps int) bool {
	if weight > pb.Weight {
		return true
	}
	return weight == pb.Weight && reps > pb.Reps
}
