package workouts

import (
	"time"

	"github.com/2beens/liftlog/pkg"
)

type Workout struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	Name      string    `json:"name"`
	Date      time.Time `json:"date"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// WorkoutExercise places one catalog exercise into one workout at a given
// position. The same catalog exercise may appear multiple times in a workout,
// each placement is a separate row with its own order index.
type WorkoutExercise struct {
	ID         int       `json:"id"`
	WorkoutID  int       `json:"workoutId"`
	ExerciseID int       `json:"exerciseId"`
	OrderIndex int       `json:"orderIndex"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Set is one discrete attempt (weight x reps) within a workout exercise.
type Set struct {
	ID                int        `json:"id"`
	WorkoutExerciseID int        `json:"workoutExerciseId"`
	SetNumber         int        `json:"setNumber"`
	Reps              int        `json:"reps"`
	Weight            pkg.Weight `json:"weight"`
	Completed         bool       `json:"completed"`
	Notes             *string    `json:"notes,omitempty"`
	CreatedAt         time.Time  `json:"createdAt"`
}

// WorkoutDetails is the fully assembled workout -> exercises -> sets tree.
type WorkoutDetails struct {
	Workout
	Exercises []ExerciseDetails `json:"exercises"`
}

type ExerciseDetails struct {
	ID                  int     `json:"id"`
	ExerciseID          int     `json:"exerciseId"`
	ExerciseName        string  `json:"exerciseName"`
	ExerciseCategory    string  `json:"exerciseCategory"`
	ExerciseDescription *string `json:"exerciseDescription,omitempty"`
	OrderIndex          int     `json:"orderIndex"`
	Sets                []Set   `json:"sets"`
}

// ExerciseSetRow is one flat row of the workout exercises left-joined with
// their sets. Set is nil for an exercise that has no sets yet.
type ExerciseSetRow struct {
	WorkoutExerciseID   int
	ExerciseID          int
	ExerciseName        string
	ExerciseCategory    string
	ExerciseDescription *string
	OrderIndex          int
	Set                 *Set
}

// UpdateSetParams carries a partial set update, nil fields stay unchanged.
type UpdateSetParams struct {
	ID        int         `json:"id"`
	Reps      *int        `json:"reps,omitempty"`
	Weight    *pkg.Weight `json:"weight,omitempty"`
	Completed *bool       `json:"completed,omitempty"`
	Notes     *string     `json:"notes,omitempty"`
}
