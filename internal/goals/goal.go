package goals

import (
	"time"

	"github.com/2beens/liftlog/pkg"
)

// Goal is a target weight and reps a user wants to reach on an exercise,
// with an optional deadline.
type Goal struct {
	ID           int        `json:"id"`
	UserID       int        `json:"userId"`
	ExerciseID   int        `json:"exerciseId"`
	TargetWeight pkg.Weight `json:"targetWeight"`
	TargetReps   int        `json:"targetReps"`
	TargetDate   *time.Time `json:"targetDate,omitempty"`
	Achieved     bool       `json:"achieved"`
	AchievedDate *time.Time `json:"achievedDate,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// GoalWithProgress decorates a goal with its computed progress percentage.
type GoalWithProgress struct {
	Goal
	Progress float64 `json:"progress"`
}
