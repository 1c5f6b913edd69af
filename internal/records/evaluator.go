package records

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/liftlog/internal/telemetry/metrics"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/internal/workouts"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=evaluator_mocks_test.go -package=records_test

type recordsRepo interface {
	Add(ctx context.Context, pb PersonalBest) (*PersonalBest, error)
	CurrentBest(ctx context.Context, userID, exerciseID int) (*PersonalBest, error)
}

type workoutInfoProvider interface {
	Get(ctx context.Context, id int) (*workouts.Workout, error)
	GetWorkoutExercise(ctx context.Context, id int) (*workouts.WorkoutExercise, error)
}

// Evaluator checks completed sets against the standing personal best of the
// lifter for that exercise and appends a new record entry when the set beats
// it.
type Evaluator struct {
	repo         recordsRepo
	workoutsRepo workoutInfoProvider
	metrics      *metrics.Manager
}

func NewEvaluator(
	repo recordsRepo,
	workoutsRepo workoutInfoProvider,
	metricsManager *metrics.Manager,
) *Evaluator {
	return &Evaluator{
		repo:         repo,
		workoutsRepo: workoutsRepo,
		metrics:      metricsManager,
	}
}

// EvaluateCompletedSet records a new personal best if the given set beats
// the current one: strictly heavier, or equally heavy with more reps. A set
// that is not completed, or whose workout exercise / workout is gone by the
// time we look, changes nothing.
func (e *Evaluator) EvaluateCompletedSet(ctx context.Context, set workouts.Set) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "evaluator.records.evaluate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("set.id", set.ID))

	if !set.Completed {
		return nil
	}

	workoutExercise, err := e.workoutsRepo.GetWorkoutExercise(ctx, set.WorkoutExerciseID)
	if errors.Is(err, workouts.ErrWorkoutExerciseNotFound) {
		log.Warnf("evaluate set %d: workout exercise %d gone, skipping", set.ID, set.WorkoutExerciseID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("get workout exercise %d: %w", set.WorkoutExerciseID, err)
	}

	workout, err := e.workoutsRepo.Get(ctx, workoutExercise.WorkoutID)
	if errors.Is(err, workouts.ErrWorkoutNotFound) {
		log.Warnf("evaluate set %d: workout %d gone, skipping", set.ID, workoutExercise.WorkoutID)
		return nil
	}
	if err != nil {
		return fmt.Errorf("get workout %d: %w", workoutExercise.WorkoutID, err)
	}

	currentBest, err := e.repo.CurrentBest(ctx, workout.UserID, workoutExercise.ExerciseID)
	if err != nil {
		return fmt.Errorf("get current best: %w", err)
	}

	// first record for this exercise always counts, otherwise the set has
	// to actually beat the standing one
	if currentBest != nil && !currentBest.Beats(set.Weight, set.Reps) {
		return nil
	}

	addedPb, err := e.repo.Add(ctx, PersonalBest{
		UserID:       workout.UserID,
		ExerciseID:   workoutExercise.ExerciseID,
		Weight:       set.Weight,
		Reps:         set.Reps,
		DateAchieved: workout.Date,
		WorkoutID:    workout.ID,
	})
	if err != nil {
		return fmt.Errorf("add personal best: %w", err)
	}

	e.metrics.CounterPersonalBests.Inc()
	log.Debugf(
		"new personal best %d: user %d, exercise %d, %s x %d",
		addedPb.ID, addedPb.UserID, addedPb.ExerciseID, addedPb.Weight.String(), addedPb.Reps,
	)

	return nil
}
