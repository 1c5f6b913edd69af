package workouts

import (
	"context"
	"fmt"
	"sort"

	"github.com/2beens/liftlog/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=aggregator_mocks_test.go -package=workouts_test

type aggregatorRepo interface {
	Get(ctx context.Context, id int) (*Workout, error)
	ListExercisesWithSets(ctx context.Context, workoutID int) ([]ExerciseSetRow, error)
}

// Aggregator reconstructs the nested workout view from the flat join rows
// the repo returns.
type Aggregator struct {
	repo aggregatorRepo
}

func NewAggregator(repo aggregatorRepo) *Aggregator {
	return &Aggregator{
		repo: repo,
	}
}

// Details assembles the workout -> exercises -> sets tree for one workout.
// A missing workout yields ErrWorkoutNotFound, a workout without exercises
// yields an empty exercises list.
func (a *Aggregator) Details(ctx context.Context, workoutID int) (_ *WorkoutDetails, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "aggregator.workouts.details")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", workoutID))

	workout, err := a.repo.Get(ctx, workoutID)
	if err != nil {
		return nil, err
	}

	rows, err := a.repo.ListExercisesWithSets(ctx, workoutID)
	if err != nil {
		return nil, fmt.Errorf("list exercises with sets: %w", err)
	}

	// group the flat rows by workout exercise id, keeping first-seen order:
	// two placements of the same catalog exercise stay separate entries
	exerciseByID := make(map[int]*ExerciseDetails)
	exercisesOrdered := make([]*ExerciseDetails, 0)
	for _, row := range rows {
		exercise, ok := exerciseByID[row.WorkoutExerciseID]
		if !ok {
			exercise = &ExerciseDetails{
				ID:                  row.WorkoutExerciseID,
				ExerciseID:          row.ExerciseID,
				ExerciseName:        row.ExerciseName,
				ExerciseCategory:    row.ExerciseCategory,
				ExerciseDescription: row.ExerciseDescription,
				OrderIndex:          row.OrderIndex,
				Sets:                make([]Set, 0),
			}
			exerciseByID[row.WorkoutExerciseID] = exercise
			exercisesOrdered = append(exercisesOrdered, exercise)
		}

		// a row without a set comes from the outer join, nothing to collect
		if row.Set != nil {
			exercise.Sets = append(exercise.Sets, *row.Set)
		}
	}

	// the fetch is already ordered, the final stable sorts keep equal keys
	// in their fetch order
	sort.SliceStable(exercisesOrdered, func(i, j int) bool {
		return exercisesOrdered[i].OrderIndex < exercisesOrdered[j].OrderIndex
	})

	exercises := make([]ExerciseDetails, 0, len(exercisesOrdered))
	for _, exercise := range exercisesOrdered {
		sort.SliceStable(exercise.Sets, func(i, j int) bool {
			return exercise.Sets[i].SetNumber < exercise.Sets[j].SetNumber
		})
		exercises = append(exercises, *exercise)
	}

	return &WorkoutDetails{
		Workout:   *workout,
		Exercises: exercises,
	}, nil
}
