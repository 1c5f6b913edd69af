package workouts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrWorkoutNotFound         = errors.New("workout not found")
	ErrWorkoutExerciseNotFound = errors.New("workout exercise not found")
	ErrSetNotFound             = errors.New("set not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, workout Workout) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if workout.CreatedAt.IsZero() {
		workout.CreatedAt = time.Now()
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workouts (user_id, name, date, notes, created_at)
			VALUES ($1, $2, $3, $4, $5)
		RETURNING id;`,
		workout.UserID, workout.Name, workout.Date, workout.Notes, workout.CreatedAt,
	).Scan(&workout.ID)
	if err != nil {
		return nil, fmt.Errorf("insert workout: %w", err)
	}

	span.SetAttributes(attribute.Int("workout.id", workout.ID))
	return &workout, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var workout Workout
	err = r.db.QueryRow(
		ctx,
		`SELECT id, user_id, name, date, notes, created_at FROM workouts WHERE id = $1;`,
		id,
	).Scan(
		&workout.ID, &workout.UserID, &workout.Name,
		&workout.Date, &workout.Notes, &workout.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWorkoutNotFound
	}
	if err != nil {
		return nil, err
	}

	return &workout, nil
}

// ListByDateRange returns the workouts of a user within [from, to], ordered
// by date ascending. Nil range bounds are open ended.
func (r *Repo) ListByDateRange(ctx context.Context, userID int, from, to *time.Time) (_ []Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listbydaterange")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	if from != nil {
		span.SetAttributes(attribute.String("from", from.String()))
	}
	if to != nil {
		span.SetAttributes(attribute.String("to", to.String()))
	}

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, name, date, notes, created_at
			FROM workouts
			WHERE user_id = $1
			AND ($2::date IS NULL OR date >= $2)
			AND ($3::date IS NULL OR date <= $3)
		ORDER BY date, id;`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	workouts := make([]Workout, 0)
	for rows.Next() {
		var w Workout
		if err := rows.Scan(&w.ID, &w.UserID, &w.Name, &w.Date, &w.Notes, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}
		workouts = append(workouts, w)
	}

	return workouts, nil
}

// Delete removes a workout. Its workout exercises and their sets go with it
// through the FK cascade.
func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	tag, err := r.db.Exec(
		ctx,
		`DELETE FROM workouts WHERE id = $1;`,
		id,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrWorkoutNotFound
	}
	return nil
}

func (r *Repo) AddExercise(ctx context.Context, workoutExercise WorkoutExercise) (_ *WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addexercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", workoutExercise.WorkoutID))
	span.SetAttributes(attribute.Int("exercise.id", workoutExercise.ExerciseID))

	if workoutExercise.CreatedAt.IsZero() {
		workoutExercise.CreatedAt = time.Now()
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO workout_exercises (workout_id, exercise_id, order_index, created_at)
			VALUES ($1, $2, $3, $4)
		RETURNING id;`,
		workoutExercise.WorkoutID, workoutExercise.ExerciseID,
		workoutExercise.OrderIndex, workoutExercise.CreatedAt,
	).Scan(&workoutExercise.ID)
	if err != nil {
		return nil, fmt.Errorf("insert workout exercise: %w", err)
	}

	return &workoutExercise, nil
}

func (r *Repo) GetWorkoutExercise(ctx context.Context, id int) (_ *WorkoutExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.getworkoutexercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	var we WorkoutExercise
	err = r.db.QueryRow(
		ctx,
		`SELECT id, workout_id, exercise_id, order_index, created_at
			FROM workout_exercises WHERE id = $1;`,
		id,
	).Scan(&we.ID, &we.WorkoutID, &we.ExerciseID, &we.OrderIndex, &we.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrWorkoutExerciseNotFound
	}
	if err != nil {
		return nil, err
	}

	return &we, nil
}

func (r *Repo) AddSet(ctx context.Context, set Set) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.addset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout-exercise.id", set.WorkoutExerciseID))

	if set.CreatedAt.IsZero() {
		set.CreatedAt = time.Now()
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO sets (workout_exercise_id, set_number, reps, weight, completed, notes, created_at)
			VALUES ($1, $2, $3, $4::numeric, $5, $6, $7)
		RETURNING id;`,
		set.WorkoutExerciseID, set.SetNumber, set.Reps,
		set.Weight.String(), set.Completed, set.Notes, set.CreatedAt,
	).Scan(&set.ID)
	if err != nil {
		return nil, fmt.Errorf("insert set: %w", err)
	}

	span.SetAttributes(attribute.Int("set.id", set.ID))
	return &set, nil
}

// UpdateSet applies a partial update and returns the resulting set row.
func (r *Repo) UpdateSet(ctx context.Context, params UpdateSetParams) (_ *Set, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.updateset")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("set.id", params.ID))

	var weightStr *string
	if params.Weight != nil {
		s := params.Weight.String()
		weightStr = &s
	}

	var set Set
	var scannedWeight string
	err = r.db.QueryRow(
		ctx,
		`UPDATE sets SET
			reps = COALESCE($1, reps),
			weight = COALESCE($2::numeric, weight),
			completed = COALESCE($3, completed),
			notes = COALESCE($4, notes)
		WHERE id = $5
		RETURNING id, workout_exercise_id, set_number, reps, weight::text, completed, notes, created_at;`,
		params.Reps, weightStr, params.Completed, params.Notes, params.ID,
	).Scan(
		&set.ID, &set.WorkoutExerciseID, &set.SetNumber, &set.Reps,
		&scannedWeight, &set.Completed, &set.Notes, &set.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrSetNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("update set: %w", err)
	}

	set.Weight, err = pkg.ParseWeight(scannedWeight)
	if err != nil {
		return nil, fmt.Errorf("parse set weight: %w", err)
	}

	return &set, nil
}

// ListExercisesWithSets fetches the workout exercises of a workout joined
// with their catalog exercise fields and left-joined with their sets. An
// exercise without sets still produces one row, with the set columns null.
func (r *Repo) ListExercisesWithSets(ctx context.Context, workoutID int) (_ []ExerciseSetRow, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listexerciseswithsets")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", workoutID))

	rows, err := r.db.Query(
		ctx,
		`SELECT
			we.id, we.exercise_id, e.name, e.category, e.description, we.order_index,
			s.id, s.set_number, s.reps, s.weight::text, s.completed, s.notes, s.created_at
		FROM workout_exercises we
		JOIN exercises e ON we.exercise_id = e.id
		LEFT JOIN sets s ON s.workout_exercise_id = we.id
		WHERE we.workout_id = $1
		ORDER BY we.order_index, we.id, s.set_number, s.id;`,
		workoutID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	result := make([]ExerciseSetRow, 0)
	for rows.Next() {
		var row ExerciseSetRow
		var setID, setNumber, setReps *int
		var setWeight, setNotes *string
		var setCompleted *bool
		var setCreatedAt *time.Time
		if err := rows.Scan(
			&row.WorkoutExerciseID, &row.ExerciseID, &row.ExerciseName,
			&row.ExerciseCategory, &row.ExerciseDescription, &row.OrderIndex,
			&setID, &setNumber, &setReps, &setWeight, &setCompleted, &setNotes, &setCreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}

		// null set id means the left join found no sets for this exercise
		if setID != nil {
			weight, err := pkg.ParseWeight(*setWeight)
			if err != nil {
				return nil, fmt.Errorf("parse weight of set %d: %w", *setID, err)
			}
			row.Set = &Set{
				ID:                *setID,
				WorkoutExerciseID: row.WorkoutExerciseID,
				SetNumber:         *setNumber,
				Reps:              *setReps,
				Weight:            weight,
				Completed:         *setCompleted,
				Notes:             setNotes,
				CreatedAt:         *setCreatedAt,
			}
		}

		result = append(result, row)
	}

	return result, nil
}
