package goals

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, goal Goal) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", goal.UserID))
	span.SetAttributes(attribute.Int("exercise.id", goal.ExerciseID))

	if goal.CreatedAt.IsZero() {
		goal.CreatedAt = time.Now()
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO goals (user_id, exercise_id, target_weight, target_reps, target_date, achieved, achieved_date, created_at)
			VALUES ($1, $2, $3::numeric, $4, $5, $6, $7, $8)
		RETURNING id;`,
		goal.UserID, goal.ExerciseID, goal.TargetWeight.String(), goal.TargetReps,
		goal.TargetDate, goal.Achieved, goal.AchievedDate, goal.CreatedAt,
	).Scan(&goal.ID)
	if err != nil {
		return nil, fmt.Errorf("insert goal: %w", err)
	}

	return &goal, nil
}

// ListByUser returns the goals of a user, newest first.
func (r *Repo) ListByUser(ctx context.Context, userID int) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.listbyuser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, exercise_id, target_weight::text, target_reps, target_date, achieved, achieved_date, created_at
			FROM goals
			WHERE user_id = $1
		ORDER BY created_at DESC, id DESC;`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	goals := make([]Goal, 0)
	for rows.Next() {
		var goal Goal
		var targetWeightStr string
		if err := rows.Scan(
			&goal.ID, &goal.UserID, &goal.ExerciseID, &targetWeightStr, &goal.TargetReps,
			&goal.TargetDate, &goal.Achieved, &goal.AchievedDate, &goal.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("rows scan: %w", err)
		}

		goal.TargetWeight, err = pkg.ParseWeight(targetWeightStr)
		if err != nil {
			return nil, fmt.Errorf("parse goal target weight: %w", err)
		}

		goals = append(goals, goal)
	}

	return goals, nil
}
