package records

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

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, pb PersonalBest) (_ *PersonalBest, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", pb.UserID))
	span.SetAttributes(attribute.Int("exercise.id", pb.ExerciseID))

	if pb.CreatedAt.IsZero() {
		pb.CreatedAt = time.Now()
	}

	err = r.db.QueryRow(
		ctx,
		`INSERT INTO personal_bests (user_id, exercise_id, weight, reps, date_achieved, workout_id, created_at)
			VALUES ($1, $2, $3::numeric, $4, $5, $6, $7)
		RETURNING id;`,
		pb.UserID, pb.ExerciseID, pb.Weight.String(), pb.Reps,
		pb.DateAchieved, pb.WorkoutID, pb.CreatedAt,
	).Scan(&pb.ID)
	if err != nil {
		return nil, fmt.Errorf("insert personal best: %w", err)
	}

	return &pb, nil
}

// List returns the record history of a user, newest achievements first.
// Zero exerciseID means all exercises.
func (r *Repo) List(ctx context.Context, userID, exerciseID int) (_ []PersonalBest, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))

	rows, err := r.db.Query(
		ctx,
		`SELECT id, user_id, exercise_id, weight::text, reps, date_achieved, workout_id, created_at
			FROM personal_bests
			WHERE user_id = $1
			AND ($2 = 0 OR exercise_id = $2)
		ORDER BY date_achieved DESC, id DESC;`,
		userID, exerciseID,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	personalBests := make([]PersonalBest, 0)
	for rows.Next() {
		pb, err := scanPersonalBest(rows)
		if err != nil {
			return nil, err
		}
		personalBests = append(personalBests, *pb)
	}

	return personalBests, nil
}

// CurrentBest returns the standing record of a user for an exercise, or nil
// when the user has no records for it yet. Ties on weight rank by reps.
func (r *Repo) CurrentBest(ctx context.Context, userID, exerciseID int) (_ *PersonalBest, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.records.currentbest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("user.id", userID))
	span.SetAttributes(attribute.Int("exercise.id", exerciseID))

	row := r.db.QueryRow(
		ctx,
		`SELECT id, user_id, exercise_id, weight::text, reps, date_achieved, workout_id, created_at
			FROM personal_bests
			WHERE user_id = $1 AND exercise_id = $2
		ORDER BY weight DESC, reps DESC, id DESC
		LIMIT 1;`,
		userID, exerciseID,
	)

	pb, err := scanPersonalBest(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return pb, nil
}

func scanPersonalBest(row pgx.Row) (*PersonalBest, error) {
	var pb PersonalBest
	var weightStr string
	if err := row.Scan(
		&pb.ID, &pb.UserID, &pb.ExerciseID, &weightStr,
		&pb.Reps, &pb.DateAchieved, &pb.WorkoutID, &pb.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan personal best: %w", err)
	}

	weight, err := pkg.ParseWeight(weightStr)
	if err != nil {
		return nil, fmt.Errorf("parse personal best weight: %w", err)
	}
	pb.Weight = weight

	return &pb, nil
}
