package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/liftlog/internal/telemetry/metrics"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workouts_test

const dateLayout = "2006-01-02"

type workoutsRepo interface {
	Add(ctx context.Context, workout Workout) (*Workout, error)
	Get(ctx context.Context, id int) (*Workout, error)
	ListByDateRange(ctx context.Context, userID int, from, to *time.Time) ([]Workout, error)
	Delete(ctx context.Context, id int) error
	AddExercise(ctx context.Context, workoutExercise WorkoutExercise) (*WorkoutExercise, error)
	AddSet(ctx context.Context, set Set) (*Set, error)
	UpdateSet(ctx context.Context, params UpdateSetParams) (*Set, error)
}

type workoutAggregator interface {
	Details(ctx context.Context, workoutID int) (*WorkoutDetails, error)
}

// setEvaluator checks a completed set for a new personal best; implemented
// by the records package.
type setEvaluator interface {
	EvaluateCompletedSet(ctx context.Context, set Set) error
}

type Handler struct {
	repo       workoutsRepo
	aggregator workoutAggregator
	evaluator  setEvaluator
	metrics    *metrics.Manager
}

func NewHandler(
	repo workoutsRepo,
	aggregator workoutAggregator,
	evaluator setEvaluator,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:       repo,
		aggregator: aggregator,
		evaluator:  evaluator,
		metrics:    metricsManager,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var workout Workout
	if err := json.NewDecoder(r.Body).Decode(&workout); err != nil {
		log.Tracef("new workout, unmarshal json params: %s", err)
		http.Error(w, "add workout failed", http.StatusBadRequest)
		return
	}

	if workout.UserID <= 0 || workout.Name == "" || workout.Date.IsZero() {
		http.Error(w, "error, workout user, name or date missing", http.StatusBadRequest)
		return
	}

	addedWorkout, err := handler.repo.Add(ctx, workout)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			http.Error(w, "error, user does not exist", http.StatusBadRequest)
			return
		}
		log.Errorf("failed to add new workout for user %d: %s", workout.UserID, err)
		http.Error(w, "error, failed to add new workout", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterWorkouts.Inc()

	addedWorkoutJson, err := json.Marshal(addedWorkout)
	if err != nil {
		log.Errorf("failed to marshal new workout: %s", err)
		http.Error(w, "error, failed to add new workout", http.StatusInternalServerError)
		return
	}

	log.Debugf("new workout added: %d", addedWorkout.ID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedWorkoutJson, http.StatusCreated)
}

func (handler *Handler) HandleDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.details")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	details, err := handler.aggregator.Details(ctx, id)
	if errors.Is(err, ErrWorkoutNotFound) {
		http.Error(w, "workout not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to get workout %d details: %s", id, err)
		http.Error(w, "failed to get workout details", http.StatusInternalServerError)
		return
	}

	detailsJson, err := json.Marshal(details)
	if err != nil {
		log.Errorf("failed to marshal workout details: %s", err)
		http.Error(w, "failed to marshal workout details", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, detailsJson, http.StatusOK)
}

func (handler *Handler) HandleListByDateRange(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.listbydaterange")
	defer span.End()

	vars := mux.Vars(r)
	userID, err := strconv.Atoi(vars["userId"])
	if err != nil {
		http.Error(w, "error, user id NaN", http.StatusBadRequest)
		return
	}

	var from, to *time.Time
	if fromStr := r.URL.Query().Get("from"); fromStr != "" {
		parsed, err := time.Parse(dateLayout, fromStr)
		if err != nil {
			http.Error(w, "error, invalid <from> date", http.StatusBadRequest)
			return
		}
		from = &parsed
	}
	if toStr := r.URL.Query().Get("to"); toStr != "" {
		parsed, err := time.Parse(dateLayout, toStr)
		if err != nil {
			http.Error(w, "error, invalid <to> date", http.StatusBadRequest)
			return
		}
		to = &parsed
	}

	workouts, err := handler.repo.ListByDateRange(ctx, userID, from, to)
	if err != nil {
		log.Errorf("failed to list workouts for user %d: %s", userID, err)
		http.Error(w, "failed to get workouts", http.StatusInternalServerError)
		return
	}

	workoutsJson, err := json.Marshal(workouts)
	if err != nil {
		log.Errorf("failed to marshal workouts: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, workoutsJson, http.StatusOK)
}

type DeleteWorkoutResponse struct {
	DeletedID int `json:"deletedId"`
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrWorkoutNotFound) {
			http.Error(w, "workout not found", http.StatusNotFound)
			return
		}
		// personal best rows keep a plain FK to the workout they were
		// achieved in, the record history outlives any workout cleanup
		if pkg.IsForeignKeyViolationError(err) {
			http.Error(w, "error, workout has personal best records", http.StatusConflict)
			return
		}
		log.Errorf("failed to delete workout %d: %s", id, err)
		http.Error(w, "workout not deleted", http.StatusInternalServerError)
		return
	}

	deleteRespJson, err := json.Marshal(DeleteWorkoutResponse{
		DeletedID: id,
	})
	if err != nil {
		log.Errorf("failed to marshal delete response: %s", err)
		http.Error(w, "failed to marshal delete response", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(deleteRespJson))
}

func (handler *Handler) HandleAddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.addexercise")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	workoutID, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, workout id NaN", http.StatusBadRequest)
		return
	}

	var workoutExercise WorkoutExercise
	if err := json.NewDecoder(r.Body).Decode(&workoutExercise); err != nil {
		log.Tracef("add exercise to workout, unmarshal json params: %s", err)
		http.Error(w, "add exercise to workout failed", http.StatusBadRequest)
		return
	}
	workoutExercise.WorkoutID = workoutID

	if workoutExercise.ExerciseID <= 0 || workoutExercise.OrderIndex <= 0 {
		http.Error(w, "error, exercise id or order index invalid", http.StatusBadRequest)
		return
	}

	added, err := handler.repo.AddExercise(ctx, workoutExercise)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			http.Error(w, "error, workout or exercise does not exist", http.StatusBadRequest)
			return
		}
		log.Errorf("failed to add exercise %d to workout %d: %s",
			workoutExercise.ExerciseID, workoutID, err)
		http.Error(w, "error, failed to add exercise to workout", http.StatusInternalServerError)
		return
	}

	addedJson, err := json.Marshal(added)
	if err != nil {
		log.Errorf("failed to marshal workout exercise: %s", err)
		http.Error(w, "error, failed to add exercise to workout", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedJson, http.StatusCreated)
}

func (handler *Handler) HandleAddSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.newset")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var set Set
	if err := json.NewDecoder(r.Body).Decode(&set); err != nil {
		log.Tracef("new set, unmarshal json params: %s", err)
		http.Error(w, "add set failed", http.StatusBadRequest)
		return
	}

	if set.WorkoutExerciseID <= 0 || set.SetNumber <= 0 || set.Reps < 0 || set.Weight < 0 {
		http.Error(w, "error, invalid set params", http.StatusBadRequest)
		return
	}

	addedSet, err := handler.repo.AddSet(ctx, set)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			http.Error(w, "error, workout exercise does not exist", http.StatusBadRequest)
			return
		}
		log.Errorf("failed to add new set: %s", err)
		http.Error(w, "error, failed to add new set", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterSetsLogged.Inc()
	handler.maybeEvaluate(ctx, addedSet)

	addedSetJson, err := json.Marshal(addedSet)
	if err != nil {
		log.Errorf("failed to marshal new set: %s", err)
		http.Error(w, "error, failed to add new set", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedSetJson, http.StatusCreated)
}

func (handler *Handler) HandleUpdateSet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.updateset")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		http.Error(w, "error, id NaN", http.StatusBadRequest)
		return
	}

	var params UpdateSetParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		log.Tracef("update set, unmarshal json params: %s", err)
		http.Error(w, "update set failed", http.StatusBadRequest)
		return
	}
	params.ID = id

	if params.Reps != nil && *params.Reps < 0 {
		http.Error(w, "error, reps negative", http.StatusBadRequest)
		return
	}
	if params.Weight != nil && *params.Weight < 0 {
		http.Error(w, "error, weight negative", http.StatusBadRequest)
		return
	}

	updatedSet, err := handler.repo.UpdateSet(ctx, params)
	if errors.Is(err, ErrSetNotFound) {
		http.Error(w, "set not found", http.StatusNotFound)
		return
	}
	if err != nil {
		log.Errorf("failed to update set %d: %s", id, err)
		http.Error(w, "error, failed to update set", http.StatusInternalServerError)
		return
	}

	handler.maybeEvaluate(ctx, updatedSet)

	updatedSetJson, err := json.Marshal(updatedSet)
	if err != nil {
		log.Errorf("failed to marshal updated set: %s", err)
		http.Error(w, "failed to marshal updated set", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(updatedSetJson))
}

// maybeEvaluate runs the personal best check for a completed set. An
// evaluation failure is logged and never fails the set create/update flow.
func (handler *Handler) maybeEvaluate(ctx context.Context, set *Set) {
	if !set.Completed {
		return
	}
	if err := handler.evaluator.EvaluateCompletedSet(ctx, *set); err != nil {
		log.Errorf("failed to evaluate completed set %d: %s", set.ID, err)
	}
}
