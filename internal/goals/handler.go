package goals

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/2beens/liftlog/internal/records"
	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=goals_test

type goalsRepo interface {
	Add(ctx context.Context, goal Goal) (*Goal, error)
	ListByUser(ctx context.Context, userID int) ([]Goal, error)
}

type bestProvider interface {
	CurrentBest(ctx context.Context, userID, exerciseID int) (*records.PersonalBest, error)
}

type Handler struct {
	repo        goalsRepo
	recordsRepo bestProvider
}

func NewHandler(repo goalsRepo, recordsRepo bestProvider) *Handler {
	return &Handler{
		repo:        repo,
		recordsRepo: recordsRepo,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.new")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	var goal Goal
	if err := json.NewDecoder(r.Body).Decode(&goal); err != nil {
		log.Tracef("new goal, unmarshal json params: %s", err)
		http.Error(w, "add goal failed", http.StatusBadRequest)
		return
	}

	if goal.UserID <= 0 || goal.ExerciseID <= 0 {
		http.Error(w, "error, goal user or exercise missing", http.StatusBadRequest)
		return
	}
	if goal.TargetWeight <= 0 {
		http.Error(w, "error, goal target weight must be positive", http.StatusBadRequest)
		return
	}
	if goal.TargetReps <= 0 {
		http.Error(w, "error, goal target reps must be positive", http.StatusBadRequest)
		return
	}

	addedGoal, err := handler.repo.Add(ctx, goal)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			http.Error(w, "error, user or exercise does not exist", http.StatusBadRequest)
			return
		}
		log.Errorf("failed to add new goal for user %d: %s", goal.UserID, err)
		http.Error(w, "error, failed to add new goal", http.StatusInternalServerError)
		return
	}

	addedGoalJson, err := json.Marshal(addedGoal)
	if err != nil {
		log.Errorf("failed to marshal new goal: %s", err)
		http.Error(w, "error, failed to add new goal", http.StatusInternalServerError)
		return
	}

	log.Debugf("new goal added: %d", addedGoal.ID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedGoalJson, http.StatusCreated)
}

// HandleListByUser returns the goals of a user, each with its progress
// percentage computed against the standing personal best.
func (handler *Handler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.goals.listbyuser")
	defer span.End()

	vars := mux.Vars(r)
	userID, err := strconv.Atoi(vars["userId"])
	if err != nil {
		http.Error(w, "error, user id NaN", http.StatusBadRequest)
		return
	}

	goals, err := handler.repo.ListByUser(ctx, userID)
	if err != nil {
		log.Errorf("failed to list goals for user %d: %s", userID, err)
		http.Error(w, "failed to get goals", http.StatusInternalServerError)
		return
	}

	goalsWithProgress := make([]GoalWithProgress, 0, len(goals))
	for _, goal := range goals {
		best, err := handler.recordsRepo.CurrentBest(ctx, goal.UserID, goal.ExerciseID)
		if err != nil {
			log.Errorf("failed to get current best for goal %d: %s", goal.ID, err)
			http.Error(w, "failed to get goals", http.StatusInternalServerError)
			return
		}
		goalsWithProgress = append(goalsWithProgress, GoalWithProgress{
			Goal:     goal,
			Progress: Progress(goal, best),
		})
	}

	goalsJson, err := json.Marshal(goalsWithProgress)
	if err != nil {
		log.Errorf("failed to marshal goals: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, goalsJson, http.StatusOK)
}
