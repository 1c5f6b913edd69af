package records

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/2beens/liftlog/internal/telemetry/tracing"
	"github.com/2beens/liftlog/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=records_test

type recordsReader interface {
	List(ctx context.Context, userID, exerciseID int) ([]PersonalBest, error)
	CurrentBest(ctx context.Context, userID, exerciseID int) (*PersonalBest, error)
}

type Handler struct {
	repo recordsReader
}

func NewHandler(repo recordsReader) *Handler {
	return &Handler{
		repo: repo,
	}
}

// HandleList returns the record history of a user, optionally filtered to
// one exercise via the exerciseId query param.
func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.list")
	defer span.End()

	vars := mux.Vars(r)
	userID, err := strconv.Atoi(vars["userId"])
	if err != nil {
		http.Error(w, "error, user id NaN", http.StatusBadRequest)
		return
	}

	exerciseID := 0
	if exerciseIDStr := r.URL.Query().Get("exerciseId"); exerciseIDStr != "" {
		exerciseID, err = strconv.Atoi(exerciseIDStr)
		if err != nil {
			http.Error(w, "error, exercise id NaN", http.StatusBadRequest)
			return
		}
	}

	personalBests, err := handler.repo.List(ctx, userID, exerciseID)
	if err != nil {
		log.Errorf("failed to list personal bests for user %d: %s", userID, err)
		http.Error(w, "failed to get personal bests", http.StatusInternalServerError)
		return
	}

	pbsJson, err := json.Marshal(personalBests)
	if err != nil {
		log.Errorf("failed to marshal personal bests: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, pbsJson, http.StatusOK)
}

// HandleCurrent returns the standing personal best of a user for one
// exercise. No record yet means 404.
func (handler *Handler) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.records.current")
	defer span.End()

	vars := mux.Vars(r)
	userID, err := strconv.Atoi(vars["userId"])
	if err != nil {
		http.Error(w, "error, user id NaN", http.StatusBadRequest)
		return
	}
	exerciseID, err := strconv.Atoi(vars["exerciseId"])
	if err != nil {
		http.Error(w, "error, exercise id NaN", http.StatusBadRequest)
		return
	}

	currentBest, err := handler.repo.CurrentBest(ctx, userID, exerciseID)
	if err != nil {
		log.Errorf("failed to get current best for user %d, exercise %d: %s", userID, exerciseID, err)
		http.Error(w, "failed to get current best", http.StatusInternalServerError)
		return
	}
	if currentBest == nil {
		http.Error(w, "no personal best yet", http.StatusNotFound)
		return
	}

	pbJson, err := json.Marshal(currentBest)
	if err != nil {
		log.Errorf("failed to marshal personal best: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, pbJson, http.StatusOK)
}
