package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/a2sh3r/settlement/internal/apperrors"
	"github.com/a2sh3r/settlement/internal/logger"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response json", zap.Error(err))
	}
}

// writeError maps an error class onto a status code. Critical and unknown
// failures get a generic body.
func writeError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, apperrors.ErrCriticalInconsistency):
		logger.Log.Error(op+" failed", zap.Bool("critical", true), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	case errors.Is(err, apperrors.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, apperrors.ErrEligibility),
		errors.Is(err, apperrors.ErrInvalidTransition),
		errors.Is(err, apperrors.ErrSweepInProgress),
		errors.Is(err, apperrors.ErrAccrualAlreadyRan):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, apperrors.ErrGateway):
		logger.Log.Warn(op+" failed", zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		logger.Log.Error(op+" failed", zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// writeUserError is writeError for user routes: upstream gateway details stay
// in the log.
func writeUserError(w http.ResponseWriter, op string, err error) {
	if errors.Is(err, apperrors.ErrGateway) {
		logger.Log.Warn(op+" failed", zap.Error(err))
		http.Error(w, "payment network temporarily unavailable", http.StatusBadGateway)
		return
	}
	writeError(w, op, err)
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return apperrors.ErrInvalidRequest
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return apperrors.ErrInvalidRequest
	}
	return nil
}
