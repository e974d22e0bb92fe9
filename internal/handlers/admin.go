package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/a2sh3r/settlement/internal/logger"
	"github.com/a2sh3r/settlement/internal/models"
)

type sweepResponse struct {
	Processed int                  `json:"processed"`
	Results   []models.SweepResult `json:"results"`
}

type automaticRequest struct {
	Enabled *bool `json:"enabled"`
}

type automaticResponse struct {
	Enabled bool `json:"enabled"`
}

type accrualResponse struct {
	Users int64 `json:"users"`
}

// RunSweep serves both the operator endpoint and the signed cron trigger.
func (h *Handler) RunSweep(w http.ResponseWriter, r *http.Request) {
	results, err := h.sweeper.RunSweep(r.Context())
	if err != nil {
		writeError(w, "settlement sweep", err)
		return
	}
	if results == nil {
		results = []models.SweepResult{}
	}

	logger.Log.Info("settlement sweep triggered",
		zap.String("path", r.URL.Path),
		zap.Int("processed", len(results)),
	)
	writeJSON(w, http.StatusOK, sweepResponse{Processed: len(results), Results: results})
}

func (h *Handler) GetAutomatic(w http.ResponseWriter, r *http.Request) {
	enabled, err := h.sweeper.Automatic(r.Context())
	if err != nil {
		writeError(w, "get automatic flag", err)
		return
	}
	writeJSON(w, http.StatusOK, automaticResponse{Enabled: enabled})
}

func (h *Handler) SetAutomatic(w http.ResponseWriter, r *http.Request) {
	var req automaticRequest
	if err := decodeJSON(r, &req); err != nil || req.Enabled == nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if err := h.sweeper.SetAutomatic(r.Context(), *req.Enabled); err != nil {
		writeError(w, "set automatic flag", err)
		return
	}
	writeJSON(w, http.StatusOK, automaticResponse{Enabled: *req.Enabled})
}

func (h *Handler) AccrueProfit(w http.ResponseWriter, r *http.Request) {
	n, err := h.profit.AccrueDailyProfit(r.Context())
	if err != nil {
		writeError(w, "accrue daily profit", err)
		return
	}
	writeJSON(w, http.StatusOK, accrualResponse{Users: n})
}
