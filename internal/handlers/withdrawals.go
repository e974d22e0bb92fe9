package handlers

import (
	"net/http"

	"github.com/a2sh3r/settlement/internal/middleware"
	"github.com/a2sh3r/settlement/internal/models"
)

type statusRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

type requeueRequest struct {
	Reason string `json:"reason"`
}

type confirmRequest struct {
	Reference string `json:"reference"`
}

func (h *Handler) GetLedger(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	ledger, err := h.withdrawals.GetLedger(r.Context(), userID)
	if err != nil {
		writeUserError(w, "get ledger", err)
		return
	}
	writeJSON(w, http.StatusOK, ledger)
}

func (h *Handler) CreateWithdrawal(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.WithdrawalRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	withdrawal, err := h.withdrawals.CreateWithdrawal(r.Context(), userID, req)
	if err != nil {
		writeUserError(w, "create withdrawal", err)
		return
	}
	writeJSON(w, http.StatusCreated, withdrawal.UserView())
}

func (h *Handler) GetUserWithdrawals(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	withdrawals, err := h.withdrawals.ListUserWithdrawals(r.Context(), userID)
	if err != nil {
		writeUserError(w, "list withdrawals", err)
		return
	}
	if len(withdrawals) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, withdrawals)
}

func (h *Handler) GetPendingWithdrawals(w http.ResponseWriter, r *http.Request) {
	withdrawals, err := h.withdrawals.ListPendingWithdrawals(r.Context())
	if err != nil {
		writeError(w, "list pending withdrawals", err)
		return
	}
	if withdrawals == nil {
		withdrawals = []models.Withdrawal{}
	}
	writeJSON(w, http.StatusOK, withdrawals)
}

func (h *Handler) GetSettlements(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid withdrawal id", http.StatusBadRequest)
		return
	}

	rows, err := h.withdrawals.ListSettlements(r.Context(), id)
	if err != nil {
		writeError(w, "list settlements", err)
		return
	}
	if rows == nil {
		rows = []models.Settlement{}
	}
	writeJSON(w, http.StatusOK, rows)
}

func (h *Handler) UpdateWithdrawalStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid withdrawal id", http.StatusBadRequest)
		return
	}

	var req statusRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	withdrawal, err := h.settlement.UpdateStatus(r.Context(), id, req.Status, req.Reason)
	if err != nil {
		writeError(w, "update withdrawal status", err)
		return
	}
	writeJSON(w, http.StatusOK, withdrawal)
}

func (h *Handler) RequeueWithdrawal(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid withdrawal id", http.StatusBadRequest)
		return
	}

	var req requeueRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			http.Error(w, "invalid input", http.StatusBadRequest)
			return
		}
	}

	withdrawal, err := h.settlement.Requeue(r.Context(), id, req.Reason)
	if err != nil {
		writeError(w, "requeue withdrawal", err)
		return
	}
	writeJSON(w, http.StatusOK, withdrawal)
}

func (h *Handler) ConfirmPayout(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid withdrawal id", http.StatusBadRequest)
		return
	}

	var req confirmRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	withdrawal, err := h.settlement.ConfirmPayout(r.Context(), id, req.Reference)
	if err != nil {
		writeError(w, "confirm payout", err)
		return
	}
	writeJSON(w, http.StatusOK, withdrawal)
}
