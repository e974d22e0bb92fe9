package handlers

import (
	"net/http"

	"github.com/a2sh3r/settlement/internal/middleware"
	"github.com/a2sh3r/settlement/internal/models"
)

func (h *Handler) CreateDeposit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req models.DepositRequest
	if err := decodeJSON(r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	deposit, err := h.deposits.CreateDeposit(r.Context(), userID, req)
	if err != nil {
		writeUserError(w, "create deposit", err)
		return
	}
	writeJSON(w, http.StatusCreated, deposit)
}

func (h *Handler) GetUserDeposits(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	deposits, err := h.deposits.ListUserDeposits(r.Context(), userID)
	if err != nil {
		writeUserError(w, "list deposits", err)
		return
	}
	if len(deposits) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, deposits)
}

func (h *Handler) GetDeposit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid deposit id", http.StatusBadRequest)
		return
	}

	deposit, err := h.deposits.GetDeposit(r.Context(), userID, id)
	if err != nil {
		writeUserError(w, "get deposit", err)
		return
	}
	writeJSON(w, http.StatusOK, deposit)
}

// VerifyDeposit checks ownership before querying the chain so users cannot
// probe other users' deposits.
func (h *Handler) VerifyDeposit(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	id, ok := pathID(r)
	if !ok {
		http.Error(w, "invalid deposit id", http.StatusBadRequest)
		return
	}

	if _, err := h.deposits.GetDeposit(r.Context(), userID, id); err != nil {
		writeUserError(w, "verify deposit", err)
		return
	}

	result, err := h.deposits.VerifyDeposit(r.Context(), id)
	if err != nil {
		writeUserError(w, "verify deposit", err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
