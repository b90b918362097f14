package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"koriel-backend/internal/domain"
	"koriel-backend/internal/repository"
	"koriel-backend/internal/service"
	"koriel-backend/internal/utils"
)

type SettlementHandler struct {
	settlements service.SettlementService
	reversals   service.ReversalService
}

func NewSettlementHandler(settlements service.SettlementService, reversals service.ReversalService) *SettlementHandler {
	return &SettlementHandler{settlements: settlements, reversals: reversals}
}

type settleRequest struct {
	CollectedQty int32 `json:"collected_qty"`
	ReturnedQty  int32 `json:"returned_qty"`
}

func (h *SettlementHandler) Settle(w http.ResponseWriter, r *http.Request) {
	loanID, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid loan id", Kind: "validation"})
		return
	}

	var req settleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body", Kind: "validation"})
		return
	}

	events, err := h.settlements.Settle(r.Context(), loanID, req.CollectedQty, req.ReturnedQty, ActorFromContext(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, events)
}

func (h *SettlementHandler) SettleAll(w http.ResponseWriter, r *http.Request) {
	loanID, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid loan id", Kind: "validation"})
		return
	}

	events, err := h.settlements.SettleAll(r.Context(), loanID, ActorFromContext(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, events)
}

func (h *SettlementHandler) ReturnAll(w http.ResponseWriter, r *http.Request) {
	loanID, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid loan id", Kind: "validation"})
		return
	}

	events, err := h.settlements.ReturnAll(r.Context(), loanID, ActorFromContext(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, events)
}

func (h *SettlementHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	filter, err := eventFilterFromQuery(r)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Kind: "validation"})
		return
	}

	events, err := h.settlements.ListEvents(r.Context(), filter)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, events)
}

func (h *SettlementHandler) Reverse(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid event id", Kind: "validation"})
		return
	}

	audit, err := h.reversals.Reverse(r.Context(), eventID, ActorFromContext(r.Context()))
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, audit)
}

func (h *SettlementHandler) ListAudits(w http.ResponseWriter, r *http.Request) {
	clientID, err := queryID(r, "client_id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid client_id", Kind: "validation"})
		return
	}
	from, to, err := utils.ParseDateRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Kind: "validation"})
		return
	}

	audits, err := h.reversals.ListAudits(r.Context(), repository.AuditFilter{ClientID: clientID, From: from, To: to})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, audits)
}

func eventFilterFromQuery(r *http.Request) (repository.EventFilter, error) {
	clientID, err := queryID(r, "client_id")
	if err != nil {
		return repository.EventFilter{}, fmt.Errorf("invalid client_id")
	}
	loanID, err := queryID(r, "loan_id")
	if err != nil {
		return repository.EventFilter{}, fmt.Errorf("invalid loan_id")
	}
	from, to, err := utils.ParseDateRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		return repository.EventFilter{}, err
	}

	return repository.EventFilter{
		ClientID: clientID,
		LoanID:   loanID,
		Kind:     domain.EventKind(r.URL.Query().Get("kind")),
		From:     from,
		To:       to,
	}, nil
}
