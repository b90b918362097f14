package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"koriel-backend/internal/domain"
	"koriel-backend/internal/logger"
	"koriel-backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// respondError maps the domain error taxonomy onto HTTP status codes. The
// body names the error kind so the console can show what went wrong without
// ever leaking a raw transport error.
func respondError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	var persistErr *domain.PersistenceError

	switch {
	case errors.As(err, &validationErr):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Kind: "validation"})
	case errors.Is(err, domain.ErrNoOp):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error(), Kind: "no_op"})
	case errors.Is(err, service.ErrInvalidCredentials):
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: err.Error(), Kind: "unauthorized"})
	case errors.Is(err, domain.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: err.Error(), Kind: "not_found"})
	case errors.Is(err, domain.ErrInsufficientPending):
		respondJSON(w, http.StatusConflict, errorResponse{Error: err.Error(), Kind: "insufficient_pending"})
	case errors.Is(err, domain.ErrInsufficientStock):
		respondJSON(w, http.StatusConflict, errorResponse{Error: err.Error(), Kind: "insufficient_stock"})
	case errors.Is(err, domain.ErrOrphanEvent):
		respondJSON(w, http.StatusConflict, errorResponse{Error: err.Error(), Kind: "orphan_event"})
	case errors.As(err, &persistErr):
		logger.Error("Persistence failure surfaced to API", "op", persistErr.Op, "error", persistErr.Err)
		respondJSON(w, http.StatusBadGateway, errorResponse{Error: "storage backend unavailable, state unknown", Kind: "persistence"})
	default:
		logger.Error("Unclassified error surfaced to API", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error", Kind: "internal"})
	}
}
