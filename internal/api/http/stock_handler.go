package http

import (
	"encoding/json"
	"net/http"

	"koriel-backend/internal/domain"
	"koriel-backend/internal/repository"
	"koriel-backend/internal/service"
)

type StockHandler struct {
	stock service.StockService
}

func NewStockHandler(stock service.StockService) *StockHandler {
	return &StockHandler{stock: stock}
}

type applyMovementRequest struct {
	WarehouseID    int32               `json:"warehouse_id"`
	ProductID      int32               `json:"product_id"`
	Kind           domain.MovementKind `json:"kind"`
	Quantity       int32               `json:"quantity"`
	Reason         string              `json:"reason"`
	IdempotencyKey string              `json:"idempotency_key"`
}

func (h *StockHandler) ApplyMovement(w http.ResponseWriter, r *http.Request) {
	var req applyMovementRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body", Kind: "validation"})
		return
	}

	mv, err := h.stock.ApplyMovement(r.Context(), service.ApplyMovementInput{
		WarehouseID:    req.WarehouseID,
		ProductID:      req.ProductID,
		Kind:           req.Kind,
		Quantity:       req.Quantity,
		Reason:         req.Reason,
		Actor:          ActorFromContext(r.Context()),
		IdempotencyKey: req.IdempotencyKey,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, mv)
}

func (h *StockHandler) ListMovements(w http.ResponseWriter, r *http.Request) {
	warehouseID, err := queryID(r, "warehouse_id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid warehouse_id", Kind: "validation"})
		return
	}
	productID, err := queryID(r, "product_id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid product_id", Kind: "validation"})
		return
	}

	movements, err := h.stock.ListMovements(r.Context(), repository.MovementFilter{
		WarehouseID: warehouseID,
		ProductID:   productID,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, movements)
}

func (h *StockHandler) ListBalances(w http.ResponseWriter, r *http.Request) {
	warehouseID, err := queryID(r, "warehouse_id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid warehouse_id", Kind: "validation"})
		return
	}

	balances, err := h.stock.ListBalances(r.Context(), warehouseID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, balances)
}

type createWarehouseRequest struct {
	Name     string `json:"name"`
	Location string `json:"location"`
}

func (h *StockHandler) CreateWarehouse(w http.ResponseWriter, r *http.Request) {
	var req createWarehouseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body", Kind: "validation"})
		return
	}

	warehouse, err := h.stock.CreateWarehouse(r.Context(), req.Name, req.Location)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, warehouse)
}

func (h *StockHandler) ListWarehouses(w http.ResponseWriter, r *http.Request) {
	warehouses, err := h.stock.ListWarehouses(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, warehouses)
}
