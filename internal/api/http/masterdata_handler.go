package http

import (
	"encoding/json"
	"net/http"

	"koriel-backend/internal/service"
)

type MasterDataHandler struct {
	masters service.MasterDataService
}

func NewMasterDataHandler(masters service.MasterDataService) *MasterDataHandler {
	return &MasterDataHandler{masters: masters}
}

func (h *MasterDataHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req newClientPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body", Kind: "validation"})
		return
	}

	client, err := h.masters.CreateClient(r.Context(), service.NewClientInput{
		Name:      req.Name,
		StoreName: req.StoreName,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, client)
}

func (h *MasterDataHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid client id", Kind: "validation"})
		return
	}

	var req newClientPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body", Kind: "validation"})
		return
	}

	client, err := h.masters.UpdateClient(r.Context(), id, service.NewClientInput{
		Name:      req.Name,
		StoreName: req.StoreName,
		Phone:     req.Phone,
		Address:   req.Address,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, client)
}

func (h *MasterDataHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.masters.ListClients(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, clients)
}

func (h *MasterDataHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid client id", Kind: "validation"})
		return
	}

	client, err := h.masters.GetClient(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, client)
}

func (h *MasterDataHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req newProductPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body", Kind: "validation"})
		return
	}

	product, err := h.masters.CreateProduct(r.Context(), service.NewProductInput{
		Name:      req.Name,
		Category:  req.Category,
		BasePrice: req.BasePrice,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, product)
}

func (h *MasterDataHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid product id", Kind: "validation"})
		return
	}

	var req newProductPayload
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body", Kind: "validation"})
		return
	}

	product, err := h.masters.UpdateProduct(r.Context(), id, service.NewProductInput{
		Name:      req.Name,
		Category:  req.Category,
		BasePrice: req.BasePrice,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, product)
}

func (h *MasterDataHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.masters.ListProducts(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, products)
}

func (h *MasterDataHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid product id", Kind: "validation"})
		return
	}

	product, err := h.masters.GetProduct(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, product)
}
