package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"koriel-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type LoanHandler struct {
	loans service.LoanService
}

func NewLoanHandler(loans service.LoanService) *LoanHandler {
	return &LoanHandler{loans: loans}
}

type newClientPayload struct {
	Name      string `json:"name"`
	StoreName string `json:"store_name"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

type newProductPayload struct {
	Name      string          `json:"name"`
	Category  string          `json:"category"`
	BasePrice decimal.Decimal `json:"base_price"`
}

type createLoanRequest struct {
	ClientID       int32              `json:"client_id"`
	ProductID      int32              `json:"product_id"`
	NewClient      *newClientPayload  `json:"new_client,omitempty"`
	NewProduct     *newProductPayload `json:"new_product,omitempty"`
	Quantity       int32              `json:"quantity"`
	UnitPrice      decimal.Decimal    `json:"unit_price"`
	Note           string             `json:"note"`
	IdempotencyKey string             `json:"idempotency_key"`
}

func (h *LoanHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createLoanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body", Kind: "validation"})
		return
	}

	in := service.CreateLoanInput{
		ClientID:       req.ClientID,
		ProductID:      req.ProductID,
		Quantity:       req.Quantity,
		UnitPrice:      req.UnitPrice,
		Note:           req.Note,
		Actor:          ActorFromContext(r.Context()),
		IdempotencyKey: req.IdempotencyKey,
	}
	if req.NewClient != nil {
		in.NewClient = &service.NewClientInput{
			Name:      req.NewClient.Name,
			StoreName: req.NewClient.StoreName,
			Phone:     req.NewClient.Phone,
			Address:   req.NewClient.Address,
		}
	}
	if req.NewProduct != nil {
		in.NewProduct = &service.NewProductInput{
			Name:      req.NewProduct.Name,
			Category:  req.NewProduct.Category,
			BasePrice: req.NewProduct.BasePrice,
		}
	}

	loan, err := h.loans.CreateLoan(r.Context(), in)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, loan)
}

func (h *LoanHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid loan id", Kind: "validation"})
		return
	}

	loan, err := h.loans.GetLoan(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, loan)
}

func (h *LoanHandler) List(w http.ResponseWriter, r *http.Request) {
	clientID, err := queryID(r, "client_id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid client_id", Kind: "validation"})
		return
	}
	openOnly := r.URL.Query().Get("open") == "true"

	loans, err := h.loans.ListLoans(r.Context(), clientID, openOnly)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, loans)
}

// OpenLoans serves the collection-route view: the client's open loans with
// contact info and the exposure total in one payload.
func (h *LoanHandler) OpenLoans(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid client id", Kind: "validation"})
		return
	}

	summary, err := h.loans.ClientExposure(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, summary)
}

// pathID reads an int32 id from the route path.
func pathID(r *http.Request, name string) (int32, error) {
	v, err := strconv.ParseInt(mux.Vars(r)[name], 10, 32)
	return int32(v), err
}

// queryID reads an optional int32 id from the query string; absent means 0.
func queryID(r *http.Request, name string) (int32, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(raw, 10, 32)
	return int32(v), err
}
