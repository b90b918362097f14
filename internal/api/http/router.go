package http

import (
	"net/http"

	"koriel-backend/internal/security"
	"koriel-backend/internal/service"

	"github.com/gorilla/mux"
)

// Services bundles everything the API surface needs.
type Services struct {
	Auth        service.AuthService
	Loans       service.LoanService
	Settlements service.SettlementService
	Reversals   service.ReversalService
	Stock       service.StockService
	Masters     service.MasterDataService
	Reports     service.ReportService
}

// NewRouter wires all routes. Everything except login and refresh sits behind
// the auth middleware so mutations always carry an actor.
func NewRouter(svcs Services, tokens security.TokenManager) *mux.Router {
	authHandler := NewAuthHandler(svcs.Auth)
	loanHandler := NewLoanHandler(svcs.Loans)
	settlementHandler := NewSettlementHandler(svcs.Settlements, svcs.Reversals)
	stockHandler := NewStockHandler(svcs.Stock)
	masterHandler := NewMasterDataHandler(svcs.Masters)
	reportHandler := NewReportHandler(svcs.Reports)
	authMW := NewAuthMiddleware(tokens)

	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()

	// Public
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)

	// Authenticated
	protected := api.NewRoute().Subrouter()
	protected.Use(authMW.Handler)

	protected.HandleFunc("/auth/me", authHandler.Me).Methods(http.MethodGet)
	protected.HandleFunc("/auth/users", authHandler.CreateOperator).Methods(http.MethodPost)

	protected.HandleFunc("/loans", loanHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/loans", loanHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/loans/{id:[0-9]+}", loanHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/loans/{id:[0-9]+}/settle", settlementHandler.Settle).Methods(http.MethodPost)
	protected.HandleFunc("/loans/{id:[0-9]+}/settle-all", settlementHandler.SettleAll).Methods(http.MethodPost)
	protected.HandleFunc("/loans/{id:[0-9]+}/return-all", settlementHandler.ReturnAll).Methods(http.MethodPost)

	protected.HandleFunc("/settlement-events", settlementHandler.ListEvents).Methods(http.MethodGet)
	protected.HandleFunc("/settlement-events/{id:[0-9]+}/reverse", settlementHandler.Reverse).Methods(http.MethodPost)
	protected.HandleFunc("/reversal-audits", settlementHandler.ListAudits).Methods(http.MethodGet)

	protected.HandleFunc("/clients", masterHandler.CreateClient).Methods(http.MethodPost)
	protected.HandleFunc("/clients", masterHandler.ListClients).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{id:[0-9]+}", masterHandler.GetClient).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{id:[0-9]+}", masterHandler.UpdateClient).Methods(http.MethodPut)
	protected.HandleFunc("/clients/{id:[0-9]+}/open-loans", loanHandler.OpenLoans).Methods(http.MethodGet)
	protected.HandleFunc("/clients/{id:[0-9]+}/statement", reportHandler.ClientStatement).Methods(http.MethodGet)

	protected.HandleFunc("/products", masterHandler.CreateProduct).Methods(http.MethodPost)
	protected.HandleFunc("/products", masterHandler.ListProducts).Methods(http.MethodGet)
	protected.HandleFunc("/products/{id:[0-9]+}", masterHandler.GetProduct).Methods(http.MethodGet)
	protected.HandleFunc("/products/{id:[0-9]+}", masterHandler.UpdateProduct).Methods(http.MethodPut)

	protected.HandleFunc("/warehouses", stockHandler.CreateWarehouse).Methods(http.MethodPost)
	protected.HandleFunc("/warehouses", stockHandler.ListWarehouses).Methods(http.MethodGet)
	protected.HandleFunc("/stock-movements", stockHandler.ApplyMovement).Methods(http.MethodPost)
	protected.HandleFunc("/stock-movements", stockHandler.ListMovements).Methods(http.MethodGet)
	protected.HandleFunc("/stock-balances", stockHandler.ListBalances).Methods(http.MethodGet)

	protected.HandleFunc("/reports/collections", reportHandler.Collections).Methods(http.MethodGet)
	protected.HandleFunc("/reports/collections/export", reportHandler.ExportCollections).Methods(http.MethodGet)

	return r
}
