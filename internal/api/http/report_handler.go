package http

import (
	"net/http"

	"koriel-backend/internal/service"
	"koriel-backend/internal/utils"
)

type ReportHandler struct {
	reports service.ReportService
}

func NewReportHandler(reports service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

func (h *ReportHandler) Collections(w http.ResponseWriter, r *http.Request) {
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

	report, err := h.reports.CollectionReport(r.Context(), clientID, from, to)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, report)
}

func (h *ReportHandler) ExportCollections(w http.ResponseWriter, r *http.Request) {
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

	csvData, err := h.reports.ExportCollectionsCSV(r.Context(), clientID, from, to)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="collections.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(csvData)
}

func (h *ReportHandler) ClientStatement(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid client id", Kind: "validation"})
		return
	}

	statement, err := h.reports.ClientStatement(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(statement))
}
