package api

import (
	"bytes"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"hospitalinventory/m/domain"
	"hospitalinventory/m/internal/report"
)

func (h *Handler) reportTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.store.ReportTypes(r.Context())
	if err != nil {
		h.serverError(w, r, "Failed to fetch resource types", err)
		return
	}
	respondJSON(w, http.StatusOK, types)
}

// reportFilter reads reportType, startDate, endDate and the optional
// assetName query parameters.
func reportFilter(r *http.Request) (domain.ReportFilter, error) {
	q := r.URL.Query()
	resource := strings.TrimSpace(q.Get("reportType"))
	start, end := strings.TrimSpace(q.Get("startDate")), strings.TrimSpace(q.Get("endDate"))
	if resource == "" || start == "" || end == "" {
		return domain.ReportFilter{}, errors.New("Missing parameters")
	}

	filter := domain.ReportFilter{
		ResourceName: resource,
		AssetName:    strings.TrimSpace(q.Get("assetName")),
	}
	var err error
	if filter.Start, err = domain.ParseDate(start); err != nil {
		return domain.ReportFilter{}, errors.New("startDate must be in YYYY-MM-DD format")
	}
	if filter.End, err = domain.ParseDate(end); err != nil {
		return domain.ReportFilter{}, errors.New("endDate must be in YYYY-MM-DD format")
	}
	return filter, nil
}

func (h *Handler) previewReport(w http.ResponseWriter, r *http.Request) {
	filter, err := reportFilter(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	rows, err := h.store.ReportRows(r.Context(), filter)
	if err != nil {
		h.serverError(w, r, "Failed to generate preview", err)
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

func (h *Handler) downloadReport(w http.ResponseWriter, r *http.Request) {
	filter, err := reportFilter(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	rows, err := h.store.ReportRows(r.Context(), filter)
	if err != nil {
		h.serverError(w, r, "Failed to generate report", err)
		return
	}
	if len(rows) == 0 {
		respondError(w, http.StatusNotFound, "No data found for the selected criteria")
		return
	}

	filename := fmt.Sprintf("%s_report_%s_to_%s.pdf", filter.ResourceName, filter.Start, filter.End)
	h.sendPDF(w, r, filename, report.InventoryTable(filter, rows))
}

func (h *Handler) searchAssets(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("assetName"))
	if name == "" {
		respondError(w, http.StatusBadRequest, "Asset name is required")
		return
	}
	rows, err := h.store.SearchAssets(r.Context(), name)
	if err != nil {
		h.serverError(w, r, "Failed to search assets", err)
		return
	}
	if len(rows) == 0 {
		respondError(w, http.StatusNotFound, "No assets found with that name")
		return
	}
	respondJSON(w, http.StatusOK, rows)
}

func (h *Handler) downloadAssetSearch(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("assetName"))
	if name == "" {
		respondError(w, http.StatusBadRequest, "Asset name is required")
		return
	}
	rows, err := h.store.SearchAssets(r.Context(), name)
	if err != nil {
		h.serverError(w, r, "Failed to generate report", err)
		return
	}
	if len(rows) == 0 {
		respondError(w, http.StatusNotFound, "No assets found with that name")
		return
	}
	h.sendPDF(w, r, name+"_report.pdf", report.AssetTable(name, rows))
}

// sendPDF renders into memory first so a rendering failure can still be
// reported as JSON.
func (h *Handler) sendPDF(w http.ResponseWriter, r *http.Request, filename string, table report.Table) {
	var buf bytes.Buffer
	if err := report.WritePDF(&buf, table); err != nil {
		h.serverError(w, r, "Failed to generate report", err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": filename}))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
