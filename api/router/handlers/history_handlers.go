package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"abapscan/config"
	"abapscan/database"
	"abapscan/logger"
	"abapscan/models"
	"abapscan/report"
)

// ScanDetailResponse is one recorded scan together with its findings.
type ScanDetailResponse struct {
	models.ScanRecord
	Findings []models.Finding `json:"findings"`
}

// ListScansHandler returns recent scan records, newest first.
// @Summary List recorded scans
// @Description Returns the most recent scan records. Requires scan persistence to be enabled.
// @Tags History
// @Produce json
// @Param limit query int false "Maximum number of records (default from config)"
// @Success 200 {array} models.ScanRecord
// @Failure 503 {object} models.ErrorResponse
// @Router /scans [get]
func ListScansHandler(w http.ResponseWriter, r *http.Request) {
	if database.DB == nil {
		respondError(w, http.StatusServiceUnavailable, "Scan persistence is not enabled")
		return
	}

	limit := config.AppConfig.Scan.HistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	records, err := database.ListScans(limit)
	if err != nil {
		logger.Error("ListScansHandler: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to list scans")
		return
	}
	if records == nil {
		records = []models.ScanRecord{}
	}
	respondJSON(w, http.StatusOK, records)
}

// GetScanHandler returns one recorded scan and its findings.
// @Summary Get one recorded scan
// @Description Returns a scan record together with all findings recorded for it.
// @Tags History
// @Produce json
// @Param scanID path string true "Scan ID"
// @Success 200 {object} ScanDetailResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /scans/{scanID} [get]
func GetScanHandler(w http.ResponseWriter, r *http.Request) {
	if database.DB == nil {
		respondError(w, http.StatusServiceUnavailable, "Scan persistence is not enabled")
		return
	}

	scanID := chi.URLParam(r, "scanID")
	record, err := database.GetScanByID(scanID)
	if err != nil {
		if errors.Is(err, database.ErrScanNotFound) {
			respondError(w, http.StatusNotFound, "Scan not found")
			return
		}
		logger.Error("GetScanHandler: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to load scan")
		return
	}

	findings, err := database.GetFindingsByScanID(scanID)
	if err != nil {
		logger.Error("GetScanHandler: loading findings for %s: %v", scanID, err)
		respondError(w, http.StatusInternalServerError, "Failed to load scan findings")
		return
	}
	if findings == nil {
		findings = []models.Finding{}
	}

	respondJSON(w, http.StatusOK, ScanDetailResponse{ScanRecord: record, Findings: findings})
}

// GetScanSarifHandler exports one recorded scan as a SARIF 2.1.0 document.
// @Summary Export a recorded scan as SARIF
// @Description Renders all findings of a recorded scan as a SARIF 2.1.0 report.
// @Tags History
// @Produce json
// @Param scanID path string true "Scan ID"
// @Success 200 {object} object
// @Failure 404 {object} models.ErrorResponse
// @Router /scans/{scanID}/sarif [get]
func GetScanSarifHandler(w http.ResponseWriter, r *http.Request) {
	if database.DB == nil {
		respondError(w, http.StatusServiceUnavailable, "Scan persistence is not enabled")
		return
	}

	scanID := chi.URLParam(r, "scanID")
	if _, err := database.GetScanByID(scanID); err != nil {
		if errors.Is(err, database.ErrScanNotFound) {
			respondError(w, http.StatusNotFound, "Scan not found")
			return
		}
		logger.Error("GetScanSarifHandler: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to load scan")
		return
	}

	findings, err := database.GetFindingsByScanID(scanID)
	if err != nil {
		logger.Error("GetScanSarifHandler: loading findings for %s: %v", scanID, err)
		respondError(w, http.StatusInternalServerError, "Failed to load scan findings")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := report.WriteSarif(findings, w); err != nil {
		logger.Error("GetScanSarifHandler: rendering SARIF for %s: %v", scanID, err)
	}
}
