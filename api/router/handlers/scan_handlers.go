package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"abapscan/config"
	"abapscan/core"
	"abapscan/database"
	"abapscan/logger"
	"abapscan/models"
)

// ScanHandlers serves the remediation endpoints using a fixed scanner.
type ScanHandlers struct {
	scanner *core.Scanner
}

// NewScanHandlers creates the handlers for the scan endpoints.
func NewScanHandlers(scanner *core.Scanner) *ScanHandlers {
	return &ScanHandlers{scanner: scanner}
}

// validateUnit checks the identity and line-range invariants a unit must
// satisfy before it is handed to the scanner. The scanner itself never
// rejects input, so malformed units have to be caught here.
func validateUnit(u models.Unit) error {
	if strings.TrimSpace(u.PgmName) == "" {
		return fmt.Errorf("pgm_name is required")
	}
	if strings.TrimSpace(u.IncName) == "" {
		return fmt.Errorf("inc_name is required")
	}
	if strings.TrimSpace(u.Type) == "" {
		return fmt.Errorf("type is required")
	}
	if u.StartLine > u.EndLine {
		return fmt.Errorf("start_line (%d) must not exceed end_line (%d)", u.StartLine, u.EndLine)
	}
	return nil
}

// persistScan records a completed scan when persistence is enabled. Scan
// responses never fail on storage problems; they are logged and dropped.
func persistScan(mode string, units []models.Unit) {
	if !config.AppConfig.Scan.PersistResults || database.DB == nil {
		return
	}
	if _, err := database.RecordScan(mode, units); err != nil {
		logger.Error("Failed to record %s scan: %v", mode, err)
	}
}

// RemediateHandler scans a single unit.
// @Summary Scan one source unit
// @Description Runs all registered rules over one unit and returns the unit with findings attached (findings are omitted when nothing matched).
// @Tags Scan
// @Accept json
// @Produce json
// @Param unit body models.Unit true "Unit to scan"
// @Success 200 {object} models.Unit
// @Failure 400 {object} models.ErrorResponse
// @Router /remediate [post]
func (h *ScanHandlers) RemediateHandler(w http.ResponseWriter, r *http.Request) {
	var unit models.Unit
	if err := json.NewDecoder(r.Body).Decode(&unit); err != nil {
		logger.Error("RemediateHandler: Error decoding request body: %v", err)
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	defer r.Body.Close()

	if err := validateUnit(unit); err != nil {
		logger.Error("RemediateHandler: Invalid unit %s/%s: %v", unit.PgmName, unit.IncName, err)
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	scanned := h.scanner.ScanUnit(unit)
	logger.Info("Scanned unit %s/%s (%s): %d finding(s)", scanned.PgmName, scanned.IncName, scanned.Type, len(scanned.Findings))

	persistScan(models.ScanModeSingle, []models.Unit{scanned})
	respondJSON(w, http.StatusOK, scanned)
}

// RemediateArrayHandler scans a batch of units and returns only the units
// that produced findings.
// @Summary Scan a batch of source units
// @Description Runs all registered rules over every unit; units without findings are filtered from the response.
// @Tags Scan
// @Accept json
// @Produce json
// @Param units body []models.Unit true "Units to scan"
// @Success 200 {array} models.Unit
// @Failure 400 {object} models.ErrorResponse
// @Router /remediate-array [post]
func (h *ScanHandlers) RemediateArrayHandler(w http.ResponseWriter, r *http.Request) {
	var units []models.Unit
	if err := json.NewDecoder(r.Body).Decode(&units); err != nil {
		logger.Error("RemediateArrayHandler: Error decoding request body: %v", err)
		respondError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	defer r.Body.Close()

	for i, u := range units {
		if err := validateUnit(u); err != nil {
			logger.Error("RemediateArrayHandler: Invalid unit at index %d: %v", i, err)
			respondError(w, http.StatusBadRequest, fmt.Sprintf("Invalid unit at index %d: %v", i, err))
			return
		}
	}

	scanned := h.scanner.ScanUnits(units)

	// Batch mode drops clean units from the response but still records
	// every unit as scanned.
	results := make([]models.Unit, 0, len(scanned))
	for _, u := range scanned {
		if u.HasFindings() {
			results = append(results, u)
		}
	}
	logger.Info("Scanned batch of %d unit(s): %d with findings", len(scanned), len(results))

	persistScan(models.ScanModeBatch, scanned)
	respondJSON(w, http.StatusOK, results)
}
