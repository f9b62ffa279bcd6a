package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"abapscan/logger"
	"abapscan/models"
)

// ErrScanNotFound is returned when no scan exists for the requested ID.
var ErrScanNotFound = errors.New("scan not found")

// RecordScan persists one scan run and the findings of all its units in a
// single transaction. Only units that actually carry findings contribute
// rows to scan_findings; units_scanned still counts every scanned unit.
func RecordScan(mode string, units []models.Unit) (models.ScanRecord, error) {
	record := models.ScanRecord{
		ID:           uuid.NewString(),
		Mode:         mode,
		UnitsScanned: len(units),
	}
	for _, u := range units {
		record.FindingsCount += len(u.Findings)
	}

	tx, err := DB.Begin()
	if err != nil {
		return models.ScanRecord{}, fmt.Errorf("beginning scan record transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(`
		INSERT INTO scans (id, mode, units_scanned, findings_count, created_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
	`, record.ID, record.Mode, record.UnitsScanned, record.FindingsCount)
	if err != nil {
		return models.ScanRecord{}, fmt.Errorf("inserting scan record: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO scan_findings (
			scan_id, prog_name, incl_name, types, blockname, starting_line,
			ending_line, issues_type, severity, message, suggestion, snippet
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return models.ScanRecord{}, fmt.Errorf("preparing scan finding insert: %w", err)
	}
	defer stmt.Close()

	for _, u := range units {
		for _, f := range u.Findings {
			if _, err := stmt.Exec(
				record.ID, f.ProgName, f.InclName, f.Types, f.BlockName,
				f.StartingLine, f.EndingLine, f.IssuesType, f.Severity,
				f.Message, f.Suggestion, f.Snippet,
			); err != nil {
				return models.ScanRecord{}, fmt.Errorf("inserting scan finding: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return models.ScanRecord{}, fmt.Errorf("committing scan record: %w", err)
	}

	logger.Debug("Recorded scan %s (%s): %d units, %d findings", record.ID, record.Mode, record.UnitsScanned, record.FindingsCount)
	return record, nil
}

// ListScans returns the most recent scan records, newest first.
func ListScans(limit int) ([]models.ScanRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := DB.Query(`
		SELECT id, mode, units_scanned, findings_count, created_at
		FROM scans
		ORDER BY created_at DESC, id DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying scans: %w", err)
	}
	defer rows.Close()

	var records []models.ScanRecord
	for rows.Next() {
		var r models.ScanRecord
		if err := rows.Scan(&r.ID, &r.Mode, &r.UnitsScanned, &r.FindingsCount, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning scan row: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// GetScanByID retrieves a single scan record.
func GetScanByID(scanID string) (models.ScanRecord, error) {
	var r models.ScanRecord
	err := DB.QueryRow(`
		SELECT id, mode, units_scanned, findings_count, created_at
		FROM scans
		WHERE id = ?
	`, scanID).Scan(&r.ID, &r.Mode, &r.UnitsScanned, &r.FindingsCount, &r.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.ScanRecord{}, ErrScanNotFound
		}
		return models.ScanRecord{}, fmt.Errorf("querying scan %s: %w", scanID, err)
	}
	return r, nil
}

// GetFindingsByScanID retrieves all findings recorded for a scan, in
// insertion order.
func GetFindingsByScanID(scanID string) ([]models.Finding, error) {
	rows, err := DB.Query(`
		SELECT prog_name, incl_name, types, blockname, starting_line,
		       ending_line, issues_type, severity, message, suggestion, snippet
		FROM scan_findings
		WHERE scan_id = ?
		ORDER BY id ASC
	`, scanID)
	if err != nil {
		return nil, fmt.Errorf("querying findings for scan %s: %w", scanID, err)
	}
	defer rows.Close()

	var findings []models.Finding
	for rows.Next() {
		var f models.Finding
		var blockName, snippet sql.NullString
		if err := rows.Scan(
			&f.ProgName, &f.InclName, &f.Types, &blockName, &f.StartingLine,
			&f.EndingLine, &f.IssuesType, &f.Severity, &f.Message, &f.Suggestion, &snippet,
		); err != nil {
			return nil, fmt.Errorf("scanning finding row for scan %s: %w", scanID, err)
		}
		f.BlockName = blockName.String
		f.Snippet = snippet.String
		findings = append(findings, f)
	}
	return findings, rows.Err()
}
