package models

import "time"

// Scan modes as stored in the scans table.
const (
	ScanModeSingle = "single"
	ScanModeBatch  = "batch"
	ScanModeFile   = "file"
)

// ScanRecord summarises one recorded scan run.
type ScanRecord struct {
	ID            string    `json:"id"`
	Mode          string    `json:"mode"`
	UnitsScanned  int       `json:"units_scanned"`
	FindingsCount int       `json:"findings_count"`
	CreatedAt     time.Time `json:"created_at"`
}
