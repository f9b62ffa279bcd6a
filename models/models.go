package models

// Unit is one contiguous block of ABAP source belonging to a single
// compilation artifact, as produced by the upstream unit splitter.
// StartLine and EndLine are 1-based positions within the containing file.
// Field names are fixed by the wire contract of the remediation service.
type Unit struct {
	PgmName             string    `json:"pgm_name"`
	IncName             string    `json:"inc_name"`
	Type                string    `json:"type"`
	Name                string    `json:"name,omitempty"`
	ClassImplementation string    `json:"class_implementation,omitempty"`
	StartLine           int       `json:"start_line"`
	EndLine             int       `json:"end_line"`
	Code                string    `json:"code,omitempty"`
	Findings            []Finding `json:"findings,omitempty"`
}

// HasFindings reports whether a scan attached at least one finding.
func (u Unit) HasFindings() bool {
	return len(u.Findings) > 0
}

// Finding is one detected occurrence of a monitored construct, located by
// absolute line numbers within the original source file.
type Finding struct {
	ProgName     string `json:"prog_name"`
	InclName     string `json:"incl_name"`
	Types        string `json:"types"`
	BlockName    string `json:"blockname"`
	StartingLine int    `json:"starting_line"`
	EndingLine   int    `json:"ending_line"`
	IssuesType   string `json:"issues_type"`
	Severity     string `json:"severity"`
	Message      string `json:"message"`
	Suggestion   string `json:"suggestion"`
	Snippet      string `json:"snippet"`
}
