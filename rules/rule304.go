package rules

import "regexp"

// Covers BREAK-POINT, BREAK-POINT ID, BREAK-POINT <var>, BREAK-POINT . —
// the optional trailing word token is consumed by the match but the reported
// location is always the line where BREAK-POINT itself starts. Word-bounded,
// so identifiers merely containing the keyword do not match.
var breakPointRe = regexp.MustCompile(`(?i)\bBREAK-POINT\b(?:\s+\w+)?`)

// NewRule304 detects BREAK-POINT statements, which are forbidden in ABAP
// Cloud and Key User scenarios.
func NewRule304() Rule {
	return &regexRule{
		id:         "Rule304_BreakPointUsage",
		code:       304,
		pattern:    breakPointRe,
		message:    "BREAK-POINT is not allowed in ABAP Cloud / Key User scenarios.",
		suggestion: "Remove or comment out the BREAK-POINT statement.",
	}
}
