package rules

import "regexp"

// SET EXTENDED CHECK is obsolete: the extended program check runs regardless
// of the statement since release 7.0. Any amount of whitespace may separate
// the three keywords, matching is case-insensitive and word-bounded.
var setExtendedCheckRe = regexp.MustCompile(`(?i)\bSET\s+EXTENDED\s+CHECK\b`)

// NewRule303 detects the obsolete SET EXTENDED CHECK statement.
func NewRule303() Rule {
	return &regexRule{
		id:         "Rule303_SetExtendedCheck",
		code:       303,
		pattern:    setExtendedCheckRe,
		message:    "Obsolete SET EXTENDED CHECK statement detected.",
		suggestion: "Remove the SET EXTENDED CHECK statement entirely.",
	}
}
