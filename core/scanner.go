// Package core implements the scan engine: it applies every registered rule
// to a source unit and converts raw match offsets into findings with
// absolute line numbers.
package core

import (
	"strings"

	"abapscan/models"
	"abapscan/rules"
)

// Scanner applies a fixed rule registry to units. It is stateless and safe
// for concurrent use.
type Scanner struct {
	registry *rules.Registry
}

// NewScanner returns a scanner over the given registry.
func NewScanner(registry *rules.Registry) *Scanner {
	return &Scanner{registry: registry}
}

// Registry returns the registry this scanner was built with.
func (s *Scanner) Registry() *rules.Registry {
	return s.registry
}

// ScanUnit runs every registered rule over the unit's code and returns a
// copy of the unit with findings attached. The input unit is never mutated;
// units with no matches come back with a nil findings list. Findings are
// ordered by rule registration order, then by match position.
func (s *Scanner) ScanUnit(unit models.Unit) models.Unit {
	src := unit.Code

	var findings []models.Finding
	for _, rule := range s.registry.Rules() {
		for _, span := range rule.FindAll(src) {
			findings = append(findings, buildFinding(unit, src, span, rule))
		}
	}

	out := unit
	out.Findings = findings
	return out
}

// ScanUnits applies ScanUnit to every unit, preserving input order.
func (s *Scanner) ScanUnits(units []models.Unit) []models.Unit {
	results := make([]models.Unit, 0, len(units))
	for _, unit := range units {
		results = append(results, s.ScanUnit(unit))
	}
	return results
}

// buildFinding turns one raw match span into a finding with absolute line
// numbers and a single-line snippet.
//
// The absolute line is unit.StartLine plus the 1-based line-within-block of
// the match start. Downstream consumers depend on exactly this arithmetic;
// do not change it even where it looks off by one.
func buildFinding(unit models.Unit, src string, span rules.Span, rule rules.Rule) models.Finding {
	lineInBlock := strings.Count(src[:span.Start], "\n") + 1
	absStart := unit.StartLine + lineInBlock

	return models.Finding{
		ProgName:     unit.PgmName,
		InclName:     unit.IncName,
		Types:        unit.Type,
		BlockName:    unit.Name,
		StartingLine: absStart,
		EndingLine:   absStart,
		IssuesType:   rule.ID(),
		Severity:     rule.Severity(),
		Message:      rule.Message(),
		Suggestion:   rule.Suggestion(),
		Snippet:      extractLine(src, span.Start),
	}
}

// extractLine returns the full physical line containing pos, with any
// remaining line break escaped so the snippet is always single-line.
func extractLine(src string, pos int) string {
	lineStart := strings.LastIndex(src[:pos], "\n")
	if lineStart == -1 {
		lineStart = 0
	} else {
		lineStart++
	}

	lineEnd := strings.Index(src[pos:], "\n")
	if lineEnd == -1 {
		lineEnd = len(src)
	} else {
		lineEnd += pos
	}

	return strings.ReplaceAll(src[lineStart:lineEnd], "\n", `\n`)
}
