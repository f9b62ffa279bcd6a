package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abapscan/models"
	"abapscan/rules"
)

func newTestScanner() *Scanner {
	return NewScanner(rules.DefaultRegistry())
}

func testUnit(startLine int, code string) models.Unit {
	return models.Unit{
		PgmName:   "ZREPORT",
		IncName:   "ZINCLUDE",
		Type:      "method",
		Name:      "do_stuff",
		StartLine: startLine,
		EndLine:   startLine + 10,
		Code:      code,
	}
}

func TestScanUnitEmptyCode(t *testing.T) {
	scanner := newTestScanner()
	out := scanner.ScanUnit(testUnit(1, ""))
	assert.Nil(t, out.Findings)
	assert.False(t, out.HasFindings())
}

func TestScanUnitNoMatches(t *testing.T) {
	scanner := newTestScanner()
	out := scanner.ScanUnit(testUnit(5, "DATA: lv_x TYPE i.\nWRITE lv_x.\n"))
	assert.Nil(t, out.Findings)
}

func TestScanUnitRule303(t *testing.T) {
	scanner := newTestScanner()
	unit := testUnit(10, "WRITE 'a'.\nset   EXTENDED   check OFF.\n")

	out := scanner.ScanUnit(unit)
	require.Len(t, out.Findings, 1)

	f := out.Findings[0]
	assert.Equal(t, "Rule303_SetExtendedCheck", f.IssuesType)
	// Match is on the unit's second physical line: 10 + 2.
	assert.Equal(t, 12, f.StartingLine)
	assert.Equal(t, 12, f.EndingLine)
	assert.Equal(t, "error", f.Severity)
	assert.Equal(t, "set   EXTENDED   check OFF.", f.Snippet)
	assert.Equal(t, "ZREPORT", f.ProgName)
	assert.Equal(t, "ZINCLUDE", f.InclName)
	assert.Equal(t, "method", f.Types)
	assert.Equal(t, "do_stuff", f.BlockName)
}

// Pins the absolute line arithmetic: start_line + (breaks before match) + 1.
// A match on the unit's second physical line with start_line 100 reports 102,
// not 101. Downstream consumers depend on this exact convention.
func TestScanUnitLineArithmetic(t *testing.T) {
	scanner := newTestScanner()
	unit := testUnit(100, "DATA: lv_x TYPE i.\nBREAK-POINT.\n")

	out := scanner.ScanUnit(unit)
	require.Len(t, out.Findings, 1)
	assert.Equal(t, 102, out.Findings[0].StartingLine)
	assert.Equal(t, 102, out.Findings[0].EndingLine)
}

func TestScanUnitRule304SnippetIsFullLine(t *testing.T) {
	scanner := newTestScanner()
	unit := testUnit(1, "DATA: lv_x TYPE i.\n  BREAK-POINT ID zgrp.\nWRITE lv_x.\n")

	out := scanner.ScanUnit(unit)
	require.Len(t, out.Findings, 1)
	assert.Equal(t, "Rule304_BreakPointUsage", out.Findings[0].IssuesType)
	assert.Equal(t, "  BREAK-POINT ID zgrp.", out.Findings[0].Snippet)
}

func TestScanUnitWordBoundary(t *testing.T) {
	scanner := newTestScanner()
	out := scanner.ScanUnit(testUnit(1, "DATA XBREAK-POINTX TYPE string.\n"))
	assert.Nil(t, out.Findings)
}

func TestScanUnitFindingsFollowRegistryOrder(t *testing.T) {
	scanner := newTestScanner()
	// BREAK-POINT appears before SET EXTENDED CHECK in the text, but
	// Rule303's findings come first because findings are grouped by rule
	// registration order.
	unit := testUnit(20, "BREAK-POINT.\nSET EXTENDED CHECK OFF.\n")

	out := scanner.ScanUnit(unit)
	require.Len(t, out.Findings, 2)
	assert.Equal(t, "Rule303_SetExtendedCheck", out.Findings[0].IssuesType)
	assert.Equal(t, 22, out.Findings[0].StartingLine)
	assert.Equal(t, "Rule304_BreakPointUsage", out.Findings[1].IssuesType)
	assert.Equal(t, 21, out.Findings[1].StartingLine)
}

func TestScanUnitMultipleMatchesSameLine(t *testing.T) {
	scanner := newTestScanner()
	unit := testUnit(1, "BREAK-POINT. BREAK-POINT.\n")

	out := scanner.ScanUnit(unit)
	require.Len(t, out.Findings, 2)
	assert.Equal(t, out.Findings[0].StartingLine, out.Findings[1].StartingLine)
	assert.Equal(t, out.Findings[0].Snippet, out.Findings[1].Snippet)
}

func TestScanUnitDoesNotMutateInput(t *testing.T) {
	scanner := newTestScanner()
	unit := testUnit(1, "BREAK-POINT.\n")

	first := scanner.ScanUnit(unit)
	require.Len(t, first.Findings, 1)
	assert.Nil(t, unit.Findings, "input unit must not be mutated")

	second := scanner.ScanUnit(unit)
	assert.Equal(t, first, second, "scanning must be idempotent")
}

func TestScanUnitCopiesIdentityFields(t *testing.T) {
	scanner := newTestScanner()
	unit := testUnit(7, "SET EXTENDED CHECK ON.\n")
	unit.ClassImplementation = "zcl_demo"

	out := scanner.ScanUnit(unit)
	assert.Equal(t, unit.PgmName, out.PgmName)
	assert.Equal(t, unit.IncName, out.IncName)
	assert.Equal(t, unit.Type, out.Type)
	assert.Equal(t, unit.Name, out.Name)
	assert.Equal(t, unit.ClassImplementation, out.ClassImplementation)
	assert.Equal(t, unit.StartLine, out.StartLine)
	assert.Equal(t, unit.EndLine, out.EndLine)
	assert.Equal(t, unit.Code, out.Code)
}

func TestScanUnitsPreservesOrder(t *testing.T) {
	scanner := newTestScanner()
	units := []models.Unit{
		testUnit(1, "BREAK-POINT.\n"),
		testUnit(50, "WRITE 'clean'.\n"),
		testUnit(100, "SET EXTENDED CHECK OFF.\n"),
	}

	results := scanner.ScanUnits(units)
	require.Len(t, results, 3)
	assert.True(t, results[0].HasFindings())
	assert.False(t, results[1].HasFindings())
	assert.True(t, results[2].HasFindings())
	assert.Equal(t, units[1].StartLine, results[1].StartLine)
}

func TestExtractLine(t *testing.T) {
	var tests = []struct {
		name string
		src  string
		pos  int
		want string
	}{
		{"single line no breaks", "BREAK-POINT.", 0, "BREAK-POINT."},
		{"middle line", "a.\nBREAK-POINT.\nb.", 3, "BREAK-POINT."},
		{"last line no trailing break", "a.\nBREAK-POINT.", 3, "BREAK-POINT."},
		{"first line", "BREAK-POINT.\nb.", 0, "BREAK-POINT."},
		{"position inside line", "WRITE x. BREAK-POINT.\n", 9, "WRITE x. BREAK-POINT."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, extractLine(tt.src, tt.pos))
		})
	}
}
