package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abapscan/models"
)

func sampleFinding(issuesType string, line int) models.Finding {
	return models.Finding{
		ProgName:     "ZREPORT",
		InclName:     "ZINCLUDE",
		Types:        "method",
		BlockName:    "do_stuff",
		StartingLine: line,
		EndingLine:   line,
		IssuesType:   issuesType,
		Severity:     "error",
		Message:      "message for " + issuesType,
		Suggestion:   "suggestion for " + issuesType,
		Snippet:      "BREAK-POINT.",
	}
}

func TestBuildSarifShape(t *testing.T) {
	findings := []models.Finding{
		sampleFinding("Rule303_SetExtendedCheck", 12),
		sampleFinding("Rule304_BreakPointUsage", 40),
		sampleFinding("Rule304_BreakPointUsage", 77),
	}

	sarifReport, err := BuildSarif(findings)
	require.NoError(t, err)
	require.Len(t, sarifReport.Runs, 1)

	run := sarifReport.Runs[0]
	assert.Equal(t, "abapscan", run.Tool.Driver.Name)
	// One reporting rule per distinct issues_type, each carrying the
	// remediation suggestion as help text.
	require.Len(t, run.Tool.Driver.Rules, 2)
	for _, rule := range run.Tool.Driver.Rules {
		require.NotNil(t, rule.Help)
		require.NotNil(t, rule.Help.Text)
		assert.Equal(t, "suggestion for "+rule.ID, *rule.Help.Text)
	}
	require.Len(t, run.Results, 3)

	first := run.Results[0]
	require.NotNil(t, first.RuleID)
	assert.Equal(t, "Rule303_SetExtendedCheck", *first.RuleID)
	require.NotNil(t, first.Level)
	assert.Equal(t, "error", *first.Level)
	require.Len(t, first.Locations, 1)

	region := first.Locations[0].PhysicalLocation.Region
	require.NotNil(t, region)
	require.NotNil(t, region.StartLine)
	assert.Equal(t, 12, *region.StartLine)

	uri := first.Locations[0].PhysicalLocation.ArtifactLocation.URI
	require.NotNil(t, uri)
	assert.Equal(t, "ZREPORT/ZINCLUDE", *uri)
}

func TestWriteSarifIsValidJSON(t *testing.T) {
	var buf bytes.Buffer
	err := WriteSarif([]models.Finding{sampleFinding("Rule304_BreakPointUsage", 5)}, &buf)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "2.1.0", doc["version"])
}

func TestBuildSarifEmptyFindings(t *testing.T) {
	sarifReport, err := BuildSarif(nil)
	require.NoError(t, err)
	require.Len(t, sarifReport.Runs, 1)
	assert.Empty(t, sarifReport.Runs[0].Results)
}

func TestCollectFindings(t *testing.T) {
	units := []models.Unit{
		{PgmName: "A", Findings: []models.Finding{sampleFinding("Rule303_SetExtendedCheck", 1)}},
		{PgmName: "B"},
		{PgmName: "C", Findings: []models.Finding{sampleFinding("Rule304_BreakPointUsage", 2), sampleFinding("Rule304_BreakPointUsage", 3)}},
	}
	findings := CollectFindings(units)
	require.Len(t, findings, 3)
	assert.Equal(t, 1, findings[0].StartingLine)
	assert.Equal(t, 3, findings[2].StartingLine)
}
