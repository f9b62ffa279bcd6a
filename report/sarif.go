// Package report renders scan findings into external report formats.
package report

import (
	"fmt"
	"io"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"abapscan/models"
)

const toolName = "abapscan"
const toolInfoURI = "https://github.com/abapscan/abapscan"

// BuildSarif converts findings into a SARIF 2.1.0 report with a single run.
// One reporting rule is registered per distinct issues_type; each finding
// becomes a result whose artifact URI is "<prog_name>/<incl_name>".
func BuildSarif(findings []models.Finding) (*sarif.Report, error) {
	reportSarif, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("failed to create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(toolName, toolInfoURI)
	for _, finding := range findings {
		rule := run.AddRule(finding.IssuesType).
			WithDescription(finding.Message).
			WithHelp(sarif.NewMultiformatMessageString(finding.Suggestion)).
			WithDefaultConfiguration(&sarif.ReportingConfiguration{
				Level: toSarifLevel(finding.Severity),
			})

		location := sarif.NewLocation().WithPhysicalLocation(
			sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewArtifactLocation().WithUri(artifactURI(finding))).
				WithRegion(sarif.NewRegion().
					WithStartLine(finding.StartingLine).
					WithEndLine(finding.EndingLine).
					WithSnippet(sarif.NewArtifactContent().WithText(finding.Snippet))),
		)

		result := sarif.NewRuleResult(rule.ID).
			WithMessage(sarif.NewTextMessage(finding.Message)).
			WithLevel(toSarifLevel(finding.Severity)).
			WithLocations([]*sarif.Location{location})
		run.AddResult(result)
	}
	reportSarif.AddRun(run)

	return reportSarif, nil
}

// WriteSarif renders findings as an indented SARIF document.
func WriteSarif(findings []models.Finding, w io.Writer) error {
	reportSarif, err := BuildSarif(findings)
	if err != nil {
		return err
	}
	return reportSarif.PrettyWrite(w)
}

// CollectFindings flattens the findings of all units, preserving unit order.
func CollectFindings(units []models.Unit) []models.Finding {
	var findings []models.Finding
	for _, u := range units {
		findings = append(findings, u.Findings...)
	}
	return findings
}

func artifactURI(f models.Finding) string {
	if f.InclName == "" {
		return f.ProgName
	}
	return f.ProgName + "/" + f.InclName
}

func toSarifLevel(severity string) string {
	switch severity {
	case "error":
		return "error"
	case "warning":
		return "warning"
	default:
		return "note"
	}
}
