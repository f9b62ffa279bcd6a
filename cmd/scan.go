package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"

	"abapscan/config"
	"abapscan/core"
	"abapscan/database"
	"abapscan/logger"
	"abapscan/models"
	"abapscan/report"
	"abapscan/rules"
)

var (
	scanUnitsPath  string
	scanFormat     string
	scanOutputPath string
	scanKeepAll    bool
)

var scanCmd = &cobra.Command{
	Use:   "scan <units.json>",
	Short: "Scans a JSON document of source units offline",
	Long: `Reads a JSON document containing source units, runs all registered
rules over each unit and writes the results to stdout or a file.

The document is expected to be a JSON array of units. If the units live
inside an envelope document, point --units-path at the array using a GJSON
path (e.g. --units-path "payload.units").`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		inputPath, err := expandTildeCmd(args[0])
		if err != nil {
			inputPath = args[0]
		}

		data, err := os.ReadFile(inputPath)
		if err != nil {
			return fmt.Errorf("reading input file %s: %w", inputPath, err)
		}

		unitsJSON := data
		if scanUnitsPath != "" {
			result := gjson.GetBytes(data, scanUnitsPath)
			if !result.Exists() || !result.IsArray() {
				return fmt.Errorf("no unit array found at path %q in %s", scanUnitsPath, inputPath)
			}
			unitsJSON = []byte(result.Raw)
		}

		var units []models.Unit
		if err := json.Unmarshal(unitsJSON, &units); err != nil {
			return fmt.Errorf("parsing units from %s: %w", inputPath, err)
		}
		logger.Info("Scan command: loaded %d unit(s) from %s", len(units), inputPath)

		scanner := core.NewScanner(rules.DefaultRegistry())
		scanned := scanner.ScanUnits(units)

		if config.AppConfig.Scan.PersistResults && database.DB != nil {
			if record, err := database.RecordScan(models.ScanModeFile, scanned); err != nil {
				logger.Error("Scan command: failed to record scan: %v", err)
			} else {
				logger.Info("Scan command: recorded scan %s", record.ID)
			}
		}

		results := scanned
		if !scanKeepAll {
			results = make([]models.Unit, 0, len(scanned))
			for _, u := range scanned {
				if u.HasFindings() {
					results = append(results, u)
				}
			}
		}

		out := os.Stdout
		if scanOutputPath != "" {
			expandedOut, err := expandTildeCmd(scanOutputPath)
			if err != nil {
				expandedOut = scanOutputPath
			}
			f, err := os.OpenFile(expandedOut, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
			if err != nil {
				return fmt.Errorf("opening output file %s: %w", expandedOut, err)
			}
			defer f.Close()
			out = f
		}

		switch scanFormat {
		case "json":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(results); err != nil {
				return fmt.Errorf("writing JSON results: %w", err)
			}
		case "sarif":
			if err := report.WriteSarif(report.CollectFindings(results), out); err != nil {
				return fmt.Errorf("writing SARIF results: %w", err)
			}
		default:
			return fmt.Errorf("unsupported output format %q (expected json or sarif)", scanFormat)
		}
		return nil
	},
}

func init() {
	scanCmd.Flags().StringVar(&scanUnitsPath, "units-path", "", "GJSON path to the unit array inside the input document")
	scanCmd.Flags().StringVarP(&scanFormat, "format", "f", "json", "Output format: json or sarif")
	scanCmd.Flags().StringVarP(&scanOutputPath, "output", "o", "", "Write results to this file instead of stdout")
	scanCmd.Flags().BoolVar(&scanKeepAll, "all", false, "Include units without findings in the output")
	rootCmd.AddCommand(scanCmd)
}
