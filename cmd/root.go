package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"abapscan/config"
	"abapscan/database"
	"abapscan/logger"
)

var (
	cfgFile      string
	dbPath       string // Bound to --dbpath flag
	logPathFlag  string
	logLevelFlag string
	noDB         bool
)

// Helper function to expand tilde in this package too
func expandTildeCmd(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

var rootCmd = &cobra.Command{
	Use:   "abapscan",
	Short: "Scans ABAP source units for obsolete and forbidden statements",
	Long: `abapscan detects obsolete SET EXTENDED CHECK statements (Rule 303)
and forbidden BREAK-POINT statements (Rule 304) in ABAP source units and
reports their exact location with a remediation suggestion.

Run 'abapscan server' to expose the scanning API over HTTP, or
'abapscan scan' to scan a JSON document of units offline.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Init(cfgFile, logPathFlag, logLevelFlag); err != nil {
			return fmt.Errorf("failed to initialize config: %w", err)
		}

		if noDB {
			config.AppConfig.Scan.PersistResults = false
		}
		if !config.AppConfig.Scan.PersistResults {
			logger.Info("Scan persistence disabled; skipping database initialization.")
			return nil
		}

		finalDBPath := dbPath
		if finalDBPath != "" {
			expandedPath, err := expandTildeCmd(finalDBPath)
			if err != nil {
				logger.Error("Error expanding tilde in --dbpath flag '%s': %v. Using original.", finalDBPath, err)
			} else {
				finalDBPath = expandedPath
			}
		} else {
			finalDBPath = config.AppConfig.Database.Path
		}

		logger.Info("Initializing database at: %s", finalDBPath)
		if err := database.InitDB(finalDBPath); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		database.CloseDB()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to config file (default: config.yaml in user config dir or cwd)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "dbpath", "", "Path to the sqlite database file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logPathFlag, "log", "", "Path to the application log file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: DEBUG, INFO, WARN or ERROR (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&noDB, "no-db", false, "Disable scan result persistence for this invocation")
}
