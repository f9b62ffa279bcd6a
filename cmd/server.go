package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"abapscan/api"
	"abapscan/config"
	"abapscan/core"
	"abapscan/logger"
	"abapscan/rules"
)

var serverPort string

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Starts the scanning API server",
	Long: `Starts the HTTP server exposing the remediation endpoints
(POST /remediate, POST /remediate-array), the health probe and,
when persistence is enabled, the scan history endpoints.
Press Ctrl+C to gracefully shut down.`,
	Run: func(cmd *cobra.Command, args []string) {
		portToUse := serverPort
		if !cmd.Flags().Changed("port") {
			portToUse = config.AppConfig.Server.Port
		}
		if portToUse == "" {
			portToUse = "8703"
		}

		scanner := core.NewScanner(rules.DefaultRegistry())
		logger.Info("Active rules: %v", scanner.Registry().IDs())

		router := api.NewRouter(scanner)
		server := &http.Server{
			Addr:    ":" + portToUse,
			Handler: router,
		}

		shutdownDone := make(chan struct{})
		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			<-sigCh
			logger.Info("Shutdown signal received...")

			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				logger.Error("Graceful shutdown failed: %v", err)
			} else {
				logger.Info("Server gracefully stopped.")
			}
			close(shutdownDone)
		}()

		logger.Info("Listening on :%s", portToUse)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Could not start server: %v", err)
		}
		<-shutdownDone
	},
}

func init() {
	serverCmd.Flags().StringVarP(&serverPort, "port", "p", "8703", "Port for the server to listen on")
	rootCmd.AddCommand(serverCmd)
}
