package main

import (
	"fmt"
	"os"

	"github.com/bandhub/band-management-backend/config"
	"github.com/bandhub/band-management-backend/utils"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	cfg      *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "bandhub",
	Short: "BandHub - events, setlists and songs for a band",
	Long: `BandHub serves the band management API.

Commands:
  serve     run the HTTP API and the reminder scheduler (default)
  migrate   create or update the database schema
  consume   tail setlist changes from Kafka`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		if logLevel != "" {
			loaded.LogLevel = logLevel
		}
		utils.NewLogger(os.Stderr, loaded.LogLevel)
		cfg = loaded
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error); overrides LOG_LEVEL")
	rootCmd.AddCommand(serveCmd, migrateCmd, consumeCmd)
}
