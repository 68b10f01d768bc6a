package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/urlfinder-cli/internal/config"
	"github.com/sells-group/urlfinder-cli/internal/session"
)

var cfg *config.Config

// ledger accumulates cost across every operation this process runs.
var ledger session.Ledger

var rootCmd = &cobra.Command{
	Use:   "urlfinder",
	Short: "AI-assisted spreadsheet URL repair and enrichment",
	Long:  "Reads an organization spreadsheet, repairs missing website URLs and generates research dossiers via a text-generation service, and re-exports the cleaned data.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
