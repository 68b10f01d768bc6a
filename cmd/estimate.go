package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var (
	estimateIn   string
	estimateXLSX bool
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate the cost of a URL repair run without generating anything",
	Long: `Partitions the spreadsheet exactly like the repair command would,
counts tokens for each batch that would trigger a lookup, and reports the
projected token and dollar cost.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ds, err := loadDataset(estimateIn, estimateXLSX)
		if err != nil {
			return err
		}

		orch, err := newOrchestrator(cfg)
		if err != nil {
			return err
		}

		est, err := orch.EstimateURLRepair(cmd.Context(), ds)
		if err != nil {
			return eris.Wrap(err, "estimate: run")
		}

		fmt.Printf("batches:  %d (%d need a lookup)\n", est.Batches, est.Requests)
		fmt.Printf("tokens:   %d in\n", est.InputTokens)
		fmt.Printf("cost:     $%.4f\n", est.Cost)
		return nil
	},
}

func init() {
	estimateCmd.Flags().StringVar(&estimateIn, "in", "", "input spreadsheet (csv or xlsx)")
	estimateCmd.Flags().BoolVar(&estimateXLSX, "xlsx", false, "force xlsx handling regardless of extension")
	_ = estimateCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(estimateCmd)
}
