package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var (
	repairIn   string
	repairOut  string
	repairXLSX bool
)

var repairCmd = &cobra.Command{
	Use:   "repair",
	Short: "Find missing website URLs for every row in a spreadsheet",
	Long: `Partitions the spreadsheet's data rows into batches, sends each batch
that still needs a URL to the generation service, and writes the repaired
rows back out in their original order. Rows that already carry a plausible
URL never trigger an API call.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ds, err := loadDataset(repairIn, repairXLSX)
		if err != nil {
			return err
		}

		orch, err := newOrchestrator(cfg)
		if err != nil {
			return err
		}

		res, err := orch.RunURLRepair(cmd.Context(), ds)
		if err != nil {
			return eris.Wrap(err, "repair: run")
		}
		ledger.Fold(res.Stats)

		out := repairOut
		if out == "" {
			out = repairIn
		}
		if err := saveDataset(res.Dataset, out, repairXLSX); err != nil {
			return err
		}

		printRunSummary(res)
		return nil
	},
}

func init() {
	repairCmd.Flags().StringVar(&repairIn, "in", "", "input spreadsheet (csv or xlsx)")
	repairCmd.Flags().StringVar(&repairOut, "out", "", "output path (defaults to overwriting the input)")
	repairCmd.Flags().BoolVar(&repairXLSX, "xlsx", false, "force xlsx handling regardless of extension")
	_ = repairCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(repairCmd)
}
