package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
)

var (
	dossierIn   string
	dossierOut  string
	dossierXLSX bool
)

var dossierCmd = &cobra.Command{
	Use:   "dossier",
	Short: "Generate a research dossier for every row in a spreadsheet",
	Long: `Submits one request per data row to the dossier model and writes the
generated profile into the dossier column. A row whose requests all fail is
left unchanged and the run continues.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ds, err := loadDataset(dossierIn, dossierXLSX)
		if err != nil {
			return err
		}

		orch, err := newOrchestrator(cfg)
		if err != nil {
			return err
		}

		res, err := orch.RunDossiers(cmd.Context(), ds)
		if err != nil {
			return eris.Wrap(err, "dossier: run")
		}
		ledger.Fold(res.Stats)

		out := dossierOut
		if out == "" {
			out = dossierIn
		}
		if err := saveDataset(res.Dataset, out, dossierXLSX); err != nil {
			return err
		}

		printRunSummary(res)
		return nil
	},
}

func init() {
	dossierCmd.Flags().StringVar(&dossierIn, "in", "", "input spreadsheet (csv or xlsx)")
	dossierCmd.Flags().StringVar(&dossierOut, "out", "", "output path (defaults to overwriting the input)")
	dossierCmd.Flags().BoolVar(&dossierXLSX, "xlsx", false, "force xlsx handling regardless of extension")
	_ = dossierCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(dossierCmd)
}
