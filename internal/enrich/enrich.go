// Package enrich drives the AI enrichment operations: batched URL repair,
// per-row dossier generation, and the pre-run cost estimate. One
// Orchestrator owns the stats record for the duration of a run and returns
// a finalized snapshot; the session ledger stays with the caller.
package enrich

import (
	"context"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/urlfinder-cli/internal/cost"
	"github.com/sells-group/urlfinder-cli/internal/dataset"
	"github.com/sells-group/urlfinder-cli/internal/partition"
	"github.com/sells-group/urlfinder-cli/internal/resilience"
	"github.com/sells-group/urlfinder-cli/internal/session"
	"github.com/sells-group/urlfinder-cli/pkg/genai"
)

// Config bounds one orchestrator's operations.
type Config struct {
	URLModel     string
	DossierModel string
	MaxTokens    int64
	BatchSize    int
	URLRetry     resilience.Policy
	DossierRetry resilience.Policy
}

// Orchestrator runs enrichment operations against a generation client.
type Orchestrator struct {
	client genai.Client
	calc   *cost.Calculator
	cfg    Config

	// sleep is replaced in tests so retry backoff does not slow them down.
	sleep func(ctx context.Context, d time.Duration) error
}

// New creates an Orchestrator. BatchSize defaults to 10 and MaxTokens to
// 4096 when unset.
func New(client genai.Client, calc *cost.Calculator, cfg Config) *Orchestrator {
	if cfg.BatchSize < 1 {
		cfg.BatchSize = 10
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 4096
	}
	return &Orchestrator{
		client: client,
		calc:   calc,
		cfg:    cfg,
		sleep:  sleepCtx,
	}
}

// Result is the outcome of one enrichment run. Dataset is a mutated copy
// of the input with the original row order preserved; rows belonging to
// exhausted batches are carried through unchanged.
type Result struct {
	Dataset        dataset.Dataset
	Stats          *session.OperationStats
	SkippedBatches []int
	Sources        []genai.GroundingSource
}

// validateInput checks the dataset and the rows that will be submitted.
// Failures here abort before any batch work begins.
func validateInput(ds dataset.Dataset, batches []partition.Batch) error {
	if err := dataset.Validate(ds); err != nil {
		return err
	}
	for _, b := range batches {
		for _, lk := range b.Lookups {
			if dataset.Name(lk.Row) == "" {
				return eris.Errorf("enrich: batch %d: row missing organization name", b.Seq)
			}
		}
	}
	return nil
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
