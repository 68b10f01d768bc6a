package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/urlfinder-cli/internal/config"
	"github.com/sells-group/urlfinder-cli/internal/cost"
	"github.com/sells-group/urlfinder-cli/internal/dataset"
	"github.com/sells-group/urlfinder-cli/internal/enrich"
	"github.com/sells-group/urlfinder-cli/internal/resilience"
	"github.com/sells-group/urlfinder-cli/pkg/genai"
)

// loadDataset picks the reader from the file extension unless --xlsx forces it.
func loadDataset(path string, forceXLSX bool) (dataset.Dataset, error) {
	if forceXLSX || strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return dataset.LoadXLSX(path)
	}
	return dataset.LoadCSV(path)
}

func saveDataset(ds dataset.Dataset, path string, forceXLSX bool) error {
	if forceXLSX || strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return dataset.SaveXLSX(ds, path)
	}
	return dataset.SaveCSV(ds, path)
}

// newOrchestrator wires the SDK client, pricing and retry policies from config.
func newOrchestrator(c *config.Config) (*enrich.Orchestrator, error) {
	if c.GenAI.Key == "" {
		return nil, eris.New("cmd: genai.key is not configured (set URLFINDER_GENAI_KEY)")
	}

	rates, err := c.Rates()
	if err != nil {
		return nil, err
	}

	urlPolicy := resilience.URLPolicy()
	urlPolicy.MaxRetries = c.Retry.URLMaxRetries
	dossierPolicy := resilience.DossierPolicy()
	dossierPolicy.MaxRetries = c.Retry.DossierMaxRetries
	applyBackoff(&urlPolicy, c.Retry)
	applyBackoff(&dossierPolicy, c.Retry)

	client := genai.NewClient(c.GenAI.Key, c.GenAI.RatePerMin)
	return enrich.New(client, cost.NewCalculator(rates), enrich.Config{
		URLModel:     c.GenAI.URLModel,
		DossierModel: c.GenAI.DossierModel,
		MaxTokens:    c.GenAI.MaxTokens,
		BatchSize:    c.Batch.Size,
		URLRetry:     urlPolicy,
		DossierRetry: dossierPolicy,
	}), nil
}

func applyBackoff(p *resilience.Policy, rc config.RetryConfig) {
	if rc.BaseDelayMs > 0 {
		p.BaseDelay = msToDuration(rc.BaseDelayMs)
	}
	if rc.MaxDelayMs > 0 {
		p.MaxDelay = msToDuration(rc.MaxDelayMs)
	}
	if rc.Jitter >= 0 {
		p.JitterFraction = rc.Jitter
	}
}

func msToDuration(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// printRunSummary reports one finished operation and the session totals.
func printRunSummary(res *enrich.Result) {
	stats := res.Stats
	fmt.Printf("status:   %s (%s)\n", stats.Status, stats.Progress)
	fmt.Printf("model:    %s\n", stats.Model)
	fmt.Printf("tokens:   %d in / %d out\n", stats.InputTokens, stats.OutputTokens)
	fmt.Printf("requests: %d\n", stats.Requests)
	fmt.Printf("cost:     $%.4f\n", stats.Cost)
	if len(res.SkippedBatches) > 0 {
		fmt.Printf("skipped:  %v\n", res.SkippedBatches)
	}
	if len(res.Sources) > 0 {
		fmt.Println("sources:")
		for _, s := range res.Sources {
			fmt.Printf("  - %s (%s)\n", s.Title, s.URI)
		}
	}
	fmt.Printf("session:  %d ops, %d in / %d out tokens, %d requests, $%.4f\n",
		ledger.Operations, ledger.InputTokens, ledger.OutputTokens,
		ledger.Requests, ledger.Cost)
}
