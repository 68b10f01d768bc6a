package enrich

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/urlfinder-cli/internal/cleaner"
	"github.com/sells-group/urlfinder-cli/internal/dataset"
	"github.com/sells-group/urlfinder-cli/internal/partition"
	"github.com/sells-group/urlfinder-cli/internal/session"
	"github.com/sells-group/urlfinder-cli/pkg/genai"
)

// RunURLRepair finds official website URLs for every data row whose URL
// column fails the plausibility check. Batches are processed strictly in
// order; a batch that exhausts its retry budget keeps its original rows
// and is recorded in SkippedBatches. A non-nil error is returned only for
// input validation failures and context cancellation — per-batch failures
// never abort the run.
func (o *Orchestrator) RunURLRepair(ctx context.Context, ds dataset.Dataset) (*Result, error) {
	batches := partition.Split(ds.DataRows(), o.cfg.BatchSize)
	if err := validateInput(ds, batches); err != nil {
		return nil, err
	}

	// Work on a copy so the caller's rows survive a cancelled run intact.
	// Batch row slices alias the copy, so scatter-merges below land in
	// their original positions and the input row order is preserved.
	work := dataset.Clone(ds)
	batches = partition.Split(work.DataRows(), o.cfg.BatchSize)
	header := work[0]

	stats := session.NewOperationStats(session.KindURLRepair, o.cfg.URLModel)
	res := &Result{Stats: stats}

	zap.L().Info("url repair started",
		zap.String("operation_id", stats.ID.String()),
		zap.Int("rows", len(work.DataRows())),
		zap.Int("batches", len(batches)),
	)

	for _, b := range batches {
		if err := ctx.Err(); err != nil {
			return nil, eris.Wrap(err, "enrich: run cancelled")
		}

		if b.NoCall() {
			zap.L().Debug("batch needs no lookup", zap.Int("batch", b.Seq))
			continue
		}

		if err := o.processBatch(ctx, header, b, stats, res); err != nil {
			return nil, err
		}
	}

	stats.Cost = o.calc.Estimate(o.cfg.URLModel, stats.InputTokens, stats.OutputTokens, stats.Requests)

	status := session.StatusCompleted
	if len(res.SkippedBatches) > 0 {
		status = session.StatusError
	}
	stats.Finalize(status, len(batches)-len(res.SkippedBatches), len(batches))

	zap.L().Info("url repair finished",
		zap.String("status", string(stats.Status)),
		zap.String("progress", stats.Progress),
		zap.Int64("input_tokens", stats.InputTokens),
		zap.Int64("output_tokens", stats.OutputTokens),
		zap.Int("requests", stats.Requests),
		zap.Float64("estimated_cost_usd", stats.Cost),
	)

	res.Dataset = work
	return res, nil
}

// processBatch runs the submit/parse/merge/retry cycle for one batch.
// The returned error is non-nil only for context cancellation during
// backoff; ordinary failures end in the skip list.
func (o *Orchestrator) processBatch(ctx context.Context, header dataset.Row, b partition.Batch, stats *session.OperationStats, res *Result) error {
	payload, err := buildURLPayload(header, b.Lookups)
	if err != nil {
		// Marshal of a string table cannot realistically fail; treat it
		// like any other terminal batch failure.
		zap.L().Error("batch payload build failed", zap.Int("batch", b.Seq), zap.Error(err))
		res.SkippedBatches = append(res.SkippedBatches, b.Seq)
		return nil
	}

	// Token counting happens once per batch, never per attempt. A counting
	// failure degrades to zero tokens rather than blocking the lookup.
	tokens, err := o.client.CountTokens(ctx, o.cfg.URLModel, payload)
	if err != nil {
		zap.L().Warn("token count failed, recording zero",
			zap.Int("batch", b.Seq), zap.Error(err))
		tokens = 0
	}
	stats.InputTokens += tokens

	// One logical API request per batch, no matter how many retries it
	// takes or whether it ultimately succeeds.
	stats.Requests++

	attempt := 0
	for {
		resp, genErr := o.client.GenerateContent(ctx, genai.Request{
			Model:     o.cfg.URLModel,
			System:    urlSystemPrompt,
			Content:   payload,
			MaxTokens: o.cfg.MaxTokens,
			UseSearch: true,
		})

		var rows [][]string
		if genErr == nil {
			rows, genErr = o.parseBatchResponse(resp.Text, len(b.Lookups))
		}

		if genErr == nil {
			stats.OutputTokens += resp.Usage.OutputTokens
			cleaner.CleanRows(rows, dataset.ColURL)
			scatterURLs(b, rows)
			res.Sources = append(res.Sources, resp.Sources...)
			zap.L().Info("batch merged",
				zap.Int("batch", b.Seq),
				zap.Int("lookups", len(b.Lookups)),
				zap.Int("attempt", attempt+1),
			)
			return nil
		}

		attempt++
		zap.L().Warn("batch attempt failed",
			zap.Int("batch", b.Seq),
			zap.Int("attempt", attempt),
			zap.Error(genErr),
		)

		decision := o.cfg.URLRetry.Decide(attempt, genErr)
		if !decision.Retry {
			// Original rows stay in place; no data is lost.
			res.SkippedBatches = append(res.SkippedBatches, b.Seq)
			zap.L().Error("batch retries exhausted, keeping original rows",
				zap.Int("batch", b.Seq),
				zap.Int("attempts", attempt),
			)
			return nil
		}

		if err := o.sleep(ctx, decision.Delay); err != nil {
			return eris.Wrap(err, "enrich: run cancelled during backoff")
		}
	}
}

// parseBatchResponse parses the reply and checks it carries exactly the
// header plus the rows that were submitted.
func (o *Orchestrator) parseBatchResponse(text string, lookups int) ([][]string, error) {
	parsed, err := ParseRows(text)
	if err != nil {
		return nil, err
	}
	if got := len(parsed.Rows) - 1; got != lookups {
		return nil, eris.Errorf("enrich: row count mismatch: sent %d rows, got %d", lookups, got)
	}
	return parsed.Rows, nil
}

// scatterURLs writes each returned URL cell back onto the batch position
// it was submitted from. rows[0] is the echoed header.
func scatterURLs(b partition.Batch, rows [][]string) {
	for i, lk := range b.Lookups {
		url := dataset.Get(rows[i+1], dataset.ColURL)
		b.Rows[lk.Offset] = dataset.Set(b.Rows[lk.Offset], dataset.ColURL, url)
	}
}
