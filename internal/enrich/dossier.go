package enrich

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/urlfinder-cli/internal/cleaner"
	"github.com/sells-group/urlfinder-cli/internal/dataset"
	"github.com/sells-group/urlfinder-cli/internal/session"
	"github.com/sells-group/urlfinder-cli/pkg/genai"
)

// RunDossiers generates a research dossier for every data row, one request
// per row against the higher-cost dossier model. A row that exhausts its
// retry budget keeps its current dossier cell and is recorded in
// SkippedBatches by its 1-based row sequence; the run continues.
func (o *Orchestrator) RunDossiers(ctx context.Context, ds dataset.Dataset) (*Result, error) {
	if err := dataset.Validate(ds); err != nil {
		return nil, err
	}
	for i, row := range ds.DataRows() {
		if dataset.Name(row) == "" {
			return nil, eris.Errorf("enrich: row %d missing organization name", i+1)
		}
	}

	work := dataset.Clone(ds)
	rows := work.DataRows()

	stats := session.NewOperationStats(session.KindDossier, o.cfg.DossierModel)
	res := &Result{Stats: stats}

	zap.L().Info("dossier generation started",
		zap.String("operation_id", stats.ID.String()),
		zap.Int("rows", len(rows)),
	)

	for i := range rows {
		if err := ctx.Err(); err != nil {
			return nil, eris.Wrap(err, "enrich: run cancelled")
		}

		if err := o.processDossierRow(ctx, rows, i, stats, res); err != nil {
			return nil, err
		}
	}

	stats.Cost = o.calc.Estimate(o.cfg.DossierModel, stats.InputTokens, stats.OutputTokens, stats.Requests)

	status := session.StatusCompleted
	if len(res.SkippedBatches) > 0 {
		status = session.StatusError
	}
	stats.Finalize(status, len(rows)-len(res.SkippedBatches), len(rows))

	zap.L().Info("dossier generation finished",
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

func (o *Orchestrator) processDossierRow(ctx context.Context, rows []dataset.Row, i int, stats *session.OperationStats, res *Result) error {
	seq := i + 1
	payload := buildDossierPayload(rows[i])

	tokens, err := o.client.CountTokens(ctx, o.cfg.DossierModel, payload)
	if err != nil {
		zap.L().Warn("token count failed, recording zero",
			zap.Int("row", seq), zap.Error(err))
		tokens = 0
	}
	stats.InputTokens += tokens
	stats.Requests++

	attempt := 0
	for {
		resp, genErr := o.client.GenerateContent(ctx, genai.Request{
			Model:     o.cfg.DossierModel,
			System:    dossierSystemPrompt,
			Content:   payload,
			MaxTokens: o.cfg.MaxTokens,
		})
		if genErr == nil && strings.TrimSpace(resp.Text) == "" {
			genErr = eris.New("enrich: empty dossier response")
		}

		if genErr == nil {
			// Output tokens are only counted on the attempt that succeeds.
			stats.OutputTokens += resp.Usage.OutputTokens
			text := cleaner.CleanText(strings.TrimSpace(resp.Text))
			rows[i] = dataset.Set(rows[i], dataset.ColDossier, text)
			res.Sources = append(res.Sources, resp.Sources...)
			zap.L().Info("dossier merged", zap.Int("row", seq), zap.Int("attempt", attempt+1))
			return nil
		}

		attempt++
		zap.L().Warn("dossier attempt failed",
			zap.Int("row", seq),
			zap.Int("attempt", attempt),
			zap.Error(genErr),
		)

		decision := o.cfg.DossierRetry.Decide(attempt, genErr)
		if !decision.Retry {
			// Leave the target cell exactly as it was, not blanked.
			res.SkippedBatches = append(res.SkippedBatches, seq)
			zap.L().Error("dossier retries exhausted, row unchanged", zap.Int("row", seq))
			return nil
		}

		if err := o.sleep(ctx, decision.Delay); err != nil {
			return eris.Wrap(err, "enrich: run cancelled during backoff")
		}
	}
}
