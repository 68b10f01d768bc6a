package enrich

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/urlfinder-cli/internal/dataset"
	"github.com/sells-group/urlfinder-cli/internal/partition"
)

// Estimate is the projected cost of a URL repair run over a dataset.
type Estimate struct {
	InputTokens int64
	Requests    int
	Batches     int
	Cost        float64
}

// EstimateURLRepair performs a dry partition over the dataset and counts
// tokens for every batch the real run would submit, without generating
// anything. It reuses the same partitioning rule as RunURLRepair so both
// agree on which batches trigger calls. Token-counting errors propagate:
// an estimate with silently missing tokens would be worse than no
// estimate.
func (o *Orchestrator) EstimateURLRepair(ctx context.Context, ds dataset.Dataset) (*Estimate, error) {
	batches := partition.Split(ds.DataRows(), o.cfg.BatchSize)
	if err := validateInput(ds, batches); err != nil {
		return nil, err
	}

	header := ds[0]
	est := &Estimate{Batches: len(batches)}

	for _, b := range batches {
		if err := ctx.Err(); err != nil {
			return nil, eris.Wrap(err, "enrich: estimate cancelled")
		}
		if b.NoCall() {
			continue
		}

		payload, err := buildURLPayload(header, b.Lookups)
		if err != nil {
			return nil, err
		}

		tokens, err := o.client.CountTokens(ctx, o.cfg.URLModel, payload)
		if err != nil {
			return nil, eris.Wrap(err, "enrich: count tokens for estimate")
		}

		est.InputTokens += tokens
		est.Requests++
	}

	est.Cost = o.calc.Estimate(o.cfg.URLModel, est.InputTokens, 0, est.Requests)

	zap.L().Info("url repair estimated",
		zap.Int("batches", est.Batches),
		zap.Int("requests", est.Requests),
		zap.Int64("input_tokens", est.InputTokens),
		zap.Float64("estimated_cost_usd", est.Cost),
	)
	return est, nil
}
