// Package cost converts token and request counts into USD estimates and
// aggregates them across a session.
package cost

// ModelRate holds per-model pricing. Input/Output are USD per million
// tokens. GroundingPerThousand is the USD price per thousand grounded
// (web-search) requests beyond the free daily allowance; zero means the
// model is billed for tokens only.
type ModelRate struct {
	Input                float64 `yaml:"input" mapstructure:"input"`
	Output               float64 `yaml:"output" mapstructure:"output"`
	GroundingPerThousand float64 `yaml:"grounding_per_thousand" mapstructure:"grounding_per_thousand"`
	FreeGroundingPerDay  int     `yaml:"free_grounding_per_day" mapstructure:"free_grounding_per_day"`
}

// Rates maps model identifiers to their pricing.
type Rates map[string]ModelRate

// Calculator computes cost estimates for API usage.
type Calculator struct {
	rates Rates
}

// NewCalculator creates a Calculator with the given rates.
func NewCalculator(rates Rates) *Calculator {
	return &Calculator{rates: rates}
}

// Estimate computes the USD cost of an operation against one model.
// The grounding term charges only requests beyond the free daily tier and
// only for models that carry a grounding price. Unknown models cost 0.
//
// The free grounding allowance is applied per operation, not per session:
// each operation's request count is discounted independently.
func (c *Calculator) Estimate(model string, inputTokens, outputTokens int64, requests int) float64 {
	rate, ok := c.rates[model]
	if !ok {
		return 0
	}

	inCost := float64(inputTokens) / 1e6 * rate.Input
	outCost := float64(outputTokens) / 1e6 * rate.Output

	var groundingCost float64
	if rate.GroundingPerThousand > 0 {
		billable := requests - rate.FreeGroundingPerDay
		if billable < 0 {
			billable = 0
		}
		groundingCost = float64(billable) / 1000 * rate.GroundingPerThousand
	}

	return inCost + outCost + groundingCost
}

// DefaultRates returns the built-in pricing table. The URL-repair model
// carries a grounding price because its lookups use web search; the
// dossier model is billed for tokens only.
func DefaultRates() Rates {
	return Rates{
		"claude-sonnet-4-5-20250929": {
			Input: 3.00, Output: 15.00,
			GroundingPerThousand: 10.00,
			FreeGroundingPerDay:  0,
		},
		"claude-haiku-4-5-20251001": {
			Input: 0.80, Output: 4.00,
		},
		"claude-opus-4-6": {
			Input: 15.00, Output: 75.00,
		},
	}
}
