package enrich

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/sells-group/urlfinder-cli/internal/cost"
	"github.com/sells-group/urlfinder-cli/internal/resilience"
	"github.com/sells-group/urlfinder-cli/pkg/genai"
)

// --- GenAI mock ---

type mockGenClient struct {
	mock.Mock
}

func (m *mockGenClient) CountTokens(ctx context.Context, model, content string) (int64, error) {
	args := m.Called(ctx, model, content)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockGenClient) GenerateContent(ctx context.Context, req genai.Request) (*genai.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*genai.Response), args.Error(1)
}

// --- test fixtures ---

const (
	testURLModel     = "url-model"
	testDossierModel = "pro-model"
)

func testRates() cost.Rates {
	return cost.Rates{
		testURLModel: {
			Input: 3.00, Output: 15.00,
			GroundingPerThousand: 35.00,
			FreeGroundingPerDay:  1500,
		},
		testDossierModel: {
			Input: 15.00, Output: 75.00,
		},
	}
}

// newTestOrchestrator wires a mock client with zero-jitter policies and an
// instant sleep so retry paths run at full speed.
func newTestOrchestrator(client genai.Client, batchSize int) *Orchestrator {
	o := New(client, cost.NewCalculator(testRates()), Config{
		URLModel:     testURLModel,
		DossierModel: testDossierModel,
		BatchSize:    batchSize,
		URLRetry: resilience.Policy{
			MaxRetries: 2,
			BaseDelay:  time.Millisecond,
		},
		DossierRetry: resilience.Policy{
			MaxRetries: 1,
			BaseDelay:  time.Millisecond,
		},
	})
	o.sleep = func(ctx context.Context, _ time.Duration) error { return ctx.Err() }
	return o
}
