// Package genai defines the generation-service adapter used by the
// enrichment pipeline. The interface carries exactly the two operations
// the orchestrators need — token counting and text generation — so tests
// can substitute a mock without touching the SDK.
package genai

import "context"

// Client is the generation-service boundary.
type Client interface {
	// CountTokens returns the input token count for content under model.
	CountTokens(ctx context.Context, model, content string) (int64, error)

	// GenerateContent submits one request and returns the generated text
	// plus any grounding sources the service cited.
	GenerateContent(ctx context.Context, req Request) (*Response, error)
}

// Request is a single generation call.
type Request struct {
	Model       string
	System      string
	Content     string
	MaxTokens   int64
	Temperature *float64

	// UseSearch enables the web-search tool so responses can be grounded
	// in live sources.
	UseSearch bool
}

// Response is the adapter-level result of a generation call.
type Response struct {
	Text    string
	Sources []GroundingSource
	Usage   TokenUsage
}

// GroundingSource is a web reference the service claims to have used.
// Auxiliary data only; never merged into the dataset.
type GroundingSource struct {
	URI   string
	Title string
}

// TokenUsage tracks token consumption reported by the service.
type TokenUsage struct {
	InputTokens  int64
	OutputTokens int64
}
