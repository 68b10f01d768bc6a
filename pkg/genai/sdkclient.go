package genai

import (
	"context"
	"errors"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rotisserie/eris"
	"golang.org/x/time/rate"

	"github.com/sells-group/urlfinder-cli/internal/resilience"
)

// sdkClient implements Client over the official anthropic-sdk-go, with a
// token-bucket limiter ahead of every API call so sequential batch runs
// stay inside the service's rate limits.
type sdkClient struct {
	client  sdk.Client
	limiter *rate.Limiter
}

// NewClient creates an SDK-backed client. requestsPerMinute bounds the
// combined rate of count and generate calls; values below 1 disable
// limiting.
func NewClient(apiKey string, requestsPerMinute int) Client {
	var limiter *rate.Limiter
	if requestsPerMinute > 0 {
		limiter = rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), 1)
	}
	return &sdkClient{
		client:  sdk.NewClient(option.WithAPIKey(apiKey)),
		limiter: limiter,
	}
}

func (c *sdkClient) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

func (c *sdkClient) CountTokens(ctx context.Context, model, content string) (int64, error) {
	if err := c.wait(ctx); err != nil {
		return 0, eris.Wrap(err, "genai: rate limit wait")
	}

	count, err := c.client.Messages.CountTokens(ctx, sdk.MessageCountTokensParams{
		Model: sdk.Model(model),
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(content)),
		},
	})
	if err != nil {
		return 0, classify(eris.Wrap(err, "genai: count tokens"), err)
	}
	return count.InputTokens, nil
}

func (c *sdkClient) GenerateContent(ctx context.Context, req Request) (*Response, error) {
	if err := c.wait(ctx); err != nil {
		return nil, eris.Wrap(err, "genai: rate limit wait")
	}

	params := sdk.MessageNewParams{
		Model:     sdk.Model(req.Model),
		MaxTokens: req.MaxTokens,
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(req.Content)),
		},
	}
	if req.System != "" {
		params.System = []sdk.TextBlockParam{{Text: req.System}}
	}
	if req.Temperature != nil {
		params.Temperature = sdk.Float(*req.Temperature)
	}
	if req.UseSearch {
		params.Tools = []sdk.ToolUnionParam{{
			OfWebSearchTool20250305: &sdk.WebSearchTool20250305Param{},
		}}
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return nil, classify(eris.Wrap(err, "genai: generate content"), err)
	}
	if len(msg.Content) == 0 {
		return nil, eris.New("genai: empty response content")
	}

	return fromSDKMessage(msg), nil
}

// fromSDKMessage flattens the SDK message into the adapter response:
// text blocks are joined, web-search citations become grounding sources.
func fromSDKMessage(msg *sdk.Message) *Response {
	var parts []string
	var sources []GroundingSource
	seen := map[string]bool{}

	for _, block := range msg.Content {
		if block.Type != "text" {
			continue
		}
		if block.Text != "" {
			parts = append(parts, block.Text)
		}
		for _, cit := range block.Citations {
			if cit.URL == "" || seen[cit.URL] {
				continue
			}
			seen[cit.URL] = true
			sources = append(sources, GroundingSource{URI: cit.URL, Title: cit.Title})
		}
	}

	return &Response{
		Text:    strings.Join(parts, "\n"),
		Sources: sources,
		Usage: TokenUsage{
			InputTokens:  msg.Usage.InputTokens,
			OutputTokens: msg.Usage.OutputTokens,
		},
	}
}

// classify marks wrapped SDK errors as transient when the HTTP status or
// the underlying network failure warrants a retry.
func classify(wrapped, cause error) error {
	var apierr *sdk.Error
	if errors.As(cause, &apierr) {
		if resilience.IsTransientHTTPStatus(apierr.StatusCode) {
			return resilience.NewTransientError(wrapped, apierr.StatusCode)
		}
		return wrapped
	}
	if resilience.IsTransient(cause) {
		return resilience.NewTransientError(wrapped, 0)
	}
	return wrapped
}
