package enrich

import (
	"encoding/json"
	"strings"

	"github.com/rotisserie/eris"
)

// ParseStage names the strategy that produced a successful parse.
type ParseStage string

const (
	StageFenced  ParseStage = "fenced"
	StageBracket ParseStage = "bracket"
	StageRaw     ParseStage = "raw"
)

// RowsParse is the typed result of parsing a generation response.
type RowsParse struct {
	Rows  [][]string
	Stage ParseStage
}

// ParseRows extracts a JSON array-of-arrays from model output. Responses
// arrive as raw JSON, JSON inside a markdown code fence, or JSON embedded
// in prose; the strategies are tried in that order of likelihood and the
// first one yielding valid JSON wins.
func ParseRows(text string) (*RowsParse, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, eris.New("enrich: empty response text")
	}

	if inner, ok := stripFence(trimmed); ok {
		if rows, err := unmarshalRows(inner); err == nil {
			return &RowsParse{Rows: rows, Stage: StageFenced}, nil
		}
	}

	start := strings.Index(trimmed, "[")
	end := strings.LastIndex(trimmed, "]")
	if start >= 0 && end > start {
		if rows, err := unmarshalRows(trimmed[start : end+1]); err == nil {
			return &RowsParse{Rows: rows, Stage: StageBracket}, nil
		}
	}

	rows, err := unmarshalRows(trimmed)
	if err != nil {
		return nil, eris.Wrap(err, "enrich: response is not a JSON row array")
	}
	return &RowsParse{Rows: rows, Stage: StageRaw}, nil
}

// stripFence removes a leading/trailing markdown code fence. ok is false
// when the text is not fenced.
func stripFence(text string) (string, bool) {
	if !strings.HasPrefix(text, "```") {
		return "", false
	}
	inner := strings.TrimPrefix(text, "```json")
	if inner == text {
		inner = strings.TrimPrefix(text, "```")
	}
	if idx := strings.LastIndex(inner, "```"); idx >= 0 {
		inner = inner[:idx]
	}
	return strings.TrimSpace(inner), true
}

func unmarshalRows(text string) ([][]string, error) {
	var rows [][]string
	if err := json.Unmarshal([]byte(text), &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, eris.New("enrich: empty row array")
	}
	return rows, nil
}
