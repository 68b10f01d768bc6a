package enrich

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRows_Raw(t *testing.T) {
	t.Parallel()

	parsed, err := ParseRows(`[["Name","URL"],["A","a.com"]]`)
	require.NoError(t, err)
	assert.Equal(t, StageRaw, parsed.Stage)
	assert.Equal(t, [][]string{{"Name", "URL"}, {"A", "a.com"}}, parsed.Rows)
}

func TestParseRows_JSONFence(t *testing.T) {
	t.Parallel()

	text := "```json\n[[\"Name\",\"URL\"],[\"A\",\"a.com\"]]\n```"
	parsed, err := ParseRows(text)
	require.NoError(t, err)
	assert.Equal(t, StageFenced, parsed.Stage)
	assert.Len(t, parsed.Rows, 2)
}

func TestParseRows_PlainFence(t *testing.T) {
	t.Parallel()

	text := "```\n[[\"Name\"],[\"A\"]]\n```"
	parsed, err := ParseRows(text)
	require.NoError(t, err)
	assert.Equal(t, StageFenced, parsed.Stage)
}

func TestParseRows_BracketScan(t *testing.T) {
	t.Parallel()

	text := `Here is the repaired table: [["Name","URL"],["A","a.com"]] Hope that helps!`
	parsed, err := ParseRows(text)
	require.NoError(t, err)
	assert.Equal(t, StageBracket, parsed.Stage)
	assert.Len(t, parsed.Rows, 2)
}

func TestParseRows_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"prose only", "I could not find any URLs."},
		{"json object not array", `{"rows": []}`},
		{"array of strings", `["a","b"]`},
		{"empty array", `[]`},
		{"truncated json", `[["Name","URL"],["A"`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseRows(tt.text)
			assert.Error(t, err)
		})
	}
}
