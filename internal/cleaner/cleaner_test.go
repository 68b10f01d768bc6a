package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"url_not_found", "URL_NOT_FOUND", ""},
		{"no official website", "No official website found", ""},
		{"not found", "not found", ""},
		{"na", "N/A", ""},
		{"null", "null", ""},
		{"undefined", "undefined", ""},
		{"dossier placeholder", "Insufficient information to generate a profile", ""},
		{"trimmed before match", "  not found  ", ""},
		{"substring does not trigger", "url_not_found in page", "url_not_found in page"},
		{"real value untouched", "acme.com", "acme.com"},
		{"empty stays empty", "", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestCleanRows(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"Name", "URL"},
		{"A", "URL_NOT_FOUND"},
		{"B", "b.com"},
		{"not found", "n/a"},
	}

	got := CleanRows(rows, 1)

	// Header is never touched, even when it matches a placeholder column.
	assert.Equal(t, []string{"Name", "URL"}, got[0])
	assert.Equal(t, "", got[1][1])
	assert.Equal(t, "b.com", got[2][1])
	// Only the designated column is cleaned.
	assert.Equal(t, "not found", got[3][0])
	assert.Equal(t, "", got[3][1])
}

func TestCleanRows_Idempotent(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"Name", "URL"},
		{"A", "url_not_found"},
		{"B", "b.com"},
	}

	once := CleanRows(rows, 1)
	snapshot := make([][]string, len(once))
	for i, r := range once {
		snapshot[i] = append([]string(nil), r...)
	}

	twice := CleanRows(once, 1)
	assert.Equal(t, snapshot, twice)
}

func TestCleanRows_ShortRow(t *testing.T) {
	t.Parallel()

	rows := [][]string{
		{"Name", "URL"},
		{"A"},
	}
	assert.NotPanics(t, func() { CleanRows(rows, 1) })
}
