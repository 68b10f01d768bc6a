// Package cleaner normalizes model responses by blanking the placeholder
// strings the generation service uses when it cannot find an answer.
package cleaner

import "strings"

// placeholders is the fixed set of "not found" markers, compared after
// trimming and lowercasing. Matches are exact; substrings never trigger.
var placeholders = map[string]bool{
	"url_not_found":                                  true,
	"no official website found":                      true,
	"not found":                                      true,
	"n/a":                                            true,
	"null":                                           true,
	"undefined":                                      true,
	"insufficient information to generate a profile": true,
}

// CleanText returns "" when s is a known placeholder, otherwise s unchanged.
func CleanText(s string) string {
	if placeholders[strings.ToLower(strings.TrimSpace(s))] {
		return ""
	}
	return s
}

// CleanRows blanks placeholder values in the given column of every data row.
// Row 0 is assumed to be the header and is skipped. Other cells are never
// touched. Rows are mutated in place and returned for convenience; applying
// the pass twice is the same as applying it once.
func CleanRows(rows [][]string, col int) [][]string {
	for i, row := range rows {
		if i == 0 {
			continue
		}
		if col < 0 || col >= len(row) {
			continue
		}
		row[col] = CleanText(row[col])
	}
	return rows
}
