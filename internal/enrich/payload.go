package enrich

import (
	"encoding/json"
	"fmt"

	"github.com/rotisserie/eris"

	"github.com/sells-group/urlfinder-cli/internal/dataset"
	"github.com/sells-group/urlfinder-cli/internal/partition"
)

const urlSystemPrompt = "You are a data repair assistant. You find the official website for each organization and answer only with JSON."

const urlInstruction = `For each data row in the JSON table below, find the organization's official website URL and write it into the %q column. Do not modify any other cell. If no official website exists, write "URL_NOT_FOUND" in that cell.

Respond with ONLY a JSON array of arrays containing the header row followed by every data row, in the same order they were given.

%s`

const dossierSystemPrompt = "You are a research analyst. You write concise, factual organization profiles."

const dossierInstruction = `Write a research dossier for the organization below: what it does, who it serves, its scale, and anything notable. Respond with plain text only. If you cannot find enough reliable information, respond exactly with "Insufficient information to generate a profile".

Organization: %s
Website: %s
Description: %s`

// buildURLPayload serializes the header plus the rows needing lookup as a
// JSON table embedded in the lookup instruction. Only rows that failed the
// plausibility check are ever included.
func buildURLPayload(header dataset.Row, lookups []partition.Lookup) (string, error) {
	table := make([][]string, 0, len(lookups)+1)
	table = append(table, header)
	for _, lk := range lookups {
		table = append(table, lk.Row)
	}

	data, err := json.Marshal(table)
	if err != nil {
		return "", eris.Wrap(err, "enrich: marshal request table")
	}

	urlColumn := dataset.Get(header, dataset.ColURL)
	if urlColumn == "" {
		urlColumn = "URL"
	}
	return fmt.Sprintf(urlInstruction, urlColumn, data), nil
}

// buildDossierPayload formats the single-row dossier request.
func buildDossierPayload(row dataset.Row) string {
	return fmt.Sprintf(dossierInstruction,
		dataset.Name(row),
		dataset.Get(row, dataset.ColURL),
		dataset.Get(row, dataset.ColDescription),
	)
}
