package schedule

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// ColorKey normalizes an ensemble label for color-table lookup, so that
// " green band " or "WHITE" still match their table entries.
func ColorKey(ensemble string) string {
	return titleCaser.String(strings.TrimSpace(ensemble))
}

// ColorID resolves an ensemble to a calendar color identifier, falling
// back to the default ensemble's color when the label is unknown.
func ColorID(table map[string]string, ensemble, defaultEnsemble string) string {
	if id, ok := table[ColorKey(ensemble)]; ok {
		return id
	}
	return table[ColorKey(defaultEnsemble)]
}
