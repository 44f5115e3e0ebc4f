package schedule

import (
	"fmt"
	"strings"
	"time"
)

// titleLabel prefixes every event title.
const titleLabel = "Brass"

// clockLayout renders h:mm AM/PM without a leading zero on the hour.
const clockLayout = "3:04 PM"

// FormatTitleDescription assembles the calendar title and the three-line
// description for an event. Rehearsals have no opponent, so their titles
// omit the "vs" clause.
func FormatTitleDescription(category, opponent, ensemble, conductor string, callTime, start time.Time) (title, description string) {
	startStr := start.Format(clockLayout)
	if strings.EqualFold(strings.TrimSpace(category), "rehearsal") {
		title = fmt.Sprintf("%s - %s: %s @ %s", titleLabel, ensemble, category, startStr)
	} else {
		title = fmt.Sprintf("%s - %s: %s vs %s @ %s", titleLabel, ensemble, category, opponent, startStr)
	}
	description = fmt.Sprintf("Call Time: %s\nStart Time: %s\nConductor: %s",
		callTime.Format(clockLayout), startStr, conductor)
	return title, description
}
