package mapping

// Store persists the association between a source row's position and the
// calendar event previously created for it. Row index is the only key,
// so source rows must never be reordered or deleted between runs.
type Store interface {
	// ReadIDs returns the known event IDs in row order, read once at the
	// start of a sync pass. Entries may be empty strings for rows that
	// have no event yet; the list may be shorter than the data.
	ReadIDs() ([]string, error)
	// WriteID records eventID at rowIndex. An empty eventID clears the
	// entry (orphan recovery).
	WriteID(rowIndex int, eventID string) error
}
