package models

// NoRowRef is the row reference used for column- and group-level problems.
const NoRowRef = "Row 0 (N/A)"

// SoftErrors accumulates non-fatal problems as aligned message/row-reference pairs.
type SoftErrors struct {
	messages []string
	refs     []string
}

// Add records a problem with its row reference.
func (s *SoftErrors) Add(message, rowRef string) {
	s.messages = append(s.messages, message)
	s.refs = append(s.refs, rowRef)
}

// Len returns the number of recorded problems.
func (s *SoftErrors) Len() int { return len(s.messages) }

// Messages returns a copy of the recorded messages.
func (s *SoftErrors) Messages() []string {
	return append([]string{}, s.messages...)
}

// RowRefs returns a copy of the recorded row references.
func (s *SoftErrors) RowRefs() []string {
	return append([]string{}, s.refs...)
}
