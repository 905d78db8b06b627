package document

import "github.com/sdd-stack/skilldoc/internal/errors"

// OutlineEntry is one heading in the document outline.
type OutlineEntry struct {
	Level int
	Title string
	Line  int
}

// Outline returns the heading tree in document order.
func (d *Document) Outline() []OutlineEntry {
	entries := make([]OutlineEntry, len(d.Sections))
	for i := range d.Sections {
		entries[i] = OutlineEntry{
			Level: d.Sections[i].Level,
			Title: d.Sections[i].Title,
			Line:  d.Sections[i].Line,
		}
	}
	return entries
}

// ValidateOutline checks that headings form a single well-nested outline:
// each heading's level is at most one deeper than the heading before it,
// and the document opens at level 1. Deeper-to-shallower moves of any size
// are allowed. Returns the first violation.
func (d *Document) ValidateOutline() error {
	prev := 0
	for i := range d.Sections {
		s := &d.Sections[i]
		if s.Level > prev+1 {
			return errors.OutlineLevelJump(s.Line, prev, s.Level)
		}
		prev = s.Level
	}
	return nil
}

// outlineViolations returns every level jump, not just the first. Used by
// Validate to report all findings in one pass.
func (d *Document) outlineViolations() []*errors.DocError {
	var out []*errors.DocError
	prev := 0
	for i := range d.Sections {
		s := &d.Sections[i]
		if s.Level > prev+1 {
			out = append(out, errors.OutlineLevelJump(s.Line, prev, s.Level))
		}
		prev = s.Level
	}
	return out
}
