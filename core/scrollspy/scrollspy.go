// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Package scrollspy tracks which section of a scrolled document is active.
// A section becomes active when it crosses the horizontal centre line of the
// viewport. Positions where no section crosses the line keep the previous
// active section.
package scrollspy

// Section is a laid-out block of the document, in content rows (or pixels).
type Section struct {
	ID     string
	Offset int
	Height int
}

func (s Section) contains(line int) bool {
	return line >= s.Offset && line < s.Offset+s.Height
}

type Spy struct {
	sections []Section
	active   string
}

// New returns a spy over sections. The first section starts active.
func New(sections []Section) *Spy {
	s := &Spy{}
	s.Layout(sections)
	return s
}

// Layout replaces the section geometry, for example after a resize. The
// active section is kept when it still exists.
func (s *Spy) Layout(sections []Section) {
	s.sections = append([]Section(nil), sections...)
	for _, sec := range s.sections {
		if sec.ID == s.active {
			return
		}
	}
	s.active = ""
	if len(s.sections) > 0 {
		s.active = s.sections[0].ID
	}
}

// Observe updates the active section for a viewport starting at top with the
// given height. It reports the active id and whether it changed.
func (s *Spy) Observe(top, viewport int) (string, bool) {
	centre := top + viewport/2
	for _, sec := range s.sections {
		if sec.contains(centre) {
			changed := sec.ID != s.active
			s.active = sec.ID
			return s.active, changed
		}
	}
	return s.active, false
}

// Active returns the active section id.
func (s *Spy) Active() string { return s.active }

// OffsetOf returns the offset of the section with the given id.
func (s *Spy) OffsetOf(id string) (int, bool) {
	for _, sec := range s.sections {
		if sec.ID == id {
			return sec.Offset, true
		}
	}
	return 0, false
}

// ScrollTarget returns the scroll position that places the top of section id
// at the viewport centre line, so the section becomes active once scrolled
// there. The result is never negative.
func (s *Spy) ScrollTarget(id string, viewport int) (int, bool) {
	off, ok := s.OffsetOf(id)
	if !ok {
		return 0, false
	}
	return max(0, off-viewport/2), true
}

// Sections returns the current layout.
func (s *Spy) Sections() []Section {
	return append([]Section(nil), s.sections...)
}
