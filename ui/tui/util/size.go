// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package util

import tea "github.com/charmbracelet/bubbletea"

// Size is the last window size a model was given.
type Size struct {
	Width  int
	Height int
}

// Update stores the size from a tea.WindowSizeMsg and reports whether msg
// was one.
func (s *Size) Update(msg tea.Msg) bool {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		s.Width, s.Height = msg.Width, msg.Height
		return true
	}
	return false
}

// ToMsg replays the stored size, e.g. for a model that was just shown.
func (s *Size) ToMsg() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{
		Width:  s.Width,
		Height: s.Height,
	}
}
