// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package windowtitle

import tea "github.com/charmbracelet/bubbletea"

// titleMsg carries the page part of the window title to the TitleHandler.
type titleMsg string

// Set replaces the page part of the window title; the portfolio name stays.
func Set(title string) tea.Cmd {
	return func() tea.Msg { return titleMsg(title) }
}
