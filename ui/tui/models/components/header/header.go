// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Package header draws the title bar with the portfolio name and the page
// currently shown.
package header

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/oelhwry/folio/ui/tui/util"
)

// SetPageMsg updates the page shown in the header.
type SetPageMsg struct {
	Title    string
	Subtitle string
}

type Model struct {
	name     string
	title    string
	subtitle string
	size     util.Size
}

func New(name string) *Model {
	return &Model{name: name}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return nil
	}
	if msg, ok := msg.(SetPageMsg); ok {
		m.title, m.subtitle = msg.Title, msg.Subtitle
	}
	return nil
}

var (
	nameStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E2E8F0"))
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#5EEAD4"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748B"))
)

func (m *Model) line() string {
	line := nameStyle.Render(m.name)
	if m.title != "" && m.title != m.name {
		line += subtitleStyle.Render(" / ") + titleStyle.Render(m.title)
	}
	if m.subtitle != "" {
		line += subtitleStyle.Render("  " + m.subtitle)
	}
	return line
}

func (m *Model) View() string {
	return lipgloss.
		NewStyle().
		Border(lipgloss.NormalBorder(), false).
		BorderBottom(true).
		Render(lipgloss.PlaceHorizontal(
			m.size.Width,
			lipgloss.Center,
			m.line(),
		))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
