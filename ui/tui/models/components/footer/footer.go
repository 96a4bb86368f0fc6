// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Package footer shows key help and a transient status line.
package footer

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/oelhwry/folio/ui/tui/models/components/keyhelp"
	"github.com/oelhwry/folio/ui/tui/util"
)

// StatusTimeout is how long a status message stays visible.
const StatusTimeout = 3 * time.Second

type statusMsg struct {
	text  string
	isErr bool
}

type clearStatusMsg struct{ seq int }

// Status shows text in the footer for StatusTimeout.
func Status(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text} }
}

// Error shows text as an error in the footer for StatusTimeout.
func Error(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text, isErr: true} }
}

type Model struct {
	baseKeyMap help.KeyMap
	size       util.Size
	help       *keyhelp.Model
	status     statusMsg
	seq        int
}

func New(baseKeyMap help.KeyMap) *Model {
	return &Model{
		baseKeyMap: baseKeyMap,
		help:       keyhelp.New(),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case util.AnnounceKeyMapMsg:
		// inject the global bindings
		return m.help.Update(util.AnnounceKeyMapMsg{
			KeyMap: util.MergeKeyMaps(msg.KeyMap, m.baseKeyMap),
		})
	case statusMsg:
		m.status = msg
		m.seq++
		seq := m.seq
		return tea.Tick(StatusTimeout, func(time.Time) tea.Msg { return clearStatusMsg{seq: seq} })
	case clearStatusMsg:
		if msg.seq == m.seq {
			m.status = statusMsg{}
		}
		return nil
	}

	m.size.Update(msg)
	return m.help.Update(msg)
}

var (
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5EEAD4"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F87171"))
)

func (m *Model) view() string {
	view := m.help.View()
	if m.status.text != "" {
		style := statusStyle
		if m.status.isErr {
			style = errorStyle
		}
		view = lipgloss.JoinVertical(lipgloss.Left, style.Render(m.status.text), view)
	}
	return view
}

func (m *Model) View() string {
	hPos := lipgloss.Left
	if m.help.Expanded {
		hPos = lipgloss.Center
	}

	return lipgloss.
		NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		Render(lipgloss.Place(
			m.size.Width, max(m.size.Height-1, 0),
			hPos, lipgloss.Top,
			m.view(),
		))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

func (m *Model) ToggleExpanded() {
	m.help.ToggleExpanded()
}

// StatusText returns the visible status line.
func (m *Model) StatusText() string { return m.status.text }
