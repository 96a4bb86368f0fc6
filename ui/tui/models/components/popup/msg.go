// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package popup

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/oelhwry/folio/ui/tui/util"
)

type openMsg struct {
	Model   *util.Model
	OnClose func(*util.Model) tea.Cmd
}

type closeMsg struct{}

// BackdropClickMsg is sent to the active popup when a click lands outside
// of it.
type BackdropClickMsg struct{}

// FrameClickMsg is sent to the active popup when a click lands on its
// border or padding.
type FrameClickMsg struct{}

func Open(m *util.Model) tea.Cmd {
	return func() tea.Msg { return openMsg{Model: m} }
}

func OpenWithCallback(m *util.Model, cb func(*util.Model) tea.Cmd) tea.Cmd {
	return func() tea.Msg { return openMsg{Model: m, OnClose: cb} }
}

func Close() tea.Cmd {
	return func() tea.Msg { return closeMsg{} }
}
