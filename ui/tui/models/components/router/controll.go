// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package router

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/oelhwry/folio/ui/tui/util"
)

// Controll lets models drive the router that hosts them.
type Controll struct {
	rid int
}

func (c Controll) Push(model *util.Model) tea.Cmd {
	return func() tea.Msg { return PushMsg{rid: c.rid, Model: model} }
}
func (c Controll) Pop(count int) tea.Cmd {
	return func() tea.Msg { return PopMsg{rid: c.rid, Count: count} }
}
func (c Controll) Change(model *util.Model) tea.Cmd {
	return func() tea.Msg { return ChangeMsg{rid: c.rid, Model: model} }
}

// Owns reports whether msg was emitted by this controll's router.
func (c Controll) Owns(msg tea.Msg) bool {
	rmsg, ok := msg.(RouterMsg)
	return ok && rmsg.routerID() == c.rid
}
