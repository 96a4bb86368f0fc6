// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package router

import (
	"github.com/oelhwry/folio/ui/tui/util"
)

// Router invoked messages
// Router -> Model

type InitMsg struct {
	Controll Controll
}

// Controll invoked messages
// Model-Controll -> Router

type PushMsg struct {
	rid   int
	Model *util.Model
}
type PopMsg struct {
	rid   int
	Count int
}
type ChangeMsg struct {
	rid   int
	Model *util.Model
}

// ChangedMsg is emitted after the active model of a router changed.
type ChangedMsg struct {
	rid   int
	Depth int
}

func (m InitMsg) routerID() int    { return m.Controll.rid }
func (m PushMsg) routerID() int    { return m.rid }
func (m PopMsg) routerID() int     { return m.rid }
func (m ChangeMsg) routerID() int  { return m.rid }
func (m ChangedMsg) routerID() int { return m.rid }

type RouterMsg interface {
	routerID() int
}

func IsRouterMsg(msg any) bool {
	_, ok := msg.(RouterMsg)
	return ok
}
