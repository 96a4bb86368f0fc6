// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Package router keeps a stack of models of which only the top one is shown
// and receives messages.
package router

import (
	"sync/atomic"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/oelhwry/folio/ui/tui/util"
)

var lastRouterID atomic.Int64

type Router struct {
	id         int
	size       util.Size
	modelStack []*util.Model
}

func New(initial *util.Model) (*Router, Controll) {
	id := int(lastRouterID.Add(1))
	return &Router{
		id:         id,
		modelStack: []*util.Model{initial},
	}, Controll{rid: id}
}

func (r *Router) Init() tea.Cmd {
	return tea.Batch(
		(*r.activeModelGet()).Init(),
		r.activeModelUpdate(InitMsg{Controll: Controll{rid: r.id}}),
	)
}

func (r *Router) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	if r.size.Update(msg) {
		// pass window size messages
		cmd = r.activeModelUpdate(msg)
	} else if r.isMsgOwner(msg) {
		// handle controll messages meant for this router
		switch msg := msg.(type) {
		case PushMsg:
			cmd = r.handlePush(msg)
		case PopMsg:
			cmd = r.handlePop(msg)
		case ChangeMsg:
			cmd = r.handleChange(msg)
		}
	} else if IsRouterMsg(msg) {
		// do not pass init messages, to prevent childs from obtaining parent routers Controll
		if _, ok := msg.(InitMsg); !ok {
			cmd = r.activeModelUpdate(msg)
		}
	} else {
		cmd = r.activeModelUpdate(msg)
	}

	return cmd
}

func (r *Router) View() string {
	return (*r.activeModelGet()).View()
}

func (r *Router) Focus() (tea.Cmd, help.KeyMap) {
	return (*r.activeModelGet()).Focus()
}

func (r *Router) Blur() {
	(*r.activeModelGet()).Blur()
}

// Depth returns the number of stacked models.
func (r *Router) Depth() int { return len(r.modelStack) }

// Active returns the model currently shown.
func (r *Router) Active() *util.Model { return r.activeModelGet() }

// *Router implements util.Model
var _ util.Model = (*Router)(nil)

func (r *Router) isMsgOwner(msg tea.Msg) bool {
	return Controll{rid: r.id}.Owns(msg)
}

func (r *Router) handlePush(msg PushMsg) tea.Cmd {
	r.activeModelBlur()
	r.modelStack = append(r.modelStack, msg.Model)
	return r.activeModelInit()
}

func (r *Router) handlePop(msg PopMsg) tea.Cmd {
	for range msg.Count {
		if len(r.modelStack) <= 1 {
			break
		}
		r.activeModelBlur()
		r.modelStack = r.modelStack[:len(r.modelStack)-1]
	}
	return tea.Batch(
		r.activeModelUpdate(r.size.ToMsg()),
		r.activeModelFocus(),
		r.changed(),
	)
}

func (r *Router) handleChange(msg ChangeMsg) tea.Cmd {
	r.activeModelBlur()
	r.modelStack[len(r.modelStack)-1] = msg.Model
	return r.activeModelInit()
}

func (r *Router) activeModelGet() *util.Model {
	return r.modelStack[len(r.modelStack)-1]
}

func (r *Router) activeModelUpdate(msg tea.Msg) tea.Cmd {
	return (*r.activeModelGet()).Update(msg)
}

func (r *Router) activeModelBlur() {
	(*r.activeModelGet()).Blur()
}

func (r *Router) activeModelFocus() tea.Cmd {
	cmd, keyMap := (*r.activeModelGet()).Focus()
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(keyMap))
}

func (r *Router) activeModelInit() tea.Cmd {
	return tea.Batch(
		(*r.activeModelGet()).Init(),
		r.activeModelUpdate(InitMsg{Controll: Controll{rid: r.id}}),
		r.activeModelUpdate(r.size.ToMsg()),
		r.activeModelFocus(),
		r.changed(),
	)
}

func (r *Router) changed() tea.Cmd {
	depth := len(r.modelStack)
	return func() tea.Msg { return ChangedMsg{rid: r.id, Depth: depth} }
}
