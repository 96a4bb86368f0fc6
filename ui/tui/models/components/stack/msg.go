// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package stack

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/oelhwry/folio/ui/tui/util"
	"github.com/oelhwry/folio/util/slicest"
)

// MsgFilter may rewrite or drop (return nil) a message before it reaches
// an item.
type MsgFilter = func(model util.Model, msg tea.Msg) tea.Msg

func applyMessageFilters(model util.Model, msg tea.Msg, msgFilters []MsgFilter) tea.Msg {
	return slicest.ReduceD(msgFilters, msg, func(filter MsgFilter, msg tea.Msg) tea.Msg {
		if msg == nil {
			return nil
		}
		return filter(model, msg)
	})
}

// KeysOnlyWhenFocused drops key messages for items that are not focused.
func KeysOnlyWhenFocused(focused func() bool) MsgFilter {
	return func(_ util.Model, msg tea.Msg) tea.Msg {
		if _, ok := msg.(tea.KeyMsg); ok && !focused() {
			return nil
		}
		return msg
	}
}
