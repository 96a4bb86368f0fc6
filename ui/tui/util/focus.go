// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package util

import (
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/oelhwry/folio/util/slicest"
)

// Focusable is implemented by models that take keyboard focus. Focus returns
// the key map the footer should show while the model is focused.
type Focusable interface {
	Focus() (tea.Cmd, help.KeyMap)
	Blur()
}

// AnnounceKeyMapMsg tells the footer which bindings are active.
type AnnounceKeyMapMsg struct {
	KeyMap help.KeyMap
}

func AnnounceKeyMapCmd(k help.KeyMap) tea.Cmd {
	return func() tea.Msg {
		return AnnounceKeyMapMsg{KeyMap: k}
	}
}

func MergeKeyMaps(keymaps ...help.KeyMap) help.KeyMap {
	return MergedKeyMaps{KeyMaps: keymaps}
}

type MergedKeyMaps struct {
	KeyMaps []help.KeyMap
}

func (m MergedKeyMaps) ShortHelp() []key.Binding {
	bindings := slicest.Map(m.KeyMaps, func(k help.KeyMap) []key.Binding {
		if k != nil {
			return k.ShortHelp()
		}
		return nil
	})
	return slices.Concat(bindings...)
}

func (m MergedKeyMaps) FullHelp() [][]key.Binding {
	groups := slicest.Map(m.KeyMaps, func(k help.KeyMap) [][]key.Binding {
		if k != nil {
			return k.FullHelp()
		}
		return nil
	})
	return slices.Concat(groups...)
}

var _ help.KeyMap = (*MergedKeyMaps)(nil)
