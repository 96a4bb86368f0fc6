// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package menu

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/oelhwry/folio/internal/i18n"
)

type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Right, km.Left}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Up, km.Down}, {km.Right, km.Left}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

// DefaultKeyMap builds the bindings in the active language.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", i18n.T("key.scroll")),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", i18n.T("key.scroll")),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "backspace", "esc"),
			key.WithHelp("←/esc", i18n.T("key.back")),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "enter"),
			key.WithHelp("→/enter", i18n.T("key.select")),
		),
	}
}
