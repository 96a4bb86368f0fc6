// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package root

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/oelhwry/folio/internal/i18n"
)

type KeyMap struct {
	Exit key.Binding
	Help key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Exit, km.Help}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Help, km.Exit}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Exit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", i18n.T("key.quit")),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", i18n.T("key.help")),
		),
	}
}
