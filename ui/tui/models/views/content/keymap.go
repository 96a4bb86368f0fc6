// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package content

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/oelhwry/folio/internal/i18n"
)

type KeyMap struct {
	Focus key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Focus}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Focus}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", i18n.T("key.focus")),
		),
	}
}
