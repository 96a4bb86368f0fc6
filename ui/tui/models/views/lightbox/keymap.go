// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package lightbox

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/oelhwry/folio/internal/i18n"
)

type KeyMap struct {
	Prev  key.Binding
	Next  key.Binding
	Close key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Prev, km.Next, km.Close}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Prev, km.Next}, {km.Close}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

// DefaultKeyMap builds the bindings in the active language. The arrow keys
// and escape are handled by the viewer itself; the vim keys are aliases.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", i18n.T("key.prev")),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", i18n.T("key.next")),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", i18n.T("key.close")),
		),
	}
}
