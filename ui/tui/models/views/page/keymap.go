// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package page

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/oelhwry/folio/internal/i18n"
)

type KeyMap struct {
	Scroll      key.Binding
	SectionPrev key.Binding
	SectionNext key.Binding
	ThumbPrev   key.Binding
	ThumbNext   key.Binding
	Open        key.Binding
	Jump        key.Binding
	Copy        key.Binding
	Back        key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Scroll, km.SectionNext, km.Open, km.Back}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Scroll, km.SectionPrev, km.SectionNext},
		{km.ThumbPrev, km.ThumbNext, km.Open, km.Jump},
		{km.Copy, km.Back},
	}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "k", "j", "pgup", "pgdown"),
			key.WithHelp("↑↓", i18n.T("key.scroll")),
		),
		SectionPrev: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", i18n.T("key.section_prev")),
		),
		SectionNext: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", i18n.T("key.section_next")),
		),
		ThumbPrev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", i18n.T("key.prev")),
		),
		ThumbNext: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", i18n.T("key.next")),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", i18n.T("key.open")),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", i18n.T("key.open")),
		),
		Copy: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", i18n.T("key.copy")),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", i18n.T("key.back")),
		),
	}
}
