// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Package windowtitle keeps the terminal title in sync with the page shown.
package windowtitle

import tea "github.com/charmbracelet/bubbletea"

func NewHandler(base string, delimiter string) *TitleHandler {
	return &TitleHandler{
		Base:      base,
		Delimiter: delimiter,
	}
}

type TitleHandler struct {
	Base      string
	Delimiter string
	current   string
}

func (t *TitleHandler) render() tea.Cmd {
	return tea.SetWindowTitle(t.String())
}

// String returns the full title.
func (t *TitleHandler) String() string {
	if t.current != "" {
		return t.Base + t.Delimiter + t.current
	}
	return t.Base
}

func (t *TitleHandler) Init() tea.Cmd {
	return t.render()
}

// Handle reacts to Set messages and ignores everything else.
func (t *TitleHandler) Handle(msg tea.Msg) tea.Cmd {
	if title, ok := msg.(titleMsg); ok {
		if t.current != string(title) {
			t.current = string(title)
			return t.render()
		}
	}
	return nil
}
