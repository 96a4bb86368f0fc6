// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Package util holds the model contract shared by every TUI component and
// helpers for passing models around by pointer.
package util

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Model is a bubbletea model that updates in place.
type Model interface {
	Init() tea.Cmd
	Update(tea.Msg) tea.Cmd
	View() string
	Focusable
}

// polyfill: won't be needed as of go 1.26
func new[T any](v T) *T { return &v }

func ModelPointer[T any, PT interface {
	*T
	Model
}](v PT) *Model {
	return new(Model(v))
}

func BorrowModel[T any, PT interface {
	*T
	Model
}](m *Model) (PT, bool) {
	t, ok := (*m).(PT)
	return t, ok
}

func BorrowModelFunc[T any, PT interface {
	*T
	Model
}](m *Model, fn func(PT)) {
	if t, ok := (*m).(PT); ok {
		fn(t)
	}
}
