// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Package menu is a nested, keyboard driven list. The sidebar uses it for
// pages and their sections.
package menu

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/oelhwry/folio/ui/tui/util"
	"github.com/oelhwry/folio/util/slicest"
)

type Model struct {
	Items       []Item
	ActiveStack []int
	keyMap      KeyMap
	size        util.Size
	focused     bool
}

func New(items ...Item) *Model {
	return &Model{
		Items:       items,
		ActiveStack: []int{0},
		keyMap:      DefaultKeyMap(),
	}
}

// SetItems replaces the items and keeps the cursor on the same path where
// it still exists.
func (m *Model) SetItems(items ...Item) {
	m.Items = items
	cursor := m.Items
	for depth, i := range m.ActiveStack {
		if i >= len(cursor) || len(cursor) == 0 {
			m.ActiveStack = append(m.ActiveStack[:depth], max(len(cursor)-1, 0))
			return
		}
		cursor = cursor[i].SubItems
	}
}

// Select moves the cursor to the item with the given id path.
func (m *Model) Select(ids ...string) bool {
	var stack []int
	cursor := m.Items
	for _, id := range ids {
		found := -1
		for i, item := range cursor {
			if item.ID == id {
				found = i
				break
			}
		}
		if found < 0 {
			return false
		}
		stack = append(stack, found)
		cursor = cursor[found].SubItems
	}
	if len(stack) > 0 {
		m.ActiveStack = stack
	}
	return len(stack) > 0
}

// ActivePath returns the ids along the cursor.
func (m *Model) ActivePath() []string {
	return slicest.Map(m.getActiveItemStack(), func(i Item) string { return i.ID })
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)

	if !m.focused || len(m.Items) == 0 {
		return nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keyMap.Up):
			m.up()
		case key.Matches(msg, m.keyMap.Down):
			m.down()
		case key.Matches(msg, m.keyMap.Left):
			m.left()
		case key.Matches(msg, m.keyMap.Right):
			return m.right()
		}
	}
	return nil
}

func (m *Model) view() string {
	view := renderItems(m.Items, m.ActiveStack, m.focused)

	// keep the cursor visible when the menu is taller than the viewport
	height := lipgloss.Height(view)
	if m.size.Height > 0 && height > m.size.Height {
		align := float64(slicest.Reduce(m.ActiveStack, func(i int, sum int) int { return sum + i + 1 })) / float64(height)
		lines := strings.Split(view, "\n")
		i := int(float64(height-m.size.Height) * align)
		view = strings.Join(lines[i:i+m.size.Height], "\n")
	}
	return view
}

func (m *Model) View() string {
	return lipgloss.
		NewStyle().
		MaxWidth(m.size.Width).
		MaxHeight(m.size.Height).
		Margin(0, 1).
		Render(m.view())
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return nil, m.keyMap
}

func (m *Model) Blur() {
	m.focused = false
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
