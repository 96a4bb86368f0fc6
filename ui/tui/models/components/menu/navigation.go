// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package menu

import tea "github.com/charmbracelet/bubbletea"

func (m *Model) up() {
	index := &m.ActiveStack[len(m.ActiveStack)-1]
	*index = max(*index-1, 0)
}

func (m *Model) down() {
	parentLen := m.getParentLen(m.getActiveItemStack())
	index := &m.ActiveStack[len(m.ActiveStack)-1]
	*index = min(*index+1, parentLen-1)
}

func (m *Model) left() {
	if len(m.ActiveStack) > 1 {
		m.ActiveStack = m.ActiveStack[:len(m.ActiveStack)-1]
	}
}

func (m *Model) right() tea.Cmd {
	activeStack := m.getActiveItemStack()
	activeItem := activeStack[len(activeStack)-1]
	if len(activeItem.SubItems) > 0 {
		m.ActiveStack = append(m.ActiveStack, 0)
		return func() tea.Msg { return ItemSelected{ID: activeItem.ID} }
	} else if activeItem.Cmd != nil {
		return activeItem.Cmd
	}
	return func() tea.Msg { return ItemSelected{ID: activeItem.ID} }
}

func (m *Model) getActiveItemStack() []Item {
	var stack []Item
	cursor := m.Items

	for _, i := range m.ActiveStack {
		if i >= len(cursor) {
			break
		}
		item := cursor[i]
		cursor = item.SubItems
		stack = append(stack, item)
	}

	return stack
}

func (m *Model) getParentLen(itemStack []Item) int {
	if len(itemStack) > 1 {
		return len(itemStack[len(itemStack)-2].SubItems)
	}
	return len(m.Items)
}
