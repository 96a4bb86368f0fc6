// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package menu

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/oelhwry/folio/util/slicest"
)

var accent = lipgloss.Color("#5EEAD4")

func WithItem(id string, name string, subItems ...Item) Item {
	return Item{
		ID:       id,
		Name:     name,
		SubItems: subItems,
	}
}

type Item struct {
	ID       string
	Name     string
	SubItems []Item
	Cmd      tea.Cmd
}

func (i Item) View(isActive bool, activeStack []int, focused bool) string {
	content := i.Name

	itemStyle := lipgloss.NewStyle()
	if len(i.SubItems) > 0 {
		itemStyle = itemStyle.Bold(true)
	}
	if isActive {
		if len(activeStack) > 0 || !focused {
			itemStyle = itemStyle.Foreground(accent)
		} else {
			itemStyle = itemStyle.
				Foreground(lipgloss.Color("#0F172A")).
				Background(accent)
		}
	}

	content = itemStyle.Render(content)

	// add sub items when active
	if isActive && len(i.SubItems) > 0 && len(activeStack) > 0 {
		style := lipgloss.
			NewStyle().
			BorderLeft(true).
			BorderStyle(lipgloss.NormalBorder()).
			PaddingLeft(1)
		content = lipgloss.JoinVertical(lipgloss.Left,
			content,
			style.Render(renderItems(i.SubItems, activeStack, focused)),
		)
	}

	return content
}

// ItemSelected is emitted when a leaf item is chosen.
type ItemSelected struct {
	ID string
}

func renderItems(items []Item, activeStack []int, focused bool) string {
	activeI := -1
	if len(activeStack) > 0 {
		activeI, activeStack = activeStack[0], activeStack[1:]
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		slicest.MapI(items, func(i int, item Item) string {
			return item.View(activeI == i, activeStack, focused)
		})...,
	)
}
