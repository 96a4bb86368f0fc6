// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Package stack lays out child models along one axis.
package stack

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/oelhwry/folio/ui/tui/util"
	"github.com/oelhwry/folio/util/slicest"
)

const (
	Vertical   Orientation = true
	Horizontal Orientation = false
)

type Orientation bool

type Model struct {
	Orientation Orientation
	Align       lipgloss.Position
	Gap         int
	MsgFilters  []MsgFilter

	items         []Item
	size          util.Size
	focussedIndex Focus
}

type Item struct {
	Model      *util.Model
	SizeConfig SizeConfig
	MsgFilters []MsgFilter
	size       int
	oldSize    int
}

func (s *Model) Init() tea.Cmd {
	return tea.Batch(slicest.Map(s.items, func(item Item) tea.Cmd {
		return (*item.Model).Init()
	})...)
}

func (s *Model) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	if s.size.Update(msg) {
		s.calculateItemSizes()
		cmds = append(cmds, s.updateResizedItems(true)...)
	} else {
		cmds = append(cmds, slicest.MapI(s.items, func(i int, item Item) tea.Cmd {
			itemMsg := msg
			if mouse, ok := msg.(tea.MouseMsg); ok {
				if itemMsg, ok = s.localMouse(i, mouse); !ok {
					return nil
				}
			}
			itemMsg = applyMessageFilters(*item.Model, itemMsg, item.MsgFilters)
			itemMsg = applyMessageFilters(*item.Model, itemMsg, s.MsgFilters)
			if itemMsg == nil {
				return nil
			}
			return (*item.Model).Update(itemMsg)
		})...)

		s.calculateItemSizes()
		cmds = append(cmds, s.updateResizedItems(false)...)
	}

	return tea.Batch(cmds...)
}

func (s *Model) View() string {
	var joiner func(pos lipgloss.Position, strs ...string) string
	var styler func(size int, margin int) lipgloss.Style
	switch s.Orientation {
	case Vertical:
		joiner = lipgloss.JoinVertical
		styler = func(size int, margin int) lipgloss.Style {
			return lipgloss.
				NewStyle().
				Width(s.size.Width).
				Height(size).
				MaxWidth(s.size.Width).
				MaxHeight(size + margin).
				MarginTop(margin)
		}
	case Horizontal:
		joiner = lipgloss.JoinHorizontal
		styler = func(size int, margin int) lipgloss.Style {
			return lipgloss.
				NewStyle().
				Width(size).
				Height(s.size.Height).
				MaxWidth(size + margin).
				MaxHeight(s.size.Height).
				MarginLeft(margin)
		}
	}

	return joiner(
		s.Align,
		slicest.MapI(s.items, func(i int, item Item) string {
			if item.size == 0 {
				return ""
			}
			// no gap on first item
			margin := s.Gap * min(i, 1)
			return styler(item.size, margin).Render((*item.Model).View())
		})...,
	)
}

// Offset returns the position of item i along the stack axis.
func (s *Model) Offset(i int) int {
	offset := 0
	for j := 0; j < i && j < len(s.items); j++ {
		offset += s.items[j].size
	}
	return offset + s.Gap*min(i, max(len(s.items)-1, 0))
}

// localMouse moves msg into the coordinates of item i. It reports false
// when the pointer is outside of the item.
func (s *Model) localMouse(i int, msg tea.MouseMsg) (tea.MouseMsg, bool) {
	pos := &msg.X
	if s.Orientation == Vertical {
		pos = &msg.Y
	}
	*pos -= s.Offset(i)
	return msg, *pos >= 0 && *pos < s.items[i].size
}

func (s *Model) Focus() (tea.Cmd, help.KeyMap) {
	if s.focussedIndex == FocusAll() {
		cmds := make([]tea.Cmd, len(s.items))
		keyMaps := make([]help.KeyMap, len(s.items))

		for i, item := range s.items {
			cmds[i], keyMaps[i] = (*item.Model).Focus()
		}

		return tea.Batch(cmds...), util.MergeKeyMaps(keyMaps...)
	}
	return (*s.items[s.focussedIndex].Model).Focus()
}

func (s *Model) Blur() {
	if s.focussedIndex == FocusAll() {
		for _, item := range s.items {
			(*item.Model).Blur()
		}
		return
	}
	(*s.items[s.focussedIndex].Model).Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

type Focus int

func FocusAll() Focus        { return -1 }
func FocusIndex(i int) Focus { return Focus(i) }

// Focused returns the focused item index, or FocusAll.
func (s *Model) Focused() Focus { return s.focussedIndex }

func (s *Model) SetFocus(focus Focus) (tea.Cmd, help.KeyMap) {
	s.Blur()
	s.focussedIndex = util.Clamp(FocusAll(), focus, Focus(len(s.items)-1))
	return s.Focus()
}
