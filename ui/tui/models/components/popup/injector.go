// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Package popup draws modal models on top of a dimmed child view.
package popup

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/oelhwry/folio/ui/tui/util"
)

const (
	reservedHeight int = 2
	reservedWidth  int = 6
)

type popup struct {
	model   *util.Model
	onClose func(*util.Model) tea.Cmd
}

// rect is the area of the active popup, relative to the injector.
type rect struct {
	x, y, w, h int
}

func (r rect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

type Injector struct {
	child  *util.Model
	popups []popup
	size   util.Size
	// box is the bordered popup, content the cells inside border and padding.
	box, content rect
}

func NewInjector(child *util.Model) *Injector {
	return &Injector{
		child: child,
	}
}

// Active reports whether a popup is open.
func (m *Injector) Active() bool { return len(m.popups) > 0 }

func (m *Injector) Init() tea.Cmd {
	return (*m.child).Init()
}

func (m *Injector) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		if len(m.popups) > 0 {
			popupCmd := (*m.activeModel()).Update(m.popupSize())
			m.layout()
			return tea.Batch(popupCmd, (*m.child).Update(msg))
		}
		return (*m.child).Update(msg)
	}

	switch msg := msg.(type) {
	case openMsg:
		return m.open(popup{
			model:   msg.Model,
			onClose: msg.OnClose,
		})
	case closeMsg:
		return m.close()
	case tea.MouseMsg:
		if len(m.popups) > 0 {
			return m.mouse(msg)
		}
		return (*m.child).Update(msg)
	case tea.KeyMsg:
		return (*m.activeModel()).Update(msg)
	}

	if len(m.popups) == 0 {
		return (*m.child).Update(msg)
	}
	// the child keeps receiving everything but input while covered
	childCmd := (*m.child).Update(msg)
	return tea.Batch(childCmd, (*m.activeModel()).Update(msg))
}

func (m *Injector) mouse(msg tea.MouseMsg) tea.Cmd {
	click := msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft
	switch {
	case !m.box.contains(msg.X, msg.Y):
		if click {
			return (*m.activeModel()).Update(BackdropClickMsg{})
		}
		return nil
	case !m.content.contains(msg.X, msg.Y):
		if click {
			return (*m.activeModel()).Update(FrameClickMsg{})
		}
		return nil
	}
	msg.X, msg.Y = msg.X-m.content.x, msg.Y-m.content.y
	return (*m.activeModel()).Update(msg)
}

func (m *Injector) popupSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{
		Width:  m.size.Width - reservedWidth,
		Height: m.size.Height - reservedHeight,
	}
}

// applyView centers v2 on v1 and returns the combined view and the area v2
// covers.
func applyView(v1, v2 string) (string, rect) {
	v1Width, v1Height := lipgloss.Size(v1)
	// limit v2 dimensions to v1
	v2 = lipgloss.NewStyle().MaxWidth(v1Width).MaxHeight(v1Height).Render(v2)
	v2Width, v2Height := lipgloss.Size(v2)

	offsetLeft := (v1Width - v2Width) / 2
	offsetTop := (v1Height - v2Height) / 2

	v1Lines := strings.Split(v1, "\n")
	v2Lines := strings.Split(v2, "\n")

	for i := range v2Lines {
		left := ansi.Truncate(v1Lines[i+offsetTop], offsetLeft, "")
		right := ansi.TruncateLeft(v1Lines[i+offsetTop], offsetLeft+v2Width, "")
		v1Lines[i+offsetTop] = left + v2Lines[i] + right
	}

	return strings.Join(v1Lines, "\n"), rect{x: offsetLeft, y: offsetTop, w: v2Width, h: v2Height}
}

// popupStyle frames the popup; the insets below must match it.
var popupStyle = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.NormalBorder()).Margin(0, 1)

const (
	marginLeft = 1
	insetLeft  = 1 + 1 // border, padding
	insetTop   = 1     // border
)

// setArea derives the clickable rects from the area the framed popup
// covers, margin included.
func (m *Injector) setArea(area rect) {
	m.box = rect{x: area.x + marginLeft, y: area.y, w: area.w - 2*marginLeft, h: area.h}
	m.content = rect{x: m.box.x + insetLeft, y: m.box.y + insetTop, w: m.box.w - 2*insetLeft, h: m.box.h - 2*insetTop}
}

// layout places the active popup the way View draws it.
func (m *Injector) layout() {
	if len(m.popups) == 0 {
		m.box, m.content = rect{}, rect{}
		return
	}
	w, h := lipgloss.Size(popupStyle.Render((*m.activeModel()).View()))
	w, h = min(w, m.size.Width), min(h, m.size.Height)
	m.setArea(rect{x: (m.size.Width - w) / 2, y: (m.size.Height - h) / 2, w: w, h: h})
}

func (m *Injector) View() string {
	childView := (*m.child).View()

	if len(m.popups) > 0 {
		popupView := popupStyle.Render((*m.activeModel()).View())

		childView = lipgloss.
			NewStyle().
			Width(m.size.Width).
			Height(m.size.Height).
			Foreground(lipgloss.AdaptiveColor{
				Light: "#DDDADA",
				Dark:  "#3C3C3C",
			}).
			Render(ansi.Strip(childView))

		view, area := applyView(childView, popupView)
		m.setArea(area)
		return view
	}
	return childView
}

func (m *Injector) Focus() (tea.Cmd, help.KeyMap) {
	return (*m.activeModel()).Focus()
}
func (m *Injector) Blur() {
	(*m.activeModel()).Blur()
}

// *Injector implements util.Model
var _ util.Model = (*Injector)(nil)

func (m *Injector) open(p popup) tea.Cmd {
	m.Blur()
	m.popups = append(m.popups, p)
	initCmd := (*p.model).Init()
	sizeCmd := (*p.model).Update(m.popupSize())
	m.layout()
	return tea.Batch(initCmd, sizeCmd, m.focusActiveModel())
}

func (m *Injector) close() tea.Cmd {
	if len(m.popups) == 0 {
		return nil
	}
	m.Blur()
	var onCloseCmd tea.Cmd
	if p := m.popups[len(m.popups)-1]; p.onClose != nil {
		onCloseCmd = p.onClose(p.model)
	}
	m.popups = m.popups[:len(m.popups)-1]
	m.layout()
	return tea.Batch(
		m.focusActiveModel(),
		onCloseCmd,
	)
}

func (m *Injector) activeModel() *util.Model {
	if len(m.popups) > 0 {
		return m.popups[len(m.popups)-1].model
	}
	return m.child
}

func (m *Injector) focusActiveModel() tea.Cmd {
	cmd, keyMap := m.Focus()
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(keyMap))
}
