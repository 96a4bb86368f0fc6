// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Package lightbox shows one gallery image at a time in a popup and steps
// through the gallery with wraparound.
package lightbox

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/oelhwry/folio/core/gallery"
	"github.com/oelhwry/folio/core/model"
	"github.com/oelhwry/folio/internal/i18n"
	"github.com/oelhwry/folio/internal/logging"
	"github.com/oelhwry/folio/ui/tui/models/components/popup"
	"github.com/oelhwry/folio/ui/tui/util"
)

// ImageResolver maps an image reference to a local file, or "" when the
// image is not available locally.
type ImageResolver func(ref string) string

// ClosedMsg reports the image that was shown when the lightbox closed.
type ClosedMsg struct {
	Section string
	Index   int
}

type cacheKey struct {
	index      int
	cols, rows int
}

type Model struct {
	section string
	title   string
	viewer  *gallery.Viewer
	resolve ImageResolver
	keyMap  KeyMap
	size    util.Size
	last    int
	cache   map[cacheKey]string
}

// New returns a lightbox over shots opened at index.
func New(section, title string, shots []model.Screenshot, index int, resolve ImageResolver) (*Model, error) {
	v, err := gallery.New(shots)
	if err != nil {
		return nil, err
	}
	if err := v.Open(index); err != nil {
		return nil, err
	}
	if resolve == nil {
		resolve = func(string) string { return "" }
	}
	return &Model{
		section: section,
		title:   title,
		viewer:  v,
		resolve: resolve,
		keyMap:  DefaultKeyMap(),
		last:    index,
		cache:   make(map[cacheKey]string),
	}, nil
}

// OnClose turns the closing lightbox into a ClosedMsg for the page that
// opened it.
func OnClose(m *util.Model) tea.Cmd {
	lb, ok := util.BorrowModel[Model](m)
	if !ok {
		return nil
	}
	msg := ClosedMsg{Section: lb.section, Index: lb.last}
	return func() tea.Msg { return msg }
}

// Index returns the image shown, or the last one shown once closed.
func (m *Model) Index() int { return m.last }

// IsOpen reports whether the viewer is still open.
func (m *Model) IsOpen() bool { return m.viewer.IsOpen() }

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		k := gallery.ParseKey(msg.String())
		switch {
		case key.Matches(msg, m.keyMap.Prev):
			k = gallery.KeyLeft
		case key.Matches(msg, m.keyMap.Next):
			k = gallery.KeyRight
		}
		if !m.viewer.Press(k) {
			return nil
		}
	case popup.BackdropClickMsg:
		m.viewer.Click(gallery.TargetBackdrop)
	case popup.FrameClickMsg:
		m.viewer.Click(gallery.TargetFrame)
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		m.viewer.Click(m.hit(msg.X, msg.Y))
	default:
		return nil
	}
	return m.transitioned()
}

func (m *Model) transitioned() tea.Cmd {
	if i, open := m.viewer.State(); open {
		m.last = i
		return nil
	}
	return popup.Close()
}

// hit maps a click inside the popup to a lightbox element. The outer thirds
// of the image and of the control row step backwards and forwards; the
// middle of the control row closes.
func (m *Model) hit(x, y int) gallery.Target {
	w := m.size.Width
	if w <= 0 || x < 0 || x >= w || y <= 0 || y >= m.size.Height || y == m.size.Height-2 {
		return gallery.TargetFrame
	}
	switch {
	case x < w/3:
		return gallery.TargetPrevious
	case x >= w-w/3:
		return gallery.TargetNext
	case y == m.size.Height-1:
		return gallery.TargetClose
	}
	return gallery.TargetFrame
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748B"))
	captionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E2E8F0"))
	controlStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5EEAD4"))
)

func (m *Model) image(index int, shot model.Screenshot, cols, rows int) string {
	k := cacheKey{index: index, cols: cols, rows: rows}
	if view, ok := m.cache[k]; ok {
		return view
	}

	var view string
	if path := m.resolve(shot.Image); path != "" {
		var err error
		view, err = renderImage(path, cols, rows)
		if err != nil {
			logging.Debugf("lightbox: %v", err)
			view = ""
		}
	}
	if view == "" {
		view = lipgloss.Place(cols, rows, lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Center, shot.Alt, dimStyle.Render(i18n.T("tui.no_image"))))
	}
	m.cache[k] = view
	return view
}

func (m *Model) View() string {
	w, h := m.size.Width, m.size.Height
	shot, _ := m.viewer.At(m.last)

	position := i18n.T("tui.lightbox_position", m.last+1, m.viewer.Len())
	top := titleStyle.Render(m.title)
	gap := max(w-lipgloss.Width(top)-lipgloss.Width(position), 1)
	header := top + lipgloss.NewStyle().Width(gap).Render("") + dimStyle.Render(position)

	third := max(w/3, 1)
	controls := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.PlaceHorizontal(third, lipgloss.Left, controlStyle.Render("‹ "+i18n.T("key.prev"))),
		lipgloss.PlaceHorizontal(max(w-2*third, 0), lipgloss.Center, dimStyle.Render("esc "+i18n.T("key.close"))),
		lipgloss.PlaceHorizontal(third, lipgloss.Right, controlStyle.Render(i18n.T("key.next")+" ›")),
	)

	caption := lipgloss.PlaceHorizontal(w, lipgloss.Center, captionStyle.Render(shot.Caption))

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		m.image(m.last, shot, w, max(h-3, 1)),
		caption,
		controls,
	)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, m.keyMap
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
