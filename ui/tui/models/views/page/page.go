// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Package page shows one portfolio page in a scrollable viewport. The
// section under the centre line is tracked for the sidebar, gallery images
// open in a lightbox and a gutter strip follows the mouse glow.
package page

import (
	"fmt"
	"slices"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/oelhwry/folio/core/glow"
	"github.com/oelhwry/folio/core/model"
	"github.com/oelhwry/folio/core/scrollspy"
	"github.com/oelhwry/folio/internal/i18n"
	"github.com/oelhwry/folio/internal/logging"
	"github.com/oelhwry/folio/ui/tui/models/components/footer"
	"github.com/oelhwry/folio/ui/tui/models/components/popup"
	windowtitle "github.com/oelhwry/folio/ui/tui/models/helpers/title"
	"github.com/oelhwry/folio/ui/tui/models/views/lightbox"
	"github.com/oelhwry/folio/ui/tui/util"
)

const (
	gutter = 2
	// pixelsPerCell converts the glow radius to terminal columns.
	pixelsPerCell = 8
)

var background, _ = colorful.Hex("#0F172A")

// SectionChangedMsg is emitted when another section crosses the centre line.
type SectionChangedMsg struct {
	Slug    string
	Section string
}

// ScrollToMsg asks the page to bring a section to the centre line.
type ScrollToMsg struct {
	Section string
}

// BackMsg asks the host to move focus away from the page.
type BackMsg struct{}

type thumb struct {
	section string
	index   int
}

// thumbRow is a thumbnail label drawn on one content row.
type thumbRow struct {
	thumb int
	width int
}

type Model struct {
	page    model.Page
	resolve lightbox.ImageResolver
	style   string
	keyMap  KeyMap

	viewport viewport.Model
	spy      *scrollspy.Spy
	glow     *glow.Glow
	size     util.Size
	focused  bool

	renderer *glamour.TermRenderer
	width    int
	blocks   map[string]string

	thumbs   []thumb
	selected int
	// rows maps content rows to the thumbnail drawn on them.
	rows    map[int]thumbRow
	pending string
}

func New(p model.Page, resolve lightbox.ImageResolver) *Model {
	m := &Model{
		page:     p,
		resolve:  resolve,
		style:    "dark",
		keyMap:   DefaultKeyMap(),
		viewport: viewport.New(0, 0),
		spy:      scrollspy.New(nil),
		glow:     glow.New(p.Glow),
		selected: -1,
		rows:     make(map[int]thumbRow),
	}
	for _, sec := range p.Sections {
		if sec.Kind != model.KindGallery {
			continue
		}
		for i := range sec.Gallery {
			m.thumbs = append(m.thumbs, thumb{section: sec.ID, index: i})
		}
	}
	if len(m.thumbs) > 0 {
		m.selected = 0
	}
	return m
}

// Slug returns the slug of the page shown.
func (m *Model) Slug() string { return m.page.Slug }

// Active returns the id of the active section.
func (m *Model) Active() string { return m.spy.Active() }

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		m.layout()
		return m.observe()
	}

	switch msg := msg.(type) {
	case ScrollToMsg:
		return m.scrollTo(msg.Section)
	case lightbox.ClosedMsg:
		if i := m.thumbIndex(msg.Section, msg.Index); i >= 0 {
			m.selected = i
			m.render()
		}
		return nil
	case tea.MouseMsg:
		return m.mouse(msg)
	case tea.KeyMsg:
		if !m.focused {
			return nil
		}
		return m.key(msg)
	}
	return nil
}

func (m *Model) key(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keyMap.SectionNext):
		return m.stepSection(1)
	case key.Matches(msg, m.keyMap.SectionPrev):
		return m.stepSection(-1)
	case key.Matches(msg, m.keyMap.ThumbNext):
		return m.stepThumb(1)
	case key.Matches(msg, m.keyMap.ThumbPrev):
		return m.stepThumb(-1)
	case key.Matches(msg, m.keyMap.Open):
		return m.open(m.selected)
	case key.Matches(msg, m.keyMap.Jump):
		return m.jump(int(msg.Runes[0] - '1'))
	case key.Matches(msg, m.keyMap.Copy):
		return m.copyRepository()
	case key.Matches(msg, m.keyMap.Back):
		return func() tea.Msg { return BackMsg{} }
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return tea.Batch(cmd, m.observe())
}

func (m *Model) mouse(msg tea.MouseMsg) tea.Cmd {
	m.glow.Move(msg.X, msg.Y)

	if tea.MouseEvent(msg).IsWheel() {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return tea.Batch(cmd, m.observe())
	}
	if msg.Action == tea.MouseActionRelease && msg.Button == tea.MouseButtonLeft {
		// only the label opens the image, not the rest of its row
		if r, ok := m.rows[msg.Y+m.viewport.YOffset]; ok && msg.X >= gutter && msg.X < gutter+r.width {
			m.selected = r.thumb
			m.render()
			return m.open(r.thumb)
		}
	}
	return nil
}

// observe reports a section change after the viewport moved.
func (m *Model) observe() tea.Cmd {
	id, changed := m.spy.Observe(m.viewport.YOffset, m.viewport.Height)
	if !changed {
		return nil
	}
	msg := SectionChangedMsg{Slug: m.page.Slug, Section: id}
	return func() tea.Msg { return msg }
}

func (m *Model) scrollTo(id string) tea.Cmd {
	if m.width == 0 {
		m.pending = id
		return nil
	}
	target, ok := m.spy.ScrollTarget(id, m.viewport.Height)
	if !ok {
		return nil
	}
	m.viewport.SetYOffset(target)
	return m.observe()
}

func (m *Model) stepSection(delta int) tea.Cmd {
	ids := m.page.SectionIDs()
	if len(ids) == 0 {
		return nil
	}
	i := slices.Index(ids, m.spy.Active())
	i = util.Clamp(0, i+delta, len(ids)-1)
	return m.scrollTo(ids[i])
}

func (m *Model) stepThumb(delta int) tea.Cmd {
	if len(m.thumbs) == 0 {
		return nil
	}
	m.selected = (m.selected + delta + len(m.thumbs)) % len(m.thumbs)
	m.render()

	// keep the selection on screen
	for row, r := range m.rows {
		if r.thumb != m.selected {
			continue
		}
		if row < m.viewport.YOffset || row >= m.viewport.YOffset+m.viewport.Height {
			m.viewport.SetYOffset(row - m.viewport.Height/2)
			return m.observe()
		}
	}
	return nil
}

func (m *Model) thumbIndex(section string, index int) int {
	return slices.Index(m.thumbs, thumb{section: section, index: index})
}

// jump opens image n of the gallery holding the selection.
func (m *Model) jump(n int) tea.Cmd {
	if m.selected < 0 {
		return nil
	}
	i := m.thumbIndex(m.thumbs[m.selected].section, n)
	if i < 0 {
		return nil
	}
	m.selected = i
	m.render()
	return m.open(i)
}

func (m *Model) open(i int) tea.Cmd {
	if i < 0 || i >= len(m.thumbs) {
		return nil
	}
	th := m.thumbs[i]
	sec, _ := m.page.Section(th.section)
	lb, err := lightbox.New(sec.ID, sec.Label(), sec.Gallery, th.index, m.resolve)
	if err != nil {
		logging.Errorf("lightbox: %v", err)
		return nil
	}
	return popup.OpenWithCallback(util.ModelPointer(lb), lightbox.OnClose)
}

func (m *Model) copyRepository() tea.Cmd {
	if m.page.Repository == nil {
		return nil
	}
	url := m.page.Repository.URL
	return func() tea.Msg {
		if err := clipboard.WriteAll(url); err != nil {
			return footer.Error(i18n.T("tui.copy_failed", err))()
		}
		return footer.Status(i18n.T("tui.copied", url))()
	}
}

func (m *Model) layout() {
	m.viewport.Width = m.size.Width - gutter
	m.viewport.Height = m.size.Height
	m.glow.Resize(m.size.Width, m.size.Height)

	if w := max(m.size.Width-gutter, 10); w != m.width {
		m.width = w
		m.blocks = make(map[string]string)
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(m.style),
			glamour.WithWordWrap(w),
		)
		if err != nil {
			logging.Warnf("markdown renderer: %v", err)
		}
		m.renderer = r
	}
	m.render()

	if m.pending != "" {
		id := m.pending
		m.pending = ""
		m.scrollTo(id)
	}
}

func (m *Model) markdown(id, src string) string {
	if out, ok := m.blocks[id]; ok {
		return out
	}
	out := src
	if m.renderer != nil {
		if rendered, err := m.renderer.Render(src); err == nil {
			out = strings.Trim(rendered, "\n")
		}
	}
	m.blocks[id] = out
	return out
}

var (
	thumbStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5EEAD4")).Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748B")).Italic(true)
)

func (m *Model) render() {
	if m.width == 0 {
		return
	}
	var sections []scrollspy.Section
	m.rows = make(map[int]thumbRow)

	lines := strings.Split(m.markdown("", HeaderMarkdown(m.page)), "\n")
	lines = append(lines, "")
	for _, sec := range m.page.Sections {
		start := len(lines)
		text := sec
		text.Gallery = nil
		lines = append(lines, strings.Split(m.markdown(sec.ID, SectionMarkdown(text)), "\n")...)

		for i, shot := range sec.Gallery {
			ti := m.thumbIndex(sec.ID, i)
			label := fmt.Sprintf("[%d] %s", i+1, caption(shot))
			if ti == m.selected {
				label = selectedStyle.Render("› " + label)
			} else {
				label = thumbStyle.Render("  " + label)
			}
			m.rows[len(lines)] = thumbRow{thumb: ti, width: lipgloss.Width(label)}
			lines = append(lines, label)
		}
		if len(sec.Gallery) > 0 {
			lines = append(lines, hintStyle.Render("  "+i18n.T("tui.gallery_hint")))
		}

		lines = append(lines, "")
		sections = append(sections, scrollspy.Section{ID: sec.ID, Offset: start, Height: len(lines) - start})
	}
	// room to bring the last section to the centre line
	for range m.viewport.Height / 2 {
		lines = append(lines, "")
	}

	m.spy.Layout(sections)
	m.viewport.SetContent(strings.Join(lines, "\n"))
}

func (m *Model) View() string {
	px, _ := m.glow.Position()
	radius := float64(m.glow.Radius()) / pixelsPerCell

	lines := strings.Split(m.viewport.View(), "\n")
	for y, line := range lines {
		c := m.glow.Blend(background, px, y, radius)
		strip := lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render(" ")
		lines[y] = strip + " " + line
	}
	return strings.Join(lines, "\n")
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return windowtitle.Set(m.page.Title), m.keyMap
}

func (m *Model) Blur() {
	m.focused = false
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
