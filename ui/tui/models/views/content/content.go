// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Package content is the main area: the page and section menu next to the
// page that is shown.
package content

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/oelhwry/folio/core/model"
	"github.com/oelhwry/folio/ui/tui/models/components/header"
	"github.com/oelhwry/folio/ui/tui/models/components/menu"
	"github.com/oelhwry/folio/ui/tui/models/components/router"
	"github.com/oelhwry/folio/ui/tui/models/components/stack"
	"github.com/oelhwry/folio/ui/tui/models/views/lightbox"
	"github.com/oelhwry/folio/ui/tui/models/views/page"
	"github.com/oelhwry/folio/ui/tui/util"
)

const (
	focusMenu stack.Focus = 0
	focusPage stack.Focus = 1
)

// ReloadedMsg carries content that was reloaded from disk.
type ReloadedMsg struct {
	Portfolio model.Portfolio
	Err       error
}

type Model struct {
	portfolio model.Portfolio
	resolve   lightbox.ImageResolver
	keyMap    KeyMap

	stack    *stack.Model
	menu     *menu.Model
	router   *util.Model
	controll router.Controll
	page     *page.Model
}

func New(p model.Portfolio, resolve lightbox.ImageResolver) *Model {
	// stack {
	//   menu
	//   router {
	//     page
	//   }
	// }
	m := &Model{
		portfolio: p,
		resolve:   resolve,
		keyMap:    DefaultKeyMap(),
		menu:      menu.New(menuItems(p)...),
	}
	home, _ := p.Home()
	m.page = page.New(home, resolve)

	routerModel, controll := router.New(util.ModelPointer(m.page))
	m.router = util.ModelPointer(routerModel)
	m.controll = controll

	m.stack = stack.New(
		stack.WithOrientation(stack.Horizontal),
		stack.WithFocus(focusPage),
		stack.WithItem(util.ModelPointer(m.menu), menu.SizeConfig,
			stack.KeysOnlyWhenFocused(func() bool { return m.stack.Focused() == focusMenu })),
		stack.WithItem(m.router, stack.VariableSize(1),
			stack.KeysOnlyWhenFocused(func() bool { return m.stack.Focused() == focusPage })),
	)
	return m
}

// sectionItemID joins a page slug and a section id into a menu item id.
func sectionItemID(slug, section string) string {
	return slug + "#" + section
}

func menuItems(p model.Portfolio) []menu.Item {
	items := make([]menu.Item, 0, len(p.Pages))
	for _, pg := range p.Pages {
		sections := make([]menu.Item, 0, len(pg.Sections))
		for _, sec := range pg.Sections {
			sections = append(sections, menu.WithItem(sectionItemID(pg.Slug, sec.ID), sec.Label()))
		}
		items = append(items, menu.WithItem(pg.Slug, pg.Title, sections...))
	}
	return items
}

// Slug returns the slug of the page shown.
func (m *Model) Slug() string { return m.page.Slug() }

// FocusedMenu reports whether the menu has the focus.
func (m *Model) FocusedMenu() bool { return m.stack.Focused() == focusMenu }

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.stack.Init(), m.announcePage())
}

func (m *Model) announcePage() tea.Cmd {
	pg, _ := m.portfolio.Page(m.page.Slug())
	msg := header.SetPageMsg{Title: pg.Title, Subtitle: pg.Subtitle}
	return func() tea.Msg { return msg }
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.keyMap.Focus) {
			if m.FocusedMenu() {
				return m.setFocus(focusPage)
			}
			return m.setFocus(focusMenu)
		}
	case page.BackMsg:
		return m.setFocus(focusMenu)
	case menu.ItemSelected:
		return m.selected(msg.ID)
	case page.SectionChangedMsg:
		if !m.FocusedMenu() {
			m.menu.Select(msg.Slug, sectionItemID(msg.Slug, msg.Section))
		}
		return nil
	case ReloadedMsg:
		if msg.Err != nil {
			return nil
		}
		return m.reload(msg.Portfolio)
	}

	return m.stack.Update(msg)
}

func (m *Model) selected(id string) tea.Cmd {
	slug, section, isSection := strings.Cut(id, "#")

	var cmds []tea.Cmd
	if slug != m.page.Slug() {
		cmds = append(cmds, m.show(slug, section))
	} else if isSection {
		cmds = append(cmds, m.page.Update(page.ScrollToMsg{Section: section}))
	}
	if isSection {
		cmds = append(cmds, m.setFocus(focusPage))
	}
	return tea.Batch(cmds...)
}

// show replaces the page in the router. The scroll to section is applied
// once the new page is laid out.
func (m *Model) show(slug, section string) tea.Cmd {
	pg, ok := m.portfolio.Page(slug)
	if !ok {
		return nil
	}
	m.page = page.New(pg, m.resolve)
	if section != "" {
		m.page.Update(page.ScrollToMsg{Section: section})
	}
	return tea.Batch(
		m.controll.Change(util.ModelPointer(m.page)),
		m.announcePage(),
	)
}

func (m *Model) reload(p model.Portfolio) tea.Cmd {
	slug, section := m.page.Slug(), m.page.Active()
	m.portfolio = p
	m.menu.SetItems(menuItems(p)...)

	if _, ok := p.Page(slug); !ok {
		home, _ := p.Home()
		slug, section = home.Slug, ""
	}
	return m.show(slug, section)
}

func (m *Model) setFocus(f stack.Focus) tea.Cmd {
	cmd, keyMap := m.stack.SetFocus(f)
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(util.MergeKeyMaps(keyMap, m.keyMap)))
}

func (m *Model) View() string {
	return m.stack.View()
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	cmd, keyMap := m.stack.Focus()
	return cmd, util.MergeKeyMaps(keyMap, m.keyMap)
}

func (m *Model) Blur() {
	m.stack.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
