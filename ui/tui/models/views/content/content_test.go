// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package content

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
	"github.com/oelhwry/folio/core/model"
	"github.com/oelhwry/folio/ui/tui/models/components/menu"
	"github.com/oelhwry/folio/ui/tui/models/views/page"
)

func testPortfolio() model.Portfolio {
	return model.Portfolio{
		Name: "Jane Doe",
		Pages: []model.Page{
			{Slug: "home", Title: "Home", Sections: []model.Section{
				{ID: "about", Kind: model.KindText, Body: []string{"Hi."}},
				{ID: "projects", Kind: model.KindText, Body: []string{"List."}},
			}},
			{Slug: "explorespace", Title: "Explore Space", Sections: []model.Section{
				{ID: "overview", Kind: model.KindText, Body: []string{"Space."}},
				{ID: "images", Kind: model.KindGallery, Gallery: []model.Screenshot{{Image: "a.png", Alt: "A"}}},
			}},
		},
	}
}

func newSized(t *testing.T, p model.Portfolio) *Model {
	t.Helper()
	m := New(p, nil)
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 10})
	m.Focus()
	return m
}

// drain runs cmd and feeds every resulting message back into m, the way
// the program loop would.
func drain(m *Model, cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 && len(queue) < 100 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case nil:
		default:
			queue = append(queue, m.Update(msg))
		}
	}
}

func TestMenuItems(t *testing.T) {
	got := menuItems(testPortfolio())
	want := []menu.Item{
		menu.WithItem("home", "Home",
			menu.WithItem("home#about", "About"),
			menu.WithItem("home#projects", "Projects"),
		),
		menu.WithItem("explorespace", "Explore Space",
			menu.WithItem("explorespace#overview", "Overview"),
			menu.WithItem("explorespace#images", "Images"),
		),
	}
	if diff := cmp.Diff(want, got, cmp.Comparer(func(a, b tea.Cmd) bool { return a == nil && b == nil })); diff != "" {
		t.Fatalf("menu items mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectingPageAndSection(t *testing.T) {
	m := newSized(t, testPortfolio())
	if m.Slug() != "home" {
		t.Fatalf("expected home first, got %q", m.Slug())
	}

	drain(m, m.Update(menu.ItemSelected{ID: "explorespace"}))
	if m.Slug() != "explorespace" {
		t.Fatalf("selecting a page should show it, got %q", m.Slug())
	}

	drain(m, m.Update(menu.ItemSelected{ID: "explorespace#images"}))
	if m.page.Active() != "images" {
		t.Fatalf("selecting a section should scroll to it, got %q", m.page.Active())
	}
	if m.FocusedMenu() {
		t.Fatalf("selecting a section should focus the page")
	}
}

func TestFocusToggle(t *testing.T) {
	m := newSized(t, testPortfolio())
	if m.FocusedMenu() {
		t.Fatalf("page should start focused")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if !m.FocusedMenu() {
		t.Fatalf("tab should focus the menu")
	}
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.FocusedMenu() {
		t.Fatalf("tab should focus the page again")
	}
	m.Update(page.BackMsg{})
	if !m.FocusedMenu() {
		t.Fatalf("leaving the page should focus the menu")
	}
}

func TestSectionChangeMovesMenuCursor(t *testing.T) {
	m := newSized(t, testPortfolio())
	m.Update(page.SectionChangedMsg{Slug: "home", Section: "projects"})
	if diff := cmp.Diff([]string{"home", "home#projects"}, m.menu.ActivePath()); diff != "" {
		t.Fatalf("menu path mismatch (-want +got):\n%s", diff)
	}
}

func TestReload(t *testing.T) {
	m := newSized(t, testPortfolio())
	drain(m, m.Update(menu.ItemSelected{ID: "explorespace"}))

	p := testPortfolio()
	p.Pages = p.Pages[:1]
	drain(m, m.Update(ReloadedMsg{Portfolio: p}))
	if m.Slug() != "home" {
		t.Fatalf("a removed page should fall back to home, got %q", m.Slug())
	}
	if len(m.menu.Items) != 1 {
		t.Fatalf("menu should follow the reloaded content")
	}
}

func TestMouseStaysInItsColumn(t *testing.T) {
	m := newSized(t, testPortfolio())
	drain(m, m.Update(menu.ItemSelected{ID: "explorespace#images"}))
	pageX := m.stack.Offset(int(focusPage))

	release := func(x, y int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	}
	opened := -1
	for y := range 10 {
		if cmd := m.Update(release(0, y)); cmd != nil {
			t.Fatalf("a click in the menu column at row %d opened an image", y)
		}
		if cmd := m.Update(release(pageX+4, y)); cmd != nil && opened < 0 {
			opened = y
		}
	}
	if opened < 0 {
		t.Fatalf("no thumbnail could be clicked in the page column")
	}
}
