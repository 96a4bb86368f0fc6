// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package root

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/oelhwry/folio/core/model"
	"github.com/oelhwry/folio/ui/tui/models/components/popup"
	"github.com/oelhwry/folio/ui/tui/models/components/router"
	"github.com/oelhwry/folio/ui/tui/models/views/content"
	"github.com/oelhwry/folio/ui/tui/models/views/lightbox"
	"github.com/oelhwry/folio/ui/tui/util"
)

func testPortfolio() model.Portfolio {
	return model.Portfolio{
		Name: "Jane Doe",
		Pages: []model.Page{
			{Slug: "home", Title: "Home", Sections: []model.Section{
				{ID: "about", Kind: model.KindText, Body: []string{"Hello there."}},
			}},
		},
	}
}

func TestRootQuit(t *testing.T) {
	m := New(testPortfolio(), nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatalf("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit message")
	}
}

func TestRootLayout(t *testing.T) {
	m := New(testPortfolio(), nil)
	m.Init()
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	out := ansi.Strip(m.View())
	for _, want := range []string{"Jane Doe", "Home", "About"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if got := m.stack.Offset(contentIndex); got != 2 {
		t.Fatalf("content should start below the header, got %d", got)
	}
}

func TestRootReloadStatus(t *testing.T) {
	m := New(testPortfolio(), nil)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	_, cmd := m.Update(content.ReloadedMsg{Err: errors.New("boom")})
	if cmd == nil {
		t.Fatalf("reload should report a status")
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		msg = batch[0]()
	}
	m.Update(msg)
	if !strings.Contains(m.footer.StatusText(), "boom") {
		t.Fatalf("footer should show the reload error, got %q", m.footer.StatusText())
	}
}

// routeAll runs cmd and feeds the router messages it produces back into m.
func routeAll(m *Model, cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0 && steps < 100; steps++ {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		default:
			if router.IsRouterMsg(msg) {
				_, next := m.Update(msg)
				queue = append(queue, next)
			}
		}
	}
}

func TestRootReloadWhileLightboxOpen(t *testing.T) {
	m := New(testPortfolio(), nil)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	lb, err := lightbox.New("about", "About", []model.Screenshot{{Image: "a.png", Alt: "A"}}, 0, nil)
	if err != nil {
		t.Fatal(err)
	}
	_, cmd := m.Update(popup.Open(util.ModelPointer(lb))())
	routeAll(m, cmd)
	if !m.injector.Active() {
		t.Fatalf("lightbox should be open")
	}

	p := testPortfolio()
	p.Pages[0].Title = "Reloaded Home"
	_, cmd = m.Update(content.ReloadedMsg{Portfolio: p})
	routeAll(m, cmd)

	_, cmd = m.Update(popup.Close()())
	routeAll(m, cmd)
	if m.injector.Active() {
		t.Fatalf("lightbox should be closed")
	}
	if out := ansi.Strip(m.View()); !strings.Contains(out, "Reloaded Home") {
		t.Fatalf("reloaded content not shown after closing the lightbox:\n%s", out)
	}
}
