// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package menu

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"
)

func pages() []Item {
	return []Item{
		WithItem("home", "Home",
			WithItem("home#about", "About"),
			WithItem("home#projects", "Projects"),
		),
		WithItem("peerfitv2", "PeerFit v2",
			WithItem("peerfitv2#images", "Project Gallery"),
		),
	}
}

func keyMsg(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func TestMenuNavigation(t *testing.T) {
	m := New(pages()...)
	m.Focus()

	m.Update(keyMsg(tea.KeyDown))
	m.Update(keyMsg(tea.KeyDown))
	if diff := cmp.Diff([]string{"peerfitv2"}, m.ActivePath()); diff != "" {
		t.Fatalf("down should stop at the last item (-want +got):\n%s", diff)
	}

	cmd := m.Update(keyMsg(tea.KeyEnter))
	if sel, ok := cmd().(ItemSelected); !ok || sel.ID != "peerfitv2" {
		t.Fatalf("opening a page should select it, got %#v", cmd())
	}
	if diff := cmp.Diff([]string{"peerfitv2", "peerfitv2#images"}, m.ActivePath()); diff != "" {
		t.Fatalf("unexpected path (-want +got):\n%s", diff)
	}

	cmd = m.Update(keyMsg(tea.KeyEnter))
	if sel := cmd().(ItemSelected); sel.ID != "peerfitv2#images" {
		t.Fatalf("unexpected leaf selection %q", sel.ID)
	}

	m.Update(keyMsg(tea.KeyEsc))
	m.Update(keyMsg(tea.KeyUp))
	m.Update(keyMsg(tea.KeyUp))
	if diff := cmp.Diff([]string{"home"}, m.ActivePath()); diff != "" {
		t.Fatalf("unexpected path after back (-want +got):\n%s", diff)
	}
}

func TestMenuIgnoresKeysWhenBlurred(t *testing.T) {
	m := New(pages()...)
	if cmd := m.Update(keyMsg(tea.KeyEnter)); cmd != nil {
		t.Fatalf("blurred menu must not react to keys")
	}
}

func TestMenuSelectAndSetItems(t *testing.T) {
	m := New(pages()...)
	if !m.Select("peerfitv2", "peerfitv2#images") {
		t.Fatalf("select failed")
	}
	if m.Select("nope") {
		t.Fatalf("select of unknown id should fail")
	}

	m.SetItems(WithItem("home", "Home"))
	if diff := cmp.Diff([]string{"home"}, m.ActivePath()); diff != "" {
		t.Fatalf("cursor should be clamped after reload (-want +got):\n%s", diff)
	}
}
