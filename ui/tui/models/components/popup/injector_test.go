// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package popup

import (
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/oelhwry/folio/ui/tui/util"
)

type stub struct {
	view    string
	focused bool
	msgs    []tea.Msg
}

func (s *stub) Init() tea.Cmd                 { return nil }
func (s *stub) Update(msg tea.Msg) tea.Cmd    { s.msgs = append(s.msgs, msg); return nil }
func (s *stub) View() string                  { return s.view }
func (s *stub) Focus() (tea.Cmd, help.KeyMap) { s.focused = true; return nil, nil }
func (s *stub) Blur()                         { s.focused = false }

func (s *stub) got(want tea.Msg) bool {
	for _, m := range s.msgs {
		if reflect.DeepEqual(m, want) {
			return true
		}
	}
	return false
}

func TestInjectorOpenClose(t *testing.T) {
	child := &stub{view: strings.Repeat(strings.Repeat(".", 40)+"\n", 11) + strings.Repeat(".", 40)}
	inj := NewInjector(util.ModelPointer(child))
	inj.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	child.Focus()

	box := &stub{view: "lightbox"}
	closed := false
	inj.Update(OpenWithCallback(util.ModelPointer(box), func(*util.Model) tea.Cmd {
		closed = true
		return nil
	})())
	if !inj.Active() || !box.focused || child.focused {
		t.Fatalf("open should move focus to the popup")
	}
	if !strings.Contains(inj.View(), "lightbox") {
		t.Fatalf("popup not drawn:\n%s", inj.View())
	}

	inj.Update(tea.KeyMsg{Type: tea.KeyRight})
	if !box.got(tea.KeyMsg{Type: tea.KeyRight}) || child.got(tea.KeyMsg{Type: tea.KeyRight}) {
		t.Fatalf("keys must go to the popup only")
	}

	inj.Update(Close()())
	if inj.Active() || !closed || !child.focused {
		t.Fatalf("close should restore focus and run the callback")
	}
}

func TestInjectorClickAreas(t *testing.T) {
	child := &stub{view: strings.Repeat(strings.Repeat(" ", 40)+"\n", 11) + strings.Repeat(" ", 40)}
	inj := NewInjector(util.ModelPointer(child))
	inj.Update(tea.WindowSizeMsg{Width: 40, Height: 12})

	box := &stub{view: "img"}
	inj.Update(Open(util.ModelPointer(box))())
	// the areas are known before the popup is drawn
	if inj.content.w != 3 || inj.content.h != 1 {
		t.Fatalf("unexpected content area %+v", inj.content)
	}

	release := func(x, y int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
	}
	b, c := inj.box, inj.content
	tests := []struct {
		name string
		x, y int
		want tea.Msg
	}{
		{"far outside", 0, 0, BackdropClickMsg{}},
		{"left margin", b.x - 1, c.y, BackdropClickMsg{}},
		{"below the border", c.x, b.y + b.h, BackdropClickMsg{}},
		{"left border", b.x, c.y, FrameClickMsg{}},
		{"left padding", b.x + 1, c.y, FrameClickMsg{}},
		{"top border", c.x, b.y, FrameClickMsg{}},
		{"right border", b.x + b.w - 1, c.y, FrameClickMsg{}},
		{"content", c.x + 1, c.y, release(1, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box.msgs = nil
			inj.Update(release(tt.x, tt.y))
			if len(box.msgs) != 1 || !box.got(tt.want) {
				t.Fatalf("click at %d,%d: want %#v, got %#v", tt.x, tt.y, tt.want, box.msgs)
			}
		})
	}

	// drawing places the popup where the click areas already are
	_ = inj.View()
	if inj.box != b || inj.content != c {
		t.Fatalf("view moved the popup: %+v/%+v, was %+v/%+v", inj.box, inj.content, b, c)
	}

	box.msgs = nil
	motion := tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion}
	inj.Update(motion)
	if len(box.msgs) != 0 || child.got(motion) {
		t.Fatalf("motion outside the popup is dropped, got %v", box.msgs)
	}
}

type reloaded struct{}

func TestInjectorRoutesWhileOpen(t *testing.T) {
	child := &stub{view: "child"}
	inj := NewInjector(util.ModelPointer(child))
	inj.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	inj.Update(Open(util.ModelPointer(&stub{view: "img"}))())
	child.msgs = nil

	inj.Update(reloaded{})
	if !child.got(reloaded{}) {
		t.Fatalf("the covered child should still receive other messages")
	}
	inj.Update(tea.KeyMsg{Type: tea.KeyEnter})
	inj.Update(tea.MouseMsg{X: 20, Y: 6, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	for _, msg := range child.msgs {
		switch msg.(type) {
		case tea.KeyMsg, tea.MouseMsg:
			t.Fatalf("input must not reach the covered child, got %#v", msg)
		}
	}
}

func TestInjectorPassesChildMouse(t *testing.T) {
	child := &stub{view: "child"}
	inj := NewInjector(util.ModelPointer(child))

	inj.Update(tea.MouseMsg{X: 5, Y: 7, Action: tea.MouseActionMotion})
	if !child.got(tea.MouseMsg{X: 5, Y: 7, Action: tea.MouseActionMotion}) {
		t.Fatalf("child should see the mouse unchanged, got %v", child.msgs)
	}
}
