// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package footer

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/oelhwry/folio/ui/tui/util"
)

type keys []key.Binding

func (k keys) ShortHelp() []key.Binding  { return k }
func (k keys) FullHelp() [][]key.Binding { return [][]key.Binding{k} }

func TestFooterMergesBaseKeyMap(t *testing.T) {
	base := keys{key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))}
	m := New(base)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 2})
	m.Update(util.AnnounceKeyMapMsg{KeyMap: keys{key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open"))}})

	out := ansi.Strip(m.View())
	if !strings.Contains(out, "open") || !strings.Contains(out, "quit") {
		t.Fatalf("footer should show model and base bindings: %q", out)
	}
}

func TestFooterStatusExpires(t *testing.T) {
	m := New(nil)
	cmd := m.Update(Status("copied")())
	if cmd == nil || m.StatusText() != "copied" {
		t.Fatalf("status not shown")
	}

	m.Update(Status("reloaded")())
	// a stale timer must not clear the newer status
	m.Update(clearStatusMsg{seq: 1})
	if m.StatusText() != "reloaded" {
		t.Fatalf("stale clear removed the status")
	}
	m.Update(clearStatusMsg{seq: 2})
	if m.StatusText() != "" {
		t.Fatalf("status should be cleared")
	}
}
