// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package keyhelp

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/x/ansi"
)

func bindings() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "off"), key.WithDisabled()),
	}
}

func TestShortHelpView_Dedupes(t *testing.T) {
	m := help.New()
	m.Width = 80
	out := ansi.Strip(ShortHelpView(m, bindings()))
	if strings.Count(out, "quit") != 1 {
		t.Fatalf("duplicate binding rendered: %q", out)
	}
	if strings.Contains(out, "off") {
		t.Fatalf("disabled binding rendered: %q", out)
	}
}

func TestShortHelpView_Truncates(t *testing.T) {
	m := help.New()
	m.Width = 8
	out := ansi.Strip(ShortHelpView(m, bindings()))
	if !strings.HasSuffix(out, m.Ellipsis) {
		t.Fatalf("expected ellipsis, got %q", out)
	}
	if w := len([]rune(out)); w > 8 {
		t.Fatalf("output wider than %d: %q", m.Width, out)
	}
}

func TestFullHelpView(t *testing.T) {
	m := help.New()
	m.Width = 80
	out := ansi.Strip(FullHelpView(m, [][]key.Binding{bindings(), bindings()[:1]}))
	if strings.Count(out, "quit") != 1 || !strings.Contains(out, "help") {
		t.Fatalf("unexpected full help %q", out)
	}
	if FullHelpView(m, nil) != "" {
		t.Fatalf("empty groups should render nothing")
	}
}
