// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package keyhelp

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// dedupe drops disabled bindings and bindings whose help key was already
// shown. Merged key maps often repeat the global bindings.
func dedupe(bindings []key.Binding, seen map[string]bool) []key.Binding {
	var out []key.Binding
	for _, b := range bindings {
		if !b.Enabled() || seen[b.Help().Key] {
			continue
		}
		seen[b.Help().Key] = true
		out = append(out, b)
	}
	return out
}

// fit appends parts while they fit into width, ending with the ellipsis
// tail when something had to be dropped.
func fit(parts []string, width int, tail string) []string {
	var out []string
	used := 0
	tailLen := lipgloss.Width(tail)
	for i, part := range parts {
		partLen := lipgloss.Width(part)
		last := i == len(parts)-1
		if (last && used+partLen <= width) || (!last && used+partLen+tailLen <= width) {
			used += partLen
			out = append(out, part)
			continue
		}
		if used+tailLen <= width {
			out = append(out, tail)
		}
		break
	}
	return out
}

// ShortHelpView renders bindings on one line, truncated to m.Width.
func ShortHelpView(m help.Model, bindings []key.Binding) string {
	bindings = dedupe(bindings, map[string]bool{})
	if len(bindings) == 0 {
		return ""
	}

	separator := m.Styles.ShortSeparator.Inline(true).Render(m.ShortSeparator)
	tail := " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)

	items := make([]string, 0, len(bindings))
	for i, kb := range bindings {
		var sep string
		if i > 0 {
			sep = separator
		}
		items = append(items, sep+
			m.Styles.ShortKey.Inline(true).Render(kb.Help().Key)+" "+
			m.Styles.ShortDesc.Inline(true).Render(kb.Help().Desc))
	}
	return strings.Join(fit(items, m.Width, tail), "")
}

// FullHelpView renders one column per group, truncated to m.Width.
func FullHelpView(m help.Model, groups [][]key.Binding) string {
	seen := map[string]bool{}
	separator := m.Styles.FullSeparator.Inline(true).Render(m.FullSeparator)
	tail := " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)

	var cols []string
	for _, group := range groups {
		group = dedupe(group, seen)
		if len(group) == 0 {
			continue
		}
		var sep string
		if len(cols) > 0 {
			sep = separator
		}
		keys := make([]string, 0, len(group))
		descriptions := make([]string, 0, len(group))
		for _, binding := range group {
			keys = append(keys, binding.Help().Key)
			descriptions = append(descriptions, binding.Help().Desc)
		}
		cols = append(cols, lipgloss.JoinHorizontal(lipgloss.Top,
			sep,
			m.Styles.FullKey.Render(lipgloss.JoinVertical(lipgloss.Left, keys...)),
			" ",
			m.Styles.FullDesc.Render(lipgloss.JoinVertical(lipgloss.Left, descriptions...)),
		))
	}
	if len(cols) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, fit(cols, m.Width, tail)...)
}
