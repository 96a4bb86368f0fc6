// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package page

import (
	"fmt"
	"strings"

	"github.com/oelhwry/folio/core/model"
	"github.com/oelhwry/folio/internal/i18n"
)

// HeaderMarkdown renders the title block of a page.
func HeaderMarkdown(p model.Page) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", p.Title)
	if p.Subtitle != "" {
		fmt.Fprintf(&b, "_%s_\n\n", p.Subtitle)
	}
	if p.Intro != "" {
		b.WriteString(p.Intro + "\n\n")
	}
	if len(p.Tags) > 0 {
		tags := make([]string, len(p.Tags))
		for i, t := range p.Tags {
			tags[i] = "`" + t.Name + "`"
		}
		b.WriteString(strings.Join(tags, " ") + "\n\n")
	}
	if p.Repository != nil {
		fmt.Fprintf(&b, "%s: [%s](%s)\n", i18n.T("tui.repository"), p.Repository.Label, p.Repository.URL)
	}
	return b.String()
}

// SectionMarkdown renders one section. Gallery images are listed by caption.
func SectionMarkdown(sec model.Section) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## %s\n\n", sec.Label())
	for _, p := range sec.Body {
		b.WriteString(p + "\n\n")
	}

	for _, e := range sec.Experience {
		org := e.Org
		if e.URL != "" {
			org = fmt.Sprintf("[%s](%s)", e.Org, e.URL)
		}
		fmt.Fprintf(&b, "**%s** · %s  \n_%s_\n\n%s\n\n", e.Role, org, e.Period, e.Summary)
	}
	for _, p := range sec.Projects {
		fmt.Fprintf(&b, "### %s\n\n%s\n\n", p.Title, p.Summary)
		if len(p.Tags) > 0 {
			b.WriteString("`" + strings.Join(p.Tags, "` `") + "`\n\n")
		}
	}
	for i, shot := range sec.Gallery {
		fmt.Fprintf(&b, "%d. %s\n", i+1, caption(shot))
	}
	if len(sec.Gallery) > 0 {
		b.WriteString("\n")
	}
	for _, c := range sec.Comparisons {
		fmt.Fprintf(&b, "### %s\n\n%s\n\n", c.Heading, c.Body)
		fmt.Fprintf(&b, "- **%s:** %s\n- **%s:** %s\n\n", i18n.T("tui.before"), caption(c.Before), i18n.T("tui.after"), caption(c.After))
	}

	if sec.Note != "" {
		fmt.Fprintf(&b, "> %s\n", sec.Note)
	}
	return b.String()
}

func caption(s model.Screenshot) string {
	if s.Caption != "" {
		return s.Caption
	}
	return s.Alt
}
