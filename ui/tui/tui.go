// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/oelhwry/folio/content"
	"github.com/oelhwry/folio/core/model"
	"github.com/oelhwry/folio/internal/logging"
	contentview "github.com/oelhwry/folio/ui/tui/models/views/content"
	"github.com/oelhwry/folio/ui/tui/models/views/page"
	"github.com/oelhwry/folio/ui/tui/models/views/root"
)

// Options configures Run.
type Options struct {
	// Watch reloads the content file while the program runs.
	Watch bool
}

// Run shows p until the user quits or ctx ends. Mouse motion is reported
// for the glow while the program runs.
func Run(ctx context.Context, p model.Portfolio, src content.Source, opts Options) error {
	prog := tea.NewProgram(
		root.New(p, src.ResolveImage),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(ctx),
	)

	if opts.Watch && src.Path != "" {
		w := content.NewWatcher(src, func(p model.Portfolio, err error) {
			prog.Send(contentview.ReloadedMsg{Portfolio: p, Err: err})
		})
		if err := w.Start(ctx); err != nil {
			logging.Warnf("content watcher disabled: %v", err)
		} else {
			defer w.Stop()
		}
	}

	_, err := prog.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// Dump writes every page of p as plain text, for output that is not a
// terminal.
func Dump(w io.Writer, p model.Portfolio, width int) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return err
	}

	for i, pg := range p.Pages {
		var md strings.Builder
		md.WriteString(page.HeaderMarkdown(pg))
		md.WriteString("\n")
		for _, sec := range pg.Sections {
			md.WriteString(page.SectionMarkdown(sec))
			md.WriteString("\n")
		}
		out, err := r.Render(md.String())
		if err != nil {
			return fmt.Errorf("rendering %s: %w", pg.Slug, err)
		}
		if i > 0 {
			if _, err := io.WriteString(w, strings.Repeat("─", width)+"\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, out); err != nil {
			return err
		}
	}
	return nil
}
