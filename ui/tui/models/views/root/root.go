// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package root

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/oelhwry/folio/core/model"
	"github.com/oelhwry/folio/internal/i18n"
	"github.com/oelhwry/folio/internal/logging"
	"github.com/oelhwry/folio/ui/tui/models/components/footer"
	"github.com/oelhwry/folio/ui/tui/models/components/header"
	"github.com/oelhwry/folio/ui/tui/models/components/popup"
	"github.com/oelhwry/folio/ui/tui/models/components/stack"
	windowtitle "github.com/oelhwry/folio/ui/tui/models/helpers/title"
	"github.com/oelhwry/folio/ui/tui/models/views/content"
	"github.com/oelhwry/folio/ui/tui/models/views/lightbox"
	"github.com/oelhwry/folio/ui/tui/util"
)

const contentIndex = 1

type Model struct {
	stack        *stack.Model
	injector     *popup.Injector
	footer       *footer.Model
	titleHandler *windowtitle.TitleHandler
	keyMap       KeyMap
}

func New(p model.Portfolio, resolve lightbox.ImageResolver) *Model {
	keyMap := DefaultKeyMap()
	_footer := footer.New(keyMap)
	injector := popup.NewInjector(util.ModelPointer(content.New(p, resolve)))

	return &Model{
		stack: stack.New(
			stack.WithOrientation(stack.Vertical),
			stack.WithFocus(stack.FocusIndex(contentIndex)),
			stack.WithItem(util.ModelPointer(header.New(p.Name)), header.SizeConfig),
			stack.WithItem(util.ModelPointer(injector), stack.VariableSize(1)),
			stack.WithItem(util.ModelPointer(_footer), footer.SizeConfig),
		),
		injector:     injector,
		footer:       _footer,
		titleHandler: windowtitle.NewHandler(p.Name, " | "),
		keyMap:       keyMap,
	}
}

func (m *Model) Init() tea.Cmd {
	titleCmd := m.titleHandler.Init()
	initCmd := m.stack.Init()
	focusCmd, keyMap := m.stack.Focus()
	keyMapCmd := util.AnnounceKeyMapCmd(keyMap)

	return tea.Sequence(titleCmd, initCmd, focusCmd, keyMapCmd)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, m.update(msg)
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.Exit):
			return tea.Quit
		case key.Matches(msg, m.keyMap.Help):
			m.footer.ToggleExpanded()
		}
		return m.stack.Update(msg)
	case content.ReloadedMsg:
		status := footer.Status(i18n.T("tui.reloaded"))
		if msg.Err != nil {
			logging.Warnf("content reload failed: %v", msg.Err)
			status = footer.Error(i18n.T("tui.reload_failed", msg.Err))
		}
		return tea.Batch(status, m.stack.Update(msg))
	}

	// handle window title messages
	if cmd := m.titleHandler.Handle(msg); cmd != nil {
		return cmd
	}
	// handle other messages
	return m.stack.Update(msg)
}

func (m *Model) View() string {
	return m.stack.View()
}

// *Model implements tea.Model
var _ tea.Model = (*Model)(nil)
