// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package menu

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/oelhwry/folio/ui/tui/models/components/stack"
	"github.com/oelhwry/folio/ui/tui/util"
)

const (
	minSize int = 20
	maxSize int = 36
)

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 20 }

func (s *sizeConfig) Calculate(model util.Model, remainingSize int, _ int) int {
	if menu, ok := model.(*Model); ok {
		return util.Clamp(
			minSize,
			lipgloss.Width(menu.view())+2,
			min(maxSize, remainingSize),
		)
	}
	return minSize
}
