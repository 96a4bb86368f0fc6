// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package footer

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/oelhwry/folio/ui/tui/models/components/stack"
	"github.com/oelhwry/folio/ui/tui/util"
)

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 20 }

func (s *sizeConfig) Calculate(model util.Model, _ int, _ int) int {
	if footer, ok := model.(*Model); ok {
		return lipgloss.Height(footer.view()) + 1
	}
	return 2
}
