// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package header

import (
	"github.com/oelhwry/folio/ui/tui/models/components/stack"
	"github.com/oelhwry/folio/ui/tui/util"
)

// minBodyHeight is the body height below which the header is hidden.
const minBodyHeight = 8

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

func (s *sizeConfig) Priority() int { return 10 }

func (s *sizeConfig) Calculate(_ util.Model, _ int, totalSize int) int {
	if totalSize >= minBodyHeight+2 {
		return 2
	}
	return 0
}
