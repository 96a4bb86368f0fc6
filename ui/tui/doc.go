// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui runs the terminal portfolio. Presentation and input handling
// live here; content, galleries and the glow come from core.
package tui
