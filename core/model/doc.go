// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.
// Package model defines the portfolio content types shared by the loaders,
// the catalog store, the site generator and the terminal UI. These are plain
// structs so serialization and DB adapters stay straightforward.
package model
