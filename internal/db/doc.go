// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Package db persists a portfolio in a SQL catalog so it can be imported
// once, edited with ordinary SQL tooling and exported back to YAML.
//
// Three engines are supported through bun dialects: sqlite (modernc, pure
// Go), postgres (pgx stdlib driver) and mysql. Each engine has its own set of
// embedded migrations under migrations/<engine>.
//
// Testing notes
//   - Use NewStoreFromDSN("sqlite", ":memory:") for real migrations and
//     queries without touching disk.
//   - SetDebug(true) logs open and migration timings through the logging
//     package.
package db
