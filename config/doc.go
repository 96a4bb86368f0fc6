// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads Folio settings from the folio.yaml config file, the
// FOLIO_* environment and command-line flags, and writes default files on
// first run.
package config
