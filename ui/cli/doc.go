// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Folio using Cobra.
// It loads configuration and content, then hands off to the terminal viewer,
// the static site exporter, the development server, the SFTP deploy and the
// catalog store. Commands stay thin; the work happens in the internal
// packages.
package cli
