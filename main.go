// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Folio.
//
// Usage:
//
//	go run . [flags]
//	./folio [flags]
//
// Without a subcommand the terminal viewer starts. See --help for options.
package main

import (
	"os"

	"github.com/oelhwry/folio/internal/logging"
	"github.com/oelhwry/folio/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
