//go:build windows

// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package deploy

import (
	"os"

	"github.com/Microsoft/go-winio"
	"github.com/davidmz/go-pageant"
	"golang.org/x/crypto/ssh/agent"
)

// getSSHAgent prefers a Pageant compatible agent and falls back to the
// OpenSSH for Windows named pipe.
func getSSHAgent() agent.Agent {
	if pageant.Available() {
		return pageant.New()
	}

	pipe := os.Getenv("SSH_AUTH_SOCK")
	if pipe == "" {
		pipe = `\\.\pipe\openssh-ssh-agent`
	}
	conn, err := winio.DialPipe(pipe, nil)
	if err == nil && conn != nil {
		return agent.NewClient(conn)
	}
	return nil
}
