// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/oelhwry/folio/content"
)

func TestDumpDefaultContent(t *testing.T) {
	p, err := content.Default()
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Dump(&buf, p, 80); err != nil {
		t.Fatalf("dump: %v", err)
	}
	out := buf.String()
	for _, pg := range p.Pages {
		if !strings.Contains(out, pg.Title) {
			t.Errorf("dump missing page %q", pg.Title)
		}
	}
}
