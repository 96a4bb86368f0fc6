// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.
package content

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/oelhwry/folio/core/model"
)

const minimal = `
name: Test
pages:
  - slug: home
    title: Home
    sections:
      - id: about
        kind: text
        body: ["hello"]
      - id: images
        kind: gallery
        gallery:
          - {image: a.png, alt: A}
          - {image: b.png, alt: B}
`

func TestDefault_IsValid(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatalf("default content: %v", err)
	}
	if home, _ := p.Home(); home.Slug != "home" {
		t.Fatalf("expected home as first page, got %q", home.Slug)
	}
	v2, ok := p.Page("peerfitv2")
	if !ok {
		t.Fatalf("peerfitv2 page missing")
	}
	if v2.Glow.Mode != model.GlowHue {
		t.Fatalf("peerfitv2 should use hue glow, got %q", v2.Glow.Mode)
	}
	images, ok := v2.Section("images")
	if !ok || len(images.Gallery) != 7 {
		t.Fatalf("expected 7 peerfitv2 screenshots")
	}
	if images.Gallery[6].Caption != "Settings" {
		t.Fatalf("unexpected last caption %q", images.Gallery[6].Caption)
	}
	v1, _ := p.Page("peerfitv1")
	if sec, _ := v1.Section("images"); len(sec.Gallery) != 4 {
		t.Fatalf("expected 4 peerfitv1 screenshots, got %d", len(sec.Gallery))
	}
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := Parse([]byte("name: x\npagez: []\n"))
	if err == nil {
		t.Fatalf("expected unknown field error")
	}
}

func TestParse_Empty(t *testing.T) {
	if _, err := Parse(nil); !errors.Is(err, model.ErrNoPages) {
		t.Fatalf("expected ErrNoPages, got %v", err)
	}
}

func TestParse_ValidationErrorsWrapped(t *testing.T) {
	doc := `
pages:
  - slug: home
    sections:
      - id: images
        kind: gallery
`
	_, err := Parse([]byte(doc))
	if !errors.Is(err, model.ErrEmptyGallery) {
		t.Fatalf("expected ErrEmptyGallery, got %v", err)
	}
}

func TestSource_LoadAndResolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.yaml")
	if err := os.WriteFile(path, []byte(minimal), 0o600); err != nil {
		t.Fatal(err)
	}
	src := Source{Path: path}
	p, err := src.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.Name != "Test" {
		t.Fatalf("unexpected name %q", p.Name)
	}
	if got := src.ResolveImage("a.png"); got != filepath.Join(dir, "a.png") {
		t.Fatalf("unexpected resolved path %q", got)
	}
	if got := src.ResolveImage("https://example.com/a.png"); got != "" {
		t.Fatalf("urls should not resolve, got %q", got)
	}
	if got := (Source{}).ResolveImage("a.png"); got != "" {
		t.Fatalf("embedded source has no asset dir, got %q", got)
	}

	s := Summarize(p)
	if s.Pages != 1 || s.Sections != 2 || s.Images != 2 {
		t.Fatalf("unexpected summary %+v", s)
	}
}

func TestSource_MissingFile(t *testing.T) {
	_, err := Source{Path: filepath.Join(t.TempDir(), "nope.yaml")}.Load()
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestWatcher_ReloadsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.yaml")
	if err := os.WriteFile(path, []byte(minimal), 0o600); err != nil {
		t.Fatal(err)
	}

	reloaded := make(chan model.Portfolio, 4)
	w := NewWatcher(Source{Path: path}, func(p model.Portfolio, err error) {
		if err == nil {
			reloaded <- p
		}
	})
	w.SetDebounce(20 * time.Millisecond)
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer w.Stop()

	updated := []byte(minimal[:len("\nname: ")] + "Changed" + minimal[len("\nname: Test"):])
	if err := os.WriteFile(path, updated, 0o600); err != nil {
		t.Fatal(err)
	}

	select {
	case p := <-reloaded:
		if p.Name != "Changed" {
			t.Fatalf("unexpected reloaded name %q", p.Name)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("no reload observed")
	}
}

func TestWatcher_EmbeddedSourceIsNoop(t *testing.T) {
	w := NewWatcher(Source{}, nil)
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("start: %v", err)
	}
	w.Stop()
}

func TestMarshal_ParsesBack(t *testing.T) {
	p, err := Default()
	if err != nil {
		t.Fatal(err)
	}
	data, err := Marshal(p)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("parse marshalled content: %v", err)
	}
	if diff := cmp.Diff(p, back); diff != "" {
		t.Fatalf("content changed (-want +got):\n%s", diff)
	}
}
