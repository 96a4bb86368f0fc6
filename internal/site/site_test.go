// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package site

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/oelhwry/folio/content"
	"github.com/oelhwry/folio/core/model"
)

func defaultPortfolio(t *testing.T) model.Portfolio {
	t.Helper()
	p, err := content.Default()
	if err != nil {
		t.Fatalf("default content: %v", err)
	}
	return p
}

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return r
}

func TestRoutes(t *testing.T) {
	p := defaultPortfolio(t)
	routes := Routes(p)

	var pages, lightboxes int
	for _, r := range routes {
		if r.IsLightbox() {
			lightboxes++
		} else {
			pages++
		}
	}
	if pages != 4 || lightboxes != 13 {
		t.Fatalf("expected 4 pages and 13 lightboxes, got %d and %d", pages, lightboxes)
	}
	if routes[0].Path != "/" {
		t.Fatalf("home should be first at /, got %q", routes[0].Path)
	}

	var v2 []string
	for _, r := range routes {
		if r.Slug == "peerfitv2" && r.IsLightbox() {
			v2 = append(v2, r.Path)
		}
	}
	if v2[0] != "/peerfitv2/images/1/" || v2[6] != "/peerfitv2/images/7/" {
		t.Fatalf("unexpected lightbox paths %v", v2)
	}
}

func TestAssetURL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"images/a.png", "/assets/images/a.png"},
		{"/images/a.png", "/assets/images/a.png"},
		{"https://example.com/a.png", "https://example.com/a.png"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := assetURL(tt.in); got != tt.want {
			t.Errorf("assetURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRenderPage(t *testing.T) {
	p := defaultPortfolio(t)
	r := newRenderer(t)

	var buf bytes.Buffer
	if err := r.RenderPage(&buf, p, "peerfitv2"); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		`id="about"`,
		`id="images"`,
		`id="evolution"`,
		`href="/peerfitv2/images/1/"`,
		`data-glow-mode="hue"`,
		`href="/static/style.css"`,
		`src="/assets/images/peerfitv2.png"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("page output missing %s", want)
		}
	}
	if strings.Contains(out, `class="lightbox"`) {
		t.Errorf("plain page must not render the lightbox")
	}

	if err := r.RenderPage(&buf, p, "nope"); err == nil {
		t.Fatalf("expected error for unknown page")
	}
}

func TestRenderLightbox_WrapsAround(t *testing.T) {
	p := defaultPortfolio(t)
	r := newRenderer(t)

	tests := []struct {
		name      string
		index     int
		wantPrev  string
		wantNext  string
		wantCount string
	}{
		{"first", 0, "/peerfitv2/images/7/", "/peerfitv2/images/2/", "Image 1 of 7"},
		{"middle", 3, "/peerfitv2/images/3/", "/peerfitv2/images/5/", "Image 4 of 7"},
		{"last", 6, "/peerfitv2/images/6/", "/peerfitv2/images/1/", "Image 7 of 7"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			route := Route{Slug: "peerfitv2", Section: "images", Index: tt.index}
			if err := r.Render(&buf, p, route); err != nil {
				t.Fatalf("render: %v", err)
			}
			out := buf.String()
			for _, want := range []string{
				`data-prev="` + tt.wantPrev + `"`,
				`data-next="` + tt.wantNext + `"`,
				`data-close="/peerfitv2/#images"`,
				tt.wantCount,
			} {
				if !strings.Contains(out, want) {
					t.Errorf("lightbox output missing %s", want)
				}
			}
		})
	}
}

func TestRenderLightbox_SingleImage(t *testing.T) {
	p := defaultPortfolio(t)
	r := newRenderer(t)
	page, _ := p.Page("explore-space")
	sec, _ := page.Section("images")

	lb, err := r.lightboxView(p, page, "images", 1)
	if err != nil {
		t.Fatalf("lightbox: %v", err)
	}
	if lb.Count != len(sec.Gallery) || lb.PrevHref != lb.NextHref {
		t.Fatalf("two image gallery should point both ways to the other image: %+v", lb)
	}
}

func TestRenderLightbox_Errors(t *testing.T) {
	p := defaultPortfolio(t)
	r := newRenderer(t)

	tests := []Route{
		{Slug: "peerfitv2", Section: "about", Index: 0},
		{Slug: "peerfitv2", Section: "missing", Index: 0},
		{Slug: "peerfitv2", Section: "images", Index: 7},
	}
	for _, route := range tests {
		var buf bytes.Buffer
		if err := r.Render(&buf, p, route); err == nil {
			t.Errorf("expected error for %+v", route)
		}
	}
}

func TestMarkdownIsSanitised(t *testing.T) {
	r := newRenderer(t)
	got := string(r.inline("**bold** <script>alert(1)</script> [x](https://example.com)"))
	if strings.Contains(got, "<script>") {
		t.Fatalf("script survived sanitising: %s", got)
	}
	if !strings.Contains(got, "<strong>bold</strong>") || !strings.Contains(got, `target="_blank"`) {
		t.Fatalf("unexpected inline output: %s", got)
	}
	if strings.HasPrefix(got, "<p>") {
		t.Fatalf("inline output kept paragraph: %s", got)
	}
}

const exportDoc = `
name: Export
pages:
  - slug: home
    title: Home
    sections:
      - id: images
        kind: gallery
        gallery:
          - {image: shots/a.png, alt: A}
          - {image: shots/b.png, alt: B}
          - {image: "https://example.com/c.png", alt: C}
  - slug: other
    title: Other
    sections:
      - id: about
        kind: text
        body: ["hi"]
`

func TestExport(t *testing.T) {
	srcDir := t.TempDir()
	contentPath := filepath.Join(srcDir, "portfolio.yaml")
	if err := os.WriteFile(contentPath, []byte(exportDoc), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(srcDir, "shots"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(srcDir, "shots", "a.png"), []byte("png"), 0o600); err != nil {
		t.Fatal(err)
	}

	src := content.Source{Path: contentPath}
	p, err := src.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	out := t.TempDir()
	res, err := newRenderer(t).Export(context.Background(), p, src, out)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if res.Pages != 2 || res.Lightboxes != 3 {
		t.Fatalf("unexpected counts %+v", res)
	}
	if diff := cmp.Diff([]string{"shots/b.png"}, res.Missing); diff != "" {
		t.Fatalf("missing mismatch (-want +got):\n%s", diff)
	}

	for _, rel := range []string{
		"index.html",
		"other/index.html",
		"images/1/index.html",
		"images/3/index.html",
		"static/style.css",
		"static/folio.js",
		"assets/shots/a.png",
	} {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(rel))); err != nil {
			t.Errorf("expected %s in export: %v", rel, err)
		}
	}
	if res.Bytes <= 0 || res.Files < 7 {
		t.Fatalf("unexpected totals %+v", res)
	}
}

func TestExport_EmbeddedSourceReportsMissing(t *testing.T) {
	p := defaultPortfolio(t)
	res, err := newRenderer(t).Export(context.Background(), p, content.Source{}, t.TempDir())
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(res.Missing) != len(imageRefs(p)) {
		t.Fatalf("embedded content has no asset dir, expected all %d images missing, got %d", len(imageRefs(p)), len(res.Missing))
	}
}

func TestExport_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := newRenderer(t).Export(ctx, defaultPortfolio(t), content.Source{}, t.TempDir()); err == nil {
		t.Fatalf("expected context error")
	}
}
