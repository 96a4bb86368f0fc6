// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Package site renders a portfolio as static HTML. Every page and every
// lightbox state gets its own URL so the site works without JavaScript; the
// embedded script only adds keyboard shortcuts, scroll-spy and the glow.
package site

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strconv"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/oelhwry/folio/core/gallery"
	"github.com/oelhwry/folio/core/model"
	"github.com/oelhwry/folio/internal/i18n"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	// AssetPrefix is where image references are published.
	AssetPrefix = "/assets/"
	// StaticPrefix is where the stylesheet and script are published.
	StaticPrefix = "/static/"
)

// Static returns the stylesheet and script served under StaticPrefix.
func Static() fs.FS {
	sub, _ := fs.Sub(staticFS, "static")
	return sub
}

// Route is one renderable URL of the site.
type Route struct {
	Path    string
	Slug    string
	Section string
	// Index is the zero based image index for lightbox routes, -1 otherwise.
	Index int
}

// IsLightbox reports whether the route shows an open lightbox.
func (r Route) IsLightbox() bool { return r.Index >= 0 }

// LightboxPath returns the URL of image index (zero based) of a gallery
// section. URLs count images from one.
func LightboxPath(p model.Portfolio, slug, section string, index int) string {
	return p.PathOf(slug) + section + "/" + strconv.Itoa(index+1) + "/"
}

// Routes lists every page and lightbox URL of p in page order.
func Routes(p model.Portfolio) []Route {
	var routes []Route
	for _, page := range p.Pages {
		routes = append(routes, Route{Path: p.PathOf(page.Slug), Slug: page.Slug, Index: -1})
		for _, sec := range page.Sections {
			if sec.Kind != model.KindGallery {
				continue
			}
			for i := range sec.Gallery {
				routes = append(routes, Route{
					Path:    LightboxPath(p, page.Slug, sec.ID, i),
					Slug:    page.Slug,
					Section: sec.ID,
					Index:   i,
				})
			}
		}
	}
	return routes
}

// Renderer turns portfolio content into HTML documents.
type Renderer struct {
	tmpl   *template.Template
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	r := &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
		policy: bluemonday.UGCPolicy(),
	}
	r.policy.RequireNoFollowOnLinks(false)
	r.policy.AddTargetBlankToFullyQualifiedLinks(true)

	funcs := template.FuncMap{
		"t":     func(id string, args ...any) string { return i18n.T(id, args...) },
		"add":   func(a, b int) int { return a + b },
		"asset": assetURL,
	}
	tmpl, err := template.New("site").Funcs(funcs).ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// markdown renders one paragraph of content markdown to sanitised HTML.
func (r *Renderer) markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(r.policy.SanitizeBytes(buf.Bytes()))
}

// inline renders markdown without the surrounding paragraph.
func (r *Renderer) inline(src string) template.HTML {
	out := strings.TrimSpace(string(r.markdown(src)))
	out = strings.TrimPrefix(out, "<p>")
	out = strings.TrimSuffix(out, "</p>")
	return template.HTML(out)
}

// RenderPage writes the page with the given slug.
func (r *Renderer) RenderPage(w io.Writer, p model.Portfolio, slug string) error {
	return r.Render(w, p, Route{Path: p.PathOf(slug), Slug: slug, Index: -1})
}

// Render writes the document for route.
func (r *Renderer) Render(w io.Writer, p model.Portfolio, route Route) error {
	page, ok := p.Page(route.Slug)
	if !ok {
		return fmt.Errorf("unknown page %q", route.Slug)
	}
	view := r.pageView(p, page)

	if route.IsLightbox() {
		lb, err := r.lightboxView(p, page, route.Section, route.Index)
		if err != nil {
			return err
		}
		view.Lightbox = lb
	}
	return r.tmpl.ExecuteTemplate(w, "page.tmpl", view)
}

// lightboxView drives a Viewer to the requested image and derives the
// previous, next and close targets from its transitions.
func (r *Renderer) lightboxView(p model.Portfolio, page model.Page, sectionID string, index int) (*lightboxView, error) {
	sec, ok := page.Section(sectionID)
	if !ok || sec.Kind != model.KindGallery {
		return nil, fmt.Errorf("page %q has no gallery %q", page.Slug, sectionID)
	}
	v, err := gallery.New(sec.Gallery)
	if err != nil {
		return nil, err
	}
	if err := v.Open(index); err != nil {
		return nil, err
	}
	shot, _ := v.Current()

	v.Previous()
	prev, _ := v.State()
	v.Next()
	v.Next()
	next, _ := v.State()
	v.Close()

	return &lightboxView{
		Section:  sectionID,
		Index:    index,
		Count:    v.Len(),
		Image:    assetURL(shot.Image),
		Alt:      shot.Alt,
		Caption:  shot.Caption,
		PrevHref: LightboxPath(p, page.Slug, sectionID, prev),
		NextHref: LightboxPath(p, page.Slug, sectionID, next),
		// closing returns to the gallery on the page
		CloseHref: p.PathOf(page.Slug) + "#" + sectionID,
	}, nil
}

// assetURL maps a content image reference to its published URL.
func assetURL(ref string) string {
	if ref == "" || strings.Contains(ref, "://") || strings.HasPrefix(ref, "//") || strings.HasPrefix(ref, "data:") {
		return ref
	}
	return AssetPrefix + strings.TrimPrefix(ref, "/")
}
