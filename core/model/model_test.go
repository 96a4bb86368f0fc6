// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.
package model

import (
	"errors"
	"testing"
)

func validPortfolio() Portfolio {
	return Portfolio{
		Name: "Test",
		Pages: []Page{
			{
				Slug:  "home",
				Title: "Home",
				Sections: []Section{
					{ID: "about", Kind: KindText, Body: []string{"hi"}},
				},
			},
			{
				Slug:  "case",
				Title: "Case",
				Glow:  Glow{Mode: GlowHue},
				Sections: []Section{
					{ID: "images", Kind: KindGallery, Gallery: []Screenshot{{Image: "a.png", Alt: "a"}}},
				},
			},
		},
	}
}

func TestValidate_OK(t *testing.T) {
	if err := validPortfolio().Validate(); err != nil {
		t.Fatalf("expected valid portfolio, got %v", err)
	}
}

func TestValidate_Violations(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(p *Portfolio)
		want   error
	}{
		{"no pages", func(p *Portfolio) { p.Pages = nil }, ErrNoPages},
		{"duplicate slug", func(p *Portfolio) { p.Pages[1].Slug = "home" }, ErrDuplicateSlug},
		{"missing slug", func(p *Portfolio) { p.Pages[1].Slug = "" }, ErrMissingSlug},
		{"no sections", func(p *Portfolio) { p.Pages[0].Sections = nil }, ErrNoSections},
		{"duplicate section", func(p *Portfolio) {
			p.Pages[0].Sections = append(p.Pages[0].Sections, Section{ID: "about", Kind: KindText})
		}, ErrDuplicateSection},
		{"unknown kind", func(p *Portfolio) { p.Pages[0].Sections[0].Kind = "carousel" }, ErrUnknownKind},
		{"empty gallery", func(p *Portfolio) { p.Pages[1].Sections[0].Gallery = nil }, ErrEmptyGallery},
		{"missing image", func(p *Portfolio) { p.Pages[1].Sections[0].Gallery[0].Image = "" }, ErrMissingImage},
		{"bad glow", func(p *Portfolio) { p.Pages[1].Glow.Mode = "rainbow" }, ErrUnknownGlowMode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validPortfolio()
			tc.mutate(&p)
			err := p.Validate()
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestPortfolio_Lookup(t *testing.T) {
	p := validPortfolio()
	if got := p.PathOf("home"); got != "/" {
		t.Fatalf("home path = %q", got)
	}
	if got := p.PathOf("case"); got != "/case/" {
		t.Fatalf("case path = %q", got)
	}
	if _, ok := p.Page("missing"); ok {
		t.Fatalf("expected missing page lookup to fail")
	}
	page, ok := p.Page("case")
	if !ok || page.Title != "Case" {
		t.Fatalf("unexpected page lookup result: %+v %v", page, ok)
	}
	if ids := page.SectionIDs(); len(ids) != 1 || ids[0] != "images" {
		t.Fatalf("unexpected section ids %v", ids)
	}
}

func TestSection_Label(t *testing.T) {
	if got := (Section{ID: "experience"}).Label(); got != "Experience" {
		t.Fatalf("got %q", got)
	}
	if got := (Section{ID: "images", Title: "Project Gallery"}).Label(); got != "Project Gallery" {
		t.Fatalf("got %q", got)
	}
}
