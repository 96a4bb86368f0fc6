// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.
package model

import "strings"

// SectionKind selects how a section is rendered.
type SectionKind string

const (
	KindText       SectionKind = "text"
	KindExperience SectionKind = "experience"
	KindProjects   SectionKind = "projects"
	KindGallery    SectionKind = "gallery"
	KindComparison SectionKind = "comparison"
)

// GlowMode selects how the cursor glow picks its colour.
type GlowMode string

const (
	// GlowSteady keeps the configured colour.
	GlowSteady GlowMode = "steady"
	// GlowHue derives the hue from the horizontal cursor position.
	GlowHue GlowMode = "hue"
)

// Screenshot is a single captioned image of a gallery. Its position in the
// gallery is its navigation order.
type Screenshot struct {
	Image   string `yaml:"image" json:"image"`
	Alt     string `yaml:"alt" json:"alt"`
	Caption string `yaml:"caption,omitempty" json:"caption,omitempty"`
}

// Link is an external or internal hyperlink.
type Link struct {
	Label string `yaml:"label" json:"label"`
	URL   string `yaml:"url" json:"url"`
}

// Tag is a technology badge. Color is optional.
type Tag struct {
	Name  string `yaml:"name" json:"name"`
	Color string `yaml:"color,omitempty" json:"color,omitempty"`
}

// Experience is one entry of the work history.
type Experience struct {
	Period  string `yaml:"period" json:"period"`
	Role    string `yaml:"role" json:"role"`
	Org     string `yaml:"org" json:"org"`
	URL     string `yaml:"url,omitempty" json:"url,omitempty"`
	Summary string `yaml:"summary" json:"summary"`
}

// Project is a project card linking to a case-study page.
type Project struct {
	Slug    string     `yaml:"slug" json:"slug"`
	Title   string     `yaml:"title" json:"title"`
	Summary string     `yaml:"summary" json:"summary"`
	Tags    []string   `yaml:"tags,omitempty" json:"tags,omitempty"`
	Preview Screenshot `yaml:"preview" json:"preview"`
}

// Comparison shows a before and after image pair under a heading.
type Comparison struct {
	Heading string     `yaml:"heading" json:"heading"`
	Body    string     `yaml:"body" json:"body"`
	Before  Screenshot `yaml:"before" json:"before"`
	After   Screenshot `yaml:"after" json:"after"`
}

// Section is a navigable block of a page.
type Section struct {
	ID          string       `yaml:"id" json:"id"`
	Title       string       `yaml:"title,omitempty" json:"title,omitempty"`
	Kind        SectionKind  `yaml:"kind" json:"kind"`
	Body        []string     `yaml:"body,omitempty" json:"body,omitempty"`
	Experience  []Experience `yaml:"experience,omitempty" json:"experience,omitempty"`
	Projects    []Project    `yaml:"projects,omitempty" json:"projects,omitempty"`
	Gallery     []Screenshot `yaml:"gallery,omitempty" json:"gallery,omitempty"`
	Comparisons []Comparison `yaml:"comparisons,omitempty" json:"comparisons,omitempty"`
	Note        string       `yaml:"note,omitempty" json:"note,omitempty"`
}

// Label returns the title, or the capitalised id when no title is set.
func (s Section) Label() string {
	if s.Title != "" {
		return s.Title
	}
	if s.ID == "" {
		return ""
	}
	return strings.ToUpper(s.ID[:1]) + s.ID[1:]
}

// Glow configures the cursor-following glow of a page.
type Glow struct {
	Mode   GlowMode `yaml:"mode" json:"mode"`
	Color  string   `yaml:"color,omitempty" json:"color,omitempty"`
	Alpha  float64  `yaml:"alpha,omitempty" json:"alpha,omitempty"`
	Radius int      `yaml:"radius,omitempty" json:"radius,omitempty"`
}

// Page is the home page or a case study.
type Page struct {
	Slug       string    `yaml:"slug" json:"slug"`
	Title      string    `yaml:"title" json:"title"`
	Subtitle   string    `yaml:"subtitle,omitempty" json:"subtitle,omitempty"`
	Intro      string    `yaml:"intro,omitempty" json:"intro,omitempty"`
	Tags       []Tag     `yaml:"tags,omitempty" json:"tags,omitempty"`
	Repository *Link     `yaml:"repository,omitempty" json:"repository,omitempty"`
	Glow       Glow      `yaml:"glow" json:"glow"`
	Sections   []Section `yaml:"sections" json:"sections"`
}

// Section looks up a section by id.
func (p Page) Section(id string) (Section, bool) {
	for _, s := range p.Sections {
		if s.ID == id {
			return s, true
		}
	}
	return Section{}, false
}

// SectionIDs returns the section ids in page order.
func (p Page) SectionIDs() []string {
	ids := make([]string, len(p.Sections))
	for i, s := range p.Sections {
		ids[i] = s.ID
	}
	return ids
}

// Portfolio is the complete site content. The first page is the home page.
type Portfolio struct {
	Name    string `yaml:"name" json:"name"`
	Socials []Link `yaml:"socials,omitempty" json:"socials,omitempty"`
	Pages   []Page `yaml:"pages" json:"pages"`
}

// Home returns the first page.
func (p Portfolio) Home() (Page, bool) {
	if len(p.Pages) == 0 {
		return Page{}, false
	}
	return p.Pages[0], true
}

// Page looks up a page by slug.
func (p Portfolio) Page(slug string) (Page, bool) {
	for _, page := range p.Pages {
		if page.Slug == slug {
			return page, true
		}
	}
	return Page{}, false
}

// PathOf returns the URL path of the page with the given slug. The home page
// lives at "/".
func (p Portfolio) PathOf(slug string) string {
	if home, ok := p.Home(); ok && home.Slug == slug {
		return "/"
	}
	return "/" + slug + "/"
}
