// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package site

import (
	"html/template"

	"github.com/oelhwry/folio/core/glow"
	"github.com/oelhwry/folio/core/model"
	"github.com/oelhwry/folio/internal/i18n"
)

type pageView struct {
	Lang     string
	Name     string
	Title    string
	Subtitle string
	Intro    template.HTML
	Home     bool
	HomePath string
	Tags     []model.Tag
	Repo     *model.Link
	Socials  []model.Link
	Nav      []navItem
	Sections []sectionView
	Glow     glowView
	Lightbox *lightboxView
}

type navItem struct {
	ID    string
	Label string
}

type glowView struct {
	Mode   string
	Color  string
	Alpha  float64
	Radius int
}

type sectionView struct {
	ID          string
	Title       string
	Kind        string
	Body        []template.HTML
	Experience  []experienceView
	Projects    []projectView
	Gallery     []thumbView
	Comparisons []comparisonView
	Note        template.HTML
}

type experienceView struct {
	Period  string
	Role    string
	Org     string
	URL     string
	Summary template.HTML
}

type projectView struct {
	Href    string
	Title   string
	Summary template.HTML
	Tags    []string
	Image   string
	Alt     string
}

type thumbView struct {
	Href    string
	Image   string
	Alt     string
	Caption string
}

type comparisonView struct {
	Heading string
	Body    template.HTML
	Before  thumbView
	After   thumbView
}

type lightboxView struct {
	Section   string
	Index     int
	Count     int
	Image     string
	Alt       string
	Caption   string
	PrevHref  string
	NextHref  string
	CloseHref string
}

func (r *Renderer) pageView(p model.Portfolio, page model.Page) pageView {
	home, _ := p.Home()
	g := glow.New(page.Glow)
	view := pageView{
		Lang:     i18n.GetLang(),
		Name:     p.Name,
		Title:    page.Title,
		Subtitle: page.Subtitle,
		Intro:    r.inline(page.Intro),
		Home:     home.Slug == page.Slug,
		HomePath: "/",
		Tags:     page.Tags,
		Repo:     page.Repository,
		Socials:  p.Socials,
		Glow: glowView{
			Mode:   string(g.Mode()),
			Color:  g.CSS(),
			Alpha:  g.Alpha(),
			Radius: g.Radius(),
		},
	}

	for _, sec := range page.Sections {
		view.Nav = append(view.Nav, navItem{ID: sec.ID, Label: sec.Label()})
		view.Sections = append(view.Sections, r.sectionView(p, page, sec))
	}
	return view
}

func (r *Renderer) sectionView(p model.Portfolio, page model.Page, sec model.Section) sectionView {
	sv := sectionView{
		ID:    sec.ID,
		Title: sec.Label(),
		Kind:  string(sec.Kind),
	}
	for _, para := range sec.Body {
		sv.Body = append(sv.Body, r.markdown(para))
	}
	if sec.Note != "" {
		sv.Note = r.inline(sec.Note)
	}
	for _, e := range sec.Experience {
		sv.Experience = append(sv.Experience, experienceView{
			Period:  e.Period,
			Role:    e.Role,
			Org:     e.Org,
			URL:     e.URL,
			Summary: r.inline(e.Summary),
		})
	}
	for _, pr := range sec.Projects {
		sv.Projects = append(sv.Projects, projectView{
			Href:    p.PathOf(pr.Slug),
			Title:   pr.Title,
			Summary: r.inline(pr.Summary),
			Tags:    pr.Tags,
			Image:   assetURL(pr.Preview.Image),
			Alt:     pr.Preview.Alt,
		})
	}
	for i, shot := range sec.Gallery {
		sv.Gallery = append(sv.Gallery, thumbView{
			Href:    LightboxPath(p, page.Slug, sec.ID, i),
			Image:   assetURL(shot.Image),
			Alt:     shot.Alt,
			Caption: shot.Caption,
		})
	}
	for _, c := range sec.Comparisons {
		sv.Comparisons = append(sv.Comparisons, comparisonView{
			Heading: c.Heading,
			Body:    r.inline(c.Body),
			Before:  thumbView{Image: assetURL(c.Before.Image), Alt: c.Before.Alt, Caption: c.Before.Caption},
			After:   thumbView{Image: assetURL(c.After.Image), Alt: c.After.Alt, Caption: c.After.Caption},
		})
	}
	return sv
}
