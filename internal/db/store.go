// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/oelhwry/folio/core/model"
	"github.com/uptrace/bun"
)

// siteID is the primary key of the single site row.
const siteID = 1

type siteRow struct {
	bun.BaseModel `bun:"table:sites"`
	ID            int64        `bun:"id,pk"`
	Name          string       `bun:"name"`
	Socials       []model.Link `bun:"socials"`
	UpdatedAt     time.Time    `bun:"updated_at"`
}

type pageRow struct {
	bun.BaseModel `bun:"table:pages"`
	ID            int64       `bun:"id,pk"`
	Position      int         `bun:"position"`
	Slug          string      `bun:"slug"`
	Title         string      `bun:"title"`
	Subtitle      string      `bun:"subtitle"`
	Intro         string      `bun:"intro"`
	Tags          []model.Tag `bun:"tags"`
	RepoLabel     string      `bun:"repo_label"`
	RepoURL       string      `bun:"repo_url"`
	GlowMode      string      `bun:"glow_mode"`
	GlowColor     string      `bun:"glow_color"`
	GlowAlpha     float64     `bun:"glow_alpha"`
	GlowRadius    int         `bun:"glow_radius"`
}

// sectionPayload carries the kind specific content that has no table of its
// own.
type sectionPayload struct {
	Experience  []model.Experience `json:"experience,omitempty"`
	Projects    []model.Project    `json:"projects,omitempty"`
	Comparisons []model.Comparison `json:"comparisons,omitempty"`
}

type sectionRow struct {
	bun.BaseModel `bun:"table:sections"`
	ID            int64          `bun:"id,pk"`
	PageID        int64          `bun:"page_id"`
	Position      int            `bun:"position"`
	Key           string         `bun:"section_key"`
	Title         string         `bun:"title"`
	Kind          string         `bun:"kind"`
	Note          string         `bun:"note"`
	Body          []string       `bun:"body"`
	Payload       sectionPayload `bun:"payload"`
}

type screenshotRow struct {
	bun.BaseModel `bun:"table:screenshots"`
	ID            int64  `bun:"id,pk"`
	SectionID     int64  `bun:"section_id"`
	Position      int    `bun:"position"`
	Image         string `bun:"image"`
	Alt           string `bun:"alt"`
	Caption       string `bun:"caption"`
}

// Store reads and writes the portfolio catalog.
type Store struct {
	bun    *bun.DB
	dbType string
}

// Type returns the database type the store was opened with.
func (s *Store) Type() string { return s.dbType }

// Close releases the underlying connection pool.
func (s *Store) Close() error { return s.bun.Close() }

// SavePortfolio replaces the stored catalog with p in one transaction.
func (s *Store) SavePortfolio(ctx context.Context, p model.Portfolio) error {
	if err := p.Validate(); err != nil {
		return err
	}
	site, pages, sections, shots := flatten(p)

	tx, err := s.bun.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	// children first so foreign keys hold on every engine
	for _, table := range []string{"screenshots", "sections", "pages", "sites"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	if _, err := tx.NewInsert().Model(&site).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert site: %w", MapDBError(err))
	}
	if _, err := tx.NewInsert().Model(&pages).Exec(ctx); err != nil {
		return fmt.Errorf("failed to insert pages: %w", MapDBError(err))
	}
	if len(sections) > 0 {
		if _, err := tx.NewInsert().Model(&sections).Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert sections: %w", MapDBError(err))
		}
	}
	if len(shots) > 0 {
		if _, err := tx.NewInsert().Model(&shots).Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert screenshots: %w", MapDBError(err))
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	dbLogf("db: saved %d pages, %d sections, %d screenshots", len(pages), len(sections), len(shots))
	return nil
}

func flatten(p model.Portfolio) (siteRow, []pageRow, []sectionRow, []screenshotRow) {
	site := siteRow{ID: siteID, Name: p.Name, Socials: p.Socials, UpdatedAt: time.Now().UTC()}
	if site.Socials == nil {
		site.Socials = []model.Link{}
	}

	var (
		pages    []pageRow
		sections []sectionRow
		shots    []screenshotRow
	)
	for i, page := range p.Pages {
		pr := pageRow{
			ID:         int64(i + 1),
			Position:   i,
			Slug:       page.Slug,
			Title:      page.Title,
			Subtitle:   page.Subtitle,
			Intro:      page.Intro,
			Tags:       page.Tags,
			GlowMode:   string(page.Glow.Mode),
			GlowColor:  page.Glow.Color,
			GlowAlpha:  page.Glow.Alpha,
			GlowRadius: page.Glow.Radius,
		}
		if pr.Tags == nil {
			pr.Tags = []model.Tag{}
		}
		if page.Repository != nil {
			pr.RepoLabel = page.Repository.Label
			pr.RepoURL = page.Repository.URL
		}
		pages = append(pages, pr)

		for j, sec := range page.Sections {
			sr := sectionRow{
				ID:       int64(len(sections) + 1),
				PageID:   pr.ID,
				Position: j,
				Key:      sec.ID,
				Title:    sec.Title,
				Kind:     string(sec.Kind),
				Note:     sec.Note,
				Body:     sec.Body,
				Payload: sectionPayload{
					Experience:  sec.Experience,
					Projects:    sec.Projects,
					Comparisons: sec.Comparisons,
				},
			}
			if sr.Body == nil {
				sr.Body = []string{}
			}
			sections = append(sections, sr)

			for k, shot := range sec.Gallery {
				shots = append(shots, screenshotRow{
					ID:        int64(len(shots) + 1),
					SectionID: sr.ID,
					Position:  k,
					Image:     shot.Image,
					Alt:       shot.Alt,
					Caption:   shot.Caption,
				})
			}
		}
	}
	return site, pages, sections, shots
}

// LoadPortfolio reads the stored catalog. It returns ErrNoPortfolio when
// nothing has been saved yet.
func (s *Store) LoadPortfolio(ctx context.Context) (model.Portfolio, error) {
	var site siteRow
	err := s.bun.NewSelect().Model(&site).Where("id = ?", siteID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Portfolio{}, ErrNoPortfolio
	}
	if err != nil {
		return model.Portfolio{}, err
	}

	var pages []pageRow
	if err := s.bun.NewSelect().Model(&pages).Order("position").Scan(ctx); err != nil {
		return model.Portfolio{}, err
	}
	var sections []sectionRow
	if err := s.bun.NewSelect().Model(&sections).Order("page_id", "position").Scan(ctx); err != nil {
		return model.Portfolio{}, err
	}
	var shots []screenshotRow
	if err := s.bun.NewSelect().Model(&shots).Order("section_id", "position").Scan(ctx); err != nil {
		return model.Portfolio{}, err
	}
	if len(pages) == 0 {
		return model.Portfolio{}, ErrNoPortfolio
	}

	gallery := make(map[int64][]model.Screenshot)
	for _, sh := range shots {
		gallery[sh.SectionID] = append(gallery[sh.SectionID], model.Screenshot{Image: sh.Image, Alt: sh.Alt, Caption: sh.Caption})
	}
	bySection := make(map[int64][]model.Section)
	for _, sr := range sections {
		bySection[sr.PageID] = append(bySection[sr.PageID], model.Section{
			ID:          sr.Key,
			Title:       sr.Title,
			Kind:        model.SectionKind(sr.Kind),
			Body:        sr.Body,
			Experience:  sr.Payload.Experience,
			Projects:    sr.Payload.Projects,
			Gallery:     gallery[sr.ID],
			Comparisons: sr.Payload.Comparisons,
			Note:        sr.Note,
		})
	}

	p := model.Portfolio{Name: site.Name, Socials: site.Socials}
	for _, pr := range pages {
		page := model.Page{
			Slug:     pr.Slug,
			Title:    pr.Title,
			Subtitle: pr.Subtitle,
			Intro:    pr.Intro,
			Tags:     pr.Tags,
			Glow: model.Glow{
				Mode:   model.GlowMode(pr.GlowMode),
				Color:  pr.GlowColor,
				Alpha:  pr.GlowAlpha,
				Radius: pr.GlowRadius,
			},
			Sections: bySection[pr.ID],
		}
		if pr.RepoURL != "" {
			page.Repository = &model.Link{Label: pr.RepoLabel, URL: pr.RepoURL}
		}
		p.Pages = append(p.Pages, page)
	}
	return p, nil
}

// Updated returns when the catalog was last saved.
func (s *Store) Updated(ctx context.Context) (time.Time, error) {
	var site siteRow
	err := s.bun.NewSelect().Model(&site).Column("updated_at").Where("id = ?", siteID).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, ErrNoPortfolio
	}
	return site.UpdatedAt, err
}
