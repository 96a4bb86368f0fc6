// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.
package model

import (
	"errors"
	"fmt"
)

var (
	ErrNoPages          = errors.New("portfolio has no pages")
	ErrDuplicateSlug    = errors.New("duplicate page slug")
	ErrMissingSlug      = errors.New("page has no slug")
	ErrNoSections       = errors.New("page has no sections")
	ErrDuplicateSection = errors.New("duplicate section id")
	ErrUnknownKind      = errors.New("unknown section kind")
	ErrEmptyGallery     = errors.New("gallery has no images")
	ErrMissingImage     = errors.New("screenshot has no image reference")
	ErrUnknownGlowMode  = errors.New("unknown glow mode")
)

// Validate checks the structural invariants of the portfolio and reports
// every violation it finds. The returned error matches the sentinels above
// with errors.Is.
func (p Portfolio) Validate() error {
	if len(p.Pages) == 0 {
		return ErrNoPages
	}

	var errs []error
	slugs := make(map[string]bool, len(p.Pages))
	for i, page := range p.Pages {
		if page.Slug == "" {
			errs = append(errs, fmt.Errorf("page %d: %w", i, ErrMissingSlug))
		} else if slugs[page.Slug] {
			errs = append(errs, fmt.Errorf("page %q: %w", page.Slug, ErrDuplicateSlug))
		}
		slugs[page.Slug] = true
		errs = append(errs, page.validate()...)
	}
	return errors.Join(errs...)
}

func (p Page) validate() []error {
	var errs []error
	if len(p.Sections) == 0 {
		errs = append(errs, fmt.Errorf("page %q: %w", p.Slug, ErrNoSections))
	}
	switch p.Glow.Mode {
	case "", GlowSteady, GlowHue:
	default:
		errs = append(errs, fmt.Errorf("page %q: %w: %s", p.Slug, ErrUnknownGlowMode, p.Glow.Mode))
	}

	ids := make(map[string]bool, len(p.Sections))
	for _, s := range p.Sections {
		where := fmt.Sprintf("page %q section %q", p.Slug, s.ID)
		if ids[s.ID] {
			errs = append(errs, fmt.Errorf("%s: %w", where, ErrDuplicateSection))
		}
		ids[s.ID] = true

		switch s.Kind {
		case KindText, KindExperience, KindProjects, KindComparison:
		case KindGallery:
			if len(s.Gallery) == 0 {
				errs = append(errs, fmt.Errorf("%s: %w", where, ErrEmptyGallery))
			}
		default:
			errs = append(errs, fmt.Errorf("%s: %w: %q", where, ErrUnknownKind, s.Kind))
		}

		for i, shot := range s.Gallery {
			if shot.Image == "" {
				errs = append(errs, fmt.Errorf("%s image %d: %w", where, i, ErrMissingImage))
			}
		}
		for _, c := range s.Comparisons {
			if c.Before.Image == "" || c.After.Image == "" {
				errs = append(errs, fmt.Errorf("%s comparison %q: %w", where, c.Heading, ErrMissingImage))
			}
		}
	}
	return errs
}
