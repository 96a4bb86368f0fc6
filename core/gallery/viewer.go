// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Package gallery implements the lightbox state machine for an ordered,
// captioned image gallery.
//
// A Viewer is either closed or open on exactly one image. Movement wraps
// around at both ends and never clamps. Next and Previous do nothing while
// closed, Close always succeeds.
package gallery

import (
	"errors"
	"fmt"

	"github.com/oelhwry/folio/core/model"
)

var (
	// ErrEmptyGallery is returned by New for a gallery without images.
	ErrEmptyGallery = model.ErrEmptyGallery
	// ErrIndexOutOfRange is returned by Open for an index outside the gallery.
	ErrIndexOutOfRange = errors.New("gallery index out of range")
)

// Viewer tracks which image of a gallery, if any, is shown enlarged.
// It is not safe for concurrent use; callers drive it from a single event loop.
type Viewer struct {
	shots []model.Screenshot
	index int
	open  bool
}

// New returns a closed viewer over a copy of shots.
func New(shots []model.Screenshot) (*Viewer, error) {
	if len(shots) == 0 {
		return nil, ErrEmptyGallery
	}
	return &Viewer{shots: append([]model.Screenshot(nil), shots...)}, nil
}

// Len returns the number of images.
func (v *Viewer) Len() int { return len(v.shots) }

// At returns the image at i.
func (v *Viewer) At(i int) (model.Screenshot, bool) {
	if i < 0 || i >= len(v.shots) {
		return model.Screenshot{}, false
	}
	return v.shots[i], true
}

// Shots returns a copy of the gallery.
func (v *Viewer) Shots() []model.Screenshot {
	return append([]model.Screenshot(nil), v.shots...)
}

// Open shows image i. An out-of-range index leaves the state unchanged.
func (v *Viewer) Open(i int) error {
	if i < 0 || i >= len(v.shots) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, i, len(v.shots))
	}
	v.index, v.open = i, true
	return nil
}

// Next advances to the following image, wrapping to the first.
func (v *Viewer) Next() {
	if !v.open {
		return
	}
	v.index = (v.index + 1) % len(v.shots)
}

// Previous steps back to the preceding image, wrapping to the last.
func (v *Viewer) Previous() {
	if !v.open {
		return
	}
	v.index = (v.index - 1 + len(v.shots)) % len(v.shots)
}

// Close hides the lightbox. The index is meaningless while closed.
func (v *Viewer) Close() {
	v.open = false
}

// State returns the open index and whether the viewer is open.
func (v *Viewer) State() (int, bool) {
	if !v.open {
		return -1, false
	}
	return v.index, true
}

// IsOpen reports whether an image is shown.
func (v *Viewer) IsOpen() bool { return v.open }

// Current returns the shown image.
func (v *Viewer) Current() (model.Screenshot, bool) {
	if !v.open {
		return model.Screenshot{}, false
	}
	return v.shots[v.index], true
}

// String renders the state as "Closed" or "Open(i)".
func (v *Viewer) String() string {
	if i, ok := v.State(); ok {
		return fmt.Sprintf("Open(%d)", i)
	}
	return "Closed"
}
