// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.
package gallery

// Target is the lightbox element hit by a pointer click.
type Target int

const (
	TargetNone Target = iota
	TargetPrevious
	TargetNext
	TargetClose
	TargetBackdrop
	// TargetFrame is the image frame itself. Clicks on it never close.
	TargetFrame
)

// Key is a navigation key understood by the lightbox.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
	KeyLeft
	KeyRight
)

// ParseKey maps DOM and terminal key names to a Key.
func ParseKey(name string) Key {
	switch name {
	case "Escape", "esc":
		return KeyEscape
	case "ArrowLeft", "left":
		return KeyLeft
	case "ArrowRight", "right":
		return KeyRight
	}
	return KeyNone
}

// Press applies a key. Keys are ignored while the viewer is closed.
// It reports whether the key was consumed.
func (v *Viewer) Press(k Key) bool {
	if !v.open {
		return false
	}
	switch k {
	case KeyEscape:
		v.Close()
	case KeyLeft:
		v.Previous()
	case KeyRight:
		v.Next()
	default:
		return false
	}
	return true
}

// Click applies a pointer click on the given lightbox element.
func (v *Viewer) Click(t Target) {
	switch t {
	case TargetPrevious:
		v.Previous()
	case TargetNext:
		v.Next()
	case TargetClose, TargetBackdrop:
		v.Close()
	}
}
