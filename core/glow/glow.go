// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

// Package glow computes the colour of the cursor-following highlight.
package glow

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/oelhwry/folio/core/model"
)

const (
	// FallbackHue is used by hue mode while the viewport width is unknown.
	FallbackHue = 210.0
	// DefaultColor is the steady glow colour when none is configured.
	DefaultColor = "#1d4ed8"
	// DefaultAlpha is the glow opacity when none is configured.
	DefaultAlpha = 0.15
	// DefaultRadius is the glow radius in pixels when none is configured.
	DefaultRadius = 600

	hueSaturation = 0.8
	hueLightness  = 0.6
)

// Glow follows the pointer across a viewport.
type Glow struct {
	mode   model.GlowMode
	base   colorful.Color
	alpha  float64
	radius int

	x, y          int
	width, height int
}

// New returns a glow for the page configuration. An unparsable colour falls
// back to DefaultColor.
func New(cfg model.Glow) *Glow {
	g := &Glow{
		mode:   cfg.Mode,
		alpha:  cfg.Alpha,
		radius: cfg.Radius,
	}
	if g.mode == "" {
		g.mode = model.GlowSteady
	}
	if g.alpha <= 0 {
		g.alpha = DefaultAlpha
	}
	if g.radius <= 0 {
		g.radius = DefaultRadius
	}
	c, err := colorful.Hex(cfg.Color)
	if err != nil {
		c, _ = colorful.Hex(DefaultColor)
	}
	g.base = c
	return g
}

// Move records the pointer position.
func (g *Glow) Move(x, y int) { g.x, g.y = x, y }

// Resize records the viewport size. A zero width means unknown.
func (g *Glow) Resize(width, height int) { g.width, g.height = width, height }

// Position returns the last pointer position.
func (g *Glow) Position() (int, int) { return g.x, g.y }

// Radius returns the glow radius in pixels.
func (g *Glow) Radius() int { return g.radius }

// Alpha returns the glow opacity.
func (g *Glow) Alpha() float64 { return g.alpha }

// Mode returns the effective mode.
func (g *Glow) Mode() model.GlowMode { return g.mode }

// Hue returns the hue in degrees for hue mode: the horizontal pointer
// position as a fraction of the viewport width, scaled to 360.
func (g *Glow) Hue() float64 {
	if g.width <= 0 {
		return FallbackHue
	}
	h := float64(g.x) / float64(g.width) * 360
	return math.Mod(math.Max(h, 0), 360)
}

// Color returns the current glow colour without alpha.
func (g *Glow) Color() colorful.Color {
	if g.mode == model.GlowHue {
		return colorful.Hsl(g.Hue(), hueSaturation, hueLightness)
	}
	return g.base
}

// Hex returns Color as "#rrggbb".
func (g *Glow) Hex() string { return g.Color().Hex() }

// CSS returns the colour with alpha as a CSS colour value.
func (g *Glow) CSS() string {
	if g.mode == model.GlowHue {
		return fmt.Sprintf("hsla(%.0f, 80%%, 60%%, %.2f)", g.Hue(), g.alpha)
	}
	r, gr, b := g.base.RGB255()
	return fmt.Sprintf("rgba(%d,%d,%d,%.2f)", r, gr, b, g.alpha)
}

// Falloff returns the glow strength in [0,1] at cell (x,y) for a radius in
// cells. Terminal cells are about twice as tall as wide, so rows count double.
func (g *Glow) Falloff(x, y int, radius float64) float64 {
	if radius <= 0 {
		return 0
	}
	dx := float64(x - g.x)
	dy := float64(y-g.y) * 2
	d := math.Hypot(dx, dy) / radius
	if d >= 1 {
		return 0
	}
	return 1 - d
}

// Blend mixes the glow colour into base with the strength at (x,y).
func (g *Glow) Blend(base colorful.Color, x, y int, radius float64) colorful.Color {
	t := g.Falloff(x, y, radius) * g.alpha
	return base.BlendRgb(g.Color(), t).Clamped()
}
