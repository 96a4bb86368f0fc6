// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package lightbox

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
)

const halfBlock = "▀"

// decodeImage reads and decodes the image file at path.
func decodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, nil
}

// fit returns the pixel size of src scaled to fit into width x height
// pixels with its aspect ratio kept.
func fit(src image.Rectangle, width, height int) (int, int) {
	sw, sh := src.Dx(), src.Dy()
	if sw == 0 || sh == 0 || width <= 0 || height <= 0 {
		return 0, 0
	}
	scale := min(float64(width)/float64(sw), float64(height)/float64(sh))
	w := max(int(float64(sw)*scale), 1)
	h := max(int(float64(sh)*scale), 1)
	return w, h
}

// renderImage draws the image at path into cols x rows terminal cells. Each
// cell shows two pixels stacked with the upper half block.
func renderImage(path string, cols, rows int) (string, error) {
	src, err := decodeImage(path)
	if err != nil {
		return "", err
	}
	w, h := fit(src.Bounds(), cols, rows*2)
	if w == 0 || h == 0 {
		return "", fmt.Errorf("no room to draw %s", path)
	}
	// an odd pixel height leaves the last bottom half black
	dst := image.NewRGBA(image.Rect(0, 0, w, h+h%2))
	draw.ApproxBiLinear.Scale(dst, image.Rect(0, 0, w, h), src, src.Bounds(), draw.Over, nil)

	lines := make([]string, 0, dst.Bounds().Dy()/2)
	for y := 0; y < dst.Bounds().Dy(); y += 2 {
		var b strings.Builder
		for x := 0; x < w; x++ {
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(hex(dst, x, y))).
				Background(lipgloss.Color(hex(dst, x, y+1))).
				Render(halfBlock))
		}
		lines = append(lines, b.String())
	}
	return lipgloss.Place(cols, rows, lipgloss.Center, lipgloss.Center, strings.Join(lines, "\n")), nil
}

func hex(img image.Image, x, y int) string {
	c, ok := colorful.MakeColor(img.At(x, y))
	if !ok {
		return "#000000"
	}
	return c.Hex()
}
