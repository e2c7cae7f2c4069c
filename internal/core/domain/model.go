package domain

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Palette holds the two colors of the motif: the solid canvas fill and the
// color the shapes are drawn in.
type Palette struct {
	Background color.RGBA
	Foreground color.RGBA
}

// DefaultPalette returns the stock extension colors, a Slack-style green
// canvas with white shapes.
func DefaultPalette() Palette {
	return Palette{
		Background: color.RGBA{R: 46, G: 182, B: 125, A: 255},
		Foreground: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// IconSpec describes a single icon to render.
type IconSpec struct {
	Size        int
	Palette     Palette
	Supersample int
}

// IconSet describes a full generation run.
type IconSet struct {
	Sizes       []int
	OutputDir   string
	Palette     Palette
	Supersample int
	// BundleName is the file name of the multi-size ICO container. Empty
	// disables the bundle.
	BundleName string
}

// FileName returns the artifact name for one size, e.g. icon48.png.
func (s IconSet) FileName(size int) string {
	return fmt.Sprintf("icon%d.png", size)
}

// ParseHexColor parses #RRGGBB or #RRGGBBAA into an RGBA color. The leading
// # is optional and the alpha channel defaults to opaque when omitted.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHexColor, s)
	}

	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidHexColor, s)
	}

	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}

	return color.RGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
