// pkg/render/colors.go
package render

import (
	"fmt"
	"image/color"
)

// Named chart colors
var (
	SkyBlue   = color.RGBA{R: 0x87, G: 0xce, B: 0xeb, A: 0xff}
	Salmon    = color.RGBA{R: 0xfa, G: 0x80, B: 0x72, A: 0xff}
	Orange    = color.RGBA{R: 0xff, G: 0xa5, B: 0x00, A: 0xff}
	Green     = color.RGBA{R: 0x00, G: 0x80, B: 0x00, A: 0xff}
	Purple    = color.RGBA{R: 0x80, G: 0x00, B: 0x80, A: 0xff}
	Teal      = color.RGBA{R: 0x00, G: 0x80, B: 0x80, A: 0xff}
	Gray      = color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	Coral     = color.RGBA{R: 0xff, G: 0x7f, B: 0x50, A: 0xff}
	SteelBlue = color.RGBA{R: 0x46, G: 0x82, B: 0xb4, A: 0xff}
)

// Viridis is the continuous scale of the density heatmap
var Viridis = []string{
	"#440154", "#482878", "#3e4989", "#31688e", "#26828e",
	"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725",
}

// WithAlpha returns c with the given opacity in [0, 1]
func WithAlpha(c color.Color, alpha float64) color.NRGBA {
	r, g, b, _ := c.RGBA()
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(alpha * 255)}
}

// Hex formats c as #rrggbb
func Hex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
