// pkg/render/color.go
package render

import (
	"image/color"

	"particle-backdrop/internal/defs"
	"particle-backdrop/internal/utils"
)

// VertexColor returns straight-alpha float components for a vertex.
func VertexColor(c defs.RGB, opacity float64) (r, g, b, a float32) {
	rgba := c.RGBA(255)
	return float32(rgba.R) / 255, float32(rgba.G) / 255, float32(rgba.B) / 255, float32(utils.Clamp01(opacity))
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
