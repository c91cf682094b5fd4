// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"particle-backdrop/internal/config"
	"particle-backdrop/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет кликабельную кнопку в UI.
type Button struct {
	Rect    image.Rectangle
	Text    string
	Active  bool
	Hovered bool
}

// Contains reports whether the pixel (x, y) is inside the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(screen *ebiten.Image, face font.Face) {
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())

	var bg color.Color = color.Transparent
	switch {
	case b.Hovered:
		bg = config.ButtonHoverColor
	case b.Active:
		bg = config.ButtonActiveColor
	}
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)

	border := config.ButtonBorderColor
	if !b.Active && !b.Hovered {
		border = render.DarkenColor(border)
	}
	vector.StrokeRect(screen, x, y, w, h, 1, border, true)

	if face == nil {
		return
	}
	bounds := text.BoundString(face, b.Text)
	tx := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	ty := b.Rect.Min.Y + (b.Rect.Dy()+bounds.Dy())/2
	text.Draw(screen, b.Text, face, tx, ty, config.ButtonTextColor)
}
