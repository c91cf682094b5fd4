// internal/ui/switcher.go
package ui

import (
	"image"

	"particle-backdrop/internal/config"
	"particle-backdrop/internal/defs"
	"particle-backdrop/internal/event"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// StyleSwitcher is the bottom-right panel with one button per style. Exactly
// one button is active: the style the field is currently drawn with.
type StyleSwitcher struct {
	Panel   image.Rectangle
	buttons []*Button
	names   []string
	active  string
	face    font.Face
}

// NewStyleSwitcher builds buttons in catalog order. face may be nil, in which
// case buttons use the minimum width and draw no labels.
func NewStyleSwitcher(names []string, active string, face font.Face) *StyleSwitcher {
	title := cases.Title(language.English)
	s := &StyleSwitcher{face: face, names: append([]string(nil), names...)}
	for _, name := range names {
		s.buttons = append(s.buttons, &Button{Text: title.String(name)})
	}
	s.SetActive(active)
	return s
}

// Layout anchors the panel to the bottom-right corner of a width×height surface.
func (s *StyleSwitcher) Layout(width, height int) {
	widths := make([]int, len(s.buttons))
	inner := 0
	for i, b := range s.buttons {
		w := config.SwitcherButtonW
		if s.face != nil {
			if tw := font.MeasureString(s.face, b.Text).Ceil() + 32; tw > w {
				w = tw
			}
		}
		widths[i] = w
		inner += w
	}
	if n := len(s.buttons); n > 1 {
		inner += (n - 1) * config.SwitcherGap
	}

	panelW := inner + 2*config.SwitcherPadding
	panelH := config.SwitcherButtonH + 2*config.SwitcherPadding
	maxX := width - config.SwitcherMargin
	maxY := height - config.SwitcherMargin
	s.Panel = image.Rect(maxX-panelW, maxY-panelH, maxX, maxY)

	x := s.Panel.Min.X + config.SwitcherPadding
	y := s.Panel.Min.Y + config.SwitcherPadding
	for i, b := range s.buttons {
		b.Rect = image.Rect(x, y, x+widths[i], y+config.SwitcherButtonH)
		x += widths[i] + config.SwitcherGap
	}
}

// Contains reports whether (x, y) falls on the panel, so the click is not
// passed on to the field.
func (s *StyleSwitcher) Contains(x, y int) bool {
	return image.Pt(x, y).In(s.Panel)
}

// HitTest returns the style whose button is under (x, y).
func (s *StyleSwitcher) HitTest(x, y int) (string, bool) {
	for i, b := range s.buttons {
		if b.Contains(x, y) {
			return s.names[i], true
		}
	}
	return "", false
}

// Hover updates hover highlight for the cursor at (x, y).
func (s *StyleSwitcher) Hover(x, y int) {
	for _, b := range s.buttons {
		b.Hovered = b.Contains(x, y)
	}
}

// SetActive highlights name and clears every other button. Unknown names
// leave the highlight unchanged.
func (s *StyleSwitcher) SetActive(name string) {
	found := false
	for _, n := range s.names {
		if n == name {
			found = true
			break
		}
	}
	if !found {
		return
	}
	s.active = name
	for i, b := range s.buttons {
		b.Active = s.names[i] == name
	}
}

func (s *StyleSwitcher) Active() string {
	return s.active
}

func (s *StyleSwitcher) Buttons() []*Button {
	return s.buttons
}

// OnEvent follows StyleChanged so the highlight matches the drawn field.
func (s *StyleSwitcher) OnEvent(e event.Event) {
	if e.Type != event.StyleChanged {
		return
	}
	if style, ok := e.Data.(defs.Style); ok {
		s.SetActive(style.Name)
	}
}

func (s *StyleSwitcher) Draw(screen *ebiten.Image) {
	x, y := float32(s.Panel.Min.X), float32(s.Panel.Min.Y)
	w, h := float32(s.Panel.Dx()), float32(s.Panel.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, config.SwitcherPanelColor, true)
	vector.StrokeRect(screen, x, y, w, h, 1, config.SwitcherBorderColor, true)
	for _, b := range s.buttons {
		b.Draw(screen, s.face)
	}
}
