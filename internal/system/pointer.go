// internal/system/pointer.go
package system

import (
	"particle-backdrop/internal/config"
	"particle-backdrop/internal/utils"
)

// TouchPoint is one active touch in page coordinates.
type TouchPoint struct {
	X, Y float64
}

// PointerTracker turns pointer positions into a rotation target for the field.
type PointerTracker struct {
	RawX, RawY       float64 // offset from the window centre, pixels
	TargetX, TargetY float64

	Scale    float64
	Fraction float64

	halfW, halfH float64
}

func NewPointerTracker(width, height float64) *PointerTracker {
	p := &PointerTracker{
		Scale:    config.PointerScale,
		Fraction: config.FollowFraction,
	}
	p.OnResize(width, height)
	return p
}

func (p *PointerTracker) OnMove(x, y float64) {
	p.RawX = x - p.halfW
	p.RawY = y - p.halfH
}

// OnTouch follows a single touch; gestures with more fingers are ignored.
func (p *PointerTracker) OnTouch(touches []TouchPoint) {
	if len(touches) != 1 {
		return
	}
	p.OnMove(touches[0].X, touches[0].Y)
}

// OnResize must be called whenever the viewport changes size.
func (p *PointerTracker) OnResize(width, height float64) {
	p.halfW = width / 2
	p.halfH = height / 2
}

func (p *PointerTracker) Center() (float64, float64) {
	return p.halfW, p.halfH
}

// Target recomputes and returns the scaled rotation target.
func (p *PointerTracker) Target() (float64, float64) {
	p.TargetX = p.RawX * p.Scale
	p.TargetY = p.RawY * p.Scale
	return p.TargetX, p.TargetY
}

// Follow returns the damped rotation step for a field at (rx, ry).
// Vertical pointer offset tilts around X, horizontal around Y.
func (p *PointerTracker) Follow(rx, ry float64) (dx, dy float64) {
	return utils.Damp(rx, p.TargetY, p.Fraction), utils.Damp(ry, p.TargetX, p.Fraction)
}
