// internal/system/field.go
package system

import (
	"particle-backdrop/internal/config"
	"particle-backdrop/internal/defs"
	"particle-backdrop/internal/scene"
	"particle-backdrop/internal/utils"
)

// ParticleField — активное облако точек текущего стиля.
type ParticleField struct {
	Style  defs.Style
	Points *scene.Points
}

// Rotate adds to the field's angles; angles are not wrapped.
func (f *ParticleField) Rotate(dx, dy float64) {
	f.Points.RotationX += dx
	f.Points.RotationY += dy
}

func (f *ParticleField) Rotation() (float64, float64) {
	return f.Points.RotationX, f.Points.RotationY
}

// FieldSystem owns the single active field and its place in the scene.
type FieldSystem struct {
	scene  *scene.Scene
	rng    utils.RandSource
	active *ParticleField
}

func NewFieldSystem(sc *scene.Scene, rng utils.RandSource) *FieldSystem {
	return &FieldSystem{scene: sc, rng: rng}
}

// Create samples a new field for style without attaching it.
func (s *FieldSystem) Create(style defs.Style) *ParticleField {
	positions := make([]utils.Vec3, style.PointCount)
	for i := range positions {
		positions[i] = utils.V3(
			utils.FloatSpread(s.rng, style.Spread),
			utils.FloatSpread(s.rng, style.Spread),
			utils.FloatSpread(s.rng, style.Spread),
		)
	}
	return &ParticleField{
		Style:  style,
		Points: scene.NewPoints(positions, style.PointSize, style.Color, config.FieldOpacity),
	}
}

// Replace installs a field for style. The new field is built first and swapped
// into the old one's scene slot in a single step, then the old one is disposed.
func (s *FieldSystem) Replace(style defs.Style) *ParticleField {
	next := s.Create(style)
	var old *scene.Points
	if s.active != nil {
		old = s.active.Points
	}
	s.scene.Replace(old, next.Points)
	if old != nil {
		old.Dispose()
	}
	s.active = next
	return next
}

// Active returns the current field, or nil before the first Replace.
func (s *FieldSystem) Active() *ParticleField {
	return s.active
}
