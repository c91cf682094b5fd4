// internal/scene/points.go
package scene

import (
	"particle-backdrop/internal/defs"
	"particle-backdrop/internal/utils"
)

type BlendMode int

const (
	BlendNormal BlendMode = iota
	BlendAdditive
)

// Points is a renderable point cloud: positions in local space plus an (x, y)
// rotation applied around the origin.
type Points struct {
	Positions []utils.Vec3
	Size      float64
	Color     defs.RGB
	Opacity   float64
	Blend     BlendMode
	RotationX float64
	RotationY float64

	disposed bool
}

func NewPoints(positions []utils.Vec3, size float64, color defs.RGB, opacity float64) *Points {
	return &Points{
		Positions: positions,
		Size:      size,
		Color:     color,
		Opacity:   opacity,
		Blend:     BlendAdditive,
	}
}

// Matrix returns the local-to-world rotation.
func (p *Points) Matrix() utils.Mat3 {
	return utils.EulerXY(p.RotationX, p.RotationY)
}

// Dispose releases the position buffer. A disposed cloud draws nothing.
func (p *Points) Dispose() {
	p.Positions = nil
	p.disposed = true
}

func (p *Points) Disposed() bool {
	return p.disposed
}
