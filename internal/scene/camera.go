// internal/scene/camera.go
package scene

import (
	"math"

	"particle-backdrop/internal/utils"
)

// Viewport is the drawable surface size in pixels.
type Viewport struct {
	Width, Height float64
}

// NDC maps a pixel position to normalized device coordinates, y up.
func (v Viewport) NDC(x, y float64) (float64, float64) {
	return x/v.Width*2 - 1, -(y/v.Height)*2 + 1
}

func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// Camera is a perspective camera looking down -Z from Position.
type Camera struct {
	Fov      float64 // vertical, degrees
	Aspect   float64
	Near     float64
	Far      float64
	Position utils.Vec3

	tanHalf float64
}

func NewPerspectiveCamera(fov, aspect, near, far float64) *Camera {
	c := &Camera{Fov: fov, Aspect: aspect, Near: near, Far: far}
	c.UpdateProjection()
	return c
}

// UpdateProjection must be called after Fov changes.
func (c *Camera) UpdateProjection() {
	c.tanHalf = math.Tan(utils.Deg2Rad(c.Fov) / 2)
}

func (c *Camera) SetAspect(aspect float64) {
	if aspect > 0 {
		c.Aspect = aspect
	}
}

// RayFromNDC returns the ray from the camera through an NDC point.
func (c *Camera) RayFromNDC(x, y float64) Ray {
	dir := utils.V3(x*c.tanHalf*c.Aspect, y*c.tanHalf, -1)
	return Ray{Origin: c.Position, Dir: dir.Normalize()}
}

// Project maps a world point to pixel coordinates. depth is the distance in
// front of the camera; ok is false outside [Near, Far].
func (c *Camera) Project(p utils.Vec3, vp Viewport) (sx, sy, depth float64, ok bool) {
	v := p.Sub(c.Position)
	depth = -v[2]
	if depth < c.Near || depth > c.Far {
		return 0, 0, depth, false
	}
	nx := v[0] / depth / (c.tanHalf * c.Aspect)
	ny := v[1] / depth / c.tanHalf
	sx = (nx + 1) / 2 * vp.Width
	sy = (1 - ny) / 2 * vp.Height
	return sx, sy, depth, true
}

// PointScale is the pixel size of a unit point at depth 1.
func (c *Camera) PointScale(vp Viewport) float64 {
	return vp.Height / 2
}
