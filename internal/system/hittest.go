// internal/system/hittest.go
package system

import (
	"math"

	"particle-backdrop/internal/config"
	"particle-backdrop/internal/scene"
	"particle-backdrop/internal/utils"
)

// Hit is a ray intersection with a field point.
type Hit struct {
	Point    utils.Vec3 // world space, on the ray
	Index    int        // index of the field point
	Distance float64    // from the camera
}

// HitTester finds the field point under a click.
type HitTester struct {
	Threshold float64 // world units
}

func NewHitTester() *HitTester {
	return &HitTester{Threshold: config.RaycastThreshold}
}

// TestClick casts a ray through the pixel (x, y) and returns the nearest field
// point within Threshold of it. A nil or empty field is never hit.
func (h *HitTester) TestClick(x, y float64, vp scene.Viewport, cam *scene.Camera, field *ParticleField) (Hit, bool) {
	if field == nil || field.Points == nil || len(field.Points.Positions) == 0 || !vp.Valid() || cam == nil {
		return Hit{}, false
	}

	world := cam.RayFromNDC(vp.NDC(x, y))
	m := field.Points.Matrix()
	local := world.Transform(m.Transpose())
	thresholdSq := h.Threshold * h.Threshold

	best := Hit{Distance: math.Inf(1), Index: -1}
	for i, p := range field.Points.Positions {
		closest := local.ClosestPoint(p)
		if closest.DistSq(p) >= thresholdSq {
			continue
		}
		point := m.MulVec(closest)
		dist := point.Sub(world.Origin).Len()
		if dist < cam.Near || dist > cam.Far {
			continue
		}
		if dist < best.Distance {
			best = Hit{Point: point, Index: i, Distance: dist}
		}
	}
	if best.Index < 0 {
		return Hit{}, false
	}
	return best, true
}
