package scene

import "particle-backdrop/internal/utils"

// Ray is a half-line; Dir is unit length.
type Ray struct {
	Origin utils.Vec3
	Dir    utils.Vec3
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float64) utils.Vec3 {
	return r.Origin.Add(r.Dir.Scale(t))
}

// ClosestPoint returns the ray point nearest to p. Points behind the origin
// map to the origin.
func (r Ray) ClosestPoint(p utils.Vec3) utils.Vec3 {
	t := p.Sub(r.Origin).Dot(r.Dir)
	if t < 0 {
		return r.Origin
	}
	return r.At(t)
}

func (r Ray) DistanceSqToPoint(p utils.Vec3) float64 {
	return r.ClosestPoint(p).DistSq(p)
}

// Transform applies a rotation to origin and direction.
func (r Ray) Transform(m utils.Mat3) Ray {
	return Ray{Origin: m.MulVec(r.Origin), Dir: m.MulVec(r.Dir)}
}
