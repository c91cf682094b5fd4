package scene

import (
	"math"
	"testing"

	"particle-backdrop/internal/utils"
)

func TestReplaceKeepsSingleSlot(t *testing.T) {
	s := New()
	a := NewPoints(nil, 1, 0, 1)
	b := NewPoints(nil, 1, 0, 1)
	c := NewPoints(nil, 1, 0, 1)
	s.Add(a)
	s.Add(c)
	s.Replace(a, b)
	if s.Len() != 2 {
		t.Fatalf("expected 2 objects, got %d", s.Len())
	}
	if s.Objects()[0] != b || s.Contains(a) {
		t.Errorf("expected b in a's slot and a detached")
	}
	s.Replace(nil, a)
	if !s.Contains(a) || s.Len() != 3 {
		t.Errorf("expected replace of nil to append")
	}
	if !s.Remove(a) || s.Remove(a) {
		t.Errorf("expected remove to succeed once")
	}
}

func TestAddIsIdempotent(t *testing.T) {
	s := New()
	p := NewPoints(nil, 1, 0, 1)
	s.Add(p)
	s.Add(p)
	if s.Len() != 1 {
		t.Errorf("expected 1 object, got %d", s.Len())
	}
}

func TestDispose(t *testing.T) {
	p := NewPoints([]utils.Vec3{{1, 2, 3}}, 1, 0, 1)
	p.Dispose()
	if !p.Disposed() || p.Positions != nil {
		t.Errorf("expected disposed cloud without positions")
	}
}

func TestRayThroughCenter(t *testing.T) {
	cam := NewPerspectiveCamera(75, 16.0/9, 0.1, 1000)
	cam.Position = utils.V3(0, 0, 5)
	vp := Viewport{Width: 1600, Height: 900}
	x, y := vp.NDC(800, 450)
	if x != 0 || y != 0 {
		t.Fatalf("expected NDC (0,0), got (%f,%f)", x, y)
	}
	r := cam.RayFromNDC(x, y)
	if r.Dir.DistSq(utils.V3(0, 0, -1)) > 1e-18 {
		t.Errorf("expected -Z direction, got %v", r.Dir)
	}
	if d := r.DistanceSqToPoint(utils.V3(0, 0, -100)); d > 1e-18 {
		t.Errorf("expected point on ray, got distance² %g", d)
	}
}

func TestNDCInvertsY(t *testing.T) {
	vp := Viewport{Width: 200, Height: 100}
	x, y := vp.NDC(0, 0)
	if x != -1 || y != 1 {
		t.Errorf("expected top-left (-1,1), got (%f,%f)", x, y)
	}
	x, y = vp.NDC(200, 100)
	if x != 1 || y != -1 {
		t.Errorf("expected bottom-right (1,-1), got (%f,%f)", x, y)
	}
}

func TestProjectRoundTrip(t *testing.T) {
	cam := NewPerspectiveCamera(75, 2, 0.1, 1000)
	cam.Position = utils.V3(0, 0, 5)
	vp := Viewport{Width: 800, Height: 400}
	ray := cam.RayFromNDC(vp.NDC(600, 100))
	p := ray.At(50)
	sx, sy, depth, ok := cam.Project(p, vp)
	if !ok {
		t.Fatalf("expected point to be visible")
	}
	if math.Abs(sx-600) > 1e-6 || math.Abs(sy-100) > 1e-6 {
		t.Errorf("expected (600,100), got (%f,%f)", sx, sy)
	}
	if depth <= 0 {
		t.Errorf("expected positive depth, got %f", depth)
	}
	if _, _, _, ok := cam.Project(utils.V3(0, 0, 10), vp); ok {
		t.Errorf("expected point behind camera to be culled")
	}
}

func TestClosestPointBehindOrigin(t *testing.T) {
	r := Ray{Origin: utils.V3(0, 0, 0), Dir: utils.V3(0, 0, -1)}
	if got := r.ClosestPoint(utils.V3(0, 3, 4)); got != r.Origin {
		t.Errorf("expected origin, got %v", got)
	}
}
