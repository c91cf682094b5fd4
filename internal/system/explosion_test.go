package system

import (
	"math"
	"testing"

	"particle-backdrop/internal/defs"
	"particle-backdrop/internal/scene"
	"particle-backdrop/internal/utils"
)

func TestSpawnBurst(t *testing.T) {
	sc := scene.New()
	es := NewExplosionSystem(sc, utils.NewPRNGService(5))
	origin := utils.V3(1, -2, 3)
	e := es.Spawn(origin, 0xEC4899)

	if len(e.Points.Positions) != 50 || len(e.Velocities) != 50 {
		t.Fatalf("expected burst of 50, got %d/%d", len(e.Points.Positions), len(e.Velocities))
	}
	for i, p := range e.Points.Positions {
		if p != origin {
			t.Errorf("particle %d: expected start at %v, got %v", i, origin, p)
		}
		for axis := 0; axis < 3; axis++ {
			if v := e.Velocities[i][axis]; v < -0.1 || v > 0.1 {
				t.Errorf("particle %d: velocity %f outside [-0.1, 0.1]", i, v)
			}
		}
	}
	if e.Life != 1 || e.Points.Opacity != 1 || e.Color != 0xEC4899 {
		t.Errorf("unexpected initial explosion state: life %f opacity %f color %s", e.Life, e.Points.Opacity, e.Color)
	}
	if !sc.Contains(e.Points) || es.Len() != 1 {
		t.Errorf("expected explosion attached and active")
	}
}

func TestAdvanceDecaysLife(t *testing.T) {
	es := NewExplosionSystem(scene.New(), utils.NewPRNGService(5))
	early := es.Spawn(utils.Vec3{}, 0)
	for k := 1; k <= 30; k++ {
		es.Advance()
		want := math.Max(1-float64(k)*0.02, 0)
		if math.Abs(early.Life-want) > 1e-12 {
			t.Fatalf("after %d steps: expected life %f, got %f", k, want, early.Life)
		}
		if early.Points.Opacity != early.Life {
			t.Fatalf("expected opacity to track life")
		}
	}
	late := es.Spawn(utils.Vec3{}, 0)
	for k := 31; k <= 50; k++ {
		es.Advance()
	}
	if es.Len() != 1 || es.Active()[0] != late {
		t.Fatalf("expected only the later explosion to remain, got %d", es.Len())
	}
	if math.Abs(late.Life-0.6) > 1e-12 {
		t.Errorf("expected later explosion life 0.6, got %f", late.Life)
	}
}

func TestAdvanceNoDeadEntries(t *testing.T) {
	sc := scene.New()
	es := NewExplosionSystem(sc, utils.NewPRNGService(8))
	for i := 0; i < 10; i++ {
		es.Spawn(utils.Vec3{}, 0)
		es.Advance()
		es.Advance()
		es.Advance()
		for _, e := range es.Active() {
			if e.Life <= 0 {
				t.Fatalf("found explosion with life %f after frame", e.Life)
			}
		}
	}
	for i := 0; i < 60; i++ {
		es.Advance()
	}
	if es.Len() != 0 || sc.Len() != 0 {
		t.Errorf("expected all explosions removed, got %d active, %d in scene", es.Len(), sc.Len())
	}
}

func TestExplosionLifecycleEndToEnd(t *testing.T) {
	sc := scene.New()
	es := NewExplosionSystem(sc, utils.NewPRNGService(11))
	e := es.Spawn(utils.V3(0, 0, 0), defs.RGB(0xFFFFFF))
	velocities := append([]utils.Vec3(nil), e.Velocities...)

	for k := 0; k < 49; k++ {
		es.Advance()
	}
	if es.Len() != 1 {
		t.Fatalf("expected explosion alive after 49 steps")
	}
	for i, p := range e.Points.Positions {
		want := velocities[i].Scale(49)
		if p.DistSq(want) > 1e-20 {
			t.Errorf("particle %d: expected %v, got %v", i, want, p)
		}
	}
	last := append([]utils.Vec3(nil), e.Points.Positions...)

	es.Advance()
	if e.Life != 0 {
		t.Errorf("expected life 0 after 50 steps, got %g", e.Life)
	}
	if es.Len() != 0 || sc.Contains(e.Points) {
		t.Errorf("expected explosion removed after 50 steps")
	}
	if !e.Points.Disposed() {
		t.Errorf("expected explosion resources released")
	}
	for i := range last {
		final := last[i].Add(velocities[i])
		if want := velocities[i].Scale(50); final.DistSq(want) > 1e-20 {
			t.Errorf("particle %d: expected Euler sum %v, got %v", i, want, final)
		}
	}
}
