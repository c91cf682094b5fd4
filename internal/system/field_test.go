package system

import (
	"testing"

	"particle-backdrop/internal/defs"
	"particle-backdrop/internal/scene"
	"particle-backdrop/internal/utils"
)

func TestCreateMatchesStyle(t *testing.T) {
	catalog := defs.DefaultCatalog()
	fs := NewFieldSystem(scene.New(), utils.NewPRNGService(1))
	for _, name := range catalog.Names() {
		style, _ := catalog.Get(name)
		f := fs.Create(style)
		if len(f.Points.Positions) != style.PointCount {
			t.Errorf("%s: expected %d points, got %d", name, style.PointCount, len(f.Points.Positions))
		}
		half := style.Spread / 2
		for i, p := range f.Points.Positions {
			for axis := 0; axis < 3; axis++ {
				if p[axis] < -half || p[axis] > half {
					t.Fatalf("%s: point %d axis %d = %f outside [-%f, %f]", name, i, axis, p[axis], half, half)
				}
			}
		}
		if f.Points.Size != style.PointSize || f.Points.Color != style.Color {
			t.Errorf("%s: expected size %f color %s, got %f %s", name, style.PointSize, style.Color, f.Points.Size, f.Points.Color)
		}
		if f.Points.Opacity != 0.8 || f.Points.Blend != scene.BlendAdditive {
			t.Errorf("%s: expected opacity 0.8 additive, got %f %v", name, f.Points.Opacity, f.Points.Blend)
		}
	}
}

func TestCreateIsReproducible(t *testing.T) {
	style, _ := defs.DefaultCatalog().Get("stars")
	a := NewFieldSystem(scene.New(), utils.NewPRNGService(99)).Create(style)
	b := NewFieldSystem(scene.New(), utils.NewPRNGService(99)).Create(style)
	for i := range a.Points.Positions {
		if a.Points.Positions[i] != b.Points.Positions[i] {
			t.Fatalf("expected identical layouts at %d", i)
		}
	}
}

func TestReplaceTwiceLeavesOneField(t *testing.T) {
	catalog := defs.DefaultCatalog()
	a, _ := catalog.Get("particles")
	b, _ := catalog.Get("nebula")
	sc := scene.New()
	fs := NewFieldSystem(sc, utils.NewPRNGService(3))

	first := fs.Replace(a)
	second := fs.Replace(b)
	third := fs.Replace(a)

	if sc.Len() != 1 {
		t.Fatalf("expected exactly one object in the scene, got %d", sc.Len())
	}
	if !sc.Contains(third.Points) {
		t.Errorf("expected the last field to be attached")
	}
	if !first.Points.Disposed() || !second.Points.Disposed() {
		t.Errorf("expected replaced fields to be disposed")
	}
	if fs.Active() != third || fs.Active().Style != a {
		t.Errorf("expected active field with style %q, got %q", a.Name, fs.Active().Style.Name)
	}
	if len(third.Points.Positions) != a.PointCount {
		t.Errorf("expected %d points, got %d", a.PointCount, len(third.Points.Positions))
	}
}

func TestRotateAccumulates(t *testing.T) {
	style := defs.Style{Name: "dot", PointCount: 1, PointSize: 1, Spread: 1}
	f := NewFieldSystem(scene.New(), utils.NewPRNGService(1)).Create(style)
	f.Rotate(1, 2)
	f.Rotate(10, -20)
	x, y := f.Rotation()
	if x != 11 || y != -18 {
		t.Errorf("expected (11,-18), got (%f,%f)", x, y)
	}
}
