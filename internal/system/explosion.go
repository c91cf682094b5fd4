// internal/system/explosion.go
package system

import (
	"particle-backdrop/internal/config"
	"particle-backdrop/internal/defs"
	"particle-backdrop/internal/scene"
	"particle-backdrop/internal/utils"
)

// Explosion — короткоживущий всплеск точек в месте клика.
type Explosion struct {
	Points     *scene.Points
	Velocities []utils.Vec3
	Life       float64
	Color      defs.RGB

	age int
}

// ExplosionSystem spawns explosions and advances them one frame at a time.
type ExplosionSystem struct {
	BurstSize      int
	VelocitySpread float64
	Decay          float64

	scene  *scene.Scene
	rng    utils.RandSource
	active []*Explosion
}

func NewExplosionSystem(sc *scene.Scene, rng utils.RandSource) *ExplosionSystem {
	return &ExplosionSystem{
		BurstSize:      config.ExplosionBurstSize,
		VelocitySpread: config.ExplosionVelocitySpread,
		Decay:          config.ExplosionDecay,
		scene:          sc,
		rng:            rng,
	}
}

// Spawn creates one burst at origin and attaches it to the scene.
func (s *ExplosionSystem) Spawn(origin utils.Vec3, color defs.RGB) *Explosion {
	positions := make([]utils.Vec3, s.BurstSize)
	velocities := make([]utils.Vec3, s.BurstSize)
	for i := range positions {
		positions[i] = origin
		velocities[i] = utils.V3(
			utils.FloatSpread(s.rng, s.VelocitySpread),
			utils.FloatSpread(s.rng, s.VelocitySpread),
			utils.FloatSpread(s.rng, s.VelocitySpread),
		)
	}
	e := &Explosion{
		Points:     scene.NewPoints(positions, config.ExplosionPointSize, color, config.ExplosionInitialLife),
		Velocities: velocities,
		Life:       config.ExplosionInitialLife,
		Color:      color,
	}
	s.scene.Add(e.Points)
	s.active = append(s.active, e)
	return e
}

// Advance moves every particle by its velocity and decays life by one step.
// Explosions whose life reaches zero are detached and disposed in the same pass.
func (s *ExplosionSystem) Advance() {
	for i := len(s.active) - 1; i >= 0; i-- {
		e := s.active[i]
		for j := range e.Points.Positions {
			e.Points.Positions[j] = e.Points.Positions[j].Add(e.Velocities[j])
		}

		e.age++
		// Life is derived from age so repeated subtraction cannot drift.
		e.Life = config.ExplosionInitialLife - float64(e.age)*s.Decay
		if e.Life < 0 {
			e.Life = 0
		}
		e.Points.Opacity = e.Life

		if e.Life <= 0 {
			s.scene.Remove(e.Points)
			e.Points.Dispose()
			s.active = append(s.active[:i], s.active[i+1:]...)
		}
	}
}

// Active returns the live explosions. The slice must not be modified.
func (s *ExplosionSystem) Active() []*Explosion {
	return s.active
}

func (s *ExplosionSystem) Len() int {
	return len(s.active)
}
