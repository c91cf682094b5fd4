// internal/state/scheduler.go
package state

import (
	"time"

	"particle-backdrop/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
)

// Resizer is notified when the window's logical size changes.
type Resizer interface {
	Resize(width, height int)
}

// FrameScheduler drives a frame function from ebiten's update loop: input is
// handled by the state machine, then the frame runs, once per tick.
type FrameScheduler struct {
	sm       *StateMachine
	frame    func() error
	resizer  Resizer
	width    int
	height   int
	lastTick time.Time
}

func NewFrameScheduler(sm *StateMachine, resizer Resizer) *FrameScheduler {
	return &FrameScheduler{sm: sm, resizer: resizer}
}

// Run blocks until the window closes or frame fails.
func (s *FrameScheduler) Run(frame func() error) error {
	s.frame = frame
	s.lastTick = time.Now()
	ebiten.SetTPS(config.TPS)
	return ebiten.RunGame(s)
}

func (s *FrameScheduler) Update() error {
	now := time.Now()
	deltaTime := now.Sub(s.lastTick).Seconds()
	s.lastTick = now
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	s.sm.Update(deltaTime)
	if s.frame == nil {
		return nil
	}
	return s.frame()
}

func (s *FrameScheduler) Draw(screen *ebiten.Image) {
	s.sm.Draw(screen)
}

func (s *FrameScheduler) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != s.width || outsideHeight != s.height {
		s.width, s.height = outsideWidth, outsideHeight
		if s.resizer != nil {
			s.resizer.Resize(outsideWidth, outsideHeight)
		}
	}
	return outsideWidth, outsideHeight
}
