// internal/app/scheduler.go
package app

// Scheduler calls frame once per animation frame until it stops or frame
// returns an error.
type Scheduler interface {
	Run(frame func() error) error
}

// StepScheduler runs a fixed number of frames back to back. Frames <= 0 runs
// nothing.
type StepScheduler struct {
	Frames int
}

func (s StepScheduler) Run(frame func() error) error {
	for i := 0; i < s.Frames; i++ {
		if err := frame(); err != nil {
			return err
		}
	}
	return nil
}
