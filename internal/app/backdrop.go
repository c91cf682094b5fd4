// internal/app/backdrop.go
package app

import (
	"errors"
	"fmt"
	"log"

	"particle-backdrop/internal/config"
	"particle-backdrop/internal/defs"
	"particle-backdrop/internal/event"
	"particle-backdrop/internal/scene"
	"particle-backdrop/internal/system"
	"particle-backdrop/internal/utils"
)

var (
	ErrNoSurface      = errors.New("no drawable surface")
	ErrNotInitialized = errors.New("backdrop not initialized")
	ErrStopped        = errors.New("render loop stopped")
)

// Renderer is the drawable surface the loop issues one draw to per frame.
type Renderer interface {
	Render(sc *scene.Scene, cam *scene.Camera)
	Resize(width, height int)
}

// LoopState is the render loop's lifecycle state.
type LoopState int

const (
	Stopped LoopState = iota
	Running
)

func (s LoopState) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// Options configure a Backdrop.
type Options struct {
	Catalog      *defs.Catalog
	InitialStyle string
	Renderer     Renderer
	Rand         utils.RandSource
	Dispatcher   *event.Dispatcher
}

type click struct {
	x, y float64
}

// Backdrop is the session object: it owns the scene, the camera and every
// system, and advances them one Tick at a time. Input methods only record
// state; Tick is the only place the field and explosions change.
type Backdrop struct {
	Catalog    *defs.Catalog
	Scene      *scene.Scene
	Camera     *scene.Camera
	Fields     *system.FieldSystem
	Explosions *system.ExplosionSystem
	Pointer    *system.PointerTracker
	Hits       *system.HitTester
	Dispatcher *event.Dispatcher

	renderer     Renderer
	viewport     scene.Viewport
	state        LoopState
	initialized  bool
	initialStyle string
	pendingStyle string
	clicks       []click
	frames       uint64
}

// NewBackdrop wires the systems. Nothing is drawn before Init.
func NewBackdrop(opts Options) *Backdrop {
	if opts.Catalog == nil {
		opts.Catalog = defs.DefaultCatalog()
	}
	if opts.InitialStyle == "" {
		opts.InitialStyle = config.DefaultStyle
	}
	if opts.Rand == nil {
		opts.Rand = utils.NewPRNGService(0)
	}
	if opts.Dispatcher == nil {
		opts.Dispatcher = event.NewDispatcher()
	}
	sc := scene.New()
	return &Backdrop{
		Catalog:      opts.Catalog,
		Scene:        sc,
		Fields:       system.NewFieldSystem(sc, opts.Rand),
		Explosions:   system.NewExplosionSystem(sc, opts.Rand),
		Hits:         system.NewHitTester(),
		Dispatcher:   opts.Dispatcher,
		renderer:     opts.Renderer,
		initialStyle: opts.InitialStyle,
	}
}

// Init sets up the camera, the pointer reference and the first field.
func (b *Backdrop) Init(width, height int) error {
	if b.renderer == nil || width <= 0 || height <= 0 {
		return ErrNoSurface
	}
	style, err := b.Catalog.Get(b.initialStyle)
	if err != nil {
		return fmt.Errorf("initial style: %w", err)
	}

	b.viewport = scene.Viewport{Width: float64(width), Height: float64(height)}
	b.Camera = scene.NewPerspectiveCamera(config.CameraFov, b.viewport.Width/b.viewport.Height, config.CameraNear, config.CameraFar)
	b.Camera.Position = utils.V3(0, 0, config.CameraZ)
	b.Pointer = system.NewPointerTracker(b.viewport.Width, b.viewport.Height)
	b.renderer.Resize(width, height)

	b.Fields.Replace(style)
	b.initialized = true
	b.Dispatcher.Dispatch(event.Event{Type: event.StyleChanged, Data: style})
	return nil
}

func (b *Backdrop) Initialized() bool {
	return b.initialized
}

// Start moves the loop to Running.
func (b *Backdrop) Start() error {
	if !b.initialized {
		return ErrNotInitialized
	}
	b.state = Running
	return nil
}

func (b *Backdrop) Stop() {
	b.state = Stopped
}

func (b *Backdrop) State() LoopState {
	return b.state
}

// Run starts the loop and hands Tick to the scheduler until it returns.
func (b *Backdrop) Run(s Scheduler) error {
	if err := b.Start(); err != nil {
		return err
	}
	defer b.Stop()
	return s.Run(b.Tick)
}

// Frames returns the number of completed ticks.
func (b *Backdrop) Frames() uint64 {
	return b.frames
}

// ActiveStyle returns the style of the field currently drawn.
func (b *Backdrop) ActiveStyle() (defs.Style, bool) {
	f := b.Fields.Active()
	if f == nil {
		return defs.Style{}, false
	}
	return f.Style, true
}

func (b *Backdrop) Viewport() scene.Viewport {
	return b.viewport
}

// RequestStyle records a style switch to apply on the next tick. Unknown names
// are refused immediately and leave the current field in place.
func (b *Backdrop) RequestStyle(name string) error {
	if _, err := b.Catalog.Get(name); err != nil {
		b.Dispatcher.Dispatch(event.Event{Type: event.StyleRejected, Data: err})
		return err
	}
	b.pendingStyle = name
	return nil
}

func (b *Backdrop) PointerMove(x, y float64) {
	if !b.initialized {
		return
	}
	b.Pointer.OnMove(x, y)
}

func (b *Backdrop) Touch(touches []system.TouchPoint) {
	if !b.initialized {
		return
	}
	b.Pointer.OnTouch(touches)
}

// Click queues a hit test for the next tick.
func (b *Backdrop) Click(x, y float64) {
	if !b.initialized {
		return
	}
	b.clicks = append(b.clicks, click{x: x, y: y})
}

// PendingClicks returns the number of clicks waiting for the next tick.
func (b *Backdrop) PendingClicks() int {
	return len(b.clicks)
}

// Resize re-fits camera, pointer reference and surface. Before Init it does nothing.
func (b *Backdrop) Resize(width, height int) {
	if !b.initialized || width <= 0 || height <= 0 {
		return
	}
	b.viewport = scene.Viewport{Width: float64(width), Height: float64(height)}
	b.Camera.SetAspect(b.viewport.Width / b.viewport.Height)
	b.Pointer.OnResize(b.viewport.Width, b.viewport.Height)
	b.renderer.Resize(width, height)
}

// Tick runs one frame: pending input, rotation, explosions, draw.
func (b *Backdrop) Tick() error {
	if b.state != Running {
		return ErrStopped
	}

	// Clicks queued this frame belong to the field that was on screen.
	b.processClicks()
	b.applyPendingStyle()

	field := b.Fields.Active()
	b.Pointer.Target()
	speed := field.Style.RotationSpeed
	field.Rotate(speed, speed)
	field.Rotate(b.Pointer.Follow(field.Rotation()))

	b.Explosions.Advance()
	b.renderer.Render(b.Scene, b.Camera)
	b.frames++
	return nil
}

func (b *Backdrop) applyPendingStyle() {
	if b.pendingStyle == "" {
		return
	}
	name := b.pendingStyle
	b.pendingStyle = ""
	style, err := b.Catalog.Get(name)
	if err != nil {
		log.Printf("style switch refused: %v", err)
		return
	}
	b.Fields.Replace(style)
	b.Dispatcher.Dispatch(event.Event{Type: event.StyleChanged, Data: style})
}

func (b *Backdrop) processClicks() {
	if len(b.clicks) == 0 {
		return
	}
	field := b.Fields.Active()
	for _, c := range b.clicks {
		hit, ok := b.Hits.TestClick(c.x, c.y, b.viewport, b.Camera, field)
		if !ok {
			continue
		}
		b.Explosions.Spawn(hit.Point, field.Style.Color)
		b.Dispatcher.Dispatch(event.Event{Type: event.ExplosionSpawned, Data: hit})
	}
	b.clicks = b.clicks[:0]
}
