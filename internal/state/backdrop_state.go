// internal/state/backdrop_state.go
package state

import (
	"context"
	"log"

	"particle-backdrop/internal/app"
	"particle-backdrop/internal/capture"
	"particle-backdrop/internal/chat"
	"particle-backdrop/internal/config"
	"particle-backdrop/internal/event"
	"particle-backdrop/internal/system"
	"particle-backdrop/internal/ui"
	"particle-backdrop/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// styleKeys select styles by catalog position.
var styleKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// Убеждаемся, что BackdropState соответствует интерфейсу State
var _ State = (*BackdropState)(nil)

// BackdropState maps window input to the backdrop session and draws its frame
// with the overlays on top.
type BackdropState struct {
	backdrop   *app.Backdrop
	renderer   *render.PointRenderer
	switcher   *ui.StyleSwitcher
	transcript *ui.Transcript
	relay      *chat.Relay
	recorder   *capture.Recorder
	dispatcher *event.Dispatcher

	ctx            context.Context
	cancel         context.CancelFunc
	cursorSeen     bool
	lastCursorX    int
	lastCursorY    int
	capturePending bool
	pixels         []byte
}

func NewBackdropState(b *app.Backdrop, r *render.PointRenderer, s *ui.StyleSwitcher, t *ui.Transcript, relay *chat.Relay, rec *capture.Recorder) *BackdropState {
	ctx, cancel := context.WithCancel(context.Background())
	return &BackdropState{
		backdrop:   b,
		renderer:   r,
		switcher:   s,
		transcript: t,
		relay:      relay,
		recorder:   rec,
		dispatcher: b.Dispatcher,
		ctx:        ctx,
		cancel:     cancel,
	}
}

func (g *BackdropState) Enter() {
	g.dispatcher.Subscribe(event.StyleChanged, g.switcher)
	if style, ok := g.backdrop.ActiveStyle(); ok {
		g.switcher.SetActive(style.Name)
	}
}

func (g *BackdropState) Exit() {
	g.dispatcher.Unsubscribe(event.StyleChanged, g.switcher)
	g.cancel()
	g.backdrop.Stop()
}

// Resize is called from Layout whenever the window size changes.
func (g *BackdropState) Resize(width, height int) {
	g.backdrop.Resize(width, height)
	g.switcher.Layout(width, height)
}

func (g *BackdropState) Update(deltaTime float64) {
	g.handlePointer()
	g.handleClicks()
	g.handleKeys()

	if g.relay != nil {
		for _, msg := range g.relay.Drain() {
			g.transcript.Add(msg.String())
			g.dispatcher.Dispatch(event.Event{Type: event.ChatMessage, Data: msg})
		}
	}
	if g.recorder != nil {
		for _, res := range g.recorder.Poll() {
			if res.Err != nil {
				log.Printf("capture failed: %v", res.Err)
				continue
			}
			g.dispatcher.Dispatch(event.Event{Type: event.FrameCaptured, Data: res.Path})
		}
	}
}

func (g *BackdropState) handlePointer() {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		touches := make([]system.TouchPoint, 0, len(touchIDs))
		for _, id := range touchIDs {
			x, y := ebiten.TouchPosition(id)
			touches = append(touches, system.TouchPoint{X: float64(x), Y: float64(y)})
		}
		g.backdrop.Touch(touches)
		return
	}

	g.moveCursor(ebiten.CursorPosition())
}

// moveCursor forwards the cursor only when it moved, so a stale position cannot
// override the last touch. The first reading just sets the reference: until the
// cursor moves the pointer offset stays at zero.
func (g *BackdropState) moveCursor(x, y int) {
	if !g.cursorSeen {
		g.cursorSeen = true
		g.lastCursorX, g.lastCursorY = x, y
		return
	}
	if x == g.lastCursorX && y == g.lastCursorY {
		return
	}
	g.lastCursorX, g.lastCursorY = x, y
	g.switcher.Hover(x, y)
	g.backdrop.PointerMove(float64(x), float64(y))
}

func (g *BackdropState) handleClicks() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.click(x, y)
	}
	if id, ok := tapTouch(inpututil.AppendJustPressedTouchIDs(nil), ebiten.AppendTouchIDs(nil)); ok {
		x, y := ebiten.TouchPosition(id)
		g.click(x, y)
	}
}

// tapTouch returns the touch that counts as a click this tick. A press only
// counts while it is the single finger on the surface.
func tapTouch(justPressed, active []ebiten.TouchID) (ebiten.TouchID, bool) {
	if len(active) != 1 || len(justPressed) != 1 || justPressed[0] != active[0] {
		return 0, false
	}
	return justPressed[0], true
}

// click routes a press to the switcher when it lands on the panel, otherwise
// to the field hit test.
func (g *BackdropState) click(x, y int) {
	if g.switcher.Contains(x, y) {
		if name, ok := g.switcher.HitTest(x, y); ok {
			if err := g.backdrop.RequestStyle(name); err != nil {
				log.Printf("style switch refused: %v", err)
			}
		}
		return
	}
	g.backdrop.Click(float64(x), float64(y))
}

func (g *BackdropState) handleKeys() {
	if g.relay != nil && inpututil.IsKeyJustPressed(ebiten.KeyT) {
		if !g.relay.Talk(g.ctx) {
			log.Println("chat: exchange already in progress")
		}
	}
	if g.recorder != nil && inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		g.capturePending = true
	}
	for i, key := range styleKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.selectStyleAt(i)
		}
	}
}

// selectStyleAt requests the style at catalog position i, if there is one.
func (g *BackdropState) selectStyleAt(i int) {
	names := g.backdrop.Catalog.Names()
	if i < 0 || i >= len(names) {
		return
	}
	if err := g.backdrop.RequestStyle(names[i]); err != nil {
		log.Printf("style switch refused: %v", err)
	}
}

func (g *BackdropState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	frame := g.renderer.Frame()
	if frame != nil {
		screen.DrawImage(frame, nil)
		if g.capturePending {
			g.captureFrame(frame)
		}
	}
	g.transcript.Draw(screen)
	g.switcher.Draw(screen)
}

func (g *BackdropState) captureFrame(frame *ebiten.Image) {
	g.capturePending = false
	b := frame.Bounds()
	if n := 4 * b.Dx() * b.Dy(); len(g.pixels) != n {
		g.pixels = make([]byte, n)
	}
	frame.ReadPixels(g.pixels)
	path := g.recorder.Save(g.pixels, b.Dx(), b.Dy())
	log.Printf("capturing frame to %s", path)
}
