package terminal

import (
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/esimov/ascii-particles/config"
	"github.com/esimov/ascii-particles/input"
	"github.com/esimov/ascii-particles/loop"
	"github.com/esimov/ascii-particles/particle"
	"github.com/esimov/ascii-particles/surface"
)

// Backend abstracts the terminal library used to draw the cells and read the events.
type Backend interface {
	Init() error
	Close()
	Size() (w, h int)
	Clear()
	SetCell(x, y int, ch rune, fg color.RGBA)
	Flush() error
	PollEvent() input.Event
	Interrupt()
}

// Terminal renders the particle field in a terminal, one cell per surface pixel.
type Terminal struct {
	backend Backend
	params  config.Params
	logger  *log.Logger

	raster  *surface.Raster
	manager *surface.Manager
	system  *particle.System
	router  *input.Router
	queue   loop.Queue
	loop    *loop.Loop
	rnd     *rand.Rand
}

// New creates a terminal renderer. Debug messages are written to logw.
func New(b Backend, p config.Params, logw io.Writer) *Terminal {
	if logw == nil {
		logw = io.Discard
	}
	return &Terminal{
		backend: b,
		params:  p,
		logger:  log.New(logw, "", log.LstdFlags),
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// setup wires the surface, the particle system and the animation loop.
// The backend has to be initialized, since the surface size is read from it.
func (t *Terminal) setup() error {
	var err error

	t.raster = surface.NewRaster(color.RGBA{A: 0xff})
	t.manager, err = surface.NewManager(t.raster, surface.ViewportFunc(t.backend.Size))
	if err != nil {
		return err
	}
	t.system, err = particle.NewSystem(t.manager, particle.WithLimit(t.params.Limit))
	if err != nil {
		return err
	}
	t.router = input.NewRouter(t.system, t.manager.Size,
		input.NewGate(t.params.Pointer, t.rnd),
		input.NewGate(t.params.Scroll, t.rnd),
	)
	t.loop, err = loop.New(&t.queue, t.frame)

	return err
}

// Render runs the terminal main loop until Esc is pressed or the backend quits.
// Events coming from feed (e.g. a websocket) are handled on the same goroutine
// as the animation, so the particle system is never shared.
func (t *Terminal) Render(feed <-chan input.Event) error {
	if err := t.backend.Init(); err != nil {
		return err
	}
	defer t.backend.Close()

	if err := t.setup(); err != nil {
		return err
	}

	events := make(chan input.Event, 64)
	done := make(chan struct{})
	defer func() {
		close(done)
		// termbox blocks the interrupt until somebody polls.
		go t.backend.Interrupt()
	}()
	go t.poll(events, done)

	ticker := time.NewTicker(t.params.FrameInterval())
	defer ticker.Stop()

	t.loop.Start()

mainloop:
	for {
		select {
		case ev := <-events:
			if !t.handle(ev) {
				break mainloop
			}
		case ev, ok := <-feed:
			if !ok {
				feed = nil
				continue
			}
			t.handle(ev)
		case <-ticker.C:
			t.queue.Fire()
		}
	}
	t.logger.Printf("exiting after %d frames", t.loop.Frames())

	return nil
}

func (t *Terminal) poll(events chan<- input.Event, done <-chan struct{}) {
	for {
		ev := t.backend.PollEvent()
		if ev.Kind == input.None {
			select {
			case <-done:
				return
			default:
				continue
			}
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// handle applies an event and reports whether the main loop should keep going.
func (t *Terminal) handle(ev input.Event) bool {
	switch ev.Kind {
	case input.Quit:
		return false
	case input.Resize:
		t.manager.Resize()
		w, h := t.manager.Size()
		t.logger.Printf("resize %dx%d", w, h)
	case input.Focus:
		t.loop.Resume()
	case input.Blur:
		t.loop.Pause()
	default:
		if t.router.Route(ev) {
			t.log(ev)
		}
	}
	return true
}

// frame is a single animation iteration.
func (t *Terminal) frame() {
	if t.params.Ambient > 0 && t.rnd.Float64() < t.params.Ambient {
		t.system.Spawn()
	}
	t.system.Frame()
	t.present()
}

// present copies the raster into the terminal cells.
func (t *Terminal) present() {
	t.backend.Clear()
	bg := t.raster.Background()
	w, h := t.raster.Size()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := t.raster.RGBAAt(x, y)
			if c == bg {
				continue
			}
			t.backend.SetCell(x, y, glyph(c, bg), c)
		}
	}
	if t.params.HUD {
		t.text(0, 0, hud(t.system.Len(), t.loop.Frames()))
	}
	if err := t.backend.Flush(); err != nil {
		t.logger.Println(err)
	}
}

func (t *Terminal) text(x, y int, s string) {
	white := color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	for i, r := range []rune(s) {
		t.backend.SetCell(x+i, y, r, white)
	}
}

func (t *Terminal) log(ev input.Event) {
	switch ev.Kind {
	case input.Move:
		t.logger.Printf("X:%d \t Y:%d", int(ev.X), int(ev.Y))
	default:
		t.logger.Printf("%v event", ev.Kind)
	}
}
