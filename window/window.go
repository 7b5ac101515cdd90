// Package window renders the particle field in a desktop window using ebiten.
// Ebiten's game loop acts as the frame pacer: every Update fires the
// pending animation iteration and Draw paints the recorded frame.
package window

import (
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/esimov/ascii-particles/config"
	"github.com/esimov/ascii-particles/input"
	"github.com/esimov/ascii-particles/loop"
	"github.com/esimov/ascii-particles/particle"
	"github.com/esimov/ascii-particles/surface"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var background = color.RGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0xff}

// Game implements ebiten.Game.
type Game struct {
	params config.Params
	logger *log.Logger

	w, h   int
	px, py int

	list    surface.List
	manager *surface.Manager
	system  *particle.System
	router  *input.Router
	queue   loop.Queue
	loop    *loop.Loop
	rnd     *rand.Rand
	feed    <-chan input.Event
}

// New creates the game for a w x h window. Events from feed are applied on every tick.
func New(p config.Params, w, h int, feed <-chan input.Event, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.Default()
	}
	g := &Game{
		params: p,
		logger: logger,
		w:      w,
		h:      h,
		px:     -1,
		py:     -1,
		rnd:    rand.New(rand.NewSource(time.Now().UnixNano())),
		feed:   feed,
	}

	var err error
	g.manager, err = surface.NewManager(&g.list, surface.ViewportFunc(func() (int, int) { return g.w, g.h }))
	if err != nil {
		return nil, err
	}
	g.system, err = particle.NewSystem(g.manager, particle.WithLimit(p.Limit))
	if err != nil {
		return nil, err
	}
	g.router = input.NewRouter(g.system, g.manager.Size,
		input.NewGate(p.Pointer, g.rnd),
		input.NewGate(p.Scroll, g.rnd),
	)
	if g.loop, err = loop.New(&g.queue, g.frame); err != nil {
		return nil, err
	}
	g.loop.Start()

	return g, nil
}

// Update reads the input and fires the pending animation iteration.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		g.logger.Printf("exiting after %d frames", g.loop.Frames())
		return ebiten.Termination
	}

	if ebiten.IsFocused() {
		g.loop.Resume()
	} else {
		g.loop.Pause()
	}

	if x, y := ebiten.CursorPosition(); x != g.px || y != g.py {
		g.px, g.py = x, y
		g.router.Route(input.Event{Kind: input.Move, X: float64(x), Y: float64(y)})
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		g.router.Route(input.Event{Kind: input.Scroll})
	}
	g.drain()
	g.queue.Fire()

	return nil
}

func (g *Game) drain() {
	for {
		select {
		case ev, ok := <-g.feed:
			if !ok {
				g.feed = nil
				return
			}
			g.router.Route(ev)
		default:
			return
		}
	}
}

func (g *Game) frame() {
	if g.params.Ambient > 0 && g.rnd.Float64() < g.params.Ambient {
		g.system.Spawn()
	}
	g.system.Frame()
}

// Draw paints the circles recorded by the last frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.list.Replay(painter{screen})
	if g.params.HUD {
		hud := fmt.Sprintf("particles: %d  fps: %0.1f", g.system.Len(), ebiten.ActualFPS())
		text.Draw(screen, hud, basicfont.Face7x13, 8, 16, color.White)
	}
}

// Layout keeps the surface in sync with the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.w || outsideHeight != g.h {
		g.w, g.h = outsideWidth, outsideHeight
		g.manager.Resize()
		g.logger.Printf("resize %dx%d", g.w, g.h)
	}
	return outsideWidth, outsideHeight
}

// painter fills antialiased circles on an ebiten image.
type painter struct {
	dst *ebiten.Image
}

func (p painter) FillCircle(x, y, r float64, c color.RGBA, alpha float64) {
	clr := color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha * 0xff)}
	vector.DrawFilledCircle(p.dst, float32(x), float32(y), float32(r), clr, true)
}
