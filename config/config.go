// Package config holds the runtime parameters shared by the particle field hosts.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/esimov/ascii-particles/input"
)

// Supported terminal backends.
const (
	BackendTermbox = "termbox"
	BackendTcell   = "tcell"
)

// Params defines the runtime configuration.
type Params struct {
	Backend string
	FPS     int
	Limit   int
	Address string
	Prefix  string
	Root    string
	LogFile string
	HUD     bool
	Pointer float64
	Scroll  float64
	Ambient float64
}

// Default returns the parameters used when no flag is given.
func Default() Params {
	return Params{
		Backend: BackendTermbox,
		FPS:     30,
		Limit:   4096,
		Prefix:  "/",
		Root:    ".",
		LogFile: "debug.log",
		Pointer: input.PointerThreshold,
		Scroll:  input.ScrollThreshold,
		Ambient: 0,
	}
}

// Parse populates the parameters from the command line arguments.
func Parse(name string, args []string) (Params, error) {
	p := Default()

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&p.Backend, "backend", p.Backend, "terminal backend (termbox|tcell); termbox only reports the pointer while a button is held")
	fs.IntVar(&p.FPS, "fps", p.FPS, "frames per second")
	fs.IntVar(&p.Limit, "limit", p.Limit, "maximum number of live particles (0 means unlimited)")
	fs.StringVar(&p.Address, "a", p.Address, "websocket feed address to serve (host:port), empty disables it")
	fs.StringVar(&p.Prefix, "p", p.Prefix, "prefix path under")
	fs.StringVar(&p.Root, "r", p.Root, "root path to serve")
	fs.StringVar(&p.LogFile, "log", p.LogFile, "debug log file")
	fs.BoolVar(&p.HUD, "hud", p.HUD, "show the particle counter")
	fs.Float64Var(&p.Pointer, "pointer", p.Pointer, "pointer move spawn threshold [0, 1]")
	fs.Float64Var(&p.Scroll, "scroll", p.Scroll, "scroll spawn threshold [0, 1]")
	fs.Float64Var(&p.Ambient, "ambient", p.Ambient, "chance per frame of a randomly placed particle [0, 1]")

	if err := fs.Parse(args); err != nil {
		return p, err
	}
	return p, p.Validate()
}

// Validate checks the parameters are usable.
func (p Params) Validate() error {
	switch p.Backend {
	case BackendTermbox, BackendTcell:
	default:
		return fmt.Errorf("config: unknown backend %q", p.Backend)
	}
	if p.FPS <= 0 {
		return errors.New("config: fps must be positive")
	}
	if p.Limit < 0 {
		return errors.New("config: limit cannot be negative")
	}
	for name, v := range map[string]float64{"pointer": p.Pointer, "scroll": p.Scroll, "ambient": p.Ambient} {
		if v < 0 || v > 1 {
			return fmt.Errorf("config: %s must be within [0, 1], got %v", name, v)
		}
	}
	return nil
}

// FrameInterval returns the time between two refreshes.
func (p Params) FrameInterval() time.Duration {
	return time.Second / time.Duration(p.FPS)
}
