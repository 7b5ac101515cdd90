package main

import (
	"context"
	"log"
	"os"

	"github.com/esimov/ascii-particles/config"
	"github.com/esimov/ascii-particles/input"
	"github.com/esimov/ascii-particles/websocket"
	"github.com/esimov/ascii-particles/window"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	windowWidth  = 960
	windowHeight = 540
)

func main() {
	if err := run(); err != nil {
		log.Fatalln(err)
	}
}

func run() error {
	params, err := config.Parse(os.Args[0], os.Args[1:])
	if err != nil {
		return err
	}

	var feed <-chan input.Event
	if params.Address != "" {
		srv := websocket.NewServer(websocket.HttpParams{
			Address: params.Address,
			Prefix:  params.Prefix,
			Root:    params.Root,
		}, 256, nil)
		l, err := srv.Listen()
		if err != nil {
			return err
		}
		go func() {
			if err := srv.Serve(l); err != nil {
				log.Println(err)
			}
		}()
		defer srv.Shutdown(context.Background())
		feed = srv.Events()
	}

	game, err := window.New(params, windowWidth, windowHeight, feed, nil)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("particles")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(params.FPS)

	return ebiten.RunGame(game)
}
