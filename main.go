package main

import (
	"context"
	"log"
	"os"

	"github.com/esimov/ascii-particles/config"
	"github.com/esimov/ascii-particles/input"
	"github.com/esimov/ascii-particles/terminal"
	"github.com/esimov/ascii-particles/websocket"
)

const feedBacklog = 256 // Number of remote events buffered before dropping

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

	logfile, err := os.OpenFile(params.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer logfile.Close()
	logger := log.New(logfile, "", log.LstdFlags)

	var feed <-chan input.Event
	if params.Address != "" {
		srv := websocket.NewServer(websocket.HttpParams{
			Address: params.Address,
			Prefix:  params.Prefix,
			Root:    params.Root,
		}, feedBacklog, logger)
		l, err := srv.Listen()
		if err != nil {
			return err
		}
		go func() {
			if err := srv.Serve(l); err != nil {
				logger.Println(err)
			}
		}()
		defer srv.Shutdown(context.Background())
		feed = srv.Events()
	}

	var backend terminal.Backend
	switch params.Backend {
	case config.BackendTcell:
		backend = terminal.NewTcell(nil)
	default:
		backend = terminal.NewTermbox()
	}

	term := terminal.New(backend, params, logfile)
	return term.Render(feed)
}
