// Package websocket serves a remote input feed: pointer, scroll and spawn
// events sent by websocket clients are decoded and forwarded to the host loop.
package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"path/filepath"

	"github.com/esimov/ascii-particles/input"
	"github.com/gorilla/websocket"
)

// HttpParams defines the address and the static files served next to the feed.
type HttpParams struct {
	Address string
	Prefix  string
	Root    string
}

// message is the JSON payload accepted on the feed.
// Coordinates are pointers so that an explicit 0 can be told apart from a missing value.
type message struct {
	Type   string   `json:"type"`
	X      *float64 `json:"x,omitempty"`
	Y      *float64 `json:"y,omitempty"`
	Offset float64  `json:"offset,omitempty"`
}

// reply is sent back to the client for every message.
type reply struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// ErrMissingCoordinates is returned for messages which need, but lack, a position.
var ErrMissingCoordinates = errors.New("websocket: both x and y are required")

// A server application calls the Upgrade method from an HTTP request handler to initiate a connection
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server forwards the events received over websocket connections.
type Server struct {
	params HttpParams
	events chan input.Event
	logger *log.Logger
	srv    *http.Server
}

// NewServer creates a feed server. Up to backlog events are buffered;
// once the buffer is full new events are dropped.
func NewServer(p HttpParams, backlog int, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if backlog <= 0 {
		backlog = 1
	}
	return &Server{
		params: p,
		events: make(chan input.Event, backlog),
		logger: logger,
		srv:    &http.Server{Addr: p.Address},
	}
}

// Events returns the channel the decoded events are delivered on.
func (s *Server) Events() <-chan input.Event {
	return s.events
}

// Handler returns the HTTP handler serving the static root and the /ws endpoint.
// Every request is logged.
func (s *Server) Handler() (http.Handler, error) {
	root, err := filepath.Abs(s.params.Root)
	if err != nil {
		return nil, err
	}
	prefix := s.params.Prefix
	if prefix == "" {
		prefix = "/"
	}

	mux := http.NewServeMux()
	mux.Handle(prefix, http.StripPrefix(prefix, http.FileServer(http.Dir(root))))
	mux.HandleFunc("/ws", s.wsHandler)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.logger.Print(r.RemoteAddr + " " + r.Method + " " + r.URL.String())
		mux.ServeHTTP(w, r)
	}), nil
}

// Listen binds the feed address and installs the handler. Failures such as
// a busy port are reported here, before anything is served.
func (s *Server) Listen() (net.Listener, error) {
	handler, err := s.Handler()
	if err != nil {
		return nil, err
	}
	s.srv.Handler = handler

	l, err := net.Listen("tcp", s.params.Address)
	if err != nil {
		return nil, fmt.Errorf("websocket: %w", err)
	}
	return l, nil
}

// Serve accepts connections on l until Shutdown is called.
func (s *Server) Serve(l net.Listener) error {
	s.logger.Printf("serving %s as %s on %s", s.params.Root, s.params.Prefix, l.Addr())

	err := s.srv.Serve(l)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// ListenAndServe serves the feed until Shutdown is called.
func (s *Server) ListenAndServe() error {
	l, err := s.Listen()
	if err != nil {
		return err
	}
	return s.Serve(l)
}

// Shutdown gracefully stops the server. A server shut down before
// serving refuses to serve afterwards.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// wsHandler defines the websocket connection endpoint
func (s *Server) wsHandler(w http.ResponseWriter, r *http.Request) {
	// Upgrade the http connection to a WebSocket connection
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		if _, ok := err.(websocket.HandshakeError); !ok {
			s.logger.Println(err)
		}
		return
	}
	go s.readSocket(conn)
}

// readSocket listen for new messages being sent to the websocket
func (s *Server) readSocket(conn *websocket.Conn) {
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.Printf("error: %v", err)
			}
			return
		}

		rep := reply{OK: true}
		ev, err := Decode(msg)
		if err != nil {
			s.logger.Printf("dropping message %q: %v", msg, err)
			rep = reply{Error: err.Error()}
		} else if !s.forward(ev) {
			rep = reply{Error: "feed is full"}
		}

		if err := conn.WriteJSON(rep); err != nil {
			s.logger.Println(err)
			return
		}
	}
}

func (s *Server) forward(ev input.Event) bool {
	select {
	case s.events <- ev:
		return true
	default:
		s.logger.Printf("feed is full, dropping %v event", ev.Kind)
		return false
	}
}

// Decode converts a feed message into an input event.
func Decode(msg []byte) (input.Event, error) {
	var m message
	if err := json.Unmarshal(msg, &m); err != nil {
		return input.Event{}, fmt.Errorf("websocket: malformed message: %w", err)
	}

	switch m.Type {
	case "move":
		if m.X == nil || m.Y == nil {
			return input.Event{}, ErrMissingCoordinates
		}
		return input.Event{Kind: input.Move, X: *m.X, Y: *m.Y}, nil
	case "scroll":
		return input.Event{Kind: input.Scroll, Offset: m.Offset}, nil
	case "spawn":
		switch {
		case m.X == nil && m.Y == nil:
			return input.Event{Kind: input.Spawn}, nil
		case m.X == nil || m.Y == nil:
			return input.Event{}, ErrMissingCoordinates
		}
		return input.Event{Kind: input.Spawn, X: *m.X, Y: *m.Y, At: true}, nil
	}
	return input.Event{}, fmt.Errorf("websocket: unknown message type %q", m.Type)
}
