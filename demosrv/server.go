// Package demosrv is the embedded demo REST API the request screens talk to.
// It keeps its state in memory and listens on a loopback port so the app
// demonstrates real HTTP round trips without any external service.
package demosrv

import (
	"fmt"
	"log/slog"
	"net"
	"net/http"
)

// Server owns the loopback listener and the user store.
type Server struct {
	store *Store
	srv   *http.Server
	base  string
}

func NewServer() *Server {
	return &Server{store: NewStore()}
}

// Init binds a loopback listener on an ephemeral port and starts serving.
func (s *Server) Init() error {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return fmt.Errorf("demosrv: listen: %w", err)
	}
	s.base = fmt.Sprintf("http://%s", ln.Addr().String())
	s.srv = &http.Server{Handler: s.Router()}
	go func() {
		if err := s.srv.Serve(ln); err != nil && err != http.ErrServerClosed {
			slog.Error("demosrv: serve", "error", err)
		}
	}()
	slog.Info("demosrv: listening", "base_url", s.base)
	return nil
}

// BaseURL returns the address of the running server, e.g. "http://127.0.0.1:54211".
func (s *Server) BaseURL() string {
	return s.base
}

// Store exposes the backing store for test seeding and assertions.
func (s *Server) Store() *Store {
	return s.store
}

// Close stops the listener. In-flight requests are dropped; this runs only
// when the window is gone.
func (s *Server) Close() error {
	if s.srv == nil {
		return nil
	}
	return s.srv.Close()
}
