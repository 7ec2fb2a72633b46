package server

import (
	"errors"
	"net"
	"sync/atomic"

	"github.com/Brownie44l1/minihttp/internal/request"
	"github.com/Brownie44l1/minihttp/internal/response"
)

// Handler answers one request on a connection
type Handler func(w *response.Writer, r *request.Request)

// Server accepts connections and hands each one to its own goroutine.
// Workers share nothing; the accept loop never waits for them.
type Server struct {
	config   Config
	handler  Handler
	Logger   Logger
	listener atomic.Pointer[net.Listener]
	closed   atomic.Bool
}

func New(config Config, handler Handler, logger Logger) *Server {
	if logger == nil {
		logger = &NullLogger{}
	}
	return &Server{
		config:  config,
		handler: handler,
		Logger:  logger,
	}
}

// Listen binds the configured port on all interfaces.
func (s *Server) Listen() (net.Listener, error) {
	if err := s.config.Validate(); err != nil {
		return nil, err
	}
	return net.Listen("tcp", s.config.Addr())
}

// Serve runs the accept loop on ln. A failed Accept is logged and the loop
// continues; it returns nil once Close has been called.
func (s *Server) Serve(ln net.Listener) error {
	s.listener.Store(&ln)
	if s.closed.Load() {
		return ln.Close()
	}

	for {
		conn, err := ln.Accept()
		if err != nil {
			if s.closed.Load() || errors.Is(err, net.ErrClosed) {
				return nil
			}
			s.Logger.Warn("accept failed", Field{"error", err})
			continue
		}

		go s.serveConn(conn)
	}
}

// Addr returns the listening address once Serve has started
func (s *Server) Addr() net.Addr {
	ln := s.listener.Load()
	if ln == nil {
		return nil
	}
	return (*ln).Addr()
}

// Close stops the accept loop. Workers already running finish on their own.
func (s *Server) Close() error {
	s.closed.Store(true)
	ln := s.listener.Load()
	if ln == nil {
		return nil
	}
	return (*ln).Close()
}
