package server

import (
	"net"
	"runtime/debug"

	"github.com/Brownie44l1/minihttp/internal/request"
	"github.com/Brownie44l1/minihttp/internal/response"
)

// serveConn handles the single request on a connection and closes it
func (s *Server) serveConn(conn net.Conn) {
	defer conn.Close()

	req, err := request.RequestFromReader(conn)
	if err != nil {
		s.Logger.Debug("malformed request line",
			Field{"remote", conn.RemoteAddr().String()},
			Field{"error", err},
		)
	}

	w := response.NewWriter(conn)
	s.handleRequest(w, req)

	switch {
	case w.Err() != nil:
		s.Logger.Debug("response not sent",
			Field{"remote", conn.RemoteAddr().String()},
			Field{"status", int(w.StatusCode())},
			Field{"error", w.Err()},
		)
	case !w.Written():
		s.Logger.Warn("handler wrote no response",
			Field{"remote", conn.RemoteAddr().String()},
			Field{"path", req.Path},
		)
	}
}

// handleRequest wraps handler call with panic recovery
func (s *Server) handleRequest(w *response.Writer, req *request.Request) {
	defer func() {
		if r := recover(); r != nil {
			s.Logger.Error("handler panic",
				Field{"error", r},
				Field{"path", req.Path},
				Field{"stack", string(debug.Stack())},
			)
			s.handle500(w)
		}
	}()

	s.handler(w, req)
}

// handle500 sends 500 response
func (s *Server) handle500(w *response.Writer) {
	// Only send 500 if we haven't started writing response yet
	// (can't send status line twice)
	if w.Started() {
		return
	}
	w.ErrorResponse(response.StatusInternalServerError, "Internal Server Error")
}
