// Package server owns the listening socket: it binds, reports startup, and serves.
package server

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/janisto/pipeline-hello/internal/config"
)

// Server is a bound listener paired with its http.Server.
type Server struct {
	srv *http.Server
	ln  net.Listener
}

// Listen binds cfg.Addr() on all interfaces and, once bound, logs the
// listening port and the reported version. A port of 0 binds an ephemeral port.
func Listen(cfg config.Config, handler http.Handler, logger *zap.Logger) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", cfg.Addr(), err)
	}

	s := &Server{
		srv: &http.Server{
			Handler:           handler,
			ReadTimeout:       5 * time.Second,
			ReadHeaderTimeout: 2 * time.Second,
			WriteTimeout:      10 * time.Second,
			IdleTimeout:       60 * time.Second,
			MaxHeaderBytes:    64 << 10, // 64 KB
			ErrorLog:          zap.NewStdLog(logger),
			// "OPTIONS *" goes to handler instead of net/http's built-in reply.
			DisableGeneralOptionsHandler: true,
		},
		ln: ln,
	}

	port := strconv.Itoa(s.Port())
	logger.Info("Server running on port "+port, zap.String("port", port))
	logger.Info("Version: "+cfg.Version, zap.String("version", cfg.Version))
	return s, nil
}

// Addr returns the bound address.
func (s *Server) Addr() net.Addr {
	return s.ln.Addr()
}

// Port returns the bound TCP port.
func (s *Server) Port() int {
	if tcp, ok := s.ln.Addr().(*net.TCPAddr); ok {
		return tcp.Port
	}
	return 0
}

// Serve accepts connections until the listener fails or Close is called.
// It returns nil after Close.
func (s *Server) Serve() error {
	if err := s.srv.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// Close stops the listener and closes open connections immediately.
func (s *Server) Close() error {
	err := s.srv.Close()
	if lnErr := s.ln.Close(); lnErr != nil && err == nil && !errors.Is(lnErr, net.ErrClosed) {
		err = lnErr
	}
	return err
}
