package http

import (
	"context"
	"net/http"

	"github.com/DRSN-tech/petstore-backend/internal/cfg"
)

// Server — тонкая обёртка над http.Server с таймаутами из конфигурации.
type Server struct {
	srv *http.Server
}

func NewServer(handler http.Handler, cfg *cfg.HTTPConfig) *Server {
	return &Server{
		srv: &http.Server{
			Addr:         ":" + cfg.Port,
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
	}
}

// Run блокируется до остановки сервера.
func (s *Server) Run() error {
	return s.srv.ListenAndServe()
}

// Stop дожидается обработки текущих запросов в пределах ctx.
func (s *Server) Stop(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
