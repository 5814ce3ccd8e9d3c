package handlers

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/rogerio-castellano/supplysight/internal/inventory"
)

// Server holds the dependencies of the REST handlers.
type Server struct {
	svc *inventory.Service
	log zerolog.Logger
}

func NewServer(svc *inventory.Service, log zerolog.Logger) *Server {
	return &Server{
		svc: svc,
		log: log.With().Str("component", "rest").Logger(),
	}
}

// writeError maps service error kinds to HTTP status codes.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	msg := "internal error"

	switch {
	case errors.Is(err, inventory.ErrNotFound):
		status, msg = http.StatusNotFound, err.Error()
	case errors.Is(err, inventory.ErrInvalidArgument):
		status, msg = http.StatusBadRequest, err.Error()
	default:
		s.logger(r).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	}

	if werr := writeJSON(w, status, ErrorResponse{Error: msg}); werr != nil {
		s.logger(r).Error().Err(werr).Msg("failed to write error response")
	}
}

func (s *Server) respond(w http.ResponseWriter, r *http.Request, status int, data any) {
	if err := writeJSON(w, status, data); err != nil {
		s.logger(r).Error().Err(err).Msg("failed to write response")
	}
}

// logger prefers the request-scoped logger installed by the logging middleware.
func (s *Server) logger(r *http.Request) *zerolog.Logger {
	if l := hlog.FromRequest(r); l.GetLevel() != zerolog.Disabled {
		return l
	}
	return &s.log
}
