package http

import (
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"

	"github.com/rogerio-castellano/supplysight/internal/http/ban"
	rl "github.com/rogerio-castellano/supplysight/internal/http/rate_limiter"
)

// RequestLogger installs a request-scoped logger carrying the chi request id
// and writes one access line per request.
func RequestLogger(log zerolog.Logger) func(http.Handler) http.Handler {
	withLogger := hlog.NewHandler(log)
	access := hlog.AccessHandler(func(r *http.Request, status, size int, duration time.Duration) {
		lvl := zerolog.InfoLevel
		if status >= http.StatusInternalServerError {
			lvl = zerolog.ErrorLevel
		}
		hlog.FromRequest(r).WithLevel(lvl).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("size", size).
			Dur("duration", duration).
			Msg("request")
	})
	remote := hlog.RemoteAddrHandler("ip")

	return func(next http.Handler) http.Handler {
		withReqID := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id := middleware.GetReqID(r.Context()); id != "" {
				hlog.FromRequest(r).UpdateContext(func(c zerolog.Context) zerolog.Context {
					return c.Str("req_id", id)
				})
			}
			next.ServeHTTP(w, r)
		})
		return withLogger(remote(access(withReqID)))
	}
}

// RateLimit rejects clients over their token bucket with 429. Every rejection
// counts as a strike and clients with enough strikes get 403 until the ban
// expires. Store failures let the request through.
func RateLimit(limiter *rl.Limiter, bans ban.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			log := hlog.FromRequest(r)

			banned, err := bans.IsBanned(r.Context(), ip)
			if err != nil {
				log.Error().Err(err).Msg("ban lookup failed")
			}
			if banned {
				http.Error(w, "Too many requests. You are temporarily banned.", http.StatusForbidden)
				return
			}

			if limiter.Allow(ip) {
				next.ServeHTTP(w, r)
				return
			}

			banned, strikes, err := bans.Strike(r.Context(), ip, r.URL.Path)
			if err != nil {
				log.Error().Err(err).Msg("could not record strike")
			}
			if banned {
				log.Warn().Str("target", ip).Int("strikes", strikes).Msg("client banned")
				http.Error(w, "Too many requests. You are temporarily banned.", http.StatusForbidden)
				return
			}
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
