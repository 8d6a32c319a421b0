package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/maypok86/otter/v2"
	"golang.org/x/time/rate"

	"github.com/codeGROOVE-dev/whattime/pkg/aliases"
	"github.com/codeGROOVE-dev/whattime/pkg/geo"
	"github.com/codeGROOVE-dev/whattime/pkg/resolver"
	"github.com/codeGROOVE-dev/whattime/pkg/whattime"
)

const maxLocationLength = 200

// limiterIdle is how long an untouched bucket is kept. A bucket refills
// completely within a minute, so dropping it afterwards loses nothing.
const limiterIdle = 10 * time.Minute

// rateLimiter keeps one token bucket per client IP, refilled to limit
// requests per minute. Buckets live in a bounded cache that forgets idle
// clients.
type rateLimiter struct {
	limits *otter.Cache[string, *rate.Limiter]
	now    func() time.Time
	limit  int
}

func newRateLimiter(limit, maxClients int) *rateLimiter {
	return &rateLimiter{
		limits: otter.Must(&otter.Options[string, *rate.Limiter]{
			MaximumSize:      maxClients,
			ExpiryCalculator: otter.ExpiryAccessing[string, *rate.Limiter](limiterIdle),
		}),
		now:   time.Now,
		limit: limit,
	}
}

func (rl *rateLimiter) limiter(ip string) *rate.Limiter {
	l, _ := rl.limits.ComputeIfAbsent(ip, func() (*rate.Limiter, bool) {
		every := rate.Inf
		if rl.limit > 0 {
			every = rate.Every(time.Minute / time.Duration(rl.limit))
		}
		return rate.NewLimiter(every, rl.limit), false
	})
	return l
}

func (rl *rateLimiter) allow(ip string) bool {
	return rl.limiter(ip).AllowN(rl.now(), 1)
}

type server struct {
	svc     *whattime.Service
	limiter *rateLimiter
	logger  *slog.Logger
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/time", s.handleTime)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})
	return s.wrap(mux)
}

func (s *server) wrap(handler http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)

		defer func() {
			if err := recover(); err != nil {
				const size = 64 << 10
				buf := make([]byte, size)
				buf = buf[:runtime.Stack(buf, false)]

				s.logger.Error("PANIC: Request handler crashed",
					"error", err,
					"path", r.URL.Path,
					"method", r.Method,
					"request_id", requestID,
					"client_ip", clientIP(r),
					"user_agent", r.Header.Get("User-Agent"),
					"stack", string(buf))
				http.Error(w, "Internal server error", http.StatusInternalServerError)
			}
		}()

		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		w.Header().Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if strings.HasPrefix(r.URL.Path, "/api/") {
			w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, private")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")
		}

		handler.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

type errorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// handleTime answers GET /api/v1/time?location=..&state=..&country=..&confirm=yes|no&lang=..
// A low-confidence guess comes back as needs_confirmation; clients repeat the
// request with confirm=yes to accept it.
func (s *server) handleTime(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ip := clientIP(r)
	requestID := w.Header().Get("X-Request-ID")

	if !s.limiter.allow(ip) {
		s.logger.Warn("Rate limit exceeded", "request_id", requestID, "client_ip", ip)
		s.writeJSON(w, http.StatusTooManyRequests, errorResponse{Status: "error", Error: "rate limit exceeded"})
		return
	}

	params := r.URL.Query()
	location := strings.TrimSpace(params.Get("location"))
	if location == "" {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Status: "error", Error: "location is required"})
		return
	}
	if len(location) > maxLocationLength {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Status: "error", Error: "location too long"})
		return
	}

	q := resolver.Text(location)
	if st, c := params.Get("state"), params.Get("country"); st != "" || c != "" {
		q = resolver.Structured(geo.Place{City: location, State: st, Country: c})
	}

	var confirmer resolver.Confirmer
	if answer := params.Get("confirm"); answer != "" {
		confirmer = resolver.Answer(answer)
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	rep, err := s.svc.Lookup(ctx, params.Get("lang"), q, confirmer)
	if err != nil {
		if errors.Is(err, aliases.ErrUnknownLanguage) {
			s.writeJSON(w, http.StatusBadRequest, errorResponse{Status: "error", Error: err.Error()})
			return
		}
		s.logger.Error("Lookup failed", "request_id", requestID, "error", err)
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Status: "error", Error: "internal error"})
		return
	}

	status := http.StatusOK
	if rep.Status == resolver.NotFound.String() {
		status = http.StatusNotFound
	}

	s.logger.Info("Time request completed",
		"request_id", requestID,
		"client_ip", ip,
		"location", location,
		"status", rep.Status,
		"timezone", rep.Timezone,
		"strategy", rep.Strategy,
		"duration_ms", time.Since(start).Milliseconds())

	s.writeJSON(w, status, rep)
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("Failed to write response", "error", err)
	}
}
