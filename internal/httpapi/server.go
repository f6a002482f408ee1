// Package httpapi serves the trace engines over JSON/HTTP for browser
// front ends.
package httpapi

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/katalvlaran/algotrace/internal/cache"
	"github.com/katalvlaran/algotrace/internal/config"
	"github.com/katalvlaran/algotrace/internal/logging"
	"github.com/katalvlaran/algotrace/internal/metrics"
)

// Deps carries everything the handler needs. Zero-valued optional fields
// fall back to harmless defaults.
type Deps struct {
	// Limits bounds request sizes; zero means config.Default().Limits.
	Limits config.Limits
	// AllowedOrigins lists CORS origins; "*" allows any.
	AllowedOrigins []string
	// Cache memoizes responses; nil disables caching.
	Cache cache.Store
	// Metrics records trace counters; nil disables metrics.
	Metrics *metrics.Recorder
	// Logger receives request and failure logs; nil discards them.
	Logger *slog.Logger
}

// Server holds the wired dependencies behind the routes.
type Server struct {
	limits  config.Limits
	cache   cache.Store
	metrics *metrics.Recorder
	log     *slog.Logger
}

// NewHandler creates the HTTP handler exposing every route.
func NewHandler(d Deps) http.Handler {
	s := &Server{
		limits:  d.Limits,
		cache:   d.Cache,
		metrics: d.Metrics,
		log:     d.Logger,
	}
	if s.limits == (config.Limits{}) {
		s.limits = config.Default().Limits
	}
	if s.cache == nil {
		s.cache = cache.Nop{}
	}
	if s.log == nil {
		s.log = logging.NewNop()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.log))
	r.Use(cors(d.AllowedOrigins))

	r.Get("/health", s.Health)
	r.Post("/karatsuba", s.Karatsuba)
	r.Post("/closest-pair", s.ClosestPair)
	r.Route("/import", func(r chi.Router) {
		r.Post("/multiplication", s.ImportMultiplication)
		r.Post("/points", s.ImportPoints)
	})
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	return r
}

// Health reports liveness.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			log.Info("request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"bytes", ww.BytesWritten(),
				"duration", time.Since(start),
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

// cors answers preflight requests and tags responses for allowed origins.
func cors(origins []string) func(http.Handler) http.Handler {
	wildcard := slices.Contains(origins, "*")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin != "" && (wildcard || slices.Contains(origins, origin)) {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Credentials", "true")
				h.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
				h.Set("Access-Control-Allow-Headers", "Content-Type")
				h.Add("Vary", "Origin")
			}
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
