package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/jjanuszczak/Genetic-Insights/internal/config"
	"github.com/jjanuszczak/Genetic-Insights/internal/handlers"
	"github.com/jjanuszczak/Genetic-Insights/pkg/logger"
	"github.com/jjanuszczak/Genetic-Insights/static"
)

var Module = fx.Module("server",
	fx.Provide(NewRouter),
	fx.Invoke(StartServer),
)

// RouterParams are the dependencies for building the router
type RouterParams struct {
	fx.In

	Config  *config.Config
	Log     *slog.Logger
	Handler *handlers.Handler
}

// NewRouter builds the site's chi router
func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	log := p.Log.With(logger.Scope("http"))
	h := p.Handler

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	if cfg.TrustProxyHeaders {
		// rewrites RemoteAddr, which the rate limiter keys on
		r.Use(middleware.RealIP)
	}
	r.Use(
		requestLogger(log),
		recoverer(log),
	)
	r.NotFound(h.NotFound)

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(static.FS))))

	r.Get("/", h.LandingPage)
	r.Get("/health", h.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		if len(cfg.CORS.AllowedOrigins) > 0 {
			r.Use(cors.Handler(cors.Options{
				AllowedOrigins: cfg.CORS.AllowedOrigins,
				AllowedMethods: []string{http.MethodPost, http.MethodOptions},
				AllowedHeaders: []string{"Accept", "Content-Type"},
				MaxAge:         300,
			}))
			// preflight is answered by the cors middleware
			r.Options("/register", func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			})
		}
		if cfg.RateLimit.Enabled() {
			limiter := NewClientRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst)
			r.Use(limiter.Middleware(http.HandlerFunc(h.RateLimited)))
		}
		r.Post("/register", h.Register)
	})

	return r
}

// requestLogger logs one line per request, skipping health checks
func requestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/health" {
				next.ServeHTTP(w, r)
				return
			}

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)

			attrs := []any{
				slog.String("method", r.Method),
				slog.String("uri", r.RequestURI),
				slog.Int("status", ww.Status()),
				slog.Duration("latency", time.Since(start)),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			}
			if ww.Status() >= http.StatusInternalServerError {
				log.Error("request failed", attrs...)
				return
			}
			log.Info("request", attrs...)
		})
	}
}

// recoverer turns a handler panic into a 500 and logs the stack
func recoverer(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Error("panic recovered",
					logger.Error(fmt.Errorf("%v", rec)),
					slog.String("stack", string(debug.Stack())),
				)
				w.WriteHeader(http.StatusInternalServerError)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// StartServer starts the HTTP server with graceful shutdown
func StartServer(lc fx.Lifecycle, router http.Handler, cfg *config.Config, log *slog.Logger) {
	log = log.With(logger.Scope("server"))

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", server.Addr, err)
			}

			log.Info("starting HTTP server",
				slog.String("address", ln.Addr().String()),
				slog.String("environment", cfg.Environment),
			)

			go func() {
				if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error("server error", logger.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("shutting down HTTP server")

			shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
			defer cancel()

			return server.Shutdown(shutdownCtx)
		},
	})
}
