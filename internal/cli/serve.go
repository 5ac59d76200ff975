package cli

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	apperrors "github.com/marcusmichaels/wiggly-border-generator/pkg/errors"
	"github.com/marcusmichaels/wiggly-border-generator/pkg/pipeline"
)

// shutdownTimeout bounds how long in-flight requests may take to drain.
const shutdownTimeout = 5 * time.Second

// serveCommand creates the serve command for the preview HTTP server.
//
// The server maps query parameters onto pipeline options, so a border can
// be tuned live from the browser:
//
//	http://localhost:8080/border.svg?amplitude=6&width=800&height=400
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr      string
		redisAddr string
		noCache   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve borders over HTTP for live preview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Server.Addr
			}
			if redisAddr != "" {
				c.Config.Cache.RedisAddr = redisAddr
			}

			runner, err := c.newRunner(noCache)
			if err != nil {
				return err
			}

			srv := newServer(runner, c.defaultOptions(), c.Logger)
			printInfo("Serving borders on %s", addr)
			printDetail("GET /border.svg · /border.png · /border.json")
			printDetail("GET /metrics · /healthz")
			return srv.listen(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, else :8080)")
	cmd.Flags().StringVar(&redisAddr, "redis", "", "redis address for the artifact cache")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// server bundles the pipeline runner with per-server metrics.
type server struct {
	runner *pipeline.Runner
	base   pipeline.Options
	logger *log.Logger

	registry *prometheus.Registry
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func newServer(runner *pipeline.Runner, base pipeline.Options, logger *log.Logger) *server {
	s := &server{
		runner:   runner,
		base:     base,
		logger:   logger,
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "wigglyborder_requests_total",
				Help: "Total number of border requests",
			},
			[]string{"format", "status"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "wigglyborder_render_duration_seconds",
				Help: "Duration of border pipeline executions",
			},
			[]string{"format"},
		),
	}
	s.registry.MustRegister(s.requests, s.duration)
	return s
}

// handler builds the chi router for the preview server.
func (s *server) handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/border.svg", s.borderHandler(pipeline.FormatSVG, "image/svg+xml"))
	r.Get("/border.png", s.borderHandler(pipeline.FormatPNG, "image/png"))
	r.Get("/border.json", s.borderHandler(pipeline.FormatJSON, "application/json"))
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return r
}

// requestLogger attaches a request-scoped logger to the context.
func (s *server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqLogger := s.logger.With("request_id", middleware.GetReqID(r.Context()))
		next.ServeHTTP(w, r.WithContext(withLogger(r.Context(), reqLogger)))
	})
}

// borderHandler renders one format per request with options from the query.
func (s *server) borderHandler(format, contentType string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		logger := loggerFromContext(r.Context())

		opts, err := queryOptions(r, s.base)
		if err != nil {
			s.fail(w, format, err)
			return
		}
		opts.Formats = []string{format}

		result, err := s.runner.Execute(r.Context(), opts)
		if err != nil {
			s.fail(w, format, err)
			return
		}

		s.duration.WithLabelValues(format).Observe(time.Since(start).Seconds())
		s.requests.WithLabelValues(format, strconv.Itoa(http.StatusOK)).Inc()
		logger.Debug("served border",
			"format", format,
			"cached", result.CacheInfo.Hits[format],
			"duration", time.Since(start).Round(time.Millisecond))

		w.Header().Set("Content-Type", contentType)
		w.Header().Set("X-Artifact-Id", uuid.NewString())
		// Output is deterministic per query, safe to cache aggressively.
		w.Header().Set("Cache-Control", "public, max-age=86400")
		_, _ = w.Write(result.Artifacts[format])
	}
}

// fail writes an error response and records it in the request counter.
func (s *server) fail(w http.ResponseWriter, format string, err error) {
	status := http.StatusInternalServerError
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeInvalidParameter, apperrors.ErrCodeInvalidFormat, apperrors.ErrCodeInvalidColor:
		status = http.StatusBadRequest
	}
	s.requests.WithLabelValues(format, strconv.Itoa(status)).Inc()
	http.Error(w, apperrors.UserMessage(err), status)
}

// listen serves until the context is canceled, then drains gracefully.
func (s *server) listen(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Info("listening", "addr", addr)

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// queryOptions overlays URL query parameters on the base options.
// Parameter names match the JSON field names of pipeline.Options.
func queryOptions(r *http.Request, base pipeline.Options) (pipeline.Options, error) {
	opts := base
	q := r.URL.Query()

	numeric := []struct {
		name string
		dst  *float64
	}{
		{"amplitude", &opts.Amplitude},
		{"segment_size", &opts.SegmentSize},
		{"stroke_inset", &opts.StrokeInset},
		{"width", &opts.Width},
		{"height", &opts.Height},
		{"seed", &opts.Seed},
		{"stroke_width", &opts.StrokeWidth},
		{"scale", &opts.Scale},
	}
	for _, p := range numeric {
		raw := q.Get(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return opts, apperrors.New(apperrors.ErrCodeInvalidParameter, "%s must be a number, got %q", p.name, raw)
		}
		*p.dst = v
	}

	if v := q.Get("fill"); v != "" {
		opts.Fill = v
	}
	if v := q.Get("stroke"); v != "" {
		opts.Stroke = v
	}
	if v := q.Get("background"); v != "" {
		opts.Background = v
	}

	return opts, nil
}
