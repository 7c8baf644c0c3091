package server

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/avulnerador/RogueMap-Gen/pkg/editor"
	"github.com/avulnerador/RogueMap-Gen/pkg/observability"
	"github.com/avulnerador/RogueMap-Gen/pkg/pipeline"
	"github.com/avulnerador/RogueMap-Gen/pkg/store"
)

// maxBodyBytes bounds request bodies; a 30-floor map of 10-node floors is
// well under this.
const maxBodyBytes = 4 << 20

// Server serves the editor API.
type Server struct {
	editor   *editor.Editor
	store    store.Store
	exporter *pipeline.Runner
	log      *log.Logger

	// mu serializes requests: the editor's random source is not safe for
	// concurrent use and edits are load-modify-store.
	mu sync.Mutex
}

// New creates a server. A nil exporter renders without caching and a nil
// logger uses log.Default().
func New(ed *editor.Editor, st store.Store, exporter *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	if exporter == nil {
		exporter = pipeline.NewRunner(nil, nil, logger)
	}
	return &Server{editor: ed, store: st, exporter: exporter, log: logger}
}

// Handler returns the HTTP handler with every route mounted.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Get("/themes", s.handleThemes)

		r.Route("/maps", func(r chi.Router) {
			r.Get("/", s.handleList)
			r.Post("/", s.handleCreate)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGet)
				r.Put("/", s.handleImport)
				r.Delete("/", s.handleDelete)
				r.Get("/summary", s.handleSummary)
				r.Get("/export/{format}", s.handleExport)

				r.Post("/generate", s.handleGenerate)
				r.Put("/config", s.handleConfig)
				r.Post("/layout", s.handleLayout)
				r.Post("/theme", s.handleTheme)

				r.Route("/nodes/{node}", func(r chi.Router) {
					r.Put("/", s.handleUpdateNode)
					r.Delete("/", s.handleDeleteNode)
					r.Post("/drag", s.handleDrag)
					r.Post("/promote", s.handlePromote)
					r.Put("/lock", s.handleLock)
				})
			})
		})
	})
	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		observability.HTTP().OnResponse(r.Context(), r.Method, route, ww.Status(), time.Since(start))
		s.log.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"elapsed", time.Since(start).Round(time.Microsecond),
			"requestID", middleware.GetReqID(r.Context()))
	})
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}
