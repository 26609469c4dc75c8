package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/specialistvlad/fundingdsl/internal/ctxlog"
	"github.com/specialistvlad/fundingdsl/internal/model"
	"github.com/specialistvlad/fundingdsl/internal/parser"
	"github.com/specialistvlad/fundingdsl/internal/validator"
)

const (
	maxBodyBytes    = 1 << 20
	shutdownTimeout = 5 * time.Second
)

type formatResponse struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type"`
	Extension   string `json:"extension"`
}

type validateResponse struct {
	Project    string   `json:"project"`
	Valid      bool     `json:"valid"`
	Violations []string `json:"violations"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler returns the HTTP API routes.
func (a *App) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(a.logRequests)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"https://*", "http://*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", a.healthHandler)
	r.Route("/v1", func(r chi.Router) {
		r.Get("/formats", a.formatsHandler)
		r.Post("/validate", a.validateHandler)
		r.Post("/export/{format}", a.exportHandler)
	})
	return r
}

// Serve runs the HTTP API until ctx is cancelled, then shuts it down
// gracefully.
func (a *App) Serve(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	addr := fmt.Sprintf(":%d", a.config.HTTPPort)
	a.httpServer = &http.Server{
		Addr:              addr,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("🌐 HTTP API starting", "address", fmt.Sprintf("http://localhost%s", addr))
		// ListenAndServe returns ErrServerClosed on graceful shutdown.
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP API failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	return a.shutdown(ctx)
}

func (a *App) shutdown(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)
	if a.httpServer == nil {
		logger.Debug("HTTP API was not running.")
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	logger.Info("🛑 Shutting down HTTP API...")
	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP API shutdown failed", "error", err)
		return err
	}
	logger.Debug("HTTP API shut down gracefully.")
	return nil
}

func (a *App) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r.WithContext(ctxlog.WithLogger(r.Context(), a.logger)))
		a.logger.Debug("HTTP request served.",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

func (a *App) formatsHandler(w http.ResponseWriter, _ *http.Request) {
	formats := make([]formatResponse, 0, len(a.exports.Names()))
	for _, name := range a.exports.Names() {
		f, err := a.exports.Lookup(name)
		if err != nil {
			continue
		}
		formats = append(formats, formatResponse{Name: f.Name, ContentType: f.ContentType, Extension: f.Extension})
	}
	writeJSON(w, http.StatusOK, formats)
}

func (a *App) validateHandler(w http.ResponseWriter, r *http.Request) {
	cfg, status, err := a.parseBody(w, r)
	if err != nil {
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}
	violations := validator.Validate(cfg)
	if violations == nil {
		violations = []string{}
	}
	writeJSON(w, http.StatusOK, validateResponse{
		Project:    cfg.ProjectName,
		Valid:      len(violations) == 0,
		Violations: violations,
	})
}

func (a *App) exportHandler(w http.ResponseWriter, r *http.Request) {
	format, err := a.exports.Lookup(chi.URLParam(r, "format"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	cfg, status, err := a.parseBody(w, r)
	if err != nil {
		writeJSON(w, status, errorResponse{Error: err.Error()})
		return
	}
	data, err := a.exports.Render(r.Context(), format.Name, cfg)
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}
	w.Header().Set("Content-Type", format.ContentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// parseBody parses the request body with the engine named by the engine
// query parameter, or the app's engine when it is absent. On failure it
// returns the HTTP status to answer with.
func (a *App) parseBody(w http.ResponseWriter, r *http.Request) (*model.Configuration, int, error) {
	p := a.parser
	if engine := r.URL.Query().Get("engine"); engine != "" {
		var err error
		if p, err = parser.New(engine); err != nil {
			return nil, http.StatusBadRequest, err
		}
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, http.StatusRequestEntityTooLarge, err
		}
		return nil, http.StatusBadRequest, err
	}

	cfg, err := p.Parse(r.Context(), string(body))
	if err != nil {
		return nil, http.StatusUnprocessableEntity, err
	}
	return cfg, http.StatusOK, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}
