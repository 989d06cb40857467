// Package server exposes the estimate, roof analysis, and lead capture API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/roofquote/internal/config"
	"github.com/sells-group/roofquote/internal/model"
	"github.com/sells-group/roofquote/internal/quote"
	"github.com/sells-group/roofquote/internal/roof"
	"github.com/sells-group/roofquote/pkg/tracking"
)

// Error codes returned in the error envelope.
const (
	CodeInvalidJSON = "INVALID_JSON"
	CodeValidation  = "VALIDATION_ERROR"
	CodeNotFound    = "NOT_FOUND"
	CodeInternal    = "INTERNAL_ERROR"
)

const maxBodyBytes = 1 << 20

// RoofAnalyzer measures a roof from its address.
type RoofAnalyzer interface {
	Analyze(ctx context.Context, address string) (*roof.Analysis, error)
}

// LeadDispatcher delivers a captured lead.
type LeadDispatcher interface {
	Dispatch(ctx context.Context, l model.Lead) (*model.LeadRecord, error)
}

// Server is the HTTP API.
type Server struct {
	cfg      config.ServerConfig
	analyzer RoofAnalyzer
	leads    LeadDispatcher
	tracker  tracking.Client
	router   chi.Router
}

// New builds the router. tracker may be nil.
func New(cfg config.ServerConfig, analyzer RoofAnalyzer, leads LeadDispatcher, tracker tracking.Client) *Server {
	if tracker == nil {
		tracker = tracking.NewClient(tracking.Config{})
	}
	s := &Server{
		cfg:      cfg,
		analyzer: analyzer,
		leads:    leads,
		tracker:  tracker,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
	if s.cfg.WriteTimeoutSecs > 0 {
		r.Use(middleware.Timeout(time.Duration(s.cfg.WriteTimeoutSecs) * time.Second))
	}

	r.Get("/health", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/estimate", s.handleEstimate)
		r.Post("/address/parse", s.handleParseAddress)
		r.Post("/roof-analysis", s.handleRoofAnalysis)
		r.Post("/leads", s.handleLead)
		r.Get("/pricing/states", s.handleStates)
		r.Get("/pricing/states/{code}", s.handleState)
		r.Get("/pricing/materials", s.handleMaterials)
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on port until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s,
		ReadTimeout:  time.Duration(s.cfg.ReadTimeoutSecs) * time.Second,
		WriteTimeout: time.Duration(s.cfg.WriteTimeoutSecs+5) * time.Second,
	}

	go func() {
		<-ctx.Done()
		zap.L().Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			zap.L().Warn("server shutdown", zap.Error(err))
		}
	}()

	zap.L().Info("starting server", zap.Int("port", port))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return eris.Wrap(err, "server: listen")
	}
	return nil
}

func recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			p := recover()
			if p == nil {
				return
			}
			if p == http.ErrAbortHandler {
				panic(p)
			}
			zap.L().Error("server: recovered panic",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.Any("panic", p),
				zap.Stack("stack"),
			)
			writeError(w, CodeInternal, "internal server error", http.StatusInternalServerError)
		}()
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("server: encode response", zap.Error(err))
	}
}

// ErrorBody is the error envelope.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and a message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeError(w http.ResponseWriter, code, message string, status int) {
	writeJSON(w, ErrorBody{Error: ErrorDetail{Code: code, Message: message}}, status)
}

// decode reads a JSON body into v. Validation errors raised while decoding
// (a malformed roof area) are reported as such.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
	if err == nil {
		return true
	}
	if quote.IsValidation(err) {
		writeError(w, CodeValidation, err.Error(), http.StatusBadRequest)
		return false
	}
	writeError(w, CodeInvalidJSON, "invalid request body", http.StatusBadRequest)
	return false
}
