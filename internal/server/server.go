package server

import (
	"context"
	"embed"
	"encoding/json"
	stderrors "errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/ruchita2103/ai-business-assistant/internal/constants"
	"github.com/ruchita2103/ai-business-assistant/internal/domain"
	apperrors "github.com/ruchita2103/ai-business-assistant/pkg/errors"
	"go.uber.org/zap"
)

//go:embed static/index.html
var staticFS embed.FS

// PlanGenerator runs the full generation pipeline for one request.
type PlanGenerator interface {
	GeneratePlan(ctx context.Context, req domain.PlanRequest) (*domain.Plan, error)
}

type Server struct {
	planner PlanGenerator
	logger  *zap.Logger
}

func New(planner PlanGenerator, logger *zap.Logger) *Server {
	return &Server{
		planner: planner,
		logger:  logger,
	}
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/api/plan", s.handlePlan)
	mux.HandleFunc("/api/plan/download", s.handleDownload)

	return s.withRequestLog(mux)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	page, err := staticFS.ReadFile("static/index.html")
	if err != nil {
		http.Error(w, "page unavailable", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handlePlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Idea     string `json:"idea"`
		Provider string `json:"provider"`
	}
	body := http.MaxBytesReader(w, r.Body, constants.ServerConfig.MaxRequestBody)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		s.respondError(w, apperrors.NewValidationError("invalid request body", "body", nil))
		return
	}

	planReq := domain.PlanRequest{
		Idea:     req.Idea,
		Provider: domain.ParseProvider(req.Provider),
	}

	result, err := s.planner.GeneratePlan(r.Context(), planReq)
	if err != nil {
		s.logger.Error("Plan generation failed",
			zap.String("provider", planReq.Provider.String()),
			zap.Error(err),
		)
		s.respondError(w, err)
		return
	}

	s.respondJSON(w, http.StatusOK, result)
}

// handleDownload echoes the summary back as a plain-text attachment. The
// payload is the summary verbatim; the filename is fixed.
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	var req struct {
		Summary string `json:"summary"`
	}
	body := http.MaxBytesReader(w, r.Body, constants.ServerConfig.MaxRequestBody)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		s.respondError(w, apperrors.NewValidationError("invalid request body", "body", nil))
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="startup_summary.txt"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(req.Summary))
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		s.logger.Error("Failed to encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := ""

	if appErr := unwrapAppError(err); appErr != nil {
		if appErr.StatusCode > 0 {
			status = appErr.StatusCode
		}
		code = appErr.Code
	}

	s.respondJSON(w, status, map[string]string{
		"error": err.Error(),
		"code":  code,
	})
}

func unwrapAppError(err error) *apperrors.AppError {
	var providerErr *apperrors.ProviderError
	if stderrors.As(err, &providerErr) {
		return providerErr.AppError
	}
	var configErr *apperrors.ConfigError
	if stderrors.As(err, &configErr) {
		return configErr.AppError
	}
	var validationErr *apperrors.ValidationError
	if stderrors.As(err, &validationErr) {
		return validationErr.AppError
	}
	var appErr *apperrors.AppError
	if stderrors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func (s *Server) withRequestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := uuid.NewString()
		start := time.Now()

		next.ServeHTTP(w, r)

		s.logger.Debug("Request handled",
			zap.String("request_id", requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
