// Package httpapi exposes the chart pipeline over HTTP.
//
// The server wraps a pipeline.Runner behind a small JSON API:
//
//	POST /api/render                pipeline options in, rendered artifact out
//	GET  /api/capabilities/{token}  editable surface lookup for a visual part
//	GET  /healthz                   liveness probe
//	GET  /version                   build information
//
// The render endpoint accepts pipeline.Options as the request body and
// returns exactly one artifact. The format query parameter selects svg, png,
// or json output; without it the first requested format (or svg) is used.
//
// The capabilities endpoint lets an editing surface ask what it may offer
// for a selected visual part. Unknown part tokens resolve to an empty
// capability set, not an error.
//
// Errors map to HTTP status by their code: invalid input is 400, missing
// files or datasets are 404, everything else is 500. Bodies are JSON
// objects with code and message fields.
package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/KuroiKoyani/pareto-chart/pkg/buildinfo"
	"github.com/KuroiKoyani/pareto-chart/pkg/capability"
	"github.com/KuroiKoyani/pareto-chart/pkg/errors"
	"github.com/KuroiKoyani/pareto-chart/pkg/observability"
	"github.com/KuroiKoyani/pareto-chart/pkg/pipeline"
)

// maxBodyBytes caps render request bodies.
const maxBodyBytes = 1 << 20

// contentTypes maps artifact formats to response content types.
var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatJSON: "application/json",
}

// Server serves the chart pipeline over HTTP.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	router chi.Router
}

// New creates a server around the given runner.
// If logger is nil, the default logger is used.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}

	s := &Server{runner: runner, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Post("/api/render", s.handleRender)
	r.Get("/api/capabilities/{token}", s.handleCapabilities)
	r.Get("/healthz", s.handleHealth)
	r.Get("/version", s.handleVersion)
	s.router = r

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// handleRender runs the pipeline for the posted options and writes the
// selected artifact.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	var opts pipeline.Options
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&opts); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body"))
		return
	}

	// One artifact per request: the format query wins, then the first
	// requested format, then svg.
	format := r.URL.Query().Get("format")
	if format == "" {
		if len(opts.Formats) > 0 {
			format = opts.Formats[0]
		} else {
			format = pipeline.FormatSVG
		}
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, err)
		return
	}
	opts.Formats = []string{format}
	opts.Logger = s.logger

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", contentTypes[format])
	w.Header().Set("X-Dataset-Hash", result.DatasetHash)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

// capabilityBody is the JSON shape of capability responses.
type capabilityBody struct {
	Part         string                  `json:"part"`
	Capabilities capability.Capabilities `json:"capabilities"`
}

// handleCapabilities resolves the editable styles and quick actions for a
// selected visual part.
func (s *Server) handleCapabilities(w http.ResponseWriter, r *http.Request) {
	part := capability.PartFromToken(chi.URLParam(r, "token"))
	writeJSON(w, http.StatusOK, capabilityBody{
		Part:         part.String(),
		Capabilities: capability.Resolve(part),
	})
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleVersion reports build information.
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"version": buildinfo.Version,
		"commit":  buildinfo.Commit,
		"built":   buildinfo.Date,
	})
}

// logRequests logs each request with its status and duration, and feeds the
// HTTP observability hooks.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		duration := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, ww.Status(), duration)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", duration)
	})
}

// errorBody is the JSON shape of error responses.
type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// writeError maps an error to its HTTP status and writes the JSON body.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "error", err)
	}

	var body errorBody
	body.Error.Code = string(errors.GetCode(err))
	if body.Error.Code == "" {
		body.Error.Code = string(errors.ErrCodeInternal)
	}
	body.Error.Message = errors.UserMessage(err)
	writeJSON(w, status, body)
}

// statusFor maps error codes to HTTP status codes.
func statusFor(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidColumn,
		errors.ErrCodeInvalidViewport,
		errors.ErrCodeInvalidTheme:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound,
		errors.ErrCodeFileNotFound,
		errors.ErrCodeDatasetNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
