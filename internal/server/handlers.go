package server

import (
	"encoding/json"
	"net/http"

	"github.com/mindweave/mindweave/pkg/buildinfo"
	apperrors "github.com/mindweave/mindweave/pkg/errors"
	"github.com/mindweave/mindweave/pkg/mindmap"
	"github.com/mindweave/mindweave/pkg/pipeline"
)

// =============================================================================
// Request / Response Types
// =============================================================================

// generateRequest is the body for /generate and /layout.
type generateRequest struct {
	// Outline is the raw outline text. Empty text is allowed and produces
	// a default single-node map.
	Outline string `json:"outline"`

	// Layout is "radial", "horizontal", or "auto" (default).
	Layout string `json:"layout,omitempty"`

	// Formats lists the artifacts to render (generate only). Defaults to
	// ["svg"].
	Formats []string `json:"formats,omitempty"`

	// Refresh bypasses the cache.
	Refresh bool `json:"refresh,omitempty"`
}

// generateResponse is the /generate reply. Artifact bytes are base64 in
// JSON per Go's []byte encoding.
type generateResponse struct {
	LayoutKind string            `json:"layout_kind"`
	NodeCount  int               `json:"node_count"`
	MaxDepth   int               `json:"max_depth"`
	Artifacts  map[string][]byte `json:"artifacts"`
	Cached     cachedInfo        `json:"cached"`
}

type cachedInfo struct {
	Layout bool `json:"layout"`
	Render bool `json:"render"`
}

// layoutResponse is the /layout reply: the full serialized layout plus
// cache info.
type layoutResponse struct {
	Layout mindmap.Layout `json:"layout"`
	Cached bool           `json:"cached"`
}

type errorResponse struct {
	Error     errorBody `json:"error"`
	RequestID string    `json:"request_id,omitempty"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Version: buildinfo.Version})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}

	result, err := s.runner.Execute(r.Context(), pipeline.Options{
		OutlineText: req.Outline,
		LayoutKind:  req.Layout,
		Formats:     req.Formats,
		Refresh:     req.Refresh,
		Logger:      s.logger,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{
		LayoutKind: result.Layout.LayoutKind,
		NodeCount:  result.Stats.NodeCount,
		MaxDepth:   result.Stats.MaxDepth,
		Artifacts:  result.Artifacts,
		Cached: cachedInfo{
			Layout: result.CacheInfo.LayoutHit,
			Render: result.CacheInfo.RenderHit,
		},
	})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeRequest(w, r)
	if !ok {
		return
	}

	opts := pipeline.Options{
		OutlineText: req.Outline,
		LayoutKind:  req.Layout,
		Refresh:     req.Refresh,
		Logger:      s.logger,
	}

	tree, err := s.runner.Parse(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	outlineHash := pipeline.OutlineHash(req.Outline)
	l, hit, err := s.runner.ComputeLayoutWithCacheInfo(r.Context(), tree, outlineHash, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, layoutResponse{Layout: l, Cached: hit})
}

// =============================================================================
// Helpers
// =============================================================================

// maxRequestBytes bounds request bodies: the outline size cap plus headroom
// for the JSON envelope.
const maxRequestBytes = apperrors.MaxOutlineBytes + 64*1024

func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (generateRequest, bool) {
	var req generateRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, r, apperrors.Wrap(apperrors.ErrCodeInvalidInput, err, "decode request body"))
		return generateRequest{}, false
	}
	return req, true
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := apperrors.GetCode(err)
	status := statusFor(code)

	if status >= 500 {
		s.logger.Error("request failed", "id", requestIDFrom(r.Context()), "error", err)
	} else {
		s.logger.Debug("request rejected", "id", requestIDFrom(r.Context()), "error", err)
	}

	writeJSON(w, status, errorResponse{
		Error: errorBody{
			Code:    string(orInternal(code)),
			Message: apperrors.UserMessage(err),
		},
		RequestID: requestIDFrom(r.Context()),
	})
}

// statusFor maps application error codes to HTTP statuses.
func statusFor(code apperrors.Code) int {
	switch code {
	case apperrors.ErrCodeInvalidInput,
		apperrors.ErrCodeInvalidLayoutKind,
		apperrors.ErrCodeInvalidFormat,
		apperrors.ErrCodeInvalidLayout:
		return http.StatusBadRequest
	case apperrors.ErrCodeNotFound, apperrors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case apperrors.ErrCodeUnsupported:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func orInternal(code apperrors.Code) apperrors.Code {
	if code == "" {
		return apperrors.ErrCodeInternal
	}
	return code
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
