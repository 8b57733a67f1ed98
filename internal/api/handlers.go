package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"os"

	"github.com/transgate-dev/transgate/internal/config"
	"github.com/transgate-dev/transgate/internal/langs"
	"github.com/transgate-dev/transgate/internal/translator"
)

// Handler handles HTTP requests for the transgate API
type Handler struct {
	service *translator.Service
	config  *config.Config
	logger  *slog.Logger
}

// NewHandler creates a new Handler instance
func NewHandler(service *translator.Service, cfg *config.Config, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return &Handler{
		service: service,
		config:  cfg,
		logger:  logger,
	}
}

// Root handles GET / requests with a service banner.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, RootResponse{
		Message:       "Translation API is running",
		Model:         h.service.ModelName(),
		MaxTextLength: h.config.Limits.MaxTextLength,
	})
}

// Health handles GET /health requests. It reports 503 until the model
// server is reachable with its model loaded.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Health(r.Context()); err != nil {
		h.logger.Warn("health check failed", "error", err)
		WriteServiceUnavailable(w, ErrModelNotReady)
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:          "healthy",
		ModelLoaded:     true,
		TokenizerLoaded: true,
	})
}

// Languages handles GET /languages requests with the static catalog.
func (h *Handler) Languages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, LanguagesResponse{Languages: langs.Supported()})
}

// Translate handles POST /translate requests.
func (h *Handler) Translate(w http.ResponseWriter, r *http.Request) {
	var req TranslateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteBadRequest(w, ErrInvalidJSON.WithDetails(err.Error()))
		return
	}

	if req.SourceLang == "" {
		req.SourceLang = h.config.Translation.DefaultSourceLang
	}
	if req.TargetLang == "" {
		req.TargetLang = h.config.Translation.DefaultTargetLang
	}

	resp, err := h.service.Translate(r.Context(), translator.Request{
		Text:       req.Text,
		SourceLang: req.SourceLang,
		TargetLang: req.TargetLang,
	})
	if err != nil {
		status, apiErr := FromServiceError(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("translation failed", "error", err)
		}
		WriteError(w, status, apiErr)
		return
	}

	writeJSON(w, http.StatusOK, TranslateResponse{
		TranslatedText: resp.TranslatedText,
		SourceLang:     resp.SourceLang,
		TargetLang:     resp.TargetLang,
	})
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}
