package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Adzz29/Crypto-Tracker/internal/application/dto"
	"github.com/Adzz29/Crypto-Tracker/internal/domain/interfaces"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	cache interfaces.Cache
	repo  interfaces.PortfolioRepository
}

// NewHealthHandler creates the health handler.
func NewHealthHandler(cache interfaces.Cache, repo interfaces.PortfolioRepository) *HealthHandler {
	return &HealthHandler{
		cache: cache,
		repo:  repo,
	}
}

// Health godoc
// @Summary Basic health check
// @Description Verifies that the service is running. Responds quickly without checking dependencies.
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service is running"
// @Router /health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response := dto.NewHealthResponse("healthy", map[string]string{
		"service": "running",
	})
	h.writeJSON(w, http.StatusOK, response)
}

// Ready godoc
// @Summary Readiness check
// @Description Verifies that the service can serve traffic by touching the cache and the holdings store.
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse "Service is ready"
// @Failure 503 {object} dto.HealthResponse "A dependency is failing"
// @Router /ready [get]
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	services := make(map[string]string)
	healthy := true

	if err := h.cache.Set(ctx, "health:ping", "ok", 5*time.Second); err != nil {
		services["cache"] = "error: " + err.Error()
		healthy = false
	} else {
		services["cache"] = "ready"
	}

	if _, err := h.repo.Totals(ctx); err != nil {
		services["database"] = "error: " + err.Error()
		healthy = false
	} else {
		services["database"] = "ready"
	}

	if !healthy {
		h.writeJSON(w, http.StatusServiceUnavailable, dto.NewHealthResponse("unhealthy", services))
		return
	}

	services["service"] = "ready"
	h.writeJSON(w, http.StatusOK, dto.NewHealthResponse("ready", services))
}

func (h *HealthHandler) writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		_, _ = w.Write([]byte(`{"error":"ENCODING_ERROR","message":"Failed to encode response"}`))
	}
}
