package api

import (
	"context"
	"net/http"
	"time"

	"github.com/garnizeh/jobboard/pkg/repository"
)

type SystemHandler struct {
	health repository.HealthChecker
}

func NewSystemHandler(health repository.HealthChecker) *SystemHandler {
	return &SystemHandler{health: health}
}

type healthResponse struct {
	Server   string `json:"server"`
	Database string `json:"database"`
}

func (h *SystemHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Server: "Running", Database: "Connected"}

	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()
	if h.health == nil {
		resp.Database = "Disconnected"
	} else if err := h.health.PingContext(ctx); err != nil {
		logger.Warn("database ping failed", "err", err)
		resp.Database = "Disconnected"
	}

	writeJSON(w, resp, http.StatusOK)
}

type versionResponse struct {
	Version   string `json:"version"`
	BuildTime string `json:"buildTime"`
}

func (h *SystemHandler) VersionHandler(version, buildTime string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, versionResponse{Version: version, BuildTime: buildTime}, http.StatusOK)
	}
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "Not found")
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
}
