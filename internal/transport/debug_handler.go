// Package transport exposes the viewer's debug HTTP endpoint.
package transport

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// SceneReadTimeout bounds how long /scene waits for the UI thread.
const SceneReadTimeout = 2 * time.Second

// DebugHandler serves metrics, a scene snapshot and a health probe.
type DebugHandler struct {
	reader SceneReader
	logger *zap.Logger
}

// NewDebugHandler returns the debug endpoint's handler with CORS applied.
func NewDebugHandler(reader SceneReader, logger *zap.Logger) http.Handler {
	h := &DebugHandler{reader: reader, logger: logger.Named("debug")}

	mux := http.NewServeMux()
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /scene", h.Scene)
	mux.HandleFunc("GET /healthz", h.Health)

	return cors.Default().Handler(mux)
}

// Scene writes a JSON snapshot of the chain view.
func (h *DebugHandler) Scene(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), SceneReadTimeout)
	defer cancel()

	snap, err := h.reader.ReadScene(ctx)
	if err != nil {
		h.logger.Warn("read scene", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

// Health reports that the process is serving.
func (h *DebugHandler) Health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
