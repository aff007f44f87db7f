package handler

import (
	_ "embed"
	"net/http"

	"go-well-viewer/internal/store"
)

//go:embed static/index.html
var indexHTML []byte

// Index serves the dashboard page: upload box, 3D viewport and fullscreen toggle
func Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(indexHTML)
}

// Health reports liveness and whether build history is on
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"history": store.Enabled(),
	})
}
