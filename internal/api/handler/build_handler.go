package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	apperrors "go-well-viewer/internal/pkg/errors"
	"go-well-viewer/internal/store"
)

// ListBuilds returns recent scene builds
// @Summary List builds
// @Description List recent builds, newest first
// @Tags builds
// @Produce json
// @Param limit query int false "Maximum number of builds"
// @Success 200 {object} map[string]interface{} "Build history"
// @Failure 503 {object} map[string]interface{} "History disabled"
// @Router /builds [get]
func ListBuilds(w http.ResponseWriter, r *http.Request) {
	limit := opts.HistoryLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed < limit {
			limit = parsed
		}
	}

	builds, err := store.ListBuilds(limit)
	if err != nil {
		apperrors.WriteJSON(w, storeError(err, ""))
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"builds": builds,
		"count":  len(builds),
		"limit":  limit,
	})
}

// GetBuild returns one build record
// @Summary Get build
// @Description Retrieve one build record
// @Tags builds
// @Produce json
// @Param id path string true "Build ID"
// @Success 200 {object} model.BuildRecord "Build record"
// @Failure 404 {object} map[string]interface{} "Build not found"
// @Router /builds/{id} [get]
func GetBuild(w http.ResponseWriter, r *http.Request) {
	prefix := "/api/v1/builds/"
	if !strings.HasPrefix(r.URL.Path, prefix) {
		apperrors.WriteJSON(w, apperrors.BadRequest("invalid path"))
		return
	}

	buildID := strings.Trim(r.URL.Path[len(prefix):], "/")
	if buildID == "" {
		apperrors.WriteJSON(w, apperrors.BadRequest("build ID is required"))
		return
	}

	build, err := store.GetBuild(buildID)
	if err != nil {
		apperrors.WriteJSON(w, storeError(err, buildID))
		return
	}

	writeJSON(w, http.StatusOK, build)
}

func storeError(err error, buildID string) error {
	switch {
	case errors.Is(err, store.ErrDisabled):
		return apperrors.Unavailable("build history is disabled")
	case errors.Is(err, store.ErrNotFound):
		return apperrors.NotFound("build", buildID)
	default:
		return apperrors.Internal("failed to read build history").WithError(err)
	}
}
