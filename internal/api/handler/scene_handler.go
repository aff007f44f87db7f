package handler

import (
	"bytes"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-well-viewer/internal/metrics"
	"go-well-viewer/internal/model"
	apperrors "go-well-viewer/internal/pkg/errors"
	"go-well-viewer/internal/pkg/logger"
	"go-well-viewer/internal/preview"
	"go-well-viewer/internal/scene"
	"go-well-viewer/internal/store"
)

// BuildError describes why an upload produced an empty scene
type BuildError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// SceneResponse is the body of POST /api/v1/scene
type SceneResponse struct {
	BuildID  string         `json:"build_id"`
	Filename string         `json:"filename"`
	Scene    model.Scene    `json:"scene"`
	Summary  *model.Summary `json:"summary,omitempty"`
	Error    *BuildError    `json:"error,omitempty"`
}

// UploadScene builds a 3D scene from an uploaded CSV
// @Summary Build a scene
// @Description Parse an uploaded CSV (pozo,litologia,x,y,z) and return the 3D scene.
// @Description Malformed input still answers 200 with an empty scene and an error object.
// @Tags scene
// @Accept multipart/form-data
// @Accept json
// @Produce json
// @Param file formData file false "CSV file"
// @Success 200 {object} SceneResponse "Scene build result"
// @Failure 400 {object} map[string]interface{} "No upload in request"
// @Failure 413 {object} map[string]interface{} "Upload too large"
// @Router /scene [post]
func UploadScene(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	up, err := readUpload(w, r)
	if err != nil {
		apperrors.WriteJSON(w, err)
		return
	}

	var res scene.Result
	if up.decodeErr != nil {
		res = scene.Failure(up.filename, up.decodeErr)
	} else {
		res = scene.Build(up.payload, up.filename)
	}

	buildID := uuid.New().String()
	resp := SceneResponse{
		BuildID:  buildID,
		Filename: up.filename,
		Scene:    res.Scene,
	}

	outcome := metrics.OutcomeOK
	if res.OK() {
		resp.Summary = &res.Summary
	} else {
		outcome = metrics.OutcomeMalformed
		resp.Error = &BuildError{Kind: "malformed_input", Message: res.Err.Error()}
	}
	metrics.RecordBuild(outcome, time.Since(start),
		res.Scene.CountByType(model.TraceScatter3D), res.Scene.CountByType(model.TraceMesh3D))

	recordHistory(buildID, up.filename, res)

	writeJSON(w, http.StatusOK, resp)
}

// recordHistory stores build metadata when the history is enabled
func recordHistory(buildID, filename string, res scene.Result) {
	if !store.Enabled() {
		return
	}

	rec := model.BuildRecord{
		ID:          buildID,
		Filename:    filename,
		Status:      model.BuildStatusOK,
		Records:     res.Summary.Records,
		Wells:       res.Scene.CountByType(model.TraceScatter3D),
		Lithologies: res.Scene.CountByType(model.TraceMesh3D),
		CreatedAt:   time.Now().UTC(),
	}
	if !res.OK() {
		rec.Status = model.BuildStatusMalformed
		rec.Error = res.Err.Error()
	}

	if err := store.SaveBuild(rec); err != nil {
		logger.WithBuildID(buildID).Error("failed to save build history", zap.Error(err))
	}
}

// PreviewScene renders a plan view of the uploaded wells
// @Summary Plan view preview
// @Description Render a PNG plan view (x against y) of the uploaded well paths
// @Tags scene
// @Accept multipart/form-data
// @Accept json
// @Produce png
// @Param file formData file false "CSV file"
// @Success 200 {file} binary "PNG image"
// @Failure 422 {object} map[string]interface{} "Malformed input"
// @Router /scene/preview [post]
func PreviewScene(w http.ResponseWriter, r *http.Request) {
	up, err := readUpload(w, r)
	if err != nil {
		apperrors.WriteJSON(w, err)
		return
	}
	if up.decodeErr != nil {
		apperrors.WriteJSON(w, apperrors.Unprocessable(up.decodeErr.Error()))
		return
	}

	ds, err := scene.ParseDataset(bytes.NewReader(up.payload))
	if err != nil {
		apperrors.WriteJSON(w, apperrors.Unprocessable(err.Error()))
		return
	}

	var buf bytes.Buffer
	if err := preview.RenderPlanView(&buf, ds, up.filename); err != nil {
		if errors.Is(err, preview.ErrNoWells) {
			apperrors.WriteJSON(w, apperrors.Unprocessable(err.Error()))
			return
		}
		logger.Error("preview rendering failed", zap.String("filename", up.filename), zap.Error(err))
		apperrors.WriteJSON(w, apperrors.Internal("failed to render preview"))
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
