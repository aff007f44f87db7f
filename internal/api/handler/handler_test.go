package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-well-viewer/internal/model"
	"go-well-viewer/internal/store"
)

const wellsCSV = `pozo,litologia,x,y,z
pozo_1,lit_1,0,0,0
pozo_1,lit_1,1,1,-100
pozo_2,lit_2,5,5,-50
`

func multipartRequest(t *testing.T, path, field, filename, content string) *http.Request {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req
}

func jsonRequest(t *testing.T, path string, v interface{}) *http.Request {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeScene(t *testing.T, rec *httptest.ResponseRecorder) SceneResponse {
	t.Helper()
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var resp SceneResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func withHistory(t *testing.T) {
	t.Helper()
	require.NoError(t, store.InitDB(filepath.Join(t.TempDir(), "history.db")))
	t.Cleanup(func() { _ = store.Close() })
}

func withoutHistory(t *testing.T) {
	t.Helper()
	require.NoError(t, store.Close())
}

func TestUploadSceneMultipart(t *testing.T) {
	withoutHistory(t)

	rec := httptest.NewRecorder()
	UploadScene(rec, multipartRequest(t, "/api/v1/scene", "file", "wells.csv", wellsCSV))

	resp := decodeScene(t, rec)
	assert.NotEmpty(t, resp.BuildID)
	assert.Equal(t, "wells.csv", resp.Filename)
	assert.Nil(t, resp.Error)
	assert.Equal(t, 2, resp.Scene.CountByType(model.TraceScatter3D))
	assert.Equal(t, 2, resp.Scene.CountByType(model.TraceMesh3D))
	require.NotNil(t, resp.Scene.Layout.Title)
	assert.Equal(t, "Trayectorias y litologias 3D - wells.csv", resp.Scene.Layout.Title.Text)
	require.NotNil(t, resp.Summary)
	assert.Equal(t, 3, resp.Summary.Records)
}

func TestUploadSceneDataURL(t *testing.T) {
	withoutHistory(t)

	contents := "data:text/csv;base64," + base64.StdEncoding.EncodeToString([]byte(wellsCSV))
	rec := httptest.NewRecorder()
	UploadScene(rec, jsonRequest(t, "/api/v1/scene", UploadRequest{Contents: contents, Filename: "pozos.csv"}))

	resp := decodeScene(t, rec)
	assert.Nil(t, resp.Error)
	assert.Equal(t, "pozos.csv", resp.Filename)
	assert.Len(t, resp.Scene.Data, 4)
}

func TestUploadSceneRawBody(t *testing.T) {
	withoutHistory(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/scene?filename=raw.csv", strings.NewReader(wellsCSV))
	req.Header.Set("Content-Type", "text/csv")
	rec := httptest.NewRecorder()
	UploadScene(rec, req)

	resp := decodeScene(t, rec)
	assert.Equal(t, "raw.csv", resp.Filename)
	assert.Len(t, resp.Scene.Data, 4)
}

func TestUploadSceneMalformedIsNotATransportError(t *testing.T) {
	withoutHistory(t)

	tests := []struct {
		name string
		req  func(t *testing.T) *http.Request
	}{
		{"missing column", func(t *testing.T) *http.Request {
			return multipartRequest(t, "/api/v1/scene", "file", "bad.csv", "pozo,litologia,x,y\na,b,1,2\n")
		}},
		{"non numeric", func(t *testing.T) *http.Request {
			return multipartRequest(t, "/api/v1/scene", "file", "bad.csv", "pozo,litologia,x,y,z\na,b,uno,2,3\n")
		}},
		{"undecodable data url", func(t *testing.T) *http.Request {
			return jsonRequest(t, "/api/v1/scene", UploadRequest{Contents: "data:text/csv;base64,%%%", Filename: "bad.csv"})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			UploadScene(rec, tt.req(t))

			resp := decodeScene(t, rec)
			require.NotNil(t, resp.Error)
			assert.Equal(t, "malformed_input", resp.Error.Kind)
			assert.NotEmpty(t, resp.Error.Message)
			assert.Empty(t, resp.Scene.Data)
			assert.Nil(t, resp.Summary)
		})
	}
}

func TestUploadSceneRejectsBadRequests(t *testing.T) {
	withoutHistory(t)

	rec := httptest.NewRecorder()
	UploadScene(rec, multipartRequest(t, "/api/v1/scene", "other", "wells.csv", wellsCSV))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	UploadScene(rec, jsonRequest(t, "/api/v1/scene", UploadRequest{Filename: "x.csv"}))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/scene", strings.NewReader("{"))
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	UploadScene(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUploadSceneTooLarge(t *testing.T) {
	withoutHistory(t)
	prev := opts
	t.Cleanup(func() { opts = prev })
	Configure(Options{MaxUploadBytes: 16})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/scene", strings.NewReader(wellsCSV))
	req.Header.Set("Content-Type", "text/csv")
	rec := httptest.NewRecorder()
	UploadScene(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), "PAYLOAD_TOO_LARGE")
}

func TestUploadSceneRecordsHistory(t *testing.T) {
	withHistory(t)

	rec := httptest.NewRecorder()
	UploadScene(rec, multipartRequest(t, "/api/v1/scene", "file", "wells.csv", wellsCSV))
	ok := decodeScene(t, rec)

	rec = httptest.NewRecorder()
	UploadScene(rec, multipartRequest(t, "/api/v1/scene", "file", "bad.csv", "nope"))
	bad := decodeScene(t, rec)

	build, err := store.GetBuild(ok.BuildID)
	require.NoError(t, err)
	assert.Equal(t, model.BuildStatusOK, build.Status)
	assert.Equal(t, 3, build.Records)
	assert.Equal(t, 2, build.Wells)
	assert.Equal(t, 2, build.Lithologies)

	build, err = store.GetBuild(bad.BuildID)
	require.NoError(t, err)
	assert.Equal(t, model.BuildStatusMalformed, build.Status)
	assert.Contains(t, build.Error, "missing required column")
}

func TestListAndGetBuilds(t *testing.T) {
	withHistory(t)

	rec := httptest.NewRecorder()
	UploadScene(rec, multipartRequest(t, "/api/v1/scene", "file", "wells.csv", wellsCSV))
	resp := decodeScene(t, rec)

	rec = httptest.NewRecorder()
	ListBuilds(rec, httptest.NewRequest(http.MethodGet, "/api/v1/builds?limit=5", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var list struct {
		Builds []model.BuildRecord `json:"builds"`
		Count  int                 `json:"count"`
		Limit  int                 `json:"limit"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Count)
	assert.Equal(t, 5, list.Limit)
	assert.Equal(t, resp.BuildID, list.Builds[0].ID)

	rec = httptest.NewRecorder()
	GetBuild(rec, httptest.NewRequest(http.MethodGet, "/api/v1/builds/"+resp.BuildID, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	var build model.BuildRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &build))
	assert.Equal(t, "wells.csv", build.Filename)

	rec = httptest.NewRecorder()
	GetBuild(rec, httptest.NewRequest(http.MethodGet, "/api/v1/builds/unknown", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestBuildsWithHistoryDisabled(t *testing.T) {
	withoutHistory(t)

	rec := httptest.NewRecorder()
	ListBuilds(rec, httptest.NewRequest(http.MethodGet, "/api/v1/builds", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestPreviewScene(t *testing.T) {
	rec := httptest.NewRecorder()
	PreviewScene(rec, multipartRequest(t, "/api/v1/scene/preview", "file", "wells.csv", wellsCSV))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	_, err := png.Decode(rec.Body)
	assert.NoError(t, err)
}

func TestPreviewSceneMalformed(t *testing.T) {
	rec := httptest.NewRecorder()
	PreviewScene(rec, multipartRequest(t, "/api/v1/scene/preview", "file", "bad.csv", "pozo,x\n1,2\n"))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = httptest.NewRecorder()
	PreviewScene(rec, multipartRequest(t, "/api/v1/scene/preview", "file", "empty.csv", "pozo,litologia,x,y,z\n"))
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestIndexAndHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	Index(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	body := rec.Body.String()
	assert.Contains(t, body, "Arrastra o selecciona el archivo CSV")
	assert.Contains(t, body, "Mostrar en Pantalla Completa")
	assert.Contains(t, body, "requestFullscreen")

	withoutHistory(t)
	rec = httptest.NewRecorder()
	Health(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","history":false}`, rec.Body.String())
}
