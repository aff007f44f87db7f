package handler

import (
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	apperrors "go-well-viewer/internal/pkg/errors"
	"go-well-viewer/internal/scene"
	"go-well-viewer/pkg/utils"
)

const defaultFilename = "upload.csv"

// Options holds request limits shared by all handlers
type Options struct {
	MaxUploadBytes int64
	HistoryLimit   int
}

var opts = Options{
	MaxUploadBytes: 32 << 20,
	HistoryLimit:   50,
}

// Configure sets the handler limits; zero values keep the defaults
func Configure(o Options) {
	if o.MaxUploadBytes > 0 {
		opts.MaxUploadBytes = o.MaxUploadBytes
	}
	if o.HistoryLimit > 0 {
		opts.HistoryLimit = o.HistoryLimit
	}
}

// UploadRequest is the JSON form of an upload, mirroring what browser upload
// widgets hand over: a data URL plus the selected file name.
type UploadRequest struct {
	Contents string `json:"contents"`
	Filename string `json:"filename"`
}

// upload is a payload extracted from a request. decodeErr is set when the
// request was well formed but its contents could not be decoded.
type upload struct {
	payload   []byte
	filename  string
	decodeErr error
}

// readUpload accepts multipart (field "file"), JSON (UploadRequest) or a raw CSV body
func readUpload(w http.ResponseWriter, r *http.Request) (upload, error) {
	r.Body = http.MaxBytesReader(w, r.Body, opts.MaxUploadBytes)

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch mediaType {
	case "multipart/form-data":
		return readMultipart(r)
	case "application/json":
		return readJSON(r)
	default:
		payload, err := io.ReadAll(r.Body)
		if err != nil {
			return upload{}, bodyError(err)
		}
		name := r.URL.Query().Get("filename")
		return upload{payload: payload, filename: utils.DisplayName(name, defaultFilename)}, nil
	}
}

func readMultipart(r *http.Request) (upload, error) {
	if err := r.ParseMultipartForm(opts.MaxUploadBytes); err != nil {
		return upload{}, bodyError(err)
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return upload{}, apperrors.BadRequest("file field is required")
	}
	defer file.Close()

	payload, err := io.ReadAll(file)
	if err != nil {
		return upload{}, bodyError(err)
	}
	return upload{payload: payload, filename: utils.DisplayName(header.Filename, defaultFilename)}, nil
}

func readJSON(r *http.Request) (upload, error) {
	var req UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return upload{}, bodyError(err)
	}
	if strings.TrimSpace(req.Contents) == "" {
		return upload{}, apperrors.BadRequest("contents is required")
	}

	up := upload{filename: utils.DisplayName(req.Filename, defaultFilename)}
	up.payload, up.decodeErr = scene.DecodeUpload(req.Contents)
	return up, nil
}

func bodyError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return apperrors.PayloadTooLarge(tooLarge.Limit)
	}
	return apperrors.BadRequest("invalid request body").WithError(err)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
