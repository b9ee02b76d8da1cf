package handler

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/ipupy/tesoreria/internal/service"
	"github.com/ipupy/tesoreria/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUploadHandler(t *testing.T) (*UploadHandler, string) {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "uploads")
	svc := service.NewUploadService(storage.NewLocalStorage(dir), "uploads")
	return NewUploadHandler(svc, 1<<20), dir
}

func TestUploadSuccess(t *testing.T) {
	h, dir := newUploadHandler(t)

	payload := make([]byte, 37)
	_, err := rand.Read(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/upload", bytes.NewReader(payload))
	rr := httptest.NewRecorder()

	h.Upload(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var resp uploadResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Regexp(t, `^uploads/informe_\d{8}_\d{6}_[0-9a-f]{8}\.jpg$`, resp.File)

	// Stored file must be byte-for-byte identical to the request body.
	got, err := os.ReadFile(filepath.Join(dir, filepath.Base(resp.File)))
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestUploadMissingContentLength(t *testing.T) {
	h, _ := newUploadHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/upload", bytes.NewReader([]byte("data")))
	req.ContentLength = -1 // chunked / absent header
	rr := httptest.NewRecorder()

	h.Upload(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.NotEmpty(t, resp.Error)
}

func TestUploadEmptyBody(t *testing.T) {
	h, _ := newUploadHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/upload", nil)
	rr := httptest.NewRecorder()

	h.Upload(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUploadBodyShorterThanDeclared(t *testing.T) {
	h, _ := newUploadHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/upload", bytes.NewReader([]byte("short")))
	req.ContentLength = 100
	rr := httptest.NewRecorder()

	h.Upload(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUploadTooLarge(t *testing.T) {
	h, _ := newUploadHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/upload", bytes.NewReader(make([]byte, 2<<20)))
	rr := httptest.NewRecorder()

	h.Upload(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestUploadSameSecondNoCollision(t *testing.T) {
	h, dir := newUploadHandler(t)

	var files []string
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/upload", bytes.NewReader([]byte("rapid upload")))
		rr := httptest.NewRecorder()
		h.Upload(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp uploadResponse
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		files = append(files, resp.File)
	}

	assert.NotEqual(t, files[0], files[1])
	assert.NotEqual(t, files[1], files[2])
	assert.NotEqual(t, files[0], files[2])

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}
