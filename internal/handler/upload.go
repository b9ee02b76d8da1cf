package handler

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/ipupy/tesoreria/internal/service"
)

type UploadHandler struct {
	uploadService *service.UploadService
	maxBytes      int64
}

func NewUploadHandler(uploadService *service.UploadService, maxBytes int64) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		maxBytes:      maxBytes,
	}
}

type uploadResponse struct {
	Status string `json:"status"`
	File   string `json:"file"`
}

// Upload receives a raw receipt image in the request body and writes
// it under the uploads directory. The declared Content-Length must
// match the bytes actually received.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength <= 0 {
		respondError(w, http.StatusBadRequest, "Content-Length header is required")
		return
	}
	if r.ContentLength > h.maxBytes {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("upload exceeds maximum size of %d bytes", h.maxBytes))
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBytes))
	if err != nil {
		respondError(w, http.StatusBadRequest, "failed to read request body")
		return
	}
	if int64(len(body)) != r.ContentLength {
		respondError(w, http.StatusBadRequest, "request body shorter than declared Content-Length")
		return
	}

	path, err := h.uploadService.SaveReceipt(bytes.NewReader(body))
	if err != nil {
		slog.Error("failed to save receipt", "error", err, "size", len(body))
		respondError(w, http.StatusInternalServerError, "failed to store uploaded file")
		return
	}

	slog.Info("receipt uploaded", "file", path, "size", len(body))
	respondJSON(w, http.StatusOK, uploadResponse{Status: "success", File: path})
}
