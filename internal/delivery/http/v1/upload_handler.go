package v1

import (
	"bytes"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go-careers-backend/internal/delivery/http/response"
	"go-careers-backend/pkg/apperror"
	"go-careers-backend/pkg/blob"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// contentTypes maps file extensions for legacy locally-stored uploads.
var contentTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
}

type UploadHandler struct {
	store      blob.Store
	uploadsDir string
}

// NewUploadHandler wires resume intake. store may be nil when blob storage is
// not configured; uploads then fail with a server configuration error rather
// than a client error.
func NewUploadHandler(uploads *gin.RouterGroup, store blob.Store, uploadsDir string) {
	handler := &UploadHandler{store: store, uploadsDir: uploadsDir}

	uploads.POST("", handler.Upload)
	uploads.GET("/*path", handler.Serve)
}

// Upload accepts a single resume, applies the intake policy, and stores it
// under a collision-resistant key.
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("No file provided"))
		return
	}

	if h.store == nil {
		c.Error(apperror.New(http.StatusInternalServerError, "Server configuration error", nil))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer file.Close()

	// Small cap, so buffering the whole file is fine.
	data, err := io.ReadAll(io.LimitReader(file, blob.MaxFileSize+1))
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	result := blob.ValidateResume(fileHeader.Filename, int64(len(data)), fileHeader.Header.Get("Content-Type"), data)
	if !result.Valid {
		c.Error(apperror.BadRequest(result.Error))
		return
	}

	key := blob.ResumePrefix + uuid.NewString() + result.Extension

	url, err := h.store.Put(c.Request.Context(), key, bytes.NewReader(data), blob.AllowedMIME)
	if err != nil {
		c.Error(apperror.New(http.StatusInternalServerError, "Failed to upload file", err))
		return
	}

	response.Success(c, http.StatusOK, "File uploaded successfully", gin.H{
		"filename":     key,
		"originalName": fileHeader.Filename,
		"url":          url,
		"size":         len(data),
	})
}

// Serve returns legacy resumes stored on local disk before blob storage was
// introduced. New uploads are served from their public blob URL instead.
func (h *UploadHandler) Serve(c *gin.Context) {
	rel := strings.TrimPrefix(c.Param("path"), "/")

	base, err := filepath.Abs(h.uploadsDir)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	fullPath := filepath.Join(base, filepath.FromSlash(rel))

	// Path traversal guard
	resolved, err := filepath.Abs(fullPath)
	if err != nil || !strings.HasPrefix(resolved, base+string(os.PathSeparator)) {
		c.Error(apperror.Forbidden("Access denied"))
		return
	}

	info, err := os.Stat(resolved)
	if err != nil || info.IsDir() {
		c.Error(apperror.NotFound("File not found"))
		return
	}

	contentType := contentTypes[strings.ToLower(filepath.Ext(resolved))]
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Content-Type", contentType)
	c.Header("Content-Disposition", `inline; filename="`+filepath.Base(resolved)+`"`)
	c.File(resolved)
}
