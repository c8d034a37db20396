package handler

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/factura/backend/internal/application/transfer"
	"github.com/gin-gonic/gin"
)

// BackupHandler handles backup export and import endpoints
type BackupHandler struct {
	BaseHandler
	backupService *transfer.BackupService
}

// NewBackupHandler creates a new BackupHandler
func NewBackupHandler(backupService *transfer.BackupService) *BackupHandler {
	return &BackupHandler{
		backupService: backupService,
	}
}

// Export handles GET /transfer/backup. It streams the full store as a
// dated JSON attachment.
func (h *BackupHandler) Export(c *gin.Context) {
	document, filename, err := h.backupService.Export(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/json", document)
}

// Import handles POST /transfer/backup. The body is the backup document
// itself; either raw JSON or a multipart upload under the "file" field.
// A rejected document leaves the store untouched.
func (h *BackupHandler) Import(c *gin.Context) {
	document, err := h.readDocument(c)
	if err != nil {
		h.BadRequest(c, "Could not read backup document")
		return
	}

	if err := h.backupService.Import(c.Request.Context(), document); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"restored": true})
}

func (h *BackupHandler) readDocument(c *gin.Context) ([]byte, error) {
	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		return c.GetRawData()
	}

	file, err := c.FormFile("file")
	if err != nil {
		return nil, err
	}
	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
