package handler

import (
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	"basegraph.app/planboard/internal/service"
)

type FileHandler struct {
	files service.FileService
}

func NewFileHandler(files service.FileService) *FileHandler {
	return &FileHandler{files: files}
}

// Download streams a stored file as an attachment to a member of its workspace.
func (h *FileHandler) Download(c *gin.Context) {
	fileID, ok := pathID(c, "fileId")
	if !ok {
		return
	}

	f, data, err := h.files.Download(c.Request.Context(), userID(c), c.Param("bucketId"), fileID)
	if err != nil {
		respondError(c, err, "failed to read file")
		return
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": f.Name}))
	c.Data(http.StatusOK, f.MimeType, data)
}
