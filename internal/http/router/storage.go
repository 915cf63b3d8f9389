package router

import (
	"github.com/gin-gonic/gin"

	"basegraph.app/planboard/internal/http/handler"
)

func StorageRouter(rg *gin.RouterGroup, h *handler.FileHandler) {
	rg.GET("/buckets/:bucketId/files/:fileId/download", h.Download)
}
