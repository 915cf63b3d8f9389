package router

import (
	"github.com/gin-gonic/gin"

	"basegraph.app/planboard/internal/http/handler"
)

func TaskRouter(rg *gin.RouterGroup, h *handler.TaskHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:taskId", h.Get)
	rg.PATCH("/:taskId", h.Update)
	rg.DELETE("/:taskId", h.Delete)
	rg.POST("/:taskId/move", h.Move)
}
