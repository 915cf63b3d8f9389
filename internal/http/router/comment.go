package router

import (
	"github.com/gin-gonic/gin"

	"basegraph.app/planboard/internal/http/handler"
)

func CommentRouter(rg *gin.RouterGroup, h *handler.CommentHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.PATCH("/:commentId", h.Update)
	rg.DELETE("/:commentId", h.Delete)
}
