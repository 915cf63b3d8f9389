package router

import (
	"github.com/gin-gonic/gin"

	"basegraph.app/planboard/internal/http/handler"
)

func MemberRouter(rg *gin.RouterGroup, h *handler.MemberHandler) {
	rg.GET("", h.List)
	rg.GET("/non-project", h.NonProject)
	rg.DELETE("/:memberId", h.Delete)
	rg.PATCH("/:memberId", h.UpdateRole)
}
