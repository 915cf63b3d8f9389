package router

import (
	"github.com/gin-gonic/gin"

	"basegraph.app/planboard/internal/http/handler"
)

func ProjectRouter(rg *gin.RouterGroup, h *handler.ProjectHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:projectId", h.Get)
	rg.PATCH("/:projectId", h.Update)
	rg.DELETE("/:projectId", h.Delete)
	rg.GET("/:projectId/members", h.Members)
	rg.PATCH("/:projectId/add-member", h.AddMember)
	rg.DELETE("/:projectId/remove-member", h.RemoveMember)
	rg.GET("/:projectId/analytics", h.Analytics)
}
