package router

import (
	"github.com/gin-gonic/gin"

	"basegraph.app/planboard/internal/http/handler"
)

func WorkspaceRouter(rg *gin.RouterGroup, h *handler.WorkspaceHandler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:workspaceId", h.Get)
	rg.PATCH("/:workspaceId", h.Update)
	rg.DELETE("/:workspaceId", h.Delete)
	rg.POST("/:workspaceId/reset-invite-code", h.ResetInviteCode)
	rg.POST("/:workspaceId/join", h.Join)
	rg.GET("/:workspaceId/analytics", h.Analytics)
}
