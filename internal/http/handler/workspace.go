package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"basegraph.app/planboard/internal/http/dto"
	"basegraph.app/planboard/internal/service"
)

type WorkspaceHandler struct {
	workspaces service.WorkspaceService
	analytics  service.AnalyticsService
}

func NewWorkspaceHandler(workspaces service.WorkspaceService, analytics service.AnalyticsService) *WorkspaceHandler {
	return &WorkspaceHandler{workspaces: workspaces, analytics: analytics}
}

func (h *WorkspaceHandler) List(c *gin.Context) {
	workspaces, err := h.workspaces.List(c.Request.Context(), userID(c))
	if err != nil {
		respondError(c, err, "failed to list workspaces")
		return
	}
	c.JSON(http.StatusOK, dto.Map(workspaces, dto.ToWorkspaceResponse))
}

// Create takes a multipart form with name and an optional image.
func (h *WorkspaceHandler) Create(c *gin.Context) {
	name, ok := c.GetPostForm("name")
	if !ok || strings.TrimSpace(name) == "" {
		badRequest(c, "name is required")
		return
	}
	image, closer, err := formUpload(c, "image")
	if err != nil {
		badRequest(c, "invalid image upload")
		return
	}
	defer closer.Close()

	ws, err := h.workspaces.Create(c.Request.Context(), userID(c), service.CreateWorkspaceParams{Name: name, Image: image})
	if err != nil {
		respondError(c, err, "failed to create workspace")
		return
	}
	c.JSON(http.StatusCreated, dto.ToWorkspaceResponse(*ws))
}

func (h *WorkspaceHandler) Get(c *gin.Context) {
	workspaceID, ok := pathID(c, "workspaceId")
	if !ok {
		return
	}
	ws, err := h.workspaces.Get(c.Request.Context(), userID(c), workspaceID)
	if err != nil {
		respondError(c, err, "failed to get workspace")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(*ws))
}

func (h *WorkspaceHandler) Update(c *gin.Context) {
	workspaceID, ok := pathID(c, "workspaceId")
	if !ok {
		return
	}

	var params service.UpdateWorkspaceParams
	if name, ok := c.GetPostForm("name"); ok {
		params.Name = &name
	}
	image, closer, err := formUpload(c, "image")
	if err != nil {
		badRequest(c, "invalid image upload")
		return
	}
	defer closer.Close()
	params.Image = image

	ws, err := h.workspaces.Update(c.Request.Context(), userID(c), workspaceID, params)
	if err != nil {
		respondError(c, err, "failed to update workspace")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(*ws))
}

func (h *WorkspaceHandler) Delete(c *gin.Context) {
	workspaceID, ok := pathID(c, "workspaceId")
	if !ok {
		return
	}
	if err := h.workspaces.Delete(c.Request.Context(), userID(c), workspaceID); err != nil {
		respondError(c, err, "failed to delete workspace")
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": formatID(workspaceID)})
}

func (h *WorkspaceHandler) ResetInviteCode(c *gin.Context) {
	workspaceID, ok := pathID(c, "workspaceId")
	if !ok {
		return
	}
	ws, err := h.workspaces.ResetInviteCode(c.Request.Context(), userID(c), workspaceID)
	if err != nil {
		respondError(c, err, "failed to reset invite code")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(*ws))
}

func (h *WorkspaceHandler) Join(c *gin.Context) {
	workspaceID, ok := pathID(c, "workspaceId")
	if !ok {
		return
	}
	var req dto.JoinWorkspaceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invite_code is required")
		return
	}

	ws, err := h.workspaces.Join(c.Request.Context(), userID(c), workspaceID, req.InviteCode)
	if err != nil {
		respondError(c, err, "failed to join workspace")
		return
	}
	c.JSON(http.StatusOK, dto.ToWorkspaceResponse(*ws))
}

func (h *WorkspaceHandler) Analytics(c *gin.Context) {
	workspaceID, ok := pathID(c, "workspaceId")
	if !ok {
		return
	}
	result, err := h.analytics.Workspace(c.Request.Context(), userID(c), workspaceID)
	if err != nil {
		respondError(c, err, "failed to compute workspace analytics")
		return
	}
	c.JSON(http.StatusOK, dto.ToAnalyticsResponse(result))
}
