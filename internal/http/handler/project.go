package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"basegraph.app/planboard/common/id"
	"basegraph.app/planboard/internal/http/dto"
	"basegraph.app/planboard/internal/service"
)

type ProjectHandler struct {
	projects  service.ProjectService
	analytics service.AnalyticsService
}

func NewProjectHandler(projects service.ProjectService, analytics service.AnalyticsService) *ProjectHandler {
	return &ProjectHandler{projects: projects, analytics: analytics}
}

func (h *ProjectHandler) List(c *gin.Context) {
	var q dto.ListProjectsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "workspace_id is required")
		return
	}

	projects, err := h.projects.List(c.Request.Context(), userID(c), q.WorkspaceID)
	if err != nil {
		respondError(c, err, "failed to list projects")
		return
	}
	c.JSON(http.StatusOK, dto.Map(projects, dto.ToProjectResponse))
}

// Create takes a multipart form with name, workspace_id and an optional image.
func (h *ProjectHandler) Create(c *gin.Context) {
	name, ok := c.GetPostForm("name")
	if !ok || strings.TrimSpace(name) == "" {
		badRequest(c, "name is required")
		return
	}
	workspaceID, err := id.Parse(c.PostForm("workspace_id"))
	if err != nil {
		badRequest(c, "workspace_id is required")
		return
	}
	image, closer, err := formUpload(c, "image")
	if err != nil {
		badRequest(c, "invalid image upload")
		return
	}
	defer closer.Close()

	project, err := h.projects.Create(c.Request.Context(), userID(c), service.CreateProjectParams{
		WorkspaceID: workspaceID,
		Name:        name,
		Image:       image,
	})
	if err != nil {
		respondError(c, err, "failed to create project")
		return
	}
	c.JSON(http.StatusCreated, dto.ToProjectResponse(*project))
}

func (h *ProjectHandler) Get(c *gin.Context) {
	projectID, ok := pathID(c, "projectId")
	if !ok {
		return
	}
	project, err := h.projects.Get(c.Request.Context(), userID(c), projectID)
	if err != nil {
		respondError(c, err, "failed to get project")
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(*project))
}

func (h *ProjectHandler) Update(c *gin.Context) {
	projectID, ok := pathID(c, "projectId")
	if !ok {
		return
	}

	var params service.UpdateProjectParams
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

	project, err := h.projects.Update(c.Request.Context(), userID(c), projectID, params)
	if err != nil {
		respondError(c, err, "failed to update project")
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(*project))
}

func (h *ProjectHandler) Delete(c *gin.Context) {
	projectID, ok := pathID(c, "projectId")
	if !ok {
		return
	}
	if err := h.projects.Delete(c.Request.Context(), userID(c), projectID); err != nil {
		respondError(c, err, "failed to delete project")
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": formatID(projectID)})
}

func (h *ProjectHandler) Members(c *gin.Context) {
	projectID, ok := pathID(c, "projectId")
	if !ok {
		return
	}
	profiles, err := h.projects.Members(c.Request.Context(), userID(c), projectID)
	if err != nil {
		respondError(c, err, "failed to list project members")
		return
	}
	c.JSON(http.StatusOK, dto.Map(profiles, dto.ToMemberProfileResponse))
}

func (h *ProjectHandler) AddMember(c *gin.Context) {
	projectID, ok := pathID(c, "projectId")
	if !ok {
		return
	}
	var req dto.AddProjectMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "member_id is required")
		return
	}

	project, err := h.projects.AddMember(c.Request.Context(), userID(c), projectID, req.MemberID)
	if err != nil {
		respondError(c, err, "failed to add project member")
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(*project))
}

func (h *ProjectHandler) RemoveMember(c *gin.Context) {
	projectID, ok := pathID(c, "projectId")
	if !ok {
		return
	}
	var q dto.RemoveProjectMemberQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "member_id is required")
		return
	}

	project, err := h.projects.RemoveMember(c.Request.Context(), userID(c), projectID, q.MemberID)
	if err != nil {
		respondError(c, err, "failed to remove project member")
		return
	}
	c.JSON(http.StatusOK, dto.ToProjectResponse(*project))
}

func (h *ProjectHandler) Analytics(c *gin.Context) {
	projectID, ok := pathID(c, "projectId")
	if !ok {
		return
	}
	result, err := h.analytics.Project(c.Request.Context(), userID(c), projectID)
	if err != nil {
		respondError(c, err, "failed to compute project analytics")
		return
	}
	c.JSON(http.StatusOK, dto.ToAnalyticsResponse(result))
}
