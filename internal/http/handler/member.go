package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"basegraph.app/planboard/internal/http/dto"
	"basegraph.app/planboard/internal/service"
)

type MemberHandler struct {
	members service.MemberService
}

func NewMemberHandler(members service.MemberService) *MemberHandler {
	return &MemberHandler{members: members}
}

func (h *MemberHandler) List(c *gin.Context) {
	var q dto.ListMembersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "workspace_id is required")
		return
	}

	profiles, err := h.members.List(c.Request.Context(), userID(c), q.WorkspaceID, q.ProjectID)
	if err != nil {
		respondError(c, err, "failed to list members")
		return
	}
	c.JSON(http.StatusOK, dto.Map(profiles, dto.ToMemberProfileResponse))
}

func (h *MemberHandler) NonProject(c *gin.Context) {
	var q dto.NonProjectMembersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "workspace_id and project_id are required")
		return
	}

	profiles, err := h.members.NonProject(c.Request.Context(), userID(c), q.WorkspaceID, q.ProjectID)
	if err != nil {
		respondError(c, err, "failed to list members")
		return
	}
	c.JSON(http.StatusOK, dto.Map(profiles, dto.ToMemberProfileResponse))
}

func (h *MemberHandler) Delete(c *gin.Context) {
	memberID, ok := pathID(c, "memberId")
	if !ok {
		return
	}
	if err := h.members.Delete(c.Request.Context(), userID(c), memberID); err != nil {
		respondError(c, err, "failed to delete member")
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": formatID(memberID)})
}

func (h *MemberHandler) UpdateRole(c *gin.Context) {
	memberID, ok := pathID(c, "memberId")
	if !ok {
		return
	}
	var req dto.UpdateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "role must be ADMIN or MEMBER")
		return
	}

	member, err := h.members.UpdateRole(c.Request.Context(), userID(c), memberID, req.Role)
	if err != nil {
		respondError(c, err, "failed to update member role")
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(*member))
}
