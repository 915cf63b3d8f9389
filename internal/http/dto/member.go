package dto

import (
	"time"

	"basegraph.app/planboard/internal/model"
)

type ListMembersQuery struct {
	WorkspaceID int64  `form:"workspace_id" binding:"required"`
	ProjectID   *int64 `form:"project_id"`
}

type NonProjectMembersQuery struct {
	WorkspaceID int64 `form:"workspace_id" binding:"required"`
	ProjectID   int64 `form:"project_id" binding:"required"`
}

type UpdateMemberRoleRequest struct {
	Role model.Role `json:"role" binding:"required,oneof=ADMIN MEMBER"`
}

type MemberResponse struct {
	ID          int64      `json:"id,string"`
	WorkspaceID int64      `json:"workspace_id,string"`
	UserID      int64      `json:"user_id,string"`
	Role        model.Role `json:"role"`
	Name        string     `json:"name,omitempty"`
	Email       string     `json:"email,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func ToMemberResponse(m model.Member) MemberResponse {
	return MemberResponse{
		ID:          m.ID,
		WorkspaceID: m.WorkspaceID,
		UserID:      m.UserID,
		Role:        m.Role,
		CreatedAt:   m.CreatedAt,
	}
}

func ToMemberProfileResponse(p model.MemberProfile) MemberResponse {
	resp := ToMemberResponse(p.Member)
	resp.Name = p.Name
	resp.Email = p.Email
	return resp
}
