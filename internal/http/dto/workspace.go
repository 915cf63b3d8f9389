package dto

import (
	"time"

	"basegraph.app/planboard/internal/model"
)

type JoinWorkspaceRequest struct {
	InviteCode string `json:"invite_code" binding:"required,len=6"`
}

type WorkspaceResponse struct {
	ID          int64     `json:"id,string"`
	Name        string    `json:"name"`
	ImageURL    *string   `json:"image_url,omitempty"`
	InviteCode  string    `json:"invite_code"`
	OwnerUserID int64     `json:"owner_user_id,string"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToWorkspaceResponse(ws model.Workspace) WorkspaceResponse {
	return WorkspaceResponse{
		ID:          ws.ID,
		Name:        ws.Name,
		ImageURL:    ws.ImageURL,
		InviteCode:  ws.InviteCode,
		OwnerUserID: ws.OwnerUserID,
		CreatedAt:   ws.CreatedAt,
		UpdatedAt:   ws.UpdatedAt,
	}
}
