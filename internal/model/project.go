package model

import (
	"slices"
	"time"
)

type Project struct {
	ID          int64     `json:"id"`
	WorkspaceID int64     `json:"workspace_id"`
	Name        string    `json:"name"`
	ImageURL    *string   `json:"image_url,omitempty"`
	CreatedBy   int64     `json:"created_by"`
	AssigneeIDs []int64   `json:"assignee_ids"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// HasAssignee reports whether memberID has been granted access to the project.
func (p *Project) HasAssignee(memberID int64) bool {
	return slices.Contains(p.AssigneeIDs, memberID)
}

// CanAccess is the project visibility rule: admins see everything, everyone
// else only projects they are assigned to.
func (p *Project) CanAccess(m *Member) bool {
	if m == nil || m.WorkspaceID != p.WorkspaceID {
		return false
	}
	return m.IsAdmin() || p.HasAssignee(m.ID)
}
