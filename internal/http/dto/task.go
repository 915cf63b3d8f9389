package dto

import (
	"time"

	"basegraph.app/planboard/internal/model"
)

// ListTasksQuery mirrors the board filters. DueDate is a calendar day
// (YYYY-MM-DD) or an RFC 3339 timestamp.
type ListTasksQuery struct {
	WorkspaceID int64   `form:"workspace_id" binding:"required"`
	ProjectID   *int64  `form:"project_id"`
	Status      *string `form:"status"`
	AssigneeID  *int64  `form:"assignee_id"`
	DueDate     string  `form:"due_date"`
	Search      *string `form:"search" binding:"omitempty,max=255"`
	Order       string  `form:"order" binding:"omitempty,oneof=created position"`
}

type CreateTaskRequest struct {
	WorkspaceID int64            `json:"workspace_id,string" binding:"required"`
	ProjectID   int64            `json:"project_id,string" binding:"required"`
	Name        string           `json:"name" binding:"required,min=1,max=255"`
	Status      model.TaskStatus `json:"status" binding:"required"`
	DueDate     time.Time        `json:"due_date" binding:"required"`
	AssigneeIDs []string         `json:"assignee_ids" binding:"required,min=1,dive,required"`
	Description *string          `json:"description,omitempty" binding:"omitempty,max=10000"`
}

type UpdateTaskRequest struct {
	ProjectID   *string           `json:"project_id,omitempty"`
	Name        *string           `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Status      *model.TaskStatus `json:"status,omitempty"`
	DueDate     *time.Time        `json:"due_date,omitempty"`
	AssigneeIDs []string          `json:"assignee_ids,omitempty" binding:"omitempty,min=1,dive,required"`
	Description *string           `json:"description,omitempty" binding:"omitempty,max=10000"`
}

type MoveTaskRequest struct {
	Status model.TaskStatus `json:"status" binding:"required"`
	Index  *int             `json:"index" binding:"required,min=0"`
}

type ProjectBriefResponse struct {
	ID       int64   `json:"id,string"`
	Name     string  `json:"name"`
	ImageURL *string `json:"image_url,omitempty"`
}

type TaskResponse struct {
	ID          int64                 `json:"id,string"`
	WorkspaceID int64                 `json:"workspace_id,string"`
	ProjectID   int64                 `json:"project_id,string"`
	Name        string                `json:"name"`
	Status      model.TaskStatus      `json:"status"`
	AssigneeIDs []string              `json:"assignee_ids"`
	DueDate     time.Time             `json:"due_date"`
	Position    int64                 `json:"position"`
	Description *string               `json:"description,omitempty"`
	Project     *ProjectBriefResponse `json:"project,omitempty"`
	Assignees   []MemberResponse      `json:"assignees,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

func ToTaskResponse(t model.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		WorkspaceID: t.WorkspaceID,
		ProjectID:   t.ProjectID,
		Name:        t.Name,
		Status:      t.Status,
		AssigneeIDs: idStrings(t.AssigneeIDs),
		DueDate:     t.DueDate,
		Position:    t.Position,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func ToTaskViewResponse(v model.TaskView) TaskResponse {
	resp := ToTaskResponse(v.Task)
	if v.Project != nil {
		resp.Project = &ProjectBriefResponse{ID: v.Project.ID, Name: v.Project.Name, ImageURL: v.Project.ImageURL}
	}
	resp.Assignees = make([]MemberResponse, len(v.Assignees))
	for i, a := range v.Assignees {
		resp.Assignees[i] = ToMemberProfileResponse(a)
	}
	return resp
}
