package dto

import (
	"time"

	"basegraph.app/planboard/internal/model"
)

type ListProjectsQuery struct {
	WorkspaceID int64 `form:"workspace_id" binding:"required"`
}

type AddProjectMemberRequest struct {
	MemberID int64 `json:"member_id,string" binding:"required"`
}

type RemoveProjectMemberQuery struct {
	MemberID int64 `form:"member_id" binding:"required"`
}

type ProjectResponse struct {
	ID          int64     `json:"id,string"`
	WorkspaceID int64     `json:"workspace_id,string"`
	Name        string    `json:"name"`
	ImageURL    *string   `json:"image_url,omitempty"`
	CreatedBy   int64     `json:"created_by,string"`
	AssigneeIDs []string  `json:"assignee_ids"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToProjectResponse(p model.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		WorkspaceID: p.WorkspaceID,
		Name:        p.Name,
		ImageURL:    p.ImageURL,
		CreatedBy:   p.CreatedBy,
		AssigneeIDs: idStrings(p.AssigneeIDs),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// AnalyticsResponse keeps the flat camelCase shape the dashboard cards read.
type AnalyticsResponse struct {
	TaskCount            int64          `json:"taskCount"`
	TaskDifference       int64          `json:"taskDifference"`
	AssignedTaskCount    int64          `json:"assignedTaskCount"`
	AssignedDifference   int64          `json:"assignedTaskDifference"`
	CompletedTaskCount   int64          `json:"completedTaskCount"`
	CompletedDifference  int64          `json:"completedTaskDifference"`
	IncompleteTaskCount  int64          `json:"incompleteTaskCount"`
	IncompleteDifference int64          `json:"incompleteTaskDifference"`
	OverdueTaskCount     int64          `json:"overdueTaskCount"`
	OverdueDifference    int64          `json:"overdueTaskDifference"`
	Trends               AnalyticsTrend `json:"trends"`
}

type AnalyticsTrend struct {
	Tasks      model.Trend `json:"tasks"`
	Assigned   model.Trend `json:"assigned"`
	Completed  model.Trend `json:"completed"`
	Incomplete model.Trend `json:"incomplete"`
	Overdue    model.Trend `json:"overdue"`
}

func ToAnalyticsResponse(a *model.Analytics) AnalyticsResponse {
	return AnalyticsResponse{
		TaskCount:            a.Tasks.Count,
		TaskDifference:       a.Tasks.Difference,
		AssignedTaskCount:    a.Assigned.Count,
		AssignedDifference:   a.Assigned.Difference,
		CompletedTaskCount:   a.Completed.Count,
		CompletedDifference:  a.Completed.Difference,
		IncompleteTaskCount:  a.Incomplete.Count,
		IncompleteDifference: a.Incomplete.Difference,
		OverdueTaskCount:     a.Overdue.Count,
		OverdueDifference:    a.Overdue.Difference,
		Trends: AnalyticsTrend{
			Tasks:      a.Tasks.Trend(),
			Assigned:   a.Assigned.Trend(),
			Completed:  a.Completed.Trend(),
			Incomplete: a.Incomplete.Trend(),
			Overdue:    a.Overdue.Trend(),
		},
	}
}
