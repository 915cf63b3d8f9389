package model

import "time"

type TaskStatus string

const (
	TaskStatusBacklog    TaskStatus = "BACKLOG"
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusInReview   TaskStatus = "IN_REVIEW"
	TaskStatusDone       TaskStatus = "DONE"
)

var TaskStatuses = []TaskStatus{
	TaskStatusBacklog,
	TaskStatusTodo,
	TaskStatusInProgress,
	TaskStatusInReview,
	TaskStatusDone,
}

func (s TaskStatus) Valid() bool {
	for _, v := range TaskStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Task struct {
	ID          int64      `json:"id"`
	WorkspaceID int64      `json:"workspace_id"`
	ProjectID   int64      `json:"project_id"`
	Name        string     `json:"name"`
	Status      TaskStatus `json:"status"`
	AssigneeIDs []int64    `json:"assignee_ids"`
	DueDate     time.Time  `json:"due_date"`
	Position    int64      `json:"position"`
	Description *string    `json:"description,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// IsOverdue is true only for unfinished tasks whose due date is strictly before now.
func (t *Task) IsOverdue(now time.Time) bool {
	return t.Status != TaskStatusDone && t.DueDate.Before(now)
}

type TaskOrder string

const (
	TaskOrderCreated  TaskOrder = "created"
	TaskOrderPosition TaskOrder = "position"
)

// TaskFilter holds the optional list filters; unset fields do not constrain.
// ProjectIDs restricts results to a set of projects (used for visibility).
type TaskFilter struct {
	WorkspaceID int64
	ProjectID   *int64
	ProjectIDs  []int64
	Status      *TaskStatus
	AssigneeID  *int64
	DueDate     *time.Time
	Search      *string
	Order       TaskOrder
}

// TaskCountFilter scopes an analytics count. CreatedFrom is inclusive and
// CreatedBefore exclusive.
type TaskCountFilter struct {
	WorkspaceID   int64
	ProjectID     *int64
	AssigneeID    *int64
	Status        *TaskStatus
	ExcludeStatus *TaskStatus
	DueBefore     *time.Time
	CreatedFrom   time.Time
	CreatedBefore time.Time
}

// TaskView is a task with its project and assignees resolved for display.
type TaskView struct {
	Task
	Project   *ProjectBrief   `json:"project,omitempty"`
	Assignees []MemberProfile `json:"assignees"`
}

type ProjectBrief struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	ImageURL *string `json:"image_url,omitempty"`
}
