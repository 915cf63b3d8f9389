package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"basegraph.app/planboard/common/id"
	"basegraph.app/planboard/internal/http/dto"
	"basegraph.app/planboard/internal/model"
	"basegraph.app/planboard/internal/service"
)

type TaskHandler struct {
	tasks service.TaskService
}

func NewTaskHandler(tasks service.TaskService) *TaskHandler {
	return &TaskHandler{tasks: tasks}
}

func (h *TaskHandler) List(c *gin.Context) {
	var q dto.ListTasksQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, "invalid task filters: "+err.Error())
		return
	}

	filter := model.TaskFilter{
		WorkspaceID: q.WorkspaceID,
		ProjectID:   q.ProjectID,
		AssigneeID:  q.AssigneeID,
		Order:       model.TaskOrder(q.Order),
	}
	if q.Status != nil {
		status := model.TaskStatus(*q.Status)
		filter.Status = &status
	}
	if q.Search != nil {
		if s := strings.TrimSpace(*q.Search); s != "" {
			filter.Search = &s
		}
	}
	if q.DueDate != "" {
		due, err := parseDueDate(q.DueDate)
		if err != nil {
			badRequest(c, "due_date must be YYYY-MM-DD or RFC 3339")
			return
		}
		filter.DueDate = &due
	}

	views, err := h.tasks.List(c.Request.Context(), userID(c), filter)
	if err != nil {
		respondError(c, err, "failed to list tasks")
		return
	}
	c.JSON(http.StatusOK, dto.Map(views, dto.ToTaskViewResponse))
}

func (h *TaskHandler) Get(c *gin.Context) {
	taskID, ok := pathID(c, "taskId")
	if !ok {
		return
	}
	view, err := h.tasks.Get(c.Request.Context(), userID(c), taskID)
	if err != nil {
		respondError(c, err, "failed to get task")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskViewResponse(*view))
}

func (h *TaskHandler) Create(c *gin.Context) {
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	assignees, err := parseIDs(req.AssigneeIDs)
	if err != nil {
		badRequest(c, "invalid assignee_ids")
		return
	}

	task, err := h.tasks.Create(c.Request.Context(), userID(c), service.CreateTaskParams{
		WorkspaceID: req.WorkspaceID,
		ProjectID:   req.ProjectID,
		Name:        req.Name,
		Status:      req.Status,
		DueDate:     req.DueDate,
		AssigneeIDs: assignees,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err, "failed to create task")
		return
	}
	c.JSON(http.StatusCreated, dto.ToTaskResponse(*task))
}

func (h *TaskHandler) Update(c *gin.Context) {
	taskID, ok := pathID(c, "taskId")
	if !ok {
		return
	}
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	params := service.UpdateTaskParams{
		Name:        req.Name,
		Status:      req.Status,
		DueDate:     req.DueDate,
		Description: req.Description,
	}
	if req.ProjectID != nil {
		projectID, err := id.Parse(*req.ProjectID)
		if err != nil {
			badRequest(c, "invalid project_id")
			return
		}
		params.ProjectID = &projectID
	}
	if req.AssigneeIDs != nil {
		assignees, err := parseIDs(req.AssigneeIDs)
		if err != nil {
			badRequest(c, "invalid assignee_ids")
			return
		}
		params.AssigneeIDs = assignees
	}

	task, err := h.tasks.Update(c.Request.Context(), userID(c), taskID, params)
	if err != nil {
		respondError(c, err, "failed to update task")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskResponse(*task))
}

func (h *TaskHandler) Delete(c *gin.Context) {
	taskID, ok := pathID(c, "taskId")
	if !ok {
		return
	}
	if err := h.tasks.Delete(c.Request.Context(), userID(c), taskID); err != nil {
		respondError(c, err, "failed to delete task")
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": formatID(taskID)})
}

// Move places a dragged card at index within the destination column.
func (h *TaskHandler) Move(c *gin.Context) {
	taskID, ok := pathID(c, "taskId")
	if !ok {
		return
	}
	var req dto.MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "status and a non-negative index are required")
		return
	}

	task, err := h.tasks.Move(c.Request.Context(), userID(c), taskID, req.Status, *req.Index)
	if err != nil {
		respondError(c, err, "failed to move task")
		return
	}
	c.JSON(http.StatusOK, dto.ToTaskResponse(*task))
}

func parseDueDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
