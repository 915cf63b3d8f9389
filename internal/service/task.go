package service

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"basegraph.app/planboard/common/id"
	"basegraph.app/planboard/common/logger"
	"basegraph.app/planboard/internal/model"
	"basegraph.app/planboard/internal/ordering"
	"basegraph.app/planboard/internal/store"
)

type CreateTaskParams struct {
	WorkspaceID int64
	ProjectID   int64
	Name        string
	Status      model.TaskStatus
	DueDate     time.Time
	AssigneeIDs []int64
	Description *string
}

// UpdateTaskParams holds optional changes; nil fields are left as they are.
type UpdateTaskParams struct {
	ProjectID   *int64
	Name        *string
	Status      *model.TaskStatus
	DueDate     *time.Time
	AssigneeIDs []int64
	Description *string
}

type TaskService interface {
	List(ctx context.Context, userID int64, filter model.TaskFilter) ([]model.TaskView, error)
	Get(ctx context.Context, userID, taskID int64) (*model.TaskView, error)
	Create(ctx context.Context, userID int64, params CreateTaskParams) (*model.Task, error)
	Update(ctx context.Context, userID, taskID int64, params UpdateTaskParams) (*model.Task, error)
	Delete(ctx context.Context, userID, taskID int64) error
	// Move puts the task in the status column so that it ends up at index
	// among the other tasks of that column.
	Move(ctx context.Context, userID, taskID int64, status model.TaskStatus, index int) (*model.Task, error)
}

type taskService struct {
	stores   StoreProvider
	tx       TxRunner
	ordering ordering.Strategy
}

func NewTaskService(stores StoreProvider, tx TxRunner, strategy ordering.Strategy) TaskService {
	if strategy == nil {
		strategy = ordering.NewSparse()
	}
	return &taskService{stores: stores, tx: tx, ordering: strategy}
}

func (s *taskService) List(ctx context.Context, userID int64, filter model.TaskFilter) ([]model.TaskView, error) {
	member, err := ResolveMember(ctx, s.stores.Members(), filter.WorkspaceID, userID)
	if err != nil {
		return nil, err
	}
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, validationf("unknown status %q", *filter.Status)
	}

	switch {
	case filter.ProjectID != nil:
		project, err := s.stores.Projects().GetByID(ctx, *filter.ProjectID)
		if err != nil {
			return nil, lookupErr(err, "project")
		}
		if project.WorkspaceID != filter.WorkspaceID {
			return nil, fmt.Errorf("%w: project", ErrNotFound)
		}
		if !project.CanAccess(member) {
			return nil, ErrForbidden
		}
	case !member.IsAdmin():
		projects, err := visibleProjects(ctx, s.stores, member)
		if err != nil {
			return nil, err
		}
		if len(projects) == 0 {
			return []model.TaskView{}, nil
		}
		filter.ProjectIDs = make([]int64, len(projects))
		for i, p := range projects {
			filter.ProjectIDs[i] = p.ID
		}
	}

	tasks, err := s.stores.Tasks().List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	return s.populate(ctx, tasks)
}

func (s *taskService) Get(ctx context.Context, userID, taskID int64) (*model.TaskView, error) {
	task, err := s.stores.Tasks().GetByID(ctx, taskID)
	if err != nil {
		return nil, lookupErr(err, "task")
	}
	if _, _, err := resolveProject(ctx, s.stores, task.ProjectID, userID); err != nil {
		return nil, err
	}
	views, err := s.populate(ctx, []model.Task{*task})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (s *taskService) Create(ctx context.Context, userID int64, params CreateTaskParams) (*model.Task, error) {
	name := strings.TrimSpace(params.Name)
	switch {
	case name == "":
		return nil, validationf("name is required")
	case params.WorkspaceID == 0 || params.ProjectID == 0:
		return nil, validationf("workspace and project are required")
	case !params.Status.Valid():
		return nil, validationf("unknown status %q", params.Status)
	case params.DueDate.IsZero():
		return nil, validationf("due date is required")
	}
	assignees := normalizeIDs(params.AssigneeIDs)
	if len(assignees) == 0 {
		return nil, validationf("at least one assignee is required")
	}

	task := &model.Task{
		ID:          id.New(),
		WorkspaceID: params.WorkspaceID,
		ProjectID:   params.ProjectID,
		Name:        name,
		Status:      params.Status,
		AssigneeIDs: assignees,
		DueDate:     params.DueDate,
		Description: params.Description,
	}

	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		project, _, err := resolveProject(ctx, stores, params.ProjectID, userID)
		if err != nil {
			return err
		}
		if project.WorkspaceID != params.WorkspaceID {
			return validationf("project does not belong to the workspace")
		}
		if err := checkAssignees(ctx, stores, params.WorkspaceID, assignees); err != nil {
			return err
		}

		position, err := s.appendPosition(ctx, stores.Tasks(), task.WorkspaceID, task.Status, task.ID)
		if err != nil {
			return err
		}
		task.Position = position
		return stores.Tasks().Create(ctx, task)
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(logger.WithLogFields(ctx, logger.LogFields{
		WorkspaceID: &task.WorkspaceID,
		ProjectID:   &task.ProjectID,
		TaskID:      &task.ID,
	}), "task created", "status", task.Status, "position", task.Position)
	return task, nil
}

func (s *taskService) Update(ctx context.Context, userID, taskID int64, params UpdateTaskParams) (*model.Task, error) {
	if params.Status != nil && !params.Status.Valid() {
		return nil, validationf("unknown status %q", *params.Status)
	}

	var task *model.Task
	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		var err error
		task, err = stores.Tasks().GetByID(ctx, taskID)
		if err != nil {
			return lookupErr(err, "task")
		}
		if _, _, err := resolveProject(ctx, stores, task.ProjectID, userID); err != nil {
			return err
		}

		if params.ProjectID != nil && *params.ProjectID != task.ProjectID {
			target, _, err := resolveProject(ctx, stores, *params.ProjectID, userID)
			if err != nil {
				return err
			}
			if target.WorkspaceID != task.WorkspaceID {
				return validationf("project does not belong to the workspace")
			}
			task.ProjectID = target.ID
		}
		if params.Name != nil {
			name := strings.TrimSpace(*params.Name)
			if name == "" {
				return validationf("name must not be empty")
			}
			task.Name = name
		}
		if params.DueDate != nil {
			task.DueDate = *params.DueDate
		}
		if params.Description != nil {
			task.Description = params.Description
		}
		if params.AssigneeIDs != nil {
			assignees := normalizeIDs(params.AssigneeIDs)
			if len(assignees) == 0 {
				return validationf("at least one assignee is required")
			}
			if err := checkAssignees(ctx, stores, task.WorkspaceID, assignees); err != nil {
				return err
			}
			task.AssigneeIDs = assignees
		}

		if err := stores.Tasks().Update(ctx, task); err != nil {
			return fmt.Errorf("updating task: %w", err)
		}

		if params.Status == nil || *params.Status == task.Status {
			return nil
		}
		// A status change outside of a drag lands at the end of the new column.
		position, err := s.appendPosition(ctx, stores.Tasks(), task.WorkspaceID, *params.Status, task.ID)
		if err != nil {
			return err
		}
		task, err = stores.Tasks().Place(ctx, task.ID, *params.Status, position)
		return err
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, userID, taskID int64) error {
	task, err := s.stores.Tasks().GetByID(ctx, taskID)
	if err != nil {
		return lookupErr(err, "task")
	}
	if _, _, err := resolveProject(ctx, s.stores, task.ProjectID, userID); err != nil {
		return err
	}
	if err := s.stores.Tasks().Delete(ctx, task.ID); err != nil {
		return fmt.Errorf("deleting task: %w", err)
	}

	slog.InfoContext(logger.WithLogFields(ctx, logger.LogFields{TaskID: &task.ID}), "task deleted", "user_id", userID)
	return nil
}

// Move locks the destination column, computes the placement and writes it in
// one transaction. Only the destination column may be renumbered.
func (s *taskService) Move(ctx context.Context, userID, taskID int64, status model.TaskStatus, index int) (*model.Task, error) {
	if !status.Valid() {
		return nil, validationf("unknown status %q", status)
	}
	if index < 0 {
		return nil, validationf("index must not be negative")
	}

	var (
		moved      *model.Task
		renumbered bool
	)
	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		task, err := stores.Tasks().GetByID(ctx, taskID)
		if err != nil {
			return lookupErr(err, "task")
		}
		if _, _, err := resolveProject(ctx, stores, task.ProjectID, userID); err != nil {
			return err
		}

		if err := stores.Tasks().LockColumn(ctx, task.WorkspaceID, status); err != nil {
			return fmt.Errorf("locking column: %w", err)
		}
		entries, positions, err := columnWithout(ctx, stores.Tasks(), task.WorkspaceID, status, task.ID)
		if err != nil {
			return err
		}

		plan := s.ordering.Insert(positions, index)
		if err := applyRenumber(ctx, stores.Tasks(), entries, plan); err != nil {
			return err
		}
		renumbered = plan.NeedsRenumber()

		moved, err = stores.Tasks().Place(ctx, task.ID, status, plan.Position)
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(logger.WithLogFields(ctx, logger.LogFields{TaskID: &moved.ID}), "task moved",
		"status", moved.Status,
		"index", index,
		"position", moved.Position,
		"renumbered", renumbered)
	return moved, nil
}

// appendPosition returns a position after the last task of the column. The
// caller must be inside a transaction.
func (s *taskService) appendPosition(ctx context.Context, tasks store.TaskStore, workspaceID int64, status model.TaskStatus, taskID int64) (int64, error) {
	if err := tasks.LockColumn(ctx, workspaceID, status); err != nil {
		return 0, fmt.Errorf("locking column: %w", err)
	}
	entries, positions, err := columnWithout(ctx, tasks, workspaceID, status, taskID)
	if err != nil {
		return 0, err
	}
	plan := s.ordering.Append(positions)
	if err := applyRenumber(ctx, tasks, entries, plan); err != nil {
		return 0, err
	}
	return plan.Position, nil
}

func columnWithout(ctx context.Context, tasks store.TaskStore, workspaceID int64, status model.TaskStatus, taskID int64) ([]store.ColumnEntry, []int64, error) {
	entries, err := tasks.Column(ctx, workspaceID, status)
	if err != nil {
		return nil, nil, fmt.Errorf("reading column: %w", err)
	}
	entries = slices.DeleteFunc(entries, func(e store.ColumnEntry) bool {
		return e.TaskID == taskID
	})
	positions := make([]int64, len(entries))
	for i, e := range entries {
		positions[i] = e.Position
	}
	return entries, positions, nil
}

func applyRenumber(ctx context.Context, tasks store.TaskStore, entries []store.ColumnEntry, plan ordering.Plan) error {
	if !plan.NeedsRenumber() {
		return nil
	}
	for i, e := range entries {
		if e.Position == plan.Renumbered[i] {
			continue
		}
		if err := tasks.SetPosition(ctx, e.TaskID, plan.Renumbered[i]); err != nil {
			return fmt.Errorf("renumbering column: %w", err)
		}
	}
	return nil
}

// checkAssignees verifies every id is a member of the workspace.
func checkAssignees(ctx context.Context, stores StoreProvider, workspaceID int64, ids []int64) error {
	members, err := stores.Members().ListByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("listing assignees: %w", err)
	}
	found := 0
	for _, m := range members {
		if m.WorkspaceID == workspaceID {
			found++
		}
	}
	if found != len(ids) {
		return validationf("assignees must be members of the workspace")
	}
	return nil
}

// normalizeIDs drops zero and duplicate ids, keeping first-seen order.
func normalizeIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, v := range ids {
		if v == 0 {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// populate resolves the projects and assignees of tasks with one batched
// lookup each.
func (s *taskService) populate(ctx context.Context, tasks []model.Task) ([]model.TaskView, error) {
	var projectIDs, memberIDs []int64
	for _, t := range tasks {
		projectIDs = append(projectIDs, t.ProjectID)
		memberIDs = append(memberIDs, t.AssigneeIDs...)
	}
	projectIDs = normalizeIDs(projectIDs)
	memberIDs = normalizeIDs(memberIDs)

	var (
		projects []model.Project
		profiles []model.MemberProfile
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		projects, err = s.stores.Projects().ListByIDs(gctx, projectIDs)
		if err != nil {
			return fmt.Errorf("listing task projects: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		members, err := s.stores.Members().ListByIDs(gctx, memberIDs)
		if err != nil {
			return fmt.Errorf("listing task assignees: %w", err)
		}
		profiles, err = resolveProfiles(gctx, s.stores.Users(), members)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	projectByID := make(map[int64]*model.ProjectBrief, len(projects))
	for _, p := range projects {
		projectByID[p.ID] = &model.ProjectBrief{ID: p.ID, Name: p.Name, ImageURL: p.ImageURL}
	}
	profileByID := make(map[int64]model.MemberProfile, len(profiles))
	for _, p := range profiles {
		profileByID[p.ID] = p
	}

	views := make([]model.TaskView, len(tasks))
	for i, t := range tasks {
		view := model.TaskView{
			Task:      t,
			Project:   projectByID[t.ProjectID],
			Assignees: make([]model.MemberProfile, 0, len(t.AssigneeIDs)),
		}
		for _, aid := range t.AssigneeIDs {
			if p, ok := profileByID[aid]; ok {
				view.Assignees = append(view.Assignees, p)
			}
		}
		views[i] = view
	}
	return views, nil
}
