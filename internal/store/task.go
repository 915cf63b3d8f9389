package store

import (
	"context"
	"strings"
	"time"

	"basegraph.app/planboard/core/db/sqlc"
	"basegraph.app/planboard/internal/model"
)

type taskStore struct {
	queries *sqlc.Queries
}

func newTaskStore(queries *sqlc.Queries) TaskStore {
	return &taskStore{queries: queries}
}

func (s *taskStore) GetByID(ctx context.Context, id int64) (*model.Task, error) {
	row, err := s.queries.GetTask(ctx, id)
	if err != nil {
		return nil, MapError(err)
	}
	return toTaskModel(row), nil
}

func (s *taskStore) Create(ctx context.Context, t *model.Task) error {
	row, err := s.queries.CreateTask(ctx, sqlc.CreateTaskParams{
		ID:          t.ID,
		WorkspaceID: t.WorkspaceID,
		ProjectID:   t.ProjectID,
		Name:        t.Name,
		Status:      string(t.Status),
		AssigneeIds: nonNilIDs(t.AssigneeIDs),
		DueDate:     timestamptz(t.DueDate),
		Position:    t.Position,
		Description: t.Description,
	})
	if err != nil {
		return MapError(err)
	}
	*t = *toTaskModel(row)
	return nil
}

// Update writes the editable fields. Status and position only change through Place.
func (s *taskStore) Update(ctx context.Context, t *model.Task) error {
	row, err := s.queries.UpdateTask(ctx, sqlc.UpdateTaskParams{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		Name:        t.Name,
		AssigneeIds: nonNilIDs(t.AssigneeIDs),
		DueDate:     timestamptz(t.DueDate),
		Description: t.Description,
	})
	if err != nil {
		return MapError(err)
	}
	*t = *toTaskModel(row)
	return nil
}

func (s *taskStore) Delete(ctx context.Context, id int64) error {
	return s.queries.DeleteTask(ctx, id)
}

func (s *taskStore) List(ctx context.Context, filter model.TaskFilter) ([]model.Task, error) {
	params := sqlc.ListTasksParams{
		WorkspaceID:     filter.WorkspaceID,
		ProjectID:       filter.ProjectID,
		ProjectIds:      filter.ProjectIDs,
		AssigneeID:      filter.AssigneeID,
		OrderByPosition: filter.Order == model.TaskOrderPosition,
	}
	if filter.Status != nil {
		status := string(*filter.Status)
		params.Status = &status
	}
	if filter.DueDate != nil {
		// A due date filter matches the whole calendar day.
		y, m, d := filter.DueDate.Date()
		from := time.Date(y, m, d, 0, 0, 0, 0, filter.DueDate.Location())
		params.DueFrom = timestamptz(from)
		params.DueTo = timestamptz(from.AddDate(0, 0, 1))
	}
	if filter.Search != nil && *filter.Search != "" {
		escaped := escapeLike(*filter.Search)
		params.Search = &escaped
	}

	rows, err := s.queries.ListTasks(ctx, params)
	if err != nil {
		return nil, err
	}
	return toTaskModels(rows), nil
}

func (s *taskStore) Count(ctx context.Context, filter model.TaskCountFilter) (int64, error) {
	params := sqlc.CountTasksParams{
		WorkspaceID:   filter.WorkspaceID,
		ProjectID:     filter.ProjectID,
		AssigneeID:    filter.AssigneeID,
		DueBefore:     optionalTimestamptz(filter.DueBefore),
		CreatedFrom:   timestamptz(filter.CreatedFrom),
		CreatedBefore: timestamptz(filter.CreatedBefore),
	}
	if filter.Status != nil {
		status := string(*filter.Status)
		params.Status = &status
	}
	if filter.ExcludeStatus != nil {
		status := string(*filter.ExcludeStatus)
		params.ExcludeStatus = &status
	}
	return s.queries.CountTasks(ctx, params)
}

func (s *taskStore) LockColumn(ctx context.Context, workspaceID int64, status model.TaskStatus) error {
	return s.queries.LockTaskColumn(ctx, sqlc.LockTaskColumnParams{
		WorkspaceID: workspaceID,
		Status:      string(status),
	})
}

func (s *taskStore) Column(ctx context.Context, workspaceID int64, status model.TaskStatus) ([]ColumnEntry, error) {
	rows, err := s.queries.ListColumnPositions(ctx, sqlc.ListColumnPositionsParams{
		WorkspaceID: workspaceID,
		Status:      string(status),
	})
	if err != nil {
		return nil, err
	}
	entries := make([]ColumnEntry, len(rows))
	for i, row := range rows {
		entries[i] = ColumnEntry{TaskID: row.ID, Position: row.Position}
	}
	return entries, nil
}

func (s *taskStore) SetPosition(ctx context.Context, id, position int64) error {
	return s.queries.SetTaskPosition(ctx, sqlc.SetTaskPositionParams{
		ID:       id,
		Position: position,
	})
}

func (s *taskStore) Place(ctx context.Context, id int64, status model.TaskStatus, position int64) (*model.Task, error) {
	row, err := s.queries.UpdateTaskPlacement(ctx, sqlc.UpdateTaskPlacementParams{
		ID:       id,
		Status:   string(status),
		Position: position,
	})
	if err != nil {
		return nil, MapError(err)
	}
	return toTaskModel(row), nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func toTaskModel(row sqlc.Task) *model.Task {
	return &model.Task{
		ID:          row.ID,
		WorkspaceID: row.WorkspaceID,
		ProjectID:   row.ProjectID,
		Name:        row.Name,
		Status:      model.TaskStatus(row.Status),
		AssigneeIDs: row.AssigneeIds,
		DueDate:     row.DueDate.Time,
		Position:    row.Position,
		Description: row.Description,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}

func toTaskModels(rows []sqlc.Task) []model.Task {
	result := make([]model.Task, len(rows))
	for i, row := range rows {
		result[i] = *toTaskModel(row)
	}
	return result
}
