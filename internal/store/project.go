package store

import (
	"context"

	"basegraph.app/planboard/core/db/sqlc"
	"basegraph.app/planboard/internal/model"
)

type projectStore struct {
	queries *sqlc.Queries
}

func newProjectStore(queries *sqlc.Queries) ProjectStore {
	return &projectStore{queries: queries}
}

func (s *projectStore) GetByID(ctx context.Context, id int64) (*model.Project, error) {
	row, err := s.queries.GetProject(ctx, id)
	if err != nil {
		return nil, MapError(err)
	}
	return toProjectModel(row), nil
}

func (s *projectStore) Create(ctx context.Context, p *model.Project) error {
	row, err := s.queries.CreateProject(ctx, sqlc.CreateProjectParams{
		ID:          p.ID,
		WorkspaceID: p.WorkspaceID,
		Name:        p.Name,
		ImageUrl:    p.ImageURL,
		CreatedBy:   p.CreatedBy,
		AssigneeIds: nonNilIDs(p.AssigneeIDs),
	})
	if err != nil {
		return MapError(err)
	}
	*p = *toProjectModel(row)
	return nil
}

func (s *projectStore) Update(ctx context.Context, p *model.Project) error {
	row, err := s.queries.UpdateProject(ctx, sqlc.UpdateProjectParams{
		ID:       p.ID,
		Name:     p.Name,
		ImageUrl: p.ImageURL,
	})
	if err != nil {
		return MapError(err)
	}
	*p = *toProjectModel(row)
	return nil
}

func (s *projectStore) SetAssignees(ctx context.Context, id int64, assigneeIDs []int64) (*model.Project, error) {
	row, err := s.queries.SetProjectAssignees(ctx, sqlc.SetProjectAssigneesParams{
		ID:          id,
		AssigneeIds: nonNilIDs(assigneeIDs),
	})
	if err != nil {
		return nil, MapError(err)
	}
	return toProjectModel(row), nil
}

func (s *projectStore) Delete(ctx context.Context, id int64) error {
	return s.queries.DeleteProject(ctx, id)
}

func (s *projectStore) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Project, error) {
	rows, err := s.queries.ListProjectsByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	return toProjectModels(rows), nil
}

func (s *projectStore) ListByAssignee(ctx context.Context, workspaceID, memberID int64) ([]model.Project, error) {
	rows, err := s.queries.ListProjectsByAssignee(ctx, sqlc.ListProjectsByAssigneeParams{
		WorkspaceID: workspaceID,
		MemberID:    memberID,
	})
	if err != nil {
		return nil, err
	}
	return toProjectModels(rows), nil
}

func (s *projectStore) ListByIDs(ctx context.Context, ids []int64) ([]model.Project, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.queries.ListProjectsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return toProjectModels(rows), nil
}

func (s *projectStore) Lock(ctx context.Context, id int64) error {
	_, err := s.queries.LockProject(ctx, id)
	return MapError(err)
}

// nonNilIDs keeps pgx from encoding an empty list as NULL into a NOT NULL column.
func nonNilIDs(ids []int64) []int64 {
	if ids == nil {
		return []int64{}
	}
	return ids
}

func toProjectModel(row sqlc.Project) *model.Project {
	return &model.Project{
		ID:          row.ID,
		WorkspaceID: row.WorkspaceID,
		Name:        row.Name,
		ImageURL:    row.ImageUrl,
		CreatedBy:   row.CreatedBy,
		AssigneeIDs: row.AssigneeIds,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}

func toProjectModels(rows []sqlc.Project) []model.Project {
	result := make([]model.Project, len(rows))
	for i, row := range rows {
		result[i] = *toProjectModel(row)
	}
	return result
}
