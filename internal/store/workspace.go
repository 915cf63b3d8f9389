package store

import (
	"context"

	"basegraph.app/planboard/core/db/sqlc"
	"basegraph.app/planboard/internal/model"
)

type workspaceStore struct {
	queries *sqlc.Queries
}

func newWorkspaceStore(queries *sqlc.Queries) WorkspaceStore {
	return &workspaceStore{queries: queries}
}

func (s *workspaceStore) GetByID(ctx context.Context, id int64) (*model.Workspace, error) {
	row, err := s.queries.GetWorkspace(ctx, id)
	if err != nil {
		return nil, MapError(err)
	}
	return toWorkspaceModel(row), nil
}

func (s *workspaceStore) GetByInviteCode(ctx context.Context, code string) (*model.Workspace, error) {
	row, err := s.queries.GetWorkspaceByInviteCode(ctx, code)
	if err != nil {
		return nil, MapError(err)
	}
	return toWorkspaceModel(row), nil
}

func (s *workspaceStore) Create(ctx context.Context, ws *model.Workspace) error {
	row, err := s.queries.CreateWorkspace(ctx, sqlc.CreateWorkspaceParams{
		ID:          ws.ID,
		Name:        ws.Name,
		ImageUrl:    ws.ImageURL,
		InviteCode:  ws.InviteCode,
		OwnerUserID: ws.OwnerUserID,
	})
	if err != nil {
		return MapError(err)
	}
	*ws = *toWorkspaceModel(row)
	return nil
}

func (s *workspaceStore) Update(ctx context.Context, ws *model.Workspace) error {
	row, err := s.queries.UpdateWorkspace(ctx, sqlc.UpdateWorkspaceParams{
		ID:       ws.ID,
		Name:     ws.Name,
		ImageUrl: ws.ImageURL,
	})
	if err != nil {
		return MapError(err)
	}
	*ws = *toWorkspaceModel(row)
	return nil
}

func (s *workspaceStore) SetInviteCode(ctx context.Context, id int64, code string) (*model.Workspace, error) {
	row, err := s.queries.UpdateWorkspaceInviteCode(ctx, sqlc.UpdateWorkspaceInviteCodeParams{
		ID:         id,
		InviteCode: code,
	})
	if err != nil {
		return nil, MapError(err)
	}
	return toWorkspaceModel(row), nil
}

func (s *workspaceStore) Delete(ctx context.Context, id int64) error {
	return s.queries.DeleteWorkspace(ctx, id)
}

func (s *workspaceStore) ListByUser(ctx context.Context, userID int64) ([]model.Workspace, error) {
	rows, err := s.queries.ListWorkspacesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]model.Workspace, len(rows))
	for i, row := range rows {
		result[i] = *toWorkspaceModel(row)
	}
	return result, nil
}

func (s *workspaceStore) Lock(ctx context.Context, id int64) error {
	_, err := s.queries.LockWorkspace(ctx, id)
	return MapError(err)
}

func toWorkspaceModel(row sqlc.Workspace) *model.Workspace {
	return &model.Workspace{
		ID:          row.ID,
		Name:        row.Name,
		ImageURL:    row.ImageUrl,
		InviteCode:  row.InviteCode,
		OwnerUserID: row.OwnerUserID,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}
