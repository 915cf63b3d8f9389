package store

import (
	"context"

	"basegraph.app/planboard/core/db/sqlc"
	"basegraph.app/planboard/internal/model"
)

type memberStore struct {
	queries *sqlc.Queries
}

func newMemberStore(queries *sqlc.Queries) MemberStore {
	return &memberStore{queries: queries}
}

func (s *memberStore) GetByID(ctx context.Context, id int64) (*model.Member, error) {
	row, err := s.queries.GetMember(ctx, id)
	if err != nil {
		return nil, MapError(err)
	}
	return toMemberModel(row), nil
}

func (s *memberStore) GetByWorkspaceAndUser(ctx context.Context, workspaceID, userID int64) (*model.Member, error) {
	row, err := s.queries.GetMemberByWorkspaceAndUser(ctx, sqlc.GetMemberByWorkspaceAndUserParams{
		WorkspaceID: workspaceID,
		UserID:      userID,
	})
	if err != nil {
		return nil, MapError(err)
	}
	return toMemberModel(row), nil
}

func (s *memberStore) Create(ctx context.Context, m *model.Member) error {
	row, err := s.queries.CreateMember(ctx, sqlc.CreateMemberParams{
		ID:          m.ID,
		WorkspaceID: m.WorkspaceID,
		UserID:      m.UserID,
		Role:        string(m.Role),
	})
	if err != nil {
		return MapError(err)
	}
	*m = *toMemberModel(row)
	return nil
}

func (s *memberStore) UpdateRole(ctx context.Context, id int64, role model.Role) (*model.Member, error) {
	row, err := s.queries.UpdateMemberRole(ctx, sqlc.UpdateMemberRoleParams{
		ID:   id,
		Role: string(role),
	})
	if err != nil {
		return nil, MapError(err)
	}
	return toMemberModel(row), nil
}

func (s *memberStore) Delete(ctx context.Context, id int64) error {
	return s.queries.DeleteMember(ctx, id)
}

func (s *memberStore) ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Member, error) {
	rows, err := s.queries.ListMembersByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	return toMemberModels(rows), nil
}

func (s *memberStore) ListByIDs(ctx context.Context, ids []int64) ([]model.Member, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.queries.ListMembersByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return toMemberModels(rows), nil
}

func (s *memberStore) CountByRole(ctx context.Context, workspaceID int64) (int64, int64, error) {
	row, err := s.queries.CountMembersByRole(ctx, workspaceID)
	if err != nil {
		return 0, 0, err
	}
	return row.Total, row.Admins, nil
}

func toMemberModel(row sqlc.Member) *model.Member {
	return &model.Member{
		ID:          row.ID,
		WorkspaceID: row.WorkspaceID,
		UserID:      row.UserID,
		Role:        model.Role(row.Role),
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}

func toMemberModels(rows []sqlc.Member) []model.Member {
	result := make([]model.Member, len(rows))
	for i, row := range rows {
		result[i] = *toMemberModel(row)
	}
	return result
}
