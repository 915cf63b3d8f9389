package store

import (
	"context"

	"basegraph.app/planboard/core/db/sqlc"
	"basegraph.app/planboard/internal/model"
)

type commentStore struct {
	queries *sqlc.Queries
}

func newCommentStore(queries *sqlc.Queries) CommentStore {
	return &commentStore{queries: queries}
}

// GetForUpdate locks the row when called inside a transaction.
func (s *commentStore) GetForUpdate(ctx context.Context, id int64) (*model.Comment, error) {
	row, err := s.queries.GetCommentForUpdate(ctx, id)
	if err != nil {
		return nil, MapError(err)
	}
	return toCommentModel(row), nil
}

func (s *commentStore) Create(ctx context.Context, c *model.Comment) error {
	row, err := s.queries.CreateComment(ctx, sqlc.CreateCommentParams{
		ID:      c.ID,
		TaskID:  c.TaskID,
		Creator: c.Creator,
		Comment: c.Comment,
		FileID:  c.FileID,
	})
	if err != nil {
		return MapError(err)
	}
	*c = *toCommentModel(row)
	return nil
}

func (s *commentStore) Update(ctx context.Context, c *model.Comment) error {
	row, err := s.queries.UpdateComment(ctx, sqlc.UpdateCommentParams{
		ID:      c.ID,
		Comment: c.Comment,
		FileID:  c.FileID,
	})
	if err != nil {
		return MapError(err)
	}
	*c = *toCommentModel(row)
	return nil
}

func (s *commentStore) Delete(ctx context.Context, id int64) error {
	return s.queries.DeleteComment(ctx, id)
}

func (s *commentStore) ListByTask(ctx context.Context, taskID int64) ([]model.Comment, error) {
	rows, err := s.queries.ListCommentsByTask(ctx, taskID)
	if err != nil {
		return nil, err
	}
	result := make([]model.Comment, len(rows))
	for i, row := range rows {
		result[i] = *toCommentModel(row)
	}
	return result, nil
}

func toCommentModel(row sqlc.Comment) *model.Comment {
	return &model.Comment{
		ID:        row.ID,
		TaskID:    row.TaskID,
		Creator:   row.Creator,
		Comment:   row.Comment,
		FileID:    row.FileID,
		CreatedAt: row.CreatedAt.Time,
		UpdatedAt: row.UpdatedAt.Time,
	}
}
