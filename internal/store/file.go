package store

import (
	"context"

	"basegraph.app/planboard/core/db/sqlc"
	"basegraph.app/planboard/internal/model"
)

type fileStore struct {
	queries *sqlc.Queries
}

func newFileStore(queries *sqlc.Queries) FileStore {
	return &fileStore{queries: queries}
}

func (s *fileStore) Create(ctx context.Context, f *model.StorageFile, data []byte) error {
	row, err := s.queries.CreateStorageFile(ctx, sqlc.CreateStorageFileParams{
		ID:          f.ID,
		WorkspaceID: optionalInt8(f.WorkspaceID),
		BucketID:    f.BucketID,
		Name:        f.Name,
		MimeType:    f.MimeType,
		Size:        int64(len(data)),
		Data:        data,
	})
	if err != nil {
		return MapError(err)
	}
	*f = model.StorageFile{
		ID:          row.ID,
		WorkspaceID: row.WorkspaceID.Int64,
		BucketID:    row.BucketID,
		Name:        row.Name,
		MimeType:    row.MimeType,
		Size:        row.Size,
		CreatedAt:   row.CreatedAt.Time,
	}
	return nil
}

func (s *fileStore) ListByIDs(ctx context.Context, ids []int64) ([]model.StorageFile, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.queries.ListStorageFilesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	result := make([]model.StorageFile, len(rows))
	for i, row := range rows {
		result[i] = model.StorageFile{
			ID:          row.ID,
			WorkspaceID: row.WorkspaceID.Int64,
			BucketID:    row.BucketID,
			Name:        row.Name,
			MimeType:    row.MimeType,
			Size:        row.Size,
			CreatedAt:   row.CreatedAt.Time,
		}
	}
	return result, nil
}

func (s *fileStore) Open(ctx context.Context, bucketID string, id int64) (*model.StorageFile, []byte, error) {
	row, err := s.queries.GetStorageFileData(ctx, sqlc.GetStorageFileDataParams{
		ID:       id,
		BucketID: bucketID,
	})
	if err != nil {
		return nil, nil, MapError(err)
	}
	return &model.StorageFile{
		ID:          row.ID,
		WorkspaceID: row.WorkspaceID.Int64,
		BucketID:    row.BucketID,
		Name:        row.Name,
		MimeType:    row.MimeType,
		Size:        row.Size,
		CreatedAt:   row.CreatedAt.Time,
	}, row.Data, nil
}
