package service

import (
	"context"
	"errors"
	"fmt"

	"basegraph.app/planboard/internal/model"
	"basegraph.app/planboard/internal/storage"
	"basegraph.app/planboard/internal/store"
)

type FileService interface {
	// Download returns a stored file to a member of the workspace it was
	// uploaded to.
	Download(ctx context.Context, userID int64, bucketID string, fileID int64) (*model.StorageFile, []byte, error)
}

type fileService struct {
	stores  StoreProvider
	storage storage.Service
}

func NewFileService(stores StoreProvider, files storage.Service) FileService {
	return &fileService{stores: stores, storage: files}
}

func (s *fileService) Download(ctx context.Context, userID int64, bucketID string, fileID int64) (*model.StorageFile, []byte, error) {
	meta, err := s.storage.Stat(ctx, bucketID, fileID)
	if err != nil {
		return nil, nil, lookupErr(err, "file")
	}
	if meta.WorkspaceID == 0 {
		return nil, nil, fmt.Errorf("%w: file", ErrNotFound)
	}
	if _, err := ResolveMember(ctx, s.stores.Members(), meta.WorkspaceID, userID); err != nil {
		return nil, nil, err
	}

	f, data, err := s.storage.Open(ctx, bucketID, fileID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: file", ErrNotFound)
		}
		return nil, nil, fmt.Errorf("reading file: %w", err)
	}
	return f, data, nil
}
