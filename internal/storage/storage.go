// Package storage owns uploaded blobs: attachments on comments and project
// images. Callers persist only the returned file id.
package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"basegraph.app/planboard/common/id"
	"basegraph.app/planboard/internal/model"
	"basegraph.app/planboard/internal/store"
)

var (
	ErrEmptyFile    = errors.New("file is empty")
	ErrFileTooLarge = errors.New("file too large")
	ErrNotImage     = errors.New("file is not an image")
)

// Upload is a file received from a client.
type Upload struct {
	Name        string
	ContentType string
	Body        io.Reader
}

type Service interface {
	// Save stores the upload on behalf of a workspace; only its members may
	// download it.
	Save(ctx context.Context, workspaceID int64, bucketID string, upload Upload) (*model.StorageFile, error)
	SaveImage(ctx context.Context, workspaceID int64, upload Upload) (*model.StorageFile, error)
	// Describe returns attachment metadata keyed by file id in one lookup.
	// Unknown ids are absent from the result.
	Describe(ctx context.Context, ids []int64) (map[int64]model.Attachment, error)
	// Stat returns the metadata of a file without its bytes.
	Stat(ctx context.Context, bucketID string, fileID int64) (*model.StorageFile, error)
	Open(ctx context.Context, bucketID string, fileID int64) (*model.StorageFile, []byte, error)
	DownloadURL(bucketID string, fileID int64) string
	DocumentsBucket() string
}

type Config struct {
	DocumentsBucket string
	ImagesBucket    string
	MaxUploadBytes  int64
	URLs            URLBuilder
}

type service struct {
	files store.FileStore
	cfg   Config
}

func NewService(files store.FileStore, cfg Config) Service {
	return &service{files: files, cfg: cfg}
}

func (s *service) DocumentsBucket() string {
	return s.cfg.DocumentsBucket
}

func (s *service) Save(ctx context.Context, workspaceID int64, bucketID string, upload Upload) (*model.StorageFile, error) {
	data, err := s.read(upload.Body)
	if err != nil {
		return nil, err
	}

	file := &model.StorageFile{
		ID:          id.New(),
		WorkspaceID: workspaceID,
		BucketID:    bucketID,
		Name:        cleanName(upload.Name),
		MimeType:    sniffType(upload.ContentType, data),
	}
	if err := s.files.Create(ctx, file, data); err != nil {
		return nil, fmt.Errorf("storing file: %w", err)
	}

	slog.InfoContext(ctx, "file stored",
		"file_id", file.ID,
		"workspace_id", workspaceID,
		"bucket_id", bucketID,
		"size", file.Size,
		"mime_type", file.MimeType)

	return file, nil
}

func (s *service) SaveImage(ctx context.Context, workspaceID int64, upload Upload) (*model.StorageFile, error) {
	data, err := s.read(upload.Body)
	if err != nil {
		return nil, err
	}
	if !strings.HasPrefix(http.DetectContentType(data), "image/") {
		return nil, ErrNotImage
	}
	upload.Body = bytes.NewReader(data)
	return s.Save(ctx, workspaceID, s.cfg.ImagesBucket, upload)
}

func (s *service) Describe(ctx context.Context, ids []int64) (map[int64]model.Attachment, error) {
	result := make(map[int64]model.Attachment, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	files, err := s.files.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("listing files: %w", err)
	}
	for _, f := range files {
		result[f.ID] = model.Attachment{
			StorageFile: f,
			DownloadURL: s.cfg.URLs.DownloadURL(f.BucketID, f.ID),
		}
	}
	return result, nil
}

func (s *service) Stat(ctx context.Context, bucketID string, fileID int64) (*model.StorageFile, error) {
	files, err := s.files.ListByIDs(ctx, []int64{fileID})
	if err != nil {
		return nil, fmt.Errorf("getting file: %w", err)
	}
	for _, f := range files {
		if f.ID == fileID && f.BucketID == bucketID {
			return &f, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *service) Open(ctx context.Context, bucketID string, fileID int64) (*model.StorageFile, []byte, error) {
	return s.files.Open(ctx, bucketID, fileID)
}

func (s *service) DownloadURL(bucketID string, fileID int64) string {
	return s.cfg.URLs.DownloadURL(bucketID, fileID)
}

func (s *service) read(body io.Reader) ([]byte, error) {
	if body == nil {
		return nil, ErrEmptyFile
	}
	limit := s.cfg.MaxUploadBytes
	if limit <= 0 {
		limit = 10 << 20
	}
	data, err := io.ReadAll(io.LimitReader(body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("reading upload: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrEmptyFile
	}
	if int64(len(data)) > limit {
		return nil, ErrFileTooLarge
	}
	return data, nil
}

func cleanName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	if name == "." || name == "/" || name == "" {
		return "file"
	}
	return name
}

// sniffType trusts the declared type unless it is missing or generic.
func sniffType(declared string, data []byte) string {
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	return http.DetectContentType(data)
}
