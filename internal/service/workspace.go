package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"basegraph.app/planboard/common/id"
	"basegraph.app/planboard/common/logger"
	"basegraph.app/planboard/internal/model"
	"basegraph.app/planboard/internal/storage"
	"basegraph.app/planboard/internal/store"
)

const (
	inviteCodeLength = 6
	// inviteCodeAttempts bounds regeneration after a code collides with
	// another workspace's.
	inviteCodeAttempts = 5
)

const inviteAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnpqrstuvwxyz23456789"

type CreateWorkspaceParams struct {
	Name  string
	Image *storage.Upload
}

type UpdateWorkspaceParams struct {
	Name  *string
	Image *storage.Upload
}

type WorkspaceService interface {
	Create(ctx context.Context, userID int64, params CreateWorkspaceParams) (*model.Workspace, error)
	List(ctx context.Context, userID int64) ([]model.Workspace, error)
	Get(ctx context.Context, userID, workspaceID int64) (*model.Workspace, error)
	Update(ctx context.Context, userID, workspaceID int64, params UpdateWorkspaceParams) (*model.Workspace, error)
	Delete(ctx context.Context, userID, workspaceID int64) error
	ResetInviteCode(ctx context.Context, userID, workspaceID int64) (*model.Workspace, error)
	Join(ctx context.Context, userID, workspaceID int64, inviteCode string) (*model.Workspace, error)
}

type workspaceService struct {
	stores  StoreProvider
	tx      TxRunner
	storage storage.Service
}

func NewWorkspaceService(stores StoreProvider, tx TxRunner, files storage.Service) WorkspaceService {
	return &workspaceService{stores: stores, tx: tx, storage: files}
}

// Create makes the caller the first member of the workspace, as ADMIN.
func (s *workspaceService) Create(ctx context.Context, userID int64, params CreateWorkspaceParams) (*model.Workspace, error) {
	name := strings.TrimSpace(params.Name)
	if name == "" {
		return nil, validationf("name is required")
	}

	ws := &model.Workspace{
		ID:          id.New(),
		Name:        name,
		OwnerUserID: userID,
	}
	imageURL, err := saveImage(ctx, s.storage, ws.ID, params.Image)
	if err != nil {
		return nil, err
	}
	ws.ImageURL = imageURL

	// A collision aborts the transaction, so each attempt runs in a new one.
	err = withInviteCode(func(code string) error {
		ws.InviteCode = code
		return s.tx.WithTx(ctx, func(stores StoreProvider) error {
			if err := stores.Workspaces().Create(ctx, ws); err != nil {
				return fmt.Errorf("creating workspace: %w", err)
			}
			admin := &model.Member{
				ID:          id.New(),
				WorkspaceID: ws.ID,
				UserID:      userID,
				Role:        model.RoleAdmin,
			}
			if err := stores.Members().Create(ctx, admin); err != nil {
				return fmt.Errorf("creating admin member: %w", err)
			}
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	slog.InfoContext(logger.WithLogFields(ctx, logger.LogFields{WorkspaceID: &ws.ID}), "workspace created",
		"user_id", userID,
		"name", ws.Name)
	return ws, nil
}

func (s *workspaceService) List(ctx context.Context, userID int64) ([]model.Workspace, error) {
	workspaces, err := s.stores.Workspaces().ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listing workspaces: %w", err)
	}
	return workspaces, nil
}

func (s *workspaceService) Get(ctx context.Context, userID, workspaceID int64) (*model.Workspace, error) {
	if _, err := ResolveMember(ctx, s.stores.Members(), workspaceID, userID); err != nil {
		return nil, err
	}
	ws, err := s.stores.Workspaces().GetByID(ctx, workspaceID)
	if err != nil {
		return nil, lookupErr(err, "workspace")
	}
	return ws, nil
}

func (s *workspaceService) Update(ctx context.Context, userID, workspaceID int64, params UpdateWorkspaceParams) (*model.Workspace, error) {
	ws, err := s.adminWorkspace(ctx, userID, workspaceID)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		name := strings.TrimSpace(*params.Name)
		if name == "" {
			return nil, validationf("name must not be empty")
		}
		ws.Name = name
	}
	if params.Image != nil {
		imageURL, err := saveImage(ctx, s.storage, ws.ID, params.Image)
		if err != nil {
			return nil, err
		}
		ws.ImageURL = imageURL
	}

	if err := s.stores.Workspaces().Update(ctx, ws); err != nil {
		return nil, fmt.Errorf("updating workspace: %w", err)
	}
	return ws, nil
}

func (s *workspaceService) Delete(ctx context.Context, userID, workspaceID int64) error {
	if _, err := s.adminWorkspace(ctx, userID, workspaceID); err != nil {
		return err
	}
	if err := s.stores.Workspaces().Delete(ctx, workspaceID); err != nil {
		return fmt.Errorf("deleting workspace: %w", err)
	}
	slog.InfoContext(logger.WithLogFields(ctx, logger.LogFields{WorkspaceID: &workspaceID}), "workspace deleted",
		"user_id", userID)
	return nil
}

func (s *workspaceService) ResetInviteCode(ctx context.Context, userID, workspaceID int64) (*model.Workspace, error) {
	if _, err := s.adminWorkspace(ctx, userID, workspaceID); err != nil {
		return nil, err
	}
	var ws *model.Workspace
	err := withInviteCode(func(code string) error {
		var err error
		ws, err = s.stores.Workspaces().SetInviteCode(ctx, workspaceID, code)
		return err
	})
	if err != nil {
		return nil, lookupErr(err, "workspace")
	}
	return ws, nil
}

func (s *workspaceService) Join(ctx context.Context, userID, workspaceID int64, inviteCode string) (*model.Workspace, error) {
	if inviteCode == "" {
		return nil, validationf("invite code is required")
	}

	ws, err := s.stores.Workspaces().GetByID(ctx, workspaceID)
	if err != nil {
		return nil, lookupErr(err, "workspace")
	}
	if ws.InviteCode != inviteCode {
		return nil, validationf("invalid invite code")
	}

	_, err = s.stores.Members().GetByWorkspaceAndUser(ctx, workspaceID, userID)
	switch {
	case err == nil:
		return nil, conflictf("already a member")
	case !errors.Is(err, store.ErrNotFound):
		return nil, fmt.Errorf("checking membership: %w", err)
	}

	member := &model.Member{
		ID:          id.New(),
		WorkspaceID: workspaceID,
		UserID:      userID,
		Role:        model.RoleMember,
	}
	if err := s.stores.Members().Create(ctx, member); err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, conflictf("already a member")
		}
		return nil, fmt.Errorf("creating member: %w", err)
	}

	slog.InfoContext(logger.WithLogFields(ctx, logger.LogFields{WorkspaceID: &workspaceID, MemberID: &member.ID}),
		"member joined workspace", "user_id", userID)
	return ws, nil
}

func (s *workspaceService) adminWorkspace(ctx context.Context, userID, workspaceID int64) (*model.Workspace, error) {
	member, err := ResolveMember(ctx, s.stores.Members(), workspaceID, userID)
	if err != nil {
		return nil, err
	}
	if err := requireAdmin(member); err != nil {
		return nil, err
	}
	ws, err := s.stores.Workspaces().GetByID(ctx, workspaceID)
	if err != nil {
		return nil, lookupErr(err, "workspace")
	}
	return ws, nil
}

// saveImage stores an optional image and returns its download URL.
func saveImage(ctx context.Context, files storage.Service, workspaceID int64, upload *storage.Upload) (*string, error) {
	if upload == nil {
		return nil, nil
	}
	f, err := files.SaveImage(ctx, workspaceID, *upload)
	if err != nil {
		if errors.Is(err, storage.ErrEmptyFile) || errors.Is(err, storage.ErrFileTooLarge) || errors.Is(err, storage.ErrNotImage) {
			return nil, fmt.Errorf("%w: image: %v", ErrValidation, err)
		}
		return nil, fmt.Errorf("saving image: %w", err)
	}
	url := files.DownloadURL(f.BucketID, f.ID)
	return &url, nil
}

// withInviteCode calls fn with fresh codes until one is not taken.
func withInviteCode(fn func(code string) error) error {
	var err error
	for range inviteCodeAttempts {
		err = fn(generateInviteCode())
		if !errors.Is(err, store.ErrConflict) {
			return err
		}
	}
	return fmt.Errorf("allocating invite code after %d attempts: %w", inviteCodeAttempts, err)
}

func generateInviteCode() string {
	buf := make([]byte, inviteCodeLength)
	_, _ = rand.Read(buf)
	code := make([]byte, inviteCodeLength)
	for i, b := range buf {
		code[i] = inviteAlphabet[int(b)%len(inviteAlphabet)]
	}
	return string(code)
}
