package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"basegraph.app/planboard/common/id"
	"basegraph.app/planboard/common/logger"
	"basegraph.app/planboard/internal/cache"
	"basegraph.app/planboard/internal/model"
	"basegraph.app/planboard/internal/storage"
)

type CreateCommentParams struct {
	TaskID      int64
	WorkspaceID int64
	Comment     string
	Document    *storage.Upload
}

type UpdateCommentParams struct {
	Comment  *string
	Document *storage.Upload
}

type CommentService interface {
	Create(ctx context.Context, userID int64, params CreateCommentParams) (*model.CommentView, error)
	// List returns the task's comments newest first, with creators and
	// attachments resolved.
	List(ctx context.Context, userID, taskID int64) ([]model.CommentView, error)
	Update(ctx context.Context, userID, commentID int64, params UpdateCommentParams) (*model.CommentView, error)
	Delete(ctx context.Context, userID, commentID int64) error
}

type commentService struct {
	stores  StoreProvider
	tx      TxRunner
	storage storage.Service
	cache   cache.CommentCache
	policy  model.CommentEditPolicy
}

func NewCommentService(
	stores StoreProvider,
	tx TxRunner,
	files storage.Service,
	comments cache.CommentCache,
	policy model.CommentEditPolicy,
) CommentService {
	if comments == nil {
		comments = cache.NewNoopCommentCache()
	}
	if policy == "" {
		policy = model.CommentPolicyCreatorAndAdmin
	}
	return &commentService{
		stores:  stores,
		tx:      tx,
		storage: files,
		cache:   comments,
		policy:  policy,
	}
}

func (s *commentService) Create(ctx context.Context, userID int64, params CreateCommentParams) (*model.CommentView, error) {
	if params.TaskID == 0 || params.WorkspaceID == 0 {
		return nil, validationf("task and workspace are required")
	}
	text, err := normalizeComment(params.Comment)
	if err != nil {
		return nil, err
	}

	member, err := ResolveMember(ctx, s.stores.Members(), params.WorkspaceID, userID)
	if err != nil {
		return nil, err
	}
	task, err := s.stores.Tasks().GetByID(ctx, params.TaskID)
	if err != nil {
		return nil, lookupErr(err, "task")
	}
	if task.WorkspaceID != params.WorkspaceID {
		return nil, fmt.Errorf("%w: task", ErrNotFound)
	}

	// The file is stored first; the comment only references it.
	fileID, err := s.saveDocument(ctx, task.WorkspaceID, params.Document)
	if err != nil {
		return nil, err
	}

	comment := &model.Comment{
		ID:      id.New(),
		TaskID:  task.ID,
		Creator: member.ID,
		Comment: text,
		FileID:  fileID,
	}
	if err := s.stores.Comments().Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("creating comment: %w", err)
	}
	s.invalidate(ctx, task.ID)

	slog.InfoContext(logger.WithLogFields(ctx, logger.LogFields{TaskID: &task.ID, MemberID: &member.ID}),
		"comment created", "comment_id", comment.ID, "has_document", fileID != nil)

	return s.view(ctx, comment)
}

func (s *commentService) List(ctx context.Context, userID, taskID int64) ([]model.CommentView, error) {
	if taskID == 0 {
		return nil, validationf("task is required")
	}
	task, err := s.stores.Tasks().GetByID(ctx, taskID)
	if err != nil {
		return nil, lookupErr(err, "task")
	}
	if _, err := ResolveMember(ctx, s.stores.Members(), task.WorkspaceID, userID); err != nil {
		return nil, err
	}

	cached, gen, ok := s.cache.Get(ctx, taskID)
	if ok {
		return cached, nil
	}

	comments, err := s.stores.Comments().ListByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}
	views, err := s.resolve(ctx, comments)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, taskID, gen, views)
	return views, nil
}

func (s *commentService) Update(ctx context.Context, userID, commentID int64, params UpdateCommentParams) (*model.CommentView, error) {
	var text *string
	if params.Comment != nil {
		normalized, err := normalizeComment(*params.Comment)
		if err != nil {
			return nil, err
		}
		text = &normalized
	}

	// Checked before the upload so a refused edit stores nothing.
	_, caller, err := s.authorizeEdit(ctx, s.stores, userID, commentID)
	if err != nil {
		return nil, err
	}
	// Stored outside the transaction so the row lock is not held during the upload.
	fileID, err := s.saveDocument(ctx, caller.WorkspaceID, params.Document)
	if err != nil {
		return nil, err
	}

	var updated *model.Comment
	err = s.tx.WithTx(ctx, func(stores StoreProvider) error {
		comment, _, err := s.authorizeEdit(ctx, stores, userID, commentID)
		if err != nil {
			return err
		}

		if text != nil {
			comment.Comment = *text
		}
		if fileID != nil {
			comment.FileID = fileID
		}

		if err := stores.Comments().Update(ctx, comment); err != nil {
			return fmt.Errorf("updating comment: %w", err)
		}
		updated = comment
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, updated.TaskID)

	return s.view(ctx, updated)
}

func (s *commentService) Delete(ctx context.Context, userID, commentID int64) error {
	var taskID int64
	err := s.tx.WithTx(ctx, func(stores StoreProvider) error {
		comment, _, err := s.authorizeEdit(ctx, stores, userID, commentID)
		if err != nil {
			return err
		}
		taskID = comment.TaskID
		return stores.Comments().Delete(ctx, comment.ID)
	})
	if err != nil {
		return err
	}
	s.invalidate(ctx, taskID)

	slog.InfoContext(logger.WithLogFields(ctx, logger.LogFields{TaskID: &taskID}), "comment deleted",
		"comment_id", commentID, "user_id", userID)
	return nil
}

// authorizeEdit locks the comment and applies the edit policy.
func (s *commentService) authorizeEdit(ctx context.Context, stores StoreProvider, userID, commentID int64) (*model.Comment, *model.Member, error) {
	comment, err := stores.Comments().GetForUpdate(ctx, commentID)
	if err != nil {
		return nil, nil, lookupErr(err, "comment")
	}
	task, err := stores.Tasks().GetByID(ctx, comment.TaskID)
	if err != nil {
		return nil, nil, lookupErr(err, "task")
	}
	caller, err := ResolveMember(ctx, stores.Members(), task.WorkspaceID, userID)
	if err != nil {
		return nil, nil, err
	}
	if !s.policy.Allows(caller, comment) {
		return nil, nil, fmt.Errorf("%w: not allowed to modify this comment", ErrUnauthorized)
	}
	return comment, caller, nil
}

func (s *commentService) saveDocument(ctx context.Context, workspaceID int64, upload *storage.Upload) (*int64, error) {
	if upload == nil {
		return nil, nil
	}
	f, err := s.storage.Save(ctx, workspaceID, s.storage.DocumentsBucket(), *upload)
	if err != nil {
		if errors.Is(err, storage.ErrEmptyFile) || errors.Is(err, storage.ErrFileTooLarge) {
			return nil, fmt.Errorf("%w: document: %v", ErrValidation, err)
		}
		return nil, fmt.Errorf("saving document: %w", err)
	}
	return &f.ID, nil
}

// invalidate drops the cached list. A failure leaves the entry to expire
// on its TTL.
func (s *commentService) invalidate(ctx context.Context, taskID int64) {
	if err := s.cache.Invalidate(ctx, taskID); err != nil {
		slog.ErrorContext(ctx, "comment cache invalidation failed", "task_id", taskID, "error", err)
	}
}

func (s *commentService) view(ctx context.Context, c *model.Comment) (*model.CommentView, error) {
	views, err := s.resolve(ctx, []model.Comment{*c})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

// resolve attaches creator identities and file metadata with one batched
// lookup each, run concurrently.
func (s *commentService) resolve(ctx context.Context, comments []model.Comment) ([]model.CommentView, error) {
	var creatorIDs, fileIDs []int64
	for _, c := range comments {
		creatorIDs = append(creatorIDs, c.Creator)
		if c.FileID != nil {
			fileIDs = append(fileIDs, *c.FileID)
		}
	}
	creatorIDs = normalizeIDs(creatorIDs)
	fileIDs = normalizeIDs(fileIDs)

	var (
		profiles    []model.MemberProfile
		attachments map[int64]model.Attachment
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		members, err := s.stores.Members().ListByIDs(gctx, creatorIDs)
		if err != nil {
			return fmt.Errorf("listing comment creators: %w", err)
		}
		profiles, err = resolveProfiles(gctx, s.stores.Users(), members)
		return err
	})
	g.Go(func() error {
		var err error
		attachments, err = s.storage.Describe(gctx, fileIDs)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[int64]model.MemberProfile, len(profiles))
	for _, p := range profiles {
		byID[p.ID] = p
	}

	views := make([]model.CommentView, len(comments))
	for i, c := range comments {
		view := model.CommentView{Comment: c}
		if p, ok := byID[c.Creator]; ok {
			view.CreatorName = p.Name
			view.CreatorEmail = p.Email
		} else {
			// The creator has left the workspace.
			view.CreatorName = strconv.FormatInt(c.Creator, 10)
		}
		if c.FileID != nil {
			if a, ok := attachments[*c.FileID]; ok {
				view.Document = &a
			}
		}
		views[i] = view
	}
	return views, nil
}

func normalizeComment(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", validationf("comment is required")
	}
	if utf8.RuneCountInString(text) > model.MaxCommentLength {
		return "", validationf("comment exceeds %d characters", model.MaxCommentLength)
	}
	return text, nil
}
