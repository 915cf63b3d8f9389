package store

import (
	"context"
	"errors"

	"basegraph.app/planboard/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when a write violates a unique constraint.
var ErrConflict = errors.New("conflict")

type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Upsert(ctx context.Context, user *model.User) error
	ListByIDs(ctx context.Context, ids []int64) ([]model.User, error)
}

type SessionStore interface {
	GetByID(ctx context.Context, id int64) (*model.Session, error)
	GetValid(ctx context.Context, id int64) (*model.Session, error) // checks expiry
	Create(ctx context.Context, session *model.Session) error
	Delete(ctx context.Context, id int64) error
}

type WorkspaceStore interface {
	GetByID(ctx context.Context, id int64) (*model.Workspace, error)
	GetByInviteCode(ctx context.Context, code string) (*model.Workspace, error)
	Create(ctx context.Context, ws *model.Workspace) error
	Update(ctx context.Context, ws *model.Workspace) error
	SetInviteCode(ctx context.Context, id int64, code string) (*model.Workspace, error)
	Delete(ctx context.Context, id int64) error
	ListByUser(ctx context.Context, userID int64) ([]model.Workspace, error)
	// Lock takes a row lock on the workspace for the rest of the transaction.
	Lock(ctx context.Context, id int64) error
}

type MemberStore interface {
	GetByID(ctx context.Context, id int64) (*model.Member, error)
	GetByWorkspaceAndUser(ctx context.Context, workspaceID, userID int64) (*model.Member, error)
	Create(ctx context.Context, m *model.Member) error
	UpdateRole(ctx context.Context, id int64, role model.Role) (*model.Member, error)
	Delete(ctx context.Context, id int64) error
	ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Member, error)
	ListByIDs(ctx context.Context, ids []int64) ([]model.Member, error)
	CountByRole(ctx context.Context, workspaceID int64) (total, admins int64, err error)
}

type ProjectStore interface {
	GetByID(ctx context.Context, id int64) (*model.Project, error)
	Create(ctx context.Context, p *model.Project) error
	Update(ctx context.Context, p *model.Project) error
	SetAssignees(ctx context.Context, id int64, assigneeIDs []int64) (*model.Project, error)
	Delete(ctx context.Context, id int64) error
	ListByWorkspace(ctx context.Context, workspaceID int64) ([]model.Project, error)
	ListByAssignee(ctx context.Context, workspaceID, memberID int64) ([]model.Project, error)
	ListByIDs(ctx context.Context, ids []int64) ([]model.Project, error)
	Lock(ctx context.Context, id int64) error
}

// ColumnEntry is one task's slot in a kanban column.
type ColumnEntry struct {
	TaskID   int64
	Position int64
}

type TaskStore interface {
	GetByID(ctx context.Context, id int64) (*model.Task, error)
	Create(ctx context.Context, t *model.Task) error
	Update(ctx context.Context, t *model.Task) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context, filter model.TaskFilter) ([]model.Task, error)
	Count(ctx context.Context, filter model.TaskCountFilter) (int64, error)

	// LockColumn serializes writers of one (workspace, status) column until
	// the surrounding transaction ends.
	LockColumn(ctx context.Context, workspaceID int64, status model.TaskStatus) error
	Column(ctx context.Context, workspaceID int64, status model.TaskStatus) ([]ColumnEntry, error)
	SetPosition(ctx context.Context, id, position int64) error
	Place(ctx context.Context, id int64, status model.TaskStatus, position int64) (*model.Task, error)
}

type CommentStore interface {
	GetForUpdate(ctx context.Context, id int64) (*model.Comment, error)
	Create(ctx context.Context, c *model.Comment) error
	Update(ctx context.Context, c *model.Comment) error
	Delete(ctx context.Context, id int64) error
	ListByTask(ctx context.Context, taskID int64) ([]model.Comment, error)
}

// FileStore keeps blobs in Postgres. Metadata reads never load the bytes.
type FileStore interface {
	Create(ctx context.Context, f *model.StorageFile, data []byte) error
	ListByIDs(ctx context.Context, ids []int64) ([]model.StorageFile, error)
	Open(ctx context.Context, bucketID string, id int64) (*model.StorageFile, []byte, error)
}
