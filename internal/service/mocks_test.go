package service_test

import (
	"cmp"
	"context"
	"errors"
	"io"
	"slices"
	"strings"
	"sync"
	"time"

	"basegraph.app/planboard/common/id"
	"basegraph.app/planboard/internal/cache"
	"basegraph.app/planboard/internal/model"
	"basegraph.app/planboard/internal/service"
	"basegraph.app/planboard/internal/storage"
	"basegraph.app/planboard/internal/store"
)

// fakeDB is an in-memory StoreProvider. Transactions run directly against it.
type fakeDB struct {
	mu         sync.Mutex
	now        func() time.Time
	users      map[int64]model.User
	workspaces map[int64]model.Workspace
	members    map[int64]model.Member
	projects   map[int64]model.Project
	tasks      map[int64]model.Task
	comments   map[int64]model.Comment
	files      map[int64]model.StorageFile

	lockedColumns []model.TaskStatus
	lockedSpaces  []int64

	// afterCommentRead runs once ListByTask has read the rows, outside the lock.
	afterCommentRead func()
	// inviteCollisions is how many more invite code writes fail as taken.
	inviteCollisions int
}

func newFakeDB() *fakeDB {
	return &fakeDB{
		now:        time.Now,
		users:      map[int64]model.User{},
		workspaces: map[int64]model.Workspace{},
		members:    map[int64]model.Member{},
		projects:   map[int64]model.Project{},
		tasks:      map[int64]model.Task{},
		comments:   map[int64]model.Comment{},
		files:      map[int64]model.StorageFile{},
	}
}

func (d *fakeDB) Users() store.UserStore           { return fakeUsers{d} }
func (d *fakeDB) Sessions() store.SessionStore     { return nil }
func (d *fakeDB) Workspaces() store.WorkspaceStore { return fakeWorkspaces{d} }
func (d *fakeDB) Members() store.MemberStore       { return fakeMembers{d} }
func (d *fakeDB) Projects() store.ProjectStore     { return fakeProjects{d} }
func (d *fakeDB) Tasks() store.TaskStore           { return fakeTasks{d} }
func (d *fakeDB) Comments() store.CommentStore     { return fakeComments{d} }
func (d *fakeDB) Files() store.FileStore           { return nil }

// seed helpers

func (d *fakeDB) addUser(name string) model.User {
	d.mu.Lock()
	defer d.mu.Unlock()
	u := model.User{ID: id.New(), Name: name, Email: strings.ToLower(name) + "@example.com"}
	d.users[u.ID] = u
	return u
}

func (d *fakeDB) addWorkspace(owner model.User) model.Workspace {
	d.mu.Lock()
	defer d.mu.Unlock()
	ws := model.Workspace{ID: id.New(), Name: "Acme", InviteCode: "JOIN01", OwnerUserID: owner.ID}
	d.workspaces[ws.ID] = ws
	return ws
}

func (d *fakeDB) addMember(ws model.Workspace, u model.User, role model.Role) model.Member {
	d.mu.Lock()
	defer d.mu.Unlock()
	m := model.Member{ID: id.New(), WorkspaceID: ws.ID, UserID: u.ID, Role: role, CreatedAt: d.now()}
	d.members[m.ID] = m
	return m
}

func (d *fakeDB) addProject(ws model.Workspace, creator model.Member, assignees ...int64) model.Project {
	d.mu.Lock()
	defer d.mu.Unlock()
	p := model.Project{
		ID:          id.New(),
		WorkspaceID: ws.ID,
		Name:        "Project",
		CreatedBy:   creator.ID,
		AssigneeIDs: append([]int64{creator.ID}, assignees...),
		CreatedAt:   d.now(),
	}
	d.projects[p.ID] = p
	return p
}

func (d *fakeDB) addTask(t model.Task) model.Task {
	d.mu.Lock()
	defer d.mu.Unlock()
	if t.ID == 0 {
		t.ID = id.New()
	}
	if t.CreatedAt.IsZero() {
		t.CreatedAt = d.now()
	}
	d.tasks[t.ID] = t
	return t
}

func (d *fakeDB) task(id int64) model.Task {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.tasks[id]
}

type fakeUsers struct{ d *fakeDB }

func (f fakeUsers) GetByID(_ context.Context, id int64) (*model.User, error) {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	u, ok := f.d.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &u, nil
}

func (f fakeUsers) GetByEmail(_ context.Context, email string) (*model.User, error) {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	for _, u := range f.d.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f fakeUsers) Upsert(_ context.Context, user *model.User) error {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	f.d.users[user.ID] = *user
	return nil
}

func (f fakeUsers) ListByIDs(_ context.Context, ids []int64) ([]model.User, error) {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	var out []model.User
	for _, id := range ids {
		if u, ok := f.d.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}

type fakeWorkspaces struct{ d *fakeDB }

func (f fakeWorkspaces) GetByID(_ context.Context, id int64) (*model.Workspace, error) {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	ws, ok := f.d.workspaces[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &ws, nil
}

func (f fakeWorkspaces) GetByInviteCode(_ context.Context, code string) (*model.Workspace, error) {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	for _, ws := range f.d.workspaces {
		if ws.InviteCode == code {
			return &ws, nil
		}
	}
	return nil, store.ErrNotFound
}

func (d *fakeDB) inviteCodeTaken(id int64, code string) bool {
	if d.inviteCollisions > 0 {
		d.inviteCollisions--
		return true
	}
	for _, ws := range d.workspaces {
		if ws.ID != id && ws.InviteCode == code {
			return true
		}
	}
	return false
}

func (f fakeWorkspaces) Create(_ context.Context, ws *model.Workspace) error {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	if f.d.inviteCodeTaken(ws.ID, ws.InviteCode) {
		return errors.Join(store.ErrConflict, errors.New("workspaces_invite_code_key"))
	}
	ws.CreatedAt = f.d.now()
	f.d.workspaces[ws.ID] = *ws
	return nil
}

func (f fakeWorkspaces) Update(_ context.Context, ws *model.Workspace) error {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	if _, ok := f.d.workspaces[ws.ID]; !ok {
		return store.ErrNotFound
	}
	f.d.workspaces[ws.ID] = *ws
	return nil
}

func (f fakeWorkspaces) SetInviteCode(_ context.Context, id int64, code string) (*model.Workspace, error) {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	ws, ok := f.d.workspaces[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if f.d.inviteCodeTaken(id, code) {
		return nil, errors.Join(store.ErrConflict, errors.New("workspaces_invite_code_key"))
	}
	ws.InviteCode = code
	f.d.workspaces[id] = ws
	return &ws, nil
}

func (f fakeWorkspaces) Delete(_ context.Context, id int64) error {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	delete(f.d.workspaces, id)
	return nil
}

func (f fakeWorkspaces) ListByUser(_ context.Context, userID int64) ([]model.Workspace, error) {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	var out []model.Workspace
	for _, m := range f.d.members {
		if m.UserID == userID {
			out = append(out, f.d.workspaces[m.WorkspaceID])
		}
	}
	return out, nil
}

func (f fakeWorkspaces) Lock(_ context.Context, id int64) error {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	if _, ok := f.d.workspaces[id]; !ok {
		return store.ErrNotFound
	}
	f.d.lockedSpaces = append(f.d.lockedSpaces, id)
	return nil
}

type fakeMembers struct{ d *fakeDB }

func (f fakeMembers) GetByID(_ context.Context, id int64) (*model.Member, error) {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	m, ok := f.d.members[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &m, nil
}

func (f fakeMembers) GetByWorkspaceAndUser(_ context.Context, workspaceID, userID int64) (*model.Member, error) {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	for _, m := range f.d.members {
		if m.WorkspaceID == workspaceID && m.UserID == userID {
			return &m, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f fakeMembers) Create(_ context.Context, m *model.Member) error {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	for _, existing := range f.d.members {
		if existing.WorkspaceID == m.WorkspaceID && existing.UserID == m.UserID {
			return store.ErrConflict
		}
	}
	m.CreatedAt = f.d.now()
	f.d.members[m.ID] = *m
	return nil
}

func (f fakeMembers) UpdateRole(_ context.Context, id int64, role model.Role) (*model.Member, error) {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	m, ok := f.d.members[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	m.Role = role
	f.d.members[id] = m
	return &m, nil
}

func (f fakeMembers) Delete(_ context.Context, id int64) error {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	delete(f.d.members, id)
	return nil
}

func (f fakeMembers) ListByWorkspace(_ context.Context, workspaceID int64) ([]model.Member, error) {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	var out []model.Member
	for _, m := range f.d.members {
		if m.WorkspaceID == workspaceID {
			out = append(out, m)
		}
	}
	slices.SortFunc(out, func(a, b model.Member) int { return cmp.Compare(a.ID, b.ID) })
	return out, nil
}

func (f fakeMembers) ListByIDs(_ context.Context, ids []int64) ([]model.Member, error) {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	var out []model.Member
	for _, id := range ids {
		if m, ok := f.d.members[id]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f fakeMembers) CountByRole(_ context.Context, workspaceID int64) (int64, int64, error) {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	var total, admins int64
	for _, m := range f.d.members {
		if m.WorkspaceID != workspaceID {
			continue
		}
		total++
		if m.Role == model.RoleAdmin {
			admins++
		}
	}
	return total, admins, nil
}

type fakeProjects struct{ d *fakeDB }

func (f fakeProjects) GetByID(_ context.Context, id int64) (*model.Project, error) {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	p, ok := f.d.projects[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	p.AssigneeIDs = slices.Clone(p.AssigneeIDs)
	return &p, nil
}

func (f fakeProjects) Create(_ context.Context, p *model.Project) error {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	p.CreatedAt = f.d.now()
	f.d.projects[p.ID] = *p
	return nil
}

func (f fakeProjects) Update(_ context.Context, p *model.Project) error {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	f.d.projects[p.ID] = *p
	return nil
}

func (f fakeProjects) SetAssignees(_ context.Context, id int64, assigneeIDs []int64) (*model.Project, error) {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	p, ok := f.d.projects[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	p.AssigneeIDs = slices.Clone(assigneeIDs)
	f.d.projects[id] = p
	return &p, nil
}

func (f fakeProjects) Delete(_ context.Context, id int64) error {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	delete(f.d.projects, id)
	for tid, t := range f.d.tasks {
		if t.ProjectID == id {
			delete(f.d.tasks, tid)
		}
	}
	return nil
}

func (f fakeProjects) list(keep func(model.Project) bool) []model.Project {
	var out []model.Project
	for _, p := range f.d.projects {
		if keep(p) {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, func(a, b model.Project) int { return cmp.Compare(b.ID, a.ID) })
	return out
}

func (f fakeProjects) ListByWorkspace(_ context.Context, workspaceID int64) ([]model.Project, error) {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	return f.list(func(p model.Project) bool { return p.WorkspaceID == workspaceID }), nil
}

func (f fakeProjects) ListByAssignee(_ context.Context, workspaceID, memberID int64) ([]model.Project, error) {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	return f.list(func(p model.Project) bool {
		return p.WorkspaceID == workspaceID && slices.Contains(p.AssigneeIDs, memberID)
	}), nil
}

func (f fakeProjects) ListByIDs(_ context.Context, ids []int64) ([]model.Project, error) {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	return f.list(func(p model.Project) bool { return slices.Contains(ids, p.ID) }), nil
}

func (f fakeProjects) Lock(_ context.Context, id int64) error {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	if _, ok := f.d.projects[id]; !ok {
		return store.ErrNotFound
	}
	return nil
}

type fakeTasks struct{ d *fakeDB }

func (f fakeTasks) GetByID(_ context.Context, id int64) (*model.Task, error) {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	t, ok := f.d.tasks[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &t, nil
}

func (f fakeTasks) Create(_ context.Context, t *model.Task) error {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	t.CreatedAt = f.d.now()
	f.d.tasks[t.ID] = *t
	return nil
}

func (f fakeTasks) Update(_ context.Context, t *model.Task) error {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	stored, ok := f.d.tasks[t.ID]
	if !ok {
		return store.ErrNotFound
	}
	t.Status, t.Position = stored.Status, stored.Position
	f.d.tasks[t.ID] = *t
	return nil
}

func (f fakeTasks) Delete(_ context.Context, id int64) error {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	delete(f.d.tasks, id)
	return nil
}

func (f fakeTasks) List(_ context.Context, filter model.TaskFilter) ([]model.Task, error) {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	var out []model.Task
	for _, t := range f.d.tasks {
		switch {
		case t.WorkspaceID != filter.WorkspaceID:
		case filter.ProjectID != nil && t.ProjectID != *filter.ProjectID:
		case filter.ProjectIDs != nil && !slices.Contains(filter.ProjectIDs, t.ProjectID):
		case filter.Status != nil && t.Status != *filter.Status:
		case filter.AssigneeID != nil && !slices.Contains(t.AssigneeIDs, *filter.AssigneeID):
		case filter.Search != nil && !strings.Contains(strings.ToLower(t.Name), strings.ToLower(*filter.Search)):
		default:
			out = append(out, t)
		}
	}
	if filter.Order == model.TaskOrderPosition {
		slices.SortFunc(out, func(a, b model.Task) int {
			if c := cmp.Compare(slices.Index(model.TaskStatuses, a.Status), slices.Index(model.TaskStatuses, b.Status)); c != 0 {
				return c
			}
			return cmp.Compare(a.Position, b.Position)
		})
	} else {
		slices.SortFunc(out, func(a, b model.Task) int { return b.CreatedAt.Compare(a.CreatedAt) })
	}
	return out, nil
}

func (f fakeTasks) Count(_ context.Context, filter model.TaskCountFilter) (int64, error) {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	var n int64
	for _, t := range f.d.tasks {
		switch {
		case t.WorkspaceID != filter.WorkspaceID:
		case filter.ProjectID != nil && t.ProjectID != *filter.ProjectID:
		case filter.AssigneeID != nil && !slices.Contains(t.AssigneeIDs, *filter.AssigneeID):
		case filter.Status != nil && t.Status != *filter.Status:
		case filter.ExcludeStatus != nil && t.Status == *filter.ExcludeStatus:
		case filter.DueBefore != nil && !t.DueDate.Before(*filter.DueBefore):
		case t.CreatedAt.Before(filter.CreatedFrom):
		case !t.CreatedAt.Before(filter.CreatedBefore):
		default:
			n++
		}
	}
	return n, nil
}

func (f fakeTasks) LockColumn(_ context.Context, _ int64, status model.TaskStatus) error {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	f.d.lockedColumns = append(f.d.lockedColumns, status)
	return nil
}

func (f fakeTasks) Column(_ context.Context, workspaceID int64, status model.TaskStatus) ([]store.ColumnEntry, error) {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	var out []store.ColumnEntry
	for _, t := range f.d.tasks {
		if t.WorkspaceID == workspaceID && t.Status == status {
			out = append(out, store.ColumnEntry{TaskID: t.ID, Position: t.Position})
		}
	}
	slices.SortFunc(out, func(a, b store.ColumnEntry) int { return cmp.Compare(a.Position, b.Position) })
	return out, nil
}

func (f fakeTasks) SetPosition(_ context.Context, id, position int64) error {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	t := f.d.tasks[id]
	t.Position = position
	f.d.tasks[id] = t
	return nil
}

func (f fakeTasks) Place(_ context.Context, id int64, status model.TaskStatus, position int64) (*model.Task, error) {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	t, ok := f.d.tasks[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	t.Status, t.Position = status, position
	f.d.tasks[id] = t
	return &t, nil
}

type fakeComments struct{ d *fakeDB }

func (f fakeComments) GetForUpdate(_ context.Context, id int64) (*model.Comment, error) {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	c, ok := f.d.comments[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &c, nil
}

func (f fakeComments) Create(_ context.Context, c *model.Comment) error {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	c.CreatedAt = f.d.now()
	f.d.comments[c.ID] = *c
	return nil
}

func (f fakeComments) Update(_ context.Context, c *model.Comment) error {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	f.d.comments[c.ID] = *c
	return nil
}

func (f fakeComments) Delete(_ context.Context, id int64) error {
	f.d.mu.Lock()
	defer f.d.mu.Unlock()
	delete(f.d.comments, id)
	return nil
}

func (f fakeComments) ListByTask(_ context.Context, taskID int64) ([]model.Comment, error) {
	f.d.mu.Lock()
	var out []model.Comment
	for _, c := range f.d.comments {
		if c.TaskID == taskID {
			out = append(out, c)
		}
	}
	hook := f.d.afterCommentRead
	f.d.mu.Unlock()

	slices.SortFunc(out, func(a, b model.Comment) int { return cmp.Compare(b.ID, a.ID) })
	if hook != nil {
		hook()
	}
	return out, nil
}

type mockTxRunner struct {
	withTxFn func(ctx context.Context, fn func(stores service.StoreProvider) error) error
	calls    int
}

func (m *mockTxRunner) WithTx(ctx context.Context, fn func(stores service.StoreProvider) error) error {
	m.calls++
	return m.withTxFn(ctx, fn)
}

func txOver(d *fakeDB) *mockTxRunner {
	return &mockTxRunner{
		withTxFn: func(_ context.Context, fn func(stores service.StoreProvider) error) error {
			return fn(d)
		},
	}
}

// mockStorage keeps uploads in memory.
type mockStorage struct {
	mu     sync.Mutex
	files  map[int64]model.StorageFile
	data   map[int64][]byte
	saveFn func(ctx context.Context, workspaceID int64, bucketID string, upload storage.Upload) (*model.StorageFile, error)
}

func newMockStorage() *mockStorage {
	return &mockStorage{files: map[int64]model.StorageFile{}, data: map[int64][]byte{}}
}

func (m *mockStorage) Save(ctx context.Context, workspaceID int64, bucketID string, upload storage.Upload) (*model.StorageFile, error) {
	if m.saveFn != nil {
		return m.saveFn(ctx, workspaceID, bucketID, upload)
	}
	data, err := io.ReadAll(upload.Body)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, storage.ErrEmptyFile
	}
	f := model.StorageFile{
		ID:          id.New(),
		WorkspaceID: workspaceID,
		BucketID:    bucketID,
		Name:        upload.Name,
		MimeType:    upload.ContentType,
		Size:        int64(len(data)),
	}
	m.mu.Lock()
	m.files[f.ID] = f
	m.data[f.ID] = data
	m.mu.Unlock()
	return &f, nil
}

func (m *mockStorage) SaveImage(ctx context.Context, workspaceID int64, upload storage.Upload) (*model.StorageFile, error) {
	return m.Save(ctx, workspaceID, "images", upload)
}

func (m *mockStorage) Describe(_ context.Context, ids []int64) (map[int64]model.Attachment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := map[int64]model.Attachment{}
	for _, id := range ids {
		if f, ok := m.files[id]; ok {
			out[id] = model.Attachment{StorageFile: f, DownloadURL: m.DownloadURL(f.BucketID, f.ID)}
		}
	}
	return out, nil
}

func (m *mockStorage) Stat(_ context.Context, bucketID string, fileID int64) (*model.StorageFile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	f, ok := m.files[fileID]
	if !ok || f.BucketID != bucketID {
		return nil, store.ErrNotFound
	}
	return &f, nil
}

func (m *mockStorage) Open(ctx context.Context, bucketID string, fileID int64) (*model.StorageFile, []byte, error) {
	f, err := m.Stat(ctx, bucketID, fileID)
	if err != nil {
		return nil, nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return f, m.data[fileID], nil
}

func (m *mockStorage) DownloadURL(bucketID string, fileID int64) string {
	return storage.URLBuilder{Endpoint: "http://files.test", ProjectID: "test"}.DownloadURL(bucketID, fileID)
}

func (m *mockStorage) DocumentsBucket() string {
	return "documents"
}

// mapCommentCache is a working cache used to prove invalidation. It follows
// the generation rules of the redis cache.
type mapCommentCache struct {
	mu          sync.Mutex
	entries     map[int64][]model.CommentView
	generations map[int64]cache.Generation
	invalidated []int64
	dropped     int
}

func newMapCommentCache() *mapCommentCache {
	return &mapCommentCache{
		entries:     map[int64][]model.CommentView{},
		generations: map[int64]cache.Generation{},
	}
}

func (c *mapCommentCache) Get(_ context.Context, taskID int64) ([]model.CommentView, cache.Generation, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[taskID]
	return v, c.generations[taskID], ok
}

func (c *mapCommentCache) Set(_ context.Context, taskID int64, gen cache.Generation, comments []model.CommentView) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generations[taskID] {
		c.dropped++
		return
	}
	c.entries[taskID] = comments
}

func (c *mapCommentCache) Invalidate(_ context.Context, taskID int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.generations[taskID]++
	delete(c.entries, taskID)
	c.invalidated = append(c.invalidated, taskID)
	return nil
}

func ptr[T any](v T) *T {
	return &v
}
