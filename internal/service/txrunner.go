package service

import (
	"context"

	"basegraph.app/planboard/core/db"
	"basegraph.app/planboard/core/db/sqlc"
	"basegraph.app/planboard/internal/store"
)

// StoreProvider exposes the stores, either pool-backed or bound to a
// transaction.
type StoreProvider interface {
	Users() store.UserStore
	Sessions() store.SessionStore
	Workspaces() store.WorkspaceStore
	Members() store.MemberStore
	Projects() store.ProjectStore
	Tasks() store.TaskStore
	Comments() store.CommentStore
	Files() store.FileStore
}

// TxRunner runs functions within a transaction and provides stores bound to that transaction.
type TxRunner interface {
	WithTx(ctx context.Context, fn func(stores StoreProvider) error) error
}

type dbTxRunner struct {
	db *db.DB
}

func NewTxRunner(db *db.DB) TxRunner {
	return &dbTxRunner{db: db}
}

// WithTx maps commit failures through store.MapError so a deferred unique
// violation surfaces as store.ErrConflict.
func (r *dbTxRunner) WithTx(ctx context.Context, fn func(stores StoreProvider) error) error {
	err := r.db.WithTx(ctx, func(q *sqlc.Queries) error {
		return fn(store.NewStores(q))
	})
	return store.MapError(err)
}
