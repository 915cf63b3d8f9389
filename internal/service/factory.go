package service

import (
	"time"

	"basegraph.app/planboard/core/config"
	"basegraph.app/planboard/internal/cache"
	"basegraph.app/planboard/internal/model"
	"basegraph.app/planboard/internal/ordering"
	"basegraph.app/planboard/internal/storage"
	"basegraph.app/planboard/internal/store"
)

type Options struct {
	WorkOS        config.WorkOSConfig
	CommentPolicy model.CommentEditPolicy
	AnalyticsTZ   *time.Location
	Storage       storage.Service
	CommentCache  cache.CommentCache
}

type Services struct {
	stores   *store.Stores
	txRunner TxRunner
	opts     Options
}

func NewServices(stores *store.Stores, txRunner TxRunner, opts Options) *Services {
	return &Services{
		stores:   stores,
		txRunner: txRunner,
		opts:     opts,
	}
}

func (s *Services) Auth() AuthService {
	return NewAuthService(s.stores.Users(), s.stores.Sessions(), s.opts.WorkOS)
}

func (s *Services) Workspaces() WorkspaceService {
	return NewWorkspaceService(s.stores, s.txRunner, s.opts.Storage)
}

func (s *Services) Members() MemberService {
	return NewMemberService(s.stores, s.txRunner)
}

func (s *Services) Projects() ProjectService {
	return NewProjectService(s.stores, s.txRunner, s.opts.Storage)
}

func (s *Services) Analytics() AnalyticsService {
	return NewAnalyticsService(s.stores, s.opts.AnalyticsTZ, nil)
}

func (s *Services) Tasks() TaskService {
	return NewTaskService(s.stores, s.txRunner, ordering.NewSparse())
}

func (s *Services) Comments() CommentService {
	return NewCommentService(s.stores, s.txRunner, s.opts.Storage, s.opts.CommentCache, s.opts.CommentPolicy)
}

func (s *Services) Files() FileService {
	return NewFileService(s.stores, s.opts.Storage)
}
