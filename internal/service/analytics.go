package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"basegraph.app/planboard/common/logger"
	"basegraph.app/planboard/internal/model"
)

type AnalyticsService interface {
	// Project reports the month-over-month task metrics of one project.
	// The caller needs access to the project.
	Project(ctx context.Context, userID, projectID int64) (*model.Analytics, error)
	// Workspace reports the same metrics across the whole workspace.
	Workspace(ctx context.Context, userID, workspaceID int64) (*model.Analytics, error)
}

type analyticsService struct {
	stores   StoreProvider
	location *time.Location
	now      func() time.Time
}

// NewAnalyticsService computes month windows in loc (UTC when nil). now may be
// nil to use the wall clock.
func NewAnalyticsService(stores StoreProvider, loc *time.Location, now func() time.Time) AnalyticsService {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &analyticsService{stores: stores, location: loc, now: now}
}

func (s *analyticsService) Project(ctx context.Context, userID, projectID int64) (*model.Analytics, error) {
	project, member, err := resolveProject(ctx, s.stores, projectID, userID)
	if err != nil {
		return nil, err
	}
	return s.compute(ctx, project.WorkspaceID, &project.ID, member.ID)
}

func (s *analyticsService) Workspace(ctx context.Context, userID, workspaceID int64) (*model.Analytics, error) {
	member, err := ResolveMember(ctx, s.stores.Members(), workspaceID, userID)
	if err != nil {
		return nil, err
	}
	return s.compute(ctx, workspaceID, nil, member.ID)
}

// monthWindow is [start, end) of one calendar month.
type monthWindow struct {
	start time.Time
	end   time.Time
}

func (s *analyticsService) windows(now time.Time) (this, last monthWindow) {
	local := now.In(s.location)
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, s.location)
	this = monthWindow{start: start, end: start.AddDate(0, 1, 0)}
	last = monthWindow{start: start.AddDate(0, -1, 0), end: start}
	return this, last
}

const (
	metricTasks = iota
	metricAssigned
	metricCompleted
	metricIncomplete
	metricOverdue
	metricCount
)

// compute runs the ten count queries (five metrics for two months) in
// parallel. Each goroutine writes its own slot.
func (s *analyticsService) compute(ctx context.Context, workspaceID int64, projectID *int64, memberID int64) (*model.Analytics, error) {
	sc := logger.StartSpan(ctx, "analytics.compute")
	defer sc.End()
	ctx = sc.Context()
	sc.SetInt64("workspace_id", workspaceID)

	now := s.now()
	this, last := s.windows(now)
	done := model.TaskStatusDone

	filters := func(w monthWindow) [metricCount]model.TaskCountFilter {
		base := model.TaskCountFilter{
			WorkspaceID:   workspaceID,
			ProjectID:     projectID,
			CreatedFrom:   w.start,
			CreatedBefore: w.end,
		}
		var f [metricCount]model.TaskCountFilter
		for i := range f {
			f[i] = base
		}
		f[metricAssigned].AssigneeID = &memberID
		f[metricCompleted].Status = &done
		f[metricIncomplete].ExcludeStatus = &done
		f[metricOverdue].ExcludeStatus = &done
		f[metricOverdue].DueBefore = &now
		return f
	}

	var counts [2][metricCount]int64
	g, gctx := errgroup.WithContext(ctx)
	for month, w := range []monthWindow{this, last} {
		for metric, filter := range filters(w) {
			g.Go(func() error {
				n, err := s.stores.Tasks().Count(gctx, filter)
				if err != nil {
					return fmt.Errorf("counting tasks: %w", err)
				}
				counts[month][metric] = n
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		sc.RecordError(err)
		return nil, err
	}

	cur, prev := counts[0], counts[1]
	return &model.Analytics{
		Tasks:      model.NewMetric(cur[metricTasks], prev[metricTasks]),
		Assigned:   model.NewMetric(cur[metricAssigned], prev[metricAssigned]),
		Completed:  model.NewMetric(cur[metricCompleted], prev[metricCompleted]),
		Incomplete: model.NewMetric(cur[metricIncomplete], prev[metricIncomplete]),
		Overdue:    model.NewMetric(cur[metricOverdue], prev[metricOverdue]),
	}, nil
}
