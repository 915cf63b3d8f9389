// Package cache holds read-through caches in front of Postgres.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"basegraph.app/planboard/internal/model"
)

// Generation identifies the state of a task's comment list. Every
// Invalidate starts a new generation.
type Generation int64

// NoGeneration is returned when the current generation is unknown. Set
// ignores it.
const NoGeneration Generation = -1

// CommentCache caches the resolved comment list of a task. Writers call
// Invalidate after every create, edit or delete of a comment on the task.
//
// Readers pass the generation returned by a missed Get to Set, so a list
// loaded before a concurrent write is never stored for later readers.
type CommentCache interface {
	Get(ctx context.Context, taskID int64) ([]model.CommentView, Generation, bool)
	Set(ctx context.Context, taskID int64, gen Generation, comments []model.CommentView)
	Invalidate(ctx context.Context, taskID int64) error
}

type redisCommentCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisCommentCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) CommentCache {
	if logger == nil {
		logger = slog.Default()
	}
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &redisCommentCache{client: client, ttl: ttl, logger: logger}
}

// generationKey holds the task's current generation. It has no TTL.
func generationKey(taskID int64) string {
	return fmt.Sprintf("planboard:comments:task:%d:v", taskID)
}

// EntryKey holds the comment list of one generation.
func EntryKey(taskID int64, gen Generation) string {
	return fmt.Sprintf("planboard:comments:task:%d:v%d", taskID, gen)
}

// Get treats any redis failure as a miss.
func (c *redisCommentCache) Get(ctx context.Context, taskID int64) ([]model.CommentView, Generation, bool) {
	gen, err := c.generation(ctx, taskID)
	if err != nil {
		c.logger.WarnContext(ctx, "comment cache read failed", "task_id", taskID, "error", err)
		return nil, NoGeneration, false
	}

	raw, err := c.client.Get(ctx, EntryKey(taskID, gen)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.WarnContext(ctx, "comment cache read failed", "task_id", taskID, "error", err)
			return nil, NoGeneration, false
		}
		return nil, gen, false
	}

	var comments []model.CommentView
	if err := json.Unmarshal(raw, &comments); err != nil {
		c.logger.WarnContext(ctx, "comment cache entry corrupt", "task_id", taskID, "error", err)
		return nil, gen, false
	}
	return comments, gen, true
}

// Set writes under gen. An entry for a superseded generation is unreachable,
// so a stale writer only leaves garbage that expires on the TTL.
func (c *redisCommentCache) Set(ctx context.Context, taskID int64, gen Generation, comments []model.CommentView) {
	if gen == NoGeneration {
		return
	}
	raw, err := json.Marshal(comments)
	if err != nil {
		c.logger.WarnContext(ctx, "comment cache encode failed", "task_id", taskID, "error", err)
		return
	}
	if err := c.client.Set(ctx, EntryKey(taskID, gen), raw, c.ttl).Err(); err != nil {
		c.logger.WarnContext(ctx, "comment cache write failed", "task_id", taskID, "error", err)
	}
}

func (c *redisCommentCache) Invalidate(ctx context.Context, taskID int64) error {
	next, err := c.client.Incr(ctx, generationKey(taskID)).Result()
	if err != nil {
		return fmt.Errorf("invalidating comments of task %d: %w", taskID, err)
	}
	if err := c.client.Del(ctx, EntryKey(taskID, Generation(next-1))).Err(); err != nil {
		c.logger.WarnContext(ctx, "comment cache cleanup failed", "task_id", taskID, "error", err)
	}
	return nil
}

func (c *redisCommentCache) generation(ctx context.Context, taskID int64) (Generation, error) {
	gen, err := c.client.Get(ctx, generationKey(taskID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return NoGeneration, err
	}
	return Generation(gen), nil
}

type noopCommentCache struct{}

// NewNoopCommentCache is used when no redis is configured.
func NewNoopCommentCache() CommentCache {
	return noopCommentCache{}
}

func (noopCommentCache) Get(context.Context, int64) ([]model.CommentView, Generation, bool) {
	return nil, NoGeneration, false
}

func (noopCommentCache) Set(context.Context, int64, Generation, []model.CommentView) {}
func (noopCommentCache) Invalidate(context.Context, int64) error { return nil }
