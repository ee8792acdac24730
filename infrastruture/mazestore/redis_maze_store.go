// Package mazestore keeps maze recipes in redis for a limited time.
package mazestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	dmn "github.com/beka-birhanu/vinom-pathfinder/domain"
	"github.com/beka-birhanu/vinom-pathfinder/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix = "maze"
	recordKeyFmt  = "%s:record:%s"
	lockKeyFmt    = "%s:lock:%s"
	lockExpiry    = 10 * time.Second
)

// RedisStore manages maze records in Redis with TTL support.
type RedisStore struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
	prefix string
	logger i.Logger
}

// NewRedisStore initializes a RedisStore with the provided Redis client and TTL.
func NewRedisStore(client *redis.Client, ttlSeconds int, logger i.Logger) (*RedisStore, error) {
	if client == nil || logger == nil {
		return nil, errors.New("redis maze store: client and logger are required")
	}
	if ttlSeconds <= 0 {
		return nil, fmt.Errorf("redis maze store: ttl must be positive, got %d", ttlSeconds)
	}

	store := &RedisStore{
		client: client,
		ttl:    time.Duration(ttlSeconds) * time.Second,
		prefix: defaultPrefix,
		logger: logger,
	}
	pool := goredis.NewPool(client)
	store.locker = redsync.New(pool)
	return store, nil
}

func (s *RedisStore) recordKey(id uuid.UUID) string {
	return fmt.Sprintf(recordKeyFmt, s.prefix, id)
}

// Save writes the record and restarts its expiry.
func (s *RedisStore) Save(ctx context.Context, record *dmn.MazeRecord) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.recordKey(record.ID), payload, s.ttl).Err()
}

// ByID loads a record, returning dmn.ErrMazeNotFound once it has expired.
func (s *RedisStore) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	payload, err := s.client.Get(ctx, s.recordKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("%w: %s", dmn.ErrMazeNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	var record dmn.MazeRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		s.logger.Error(fmt.Sprintf("Decoding maze %s: %v", id, err))
		return nil, fmt.Errorf("decoding maze %s: %w", id, err)
	}
	return &record, nil
}

// Delete removes a record if present.
func (s *RedisStore) Delete(ctx context.Context, id uuid.UUID) error {
	return s.client.Del(ctx, s.recordKey(id)).Err()
}

// Lock takes the per-maze mutex without retrying. Only a lock held by someone
// else is reported as dmn.ErrMazeBusy; redis failures come back as they are.
func (s *RedisStore) Lock(ctx context.Context, id uuid.UUID) (func(), error) {
	mutex := s.locker.NewMutex(
		fmt.Sprintf(lockKeyFmt, s.prefix, id),
		redsync.WithExpiry(lockExpiry),
		redsync.WithTries(1),
	)
	if err := mutex.LockContext(ctx); err != nil {
		if isContention(err) {
			s.logger.Warn(fmt.Sprintf("Maze %s is already locked", id))
			return nil, fmt.Errorf("%w: %v", dmn.ErrMazeBusy, err)
		}
		s.logger.Error(fmt.Sprintf("Locking maze %s: %v", id, err))
		return nil, fmt.Errorf("locking maze %s: %w", id, err)
	}

	return func() {
		_, _ = mutex.UnlockContext(context.Background())
	}, nil
}

// isContention reports whether a redsync error means the lock is held elsewhere.
func isContention(err error) bool {
	var taken *redsync.ErrTaken
	return errors.Is(err, redsync.ErrFailed) || errors.As(err, &taken)
}
