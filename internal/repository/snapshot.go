package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/gamesearch/internal/entity"
)

var ErrSnapshotNotFound = errors.New("snapshot not found")

const snapshotIndexKey = "snapshots"

// SnapshotRepository stores diagnostic snapshots of failed searches.
type SnapshotRepository interface {
	SaveSnapshot(ctx context.Context, snapshot *entity.Snapshot) error
	GetByID(ctx context.Context, id string) (*entity.Snapshot, error)
	ListIDs(ctx context.Context) ([]string, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbSnapshot struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSnapshotRepository - ttl of zero keeps snapshots until deleted.
func NewSnapshotRepository(client *redis.Client, ttl time.Duration) SnapshotRepository {
	return &dbSnapshot{
		client: client,
		ttl:    ttl,
	}
}

func snapshotKey(id string) string {
	return "snapshot:" + id
}

func (that *dbSnapshot) SaveSnapshot(ctx context.Context, snapshot *entity.Snapshot) error {
	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("could not marshal snapshot: %w", err)
	}

	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, snapshotKey(snapshot.ID), snapshotJSON, that.ttl)
		pipe.SAdd(ctx, snapshotIndexKey, snapshot.ID)

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to set snapshot: %w", err)
	}

	return nil
}

func (that *dbSnapshot) GetByID(ctx context.Context, id string) (*entity.Snapshot, error) {
	response, err := that.client.Get(ctx, snapshotKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrSnapshotNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot by id: %w", err)
	}

	var snapshot entity.Snapshot
	if err = json.Unmarshal([]byte(response), &snapshot); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}

	return &snapshot, nil
}

// ListIDs returns the ids of the stored snapshots. Ids whose snapshot has expired are dropped from the index.
func (that *dbSnapshot) ListIDs(ctx context.Context) ([]string, error) {
	ids, err := that.client.SMembers(ctx, snapshotIndexKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	live := make([]string, 0, len(ids))

	for _, id := range ids {
		n, err := that.client.Exists(ctx, snapshotKey(id)).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to check snapshot %s: %w", id, err)
		}

		if n == 0 {
			if err = that.client.SRem(ctx, snapshotIndexKey, id).Err(); err != nil {
				return nil, fmt.Errorf("failed to drop expired snapshot %s: %w", id, err)
			}

			continue
		}

		live = append(live, id)
	}

	return live, nil
}

func (that *dbSnapshot) DeleteByID(ctx context.Context, id string) error {
	var del *redis.IntCmd

	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		del = pipe.Del(ctx, snapshotKey(id))
		pipe.SRem(ctx, snapshotIndexKey, id)

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete snapshot by ID: %w", err)
	}

	if del.Val() == 0 {
		return ErrSnapshotNotFound
	}

	return nil
}
