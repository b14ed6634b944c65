package rostersnapshot

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/superstar-draft/internal/errors"
	"github.com/KirkDiggler/superstar-draft/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/superstar-draft/internal/redis"
)

// Key pattern: roster_snapshot:{session_id}
const snapshotKeyPrefix = "roster_snapshot:"

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("client")
	}
	if c.Clock == nil {
		vb.RequiredField("clock")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for roster snapshots
func NewRedisRepository(cfg *Config) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}
	if input.Snapshot.Budget < 0 {
		return nil, errors.InvalidArgument(errBudgetNegative).
			WithMeta("budget", input.Snapshot.Budget)
	}

	record := &Record{
		SessionID: input.SessionID,
		Snapshot:  copySnapshot(input.Snapshot),
		SavedAt:   r.clock.Now(),
	}

	data, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal snapshot")
	}

	key := r.buildKey(input.SessionID)
	if err := r.client.Set(ctx, key, data, input.TTL).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store snapshot in Redis").
			WithMeta("session_id", input.SessionID)
	}

	return &SaveOutput{Record: copyRecord(record)}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	data, err := r.client.Get(ctx, r.buildKey(input.SessionID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("snapshot for session %s not found", input.SessionID).
				WithMeta("session_id", input.SessionID)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get snapshot from Redis").
			WithMeta("session_id", input.SessionID)
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeDataLoss, "stored snapshot is corrupt").
			WithMeta("session_id", input.SessionID)
	}
	record.SessionID = input.SessionID
	if record.SelectedNames == nil {
		record.SelectedNames = []string{}
	}

	return &GetOutput{Record: &record}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument(errSessionIDEmpty)
	}

	n, err := r.client.Del(ctx, r.buildKey(input.SessionID)).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to delete snapshot from Redis").
			WithMeta("session_id", input.SessionID)
	}

	return &DeleteOutput{Deleted: n > 0}, nil
}

func (r *redisRepository) buildKey(sessionID string) string {
	return snapshotKeyPrefix + sessionID
}
