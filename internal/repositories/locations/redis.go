package locations

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/rpg-world/internal/errors"
	"github.com/KirkDiggler/rpg-world/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-world/internal/redis"
)

const (
	// Key pattern: world:{world_id}:locations, one hash field per point
	worldKeyPrefix = "world:"
	locationsKey   = ":locations"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for world snapshots
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Save writes all locations with a single HSET
func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if err := validateSave(input); err != nil {
		return nil, err
	}
	if len(input.Locations) == 0 {
		return &SaveOutput{}, nil
	}

	now := r.clock.Now()
	values := make([]any, 0, 2*len(input.Locations))
	for _, loc := range input.Locations {
		record := NewRecord(loc)
		record.SavedAt = now

		recordJSON, err := json.Marshal(record)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal location at %s", loc.Point)
		}
		values = append(values, pointField(loc.Point), recordJSON)
	}

	key := r.buildKey(input.WorldID)
	if err := r.client.HSet(ctx, key, values...).Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store locations in Redis")
	}

	return &SaveOutput{Saved: len(input.Locations)}, nil
}

// Get retrieves the record at one point
func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.WorldID == "" {
		return nil, errors.InvalidArgument(errWorldIDEmpty)
	}

	recordJSON, err := r.client.HGet(ctx, r.buildKey(input.WorldID), pointField(input.Point)).Result()
	if err != nil {
		if redisclient.IsNil(err) {
			return nil, errors.NotFoundf("no location at %s in world %s", input.Point, input.WorldID)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to get location from Redis")
	}

	var record Record
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal location at %s", input.Point)
	}

	return &GetOutput{Record: &record}, nil
}

// List returns every record of a world ordered by point
func (r *redisRepository) List(ctx context.Context, input *ListInput) (*ListOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.WorldID == "" {
		return nil, errors.InvalidArgument(errWorldIDEmpty)
	}

	fields, err := r.client.HGetAll(ctx, r.buildKey(input.WorldID)).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to list locations from Redis")
	}

	records := make([]*Record, 0, len(fields))
	for field, recordJSON := range fields {
		var record Record
		if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
			return nil, errors.Wrapf(err, "failed to unmarshal location %s", field)
		}
		records = append(records, &record)
	}
	sortRecords(records)

	return &ListOutput{Records: records}, nil
}

// buildKey creates the Redis key for a world's locations
func (r *redisRepository) buildKey(worldID string) string {
	return fmt.Sprintf("%s%s%s", worldKeyPrefix, worldID, locationsKey)
}
