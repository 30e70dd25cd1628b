package statdefs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	statkiterr "github.com/jfandel/statkit/internal/errors"
	"github.com/jfandel/statkit/internal/uuid"
)

const defIndexKey = "statdefs"

// redisRepo implements Repository using Redis. Definitions are stored as
// JSON blobs keyed by ID, with a set index for listing.
type redisRepo struct {
	client        *redis.Client
	uuidGenerator uuid.Generator
	timeProvider  TimeProvider
}

// NewRedis creates a Redis-backed repository
func NewRedis(client *redis.Client, uuidGenerator uuid.Generator, timeProvider TimeProvider) Repository {
	return &redisRepo{
		client:        client,
		uuidGenerator: uuidGenerator,
		timeProvider:  timeProvider,
	}
}

func defKey(id string) string {
	return fmt.Sprintf("statdef:%s", id)
}

// Create stores a new definition, assigning an ID when absent
func (r *redisRepo) Create(ctx context.Context, def *Definition) error {
	if def == nil {
		return statkiterr.InvalidArgument("definition cannot be nil")
	}
	if err := def.Validate(); err != nil {
		return err
	}

	if def.ID == "" {
		def.ID = r.uuidGenerator.New()
	}

	now := r.timeProvider.Now()
	def.CreatedAt = now
	def.UpdatedAt = now

	return r.set(ctx, def)
}

// Get retrieves a definition by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*Definition, error) {
	if id == "" {
		return nil, statkiterr.InvalidArgument("definition ID is required")
	}

	jsonData, err := r.client.Get(ctx, defKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, statkiterr.NotFoundf("definition %q not found", id)
		}
		return nil, statkiterr.Wrapf(err, "failed to get definition %q from Redis", id)
	}

	var def Definition
	if err := json.Unmarshal(jsonData, &def); err != nil {
		return nil, statkiterr.Wrapf(err, "failed to unmarshal definition %q", id)
	}

	return &def, nil
}

// Update replaces an existing definition
func (r *redisRepo) Update(ctx context.Context, def *Definition) error {
	if def == nil {
		return statkiterr.InvalidArgument("definition cannot be nil")
	}
	if err := def.Validate(); err != nil {
		return err
	}

	existing, err := r.Get(ctx, def.ID)
	if err != nil {
		return err
	}

	def.CreatedAt = existing.CreatedAt
	def.UpdatedAt = r.timeProvider.Now()

	return r.set(ctx, def)
}

// Delete removes a definition by ID
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return statkiterr.InvalidArgument("definition ID is required")
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, defKey(id))
	pipe.SRem(ctx, defIndexKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return statkiterr.Wrapf(err, "failed to delete definition %q from Redis", id)
	}

	return nil
}

// List returns all definitions, fanning the point reads out concurrently
func (r *redisRepo) List(ctx context.Context) ([]*Definition, error) {
	ids, err := r.client.SMembers(ctx, defIndexKey).Result()
	if err != nil {
		return nil, statkiterr.Wrap(err, "failed to list definitions from Redis")
	}

	defs := make([]*Definition, len(ids))

	g, ctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			def, err := r.Get(ctx, id)
			if err != nil {
				return err
			}
			defs[i] = def
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return defs, nil
}

func (r *redisRepo) set(ctx context.Context, def *Definition) error {
	jsonData, err := json.Marshal(def)
	if err != nil {
		return statkiterr.Wrapf(err, "failed to marshal definition %q", def.ID)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, defKey(def.ID), string(jsonData), 0)
	pipe.SAdd(ctx, defIndexKey, def.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return statkiterr.Wrapf(err, "failed to set definition %q in Redis", def.ID)
	}

	return nil
}
