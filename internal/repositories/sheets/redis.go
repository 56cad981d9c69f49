package sheets

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-sheet/internal/redis"
)

const (
	// Key pattern: sheet:output:{filename}
	sheetKeyPrefix = "sheet:output:"
	defaultTTL     = 24 * time.Hour
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
	// TTL bounds how long a rendered sheet stays downloadable. Zero means
	// the default of one day.
	TTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.TTL < 0 {
		vb.Field("TTL", "must not be negative")
	}
	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
	ttl    time.Duration
}

type sheetRecord struct {
	Content string    `json:"content"`
	SavedAt time.Time `json:"saved_at"`
}

// NewRedis creates a repository that keeps sheets in Redis with a TTL
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}
	return &redisRepository{client: cfg.Client, clock: cfg.Clock, ttl: ttl}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Save(ctx context.Context, input *SaveInput) (*SaveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateKeyName(input.Filename); err != nil {
		return nil, err
	}

	now := r.clock.Now()
	data, err := json.Marshal(sheetRecord{Content: string(input.Content), SavedAt: now})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal sheet")
	}

	key := sheetKeyPrefix + input.Filename
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		slog.ErrorContext(ctx, "failed to store sheet", "key", key, "error", err)
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to store sheet in Redis")
	}

	return &SaveOutput{Sheet: &Sheet{
		Filename: input.Filename,
		Content:  input.Content,
		SavedAt:  now,
	}}, nil
}

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateKeyName(input.Filename); err != nil {
		return nil, err
	}

	key := sheetKeyPrefix + input.Filename
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("File not found: %s", input.Filename)
		}
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to read sheet from Redis")
	}

	var record sheetRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal sheet %s", input.Filename)
	}

	return &GetOutput{Sheet: &Sheet{
		Filename: input.Filename,
		Content:  []byte(record.Content),
		SavedAt:  record.SavedAt,
	}}, nil
}

// validateKeyName rejects empty names and anything path-like. Keys are flat.
func validateKeyName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errors.InvalidArgument("Invalid filename")
	}
	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return errors.PermissionDeniedf("Invalid file path: %s", name).
			WithMeta("filename", name)
	}
	return nil
}
