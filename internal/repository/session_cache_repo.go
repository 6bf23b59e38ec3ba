package repository

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"judgegpt/internal/models"
)

const (
	sessionCacheKeyPrefix = "user:session:"
	sessionCacheTTL       = 1 * time.Hour
)

// SessionCacheRepository caches the article set served to a user in Redis so
// repeated fetches return a stable session while the user works through it.
type SessionCacheRepository struct {
	client *redis.Client
	ctx    context.Context
}

// NewSessionCacheRepository creates a new session cache repository.
func NewSessionCacheRepository(client *redis.Client) *SessionCacheRepository {
	return &SessionCacheRepository{
		client: client,
		ctx:    context.Background(),
	}
}

// Get returns the cached article set for the user, or (nil, nil) if not set.
func (r *SessionCacheRepository) Get(userUID string) ([]models.Article, error) {
	key := sessionCacheKeyPrefix + userUID
	data, err := r.client.Get(r.ctx, key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var articles []models.Article
	if err := json.Unmarshal([]byte(data), &articles); err != nil {
		return nil, err
	}
	return articles, nil
}

// Set stores the article set for the user with a 1h TTL.
func (r *SessionCacheRepository) Set(userUID string, articles []models.Article) error {
	key := sessionCacheKeyPrefix + userUID
	data, err := json.Marshal(articles)
	if err != nil {
		return err
	}
	return r.client.Set(r.ctx, key, data, sessionCacheTTL).Err()
}

// Invalidate drops the cached session so the next fetch hits the database.
func (r *SessionCacheRepository) Invalidate(userUID string) error {
	return r.client.Del(r.ctx, sessionCacheKeyPrefix+userUID).Err()
}
