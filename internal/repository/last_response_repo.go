package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	lastResponseKeyPrefix = "user:last_response:"
	lastResponseTTL       = 5 * time.Second
)

// LastResponseRepository persists the last answered article per user in
// Redis (duplicate submit of the same article = not stored).
type LastResponseRepository struct {
	client *redis.Client
	ctx    context.Context
}

// NewLastResponseRepository creates a new last-response repository.
func NewLastResponseRepository(client *redis.Client) *LastResponseRepository {
	return &LastResponseRepository{
		client: client,
		ctx:    context.Background(),
	}
}

// GetLastAnsweredArticleUID returns the article the user answered last, or
// ("", false, nil) if not set.
func (r *LastResponseRepository) GetLastAnsweredArticleUID(userUID string) (articleUID string, found bool, err error) {
	key := lastResponseKeyPrefix + userUID
	uid, err := r.client.Get(r.ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return uid, true, nil
}

// SetLastAnsweredArticleUID stores the last answered article for the user
// (single key with TTL).
func (r *LastResponseRepository) SetLastAnsweredArticleUID(userUID string, articleUID string) error {
	key := lastResponseKeyPrefix + userUID
	return r.client.Set(r.ctx, key, articleUID, lastResponseTTL).Err()
}
