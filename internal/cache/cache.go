// Package cache keeps enriched recommendation responses in Redis.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	apperrors "business-recommender/internal/common/errors"
	"business-recommender/internal/common/metrics"
	"business-recommender/internal/models"

	"github.com/redis/go-redis/v9"
)

type ResponseCache struct {
	client redis.Cmdable
	prefix string
	ttl    time.Duration
}

func NewResponseCache(client redis.Cmdable, prefix string, ttl time.Duration) *ResponseCache {
	return &ResponseCache{client: client, prefix: prefix, ttl: ttl}
}

type keyMaterial struct {
	Skills          []string               `json:"s"`
	Experience      models.ExperienceLevel `json:"e"`
	Location        models.LocationType    `json:"l"`
	BusinessType    models.BusinessType    `json:"b"`
	WorkEnvironment models.WorkEnvironment `json:"w"`
	Algorithm       models.Algorithm       `json:"a"`
}

// Key derives the cache key. Skill order is kept because it decides tie
// order in the ranked output.
func (c *ResponseCache) Key(profile models.UserProfile, algorithm models.Algorithm) string {
	b, _ := json.Marshal(keyMaterial{
		Skills:          profile.NormalizedSkills(),
		Experience:      profile.Experience,
		Location:        profile.Location,
		BusinessType:    profile.BusinessType.Normalize(),
		WorkEnvironment: profile.WorkEnvironment,
		Algorithm:       algorithm,
	})
	sum := sha256.Sum256(b)
	return c.prefix + hex.EncodeToString(sum[:])
}

// Get returns the cached response. A miss is (nil, false, nil).
func (c *ResponseCache) Get(ctx context.Context, key string) (*models.RecommendationResponse, bool, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.CacheLookups.WithLabelValues("miss").Inc()
		return nil, false, nil
	}
	if err != nil {
		metrics.CacheLookups.WithLabelValues("error").Inc()
		return nil, false, apperrors.NewCacheUnavailableError(err)
	}

	var resp models.RecommendationResponse
	if err := json.Unmarshal(val, &resp); err != nil {
		metrics.CacheLookups.WithLabelValues("error").Inc()
		return nil, false, apperrors.NewCacheUnavailableError(err)
	}
	metrics.CacheLookups.WithLabelValues("hit").Inc()
	return &resp, true, nil
}

func (c *ResponseCache) Set(ctx context.Context, key string, resp *models.RecommendationResponse) error {
	data, err := json.Marshal(resp)
	if err != nil {
		return apperrors.NewCacheUnavailableError(err)
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return apperrors.NewCacheUnavailableError(err)
	}
	return nil
}
