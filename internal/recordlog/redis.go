package recordlog

import (
	"context"
	"encoding/json"

	apperrors "business-recommender/internal/common/errors"

	"github.com/redis/go-redis/v9"
)

// RedisSink appends records to a capped stream.
type RedisSink struct {
	client redis.Cmdable
	stream string
	maxLen int64
}

func NewRedisSink(client redis.Cmdable, stream string, maxLen int64) *RedisSink {
	return &RedisSink{client: client, stream: stream, maxLen: maxLen}
}

func (s *RedisSink) Name() string { return "redis" }

func (s *RedisSink) Append(ctx context.Context, rec Record) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return apperrors.NewRecommendationLogFailedError(s.Name(), err)
	}

	err = s.client.XAdd(ctx, &redis.XAddArgs{
		Stream: s.stream,
		MaxLen: s.maxLen,
		Approx: true,
		Values: map[string]interface{}{
			"id":        rec.ID,
			"requestId": rec.RequestID,
			"record":    string(payload),
		},
	}).Err()
	if err != nil {
		return apperrors.NewRecommendationLogFailedError(s.Name(), err)
	}
	return nil
}
