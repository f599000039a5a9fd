package recordlog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	apperrors "business-recommender/internal/common/errors"

	"github.com/elastic/go-elasticsearch/v8"
)

// IndexMapping is the mapping used when the log index is created.
const IndexMapping = `{
  "mappings": {
    "properties": {
      "id":          {"type": "keyword"},
      "requestId":   {"type": "keyword"},
      "algorithm":   {"type": "keyword"},
      "strategy":    {"type": "keyword"},
      "templateIds": {"type": "keyword"},
      "topScore":    {"type": "double"},
      "createdAt":   {"type": "date"},
      "profile": {
        "properties": {
          "skills":       {"type": "text", "fields": {"raw": {"type": "keyword"}}},
          "experience":   {"type": "keyword"},
          "location":     {"type": "keyword"},
          "businessType": {"type": "keyword"}
        }
      }
    }
  }
}`

type ElasticsearchSink struct {
	client *elasticsearch.Client
	index  string
}

func NewElasticsearchSink(client *elasticsearch.Client, index string) *ElasticsearchSink {
	return &ElasticsearchSink{client: client, index: index}
}

func (s *ElasticsearchSink) Name() string { return "elasticsearch" }

func (s *ElasticsearchSink) Append(ctx context.Context, rec Record) error {
	body, err := json.Marshal(rec)
	if err != nil {
		return apperrors.NewRecommendationLogFailedError(s.Name(), err)
	}

	res, err := s.client.Index(s.index, bytes.NewReader(body),
		s.client.Index.WithContext(ctx),
		s.client.Index.WithDocumentID(rec.ID),
	)
	if err != nil {
		return apperrors.NewRecommendationLogFailedError(s.Name(), err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return apperrors.NewRecommendationLogFailedError(s.Name(), fmt.Errorf("index %s: %s", s.index, res.Status()))
	}
	return nil
}
