// internal/workers/recommendation/build-response/config.go
package buildresponse

import (
	"time"

	"business-recommender/internal/common/config"
	"business-recommender/internal/models"
)

type Config struct {
	DefaultAlgorithm models.Algorithm
	ValidateOutput   bool
	Timeout          time.Duration
}

func LoadConfig(cfg *config.Config) *Config {
	alg, ok := models.ParseAlgorithm(cfg.Recommendation.DefaultAlgorithm)
	if !ok {
		alg = models.AlgorithmDefault
	}
	return &Config{
		DefaultAlgorithm: alg,
		ValidateOutput:   true,
		Timeout:          config.GetDuration(config.GetWorkerConfig(cfg, TaskType).Timeout),
	}
}
