// internal/workers/recommendation/validate-user-profile/config.go
package validateuserprofile

import (
	"time"

	"business-recommender/internal/common/config"
	"business-recommender/internal/models"
)

type Config struct {
	DefaultAlgorithm models.Algorithm
	Timeout          time.Duration
}

func LoadConfig(cfg *config.Config) *Config {
	alg, ok := models.ParseAlgorithm(cfg.Recommendation.DefaultAlgorithm)
	if !ok {
		alg = models.AlgorithmDefault
	}
	return &Config{
		DefaultAlgorithm: alg,
		Timeout:          config.GetDuration(config.GetWorkerConfig(cfg, TaskType).Timeout),
	}
}
