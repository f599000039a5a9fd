// internal/workers/recommendation/generate-business-ideas/config.go
package generatebusinessideas

import (
	"time"

	"business-recommender/internal/common/config"
)

type Config struct {
	Timeout time.Duration
}

func LoadConfig(cfg *config.Config) *Config {
	return &Config{
		Timeout: config.GetDuration(config.GetWorkerConfig(cfg, TaskType).Timeout),
	}
}
