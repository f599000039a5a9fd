package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFile_Defaults(t *testing.T) {
	path := writeConfig(t, `
app:
  name: business-recommender
workers:
  calculate-match-score:
    enabled: true
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "default", cfg.Recommendation.DefaultAlgorithm)
	assert.Equal(t, 900, cfg.Recommendation.CacheTTL)
	assert.Equal(t, "recommendation_log", cfg.Recommendation.LogTable)
	assert.Equal(t, int64(10000), cfg.Recommendation.LogStreamMaxLen)
	assert.Equal(t, "business-recommender", cfg.Observability.ServiceName)
	assert.Equal(t, "info", cfg.Logging.Level)

	worker := GetWorkerConfig(cfg, "calculate-match-score")
	assert.True(t, worker.Enabled)
	assert.Equal(t, 5, worker.MaxJobsActive)
	assert.Equal(t, 3, worker.MaxRetries)
}

func TestLoadFromFile_EnvOverrides(t *testing.T) {
	t.Setenv("RECOMMENDATION_DEFAULT_ALGORITHM", "ml")
	t.Setenv("TEST_PG_PASSWORD", "s3cret")

	path := writeConfig(t, `
recommendation:
  default_algorithm: default
  log_sinks: [postgres]
database:
  postgres:
    host: localhost
    database: recommender
    user: app
    password: ${TEST_PG_PASSWORD}
`)

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)

	assert.Equal(t, "ml", cfg.Recommendation.DefaultAlgorithm)
	assert.Equal(t, "s3cret", cfg.Database.Postgres.Password)
	assert.Equal(t, "host=localhost port=5432 user=app password=s3cret dbname=recommender sslmode=disable", cfg.Database.Postgres.GetDSN())
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:   "nothing enabled needs no backends",
			mutate: func(cfg *Config) {},
		},
		{
			name:    "camunda needs a broker",
			mutate:  func(cfg *Config) { cfg.Camunda.Enabled = true },
			wantErr: "camunda.broker_address",
		},
		{
			name:    "unknown algorithm",
			mutate:  func(cfg *Config) { cfg.Recommendation.DefaultAlgorithm = "neural" },
			wantErr: "default_algorithm",
		},
		{
			name:    "unknown sink",
			mutate:  func(cfg *Config) { cfg.Recommendation.LogSinks = []string{"kafka"} },
			wantErr: "unknown sink",
		},
		{
			name:    "postgres sink needs a host",
			mutate:  func(cfg *Config) { cfg.Recommendation.LogSinks = []string{SinkPostgres} },
			wantErr: "database.postgres.host",
		},
		{
			name:    "cache needs redis",
			mutate:  func(cfg *Config) { cfg.Recommendation.CacheEnabled = true },
			wantErr: "database.redis.address",
		},
		{
			name:    "elasticsearch sink needs addresses",
			mutate:  func(cfg *Config) { cfg.Recommendation.LogSinks = []string{SinkElasticsearch} },
			wantErr: "database.elasticsearch.addresses",
		},
		{
			name:    "email needs a sender",
			mutate:  func(cfg *Config) { cfg.Notifications.Email.Enabled = true },
			wantErr: "from_email",
		},
		{
			name: "redis sink with address is fine",
			mutate: func(cfg *Config) {
				cfg.Recommendation.LogSinks = []string{SinkRedis}
				cfg.Database.Redis.Address = "localhost:6379"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{}
			applyDefaults(cfg)
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestIsWorkerEnabled(t *testing.T) {
	cfg := &Config{Workers: map[string]WorkerConfig{"contact-mentor": {Enabled: false}}}

	assert.False(t, IsWorkerEnabled(cfg, "contact-mentor"))
	assert.True(t, IsWorkerEnabled(cfg, "build-response"))
}

func TestRecommendationConfig_HasSink(t *testing.T) {
	rec := RecommendationConfig{LogSinks: []string{SinkRedis, SinkElasticsearch}}

	assert.True(t, rec.HasSink(SinkRedis))
	assert.False(t, rec.HasSink(SinkPostgres))
}
