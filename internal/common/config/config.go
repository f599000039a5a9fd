// internal/common/config/config.go
package config

import (
	"fmt"
	"time"
)

// Log sink names accepted in recommendation.log_sinks.
const (
	SinkPostgres      = "postgres"
	SinkRedis         = "redis"
	SinkElasticsearch = "elasticsearch"
)

// Config is the main application configuration struct.
type Config struct {
	App            AppConfig               `mapstructure:"app"`
	Server         ServerConfig            `mapstructure:"server"`
	Camunda        CamundaConfig           `mapstructure:"camunda"`
	Database       DatabaseConfig          `mapstructure:"database"`
	Workers        map[string]WorkerConfig `mapstructure:"workers"`
	Recommendation RecommendationConfig    `mapstructure:"recommendation"`
	Notifications  NotificationConfig      `mapstructure:"notifications"`
	Observability  ObservabilityConfig     `mapstructure:"observability"`
	Logging        LoggingConfig           `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Address         string          `mapstructure:"address"`
	ReadTimeout     int             `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int             `mapstructure:"write_timeout"`    // milliseconds
	ShutdownTimeout int             `mapstructure:"shutdown_timeout"` // milliseconds
	CORS            CORSConfig      `mapstructure:"cors"`
	RateLimit       RateLimitConfig `mapstructure:"rate_limit"`
}

type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	MaxAge         int      `mapstructure:"max_age"` // seconds
}

type RateLimitConfig struct {
	Enabled  bool `mapstructure:"enabled"`
	Requests int  `mapstructure:"requests"`
	Window   int  `mapstructure:"window"` // seconds
}

type CamundaConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	BrokerAddress  string `mapstructure:"broker_address"`
	MaxJobsActive  int    `mapstructure:"max_jobs_active"`
	Timeout        int    `mapstructure:"timeout"`         // milliseconds
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
}

type DatabaseConfig struct {
	Postgres      PostgresConfig      `mapstructure:"postgres"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	Redis         RedisConfig         `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the lib/pq connection string.
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type ElasticsearchConfig struct {
	Addresses []string `mapstructure:"addresses"`
	Username  string   `mapstructure:"username"`
	Password  string   `mapstructure:"password"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// WorkerConfig holds the settings applicable to every Zeebe worker.
type WorkerConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	MaxJobsActive int  `mapstructure:"max_jobs_active"`
	Timeout       int  `mapstructure:"timeout"` // milliseconds
	MaxRetries    int  `mapstructure:"max_retries"`
}

// RecommendationConfig drives the pipeline shell around the scoring engine.
type RecommendationConfig struct {
	DefaultAlgorithm string   `mapstructure:"default_algorithm"`
	RequestTimeout   int      `mapstructure:"request_timeout"` // milliseconds
	CacheEnabled     bool     `mapstructure:"cache_enabled"`
	CacheTTL         int      `mapstructure:"cache_ttl"` // seconds
	CachePrefix      string   `mapstructure:"cache_prefix"`
	LogSinks         []string `mapstructure:"log_sinks"`
	LogTable         string   `mapstructure:"log_table"`
	LogStream        string   `mapstructure:"log_stream"`
	LogStreamMaxLen  int64    `mapstructure:"log_stream_max_len"`
	LogIndex         string   `mapstructure:"log_index"`
}

// HasSink reports whether the named log sink is enabled.
func (r RecommendationConfig) HasSink(name string) bool {
	for _, s := range r.LogSinks {
		if s == name {
			return true
		}
	}
	return false
}

// NotificationConfig holds settings for mentor contact delivery.
type NotificationConfig struct {
	Email struct {
		Enabled   bool   `mapstructure:"enabled"`
		FromEmail string `mapstructure:"from_email"`
	} `mapstructure:"email"`
	SMS struct {
		Enabled  bool   `mapstructure:"enabled"`
		SenderID string `mapstructure:"sender_id"`
	} `mapstructure:"sms"`
	AWS struct {
		Region string `mapstructure:"region"`
	} `mapstructure:"aws"`
}

type ObservabilityConfig struct {
	ServiceName string `mapstructure:"service_name"`
	Tracing     struct {
		Enabled        bool    `mapstructure:"enabled"`
		JaegerEndpoint string  `mapstructure:"jaeger_endpoint"`
		SampleRatio    float64 `mapstructure:"sample_ratio"`
	} `mapstructure:"tracing"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// GetDuration converts milliseconds from config to time.Duration.
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}
