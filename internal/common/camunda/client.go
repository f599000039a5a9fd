// internal/common/camunda/client.go
package camunda

import (
	"context"
	"fmt"
	"strings"
	"time"

	"business-recommender/internal/common/config"
	"business-recommender/internal/common/logger"

	"github.com/camunda/zeebe/clients/go/v8/pkg/zbc"
)

// Client wraps the Zeebe gRPC client.
type Client struct {
	client         zbc.Client
	requestTimeout time.Duration
}

// RetryConfig controls how long NewClient keeps trying to reach the broker.
type RetryConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
	MaxDelay   time.Duration
}

var DefaultRetryConfig = RetryConfig{
	MaxRetries: 10,
	BaseDelay:  2 * time.Second,
	MaxDelay:   30 * time.Second,
}

// NewClient connects to the broker and checks the topology, retrying
// transient failures with exponential backoff.
func NewClient(ctx context.Context, cfg config.CamundaConfig, retry RetryConfig, log logger.Logger) (*Client, error) {
	var zc zbc.Client
	err := RetryWithBackoff(ctx, retry, log, "zeebe connection", func(ctx context.Context) error {
		c, err := zbc.NewClient(&zbc.ClientConfig{
			GatewayAddress:         cfg.BrokerAddress,
			UsePlaintextConnection: true,
		})
		if err != nil {
			return err
		}

		pingCtx, cancel := context.WithTimeout(ctx, config.GetDuration(cfg.RequestTimeout))
		defer cancel()
		if _, err := c.NewTopologyCommand().Send(pingCtx); err != nil {
			c.Close()
			return fmt.Errorf("failed to connect to Zeebe broker at %s: %w", cfg.BrokerAddress, err)
		}
		zc = c
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Client{client: zc, requestTimeout: config.GetDuration(cfg.RequestTimeout)}, nil
}

// Zeebe returns the raw client for opening job workers.
func (c *Client) Zeebe() zbc.Client {
	return c.client
}

func (c *Client) Close() error {
	return c.client.Close()
}

// Ping asks the broker for its topology.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	if _, err := c.client.NewTopologyCommand().Send(ctx); err != nil {
		return fmt.Errorf("zeebe health check failed: %w", err)
	}
	return nil
}

// RetryWithBackoff runs op until it succeeds, returns a non-transient error,
// or the attempts run out.
func RetryWithBackoff(ctx context.Context, retry RetryConfig, log logger.Logger, name string, op func(context.Context) error) error {
	delay := retry.BaseDelay
	var err error

	for attempt := 1; attempt <= retry.MaxRetries; attempt++ {
		if err = op(ctx); err == nil {
			return nil
		}
		if !isRetryable(err) || attempt == retry.MaxRetries {
			break
		}

		log.Warn(name+" failed, retrying", map[string]interface{}{
			"error":       err,
			"attempt":     attempt,
			"maxRetries":  retry.MaxRetries,
			"nextRetryIn": delay.String(),
		})

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return fmt.Errorf("%s cancelled after %d attempts: %w", name, attempt, ctx.Err())
		}
		delay *= 2
		if delay > retry.MaxDelay {
			delay = retry.MaxDelay
		}
	}

	return fmt.Errorf("%s failed: %w", name, err)
}

func isRetryable(err error) bool {
	msg := strings.ToLower(err.Error())
	for _, phrase := range []string{
		"connection refused",
		"connection reset",
		"timeout",
		"deadline exceeded",
		"unavailable",
		"unreachable",
		"broken pipe",
		"no such host",
	} {
		if strings.Contains(msg, phrase) {
			return true
		}
	}
	return false
}
