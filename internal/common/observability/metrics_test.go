package observability

import (
	"context"
	"strings"
	"testing"
	"time"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObservability_RecordsIntoRegistry(t *testing.T) {
	registry := promclient.NewRegistry()
	obs, err := New(Options{ServiceName: "business-recommender-test", Registerer: registry})
	require.NoError(t, err)
	defer obs.Shutdown(context.Background())

	ctx := context.Background()
	obs.RecordRecommendation(ctx, "ml", "catalog", 3)
	obs.RecordStageDuration(ctx, "score", 2*time.Millisecond)

	families, err := registry.Gather()
	require.NoError(t, err)

	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	joined := strings.Join(names, ",")
	assert.Contains(t, joined, "recommendations_generated")
	assert.Contains(t, joined, "recommendations_stage_duration")
}

func TestObservability_SpanWithoutTracing(t *testing.T) {
	obs, err := New(Options{ServiceName: "business-recommender-test", Registerer: promclient.NewRegistry()})
	require.NoError(t, err)

	ctx, span := obs.StartSpan(context.Background(), "engine.evaluate")
	defer span.End()

	assert.NotNil(t, ctx)
	assert.False(t, span.SpanContext().IsSampled())
	assert.NoError(t, obs.Shutdown(context.Background()))
}
