package collect_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"jobcorpus-engine/internal/collect"
	"jobcorpus-engine/internal/config"
)

func TestRunOnceNoSourcesEnabled(t *testing.T) {
	var cfg config.Config
	cfg.Collect.RequestsPerSec = 1
	cfg.Collect.Burst = 1
	cfg.Collect.TimeoutSeconds = 1

	records, failed := collect.RunOnce(context.Background(), cfg, "")
	require.Empty(t, records)
	require.Empty(t, failed)
}
