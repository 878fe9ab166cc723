//go:build unit

package config_test

import (
	"testing"

	"fulfillment-core/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "8080")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "app_db")
	t.Setenv("JWT_SECRET", "jwt-secret")
	t.Setenv("ADMIN_EMAIL", "ops@example.com")
	t.Setenv("ADMIN_PASSWORD_HASH", "$2a$10$abcdefghijklmnopqrstuv")
	t.Setenv("GATEWAY_ACCESS_TOKEN", "token")
	t.Setenv("PROVIDER_BASE_URL", "https://provider.example.com")
	t.Setenv("PROVIDER_API_KEY", "key")
}

func TestLoadConfigDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Queue.MaxAttempts)
	assert.Equal(t, 3, cfg.Reconcile.AttemptCeiling)
	assert.Equal(t, 5, cfg.Reconcile.MaxTargets)
}

// A lease shorter than the job timeout lets a second worker reclaim a job
// that is still running, which executes it twice.
func TestDefaultLeaseOutlivesJobTimeout(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.GreaterOrEqual(t, cfg.Queue.Lease, cfg.Queue.JobTimeout)
}

func TestTestConfigLeaseOutlivesJobTimeout(t *testing.T) {
	cfg := config.NewTestConfig()
	assert.GreaterOrEqual(t, cfg.Queue.Lease, cfg.Queue.JobTimeout)
}
