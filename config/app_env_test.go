package config

import (
	"testing"
	"time"

	"github.com/akeren/vannie-landing/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAutoMigrateAllowed_AllowsDevLikeEnvs(t *testing.T) {
	allowed := []string{"", "dev", "development", "local", "test", "testing", "DEV", "  Local  "}

	for _, env := range allowed {
		env := env
		t.Run(env, func(t *testing.T) {
			if err := ValidateAutoMigrateAllowed(env); err != nil {
				t.Fatalf("expected no error for env %q, got %v", env, err)
			}
		})
	}
}

func TestValidateAutoMigrateAllowed_RejectsProdAndOtherEnvs(t *testing.T) {
	rejected := []string{"prod", "production", "staging", "preprod", " Production ", "qa"}

	for _, env := range rejected {
		env := env
		t.Run(env, func(t *testing.T) {
			if err := ValidateAutoMigrateAllowed(env); err == nil {
				t.Fatalf("expected error for env %q, got nil", env)
			}
		})
	}
}

func TestNewAppConfig_Defaults(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "")
	t.Setenv("WAITLIST_COLLECT_PLATFORM", "")
	t.Setenv("WAITLIST_INFLIGHT_TTL", "")
	t.Setenv("SITE_NAME", "")

	cfg := NewAppConfig()

	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.InFlightTTL)
	assert.False(t, cfg.CollectPlatform)
	assert.Equal(t, "Vannie", cfg.SiteName)
}

func TestNewAppConfig_Overrides(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("WAITLIST_COLLECT_PLATFORM", "true")
	t.Setenv("WAITLIST_INFLIGHT_TTL", "2m")
	t.Setenv("SITE_NAME", "Vannie Beta")

	cfg := NewAppConfig()

	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 2*time.Minute, cfg.InFlightTTL)
	assert.True(t, cfg.CollectPlatform)
	assert.Equal(t, "Vannie Beta", cfg.SiteName)
}

func TestNewAppConfig_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "soon")
	t.Setenv("WAITLIST_COLLECT_PLATFORM", "maybe")
	t.Setenv("WAITLIST_INFLIGHT_TTL", "-1s")

	cfg := NewAppConfig()

	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.InFlightTTL)
	assert.False(t, cfg.CollectPlatform)
}

func TestIsDatabaseConfigured(t *testing.T) {
	t.Setenv("APP_DATABASE_URL", "")
	t.Setenv("POSTGRES_HOST", "")
	assert.False(t, IsDatabaseConfigured())

	t.Setenv("POSTGRES_HOST", "db.internal")
	assert.True(t, IsDatabaseConfigured())

	t.Setenv("POSTGRES_HOST", "")
	t.Setenv("APP_DATABASE_URL", `"postgres://u:p@localhost/waitlist"`)
	assert.True(t, IsDatabaseConfigured())
}

func TestStoreConfig(t *testing.T) {
	logger := log.NewLoggerWithJSONOutput()

	t.Run("missing anon key disables the hosted store", func(t *testing.T) {
		t.Setenv("SUPABASE_URL", "https://project.supabase.co")
		t.Setenv("SUPABASE_ANON_KEY", "")

		cfg := NewStoreConfig()
		assert.False(t, cfg.IsConfigured())
		assert.Nil(t, cfg.NewClientOrNil(logger))
	})

	t.Run("url and key build a client", func(t *testing.T) {
		t.Setenv("SUPABASE_URL", " https://project.supabase.co ")
		t.Setenv("SUPABASE_ANON_KEY", "'anon-key'")
		t.Setenv("SUPABASE_TABLE", "")
		t.Setenv("SUPABASE_TIMEOUT", "3s")

		cfg := NewStoreConfig()
		require.True(t, cfg.IsConfigured())
		assert.Equal(t, "https://project.supabase.co", cfg.URL)
		assert.Equal(t, "anon-key", cfg.AnonKey)
		assert.Equal(t, "waitlist", cfg.Table)
		assert.Equal(t, 3*time.Second, cfg.Timeout)
		assert.NotNil(t, cfg.NewClientOrNil(logger))
	})
}
