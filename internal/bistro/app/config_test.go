package app_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/bistro/internal/bistro/app"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, k := range []string{
			"ACCESS_TOKEN_SECRET", "ENV", "PORT", "DATABASE_FILE", "STRIPE_SECRET_KEY",
			"CORS_ORIGINS", "LOG_LEVEL", "LOG_FORMAT", "SHUTDOWN_GRACE_PERIOD",
		} {
			t.Setenv(k, "")
		}

		cfg := app.LoadConfig()
		require.Equal(t, "dev", cfg.Env)
		require.Equal(t, 5000, cfg.Port)
		require.Equal(t, "bistro.db", cfg.DatabaseFile)
		require.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
		require.Equal(t, "info", cfg.LogLevel)
		require.Equal(t, "json", cfg.LogFormat)
		require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
		require.ErrorIs(t, cfg.Validate(), app.ErrMissingSecret)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("ACCESS_TOKEN_SECRET", "a-production-secret-of-at-least-32-bytes")
		t.Setenv("ENV", "prod")
		t.Setenv("PORT", "8081")
		t.Setenv("DATABASE_FILE", "/data/bistro.db")
		t.Setenv("STRIPE_SECRET_KEY", "sk_test_123")
		t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example,,")
		t.Setenv("SHUTDOWN_GRACE_PERIOD", "3")

		cfg := app.LoadConfig()
		require.NoError(t, cfg.Validate())
		require.Equal(t, "prod", cfg.Env)
		require.Equal(t, 8081, cfg.Port)
		require.Equal(t, "sk_test_123", cfg.StripeSecretKey)
		require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
		require.Equal(t, 3*time.Minute, cfg.ShutdownGracePeriod)
		require.Contains(t, cfg.DSN(), "file:/data/bistro.db?")
	})

	t.Run("unparseable values fall back", func(t *testing.T) {
		t.Setenv("PORT", "http")

		cfg := app.LoadConfig()
		require.Equal(t, 5000, cfg.Port)
	})

	t.Run("blank secret is rejected", func(t *testing.T) {
		require.ErrorIs(t, app.Config{AccessTokenSecret: "   "}.Validate(), app.ErrMissingSecret)
	})

	t.Run("short secret is rejected", func(t *testing.T) {
		require.ErrorIs(t, app.Config{AccessTokenSecret: "s3cret"}.Validate(), app.ErrWeakSecret)
	})

	t.Run("memory dsn", func(t *testing.T) {
		require.Equal(t, ":memory:", app.Config{DatabaseFile: ":memory:"}.DSN())
	})
}
