package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "db/migrations", cfg.Database.MigrationsPath)
	assert.False(t, cfg.Database.AutoMigrate)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)

	assert.InDelta(t, 0.3, cfg.Analytics.SmoothingAlpha, 1e-9)
	assert.InDelta(t, 2.5, cfg.Analytics.OutlierSigma, 1e-9)
	assert.InDelta(t, 0.10, cfg.Analytics.SeasonalityThreshold, 1e-9)
	assert.Equal(t, 5, cfg.Analytics.AnomalyMinSamples)
	assert.InDelta(t, 0.8, cfg.Analytics.BudgetAlertThreshold, 1e-9)
	assert.Equal(t, 120, cfg.Analytics.MaxForecastHorizon)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("AUTO_MIGRATE", "true")
	t.Setenv("FORECAST_SMOOTHING_ALPHA", "0.5")
	t.Setenv("ANOMALY_MIN_SAMPLES", "8")
	t.Setenv("ANALYTICS_MAX_HORIZON", "36")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.True(t, cfg.Database.AutoMigrate)
	assert.InDelta(t, 0.5, cfg.Analytics.SmoothingAlpha, 1e-9)
	assert.Equal(t, 8, cfg.Analytics.AnomalyMinSamples)
	assert.Equal(t, 36, cfg.Analytics.MaxForecastHorizon)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowOrigins)
}

func TestLoad_InvalidNumbersFallBackToDefaults(t *testing.T) {
	t.Setenv("FORECAST_CONFIDENCE_Z", "wide")
	t.Setenv("RATE_LIMIT_PER_SECOND", "many")

	cfg := Load()

	assert.InDelta(t, 1.96, cfg.Analytics.ConfidenceZ, 1e-9)
	assert.Equal(t, 20, cfg.RateLimit.RequestsPerSecond)
}

func TestLoad_ReadsDotEnvFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DB_NAME=from_dotenv\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		_ = os.Chdir(wd)
		_ = os.Unsetenv("DB_NAME")
	})

	cfg := Load()

	assert.Equal(t, "from_dotenv", cfg.Database.Name)
}

func TestDatabaseConfig_DSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     "5432",
		User:     "u",
		Password: "p",
		Name:     "finance",
		SSLMode:  "disable",
	}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=finance sslmode=disable", cfg.DSN())
}

func TestEnvironmentPredicates(t *testing.T) {
	cfg := &Config{Server: ServerConfig{Environment: "production"}}
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsTesting())
}
