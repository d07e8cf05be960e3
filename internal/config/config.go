package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	RateLimit RateLimitConfig
	Analytics AnalyticsConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
	MigrationsPath  string
	SeedDatabase    bool
	SeedsPath       string
}

type RateLimitConfig struct {
	RequestsPerSecond int
	Burst             int
}

// AnalyticsConfig carries every tunable threshold of the analytics engine
type AnalyticsConfig struct {
	SmoothingAlpha        float64
	OutlierSigma          float64
	ConfidenceZ           float64
	SimpleWindow          int
	VolatilityLow         float64
	VolatilityHigh        float64
	SelectionMargin       float64
	TrendR2Threshold      float64
	TrendMinSlopeRatio    float64
	SeasonalityThreshold  float64
	SeasonalityMinYears   int
	AnomalyLowSigma       float64
	AnomalyMediumSigma    float64
	AnomalyHighSigma      float64
	AnomalyMinSamples     int
	AnomalyMinRelStdDev   float64
	RecurringTolerance    float64
	RecurringMaxGapCV     float64
	RecurringMonthlyMin   float64
	RecurringMonthlyMax   float64
	BudgetAlertThreshold  float64
	CacheMaxEntries       int
	DefaultForecastPeriod int
	MaxForecastHorizon    int
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first when present; real environment variables win.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}

	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "finance_user"),
			Password:        getEnv("DB_PASSWORD", "finance_password"),
			Name:            getEnv("DB_NAME", "finance_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", false),
			MigrationsPath:  getEnv("MIGRATIONS_PATH", "db/migrations"),
			SeedDatabase:    getBoolEnv("SEED_DATABASE", false),
			SeedsPath:       getEnv("SEEDS_PATH", "db/seeds"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			Burst:             getIntEnv("RATE_LIMIT_BURST", 40),
		},
		Analytics: AnalyticsConfig{
			SmoothingAlpha:        getFloatEnv("FORECAST_SMOOTHING_ALPHA", 0.3),
			OutlierSigma:          getFloatEnv("FORECAST_OUTLIER_SIGMA", 2.5),
			ConfidenceZ:           getFloatEnv("FORECAST_CONFIDENCE_Z", 1.96),
			SimpleWindow:          getIntEnv("FORECAST_SIMPLE_WINDOW", 0),
			VolatilityLow:         getFloatEnv("FORECAST_VOLATILITY_LOW", 0.15),
			VolatilityHigh:        getFloatEnv("FORECAST_VOLATILITY_HIGH", 0.40),
			SelectionMargin:       getFloatEnv("FORECAST_SELECTION_MARGIN", 0.05),
			TrendR2Threshold:      getFloatEnv("FORECAST_TREND_R2", 0.5),
			TrendMinSlopeRatio:    getFloatEnv("FORECAST_TREND_MIN_SLOPE", 0.02),
			SeasonalityThreshold:  getFloatEnv("SEASONALITY_THRESHOLD", 0.10),
			SeasonalityMinYears:   getIntEnv("SEASONALITY_MIN_YEARS", 2),
			AnomalyLowSigma:       getFloatEnv("ANOMALY_LOW_SIGMA", 2.0),
			AnomalyMediumSigma:    getFloatEnv("ANOMALY_MEDIUM_SIGMA", 2.5),
			AnomalyHighSigma:      getFloatEnv("ANOMALY_HIGH_SIGMA", 3.0),
			AnomalyMinSamples:     getIntEnv("ANOMALY_MIN_SAMPLES", 5),
			AnomalyMinRelStdDev:   getFloatEnv("ANOMALY_MIN_REL_STDDEV", 0.05),
			RecurringTolerance:    getFloatEnv("RECURRING_AMOUNT_TOLERANCE", 0.05),
			RecurringMaxGapCV:     getFloatEnv("RECURRING_MAX_GAP_CV", 0.35),
			RecurringMonthlyMin:   getFloatEnv("RECURRING_MONTHLY_MIN_DAYS", 27),
			RecurringMonthlyMax:   getFloatEnv("RECURRING_MONTHLY_MAX_DAYS", 33),
			BudgetAlertThreshold:  getFloatEnv("BUDGET_ALERT_THRESHOLD", 0.8),
			CacheMaxEntries:       getIntEnv("ANALYTICS_CACHE_MAX_ENTRIES", 256),
			DefaultForecastPeriod: getIntEnv("ANALYTICS_DEFAULT_HORIZON", 3),
			MaxForecastHorizon:    getIntEnv("ANALYTICS_MAX_HORIZON", 120),
		},
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	return config
}

func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins retrieves CORS allowed origins from environment or returns default
func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")

	if corsOrigins == "" {
		if c.IsProduction() {
			slog.Warn("CORS_ALLOW_ORIGINS not set in production, defaulting to all origins")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}

	slog.Info("CORS allowed origins configured", "origins", origins)
	return origins
}
