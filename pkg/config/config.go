package config

import (
	"errors"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Store   StoreConfig
	Records RecordsConfig
	Export  ExportConfig
	Metrics MetricsConfig
	CORS    CORSConfig
	Log     LogConfig
}

// StoreConfig locates the durable record collection.
type StoreConfig struct {
	DataFile string
}

// RecordsConfig tunes submission validation and statistics.
type RecordsConfig struct {
	EmailSuffix     string
	RecentLimit     int
	StrictSGPARange bool
}

// ExportConfig gates the tabular export endpoint.
type ExportConfig struct {
	Enabled bool
}

// MetricsConfig gates Prometheus instrumentation.
type MetricsConfig struct {
	Enabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Store = StoreConfig{
		DataFile: v.GetString("DATA_FILE"),
	}

	cfg.Records = RecordsConfig{
		EmailSuffix:     v.GetString("RECORDS_EMAIL_SUFFIX"),
		RecentLimit:     v.GetInt("RECORDS_RECENT_LIMIT"),
		StrictSGPARange: v.GetBool("RECORDS_STRICT_SGPA_RANGE"),
	}

	cfg.Export = ExportConfig{Enabled: v.GetBool("ENABLE_EXPORT")}
	cfg.Metrics = MetricsConfig{Enabled: v.GetBool("ENABLE_METRICS")}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("DATA_FILE", "./data/records.json")

	v.SetDefault("RECORDS_EMAIL_SUFFIX", "@kiit.ac.in")
	v.SetDefault("RECORDS_RECENT_LIMIT", 5)
	v.SetDefault("RECORDS_STRICT_SGPA_RANGE", true)

	v.SetDefault("ENABLE_EXPORT", true)
	v.SetDefault("ENABLE_METRICS", true)

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
