package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	S3      S3Config
	Log     LogConfig
	AI      AIConfig
	Extract ExtractConfig
	CORS    CORSConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// S3Config holds AWS S3 settings.
type S3Config struct {
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// AIConfig holds completion provider settings. An empty Provider disables the
// AI parser and the service falls back to heuristic keyword profiles.
type AIConfig struct {
	Provider    string `mapstructure:"provider"`
	APIKey      string `mapstructure:"api_key"`
	Model       string `mapstructure:"model"`
	Endpoint    string `mapstructure:"endpoint"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
}

// Enabled reports whether a completion provider is configured.
func (a *AIConfig) Enabled() bool {
	return a.Provider != "" && a.Provider != "none"
}

// ExtractConfig holds text extraction limits.
type ExtractConfig struct {
	MaxChars      int   `mapstructure:"max_chars"`
	MaxFileSizeMB int64 `mapstructure:"max_file_size_mb"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// Load reads configuration from environment variables with the RESUMELY_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("RESUMELY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "resumely")
	v.SetDefault("db.password", "resumely_secret")
	v.SetDefault("db.name", "resumely_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "resumely-uploads")
	v.SetDefault("s3.endpoint", "")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// AI defaults: no provider configured means heuristic-only parsing
	v.SetDefault("ai.provider", "")
	v.SetDefault("ai.api_key", "")
	v.SetDefault("ai.model", "")
	v.SetDefault("ai.endpoint", "")
	v.SetDefault("ai.timeout_secs", 120)

	// Extraction defaults
	v.SetDefault("extract.max_chars", 60000)
	v.SetDefault("extract.max_file_size_mb", 20)

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":              "RESUMELY_SERVER_PORT",
		"server.read_timeout":      "RESUMELY_SERVER_READ_TIMEOUT",
		"server.write_timeout":     "RESUMELY_SERVER_WRITE_TIMEOUT",
		"server.environment":       "RESUMELY_SERVER_ENVIRONMENT",
		"db.host":                  "RESUMELY_DB_HOST",
		"db.port":                  "RESUMELY_DB_PORT",
		"db.user":                  "RESUMELY_DB_USER",
		"db.password":              "RESUMELY_DB_PASSWORD",
		"db.name":                  "RESUMELY_DB_NAME",
		"db.sslmode":               "RESUMELY_DB_SSLMODE",
		"db.max_open":              "RESUMELY_DB_MAX_OPEN",
		"db.max_idle":              "RESUMELY_DB_MAX_IDLE",
		"s3.region":                "RESUMELY_S3_REGION",
		"s3.bucket":                "RESUMELY_S3_BUCKET",
		"s3.endpoint":              "RESUMELY_S3_ENDPOINT",
		"s3.access_key":            "RESUMELY_S3_ACCESS_KEY",
		"s3.secret_key":            "RESUMELY_S3_SECRET_KEY",
		"log.level":                "RESUMELY_LOG_LEVEL",
		"log.format":               "RESUMELY_LOG_FORMAT",
		"ai.provider":              "RESUMELY_AI_PROVIDER",
		"ai.api_key":               "RESUMELY_AI_API_KEY",
		"ai.model":                 "RESUMELY_AI_MODEL",
		"ai.endpoint":              "RESUMELY_AI_ENDPOINT",
		"ai.timeout_secs":          "RESUMELY_AI_TIMEOUT_SECS",
		"extract.max_chars":        "RESUMELY_EXTRACT_MAX_CHARS",
		"extract.max_file_size_mb": "RESUMELY_EXTRACT_MAX_FILE_SIZE_MB",
		"cors.allowed_origins":     "RESUMELY_CORS_ALLOWED_ORIGINS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if RESUMELY_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("RESUMELY_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.S3 = S3Config{
		Region:    v.GetString("s3.region"),
		Bucket:    v.GetString("s3.bucket"),
		Endpoint:  v.GetString("s3.endpoint"),
		AccessKey: v.GetString("s3.access_key"),
		SecretKey: v.GetString("s3.secret_key"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.AI = AIConfig{
		Provider:    v.GetString("ai.provider"),
		APIKey:      v.GetString("ai.api_key"),
		Model:       v.GetString("ai.model"),
		Endpoint:    v.GetString("ai.endpoint"),
		TimeoutSecs: v.GetInt("ai.timeout_secs"),
	}
	cfg.Extract = ExtractConfig{
		MaxChars:      v.GetInt("extract.max_chars"),
		MaxFileSizeMB: v.GetInt64("extract.max_file_size_mb"),
	}

	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}

	return cfg, nil
}
