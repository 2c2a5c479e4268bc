package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Port string `mapstructure:"PORT"`

	MySQLURL   string `mapstructure:"MYSQL_URL"`
	DBUser     string `mapstructure:"DB_USER"`
	DBPass     string `mapstructure:"DB_PASS"`
	DBHost     string `mapstructure:"DB_HOST"`
	DBPort     string `mapstructure:"DB_PORT"`
	DBName     string `mapstructure:"DB_NAME"`
	DBPoolSize int    `mapstructure:"DB_POOL_SIZE"`
	DBLogLevel string `mapstructure:"DB_LOG_LEVEL"`

	JWTSecret string        `mapstructure:"JWT_SECRET"`
	JWTTTL    time.Duration `mapstructure:"JWT_TTL"`

	UploadDir         string        `mapstructure:"UPLOAD_DIR"`
	CorsOrigins       string        `mapstructure:"CORS_ORIGINS"`
	SweepInterval     time.Duration `mapstructure:"SWEEP_INTERVAL"`
	SeedAdminPassword string        `mapstructure:"SEED_ADMIN_PASSWORD"`

	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`
	LogOutput string `mapstructure:"LOG_OUTPUT"`
	LogFile   string `mapstructure:"LOG_FILE"`
}

// LoggerConfig is the subset of Config consumed by logger.New.
type LoggerConfig struct {
	Level      string
	Format     string
	Output     string
	FilePath   string
	MaxSize    int
	MaxBackups int
	MaxAge     int
	Compress   bool
	Color      bool
}

// Load reads an optional .env file, then environment variables, on top of defaults.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_USER", "root")
	v.SetDefault("DB_PASS", "")
	v.SetDefault("DB_HOST", "127.0.0.1")
	v.SetDefault("DB_PORT", "3306")
	v.SetDefault("DB_NAME", "hotel_db")
	v.SetDefault("DB_POOL_SIZE", 10)
	v.SetDefault("DB_LOG_LEVEL", "warn")
	v.SetDefault("JWT_TTL", time.Hour)
	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("SWEEP_INTERVAL", time.Hour)
	v.SetDefault("SEED_ADMIN_PASSWORD", "admin123")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("LOG_OUTPUT", "stdout")
	v.SetDefault("LOG_FILE", "logs/hotel.log")

	for _, key := range []string{"MYSQL_URL", "JWT_SECRET", "CORS_ORIGINS"} {
		_ = v.BindEnv(key)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.MySQLURL == "" {
		cfg.MySQLURL = strings.TrimSpace(v.GetString("DATABASE_URL"))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be set and at least 32 characters")
	}
	if c.DBPoolSize <= 0 {
		c.DBPoolSize = 10
	}
	if c.JWTTTL <= 0 {
		c.JWTTTL = time.Hour
	}
	if c.SweepInterval <= 0 {
		c.SweepInterval = time.Hour
	}
	return nil
}

func (c *Config) Logger() LoggerConfig {
	return LoggerConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		Output:     c.LogOutput,
		FilePath:   c.LogFile,
		MaxSize:    100,
		MaxBackups: 3,
		MaxAge:     7,
		Color:      c.LogFormat == "console",
	}
}

// AllowedOrigins splits CORS_ORIGINS; an empty value allows any origin.
func (c *Config) AllowedOrigins() []string {
	raw := strings.TrimSpace(c.CorsOrigins)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
