package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mindmeal/mindmeal-cli/internal/app"
	"github.com/spf13/viper"
)

const EnvPrefix = "MINDMEAL"

type Config struct {
	Store  StoreConfig  `mapstructure:"store"`
	Log    LogConfig    `mapstructure:"log"`
	Server ServerConfig `mapstructure:"server"`
	Export ExportConfig `mapstructure:"export"`
	Water  WaterConfig  `mapstructure:"water"`
}

type StoreConfig struct {
	Driver        string `mapstructure:"driver"`
	SQLitePath    string `mapstructure:"sqlite_path"`
	RedisAddr     string `mapstructure:"redis_addr"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db"`
	RedisPrefix   string `mapstructure:"redis_prefix"`
	PostgresDSN   string `mapstructure:"postgres_dsn"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
}

type ServerConfig struct {
	Addr      string        `mapstructure:"addr"`
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

type ExportConfig struct {
	S3Region    string `mapstructure:"s3_region"`
	S3AccessKey string `mapstructure:"s3_access_key"`
	S3SecretKey string `mapstructure:"s3_secret_key"`
	S3Endpoint  string `mapstructure:"s3_endpoint"`
}

type WaterConfig struct {
	Goal int `mapstructure:"goal"`
}

// SetDefaults registers every known key so environment overrides resolve.
func SetDefaults(v *viper.Viper) {
	dbPath, err := app.DefaultDBPath()
	if err != nil {
		dbPath = "mindmeal.db"
	}
	logPath, err := app.DefaultLogPath()
	if err != nil {
		logPath = "stderr"
	}
	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.sqlite_path", dbPath)
	v.SetDefault("store.redis_addr", "localhost:6379")
	v.SetDefault("store.redis_password", "")
	v.SetDefault("store.redis_db", 0)
	v.SetDefault("store.redis_prefix", "")
	v.SetDefault("store.postgres_dsn", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.output", logPath)
	v.SetDefault("log.max_size_mb", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.jwt_secret", "")
	v.SetDefault("server.token_ttl", 2*time.Hour)
	v.SetDefault("export.s3_region", "")
	v.SetDefault("export.s3_access_key", "")
	v.SetDefault("export.s3_secret_key", "")
	v.SetDefault("export.s3_endpoint", "")
	v.SetDefault("water.goal", 8)
}

// Load resolves configuration from defaults, an optional config file, a .env
// file and MINDMEAL_* environment variables, in increasing precedence. Flags
// bound to v by the caller win over all of them.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if strings.TrimSpace(configFile) != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", configFile, err)
		}
	} else if path, err := app.DefaultConfigPath(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("read config file %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	c.Store.Driver = strings.ToLower(strings.TrimSpace(c.Store.Driver))
	switch c.Store.Driver {
	case "sqlite", "redis", "postgres", "memory":
	default:
		return fmt.Errorf("unsupported store driver %q (use sqlite, redis, postgres or memory)", c.Store.Driver)
	}
	if c.Store.Driver == "postgres" && strings.TrimSpace(c.Store.PostgresDSN) == "" {
		return fmt.Errorf("store.postgres_dsn is required for the postgres driver")
	}
	if c.Water.Goal <= 0 {
		return fmt.Errorf("water.goal must be > 0")
	}
	return nil
}

// Masked returns a flat key/value view with secrets hidden.
func (c *Config) Masked() map[string]string {
	return map[string]string{
		"store.driver":         c.Store.Driver,
		"store.sqlite_path":    c.Store.SQLitePath,
		"store.redis_addr":     c.Store.RedisAddr,
		"store.redis_password": maskSecret(c.Store.RedisPassword),
		"store.redis_db":       fmt.Sprintf("%d", c.Store.RedisDB),
		"store.redis_prefix":   c.Store.RedisPrefix,
		"store.postgres_dsn":   maskSecret(c.Store.PostgresDSN),
		"log.level":            c.Log.Level,
		"log.format":           c.Log.Format,
		"log.output":           c.Log.Output,
		"server.addr":          c.Server.Addr,
		"server.jwt_secret":    maskSecret(c.Server.JWTSecret),
		"server.token_ttl":     c.Server.TokenTTL.String(),
		"export.s3_region":     c.Export.S3Region,
		"export.s3_access_key": maskSecret(c.Export.S3AccessKey),
		"export.s3_secret_key": maskSecret(c.Export.S3SecretKey),
		"export.s3_endpoint":   c.Export.S3Endpoint,
		"water.goal":           fmt.Sprintf("%d", c.Water.Goal),
	}
}

func maskSecret(value string) string {
	if value == "" {
		return "<not set>"
	}
	if len(value) <= 8 {
		return "***"
	}
	return value[:4] + "..." + value[len(value)-4:]
}
