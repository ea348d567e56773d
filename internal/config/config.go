package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Log       LogConfig       `mapstructure:"log"`
	Auth      AuthConfig      `mapstructure:"auth"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Static    StaticConfig    `mapstructure:"static"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
}

type ServerConfig struct {
	Addr            string        `mapstructure:"addr"`
	TLSCert         string        `mapstructure:"tls_cert"`
	TLSKey          string        `mapstructure:"tls_key"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type AuthConfig struct {
	TokenKey             string        `mapstructure:"token_key"`
	OperatorLogin        string        `mapstructure:"operator_login"`
	OperatorPasswordHash string        `mapstructure:"operator_password_hash"`
	TokenTTL             time.Duration `mapstructure:"token_ttl"`
}

type RateLimitConfig struct {
	RPS   float64 `mapstructure:"rps"`
	Burst int     `mapstructure:"burst"`
}

type StaticConfig struct {
	Dir string `mapstructure:"dir"`
}

type TelegramConfig struct {
	Token        string        `mapstructure:"token"`
	PollInterval time.Duration `mapstructure:"poll_interval"`
}

var ErrMissingTokenKey = errors.New("auth.token_key (AUTH_TOKEN_KEY) is not set")

var defaults = map[string]any{
	"server.addr":                 ":8080",
	"server.tls_cert":             "",
	"server.tls_key":              "",
	"server.shutdown_timeout":     5 * time.Second,
	"log.level":                   "info",
	"log.format":                  "console",
	"auth.token_key":              "",
	"auth.operator_login":         "admin",
	"auth.operator_password_hash": "",
	"auth.token_ttl":              30 * 24 * time.Hour,
	"rate_limit.rps":              5.0,
	"rate_limit.burst":            10,
	"static.dir":                  "",
	"telegram.token":              "",
	"telegram.poll_interval":      time.Second,
}

// Load reads .env, then config.yaml (from . or ./configs), then environment variables.
// Env keys use underscores: server.addr -> SERVER_ADDR.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// Validate checks what the HTTP server needs. The CLI and bot only need parts of it.
func (c *Config) Validate() error {
	if c.Auth.TokenKey == "" {
		return ErrMissingTokenKey
	}
	if (c.Server.TLSCert == "") != (c.Server.TLSKey == "") {
		return errors.New("server.tls_cert and server.tls_key must be set together")
	}
	if c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0 {
		return errors.New("rate_limit.rps and rate_limit.burst must be positive")
	}
	return nil
}
