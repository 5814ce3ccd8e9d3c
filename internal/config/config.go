package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config groups the application settings. Values come from environment
// variables first, then from an optional config.env / .env file.
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	RateLimit RateLimitConfig
	Redis     RedisConfig
	CORS      CORSConfig
	KPI       KPIConfig
}

type AppConfig struct {
	Env      string // development, production
	Name     string
	LogLevel string
}

type HTTPConfig struct {
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// Addr returns the listen address (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type RateLimitConfig struct {
	RPS        float64
	Burst      int
	BanStrikes int
	BanTTL     time.Duration
}

// RedisConfig is optional; an empty Addr keeps the ban store in memory.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

func (c RedisConfig) Enabled() bool { return c.Addr != "" }

// CORSConfig lists the browser origins allowed to call the API; "*" allows any.
type CORSConfig struct {
	AllowedOrigins []string
}

type KPIConfig struct {
	Seed int64 // 0 seeds from the clock
}

// Load reads the configuration. Missing config files are not an error.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Env:      v.GetString("APP_ENV"),
			Name:     v.GetString("APP_NAME"),
			LogLevel: v.GetString("LOG_LEVEL"),
		},
		HTTP: HTTPConfig{
			Host:         v.GetString("HTTP_HOST"),
			Port:         v.GetInt("HTTP_PORT"),
			ReadTimeout:  v.GetDuration("HTTP_READ_TIMEOUT"),
			WriteTimeout: v.GetDuration("HTTP_WRITE_TIMEOUT"),
		},
		RateLimit: RateLimitConfig{
			RPS:        v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:      v.GetInt("RATE_LIMIT_BURST"),
			BanStrikes: v.GetInt("BAN_STRIKES"),
			BanTTL:     v.GetDuration("BAN_TTL"),
		},
		Redis: RedisConfig{
			Addr:     v.GetString("REDIS_ADDR"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		},
		KPI: KPIConfig{
			Seed: v.GetInt64("KPI_SEED"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "supplysight")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 4000)
	v.SetDefault("HTTP_READ_TIMEOUT", "10s")
	v.SetDefault("HTTP_WRITE_TIMEOUT", "10s")
	v.SetDefault("RATE_LIMIT_RPS", 10)
	v.SetDefault("RATE_LIMIT_BURST", 20)
	v.SetDefault("BAN_STRIKES", 20)
	v.SetDefault("BAN_TTL", "15m")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("KPI_SEED", 0)
}

// splitList parses a comma separated env value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func (c *Config) validate() error {
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid HTTP_PORT %d", c.HTTP.Port)
	}
	if c.RateLimit.RPS <= 0 {
		return fmt.Errorf("RATE_LIMIT_RPS must be positive")
	}
	if c.RateLimit.Burst <= 0 {
		return fmt.Errorf("RATE_LIMIT_BURST must be positive")
	}
	return nil
}
