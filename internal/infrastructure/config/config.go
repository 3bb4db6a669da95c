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

// EnvPrefix is the prefix for all environment overrides (STAYFLOW_SERVER_PORT, ...)
const EnvPrefix = "STAYFLOW"

// Config holds the whole service configuration
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Inference InferenceConfig `mapstructure:"inference"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Form      FormConfig      `mapstructure:"form"`
	Demo      DemoConfig      `mapstructure:"demo"`
	Log       LogConfig       `mapstructure:"log"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

// InferenceConfig holds the external inference service settings.
// A zero Timeout means requests are never cut short.
type InferenceConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// RedisConfig holds Redis settings
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// FormConfig holds prediction form settings
type FormConfig struct {
	TTL           time.Duration `mapstructure:"ttl"`
	StrictNumeric bool          `mapstructure:"strict_numeric"`
}

// DemoConfig holds landing-page demo widget settings
type DemoConfig struct {
	Delay time.Duration `mapstructure:"delay"`
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load reads configuration from defaults, an optional .env file and the environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The browser build used API_BASE_URL; keep honouring it.
	if err := v.BindEnv("inference.base_url", EnvPrefix+"_INFERENCE_BASE_URL", "API_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind inference base url: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Inference.BaseURL = strings.TrimRight(cfg.Inference.BaseURL, "/")
	if cfg.Inference.BaseURL == "" {
		return nil, errors.New("inference.base_url must not be empty")
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.mode", "debug")

	v.SetDefault("inference.base_url", "http://localhost:8000")
	v.SetDefault("inference.timeout", time.Duration(0))

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("form.ttl", 30*time.Minute)
	v.SetDefault("form.strict_numeric", true)

	v.SetDefault("demo.delay", 1400*time.Millisecond)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}
