package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig

	// Triage pipeline
	Storage StorageConfig
	Cache   CacheConfig
	Queue   QueueConfig

	// Remote analysis backends
	LLM LLMConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int // per client, 0 disables
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type StorageConfig struct {
	Path string // sqlite file
}

type CacheConfig struct {
	Driver        string // sqlite | memory
	Expiry        time.Duration
	MemorySize    int
	PurgeSchedule string // cron spec
}

type QueueConfig struct {
	QuietPeriod time.Duration
	RetryDelay  time.Duration
	BatchSize   int
}

// LLMConfig selects the default backend and carries per-kind overrides.
type LLMConfig struct {
	Provider          string
	APIKey            string
	RequestsPerMinute int
	Providers         map[string]ProviderConfig
}

// ProviderConfig overrides the defaults for a single backend kind.
type ProviderConfig struct {
	Model   string
	BaseURL string
	Timeout time.Duration
}

const (
	CacheDriverSQLite = "sqlite"
	CacheDriverMemory = "memory"
)

var providerKinds = []string{"anthropic", "openai", "gemini"}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/task-triage/
// unless path names a file explicitly.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/task-triage/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = v.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = splitList(v.GetStringSlice("cors.allowed_origins"))

	// Pipeline
	cfg.Storage.Path = v.GetString("storage.path")
	cfg.Cache.Driver = strings.ToLower(v.GetString("cache.driver"))
	cfg.Cache.Expiry = v.GetDuration("cache.expiry")
	cfg.Cache.MemorySize = v.GetInt("cache.memory_size")
	cfg.Cache.PurgeSchedule = v.GetString("cache.purge_schedule")
	cfg.Queue.QuietPeriod = v.GetDuration("queue.quiet_period")
	cfg.Queue.RetryDelay = v.GetDuration("queue.retry_delay")
	cfg.Queue.BatchSize = v.GetInt("queue.batch_size")

	// LLM
	cfg.LLM.Provider = strings.ToLower(v.GetString("llm.provider"))
	cfg.LLM.APIKey = expandEnvVar(v, v.GetString("llm.api_key"))
	cfg.LLM.RequestsPerMinute = v.GetInt("llm.requests_per_minute")
	cfg.LLM.Providers = make(map[string]ProviderConfig, len(providerKinds))
	for _, kind := range providerKinds {
		prefix := "llm.providers." + kind
		if !v.IsSet(prefix) {
			continue
		}
		cfg.LLM.Providers[kind] = ProviderConfig{
			Model:   v.GetString(prefix + ".model"),
			BaseURL: v.GetString(prefix + ".base_url"),
			Timeout: v.GetDuration(prefix + ".timeout"),
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("http_server.rate_limit_per_min", 120)
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("cors.allowed_origins", []string{"*"})

	v.SetDefault("storage.path", "data/task-triage.db")
	v.SetDefault("cache.driver", CacheDriverSQLite)
	v.SetDefault("cache.expiry", 24*time.Hour)
	v.SetDefault("cache.memory_size", 256)
	v.SetDefault("cache.purge_schedule", "@every 1h")
	v.SetDefault("queue.quiet_period", 2*time.Second)
	v.SetDefault("queue.retry_delay", time.Second)
	v.SetDefault("queue.batch_size", 10)

	v.SetDefault("llm.requests_per_minute", 0) // unlimited
}

func (c *Config) validate() error {
	switch c.Cache.Driver {
	case CacheDriverSQLite, CacheDriverMemory:
	default:
		return fmt.Errorf("cache.driver: unsupported %q (want sqlite or memory)", c.Cache.Driver)
	}
	if c.Storage.Path == "" {
		return errors.New("storage.path is required")
	}
	if c.Queue.BatchSize <= 0 {
		return fmt.Errorf("queue.batch_size must be positive, got %d", c.Queue.BatchSize)
	}
	if c.LLM.Provider != "" && !slices.Contains(providerKinds, c.LLM.Provider) {
		return fmt.Errorf("llm.provider: unsupported %q", c.LLM.Provider)
	}
	return nil
}

// expandEnvVar expands values in the format ${VAR_NAME}.
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := os.Getenv(envVar); envValue != "" {
		return envValue
	}
	// Try viper (handles lowercase keys from the config file)
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return ""
}

// splitList accepts both YAML lists and comma-separated env values.
func splitList(raw []string) []string {
	var out []string
	for _, item := range raw {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
