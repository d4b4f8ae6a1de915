package config

import (
	"context"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/errors"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/logger"
)

// Load reads the configuration from file and environment. Environment
// variables use the CRE prefix with underscores, e.g. CRE_SERVER_PORT.
func Load(log logger.Logger) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("/etc/cre-assistant/")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, errors.ErrInternal.WithMessage("failed to read config file").WithError(err)
		}
		log.Warn(context.Background(), "no config file found, using defaults and environment")
	}

	v.SetEnvPrefix("CRE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.ErrInternal.WithMessage("failed to unmarshal config").WithError(err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.ErrInvalidRequest.WithMessage("invalid configuration").WithError(err)
	}

	// Hot reload picks up tuning changes without a restart. Structural
	// settings (ports, database) still require one. Consumers subscribe
	// through Config.OnReload.
	v.OnConfigChange(func(e fsnotify.Event) {
		log.Info(context.Background(), "config file changed, reloading",
			logger.String("file", e.Name))
		var updated Config
		if err := v.Unmarshal(&updated); err != nil {
			log.Error(context.Background(), "config reload failed", err)
			return
		}
		if err := updated.Validate(); err != nil {
			log.Error(context.Background(), "reloaded config is invalid, keeping previous", err)
			return
		}
		cfg.applyTunables(&updated)
	})
	v.WatchConfig()

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 15*time.Second)
	v.SetDefault("server.write_timeout", 30*time.Second)
	v.SetDefault("server.shutdown_timeout", 10*time.Second)
	v.SetDefault("server.mode", "release")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "cre")
	v.SetDefault("database.name", "cre_assistant")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.max_open_conns", 25)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.conn_max_lifetime", 30*time.Minute)

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.pool_size", 10)

	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.topic", "work-order-events")

	v.SetDefault("vault.enabled", false)
	v.SetDefault("vault.mount_path", "secret")
	v.SetDefault("vault.secret_path", "cre-assistant/llm")

	v.SetDefault("llm.model", "gemini-2.0-flash")
	v.SetDefault("llm.api_key_name", "api_key")
	v.SetDefault("llm.timeout", 30*time.Second)

	v.SetDefault("auth.enabled", true)
	v.SetDefault("auth.issuer", "cre-assistant")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetDefault("tracing.enabled", false)
	v.SetDefault("tracing.service_name", "cre-assistant")
	v.SetDefault("tracing.environment", "development")
	v.SetDefault("tracing.sampling_rate", 0.1)

	v.SetDefault("cache.dashboard_ttl", 60*time.Second)

	v.SetDefault("maintenance.approval_cost_threshold", 1000.0)
	v.SetDefault("maintenance.default_time_zone", "UTC")
	v.SetDefault("maintenance.sweep_interval", 5*time.Minute)

	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_minute", 120)
}
