package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	sharedConfig "github.com/lorenzobigazzi0/cassa/internal/shared/config"
)

type Config struct {
	Server    sharedConfig.ServerConfig    `mapstructure:"server"`
	Database  sharedConfig.DatabaseConfig  `mapstructure:"database"`
	Logger    sharedConfig.LoggerConfig    `mapstructure:"logger"`
	JWT       sharedConfig.JWTConfig       `mapstructure:"jwt"`
	Redis     sharedConfig.RedisConfig     `mapstructure:"redis"`
	Realtime  sharedConfig.RealtimeConfig  `mapstructure:"realtime"`
	Printing  sharedConfig.PrintingConfig  `mapstructure:"printing"`
	NATS      sharedConfig.NATSConfig      `mapstructure:"nats"`
	RateLimit sharedConfig.RateLimitConfig `mapstructure:"ratelimit"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads configs/config.yaml (when present), a .env file (when present)
// and CASSA_* environment variables, in increasing order of precedence.
func Load(env string) (*Config, error) {
	// A missing .env is the normal case outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../configs")
	v.AddConfigPath(".")

	v.SetEnvPrefix("CASSA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}
	if v.GetString("server.mode") == "development" && !v.IsSet("realtime.allow_anonymous_channels") {
		v.Set("realtime.allow_anonymous_channels", true)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &cfg
	appConfigMu.Unlock()

	return &cfg, nil
}

// Get returns the last loaded configuration, or nil before Load.
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8000)
	v.SetDefault("server.mode", "development")
	v.SetDefault("server.allowed_origins", []string{"*"})

	v.SetDefault("database.driver", sharedConfig.DriverSQLite)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "cassa")
	v.SetDefault("database.password", "cassa")
	v.SetDefault("database.database", "cassa")
	v.SetDefault("database.path", "cassa.db")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 50)
	v.SetDefault("database.conn_max_lifetime", 60)
	v.SetDefault("database.migration_strategy", "auto")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	v.SetDefault("jwt.secret", "change-me")
	v.SetDefault("jwt.access_exp_minutes", 720)
	v.SetDefault("jwt.bcrypt_cost", 10)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("realtime.send_buffer", 256)
	v.SetDefault("realtime.write_wait", 10*time.Second)
	v.SetDefault("realtime.pong_wait", 60*time.Second)
	v.SetDefault("realtime.max_message_size", 65536)

	v.SetDefault("printing.default_printer", "BAR_PRINTER")
	v.SetDefault("printing.socket_timeout", 5*time.Second)
	v.SetDefault("printing.socket_charset", "utf-8")
	v.SetDefault("printing.queue_command", "lp")

	v.SetDefault("nats.enabled", false)
	v.SetDefault("nats.url", "nats://127.0.0.1:4222")
	v.SetDefault("nats.subject_prefix", "cassa.floor")

	v.SetDefault("ratelimit.login_per_minute", 10)
	v.SetDefault("ratelimit.login_per_hour", 100)
}
