// Package config loads process settings from built-in defaults, an optional
// YAML file and MEDQUEST_* environment variables, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	EnvPrefix     = "MEDQUEST_"
	ConfigPathEnv = EnvPrefix + "CONFIG"

	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	HTTP   HTTP   `koanf:"http"`
	Store  Store  `koanf:"store"`
	Redis  Redis  `koanf:"redis"`
	Log    Log    `koanf:"log"`
	App    App    `koanf:"app"`
	Notify Notify `koanf:"notify"`
}

type HTTP struct {
	Port            int           `koanf:"port"`
	ShutdownTimeout time.Duration `koanf:"shutdowntimeout"`
}

type Store struct {
	Backend string `koanf:"backend"`
	Path    string `koanf:"path"`
}

type Redis struct {
	Address  string        `koanf:"address"`
	Password string        `koanf:"password"`
	DB       int           `koanf:"db"`
	Timeout  time.Duration `koanf:"timeout"`
}

type Log struct {
	Level  string `koanf:"level"`
	Pretty bool   `koanf:"pretty"`
}

type App struct {
	Timezone string `koanf:"timezone"`
}

// Notify controls the due-reminder notifier. Telegram delivery is enabled
// only when both the token and the chat id are set.
type Notify struct {
	Enabled        bool          `koanf:"enabled"`
	Interval       time.Duration `koanf:"interval"`
	TelegramToken  string        `koanf:"telegramtoken"`
	TelegramChatID string        `koanf:"telegramchatid"`
}

func (notify Notify) TelegramEnabled() bool {
	return strings.TrimSpace(notify.TelegramToken) != "" && strings.TrimSpace(notify.TelegramChatID) != ""
}

func Default() Config {
	return Config{
		HTTP: HTTP{
			Port:            8080,
			ShutdownTimeout: 10 * time.Second,
		},
		Store: Store{
			Backend: BackendSQLite,
			Path:    filepath.Join("data", "medlifequest.db"),
		},
		Redis: Redis{
			Timeout: 3 * time.Second,
		},
		Log: Log{
			Level: "info",
		},
		App: App{
			Timezone: "UTC",
		},
		Notify: Notify{
			Enabled:  true,
			Interval: 30 * time.Second,
		},
	}
}

// Load reads the file named by MEDQUEST_CONFIG, when set, and then the
// environment.
func Load() (*Config, error) {
	return LoadFile(os.Getenv(ConfigPathEnv))
}

// LoadFile is Load with an explicit YAML path. An empty path skips the file.
func LoadFile(path string) (*Config, error) {
	koanfInstance := koanf.New(".")

	if strings.TrimSpace(path) != "" {
		if err := koanfInstance.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
	}

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key string, value string) (string, any) {
			return envKeyToPath(key), value
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("load env variables: %w", err)
	}

	cfg := Default()
	if err := koanfInstance.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			TagName:          "koanf",
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKeyToPath maps MEDQUEST_HTTP_SHUTDOWNTIMEOUT to http.shutdowntimeout.
func envKeyToPath(key string) string {
	trimmed := strings.TrimPrefix(key, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(trimmed), "_", ".")
}

func (cfg Config) Validate() error {
	if cfg.HTTP.Port < 1 || cfg.HTTP.Port > 65535 {
		return fmt.Errorf("%w: http.port %d out of range", ErrInvalidConfig, cfg.HTTP.Port)
	}
	if cfg.HTTP.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: http.shutdowntimeout must be positive", ErrInvalidConfig)
	}

	switch cfg.Store.Backend {
	case BackendSQLite:
		if strings.TrimSpace(cfg.Store.Path) == "" {
			return fmt.Errorf("%w: store.path is required for sqlite", ErrInvalidConfig)
		}
	case BackendRedis:
		if strings.TrimSpace(cfg.Redis.Address) == "" {
			return fmt.Errorf("%w: redis.address is required for redis", ErrInvalidConfig)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("%w: unknown store.backend %q", ErrInvalidConfig, cfg.Store.Backend)
	}

	if cfg.Notify.Enabled && cfg.Notify.Interval < time.Second {
		return fmt.Errorf("%w: notify.interval must be at least 1s", ErrInvalidConfig)
	}

	if _, err := time.LoadLocation(cfg.App.Timezone); err != nil {
		return fmt.Errorf("%w: app.timezone %q: %v", ErrInvalidConfig, cfg.App.Timezone, err)
	}
	return nil
}

// Location is the configured timezone. Validate has already checked it loads.
func (cfg Config) Location() *time.Location {
	location, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		return time.UTC
	}
	return location
}

// Address is the listen address for the HTTP server.
func (cfg Config) Address() string {
	return fmt.Sprintf(":%d", cfg.HTTP.Port)
}
