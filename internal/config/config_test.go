package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFileDefaults(t *testing.T) {
	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile() unexpected error: %v", err)
	}

	want := Default()
	if *cfg != want {
		t.Fatalf("expected defaults %#v, got %#v", want, *cfg)
	}
	if cfg.Address() != ":8080" {
		t.Fatalf("expected :8080, got %q", cfg.Address())
	}
	if cfg.Location() != time.UTC {
		t.Fatalf("expected UTC location, got %v", cfg.Location())
	}
}

func TestLoadFileEnvOverrides(t *testing.T) {
	t.Setenv("MEDQUEST_HTTP_PORT", "9191")
	t.Setenv("MEDQUEST_HTTP_SHUTDOWNTIMEOUT", "2s")
	t.Setenv("MEDQUEST_STORE_BACKEND", "redis")
	t.Setenv("MEDQUEST_REDIS_ADDRESS", "localhost:6379")
	t.Setenv("MEDQUEST_REDIS_DB", "4")
	t.Setenv("MEDQUEST_LOG_PRETTY", "true")
	t.Setenv("MEDQUEST_NOTIFY_TELEGRAMTOKEN", "token")
	t.Setenv("MEDQUEST_NOTIFY_TELEGRAMCHATID", "42")

	cfg, err := LoadFile("")
	if err != nil {
		t.Fatalf("LoadFile() unexpected error: %v", err)
	}

	if cfg.HTTP.Port != 9191 || cfg.HTTP.ShutdownTimeout != 2*time.Second {
		t.Fatalf("unexpected http config %#v", cfg.HTTP)
	}
	if cfg.Store.Backend != BackendRedis || cfg.Redis.Address != "localhost:6379" || cfg.Redis.DB != 4 {
		t.Fatalf("unexpected store config %#v %#v", cfg.Store, cfg.Redis)
	}
	if !cfg.Log.Pretty || cfg.Log.Level != "info" {
		t.Fatalf("unexpected log config %#v", cfg.Log)
	}
	if !cfg.Notify.TelegramEnabled() || cfg.Notify.Interval != 30*time.Second {
		t.Fatalf("unexpected notify config %#v", cfg.Notify)
	}
	if cfg.Redis.Timeout != 3*time.Second {
		t.Fatalf("expected default redis timeout to survive, got %v", cfg.Redis.Timeout)
	}
}

func TestLoadFileYAMLThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "medlifequest.yaml")
	content := []byte("http:\n  port: 7000\nstore:\n  backend: memory\nlog:\n  level: debug\napp:\n  timezone: Europe/Berlin\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("MEDQUEST_HTTP_PORT", "7001")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() unexpected error: %v", err)
	}

	if cfg.HTTP.Port != 7001 {
		t.Fatalf("expected env to win over file, got port %d", cfg.HTTP.Port)
	}
	if cfg.Store.Backend != BackendMemory || cfg.Log.Level != "debug" {
		t.Fatalf("expected file values, got %#v %#v", cfg.Store, cfg.Log)
	}
	if cfg.Location().String() != "Europe/Berlin" {
		t.Fatalf("expected Europe/Berlin, got %s", cfg.Location())
	}
}

func TestLoadUsesConfigPathEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("store:\n  backend: memory\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnv, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Store.Backend != BackendMemory {
		t.Fatalf("expected memory backend, got %q", cfg.Store.Backend)
	}
}

func TestLoadFileMissingFile(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "port zero", mutate: func(cfg *Config) { cfg.HTTP.Port = 0 }},
		{name: "port too large", mutate: func(cfg *Config) { cfg.HTTP.Port = 70000 }},
		{name: "no shutdown timeout", mutate: func(cfg *Config) { cfg.HTTP.ShutdownTimeout = 0 }},
		{name: "unknown backend", mutate: func(cfg *Config) { cfg.Store.Backend = "postgres" }},
		{name: "sqlite without path", mutate: func(cfg *Config) { cfg.Store.Path = " " }},
		{name: "redis without address", mutate: func(cfg *Config) { cfg.Store.Backend = BackendRedis }},
		{name: "bad timezone", mutate: func(cfg *Config) { cfg.App.Timezone = "Mars/Olympus" }},
		{name: "notify interval too short", mutate: func(cfg *Config) { cfg.Notify.Interval = time.Millisecond }},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			cfg := Default()
			testCase.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestLoadFileRejectsInvalidBackendFromEnv(t *testing.T) {
	t.Setenv("MEDQUEST_STORE_BACKEND", "etcd")

	if _, err := LoadFile(""); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestEnvKeyToPath(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"MEDQUEST_HTTP_PORT":            "http.port",
		"MEDQUEST_HTTP_SHUTDOWNTIMEOUT": "http.shutdowntimeout",
		"MEDQUEST_REDIS_DB":             "redis.db",
		"MEDQUEST_APP_TIMEZONE":         "app.timezone",
	}
	for input, want := range tests {
		if got := envKeyToPath(input); got != want {
			t.Fatalf("envKeyToPath(%q) = %q, want %q", input, got, want)
		}
	}
}
