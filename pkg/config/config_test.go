package config

import (
	"os"
	"testing"
	"time"
)

// unsetEnv clears keys for the duration of the test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		k := k // per-iteration copy (go < 1.22 loop variable semantics)
		if v, ok := os.LookupEnv(k); ok {
			t.Cleanup(func() { os.Setenv(k, v) })
		}
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t, "LISTEN_ADDR", "TLS_CERT_FILE", "TLS_KEY_FILE", "SHUTDOWN_TIMEOUT",
		"LOG_LEVEL", "STORE_DRIVER", "CLIENT_TTL", "TRACE_PROBABILITY")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ListenAddr != ":8443" {
		t.Errorf("ListenAddr = %q, want %q", cfg.ListenAddr, ":8443")
	}
	if cfg.StoreDriver != DriverMemory {
		t.Errorf("StoreDriver = %q, want %q", cfg.StoreDriver, DriverMemory)
	}
	if cfg.LogLevel != "INFO" {
		t.Errorf("LogLevel = %q, want %q", cfg.LogLevel, "INFO")
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 10s", cfg.ShutdownTimeout)
	}
	if cfg.ClientTTL != 720*time.Hour {
		t.Errorf("ClientTTL = %v, want 720h", cfg.ClientTTL)
	}
	if cfg.TraceProbability != 1.0 {
		t.Errorf("TraceProbability = %v, want 1", cfg.TraceProbability)
	}
	if cfg.TLSEnabled() {
		t.Error("TLSEnabled() = true, want false")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "redis")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("TLS_CERT_FILE", "certs/server.crt")
	t.Setenv("TLS_KEY_FILE", "certs/server.key")
	t.Setenv("CLIENT_TTL", "1h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("RedisAddr = %q", cfg.RedisAddr)
	}
	if !cfg.TLSEnabled() {
		t.Error("TLSEnabled() = false, want true")
	}
	if cfg.ClientTTL != time.Hour {
		t.Errorf("ClientTTL = %v, want 1h", cfg.ClientTTL)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"memory", Config{StoreDriver: DriverMemory, TraceProbability: 1}, false},
		{"postgres without url", Config{StoreDriver: DriverPostgres}, true},
		{"postgres", Config{StoreDriver: DriverPostgres, DatabaseURL: "postgres://x"}, false},
		{"redis without addr", Config{StoreDriver: DriverRedis}, true},
		{"unknown driver", Config{StoreDriver: "bolt"}, true},
		{"half tls", Config{StoreDriver: DriverMemory, TLSCertFile: "a.crt"}, true},
		{"probability too high", Config{StoreDriver: DriverMemory, TraceProbability: 1.5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
