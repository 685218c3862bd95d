package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "server.yaml")
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoad_Defaults(t *testing.T) {
	p := writeConfig(t, "server: {}\n")
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.HTTPPort != DefaultHTTPPort {
		t.Errorf("http_port: got %d, want %d", cfg.Server.HTTPPort, DefaultHTTPPort)
	}
	if cfg.Server.MaxBodyBytes != DefaultMaxBodyBytes {
		t.Errorf("max_body_bytes: got %d, want %d", cfg.Server.MaxBodyBytes, DefaultMaxBodyBytes)
	}
	if !cfg.Server.Stream.Enabled {
		t.Error("stream.enabled: got false, want true")
	}
	if cfg.Server.Stream.SendBuffer != DefaultSendBuffer {
		t.Errorf("stream.send_buffer: got %d, want %d", cfg.Server.Stream.SendBuffer, DefaultSendBuffer)
	}
	if cfg.Server.Auth.EffectiveHeader() != DefaultAuthHeader {
		t.Errorf("auth header: got %q, want %q", cfg.Server.Auth.EffectiveHeader(), DefaultAuthHeader)
	}
}

func TestLoad_FullServer(t *testing.T) {
	p := writeConfig(t, `server:
  http_port: 9091
  max_body_bytes: 1024
  auth:
    mode: apikey
    key_env: FIT_KEY
    header: X-Fit-Key
  stream:
    enabled: false
    send_buffer: 4
log:
  level: warn
`)
	cfg, err := Load(p)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.HTTPPort != 9091 {
		t.Errorf("http_port: got %d, want 9091", cfg.Server.HTTPPort)
	}
	if cfg.Server.Auth.Mode != "apikey" {
		t.Errorf("auth.mode: got %q, want apikey", cfg.Server.Auth.Mode)
	}
	if cfg.Server.Auth.EffectiveHeader() != "X-Fit-Key" {
		t.Errorf("auth.header: got %q, want X-Fit-Key", cfg.Server.Auth.EffectiveHeader())
	}
	if cfg.Server.Stream.Enabled {
		t.Error("stream.enabled: got true, want false")
	}
	if cfg.Server.Stream.SendBuffer != 4 {
		t.Errorf("stream.send_buffer: got %d, want 4", cfg.Server.Stream.SendBuffer)
	}
	if cfg.Log.SlogLevel() != slog.LevelWarn {
		t.Errorf("log.level: got %v, want warn", cfg.Log.SlogLevel())
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"port zero", "server:\n  http_port: 0\n"},
		{"port too large", "server:\n  http_port: 70000\n"},
		{"unknown auth mode", "server:\n  auth:\n    mode: magic\n"},
		{"apikey without key_env", "server:\n  auth:\n    mode: apikey\n"},
		{"zero send buffer", "server:\n  stream:\n    send_buffer: 0\n"},
		{"negative body limit", "server:\n  max_body_bytes: -1\n"},
		{"unknown log level", "log:\n  level: loud\n"},
		{"bad yaml", "server: [\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tc.yaml)); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file, got nil")
	}
}

func TestAuthConfig_Key(t *testing.T) {
	t.Setenv("TEST_FIT_KEY", "supersecret")
	a := AuthConfig{Mode: "apikey", KeyEnv: "TEST_FIT_KEY"}
	if got := a.Key(); got != "supersecret" {
		t.Errorf("Key(): got %q, want %q", got, "supersecret")
	}
	if got := (AuthConfig{}).Key(); got != "" {
		t.Errorf("Key() with no KeyEnv: got %q, want empty", got)
	}
}
