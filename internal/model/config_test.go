package model

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Display.Theme != "default" {
		t.Errorf("theme = %q, want default", cfg.Display.Theme)
	}
	if cfg.Cache.Path == "" {
		t.Errorf("default cache path is empty")
	}
	if cfg.API.BaseURL != "" {
		t.Errorf("base URL = %q, want empty", cfg.API.BaseURL)
	}
}

func TestLoadConfigReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `api:
  base_url: https://script.example.com/exec
  key: sk-123
auth:
  allowed_emails:
    - student@example.com
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.API.BaseURL != "https://script.example.com/exec" {
		t.Errorf("base URL = %q", cfg.API.BaseURL)
	}
	if cfg.API.Key != "sk-123" {
		t.Errorf("key = %q", cfg.API.Key)
	}
	if len(cfg.Auth.AllowedEmails) != 1 {
		t.Fatalf("allow-list = %v", cfg.Auth.AllowedEmails)
	}
	// Defaults still fill unset sections.
	if cfg.Display.Theme != "default" {
		t.Errorf("theme = %q, want default", cfg.Display.Theme)
	}
}

func TestSaveConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	in := &AppConfig{
		API:  APIConfig{BaseURL: "https://example.com", Key: "k"},
		Auth: AuthConfig{AllowedEmails: []string{"a@b.c"}},
	}

	if err := SaveConfig(path, in); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	out, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if out.API.BaseURL != in.API.BaseURL || out.API.Key != in.API.Key {
		t.Errorf("api section = %+v", out.API)
	}
	if !out.Allowed("a@b.c") {
		t.Errorf("allow-list did not survive the round trip")
	}
}

func TestAllowed(t *testing.T) {
	cfg := &AppConfig{Auth: AuthConfig{AllowedEmails: []string{"x@y.z"}}}

	if !cfg.Allowed("x@y.z") {
		t.Errorf("listed email rejected")
	}
	if cfg.Allowed("X@y.z") {
		t.Errorf("membership must be an exact match")
	}
	if cfg.Allowed("") {
		t.Errorf("empty email allowed")
	}
}
