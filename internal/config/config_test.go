package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("PROJECT_ID", "test-project")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Gemini.ProjectID != "test-project" {
		t.Fatalf("unexpected project id: %q", cfg.Gemini.ProjectID)
	}
	if cfg.Gemini.Region == "" || cfg.Gemini.Model == "" {
		t.Fatalf("expected region and model defaults, got: %+v", cfg.Gemini)
	}
	if cfg.Server.Port != "5000" {
		t.Fatalf("unexpected default port: %q", cfg.Server.Port)
	}
	if cfg.Gemini.Timeout != 60*time.Second || cfg.Translate.Timeout != 15*time.Second {
		t.Fatalf("unexpected timeout defaults: %+v", cfg)
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	os.Setenv("PROJECT_ID", "test-project")
	os.Setenv("GEMINI_MODEL", "gemini-1.5-pro")
	os.Setenv("SERVER_PORT", "8080")
	defer os.Unsetenv("GEMINI_MODEL")
	defer os.Unsetenv("SERVER_PORT")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Gemini.Model != "gemini-1.5-pro" {
		t.Fatalf("model override not applied: %q", cfg.Gemini.Model)
	}
	if cfg.Server.Port != "8080" {
		t.Fatalf("port override not applied: %q", cfg.Server.Port)
	}
}
