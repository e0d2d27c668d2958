package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.test.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "app:\n  env: test\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.App.Env != "test" {
		t.Errorf("env: got %q, want %q", cfg.App.Env, "test")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port default: got %d, want 8080", cfg.Server.Port)
	}
	if cfg.Birthday.GracePeriodDays != 1 {
		t.Errorf("grace default: got %d, want 1", cfg.Birthday.GracePeriodDays)
	}
	if cfg.Birthday.DefaultMusicURL != "/music/happy-birthday-classic.mp3" {
		t.Errorf("unexpected music default: %q", cfg.Birthday.DefaultMusicURL)
	}
}

func TestLoadClampsNegativeGracePeriod(t *testing.T) {
	path := writeConfig(t, "birthday:\n  grace_period_days: -1\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Birthday.GracePeriodDays != 0 {
		t.Errorf("grace: got %d, want 0", cfg.Birthday.GracePeriodDays)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("BIRTHDAY_GRACE_PERIOD_DAYS", "3")

	path := writeConfig(t, "server:\n  port: 8081\nbirthday:\n  grace_period_days: 1\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("port: got %d, want 9999", cfg.Server.Port)
	}
	if cfg.Birthday.GracePeriodDays != 3 {
		t.Errorf("grace: got %d, want 3", cfg.Birthday.GracePeriodDays)
	}
}
