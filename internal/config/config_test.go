package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// clearEnv unsets every bound variable for the duration of the test. Setenv
// registers the restore; the variable itself must be absent, not empty.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range envBindings {
		t.Setenv(env, "")
		if err := os.Unsetenv(env); err != nil {
			t.Fatalf("unset %s: %v", env, err)
		}
	}
}

func deref(value *string) string {
	if value == nil {
		return "<nil>"
	}
	return *value
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DiscordWebhookURL != "" {
		t.Fatalf("expected empty webhook, got %q", cfg.DiscordWebhookURL)
	}
	if cfg.RequestTimeout != 30*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.RequestTimeout)
	}
	for name, value := range map[string]*string{
		"agent":   cfg.AgentName,
		"event":   cfg.HookEvent,
		"tool":    cfg.ToolName,
		"title":   cfg.ActivityTitle,
		"url":     cfg.ActivityURL,
		"details": cfg.ActivityDetails,
	} {
		if value != nil {
			t.Fatalf("%s should be unset, got %q", name, *value)
		}
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "auto" {
		t.Fatalf("unexpected log settings %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("DISCORD_WEBHOOK_URL", " https://discord.example/api/webhooks/1/abc ")
	t.Setenv("AGENT_NAME", "reviewer")
	t.Setenv("ACTIVITY_TITLE", "Custom title")
	t.Setenv("ACTIVITY_URL", "https://example.com/run/7")
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("NOTIFY_WHEN", ` tool == "Bash" `)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DiscordWebhookURL != "https://discord.example/api/webhooks/1/abc" {
		t.Fatalf("unexpected webhook %q", cfg.DiscordWebhookURL)
	}
	if deref(cfg.AgentName) != "reviewer" {
		t.Fatalf("unexpected agent %q", deref(cfg.AgentName))
	}
	if deref(cfg.ActivityTitle) != "Custom title" {
		t.Fatalf("unexpected title %q", deref(cfg.ActivityTitle))
	}
	if deref(cfg.ActivityURL) != "https://example.com/run/7" {
		t.Fatalf("unexpected url %q", deref(cfg.ActivityURL))
	}
	if cfg.ActivityDetails != nil {
		t.Fatalf("details should be unset, got %q", *cfg.ActivityDetails)
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Fatalf("unexpected timeout %v", cfg.RequestTimeout)
	}
	if cfg.NotifyWhen != `tool == "Bash"` {
		t.Fatalf("unexpected filter %q", cfg.NotifyWhen)
	}
}

func TestLoadConfigFileWithEnvPrecedence(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "notifier.yaml")
	data := "discord_webhook_url: https://file.example/hook\nagent_name: from-file\nlog_level: debug\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("AGENT_NAME", "from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DiscordWebhookURL != "https://file.example/hook" {
		t.Fatalf("unexpected webhook %q", cfg.DiscordWebhookURL)
	}
	if deref(cfg.AgentName) != "from-env" {
		t.Fatalf("environment should win over file, got %q", deref(cfg.AgentName))
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("unexpected log level %q", cfg.LogLevel)
	}
}

func TestLoadKeepsValuesSetToEmpty(t *testing.T) {
	clearEnv(t)
	t.Setenv("ACTIVITY_TITLE", "")
	t.Setenv("AGENT_NAME", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.ActivityTitle == nil || *cfg.ActivityTitle != "" {
		t.Fatalf("expected title set to empty, got %q", deref(cfg.ActivityTitle))
	}
	if cfg.AgentName == nil || *cfg.AgentName != "" {
		t.Fatalf("expected agent set to empty, got %q", deref(cfg.AgentName))
	}
	if cfg.ActivityDetails != nil {
		t.Fatalf("details should be unset, got %q", *cfg.ActivityDetails)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("empty LOG_LEVEL should fall back to info, got %q", cfg.LogLevel)
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestParseTimeout(t *testing.T) {
	tests := []struct {
		input string
		want  time.Duration
	}{
		{"", 30 * time.Second},
		{"45s", 45 * time.Second},
		{"2m", 2 * time.Minute},
		{"10", 10 * time.Second},
		{"-5s", 30 * time.Second},
		{"0", 30 * time.Second},
		{"soon", 30 * time.Second},
	}
	for _, tc := range tests {
		if got := parseTimeout(tc.input, 30*time.Second); got != tc.want {
			t.Fatalf("parseTimeout(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}
