package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config contains runtime configuration values.
//
// The agent, fallback and activity fields are nil when the variable is not
// set at all. A variable set to an empty string yields a pointer to "", which
// still overrides the derived value.
type Config struct {
	DiscordWebhookURL string
	AgentName         *string
	HookEvent         *string
	ToolName          *string
	ActivityTitle     *string
	ActivityURL       *string
	ActivityDetails   *string
	RequestTimeout    time.Duration
	NotifyWhen        string
	LogLevel          string
	LogFormat         string
}

const (
	defaultTimeout   = 30 * time.Second
	defaultLogLevel  = "info"
	defaultLogFormat = "auto"
)

// Config file keys and the environment variables bound to them.
var envBindings = map[string]string{
	"discord_webhook_url": "DISCORD_WEBHOOK_URL",
	"agent_name":          "AGENT_NAME",
	"hook_event":          "HOOK_EVENT",
	"tool_name":           "TOOL_NAME",
	"activity_title":      "ACTIVITY_TITLE",
	"activity_url":        "ACTIVITY_URL",
	"activity_details":    "ACTIVITY_DETAILS",
	"request_timeout":     "REQUEST_TIMEOUT",
	"notify_when":         "NOTIFY_WHEN",
	"log_level":           "LOG_LEVEL",
	"log_format":          "LOG_FORMAT",
}

// Load builds a Config from environment variables with sane defaults. When
// path is non-empty the file is read first and environment values win over it.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.AllowEmptyEnv(true)
	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind %s: %w", env, err)
		}
	}

	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("log_format", defaultLogFormat)

	if path = strings.TrimSpace(path); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := &Config{
		DiscordWebhookURL: strings.TrimSpace(v.GetString("discord_webhook_url")),
		AgentName:         lookup(v, "agent_name"),
		HookEvent:         lookup(v, "hook_event"),
		ToolName:          lookup(v, "tool_name"),
		ActivityTitle:     lookup(v, "activity_title"),
		ActivityURL:       lookup(v, "activity_url"),
		ActivityDetails:   lookup(v, "activity_details"),
		RequestTimeout:    parseTimeout(v.GetString("request_timeout"), defaultTimeout),
		NotifyWhen:        strings.TrimSpace(v.GetString("notify_when")),
		LogLevel:          v.GetString("log_level"),
		LogFormat:         v.GetString("log_format"),
	}

	if strings.TrimSpace(cfg.LogLevel) == "" {
		cfg.LogLevel = defaultLogLevel
	}
	if strings.TrimSpace(cfg.LogFormat) == "" {
		cfg.LogFormat = defaultLogFormat
	}

	return cfg, nil
}

// lookup returns nil for a key that is neither in the environment nor in the
// config file.
func lookup(v *viper.Viper, key string) *string {
	if !v.IsSet(key) {
		return nil
	}
	value := v.GetString(key)
	return &value
}

// parseTimeout accepts a Go duration ("45s") or a bare number of seconds.
func parseTimeout(value string, fallback time.Duration) time.Duration {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.Atoi(value); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return fallback
}
