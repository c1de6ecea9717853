package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_YAML(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", `
webhook_config:
  webhook_urls:
    - https://discord.com/api/webhooks/1/token
  rate_limit_retry: true
  timeout_seconds: 5
message_config:
  content: hello
  username: bot
log_config:
  log_level: debug
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"https://discord.com/api/webhooks/1/token"}, cfg.Webhook.WebhookURLs)
	assert.True(t, cfg.Webhook.RateLimitRetry)
	assert.Equal(t, 5, cfg.Webhook.TimeoutSeconds)
	assert.Equal(t, "hello", cfg.Message.Content)
	assert.Equal(t, "bot", cfg.Message.Username)
	assert.Equal(t, "debug", cfg.Log.LogLevel)
	// Unset fields keep their defaults.
	assert.Equal(t, DefaultLogFormat, cfg.Log.LogFormat)
}

func TestLoadConfig_JSON(t *testing.T) {
	path := writeTempConfig(t, "config.json", `{
  "webhook_config": {
    "webhook_urls": ["https://discord.com/api/webhooks/1/token"]
  },
  "message_config": {
    "content": "hi"
  }
}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "hi", cfg.Message.Content)
	assert.Len(t, cfg.Webhook.WebhookURLs, 1)
}

func TestLoadConfig_MissingProvidedPath(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	path := writeTempConfig(t, "config.yaml", "webhook_config: [not: valid")
	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Webhook.WebhookURLs = []string{"https://discord.com/api/webhooks/1/token"}
	require.NoError(t, ValidateConfig(cfg))
}

func TestValidateConfig_RequiresWebhookURL(t *testing.T) {
	cfg := NewDefaultConfig()
	require.Error(t, ValidateConfig(cfg))
}

func TestValidateConfig_RejectsInvalidURL(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Webhook.WebhookURLs = []string{"not a url"}
	require.Error(t, ValidateConfig(cfg))
}

func TestValidateConfig_RejectsUnknownLogLevel(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Webhook.WebhookURLs = []string{"https://discord.com/api/webhooks/1/token"}
	cfg.Log.LogLevel = "verbose"
	require.Error(t, ValidateConfig(cfg))
}

func TestValidateConfig_RejectsMissingAttachment(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Webhook.WebhookURLs = []string{"https://discord.com/api/webhooks/1/token"}
	cfg.Message.Attachments = []string{filepath.Join(t.TempDir(), "missing.txt")}
	require.Error(t, ValidateConfig(cfg))
}

func TestGetConfigPath_PrefersProvidedPath(t *testing.T) {
	path := writeTempConfig(t, "custom.yaml", "{}")
	assert.Equal(t, path, GetConfigPath(path))
}

func TestGetConfigPath_EnvVariable(t *testing.T) {
	path := writeTempConfig(t, "env.yaml", "{}")
	t.Setenv(ConfigPathEnvVar, path)
	assert.Equal(t, path, GetConfigPath(""))
}
