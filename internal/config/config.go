package config

// Default values applied by NewDefaultConfig.
const (
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "console"
	DefaultMaxLogSizeMB   = 100
	DefaultMaxLogBackups  = 3
	DefaultTimeoutSeconds = 20
)

// Config is the root configuration for the discohook CLI.
type Config struct {
	Log     LogConfig     `json:"log_config" yaml:"log_config"`
	Webhook WebhookConfig `json:"webhook_config" yaml:"webhook_config"`
	Message MessageConfig `json:"message_config" yaml:"message_config"`
}

// NewDefaultConfig creates the default CLI configuration.
func NewDefaultConfig() *Config {
	return &Config{
		Log:     NewDefaultLogConfig(),
		Webhook: NewDefaultWebhookConfig(),
		Message: MessageConfig{},
	}
}

// LogConfig defines configuration for logging.
type LogConfig struct {
	LogFile       string `json:"log_file,omitempty" yaml:"log_file,omitempty"`
	LogFormat     string `json:"log_format,omitempty" yaml:"log_format,omitempty" validate:"omitempty,logformat"`
	LogLevel      string `json:"log_level,omitempty" yaml:"log_level,omitempty" validate:"omitempty,loglevel"`
	MaxLogBackups int    `json:"max_log_backups,omitempty" yaml:"max_log_backups,omitempty"`
	MaxLogSizeMB  int    `json:"max_log_size_mb,omitempty" yaml:"max_log_size_mb,omitempty"`
}

// NewDefaultLogConfig creates default log configuration.
func NewDefaultLogConfig() LogConfig {
	return LogConfig{
		LogFormat:     DefaultLogFormat,
		LogLevel:      DefaultLogLevel,
		MaxLogBackups: DefaultMaxLogBackups,
		MaxLogSizeMB:  DefaultMaxLogSizeMB,
	}
}

// WebhookConfig defines the destination and transport configuration.
type WebhookConfig struct {
	WebhookURLs    []string `json:"webhook_urls" yaml:"webhook_urls" validate:"required,min=1,dive,url"`
	Proxy          string   `json:"proxy,omitempty" yaml:"proxy,omitempty" validate:"omitempty,url"`
	TimeoutSeconds int      `json:"timeout_seconds,omitempty" yaml:"timeout_seconds,omitempty" validate:"omitempty,min=0"`
	RateLimitRetry bool     `json:"rate_limit_retry" yaml:"rate_limit_retry"`
}

// NewDefaultWebhookConfig creates default webhook configuration.
func NewDefaultWebhookConfig() WebhookConfig {
	return WebhookConfig{
		WebhookURLs:    []string{},
		TimeoutSeconds: DefaultTimeoutSeconds,
	}
}

// MessageConfig defines the message to send.
type MessageConfig struct {
	Content     string        `json:"content,omitempty" yaml:"content,omitempty"`
	Username    string        `json:"username,omitempty" yaml:"username,omitempty"`
	AvatarURL   string        `json:"avatar_url,omitempty" yaml:"avatar_url,omitempty" validate:"omitempty,url"`
	TTS         bool          `json:"tts,omitempty" yaml:"tts,omitempty"`
	Embeds      []EmbedConfig `json:"embeds,omitempty" yaml:"embeds,omitempty" validate:"omitempty,dive"`
	Attachments []string      `json:"attachments,omitempty" yaml:"attachments,omitempty" validate:"omitempty,dive,fileexists"`
}

// EmbedConfig defines one embed attached to the message.
type EmbedConfig struct {
	Title        string             `json:"title,omitempty" yaml:"title,omitempty"`
	Description  string             `json:"description,omitempty" yaml:"description,omitempty"`
	URL          string             `json:"url,omitempty" yaml:"url,omitempty" validate:"omitempty,url"`
	Color        string             `json:"color,omitempty" yaml:"color,omitempty" validate:"omitempty,hexadecimal"`
	Timestamp    bool               `json:"timestamp,omitempty" yaml:"timestamp,omitempty"`
	FooterText   string             `json:"footer_text,omitempty" yaml:"footer_text,omitempty"`
	FooterIcon   string             `json:"footer_icon,omitempty" yaml:"footer_icon,omitempty" validate:"omitempty,url"`
	AuthorName   string             `json:"author_name,omitempty" yaml:"author_name,omitempty"`
	AuthorURL    string             `json:"author_url,omitempty" yaml:"author_url,omitempty" validate:"omitempty,url"`
	AuthorIcon   string             `json:"author_icon,omitempty" yaml:"author_icon,omitempty" validate:"omitempty,url"`
	ImageURL     string             `json:"image_url,omitempty" yaml:"image_url,omitempty" validate:"omitempty,url"`
	ThumbnailURL string             `json:"thumbnail_url,omitempty" yaml:"thumbnail_url,omitempty" validate:"omitempty,url"`
	Fields       []EmbedFieldConfig `json:"fields,omitempty" yaml:"fields,omitempty" validate:"omitempty,dive"`
}

// EmbedFieldConfig defines one field of an embed.
type EmbedFieldConfig struct {
	Name   string `json:"name" yaml:"name" validate:"required"`
	Value  string `json:"value" yaml:"value" validate:"required"`
	Inline bool   `json:"inline,omitempty" yaml:"inline,omitempty"`
}
