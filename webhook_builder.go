package discohook

import (
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTimeout is the per-request timeout applied when none is configured.
const DefaultTimeout = 20 * time.Second

// WebhookBuilder builds Webhook instances with a fluent interface.
//
// Every optional setting has a documented default: no content, no overrides,
// no embeds or files, no proxy, DefaultTimeout as the request timeout,
// rate-limit retry disabled and a no-op logger.
type WebhookBuilder struct {
	webhook Webhook
	err     error
}

// NewWebhookBuilder creates a new webhook builder targeting the given
// destination URLs.
func NewWebhookBuilder(urls ...string) *WebhookBuilder {
	wb := &WebhookBuilder{
		webhook: Webhook{
			timeout: DefaultTimeout,
			logger:  zerolog.Nop(),
		},
	}
	for _, u := range urls {
		wb.AddURL(u)
	}
	return wb
}

// AddURL appends a destination URL. Destinations are executed in the order
// they were added.
func (wb *WebhookBuilder) AddURL(rawURL string) *WebhookBuilder {
	if _, err := url.ParseRequestURI(rawURL); err != nil {
		wb.recordErr(NewValidationError("url", rawURL, "invalid webhook URL"))
		return wb
	}
	wb.webhook.urls = append(wb.webhook.urls, rawURL)
	return wb
}

// WithContent sets the message content.
func (wb *WebhookBuilder) WithContent(content string) *WebhookBuilder {
	wb.webhook.content = &content
	return wb
}

// WithUsername overrides the default webhook username.
func (wb *WebhookBuilder) WithUsername(username string) *WebhookBuilder {
	wb.webhook.username = username
	return wb
}

// WithAvatarURL overrides the default webhook avatar.
func (wb *WebhookBuilder) WithAvatarURL(avatarURL string) *WebhookBuilder {
	wb.webhook.avatarURL = avatarURL
	return wb
}

// WithTTS marks the message as text-to-speech.
func (wb *WebhookBuilder) WithTTS(tts bool) *WebhookBuilder {
	wb.webhook.tts = &tts
	return wb
}

// WithAllowedMentions sets the allowed-mentions record for the message.
func (wb *WebhookBuilder) WithAllowedMentions(allowedMentions AllowedMentions) *WebhookBuilder {
	wb.webhook.allowedMentions = &allowedMentions
	return wb
}

// AddEmbed appends an embed to the message.
func (wb *WebhookBuilder) AddEmbed(embed Embed) *WebhookBuilder {
	wb.webhook.embeds = append(wb.webhook.embeds, embed)
	return wb
}

// AddFile queues a binary attachment under the given filename.
func (wb *WebhookBuilder) AddFile(content []byte, filename string) *WebhookBuilder {
	wb.webhook.files = append(wb.webhook.files, File{Name: filename, Content: content})
	return wb
}

// WithProxy routes requests through the given proxy URL.
func (wb *WebhookBuilder) WithProxy(proxyURL string) *WebhookBuilder {
	if proxyURL != "" {
		if _, err := url.Parse(proxyURL); err != nil {
			wb.recordErr(NewValidationError("proxy", proxyURL, "invalid proxy URL"))
			return wb
		}
	}
	wb.webhook.proxy = proxyURL
	return wb
}

// WithTimeout sets the per-request timeout. Zero disables the timeout.
func (wb *WebhookBuilder) WithTimeout(timeout time.Duration) *WebhookBuilder {
	wb.webhook.timeout = timeout
	return wb
}

// WithRateLimitRetry enables automatic backoff-and-resend on HTTP 429
// during Execute.
func (wb *WebhookBuilder) WithRateLimitRetry(retry bool) *WebhookBuilder {
	wb.webhook.rateLimitRetry = retry
	return wb
}

// WithLogger sets the diagnostic sink. The default is a no-op logger.
func (wb *WebhookBuilder) WithLogger(logger zerolog.Logger) *WebhookBuilder {
	wb.webhook.logger = logger.With().Str("module", "Webhook").Logger()
	return wb
}

// Build returns the constructed webhook.
func (wb *WebhookBuilder) Build() (*Webhook, error) {
	if wb.err != nil {
		return nil, wb.err
	}
	if len(wb.webhook.urls) == 0 {
		return nil, NewValidationError("url", nil, "at least one webhook URL is required")
	}
	webhook := wb.webhook
	return &webhook, nil
}

func (wb *WebhookBuilder) recordErr(err error) {
	if wb.err == nil {
		wb.err = err
	}
}
