package discohook

// MessagePayload represents the JSON payload sent to a Discord webhook.
//
// Content and TTS are pointers so that an explicitly set empty string or
// false survives serialization instead of being dropped by omitempty.
type MessagePayload struct {
	Content         *string          `json:"content,omitempty"`    // Message content (text)
	Username        string           `json:"username,omitempty"`   // Override the default webhook username
	AvatarURL       string           `json:"avatar_url,omitempty"` // Override the default webhook avatar
	TTS             *bool            `json:"tts,omitempty"`        // Whether this is a TTS message
	Embeds          []Embed          `json:"embeds,omitempty"`     // Array of embed objects
	AllowedMentions *AllowedMentions `json:"allowed_mentions,omitempty"`
}

// AllowedMentions controls which mentions in the message content are resolved.
// It is passed through to Discord unchanged.
type AllowedMentions struct {
	Parse       []string `json:"parse,omitempty"` // Mention types to parse: "roles", "users", "everyone"
	Roles       []string `json:"roles,omitempty"` // Role IDs to mention
	Users       []string `json:"users,omitempty"` // User IDs to mention
	RepliedUser bool     `json:"replied_user,omitempty"`
}

// BuildPayload assembles the message payload from the current webhook state.
// The payload is produced on demand and never cached. Destination URLs, file
// attachments and transport configuration are not part of the payload.
//
// A message with no content, no non-empty embed and no file attachment is
// diagnosed through the configured logger. This is advisory only: the payload
// is still returned and a send still proceeds.
func (w *Webhook) BuildPayload() MessagePayload {
	payload := MessagePayload{
		Content:         w.content,
		Username:        w.username,
		AvatarURL:       w.avatarURL,
		TTS:             w.tts,
		Embeds:          w.embeds,
		AllowedMentions: w.allowedMentions,
	}

	if w.isEmptyMessage() {
		w.logger.Warn().Msg("Webhook message is empty, set content or embed data")
	}

	return payload
}

// isEmptyMessage reports whether the message carries no visible content.
func (w *Webhook) isEmptyMessage() bool {
	if w.content != nil && *w.content != "" {
		return false
	}
	if len(w.files) > 0 {
		return false
	}
	for _, embed := range w.embeds {
		if !embed.IsEmpty() {
			return false
		}
	}
	return true
}
