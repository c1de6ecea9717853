package discohook

import (
	"time"

	"github.com/rs/zerolog"
)

// File is a binary attachment queued on a webhook message.
type File struct {
	Name    string // Filename presented to Discord
	Content []byte
}

// Webhook holds the state of a Discord webhook message and the transport
// configuration used to deliver it.
//
// A Webhook is not safe for concurrent use: embed and file state is mutated
// in place by the setters, and Execute reads it without synchronization.
// Callers sharing one instance across goroutines must synchronize externally.
type Webhook struct {
	urls            []string
	content         *string
	username        string
	avatarURL       string
	tts             *bool
	embeds          []Embed
	files           []File
	allowedMentions *AllowedMentions
	proxy           string
	timeout         time.Duration
	rateLimitRetry  bool
	logger          zerolog.Logger
}

// URLs returns the configured destination URLs in order.
func (w *Webhook) URLs() []string {
	return w.urls
}

// SetContent sets the message content. An empty string is a deliberate value
// and is included in the payload.
func (w *Webhook) SetContent(content string) {
	w.content = &content
}

// ClearContent removes the message content from the payload entirely.
func (w *Webhook) ClearContent() {
	w.content = nil
}

// SetUsername overrides the default webhook username.
func (w *Webhook) SetUsername(username string) {
	w.username = username
}

// SetAvatarURL overrides the default webhook avatar.
func (w *Webhook) SetAvatarURL(avatarURL string) {
	w.avatarURL = avatarURL
}

// SetTTS marks the message as text-to-speech. False is a deliberate value
// and is included in the payload.
func (w *Webhook) SetTTS(tts bool) {
	w.tts = &tts
}

// SetAllowedMentions sets the allowed-mentions record for the message.
func (w *Webhook) SetAllowedMentions(allowedMentions AllowedMentions) {
	w.allowedMentions = &allowedMentions
}

// AddEmbed appends an embed to the message. Insertion order is preserved.
func (w *Webhook) AddEmbed(embed Embed) {
	w.embeds = append(w.embeds, embed)
}

// RemoveEmbed removes the embed at the given index.
func (w *Webhook) RemoveEmbed(index int) error {
	if index < 0 || index >= len(w.embeds) {
		return NewValidationError("embed_index", index, "embed index out of range")
	}
	w.embeds = append(w.embeds[:index], w.embeds[index+1:]...)
	return nil
}

// Embeds returns the queued embeds in order.
func (w *Webhook) Embeds() []Embed {
	return w.embeds
}

// ClearEmbeds removes all queued embeds.
func (w *Webhook) ClearEmbeds() {
	w.embeds = nil
}

// AddFile queues a binary attachment under the given filename.
func (w *Webhook) AddFile(content []byte, filename string) {
	w.files = append(w.files, File{Name: filename, Content: content})
}

// RemoveFile removes the attachment with the given filename if it exists and
// reports whether one was removed.
func (w *Webhook) RemoveFile(filename string) bool {
	for i, f := range w.files {
		if f.Name == filename {
			w.files = append(w.files[:i], w.files[i+1:]...)
			return true
		}
	}
	return false
}

// Files returns the queued attachments in order.
func (w *Webhook) Files() []File {
	return w.files
}

// ClearFiles removes all queued attachments.
func (w *Webhook) ClearFiles() {
	w.files = nil
}
