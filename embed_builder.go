package discohook

import (
	"strconv"
	"strings"
	"time"
)

// timestampLayout is the UTC ISO-8601 layout Discord accepts for embed
// timestamps. No timezone suffix is appended.
const timestampLayout = "2006-01-02T15:04:05"

const maxEmbedColor = 0xFFFFFF

// EmbedBuilder helps in constructing Embed objects.
//
// Setters are independent of each other and overwrite any previous value.
// Input errors (invalid hex color, out-of-range color) are recorded and
// surfaced by Build, never swallowed.
type EmbedBuilder struct {
	embed     Embed
	validator *EmbedValidator
	err       error
}

// NewEmbedBuilder creates a new embed builder.
func NewEmbedBuilder() *EmbedBuilder {
	return &EmbedBuilder{
		embed:     Embed{},
		validator: NewEmbedValidator(),
	}
}

// WithTitle sets the embed title.
func (eb *EmbedBuilder) WithTitle(title string) *EmbedBuilder {
	eb.embed.Title = title
	return eb
}

// WithDescription sets the embed description.
func (eb *EmbedBuilder) WithDescription(description string) *EmbedBuilder {
	eb.embed.Description = description
	return eb
}

// WithURL sets the embed URL.
func (eb *EmbedBuilder) WithURL(url string) *EmbedBuilder {
	eb.embed.URL = url
	return eb
}

// WithColor sets the embed color as a decimal color code.
func (eb *EmbedBuilder) WithColor(color int) *EmbedBuilder {
	if color < 0 || color > maxEmbedColor {
		eb.recordErr(NewValidationError("color", color, "color must be in range 0x000000-0xFFFFFF"))
		return eb
	}
	eb.embed.Color = &color
	return eb
}

// WithHexColor sets the embed color from a hex string such as "03b2f8" or
// "#03b2f8". The value is parsed as base-16 and stored as the same integer
// WithColor would store.
func (eb *EmbedBuilder) WithHexColor(hexColor string) *EmbedBuilder {
	parsed, err := strconv.ParseInt(strings.TrimPrefix(hexColor, "#"), 16, 64)
	if err != nil {
		eb.recordErr(NewValidationError("color", hexColor, "color is not a valid hex string"))
		return eb
	}
	return eb.WithColor(int(parsed))
}

// WithTimestamp sets the embed timestamp from the given time, normalized to UTC.
func (eb *EmbedBuilder) WithTimestamp(timestamp time.Time) *EmbedBuilder {
	eb.embed.Timestamp = timestamp.UTC().Format(timestampLayout)
	return eb
}

// WithTimestampNow sets the embed timestamp to the current time.
func (eb *EmbedBuilder) WithTimestampNow() *EmbedBuilder {
	return eb.WithTimestamp(time.Now())
}

// WithUnixTimestamp sets the embed timestamp from unix-epoch seconds.
func (eb *EmbedBuilder) WithUnixTimestamp(sec int64) *EmbedBuilder {
	return eb.WithTimestamp(time.Unix(sec, 0))
}

// WithFooter sets the embed footer.
func (eb *EmbedBuilder) WithFooter(text, iconURL string) *EmbedBuilder {
	eb.embed.Footer = NewEmbedFooter(text, iconURL)
	return eb
}

// WithImage sets the embed image.
func (eb *EmbedBuilder) WithImage(url string) *EmbedBuilder {
	eb.embed.Image = NewEmbedImage(url)
	return eb
}

// WithThumbnail sets the embed thumbnail.
func (eb *EmbedBuilder) WithThumbnail(url string) *EmbedBuilder {
	eb.embed.Thumbnail = NewEmbedThumbnail(url)
	return eb
}

// WithVideo sets the embed video.
func (eb *EmbedBuilder) WithVideo(url string) *EmbedBuilder {
	eb.embed.Video = NewEmbedVideo(url)
	return eb
}

// WithProvider sets the embed provider.
func (eb *EmbedBuilder) WithProvider(name, url string) *EmbedBuilder {
	eb.embed.Provider = NewEmbedProvider(name, url)
	return eb
}

// WithAuthor sets the embed author.
func (eb *EmbedBuilder) WithAuthor(name, url, iconURL string) *EmbedBuilder {
	eb.embed.Author = NewEmbedAuthor(name, url, iconURL)
	return eb
}

// AddField appends a field to the embed. Insertion order is preserved.
func (eb *EmbedBuilder) AddField(name, value string, inline bool) *EmbedBuilder {
	eb.embed.Fields = append(eb.embed.Fields, NewEmbedField(name, value, inline))
	return eb
}

// RemoveField removes the field at the given index.
func (eb *EmbedBuilder) RemoveField(index int) error {
	if index < 0 || index >= len(eb.embed.Fields) {
		return NewValidationError("field_index", index, "field index out of range")
	}
	eb.embed.Fields = append(eb.embed.Fields[:index], eb.embed.Fields[index+1:]...)
	return nil
}

// Fields returns the current embed fields.
func (eb *EmbedBuilder) Fields() []EmbedField {
	return eb.embed.Fields
}

// Validate validates the current embed against Discord's length limits.
func (eb *EmbedBuilder) Validate() error {
	if eb.err != nil {
		return eb.err
	}
	return eb.validator.ValidateEmbed(eb.embed)
}

// Build returns the constructed embed together with the first input error
// recorded by a setter, if any. Length limits are not enforced here; call
// Validate to apply them.
func (eb *EmbedBuilder) Build() (Embed, error) {
	if eb.err != nil {
		return Embed{}, eb.err
	}
	return eb.embed, nil
}

func (eb *EmbedBuilder) recordErr(err error) {
	if eb.err == nil {
		eb.err = err
	}
}
