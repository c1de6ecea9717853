package discohook

// Embed represents a Discord embed object.
type Embed struct {
	Title       string          `json:"title,omitempty"`       // Title of embed
	Description string          `json:"description,omitempty"` // Description of embed
	URL         string          `json:"url,omitempty"`         // URL of embed
	Timestamp   string          `json:"timestamp,omitempty"`   // ISO8601 timestamp
	Color       *int            `json:"color,omitempty"`       // Color code of the embed (0x000000 is a valid color, hence the pointer)
	Footer      *EmbedFooter    `json:"footer,omitempty"`
	Image       *EmbedImage     `json:"image,omitempty"`
	Thumbnail   *EmbedThumbnail `json:"thumbnail,omitempty"`
	Video       *EmbedVideo     `json:"video,omitempty"`
	Provider    *EmbedProvider  `json:"provider,omitempty"`
	Author      *EmbedAuthor    `json:"author,omitempty"`
	Fields      []EmbedField    `json:"fields,omitempty"` // Array of embed field objects
}

// IsEmpty reports whether no attribute of the embed has been set.
func (e Embed) IsEmpty() bool {
	return e.Title == "" &&
		e.Description == "" &&
		e.URL == "" &&
		e.Timestamp == "" &&
		e.Color == nil &&
		e.Footer == nil &&
		e.Image == nil &&
		e.Thumbnail == nil &&
		e.Video == nil &&
		e.Provider == nil &&
		e.Author == nil &&
		len(e.Fields) == 0
}

// EmbedFooter represents the footer of an embed.
type EmbedFooter struct {
	Text         string `json:"text"`                     // Footer text
	IconURL      string `json:"icon_url,omitempty"`       // URL of footer icon (only supports http(s) and attachments)
	ProxyIconURL string `json:"proxy_icon_url,omitempty"` // Proxied URL of footer icon
}

// NewEmbedFooter creates a new embed footer.
func NewEmbedFooter(text, iconURL string) *EmbedFooter {
	return &EmbedFooter{
		Text:    text,
		IconURL: iconURL,
	}
}

// EmbedImage represents the image of an embed.
type EmbedImage struct {
	URL      string `json:"url"`                 // Source URL of image (only supports http(s) and attachments)
	ProxyURL string `json:"proxy_url,omitempty"` // Proxied URL of the image
	Height   int    `json:"height,omitempty"`    // Height of image
	Width    int    `json:"width,omitempty"`     // Width of image
}

// NewEmbedImage creates a new embed image.
func NewEmbedImage(url string) *EmbedImage {
	return &EmbedImage{URL: url}
}

// EmbedThumbnail represents the thumbnail of an embed.
type EmbedThumbnail struct {
	URL      string `json:"url"`                 // Source URL of thumbnail (only supports http(s) and attachments)
	ProxyURL string `json:"proxy_url,omitempty"` // Proxied URL of the thumbnail
	Height   int    `json:"height,omitempty"`    // Height of thumbnail
	Width    int    `json:"width,omitempty"`     // Width of thumbnail
}

// NewEmbedThumbnail creates a new embed thumbnail.
func NewEmbedThumbnail(url string) *EmbedThumbnail {
	return &EmbedThumbnail{URL: url}
}

// EmbedVideo represents the video of an embed.
type EmbedVideo struct {
	URL    string `json:"url,omitempty"`    // Source URL of video
	Height int    `json:"height,omitempty"` // Height of video
	Width  int    `json:"width,omitempty"`  // Width of video
}

// NewEmbedVideo creates a new embed video.
func NewEmbedVideo(url string) *EmbedVideo {
	return &EmbedVideo{URL: url}
}

// EmbedProvider represents the provider of an embed.
type EmbedProvider struct {
	Name string `json:"name,omitempty"` // Name of provider
	URL  string `json:"url,omitempty"`  // URL of provider
}

// NewEmbedProvider creates a new embed provider.
func NewEmbedProvider(name, url string) *EmbedProvider {
	return &EmbedProvider{
		Name: name,
		URL:  url,
	}
}

// EmbedAuthor represents the author of an embed.
type EmbedAuthor struct {
	Name         string `json:"name"`                     // Name of author
	URL          string `json:"url,omitempty"`            // URL of author (only supports http(s))
	IconURL      string `json:"icon_url,omitempty"`       // URL of author icon (only supports http(s) and attachments)
	ProxyIconURL string `json:"proxy_icon_url,omitempty"` // Proxied URL of author icon
}

// NewEmbedAuthor creates a new embed author.
func NewEmbedAuthor(name, url, iconURL string) *EmbedAuthor {
	return &EmbedAuthor{
		Name:    name,
		URL:     url,
		IconURL: iconURL,
	}
}

// EmbedField represents a field in an embed.
type EmbedField struct {
	Name   string `json:"name"`             // Name of the field
	Value  string `json:"value"`            // Value of the field
	Inline bool   `json:"inline,omitempty"` // Whether or not this field should display inline
}

// NewEmbedField creates a new embed field.
func NewEmbedField(name, value string, inline bool) EmbedField {
	return EmbedField{
		Name:   name,
		Value:  value,
		Inline: inline,
	}
}
