package discohook

import (
	"encoding/json"
	"net/http"
	"net/url"
)

// Response captures the outcome of a single webhook request against one
// destination URL. A successful execute response doubles as the sent-message
// handle consumed by EditMessage and DeleteMessage: the body carries the
// created message id and URL is the destination with query parameters
// stripped. The library does not retain responses; callers must keep the
// handle if they intend to edit or delete the message later.
type Response struct {
	StatusCode int
	Body       []byte
	URL        string
}

// OK reports whether the request succeeded (HTTP 200 or 204).
func (r *Response) OK() bool {
	return r.StatusCode == http.StatusOK || r.StatusCode == http.StatusNoContent
}

// MessageID parses the created message id from the response body. A body
// without an id field is a hard error: edit and delete must never address a
// guessed message.
func (r *Response) MessageID() (string, error) {
	var message struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(r.Body, &message); err != nil {
		return "", WrapError(err, "failed to parse sent message body")
	}
	if message.ID == "" {
		return "", NewValidationError("id", string(r.Body), "sent message body has no id field")
	}
	return message.ID, nil
}

// stripQuery removes query parameters and fragment from a URL so it can be
// used to address the created message.
func stripQuery(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	parsed.RawQuery = ""
	parsed.Fragment = ""
	return parsed.String()
}
