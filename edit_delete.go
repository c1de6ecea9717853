package discohook

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/aleister1102/discohook/internal/httpclient"
)

// EditMessage edits the messages created by prior Execute calls. Each handle
// must be a successful execute response: its body carries the created message
// id and its URL addresses the destination. The current webhook state becomes
// the new message content, serialized under the same JSON-or-multipart rule
// as Execute.
//
// A handle whose body cannot yield a message id is a hard error and aborts
// the loop. Non-success statuses are logged and recorded the same way Execute
// records them; 429 is not retried for edits.
func (w *Webhook) EditMessage(ctx context.Context, handles ...*Response) ([]*Response, error) {
	client, err := w.newHTTPClient()
	if err != nil {
		return nil, err
	}
	defer client.CloseIdleConnections()

	log := w.logger.With().Str("operation_id", uuid.NewString()).Logger()

	responses := make([]*Response, 0, len(handles))
	for i, handle := range handles {
		msgURL, err := messageURL(handle)
		if err != nil {
			return responses, err
		}
		resp, err := w.sendPayload(ctx, client, http.MethodPatch, msgURL)
		if err != nil {
			return responses, err
		}
		w.logResult(log, resp, i, "Webhook message edited")
		responses = append(responses, resp)
	}
	return responses, nil
}

// DeleteMessage deletes the messages created by prior Execute calls. The
// handle contract and error behavior match EditMessage; the request carries
// no body.
func (w *Webhook) DeleteMessage(ctx context.Context, handles ...*Response) ([]*Response, error) {
	client, err := w.newHTTPClient()
	if err != nil {
		return nil, err
	}
	defer client.CloseIdleConnections()

	log := w.logger.With().Str("operation_id", uuid.NewString()).Logger()

	responses := make([]*Response, 0, len(handles))
	for i, handle := range handles {
		msgURL, err := messageURL(handle)
		if err != nil {
			return responses, err
		}
		resp, err := client.Do(&httpclient.HTTPRequest{
			URL:     msgURL,
			Method:  http.MethodDelete,
			Context: ctx,
		})
		if err != nil {
			return responses, err
		}
		response := &Response{
			StatusCode: resp.StatusCode,
			Body:       resp.Body,
			URL:        msgURL,
		}
		w.logResult(log, response, i, "Webhook message deleted")
		responses = append(responses, response)
	}
	return responses, nil
}

// messageURL resolves the edit/delete address for a sent message handle:
// the destination URL with query parameters stripped, plus the message id
// parsed from the stored response body.
func messageURL(handle *Response) (string, error) {
	id, err := handle.MessageID()
	if err != nil {
		return "", WrapError(err, "cannot address sent message")
	}
	return stripQuery(handle.URL) + "/messages/" + id, nil
}
