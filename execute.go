package discohook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aleister1102/discohook/internal/httpclient"
)

// ExecuteResult carries the outcome of an ExecuteAsync call.
type ExecuteResult struct {
	Responses []*Response
	Err       error
}

// Execute sends the current message to every configured destination URL in
// order. It returns one response per destination, aligned with the
// destination list.
//
// A 200/204 response is a success. When rate-limit retry is enabled a 429
// response is waited out (retry_after from the body plus a safety margin)
// and the request is resent until a non-429 status arrives. Any other
// non-success status is logged with its body and recorded in the returned
// responses; it does not produce an error. Transport-level failures abort
// the destination loop and are returned together with the responses
// collected so far.
func (w *Webhook) Execute(ctx context.Context) ([]*Response, error) {
	return w.ExecuteAndClear(ctx, false, false)
}

// ExecuteAndClear behaves like Execute and additionally clears the queued
// embeds and/or files once all destinations have been attempted, regardless
// of per-destination success or failure.
func (w *Webhook) ExecuteAndClear(ctx context.Context, clearEmbeds, clearFiles bool) ([]*Response, error) {
	client, err := w.newHTTPClient()
	if err != nil {
		return nil, err
	}
	defer client.CloseIdleConnections()

	log := w.logger.With().Str("execution_id", uuid.NewString()).Logger()
	limiter := httpclient.NewRateLimitHandler(log)

	responses := make([]*Response, 0, len(w.urls))
	for i, destURL := range w.urls {
		resp, err := w.deliver(ctx, client, limiter, log, destURL, i)
		if err != nil {
			return responses, err
		}
		responses = append(responses, resp)
	}

	if clearEmbeds {
		w.ClearEmbeds()
	}
	if clearFiles {
		w.ClearFiles()
	}
	return responses, nil
}

// ExecuteAsync runs the same sequential destination loop as ExecuteAndClear
// in its own goroutine and delivers the result on the returned channel.
// Destination order, rate-limit retries and logging stay deterministic;
// every network wait and backoff sleep honors ctx cancellation, and the
// connection context scoped to the call is released on all exit paths.
func (w *Webhook) ExecuteAsync(ctx context.Context, clearEmbeds, clearFiles bool) <-chan ExecuteResult {
	ch := make(chan ExecuteResult, 1)
	go func() {
		defer close(ch)
		responses, err := w.ExecuteAndClear(ctx, clearEmbeds, clearFiles)
		ch <- ExecuteResult{Responses: responses, Err: err}
	}()
	return ch
}

// deliver sends the message to one destination, waiting out rate limits when
// configured to.
func (w *Webhook) deliver(ctx context.Context, client *httpclient.HTTPClient, limiter *httpclient.RateLimitHandler, log zerolog.Logger, destURL string, index int) (*Response, error) {
	resp, err := w.sendPayload(ctx, client, http.MethodPost, destURL)
	if err != nil {
		return nil, err
	}

	for resp.StatusCode == http.StatusTooManyRequests && w.rateLimitRetry {
		if waitErr := limiter.WaitForRetry(ctx, resp.Body, destURL); waitErr != nil {
			return nil, waitErr
		}
		resp, err = w.sendPayload(ctx, client, http.MethodPost, destURL)
		if err != nil {
			return nil, err
		}
	}

	w.logResult(log, resp, index, "Webhook executed")
	return resp, nil
}

// sendPayload issues one request carrying the current message payload: a JSON
// body with wait=true when no files are queued, otherwise a multipart body
// with a payload_json part plus one part per file. The multipart body is
// assembled fresh for every request and never mutates webhook state.
func (w *Webhook) sendPayload(ctx context.Context, client *httpclient.HTTPClient, method, destURL string) (*Response, error) {
	payloadJSON, err := json.Marshal(w.BuildPayload())
	if err != nil {
		return nil, WrapError(err, "failed to marshal message payload")
	}

	var (
		reqURL      = destURL
		reqBody     io.Reader
		contentType string
	)

	if len(w.files) == 0 {
		reqURL = withWaitParam(destURL)
		reqBody = bytes.NewReader(payloadJSON)
		contentType = "application/json"
	} else {
		buf := &bytes.Buffer{}
		writer := multipart.NewWriter(buf)
		if err := writer.WriteField("payload_json", string(payloadJSON)); err != nil {
			return nil, WrapError(err, "failed to write payload_json to multipart body")
		}
		for i, file := range w.files {
			part, err := writer.CreateFormFile(fmt.Sprintf("file[%d]", i), file.Name)
			if err != nil {
				return nil, WrapError(err, "failed to create form file")
			}
			if _, err := part.Write(file.Content); err != nil {
				return nil, WrapError(err, "failed to write file content to multipart body")
			}
		}
		if err := writer.Close(); err != nil {
			return nil, WrapError(err, "failed to close multipart writer")
		}
		reqBody = buf
		contentType = writer.FormDataContentType()
	}

	resp, err := client.Do(&httpclient.HTTPRequest{
		URL:     reqURL,
		Method:  method,
		Headers: map[string]string{"Content-Type": contentType},
		Body:    reqBody,
		Context: ctx,
	})
	if err != nil {
		return nil, err
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Body:       resp.Body,
		URL:        stripQuery(destURL),
	}, nil
}

// newHTTPClient builds the transport scoped to one execute/edit/delete call.
func (w *Webhook) newHTTPClient() (*httpclient.HTTPClient, error) {
	return httpclient.NewHTTPClientBuilder(w.logger).
		WithTimeout(w.timeout).
		WithProxy(w.proxy).
		Build()
}

func (w *Webhook) logResult(log zerolog.Logger, resp *Response, index int, action string) {
	if resp.OK() {
		log.Debug().
			Str("url", resp.URL).
			Int("index", index+1).
			Msg(action)
		return
	}
	log.Error().
		Str("url", resp.URL).
		Int("index", index+1).
		Int("status_code", resp.StatusCode).
		Str("response_body", string(resp.Body)).
		Msg("Webhook request failed")
}

// withWaitParam appends wait=true so the API returns the created message body.
func withWaitParam(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	query := parsed.Query()
	query.Set("wait", "true")
	parsed.RawQuery = query.Encode()
	return parsed.String()
}
