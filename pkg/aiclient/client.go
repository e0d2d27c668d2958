// Package aiclient is a thin HTTP client for the external generative
// service that arranges page layouts and synthesizes speech. Responses are
// passed through as opaque payloads; interpretation belongs to the caller.
package aiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client wraps the AI service HTTP API with convenience methods
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a new AI service client
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type arrangeRequest struct {
	Template string `json:"template"`
	Device   string `json:"device"`
}

type ttsRequest struct {
	Message string `json:"message"`
}

type ttsResponse struct {
	AudioDataURI string `json:"audio_data_uri"`
}

// ArrangeLayout asks the service to arrange page elements for a template.
// The returned JSON is not interpreted here; the caller validates it.
func (c *Client) ArrangeLayout(ctx context.Context, template, device string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.post(ctx, "/v1/arrange", arrangeRequest{Template: template, Device: device}, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// Synthesize converts a message to speech and returns the audio data URI
func (c *Client) Synthesize(ctx context.Context, message string) (string, error) {
	var resp ttsResponse
	if err := c.post(ctx, "/v1/tts", ttsRequest{Message: message}, &resp); err != nil {
		return "", err
	}
	if resp.AudioDataURI == "" {
		return "", fmt.Errorf("tts response missing audio payload")
	}
	return resp.AudioDataURI, nil
}

func (c *Client) post(ctx context.Context, path string, body, dest interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		msg, readErr := io.ReadAll(io.LimitReader(res.Body, 4096))
		if readErr != nil {
			return fmt.Errorf("ai service error [%s]", res.Status)
		}
		return fmt.Errorf("ai service error [%s]: %s", res.Status, string(msg))
	}

	return json.NewDecoder(res.Body).Decode(dest)
}
