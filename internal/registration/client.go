package registration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
)

// DefaultEndpointURL is used when no endpoint is configured.
const DefaultEndpointURL = "https://your-backend-api-url.com/register"

// Payload is built fresh for every submission and never retained.
type Payload struct {
	Username string `json:"username" form:"username"`
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type Config struct {
	EndpointURL string `mapstructure:"endpoint_url"`
}

// HTTPDoer executes HTTP requests. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Submitter sends one registration payload.
type Submitter interface {
	Submit(ctx context.Context, payload Payload) error
}

type Client struct {
	httpClient  HTTPDoer
	endpointURL string
}

// NewClient returns a client posting to endpointURL. A nil doer means an
// http.Client without a timeout, leaving deadlines to the transport.
func NewClient(endpointURL string, doer HTTPDoer) *Client {
	if doer == nil {
		doer = &http.Client{}
	}
	if endpointURL == "" {
		endpointURL = DefaultEndpointURL
	}
	return &Client{
		httpClient:  doer,
		endpointURL: endpointURL,
	}
}

func (c *Client) EndpointURL() string {
	return c.endpointURL
}

// Submit posts the payload once. Any 2xx is success; everything else is a
// *RequestFailure. The response body is drained and ignored.
func (c *Client) Submit(ctx context.Context, payload Payload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return &RequestFailure{Err: fmt.Errorf("failed to encode payload: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL, bytes.NewReader(body))
	if err != nil {
		return &RequestFailure{Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")

	slog.Debug("Submitting registration", "url", c.endpointURL, "username", payload.Username)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &RequestFailure{Err: fmt.Errorf("failed to execute request: %w", err)}
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)

	slog.Debug("Received registration response", "url", c.endpointURL, "status_code", resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestFailure{StatusCode: resp.StatusCode}
	}
	return nil
}
