package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/robgonnella/yunmon/internal/logger"
)

// HTTPTransport implements the Transport interface using json over http
type HTTPTransport struct {
	url    string
	client *http.Client
	log    logger.Logger
}

// NewHTTPTransport returns a new instance of HTTPTransport
func NewHTTPTransport(url string, timeout time.Duration) *HTTPTransport {
	return &HTTPTransport{
		url:    url,
		client: &http.Client{Timeout: timeout},
		log:    logger.New().With("http-transport"),
	}
}

// Call posts the request to the configured url and decodes the reply
func (t *HTTPTransport) Call(ctx context.Context, req *Request) (*Response, error) {
	body, err := json.Marshal(req)

	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(body))

	if err != nil {
		return nil, err
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	resp, err := t.client.Do(httpReq)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		return nil, err
	}

	res := &Response{}

	if len(bytes.TrimSpace(data)) == 0 {
		return res, nil
	}

	if err := json.Unmarshal(data, res); err != nil {
		t.log.Warn().
			Err(err).
			Str("operation", string(req.Method)).
			Msg("failed to decode response body")

		return &Response{}, nil
	}

	return res, nil
}

// Close releases idle connections
func (t *HTTPTransport) Close() error {
	t.client.CloseIdleConnections()
	return nil
}
