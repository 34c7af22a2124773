package adapter

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/craftcloud/configurator-api/internal/logger"
)

// HTTPClient defines an interface for HTTP client operations to enable mocking
//
//go:generate mockgen -source=http.go -destination=../mocks/http.go -package=mocks -mock_names=HTTPClient=MockHTTPClient
type HTTPClient interface {
	// Get performs a GET request and returns the response body
	Get(ctx context.Context, url string, headers map[string]string) ([]byte, error)

	// Post performs a POST request with the given body and returns the response body
	Post(ctx context.Context, url string, contentType string, body io.Reader, headers map[string]string) ([]byte, error)

	// Put performs a PUT request with the given body and returns the response body
	Put(ctx context.Context, url string, contentType string, body io.Reader, headers map[string]string) ([]byte, error)

	// Delete performs a DELETE request and returns the response body
	Delete(ctx context.Context, url string, headers map[string]string) ([]byte, error)
}

// RealHTTPClient implements HTTPClient using the standard http package
type RealHTTPClient struct {
	client *http.Client
}

// NewHTTPClient creates a new real HTTP client
func NewHTTPClient(timeout time.Duration) HTTPClient {
	return &RealHTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// doWithRetry executes an HTTP request with exponential backoff retry for
// rate limiting and transient network failures. The request body is held
// as bytes so every attempt sends a fresh reader.
func (c *RealHTTPClient) doWithRetry(ctx context.Context, method, url, contentType string, payload []byte, headers map[string]string) ([]byte, error) {
	var respBody []byte

	operation := func() error {
		var bodyReader io.Reader
		if payload != nil {
			bodyReader = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
		}
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		for key, value := range headers {
			req.Header.Set(key, value)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			// Network errors are retryable
			return fmt.Errorf("failed to perform request: %w", err)
		}
		defer func() {
			if err := resp.Body.Close(); err != nil {
				logger.Warn("failed to close response body", zap.Error(err), zap.String("url", url))
			}
		}()

		// Handle rate limiting - retry with backoff
		if resp.StatusCode == http.StatusTooManyRequests {
			logger.Warn("rate limited, retrying with backoff", zap.String("url", url))
			return fmt.Errorf("rate limited (429), retrying")
		}

		// Other non-2xx status codes are permanent errors
		if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
			body, _ := io.ReadAll(resp.Body)
			return backoff.Permanent(fmt.Errorf("unexpected status code %d: %s", resp.StatusCode, string(body)))
		}

		respBody, err = io.ReadAll(resp.Body)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("failed to read response body: %w", err))
		}

		return nil
	}

	// Configure exponential backoff
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 2 * time.Second
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 1 * time.Minute
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("request failed after retries: %w", err)
	}

	return respBody, nil
}

// Get performs a GET request and returns the response body
func (c *RealHTTPClient) Get(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	return c.doWithRetry(ctx, http.MethodGet, url, "", nil, headers)
}

// Post performs a POST request with the given body and returns the response body
func (c *RealHTTPClient) Post(ctx context.Context, url string, contentType string, body io.Reader, headers map[string]string) ([]byte, error) {
	payload, err := readPayload(body)
	if err != nil {
		return nil, err
	}
	return c.doWithRetry(ctx, http.MethodPost, url, contentType, payload, headers)
}

// Put performs a PUT request with the given body and returns the response body
func (c *RealHTTPClient) Put(ctx context.Context, url string, contentType string, body io.Reader, headers map[string]string) ([]byte, error) {
	payload, err := readPayload(body)
	if err != nil {
		return nil, err
	}
	return c.doWithRetry(ctx, http.MethodPut, url, contentType, payload, headers)
}

// Delete performs a DELETE request and returns the response body
func (c *RealHTTPClient) Delete(ctx context.Context, url string, headers map[string]string) ([]byte, error) {
	return c.doWithRetry(ctx, http.MethodDelete, url, "", nil, headers)
}

func readPayload(body io.Reader) ([]byte, error) {
	if body == nil {
		return nil, nil
	}
	payload, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	return payload, nil
}
