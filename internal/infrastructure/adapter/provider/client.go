package provider

import (
	"bytes"
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
)

const (
	maxResponseBytes = 1 << 20
	userAgent        = "credit-ledger/1.0"
)

// NewHTTPClient returns the client shared by the JSON providers
func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

// apiClient issues JSON calls against one provider API and wraps every failure in a ProviderError
type apiClient struct {
	name      string
	baseURL   string
	http      *http.Client
	logger    coreport.Logger
	authorize func(req *http.Request)
}

func newAPIClient(name, baseURL string, client *http.Client, logger coreport.Logger, authorize func(*http.Request)) *apiClient {
	return &apiClient{
		name:      name,
		baseURL:   strings.TrimRight(baseURL, "/"),
		http:      client,
		logger:    logger,
		authorize: authorize,
	}
}

// doJSON sends in as the JSON body (nil for none) and decodes a 2xx response into out
func (c *apiClient) doJSON(ctx context.Context, operation, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return errs.NewProviderError(c.name, operation, 0, "", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return errs.NewProviderError(c.name, operation, 0, "", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.authorize != nil {
		c.authorize(req)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return errs.NewProviderError(c.name, operation, 0, "", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return errs.NewProviderError(c.name, operation, resp.StatusCode, "", err)
	}

	c.logger.Debug("Provider call completed", map[string]any{
		"provider":    c.name,
		"operation":   operation,
		"status_code": resp.StatusCode,
		"duration_ms": time.Since(start).Milliseconds(),
	})

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.NewProviderError(c.name, operation, resp.StatusCode, string(raw), fmt.Errorf("unexpected status %s", resp.Status))
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errs.NewProviderError(c.name, operation, resp.StatusCode, string(raw), fmt.Errorf("malformed response: %w", err))
	}
	return nil
}

// tokenMatches compares a shared webhook secret in constant time. An unset secret never matches.
func tokenMatches(expected, got string) bool {
	if expected == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(got)) == 1
}
