package momo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	errs "github.com/amirhossein-jamali/momo-gateway/internal/domain/error"
	"github.com/sony/gobreaker"
)

// maxResponseBytes caps how much of a provider response is read
const maxResponseBytes = 1 << 20

// redactedKeys are response fields whose values never reach the logs
var redactedKeys = map[string]bool{
	"access_token":  true,
	"apiKey":        true,
	"token":         true,
	"refresh_token": true,
}

// response is a provider answer as seen by the client
type response struct {
	StatusCode int
	Body       map[string]any
}

// serverError marks 5xx answers so the breaker counts them as failures
type serverError struct {
	statusCode int
}

func (e *serverError) Error() string {
	return fmt.Sprintf("provider answered %d", e.statusCode)
}

// call performs one provider request through the circuit breaker and writes
// the audit entry. 4xx answers are returned as responses, not errors.
func (c *Client) call(
	ctx context.Context,
	verb string,
	location string,
	headers map[string]string,
	body any,
) (*response, error) {
	url := c.baseURL + location
	start := c.timeProvider.Now()

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.send(ctx, verb, url, headers, body)
	})

	resp, _ := result.(*response)
	var srvErr *serverError
	if errors.As(err, &srvErr) {
		err = nil
	}

	fields := map[string]any{
		"verb":        verb,
		"location":    url,
		"duration_ms": c.timeProvider.Since(start).Std().Milliseconds(),
	}
	if resp != nil {
		fields["status"] = resp.StatusCode
		fields["result"] = redact(resp.Body)
	}
	if err != nil {
		fields["error"] = err.Error()
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			fields["breaker"] = c.breaker.State().String()
		}
		c.logger.Warn("Provider request failed", fields)
		return nil, &errs.ProviderError{Operation: location, Err: err}
	}

	c.logger.Info("Provider request", fields)
	return resp, nil
}

func (c *Client) send(ctx context.Context, verb, url string, headers map[string]string, body any) (*response, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, verb, url, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	httpResp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	resp := &response{StatusCode: httpResp.StatusCode, Body: decodeBody(raw)}
	if httpResp.StatusCode >= http.StatusInternalServerError {
		return resp, &serverError{statusCode: httpResp.StatusCode}
	}
	return resp, nil
}

// decodeBody decodes a JSON object body; anything else is kept as a message
func decodeBody(raw []byte) map[string]any {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return nil
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		msg := string(raw)
		if len(msg) > 256 {
			msg = msg[:256]
		}
		return map[string]any{"message": msg}
	}
	return decoded
}

// redact returns a copy of body with credential values masked
func redact(body map[string]any) map[string]any {
	if body == nil {
		return nil
	}
	out := make(map[string]any, len(body))
	for k, v := range body {
		switch {
		case redactedKeys[k]:
			out[k] = "[REDACTED]"
		default:
			if nested, ok := v.(map[string]any); ok {
				out[k] = redact(nested)
			} else {
				out[k] = v
			}
		}
	}
	return out
}
