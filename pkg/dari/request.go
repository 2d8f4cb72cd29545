package dari

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// requestSpec is the input to the dispatcher: one fully described API call.
type requestSpec struct {
	method  string
	path    string // relative to the base URL, or an absolute http(s) URL
	body    map[string]any
	query   map[string]string
	headers map[string]string // caller overrides, highest precedence
	noAuth  bool              // drop the API-key header (resume URLs)
	timeout time.Duration     // per-call override, zero means client default
}

// do is the single choke point for every network call: URL resolution,
// header assembly, timeout handling, and response classification. It does
// not log, retry, cache, or mutate client state.
func (c *Client) do(ctx context.Context, spec requestSpec) (any, error) {
	if c.closed.Load() {
		return nil, &Error{Kind: KindConfig, Message: "client is closed"}
	}

	url := spec.path
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		url = c.baseURL + spec.path
	}

	headers := make(map[string]string, len(c.defaultHeaders)+len(spec.headers)+1)
	for k, v := range c.defaultHeaders {
		headers[k] = v
	}
	if spec.noAuth {
		delete(headers, apiKeyHeader)
	}
	for k, v := range spec.headers {
		headers[k] = v
	}
	if spec.body != nil {
		if _, ok := headers["Content-Type"]; !ok {
			headers["Content-Type"] = "application/json"
		}
	}

	timeout := c.timeout
	if spec.timeout > 0 {
		timeout = spec.timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var body any
	if spec.body != nil {
		body = spec.body
	}

	resp, err := c.http.Execute(ctx, spec.method, url, body, spec.query, headers)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Message: err.Error()}
	}

	status := resp.StatusCode()
	raw := resp.Body()
	if status >= 400 {
		return nil, apiError(status, raw)
	}
	if status == http.StatusNoContent || len(raw) == 0 {
		return nil, nil
	}
	if strings.Contains(resp.Header().Get("Content-Type"), "application/json") {
		var decoded any
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return nil, &Error{
				Kind:       KindDecode,
				Message:    "invalid JSON received from dari",
				StatusCode: status,
				Body:       raw,
			}
		}
		return decoded, nil
	}
	return string(raw), nil
}

// doObject narrows do to endpoints whose success payload is a JSON object.
func (c *Client) doObject(ctx context.Context, spec requestSpec) (map[string]any, error) {
	result, err := c.do(ctx, spec)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, nil
	}
	obj, ok := result.(map[string]any)
	if !ok {
		return nil, &Error{Kind: KindDecode, Message: "expected a JSON object from dari"}
	}
	return obj, nil
}

// Payload helpers. Optional parameters are carried as pointers; a nil
// pointer means the key is omitted from the payload entirely, never sent
// as an explicit null.

func setString(m map[string]any, key string, v *string) {
	if v != nil {
		m[key] = *v
	}
}

func setInt(m map[string]any, key string, v *int) {
	if v != nil {
		m[key] = *v
	}
}

func setBool(m map[string]any, key string, v *bool) {
	if v != nil {
		m[key] = *v
	}
}

func setMap(m map[string]any, key string, v map[string]any) {
	if v != nil {
		m[key] = v
	}
}
