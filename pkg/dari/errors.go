package dari

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorKind discriminates failure classes so callers can branch without
// inspecting message strings.
type ErrorKind string

const (
	// KindConfig marks construction and usage errors: empty API key,
	// calls on a closed client. No network activity took place.
	KindConfig ErrorKind = "config"
	// KindTransport marks network-level failures (connection refused,
	// DNS, deadline expiry). No status code is available.
	KindTransport ErrorKind = "transport"
	// KindAPI marks responses with HTTP status >= 400.
	KindAPI ErrorKind = "api"
	// KindDecode marks responses that declared JSON but did not parse.
	KindDecode ErrorKind = "decode"
)

// Error is the uniform failure type returned by every client method.
type Error struct {
	Kind       ErrorKind
	Message    string
	StatusCode int    // zero for config and transport errors
	Body       []byte // raw response body for api and decode errors
}

func (e *Error) Error() string { return e.Message }

// apiError builds a KindAPI error from a status code and raw response body.
func apiError(status int, body []byte) *Error {
	return &Error{
		Kind:       KindAPI,
		Message:    apiErrorMessage(status, body),
		StatusCode: status,
		Body:       body,
	}
}

// apiErrorMessage extracts a human-readable message from an error response.
// The first non-empty of the JSON body's detail, error, and message fields
// wins; non-JSON bodies fall back to a status-coded message carrying the
// body text, JSON bodies without those fields to the bare status message.
func apiErrorMessage(status int, body []byte) string {
	var decoded any
	if err := json.Unmarshal(body, &decoded); err != nil {
		return fmt.Sprintf("dari request failed with status %d: %s", status, strings.TrimSpace(string(body)))
	}
	if payload, ok := decoded.(map[string]any); ok {
		for _, key := range []string{"detail", "error", "message"} {
			if msg := fieldString(payload[key]); msg != "" {
				return msg
			}
		}
	}
	return fmt.Sprintf("dari request failed with status %d", status)
}

func fieldString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprintf("%v", s)
	}
}
