package httpclient

import (
	"context"
	"net/http"
)

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
	Header() http.Header
}

// Client abstracts HTTP execution so callers can inject mocks or tuned
// transports. Implementations JSON-encode a non-nil body, return an error
// only for transport-level failures, and hand back every HTTP response
// (including status >= 400) as a Response.
type Client interface {
	Execute(ctx context.Context, method, url string, body any, query map[string]string, headers map[string]string) (Response, error)
}
