package httpclient

import (
	"context"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// RestyClient adapts resty.Client to the httpclient.Client interface.
// Deadlines ride on the request context rather than a client-level timeout,
// so one shared instance serves calls with different time budgets.
type RestyClient struct {
	client *resty.Client
}

// NewRestyClient creates a new RestyClient backed by a fresh resty client.
func NewRestyClient() *RestyClient {
	return &RestyClient{client: resty.New()}
}

// NewRestyClientFrom wraps an existing resty.Client, for callers that need
// custom transports, proxies, or TLS settings.
func NewRestyClientFrom(c *resty.Client) *RestyClient {
	return &RestyClient{client: c}
}

// Execute performs an HTTP request with the given method, URL, body, query
// parameters, and headers. A non-nil body is serialized as JSON.
func (r *RestyClient) Execute(ctx context.Context, method, url string, body any, query map[string]string, headers map[string]string) (Response, error) {
	req := r.client.R().SetContext(ctx)
	if body != nil {
		req.SetBody(body)
	}
	if len(query) > 0 {
		req.SetQueryParams(query)
	}
	if len(headers) > 0 {
		req.SetHeaders(headers)
	}
	resp, err := req.Execute(method, url)
	if err != nil {
		return nil, err
	}
	return &restyResponseAdapter{resp: resp}, nil
}

// CloseIdleConnections releases pooled connections held by the underlying transport.
func (r *RestyClient) CloseIdleConnections() {
	r.client.GetClient().CloseIdleConnections()
}

// restyResponseAdapter adapts resty.Response to the httpclient.Response interface.
type restyResponseAdapter struct {
	resp *resty.Response
}

func (r *restyResponseAdapter) Body() []byte        { return r.resp.Body() }
func (r *restyResponseAdapter) StatusCode() int     { return r.resp.StatusCode() }
func (r *restyResponseAdapter) Header() http.Header { return r.resp.Header() }
