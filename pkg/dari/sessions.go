package dari

import (
	"context"
	"net/http"
	"strconv"
)

// CreateSessionOptions carries the optional fields for CreateSession.
// Nil fields are omitted from the request body.
type CreateSessionOptions struct {
	// CDPURL attaches an external CDP endpoint (bring your own browser).
	CDPURL *string
	// ScreenConfig sets the viewport (width, height).
	ScreenConfig map[string]any
	// TTL is the session time-to-live in seconds. The service caps it at
	// 86400 (24 hours).
	TTL *int
	// Metadata attaches custom key-value data to the session.
	Metadata map[string]any
}

// CreateSession creates a managed browser session. The response carries
// session_id, cdp_url, screen_config, status, expires_at, metadata, and
// timestamps.
func (c *Client) CreateSession(ctx context.Context, opts *CreateSessionOptions) (map[string]any, error) {
	body := map[string]any{}
	if opts != nil {
		setString(body, "cdp_url", opts.CDPURL)
		setMap(body, "screen_config", opts.ScreenConfig)
		setInt(body, "ttl", opts.TTL)
		setMap(body, "metadata", opts.Metadata)
	}
	return c.doObject(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/public/sessions",
		body:   body,
	})
}

// GetSession returns details of a specific session.
func (c *Client) GetSession(ctx context.Context, sessionID string) (map[string]any, error) {
	return c.doObject(ctx, requestSpec{
		method: http.MethodGet,
		path:   "/public/sessions/" + sessionID,
	})
}

// ListSessionsOptions carries the optional query parameters for
// ListSessions. Nil fields are omitted from the query string.
type ListSessionsOptions struct {
	// StatusFilter restricts results to sessions in the given status.
	StatusFilter *string
	// Limit caps the number of sessions returned.
	Limit *int
	// Offset skips past the first n sessions.
	Offset *int
}

// ListSessions lists sessions in the workspace. The response carries the
// sessions list and total count.
func (c *Client) ListSessions(ctx context.Context, opts *ListSessionsOptions) (map[string]any, error) {
	var query map[string]string
	if opts != nil {
		query = map[string]string{}
		if opts.StatusFilter != nil {
			query["status_filter"] = *opts.StatusFilter
		}
		if opts.Limit != nil {
			query["limit"] = strconv.Itoa(*opts.Limit)
		}
		if opts.Offset != nil {
			query["offset"] = strconv.Itoa(*opts.Offset)
		}
	}
	return c.doObject(ctx, requestSpec{
		method: http.MethodGet,
		path:   "/public/sessions",
		query:  query,
	})
}

// UpdateSessionOptions carries the optional fields for UpdateSession.
// Nil fields are omitted from the request body, distinguishing "leave
// unchanged" from "explicitly cleared".
type UpdateSessionOptions struct {
	// TTL extends the session expiration, in seconds from now.
	TTL *int
	// Metadata is merged with the session's existing metadata.
	Metadata map[string]any
}

// UpdateSession updates a session's TTL or metadata.
func (c *Client) UpdateSession(ctx context.Context, sessionID string, opts *UpdateSessionOptions) (map[string]any, error) {
	body := map[string]any{}
	if opts != nil {
		setInt(body, "ttl", opts.TTL)
		setMap(body, "metadata", opts.Metadata)
	}
	return c.doObject(ctx, requestSpec{
		method: http.MethodPatch,
		path:   "/public/sessions/" + sessionID,
		body:   body,
	})
}

// TerminateSession terminates a session, stopping its browser.
func (c *Client) TerminateSession(ctx context.Context, sessionID string) error {
	_, err := c.do(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/public/sessions/" + sessionID + "/terminate",
	})
	return err
}

// DeleteSession deletes a session record.
func (c *Client) DeleteSession(ctx context.Context, sessionID string) error {
	_, err := c.do(ctx, requestSpec{
		method: http.MethodDelete,
		path:   "/public/sessions/" + sessionID,
	})
	return err
}
