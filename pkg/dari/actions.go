package dari

import (
	"context"
	"net/http"
	"time"
)

// singleActionTimeout bounds run-action calls, which routinely outlast the
// client-wide default while the agent drives the browser.
const singleActionTimeout = 120 * time.Second

// RunSingleActionOptions carries the optional fields for RunSingleAction.
// Nil fields are omitted from the request body.
type RunSingleActionOptions struct {
	// SessionID targets an existing session. When absent the service
	// auto-creates a short-lived one for the action.
	SessionID *string
	// ID caches the step instance under a stable identifier.
	ID *string
	// Variables are substituted into the action.
	Variables map[string]any
	// ScreenConfig applies only when the session is auto-created.
	ScreenConfig map[string]any
	// SetCache controls whether the result is cached.
	SetCache *bool
}

// RunSingleAction executes one discrete browser action with the Computer
// Use agent. The response carries success, result, credits, error, and
// cache info.
func (c *Client) RunSingleAction(ctx context.Context, action string, opts *RunSingleActionOptions) (map[string]any, error) {
	body := map[string]any{"action": action}
	if opts != nil {
		setString(body, "session_id", opts.SessionID)
		setString(body, "id", opts.ID)
		setMap(body, "variables", opts.Variables)
		setMap(body, "screen_config", opts.ScreenConfig)
		setBool(body, "set_cache", opts.SetCache)
	}
	return c.doObject(ctx, requestSpec{
		method:  http.MethodPost,
		path:    "/public/single-actions/run-action",
		body:    body,
		timeout: singleActionTimeout,
	})
}
