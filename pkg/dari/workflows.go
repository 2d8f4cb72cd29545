package dari

import (
	"context"
	"net/http"
)

// StartWorkflowOptions carries the optional knobs for StartWorkflow.
// Nil fields are omitted from the request body.
type StartWorkflowOptions struct {
	// TimeoutMinutes caps the workflow execution time.
	TimeoutMinutes *int
	// ShouldUpdateCache controls whether the execution cache is updated.
	ShouldUpdateCache *bool
	// AllowPublicLiveView enables public live viewing of the execution.
	AllowPublicLiveView *bool
	// BrowserProfileID selects a browser profile for the execution.
	BrowserProfileID *string
	// UseProxy enables a proxy for browser sessions in this workflow.
	UseProxy *bool
	// ProxyCity selects the proxy location.
	ProxyCity *string
	// ProxyServer points at a custom proxy server URL.
	ProxyServer *string
	// ProxyServerUsername authenticates against a custom proxy server.
	ProxyServerUsername *string
	// ProxyServerPassword authenticates against a custom proxy server.
	ProxyServerPassword *string
	// UserAgent overrides the browser user agent for the execution.
	UserAgent *string
}

// StartWorkflow triggers a workflow execution with the provided input
// variables. The response carries the workflow_execution_id and status.
func (c *Client) StartWorkflow(ctx context.Context, workflowID string, inputVariables map[string]any, opts *StartWorkflowOptions) (map[string]any, error) {
	if inputVariables == nil {
		inputVariables = map[string]any{}
	}
	body := map[string]any{"input_variables": inputVariables}
	if opts != nil {
		setInt(body, "timeout_minutes", opts.TimeoutMinutes)
		setBool(body, "should_update_cache", opts.ShouldUpdateCache)
		setBool(body, "allow_public_live_view", opts.AllowPublicLiveView)
		setString(body, "browser_profile_id", opts.BrowserProfileID)
		setBool(body, "use_proxy", opts.UseProxy)
		setString(body, "proxy_city", opts.ProxyCity)
		setString(body, "proxy_server", opts.ProxyServer)
		setString(body, "proxy_server_username", opts.ProxyServerUsername)
		setString(body, "proxy_server_password", opts.ProxyServerPassword)
		setString(body, "user_agent", opts.UserAgent)
	}
	return c.doObject(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/public/workflows/start/" + workflowID,
		body:   body,
	})
}

// ListWorkflowExecutions returns executions for the given workflow.
func (c *Client) ListWorkflowExecutions(ctx context.Context, workflowID string) (map[string]any, error) {
	return c.doObject(ctx, requestSpec{
		method: http.MethodGet,
		path:   "/public/workflows/" + workflowID,
	})
}

// GetExecutionDetails fetches detailed information about a workflow execution.
func (c *Client) GetExecutionDetails(ctx context.Context, workflowID, executionID string) (map[string]any, error) {
	return c.doObject(ctx, requestSpec{
		method: http.MethodGet,
		path:   "/public/workflows/" + workflowID + "/executions/" + executionID,
	})
}

// ResumeWorkflow resumes a paused workflow using the pre-authenticated
// absolute resume URL from a webhook payload. The URL is used verbatim and
// the API-key header is not sent.
func (c *Client) ResumeWorkflow(ctx context.Context, resumeURL string, variables map[string]any) (map[string]any, error) {
	if variables == nil {
		variables = map[string]any{}
	}
	return c.doObject(ctx, requestSpec{
		method: http.MethodPost,
		path:   resumeURL,
		body:   map[string]any{"variables": variables},
		noAuth: true,
	})
}
