package dari

import (
	"context"
	"net/http"
)

// ListCredentials returns the saved browser credentials.
func (c *Client) ListCredentials(ctx context.Context) (any, error) {
	return c.do(ctx, requestSpec{
		method: http.MethodGet,
		path:   "/public/credentials",
	})
}

// CreateCredentialOptions carries the optional fields for CreateCredential.
// Nil fields are omitted from the request body.
type CreateCredentialOptions struct {
	UsernameOrEmail     *string
	Password            *string
	TOTPSecret          *string
	GmailOAuthAccountID *string
	PhoneNumberID       *string
}

// CreateCredential creates a new credential for the given service.
func (c *Client) CreateCredential(ctx context.Context, serviceName string, opts *CreateCredentialOptions) (map[string]any, error) {
	body := map[string]any{"service_name": serviceName}
	if opts != nil {
		setString(body, "username_or_email", opts.UsernameOrEmail)
		setString(body, "password", opts.Password)
		setString(body, "totp_secret", opts.TOTPSecret)
		setString(body, "gmail_oauth_account_id", opts.GmailOAuthAccountID)
		setString(body, "phone_number_id", opts.PhoneNumberID)
	}
	return c.doObject(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/public/credentials",
		body:   body,
	})
}

// ListConnectedAccounts returns the OAuth accounts associated with the workspace.
func (c *Client) ListConnectedAccounts(ctx context.Context) (any, error) {
	return c.do(ctx, requestSpec{
		method: http.MethodGet,
		path:   "/public/connected-accounts",
	})
}

// ListPhoneNumbers returns all phone numbers for the workspace.
func (c *Client) ListPhoneNumbers(ctx context.Context) (any, error) {
	return c.do(ctx, requestSpec{
		method: http.MethodGet,
		path:   "/public/phone-numbers",
	})
}

// PurchasePhoneNumber purchases a new phone number for the workspace.
func (c *Client) PurchasePhoneNumber(ctx context.Context, label string) (map[string]any, error) {
	return c.doObject(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/public/phone-numbers",
		body:   map[string]any{"label": label},
	})
}

// CreateBrowserProfileOptions carries the optional fields for
// CreateBrowserProfile. Nil fields are omitted from the request body.
type CreateBrowserProfileOptions struct {
	// Provider selects the browser provider backing the profile.
	Provider *string
}

// CreateBrowserProfile creates a browser profile that persists cookies,
// login sessions, and browser state across workflow executions.
func (c *Client) CreateBrowserProfile(ctx context.Context, name string, opts *CreateBrowserProfileOptions) (map[string]any, error) {
	body := map[string]any{"name": name}
	if opts != nil {
		setString(body, "provider", opts.Provider)
	}
	return c.doObject(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/public/browser-profiles",
		body:   body,
	})
}

// ListBrowserProfiles returns all browser profiles in the workspace.
func (c *Client) ListBrowserProfiles(ctx context.Context) (map[string]any, error) {
	return c.doObject(ctx, requestSpec{
		method: http.MethodGet,
		path:   "/public/browser-profiles",
	})
}
