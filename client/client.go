package client

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/gotrs-io/tdx-go/auth"
	"github.com/gotrs-io/tdx-go/errors"
	"github.com/gotrs-io/tdx-go/types"
)

// Client represents the TDX API client
type Client struct {
	httpClient *resty.Client
	baseURL    string
	store      *auth.Store
	session    *auth.SessionManager
	userAgent  string
	timeout    time.Duration

	// Service clients
	People      *PeopleService
	Tickets     *TicketsService
	Accounts    *AccountsService
	Locations   *LocationsService
	Assets      *AssetsService
	Articles    *ArticlesService
	Attachments *AttachmentsService
	Events      *EventsService
}

// Config represents client configuration
type Config struct {
	BaseURL     string
	Credentials auth.Credentials
	UserAgent   string
	Timeout     time.Duration
	RetryCount  int
	Debug       bool
}

// NewClient creates a new TDX API client
func NewClient(config *Config) *Client {
	if config.UserAgent == "" {
		config.UserAgent = "tdx-go-sdk/1.0.0"
	}
	if config.Timeout == 0 {
		config.Timeout = 30 * time.Second
	}
	if config.RetryCount == 0 {
		config.RetryCount = 3
	}

	httpClient := resty.New().
		SetBaseURL(config.BaseURL).
		SetTimeout(config.Timeout).
		SetRetryCount(config.RetryCount).
		SetHeader("User-Agent", config.UserAgent).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	if config.Debug {
		httpClient.SetDebug(true)
	}

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.BaseURL,
		store:      auth.NewStore(config.BaseURL, config.Credentials),
		userAgent:  config.UserAgent,
		timeout:    config.Timeout,
	}
	client.session = auth.NewSessionManager(client.store, client.exchangeToken)

	// Initialize service clients
	client.People = &PeopleService{client: client}
	client.Tickets = &TicketsService{client: client}
	client.Accounts = &AccountsService{client: client}
	client.Locations = &LocationsService{client: client}
	client.Assets = &AssetsService{client: client}
	client.Articles = &ArticlesService{client: client}
	client.Attachments = &AttachmentsService{client: client}
	client.Events = &EventsService{client: client}

	// Set up authentication middleware
	httpClient.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		return client.setAuth(req)
	})

	// Set up request correlation middleware
	httpClient.OnBeforeRequest(func(c *resty.Client, req *resty.Request) error {
		if req.Header.Get("X-Request-ID") == "" {
			req.SetHeader("X-Request-ID", uuid.NewString())
		}
		return nil
	})

	// Set up error handling middleware
	httpClient.OnAfterResponse(func(c *resty.Client, resp *resty.Response) error {
		return client.handleError(resp)
	})

	return client
}

// NewClientWithPassword creates a new client with username/password credentials
func NewClientWithPassword(baseURL, userName, password string) *Client {
	return NewClient(&Config{
		BaseURL:     baseURL,
		Credentials: auth.NewPasswordCredentials(userName, password),
	})
}

// NewClientWithKey creates a new client with administrative key credentials
func NewClientWithKey(baseURL, beid, webServicesKey string) *Client {
	return NewClient(&Config{
		BaseURL:     baseURL,
		Credentials: auth.NewKeyCredentials(beid, webServicesKey),
	})
}

// Token returns the current bearer token, performing a credential exchange
// if no valid session is held
func (c *Client) Token(ctx context.Context) (string, error) {
	return c.session.Token(ctx)
}

// exchangeToken performs the credential exchange against a login endpoint.
// The response body is the bearer token as a bare string.
func (c *Client) exchangeToken(ctx context.Context, path string, form url.Values) (string, error) {
	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetFormDataFromValues(form).
		Post(path)

	if err != nil {
		if errors.IsAPIError(err) {
			return "", err
		}
		return "", &errors.NetworkError{
			Operation: "POST",
			URL:       c.baseURL + path,
			Err:       err,
		}
	}

	return strings.TrimSpace(resp.String()), nil
}

// isExchangePath reports whether the request targets a login endpoint,
// which must not itself carry a bearer token
func isExchangePath(path string) bool {
	return path == auth.LoginPath || path == auth.LoginAdminPath
}

// setAuth attaches the session's bearer token to outgoing requests
func (c *Client) setAuth(req *resty.Request) error {
	if isExchangePath(req.URL) {
		return nil
	}

	token, err := c.session.Token(req.Context())
	if err != nil {
		return err
	}

	req.SetHeader("Authorization", "Bearer "+token)
	return nil
}

// handleError processes API error responses
func (c *Client) handleError(resp *resty.Response) error {
	if resp.IsSuccess() {
		return nil
	}

	// Try to parse the error envelope
	var errorResp types.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &errorResp); err == nil && errorResp.Message != "" {
		return errors.NewAPIError(resp.StatusCode(), errorResp.Message, "", "")
	}

	// Fallback to status code based errors
	switch resp.StatusCode() {
	case 401:
		return errors.ErrUnauthorized
	case 403:
		return errors.ErrForbidden
	case 404:
		return errors.ErrNotFound
	case 429:
		return errors.ErrRateLimited
	case 500:
		return errors.ErrInternalServer
	default:
		return errors.NewAPIError(resp.StatusCode(), "Unknown error", "", string(resp.Body()))
	}
}

// SetTimeout updates the client's timeout
func (c *Client) SetTimeout(timeout time.Duration) {
	c.timeout = timeout
	c.httpClient.SetTimeout(timeout)
}

// SetRetryCount updates the client's retry count
func (c *Client) SetRetryCount(count int) {
	c.httpClient.SetRetryCount(count)
}

// SetDebug enables or disables debug mode
func (c *Client) SetDebug(debug bool) {
	c.httpClient.SetDebug(debug)
}

// wrapErr normalizes errors returned by resty: API errors produced by the
// response middleware pass through, anything else is a transport failure
func (c *Client) wrapErr(operation, path string, err error) error {
	if errors.IsAPIError(err) {
		return err
	}
	return &errors.NetworkError{
		Operation: operation,
		URL:       c.baseURL + path,
		Err:       err,
	}
}

// Get performs a GET request
func (c *Client) Get(ctx context.Context, path string, result interface{}) error {
	_, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(result).
		Get(path)

	if err != nil {
		return c.wrapErr("GET", path, err)
	}
	return nil
}

// Post performs a POST request
func (c *Client) Post(ctx context.Context, path string, body interface{}, result interface{}) error {
	req := c.httpClient.R().SetContext(ctx)

	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	_, err := req.Post(path)
	if err != nil {
		return c.wrapErr("POST", path, err)
	}
	return nil
}

// Put performs a PUT request
func (c *Client) Put(ctx context.Context, path string, body interface{}, result interface{}) error {
	req := c.httpClient.R().SetContext(ctx)

	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	_, err := req.Put(path)
	if err != nil {
		return c.wrapErr("PUT", path, err)
	}
	return nil
}

// Patch performs a PATCH request
func (c *Client) Patch(ctx context.Context, path string, body interface{}, result interface{}) error {
	req := c.httpClient.R().SetContext(ctx)

	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	_, err := req.Patch(path)
	if err != nil {
		return c.wrapErr("PATCH", path, err)
	}
	return nil
}

// Delete performs a DELETE request
func (c *Client) Delete(ctx context.Context, path string, result interface{}) error {
	req := c.httpClient.R().SetContext(ctx)

	if result != nil {
		req.SetResult(result)
	}

	_, err := req.Delete(path)
	if err != nil {
		return c.wrapErr("DELETE", path, err)
	}
	return nil
}

// CurrentUser retrieves the person record for the authenticated identity
func (c *Client) CurrentUser(ctx context.Context) (*types.Person, error) {
	var result types.Person
	err := c.Get(ctx, "/auth/getuser", &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// Ping checks if the API is reachable
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.httpClient.R().
		SetContext(ctx).
		Get("/ping")

	if err != nil {
		return c.wrapErr("PING", "/ping", err)
	}
	return nil
}
