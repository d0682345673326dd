// Package tdx provides a Go client for the TDX ticketing and asset
// management Web API.
//
// The client covers:
//   - Ticket management (create, read, update, patch, delete, search, feed)
//   - People and functional roles
//   - Accounts and departments
//   - Locations and rooms
//   - Asset management
//   - Knowledge base articles
//   - Attachments
//   - Real-time events
//
// Basic usage:
//
//	client := tdx.NewClientWithPassword("https://tdx.example.com", "user", "secret")
//	ticket, err := client.Tickets.Get(ctx, 12345)
//
// Authentication:
//
//	// Username/password login
//	client := tdx.NewClientWithPassword(baseURL, userName, password)
//
//	// Administrative web services key
//	client := tdx.NewClientWithKey(baseURL, beid, webServicesKey)
//
//	// Full configuration
//	client := tdx.NewClient(&tdx.Config{
//		BaseURL:     baseURL,
//		Credentials: tdx.NewKeyCredentials(beid, webServicesKey),
//		Timeout:     30 * time.Second,
//		Debug:       true,
//	})
//
// The client logs in lazily: the first API call performs the credential
// exchange and later calls reuse the session until its token expires.
package tdx

import (
	"github.com/gotrs-io/tdx-go/auth"
	"github.com/gotrs-io/tdx-go/client"
	"github.com/gotrs-io/tdx-go/errors"
)

// Client represents the TDX API client
type Client = client.Client

// Config represents client configuration
type Config = client.Config

// Credentials holds the identity used for the login exchange
type Credentials = auth.Credentials

// NewClient creates a new TDX API client with custom configuration
func NewClient(config *Config) *Client {
	return client.NewClient(config)
}

// NewClientWithPassword creates a new client with username/password credentials
func NewClientWithPassword(baseURL, userName, password string) *Client {
	return client.NewClientWithPassword(baseURL, userName, password)
}

// NewClientWithKey creates a new client with administrative key credentials
func NewClientWithKey(baseURL, beid, webServicesKey string) *Client {
	return client.NewClientWithKey(baseURL, beid, webServicesKey)
}

// Credential helpers
var (
	// NewPasswordCredentials creates basic username/password credentials
	NewPasswordCredentials = auth.NewPasswordCredentials

	// NewKeyCredentials creates administrative key-pair credentials
	NewKeyCredentials = auth.NewKeyCredentials
)

// Error predicates
var (
	// IsAPIError checks if an error is an API error
	IsAPIError = errors.IsAPIError

	// IsNotFound checks if an error is a not found error
	IsNotFound = errors.IsNotFound

	// IsUnauthorized checks if an error is an unauthorized error
	IsUnauthorized = errors.IsUnauthorized

	// IsForbidden checks if an error is a forbidden error
	IsForbidden = errors.IsForbidden

	// IsRateLimited checks if an error is a rate limit error
	IsRateLimited = errors.IsRateLimited
)

// Version information
const (
	// Version is the current SDK version
	Version = "1.0.0"

	// UserAgent is the default user agent string
	UserAgent = "tdx-go-sdk/" + Version
)
