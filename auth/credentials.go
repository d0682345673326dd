package auth

import "net/url"

// Variant identifies which credential form a client was configured with
type Variant int

const (
	// VariantBasic uses a username/password pair
	VariantBasic Variant = iota
	// VariantAdministrative uses a business entity ID and web services key
	VariantAdministrative
)

// Credentials holds one of the two identity forms accepted by the TDX API.
// The administrative fields take precedence: if either BEID or WebServicesKey
// is set, the credentials are treated as administrative.
type Credentials struct {
	UserName       string
	Password       string
	BEID           string
	WebServicesKey string
}

// NewPasswordCredentials creates basic username/password credentials
func NewPasswordCredentials(userName, password string) Credentials {
	return Credentials{
		UserName: userName,
		Password: password,
	}
}

// NewKeyCredentials creates administrative key-pair credentials
func NewKeyCredentials(beid, webServicesKey string) Credentials {
	return Credentials{
		BEID:           beid,
		WebServicesKey: webServicesKey,
	}
}

// Variant returns which credential form is active
func (c Credentials) Variant() Variant {
	if c.BEID != "" || c.WebServicesKey != "" {
		return VariantAdministrative
	}
	return VariantBasic
}

// Values returns the form body submitted during the token exchange
// for the active variant
func (c Credentials) Values() url.Values {
	form := url.Values{}
	switch c.Variant() {
	case VariantAdministrative:
		form.Set("BEID", c.BEID)
		form.Set("WebServicesKey", c.WebServicesKey)
	default:
		form.Set("UserName", c.UserName)
		form.Set("Password", c.Password)
	}
	return form
}

// Store holds the configured identity and service URL for a client.
// Immutable after construction.
type Store struct {
	baseURL     string
	credentials Credentials
}

// NewStore creates a credential store. Zero-value credentials are legal
// and select the basic variant.
func NewStore(baseURL string, credentials Credentials) *Store {
	return &Store{
		baseURL:     baseURL,
		credentials: credentials,
	}
}

// BaseURL returns the configured service URL
func (s *Store) BaseURL() string {
	return s.baseURL
}

// Credentials returns the configured identity
func (s *Store) Credentials() Credentials {
	return s.credentials
}
