package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCredentialsVariant(t *testing.T) {
	t.Run("zero value is basic", func(t *testing.T) {
		var creds Credentials
		assert.Equal(t, VariantBasic, creds.Variant())
	})

	t.Run("username and password is basic", func(t *testing.T) {
		creds := NewPasswordCredentials("a", "b")
		assert.Equal(t, VariantBasic, creds.Variant())
	})

	t.Run("key pair is administrative", func(t *testing.T) {
		creds := NewKeyCredentials("b1", "k1")
		assert.Equal(t, VariantAdministrative, creds.Variant())
	})

	t.Run("either administrative field selects administrative", func(t *testing.T) {
		assert.Equal(t, VariantAdministrative, Credentials{BEID: "b1"}.Variant())
		assert.Equal(t, VariantAdministrative, Credentials{WebServicesKey: "k1"}.Variant())
	})

	t.Run("administrative fields win over basic fields", func(t *testing.T) {
		creds := Credentials{UserName: "a", Password: "b", BEID: "b1", WebServicesKey: "k1"}
		assert.Equal(t, VariantAdministrative, creds.Variant())
	})
}

func TestCredentialsValues(t *testing.T) {
	t.Run("basic form body", func(t *testing.T) {
		form := NewPasswordCredentials("alice", "secret").Values()
		assert.Equal(t, "alice", form.Get("UserName"))
		assert.Equal(t, "secret", form.Get("Password"))
		assert.Empty(t, form.Get("BEID"))
		assert.Empty(t, form.Get("WebServicesKey"))
	})

	t.Run("administrative form body", func(t *testing.T) {
		form := NewKeyCredentials("b1", "k1").Values()
		assert.Equal(t, "b1", form.Get("BEID"))
		assert.Equal(t, "k1", form.Get("WebServicesKey"))
		assert.Empty(t, form.Get("UserName"))
		assert.Empty(t, form.Get("Password"))
	})
}

func TestStore(t *testing.T) {
	creds := NewPasswordCredentials("alice", "secret")
	store := NewStore("https://tdx.example.com", creds)

	assert.Equal(t, "https://tdx.example.com", store.BaseURL())
	assert.Equal(t, creds, store.Credentials())
}
