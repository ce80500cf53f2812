package clients

import (
	"fmt"
	"net/url"
	"os"
)

const accountURLEnv = "PROVISIONING_ACCOUNT_URL"

// FromEnv builds a Config from the PROVISIONING_ACCOUNT_URL environment
// variable, formatted as account://<key>:<secret>@<account_id>.
func FromEnv() (*Config, error) {
	raw := os.Getenv(accountURLEnv)
	if raw == "" {
		return nil, fmt.Errorf("%s is not set", accountURLEnv)
	}
	return ParseAccountURL(raw)
}

// ParseAccountURL parses an account://<key>:<secret>@<account_id> credential
// URL into a Config.
func ParseAccountURL(raw string) (*Config, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid account URL: %v", err)
	}
	if u.Scheme != "account" {
		return nil, fmt.Errorf("invalid account URL scheme %q, expected \"account\"", u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("account URL is missing the account id")
	}
	if u.User == nil || u.User.Username() == "" {
		return nil, fmt.Errorf("account URL is missing the API key")
	}
	secret, ok := u.User.Password()
	if !ok || secret == "" {
		return nil, fmt.Errorf("account URL is missing the API secret")
	}

	return &Config{
		Account: u.Host,
		Key:     u.User.Username(),
		Secret:  secret,
	}, nil
}
