package accesskeys

import "time"

// AccessKey is a credential pair scoped to a sub-account, used for request
// signing. APISecret is only populated on generation.
type AccessKey struct {
	Name      string    `json:"name"`
	APIKey    string    `json:"api_key"`
	APISecret string    `json:"api_secret"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ListResponse is a page of access keys. Total counts all keys of the
// sub-account, not just the returned page.
type ListResponse struct {
	AccessKeys []*AccessKey `json:"access_keys"`
	Total      int          `json:"total"`
}
