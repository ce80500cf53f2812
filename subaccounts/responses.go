package subaccounts

import "time"

// SubAccount describes one sub-account of the master account.
type SubAccount struct {
	ID               string                 `json:"id"`
	Name             string                 `json:"name"`
	CloudName        string                 `json:"cloud_name"`
	CustomAttributes map[string]interface{} `json:"custom_attributes,omitempty"`
	Enabled          bool                   `json:"enabled"`
	CreatedAt        time.Time              `json:"created_at"`
}

// ListResponse is a listing of sub-accounts.
type ListResponse struct {
	SubAccounts []*SubAccount `json:"sub_accounts"`
}
