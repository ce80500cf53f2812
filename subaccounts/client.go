package subaccounts

import (
	"net/http"

	"github.com/cumulusmedia/go-provisioning/clients"
	"github.com/cumulusmedia/go-provisioning/common"
)

// ListOptions filters a sub-account listing. A nil IDs slice means no id
// filter; a non-nil empty slice restricts the listing to those exact ids.
type ListOptions struct {
	Enabled *bool
	IDs     []string
	Prefix  string
}

// CreateRequest holds the fields of a new sub-account. Name is required.
type CreateRequest struct {
	Name             string
	CloudName        string
	CustomAttributes map[string]interface{}
	Enabled          *bool
	BaseSubAccountID string
}

// UpdateRequest holds the updatable fields of a sub-account; unset fields are
// left untouched.
type UpdateRequest struct {
	Name             string
	CloudName        string
	CustomAttributes map[string]interface{}
	Enabled          *bool
}

// SubAccounts is an interface for managing the sub-accounts of an account
type SubAccounts interface {
	List(options *ListOptions) (*ListResponse, error)
	Get(id string) (*SubAccount, error)
	Create(req CreateRequest) (*SubAccount, error)
	Update(id string, req UpdateRequest) (*SubAccount, error)
	Delete(id string) (*common.DeleteResponse, error)
}

type client struct {
	caller clients.Caller
}

// NewClient creates a SubAccounts client with the specified configuration.
func NewClient(config *clients.Config) (SubAccounts, error) {
	if config.UserAgent == "" {
		return nil, clients.NewNoUserAgentError("User-Agent is missing to create a SubAccounts client.")
	}
	return NewCustomClient(clients.NewCaller(config)), nil
}

// NewCustomClient creates a SubAccounts client over an arbitrary Caller.
func NewCustomClient(caller clients.Caller) SubAccounts {
	return &client{caller}
}

const resourcePath = "sub_accounts"

func (cl *client) List(options *ListOptions) (*ListResponse, error) {
	params := clients.Params{}
	if options != nil {
		params["enabled"] = options.Enabled
		if options.IDs != nil {
			params["ids"] = options.IDs
		}
		if options.Prefix != "" {
			params["prefix"] = options.Prefix
		}
		params = clients.PickExisting(params)
	}

	var list ListResponse
	if err := cl.caller.Call(http.MethodGet, []interface{}{resourcePath}, params, &list, nil); err != nil {
		return nil, err
	}
	return &list, nil
}

func (cl *client) Get(id string) (*SubAccount, error) {
	var account SubAccount
	if err := cl.caller.Call(http.MethodGet, []interface{}{resourcePath, id}, nil, &account, nil); err != nil {
		return nil, err
	}
	return &account, nil
}

func (cl *client) Create(req CreateRequest) (*SubAccount, error) {
	params := clients.Params{
		"name":    req.Name,
		"enabled": req.Enabled,
	}
	if req.CloudName != "" {
		params["cloud_name"] = req.CloudName
	}
	if req.CustomAttributes != nil {
		params["custom_attributes"] = req.CustomAttributes
	}
	if req.BaseSubAccountID != "" {
		params["base_sub_account_id"] = req.BaseSubAccountID
	}

	var account SubAccount
	err := cl.caller.Call(http.MethodPost, []interface{}{resourcePath},
		clients.PickExisting(params), &account, clients.JSONContent(nil))
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (cl *client) Update(id string, req UpdateRequest) (*SubAccount, error) {
	params := clients.Params{"enabled": req.Enabled}
	if req.Name != "" {
		params["name"] = req.Name
	}
	if req.CloudName != "" {
		params["cloud_name"] = req.CloudName
	}
	if req.CustomAttributes != nil {
		params["custom_attributes"] = req.CustomAttributes
	}

	var account SubAccount
	err := cl.caller.Call(http.MethodPut, []interface{}{resourcePath, id},
		clients.PickExisting(params), &account, clients.JSONContent(nil))
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (cl *client) Delete(id string) (*common.DeleteResponse, error) {
	var deleted common.DeleteResponse
	if err := cl.caller.Call(http.MethodDelete, []interface{}{resourcePath, id}, nil, &deleted, nil); err != nil {
		return nil, err
	}
	return &deleted, nil
}
