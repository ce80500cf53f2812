package accesskeys

import (
	"net/http"

	"github.com/cumulusmedia/go-provisioning/clients"
	"github.com/cumulusmedia/go-provisioning/common"
)

// ListOptions pages and sorts an access-key listing. Nil fields are omitted
// from the request.
type ListOptions struct {
	PageSize  *int
	Page      *int
	SortBy    *string
	SortOrder *string
}

// GenerateOptions holds the optional fields of a new access key.
type GenerateOptions struct {
	Name    *string
	Enabled *bool
}

// UpdateOptions holds the updatable fields of an access key; unset fields are
// left untouched.
type UpdateOptions struct {
	Name    *string
	Enabled *bool
}

// AccessKeys is an interface for managing the access keys of a sub-account
type AccessKeys interface {
	List(subAccountID string, options *ListOptions) (*ListResponse, error)
	Generate(subAccountID string, options *GenerateOptions) (*AccessKey, error)
	Update(subAccountID, apiKey string, options *UpdateOptions) (*AccessKey, error)
	Delete(subAccountID, apiKey string) (*common.DeleteResponse, error)
	DeleteByName(subAccountID, name string) (*common.DeleteResponse, error)
}

type client struct {
	caller clients.Caller
}

// NewClient creates an AccessKeys client with the specified configuration.
func NewClient(config *clients.Config) (AccessKeys, error) {
	if config.UserAgent == "" {
		return nil, clients.NewNoUserAgentError("User-Agent is missing to create an AccessKeys client.")
	}
	return NewCustomClient(clients.NewCaller(config)), nil
}

// NewCustomClient creates an AccessKeys client over an arbitrary Caller.
func NewCustomClient(caller clients.Caller) AccessKeys {
	return &client{caller}
}

func keysURI(subAccountID string, extra ...interface{}) []interface{} {
	uri := []interface{}{"sub_accounts", subAccountID, "access_keys"}
	return append(uri, extra...)
}

func (cl *client) List(subAccountID string, options *ListOptions) (*ListResponse, error) {
	params := clients.Params{}
	if options != nil {
		params = clients.PickExisting(clients.Params{
			"page_size":  options.PageSize,
			"page":       options.Page,
			"sort_by":    options.SortBy,
			"sort_order": options.SortOrder,
		})
	}

	var list ListResponse
	if err := cl.caller.Call(http.MethodGet, keysURI(subAccountID), params, &list, nil); err != nil {
		return nil, err
	}
	return &list, nil
}

func (cl *client) Generate(subAccountID string, options *GenerateOptions) (*AccessKey, error) {
	params := clients.Params{}
	if options != nil {
		params = keyParams(options.Name, options.Enabled)
	}

	var key AccessKey
	err := cl.caller.Call(http.MethodPost, keysURI(subAccountID),
		params, &key, clients.JSONContent(nil))
	if err != nil {
		return nil, err
	}
	return &key, nil
}

func (cl *client) Update(subAccountID, apiKey string, options *UpdateOptions) (*AccessKey, error) {
	params := clients.Params{}
	if options != nil {
		params = keyParams(options.Name, options.Enabled)
	}

	var key AccessKey
	err := cl.caller.Call(http.MethodPut, keysURI(subAccountID, apiKey),
		params, &key, clients.JSONContent(nil))
	if err != nil {
		return nil, err
	}
	return &key, nil
}

func (cl *client) Delete(subAccountID, apiKey string) (*common.DeleteResponse, error) {
	var deleted common.DeleteResponse
	if err := cl.caller.Call(http.MethodDelete, keysURI(subAccountID, apiKey), nil, &deleted, nil); err != nil {
		return nil, err
	}
	return &deleted, nil
}

func (cl *client) DeleteByName(subAccountID, name string) (*common.DeleteResponse, error) {
	var deleted common.DeleteResponse
	err := cl.caller.Call(http.MethodDelete, keysURI(subAccountID),
		clients.Params{"name": name}, &deleted, nil)
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}

func keyParams(name *string, enabled *bool) clients.Params {
	return clients.PickExisting(clients.Params{
		"name":    name,
		"enabled": enabled,
	})
}
