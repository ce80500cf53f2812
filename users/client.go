package users

import (
	"net/http"

	"github.com/cumulusmedia/go-provisioning/clients"
	"github.com/cumulusmedia/go-provisioning/common"
)

// ListOptions filters a user listing. A nil IDs slice means no id filter;
// SubAccountID restricts the listing to users with access to that
// sub-account.
type ListOptions struct {
	Pending      *bool
	IDs          []string
	Prefix       string
	SubAccountID string
}

// CreateRequest holds the fields of a new user. Name, Email and Role are
// required.
type CreateRequest struct {
	Name          string
	Email         string
	Role          string
	SubAccountIDs []string
}

// UpdateRequest holds the updatable fields of a user; unset fields are left
// untouched.
type UpdateRequest struct {
	Name          string
	Email         string
	Role          string
	Enabled       *bool
	SubAccountIDs []string
}

// Users is an interface for managing the users of an account
type Users interface {
	Get(id string) (*User, error)
	List(options *ListOptions) (*ListResponse, error)
	Create(req CreateRequest) (*User, error)
	Update(id string, req UpdateRequest) (*User, error)
	Delete(id string) (*common.DeleteResponse, error)
}

type client struct {
	caller clients.Caller
}

// NewClient creates a Users client with the specified configuration.
func NewClient(config *clients.Config) (Users, error) {
	if config.UserAgent == "" {
		return nil, clients.NewNoUserAgentError("User-Agent is missing to create a Users client.")
	}
	return NewCustomClient(clients.NewCaller(config)), nil
}

// NewCustomClient creates a Users client over an arbitrary Caller.
func NewCustomClient(caller clients.Caller) Users {
	return &client{caller}
}

const resourcePath = "users"

func (cl *client) Get(id string) (*User, error) {
	var user User
	if err := cl.caller.Call(http.MethodGet, []interface{}{resourcePath, id}, nil, &user, nil); err != nil {
		return nil, err
	}
	return &user, nil
}

func (cl *client) List(options *ListOptions) (*ListResponse, error) {
	params := clients.Params{}
	if options != nil {
		params["pending"] = options.Pending
		if options.IDs != nil {
			params["ids"] = options.IDs
		}
		if options.Prefix != "" {
			params["prefix"] = options.Prefix
		}
		if options.SubAccountID != "" {
			params["sub_account_id"] = options.SubAccountID
		}
		params = clients.PickExisting(params)
	}

	var list ListResponse
	if err := cl.caller.Call(http.MethodGet, []interface{}{resourcePath}, params, &list, nil); err != nil {
		return nil, err
	}
	return &list, nil
}

func (cl *client) Create(req CreateRequest) (*User, error) {
	params := clients.Params{
		"name":  req.Name,
		"email": req.Email,
		"role":  req.Role,
	}
	if req.SubAccountIDs != nil {
		params["sub_account_ids"] = req.SubAccountIDs
	}

	var user User
	err := cl.caller.Call(http.MethodPost, []interface{}{resourcePath},
		params, &user, clients.JSONContent(nil))
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (cl *client) Update(id string, req UpdateRequest) (*User, error) {
	params := clients.Params{"enabled": req.Enabled}
	if req.Name != "" {
		params["name"] = req.Name
	}
	if req.Email != "" {
		params["email"] = req.Email
	}
	if req.Role != "" {
		params["role"] = req.Role
	}
	if req.SubAccountIDs != nil {
		params["sub_account_ids"] = req.SubAccountIDs
	}

	var user User
	err := cl.caller.Call(http.MethodPut, []interface{}{resourcePath, id},
		clients.PickExisting(params), &user, clients.JSONContent(nil))
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (cl *client) Delete(id string) (*common.DeleteResponse, error) {
	var deleted common.DeleteResponse
	if err := cl.caller.Call(http.MethodDelete, []interface{}{resourcePath, id}, nil, &deleted, nil); err != nil {
		return nil, err
	}
	return &deleted, nil
}
