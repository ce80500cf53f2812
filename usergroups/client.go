package usergroups

import (
	"net/http"

	"github.com/cumulusmedia/go-provisioning/clients"
	"github.com/cumulusmedia/go-provisioning/common"
)

// UserGroups is an interface for managing user groups and their membership
type UserGroups interface {
	List() (*ListResponse, error)
	Get(id string) (*UserGroup, error)
	Create(name string) (*UserGroup, error)
	Update(id, name string) (*UserGroup, error)
	Delete(id string) (*common.DeleteResponse, error)
	AddUser(groupID, userID string) (*UsersResponse, error)
	RemoveUser(groupID, userID string) (*UsersResponse, error)
	ListUsers(groupID string) (*UsersResponse, error)
}

type client struct {
	caller clients.Caller
}

// NewClient creates a UserGroups client with the specified configuration.
func NewClient(config *clients.Config) (UserGroups, error) {
	if config.UserAgent == "" {
		return nil, clients.NewNoUserAgentError("User-Agent is missing to create a UserGroups client.")
	}
	return NewCustomClient(clients.NewCaller(config)), nil
}

// NewCustomClient creates a UserGroups client over an arbitrary Caller.
func NewCustomClient(caller clients.Caller) UserGroups {
	return &client{caller}
}

const (
	resourcePath = "user_groups"
	usersPath    = "users"
)

func (cl *client) List() (*ListResponse, error) {
	var list ListResponse
	if err := cl.caller.Call(http.MethodGet, []interface{}{resourcePath}, nil, &list, nil); err != nil {
		return nil, err
	}
	return &list, nil
}

func (cl *client) Get(id string) (*UserGroup, error) {
	var group UserGroup
	if err := cl.caller.Call(http.MethodGet, []interface{}{resourcePath, id}, nil, &group, nil); err != nil {
		return nil, err
	}
	return &group, nil
}

func (cl *client) Create(name string) (*UserGroup, error) {
	var group UserGroup
	err := cl.caller.Call(http.MethodPost, []interface{}{resourcePath},
		clients.Params{"name": name}, &group, clients.JSONContent(nil))
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (cl *client) Update(id, name string) (*UserGroup, error) {
	var group UserGroup
	err := cl.caller.Call(http.MethodPut, []interface{}{resourcePath, id},
		clients.Params{"name": name}, &group, clients.JSONContent(nil))
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (cl *client) Delete(id string) (*common.DeleteResponse, error) {
	var deleted common.DeleteResponse
	if err := cl.caller.Call(http.MethodDelete, []interface{}{resourcePath, id}, nil, &deleted, nil); err != nil {
		return nil, err
	}
	return &deleted, nil
}

func (cl *client) AddUser(groupID, userID string) (*UsersResponse, error) {
	var members UsersResponse
	err := cl.caller.Call(http.MethodPost,
		[]interface{}{resourcePath, groupID, usersPath, userID}, nil, &members, nil)
	if err != nil {
		return nil, err
	}
	return &members, nil
}

func (cl *client) RemoveUser(groupID, userID string) (*UsersResponse, error) {
	var members UsersResponse
	err := cl.caller.Call(http.MethodDelete,
		[]interface{}{resourcePath, groupID, usersPath, userID}, nil, &members, nil)
	if err != nil {
		return nil, err
	}
	return &members, nil
}

func (cl *client) ListUsers(groupID string) (*UsersResponse, error) {
	var members UsersResponse
	err := cl.caller.Call(http.MethodGet,
		[]interface{}{resourcePath, groupID, usersPath}, nil, &members, nil)
	if err != nil {
		return nil, err
	}
	return &members, nil
}
