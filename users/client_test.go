package users

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cumulusmedia/go-provisioning/clients"
	"github.com/cumulusmedia/go-provisioning/mocks"
)

func TestGet(t *testing.T) {
	caller := mocks.NewCaller().StubResult(&User{ID: "u1", Email: "jo@example.com"})
	cl := NewCustomClient(caller)

	user, err := cl.Get("u1")
	require.NoError(t, err)

	call := caller.LastCall()
	assert.Equal(t, http.MethodGet, call.Method)
	assert.Equal(t, []interface{}{"users", "u1"}, call.URI)
	assert.Equal(t, "jo@example.com", user.Email)
}

func TestListFilters(t *testing.T) {
	caller := mocks.NewCaller().StubResult(&ListResponse{})
	cl := NewCustomClient(caller)

	pending := true
	_, err := cl.List(&ListOptions{
		Pending:      &pending,
		IDs:          []string{"u1", "u2"},
		Prefix:       "jo",
		SubAccountID: "sa1",
	})
	require.NoError(t, err)

	call := caller.LastCall()
	assert.Equal(t, http.MethodGet, call.Method)
	assert.Equal(t, []interface{}{"users"}, call.URI)
	assert.Equal(t, clients.Params{
		"pending":        true,
		"ids":            []string{"u1", "u2"},
		"prefix":         "jo",
		"sub_account_id": "sa1",
	}, call.Params)
}

func TestListOmitsUnsetFilters(t *testing.T) {
	caller := mocks.NewCaller().StubResult(&ListResponse{})
	cl := NewCustomClient(caller)

	_, err := cl.List(&ListOptions{SubAccountID: "sa1"})
	require.NoError(t, err)

	assert.Equal(t, clients.Params{"sub_account_id": "sa1"}, caller.LastCall().Params)
}

func TestCreateSendsJSON(t *testing.T) {
	caller := mocks.NewCaller().StubResult(&User{ID: "u1"})
	cl := NewCustomClient(caller)

	user, err := cl.Create(CreateRequest{
		Name:          "Jo",
		Email:         "jo@example.com",
		Role:          RoleAdmin,
		SubAccountIDs: []string{"sa1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	call := caller.LastCall()
	assert.Equal(t, http.MethodPost, call.Method)
	assert.Equal(t, []interface{}{"users"}, call.URI)
	assert.Equal(t, clients.Params{
		"name":            "Jo",
		"email":           "jo@example.com",
		"role":            "admin",
		"sub_account_ids": []string{"sa1"},
	}, call.Params)
	assert.Equal(t, clients.ContentTypeJSON, call.Options.ContentType)
}

func TestUpdateOmitsUnsetFields(t *testing.T) {
	caller := mocks.NewCaller().StubResult(&User{})
	cl := NewCustomClient(caller)

	enabled := false
	_, err := cl.Update("u1", UpdateRequest{Role: RoleBilling, Enabled: &enabled})
	require.NoError(t, err)

	call := caller.LastCall()
	assert.Equal(t, http.MethodPut, call.Method)
	assert.Equal(t, []interface{}{"users", "u1"}, call.URI)
	assert.Equal(t, clients.Params{"role": "billing", "enabled": false}, call.Params)
	assert.Equal(t, clients.ContentTypeJSON, call.Options.ContentType)
}

func TestDelete(t *testing.T) {
	caller := mocks.NewCaller()
	cl := NewCustomClient(caller)

	_, err := cl.Delete("u1")
	require.NoError(t, err)

	call := caller.LastCall()
	assert.Equal(t, http.MethodDelete, call.Method)
	assert.Equal(t, []interface{}{"users", "u1"}, call.URI)
}

func TestNewClientRequiresUserAgent(t *testing.T) {
	_, err := NewClient(&clients.Config{Account: "acct1"})
	assert.Error(t, err)
}
