package accesskeys

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cumulusmedia/go-provisioning/clients"
	"github.com/cumulusmedia/go-provisioning/mocks"
)

func TestListSendsOnlyProvidedOptions(t *testing.T) {
	caller := mocks.NewCaller().StubResult(&ListResponse{})
	cl := NewCustomClient(caller)

	pageSize := 50
	_, err := cl.List("sa1", &ListOptions{PageSize: &pageSize})
	require.NoError(t, err)

	call := caller.LastCall()
	assert.Equal(t, http.MethodGet, call.Method)
	assert.Equal(t, []interface{}{"sub_accounts", "sa1", "access_keys"}, call.URI)
	assert.Equal(t, clients.Params{"page_size": 50}, call.Params)
}

func TestListKeepsExplicitZeroValues(t *testing.T) {
	caller := mocks.NewCaller().StubResult(&ListResponse{})
	cl := NewCustomClient(caller)

	page := 0
	_, err := cl.List("sa1", &ListOptions{Page: &page})
	require.NoError(t, err)

	assert.Equal(t, clients.Params{"page": 0}, caller.LastCall().Params)
}

func TestListFullOptions(t *testing.T) {
	caller := mocks.NewCaller().StubResult(&ListResponse{Total: 3})
	cl := NewCustomClient(caller)

	pageSize, page := 10, 2
	sortBy, sortOrder := "created_at", "desc"
	list, err := cl.List("sa1", &ListOptions{
		PageSize:  &pageSize,
		Page:      &page,
		SortBy:    &sortBy,
		SortOrder: &sortOrder,
	})
	require.NoError(t, err)
	assert.Equal(t, 3, list.Total)

	assert.Equal(t, clients.Params{
		"page_size":  10,
		"page":       2,
		"sort_by":    "created_at",
		"sort_order": "desc",
	}, caller.LastCall().Params)
}

func TestGenerateSendsJSON(t *testing.T) {
	caller := mocks.NewCaller().StubResult(&AccessKey{APIKey: "key1", APISecret: "shh"})
	cl := NewCustomClient(caller)

	name := "ci"
	enabled := false
	key, err := cl.Generate("sa1", &GenerateOptions{Name: &name, Enabled: &enabled})
	require.NoError(t, err)
	assert.Equal(t, "key1", key.APIKey)

	call := caller.LastCall()
	assert.Equal(t, http.MethodPost, call.Method)
	assert.Equal(t, []interface{}{"sub_accounts", "sa1", "access_keys"}, call.URI)
	assert.Equal(t, clients.Params{"name": "ci", "enabled": false}, call.Params)
	assert.Equal(t, clients.ContentTypeJSON, call.Options.ContentType)
}

func TestGenerateWithoutOptions(t *testing.T) {
	caller := mocks.NewCaller().StubResult(&AccessKey{})
	cl := NewCustomClient(caller)

	_, err := cl.Generate("sa1", nil)
	require.NoError(t, err)

	call := caller.LastCall()
	assert.Equal(t, clients.Params{}, call.Params)
	assert.Equal(t, clients.ContentTypeJSON, call.Options.ContentType)
}

func TestUpdateOmitsUnsetFields(t *testing.T) {
	caller := mocks.NewCaller().StubResult(&AccessKey{})
	cl := NewCustomClient(caller)

	name := "renamed"
	_, err := cl.Update("sa1", "key1", &UpdateOptions{Name: &name})
	require.NoError(t, err)

	call := caller.LastCall()
	assert.Equal(t, http.MethodPut, call.Method)
	assert.Equal(t, []interface{}{"sub_accounts", "sa1", "access_keys", "key1"}, call.URI)
	assert.Equal(t, clients.Params{"name": "renamed"}, call.Params)
	assert.Equal(t, clients.ContentTypeJSON, call.Options.ContentType)
}

func TestDelete(t *testing.T) {
	caller := mocks.NewCaller()
	cl := NewCustomClient(caller)

	_, err := cl.Delete("sa1", "key1")
	require.NoError(t, err)

	call := caller.LastCall()
	assert.Equal(t, http.MethodDelete, call.Method)
	assert.Equal(t, []interface{}{"sub_accounts", "sa1", "access_keys", "key1"}, call.URI)
}

func TestDeleteByName(t *testing.T) {
	caller := mocks.NewCaller()
	cl := NewCustomClient(caller)

	_, err := cl.DeleteByName("acct1", "key1")
	require.NoError(t, err)

	call := caller.LastCall()
	assert.Equal(t, http.MethodDelete, call.Method)
	assert.Equal(t, []interface{}{"sub_accounts", "acct1", "access_keys"}, call.URI)
	assert.Equal(t, clients.Params{"name": "key1"}, call.Params)
}

func TestDescriptorsAreDeterministic(t *testing.T) {
	caller := mocks.NewCaller().StubResult(&ListResponse{}).StubResult(&ListResponse{})
	cl := NewCustomClient(caller)

	pageSize := 25
	sortBy := "name"
	options := &ListOptions{PageSize: &pageSize, SortBy: &sortBy}
	_, err := cl.List("sa1", options)
	require.NoError(t, err)
	_, err = cl.List("sa1", options)
	require.NoError(t, err)

	calls := caller.Calls()
	require.Len(t, calls, 2)
	assert.Equal(t, calls[0], calls[1])
}

func TestNewClientRequiresUserAgent(t *testing.T) {
	_, err := NewClient(&clients.Config{Account: "acct1"})
	assert.Error(t, err)
}
