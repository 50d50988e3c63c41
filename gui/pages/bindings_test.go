package pages_test

import (
	"testing"

	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/apicli"
	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/controller"
	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/gui/nav"
	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/gui/pages"
)

func newScreenScope(t *testing.T, b nav.Binding) *do.Scope {
	t.Helper()
	root := do.New()
	do.ProvideValue[apicli.ApiCli](root, fakeApi{})
	scope := root.Scope(t.Name())
	b.Dependencies(scope)
	return scope
}

func TestGetRequestBinding(t *testing.T) {
	scope := newScreenScope(t, pages.GetRequestBinding{})

	first, err := do.Invoke[*controller.GetRequest](scope)
	require.NoError(t, err)
	second, err := do.Invoke[*controller.GetRequest](scope)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestPostRequestBinding(t *testing.T) {
	scope := newScreenScope(t, pages.PostRequestBinding{})
	ctl, err := do.Invoke[*controller.PostRequest](scope)
	require.NoError(t, err)
	assert.NotNil(t, ctl)
}

func TestUpdateRequestBinding(t *testing.T) {
	scope := newScreenScope(t, pages.UpdateRequestBinding{})
	ctl, err := do.Invoke[*controller.UpdateRequest](scope)
	require.NoError(t, err)
	assert.NotNil(t, ctl)
}

func TestDeleteRequestBinding(t *testing.T) {
	scope := newScreenScope(t, pages.DeleteRequestBinding{})
	ctl, err := do.Invoke[*controller.DeleteRequest](scope)
	require.NoError(t, err)
	assert.NotNil(t, ctl)
}

func TestFileUploadBinding(t *testing.T) {
	scope := newScreenScope(t, pages.FileUploadBinding{})
	ctl, err := do.Invoke[*controller.FileUpload](scope)
	require.NoError(t, err)
	assert.NotNil(t, ctl)
}

func TestErrorHandlingBinding(t *testing.T) {
	scope := newScreenScope(t, pages.ErrorHandlingBinding{})
	ctl, err := do.Invoke[*controller.ErrorHandling](scope)
	require.NoError(t, err)
	assert.NotNil(t, ctl)
}

// The home binding registers nothing at all.
func TestHomeBindingIsNoOp(t *testing.T) {
	scope := newScreenScope(t, pages.HomeBinding{})
	_, err := do.Invoke[*controller.GetRequest](scope)
	assert.Error(t, err)
}
