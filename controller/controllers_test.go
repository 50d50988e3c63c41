package controller_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/samber/do/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/apicli"
	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/controller"
	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/demosrv"
)

// newScope returns an injector seeded with a client talking to a fresh demo
// server, the same shape a screen scope has at runtime.
func newScope(t *testing.T) do.Injector {
	t.Helper()
	srv := demosrv.NewServer()
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	root := do.New()
	do.ProvideValue[apicli.ApiCli](root, apicli.NewRestCliWithBase(ts.URL))
	return root
}

func TestGetRequestController(t *testing.T) {
	ctl, err := controller.NewGetRequest(newScope(t))
	require.NoError(t, err)

	users, err := ctl.Load()
	require.NoError(t, err)
	assert.Len(t, users, 3)
	assert.Equal(t, users, ctl.Users())

	one, err := ctl.Lookup(users[0].ID)
	require.NoError(t, err)
	assert.Equal(t, users[0].Name, one.Name)
}

func TestPostRequestController(t *testing.T) {
	ctl, err := controller.NewPostRequest(newScope(t))
	require.NoError(t, err)

	assert.Nil(t, ctl.LastCreated())
	u, err := ctl.Create("Rosalind Franklin", "crystallographer")
	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, u, ctl.LastCreated())
}

func TestUpdateRequestController(t *testing.T) {
	scope := newScope(t)
	get, err := controller.NewGetRequest(scope)
	require.NoError(t, err)
	users, err := get.Load()
	require.NoError(t, err)

	ctl, err := controller.NewUpdateRequest(scope)
	require.NoError(t, err)

	u, err := ctl.Update(users[0].ID, "Renamed", "new job")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", u.Name)

	_, err = ctl.Update("no-such-id", "x", "y")
	assert.True(t, apicli.IsNotFound(err))
}

func TestDeleteRequestController(t *testing.T) {
	scope := newScope(t)
	get, err := controller.NewGetRequest(scope)
	require.NoError(t, err)
	users, err := get.Load()
	require.NoError(t, err)

	ctl, err := controller.NewDeleteRequest(scope)
	require.NoError(t, err)

	require.NoError(t, ctl.Delete(users[0].ID))
	assert.True(t, apicli.IsNotFound(ctl.Delete(users[0].ID)))
}

func TestFileUploadController(t *testing.T) {
	ctl, err := controller.NewFileUpload(newScope(t))
	require.NoError(t, err)

	res, err := ctl.Upload("data.bin", strings.NewReader("12345"))
	require.NoError(t, err)
	assert.Equal(t, "data.bin", res.FileName)
	assert.Equal(t, int64(5), res.Size)
}

func TestErrorHandlingController(t *testing.T) {
	ctl, err := controller.NewErrorHandling(newScope(t))
	require.NoError(t, err)

	assert.Equal(t, []string{
		controller.KindNotFound,
		controller.KindServerError,
		controller.KindBadPayload,
		controller.KindSlow,
	}, ctl.Kinds())

	t.Run("not found", func(t *testing.T) {
		err := ctl.Trigger(controller.KindNotFound)
		assert.True(t, apicli.IsNotFound(err))
		assert.Contains(t, ctl.Describe(err), "404")
	})

	t.Run("server error", func(t *testing.T) {
		err := ctl.Trigger(controller.KindServerError)
		assert.True(t, apicli.IsStatus(err))
		assert.Contains(t, ctl.Describe(err), "rejected")
	})

	t.Run("bad payload", func(t *testing.T) {
		err := ctl.Trigger(controller.KindBadPayload)
		assert.True(t, apicli.IsDecode(err))
		assert.Contains(t, ctl.Describe(err), "JSON")
	})

	t.Run("timeout", func(t *testing.T) {
		err := ctl.Trigger(controller.KindSlow)
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
		assert.Contains(t, ctl.Describe(err), "timed out")
	})

	t.Run("nil error", func(t *testing.T) {
		assert.Contains(t, ctl.Describe(nil), "succeeded")
	})
}

func TestControllerDisposal(t *testing.T) {
	ctl, err := controller.NewGetRequest(newScope(t))
	require.NoError(t, err)
	assert.False(t, ctl.Disposed())

	require.NoError(t, ctl.Shutdown())
	assert.True(t, ctl.Disposed())

	// Requests after disposal fail through the cancelled context.
	_, err = ctl.Load()
	assert.Error(t, err)
}
