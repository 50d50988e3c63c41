package apicli_test

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/apicli"
	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/demosrv"
)

func newClient(t *testing.T) apicli.ApiCli {
	t.Helper()
	srv := demosrv.NewServer()
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return apicli.NewRestCliWithBase(ts.URL)
}

func TestGetUsers(t *testing.T) {
	cli := newClient(t)

	users, err := cli.GetUsers(context.Background())
	require.NoError(t, err)
	assert.Len(t, users, 3)
	for _, u := range users {
		assert.NotEmpty(t, u.ID)
		assert.NotEmpty(t, u.Name)
	}
}

func TestCreateGetUpdateDelete(t *testing.T) {
	cli := newClient(t)
	ctx := context.Background()

	created, err := cli.CreateUser(ctx, "Marie Curie", "physicist")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Marie Curie", created.Name)

	got, err := cli.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	updated, err := cli.UpdateUser(ctx, created.ID, "M. Curie", "chemist")
	require.NoError(t, err)
	assert.Equal(t, "M. Curie", updated.Name)
	assert.Equal(t, "chemist", updated.Job)

	require.NoError(t, cli.DeleteUser(ctx, created.ID))

	_, err = cli.GetUser(ctx, created.ID)
	assert.True(t, apicli.IsNotFound(err))
}

func TestUploadFile(t *testing.T) {
	cli := newClient(t)

	res, err := cli.UploadFile(context.Background(), "readme.md", strings.NewReader("# hi"))
	require.NoError(t, err)
	assert.Equal(t, "readme.md", res.FileName)
	assert.Equal(t, int64(4), res.Size)
}

func TestErrorTaxonomy(t *testing.T) {
	cli := newClient(t)
	ctx := context.Background()

	t.Run("missing resource", func(t *testing.T) {
		err := cli.Fail(ctx, "not-found")
		require.Error(t, err)
		assert.True(t, apicli.IsNotFound(err))
	})

	t.Run("server error carries the status", func(t *testing.T) {
		err := cli.Fail(ctx, "server-error")
		require.Error(t, err)
		assert.True(t, apicli.IsStatus(err))

		var se *apicli.StatusError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, 500, se.Code)
	})

	t.Run("invalid json surfaces as decode error", func(t *testing.T) {
		err := cli.Fail(ctx, "bad-payload")
		require.Error(t, err)
		assert.True(t, apicli.IsDecode(err))

		var de *apicli.DecodeError
		require.ErrorAs(t, err, &de)
		assert.Error(t, de.Unwrap())
	})

	t.Run("delete of unknown id is not found", func(t *testing.T) {
		err := cli.DeleteUser(ctx, "no-such-id")
		assert.True(t, apicli.IsNotFound(err))
	})
}
