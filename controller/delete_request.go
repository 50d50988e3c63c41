package controller

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/apicli"
)

// DeleteRequest backs the DELETE demo screen.
type DeleteRequest struct {
	api    apicli.ApiCli
	ctx    context.Context
	cancel context.CancelFunc
}

func NewDeleteRequest(i do.Injector) (*DeleteRequest, error) {
	api, err := do.Invoke[apicli.ApiCli](i)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &DeleteRequest{api: api, ctx: ctx, cancel: cancel}, nil
}

// Delete removes a user by id.
func (c *DeleteRequest) Delete(id string) error {
	return c.api.DeleteUser(c.ctx, id)
}

func (c *DeleteRequest) Shutdown() error {
	c.cancel()
	return nil
}

func (c *DeleteRequest) Disposed() bool {
	return c.ctx.Err() != nil
}
