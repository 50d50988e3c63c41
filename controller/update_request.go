package controller

import (
	"context"

	"github.com/samber/do/v2"

	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/apicli"
)

// UpdateRequest backs the UPDATE (PUT) demo screen.
type UpdateRequest struct {
	api    apicli.ApiCli
	ctx    context.Context
	cancel context.CancelFunc
}

func NewUpdateRequest(i do.Injector) (*UpdateRequest, error) {
	api, err := do.Invoke[apicli.ApiCli](i)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &UpdateRequest{api: api, ctx: ctx, cancel: cancel}, nil
}

// Update replaces the name and job of an existing user.
func (c *UpdateRequest) Update(id, name, job string) (*apicli.User, error) {
	return c.api.UpdateUser(c.ctx, id, name, job)
}

func (c *UpdateRequest) Shutdown() error {
	c.cancel()
	return nil
}

func (c *UpdateRequest) Disposed() bool {
	return c.ctx.Err() != nil
}
