// Package controller holds the per-screen controllers. Each one is
// registered lazily by its screen's binding, constructed on the screen's
// first read, and disposed when the screen scope shuts down.
package controller

import (
	"context"
	"sync"

	"github.com/samber/do/v2"

	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/apicli"
)

// GetRequest backs the GET demo screen: it fetches the user list and caches
// the last successful result.
type GetRequest struct {
	api    apicli.ApiCli
	ctx    context.Context
	cancel context.CancelFunc

	mu    sync.Mutex
	users []apicli.User
}

func NewGetRequest(i do.Injector) (*GetRequest, error) {
	api, err := do.Invoke[apicli.ApiCli](i)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &GetRequest{api: api, ctx: ctx, cancel: cancel}, nil
}

// Load fetches the user list and caches it.
func (c *GetRequest) Load() ([]apicli.User, error) {
	users, err := c.api.GetUsers(c.ctx)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.users = users
	c.mu.Unlock()
	return users, nil
}

// Lookup fetches a single user by id.
func (c *GetRequest) Lookup(id string) (*apicli.User, error) {
	return c.api.GetUser(c.ctx, id)
}

// Users returns the last loaded list.
func (c *GetRequest) Users() []apicli.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.users
}

// Shutdown cancels any in-flight request; the controller is unusable after.
func (c *GetRequest) Shutdown() error {
	c.cancel()
	return nil
}

// Disposed reports whether Shutdown has run.
func (c *GetRequest) Disposed() bool {
	return c.ctx.Err() != nil
}
