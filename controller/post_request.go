package controller

import (
	"context"
	"sync"

	"github.com/samber/do/v2"

	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/apicli"
)

// PostRequest backs the POST demo screen.
type PostRequest struct {
	api    apicli.ApiCli
	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	created *apicli.User
}

func NewPostRequest(i do.Injector) (*PostRequest, error) {
	api, err := do.Invoke[apicli.ApiCli](i)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &PostRequest{api: api, ctx: ctx, cancel: cancel}, nil
}

// Create posts a new user and remembers it.
func (c *PostRequest) Create(name, job string) (*apicli.User, error) {
	u, err := c.api.CreateUser(c.ctx, name, job)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.created = u
	c.mu.Unlock()
	return u, nil
}

// LastCreated returns the most recently created user, or nil.
func (c *PostRequest) LastCreated() *apicli.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.created
}

func (c *PostRequest) Shutdown() error {
	c.cancel()
	return nil
}

func (c *PostRequest) Disposed() bool {
	return c.ctx.Err() != nil
}
