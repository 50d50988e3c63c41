package controller

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/samber/do/v2"

	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/apicli"
)

// Failure kinds the error handling screen can trigger. They match the demo
// server's /api/error/{kind} endpoints.
const (
	KindNotFound    = "not-found"
	KindServerError = "server-error"
	KindBadPayload  = "bad-payload"
	KindSlow        = "slow"
)

// ErrorHandling backs the error handling demo screen: it provokes failures
// on purpose and turns them into user-facing descriptions.
type ErrorHandling struct {
	api    apicli.ApiCli
	ctx    context.Context
	cancel context.CancelFunc
}

func NewErrorHandling(i do.Injector) (*ErrorHandling, error) {
	api, err := do.Invoke[apicli.ApiCli](i)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &ErrorHandling{api: api, ctx: ctx, cancel: cancel}, nil
}

// Kinds lists the failure kinds in display order.
func (c *ErrorHandling) Kinds() []string {
	return []string{KindNotFound, KindServerError, KindBadPayload, KindSlow}
}

// Trigger provokes the named failure. The slow kind runs under a short
// deadline so it comes back as a timeout instead of hanging the screen.
func (c *ErrorHandling) Trigger(kind string) error {
	ctx := c.ctx
	if kind == KindSlow {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(c.ctx, 2*time.Second)
		defer cancel()
	}
	return c.api.Fail(ctx, kind)
}

// Describe classifies an error from Trigger into a short user-facing
// explanation of what went wrong and how a client should react.
func (c *ErrorHandling) Describe(err error) string {
	switch {
	case err == nil:
		return "no error, the request succeeded"
	case apicli.IsNotFound(err):
		return "404: the resource does not exist; check the id before retrying"
	case apicli.IsStatus(err):
		return fmt.Sprintf("the server rejected the request (%v); retrying may help for 5xx", err)
	case apicli.IsDecode(err):
		return "the response body was not valid JSON; treat the payload as untrusted"
	case errors.Is(err, context.DeadlineExceeded):
		return "the request timed out; the server was too slow to answer"
	default:
		return fmt.Sprintf("transport failure: %v", err)
	}
}

func (c *ErrorHandling) Shutdown() error {
	c.cancel()
	return nil
}

func (c *ErrorHandling) Disposed() bool {
	return c.ctx.Err() != nil
}
