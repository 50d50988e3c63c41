package controller

import (
	"context"
	"io"

	"github.com/samber/do/v2"

	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/apicli"
)

// FileUpload backs the multipart upload demo screen.
type FileUpload struct {
	api    apicli.ApiCli
	ctx    context.Context
	cancel context.CancelFunc
}

func NewFileUpload(i do.Injector) (*FileUpload, error) {
	api, err := do.Invoke[apicli.ApiCli](i)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &FileUpload{api: api, ctx: ctx, cancel: cancel}, nil
}

// Upload sends the reader's content as a multipart file.
func (c *FileUpload) Upload(filename string, r io.Reader) (*apicli.UploadResult, error) {
	return c.api.UploadFile(c.ctx, filename, r)
}

func (c *FileUpload) Shutdown() error {
	c.cancel()
	return nil
}

func (c *FileUpload) Disposed() bool {
	return c.ctx.Err() != nil
}
