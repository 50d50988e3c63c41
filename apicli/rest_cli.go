package apicli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"

	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/demosrv"
	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/gui/preference"
)

type restCli struct {
	Server *demosrv.Server `wire:""`

	cli     *http.Client
	baseURL func() string
}

// NewRestCli returns the client component wired against the embedded demo
// server. A different API can be targeted through the base URL preference.
func NewRestCli() ApiCli {
	return &restCli{}
}

func (c *restCli) Init() error {
	c.cli = &http.Client{Timeout: 15 * time.Second}
	// The demo server binds its listener during component init; resolve the
	// base URL on first request instead of here so init order stays free.
	c.baseURL = sync.OnceValue(func() string {
		if app := fyne.CurrentApp(); app != nil {
			if v := app.Preferences().String(preference.APIBaseURL); v != "" {
				return strings.TrimRight(v, "/")
			}
		}
		return c.Server.BaseURL()
	})
	return nil
}

// NewRestCliWithBase returns a client bound to a fixed base URL, bypassing
// component wiring. Used against test servers.
func NewRestCliWithBase(base string) ApiCli {
	base = strings.TrimRight(base, "/")
	return &restCli{
		cli:     &http.Client{Timeout: 15 * time.Second},
		baseURL: func() string { return base },
	}
}

func (c *restCli) GetUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.call(ctx, http.MethodGet, "/api/users", nil, "", "list users", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *restCli) GetUser(ctx context.Context, id string) (*User, error) {
	var u User
	if err := c.call(ctx, http.MethodGet, "/api/users/"+url.PathEscape(id), nil, "", "get user", &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *restCli) CreateUser(ctx context.Context, name, job string) (*User, error) {
	body, err := json.Marshal(map[string]string{"name": name, "job": job})
	if err != nil {
		return nil, fmt.Errorf("apicli: create user: encode request: %w", err)
	}
	var u User
	if err := c.call(ctx, http.MethodPost, "/api/users", bytes.NewReader(body), "application/json", "create user", &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *restCli) UpdateUser(ctx context.Context, id, name, job string) (*User, error) {
	body, err := json.Marshal(map[string]string{"name": name, "job": job})
	if err != nil {
		return nil, fmt.Errorf("apicli: update user: encode request: %w", err)
	}
	var u User
	if err := c.call(ctx, http.MethodPut, "/api/users/"+url.PathEscape(id), bytes.NewReader(body), "application/json", "update user", &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *restCli) DeleteUser(ctx context.Context, id string) error {
	return c.call(ctx, http.MethodDelete, "/api/users/"+url.PathEscape(id), nil, "", "delete user", nil)
}

func (c *restCli) UploadFile(ctx context.Context, filename string, r io.Reader) (*UploadResult, error) {
	const op = "upload file"

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("apicli: %s: %w", op, err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return nil, fmt.Errorf("apicli: %s: read source: %w", op, err)
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("apicli: %s: %w", op, err)
	}

	var res UploadResult
	if err := c.call(ctx, http.MethodPost, "/api/upload", &buf, mw.FormDataContentType(), op, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *restCli) Fail(ctx context.Context, kind string) error {
	// Decode into a User so the bad-payload endpoint surfaces as a
	// DecodeError rather than being ignored.
	var u User
	return c.call(ctx, http.MethodGet, "/api/error/"+url.PathEscape(kind), nil, "", "trigger "+kind, &u)
}

func (c *restCli) call(ctx context.Context, method, path string, body io.Reader, contentType, op string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL()+path, body)
	if err != nil {
		return fmt.Errorf("apicli: %s: %w", op, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.cli.Do(req)
	if err != nil {
		return fmt.Errorf("apicli: %s: %w", op, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("apicli: %s: %w", op, ErrNotFound)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return &StatusError{Op: op, Code: resp.StatusCode}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &DecodeError{Op: op, Err: err}
	}
	return nil
}
