package apicli

import (
	"context"
	"io"
	"time"
)

// User is the resource the CRUD demo screens operate on.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Job       string    `json:"job"`
	CreatedAt time.Time `json:"created_at"`
}

// UploadResult describes a file accepted by the upload endpoint.
type UploadResult struct {
	FileName string `json:"file_name"`
	Size     int64  `json:"size"`
}

// ApiCli is the typed REST client the screen controllers talk through.
type ApiCli interface {
	GetUsers(ctx context.Context) ([]User, error)
	GetUser(ctx context.Context, id string) (*User, error)
	CreateUser(ctx context.Context, name, job string) (*User, error)
	UpdateUser(ctx context.Context, id, name, job string) (*User, error)
	DeleteUser(ctx context.Context, id string) error
	UploadFile(ctx context.Context, filename string, r io.Reader) (*UploadResult, error)

	// Fail requests one of the deliberate failure endpoints, for the error
	// handling demo. It always returns a non-nil error for known kinds.
	Fail(ctx context.Context, kind string) error
}
