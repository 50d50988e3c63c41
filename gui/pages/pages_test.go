package pages_test

import (
	"context"
	"io"

	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/apicli"
)

// fakeApi satisfies the client interface without any transport; the page
// tests only exercise wiring, never requests.
type fakeApi struct{}

func (fakeApi) GetUsers(context.Context) ([]apicli.User, error) {
	return []apicli.User{{ID: "1", Name: "Fake", Job: "stub"}}, nil
}

func (fakeApi) GetUser(_ context.Context, id string) (*apicli.User, error) {
	return &apicli.User{ID: id, Name: "Fake"}, nil
}

func (fakeApi) CreateUser(_ context.Context, name, job string) (*apicli.User, error) {
	return &apicli.User{ID: "new", Name: name, Job: job}, nil
}

func (fakeApi) UpdateUser(_ context.Context, id, name, job string) (*apicli.User, error) {
	return &apicli.User{ID: id, Name: name, Job: job}, nil
}

func (fakeApi) DeleteUser(context.Context, string) error {
	return nil
}

func (fakeApi) UploadFile(_ context.Context, filename string, r io.Reader) (*apicli.UploadResult, error) {
	n, err := io.Copy(io.Discard, r)
	if err != nil {
		return nil, err
	}
	return &apicli.UploadResult{FileName: filename, Size: n}, nil
}

func (fakeApi) Fail(context.Context, string) error {
	return apicli.ErrNotFound
}
