package pages

import (
	"github.com/samber/do/v2"

	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/controller"
)

// One binding per controller-bearing screen. Each runs in a fresh screen
// scope right before the screen is built and registers its controller
// lazily: nothing is constructed until the screen's first read, and the
// instance lives exactly as long as the scope.

// HomeBinding is deliberately empty; the home screen has no controller.
type HomeBinding struct{}

func (HomeBinding) Dependencies(do.Injector) {}

type GetRequestBinding struct{}

func (GetRequestBinding) Dependencies(i do.Injector) {
	do.Provide(i, controller.NewGetRequest)
}

type PostRequestBinding struct{}

func (PostRequestBinding) Dependencies(i do.Injector) {
	do.Provide(i, controller.NewPostRequest)
}

type UpdateRequestBinding struct{}

func (UpdateRequestBinding) Dependencies(i do.Injector) {
	do.Provide(i, controller.NewUpdateRequest)
}

type DeleteRequestBinding struct{}

func (DeleteRequestBinding) Dependencies(i do.Injector) {
	do.Provide(i, controller.NewDeleteRequest)
}

type FileUploadBinding struct{}

func (FileUploadBinding) Dependencies(i do.Injector) {
	do.Provide(i, controller.NewFileUpload)
}

type ErrorHandlingBinding struct{}

func (ErrorHandlingBinding) Dependencies(i do.Injector) {
	do.Provide(i, controller.NewErrorHandling)
}
