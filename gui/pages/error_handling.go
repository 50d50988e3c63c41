package pages

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/samber/do/v2"
	"github.com/samber/lo"

	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/controller"
	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/gui/nav"
)

// ErrorHandlingPage demonstrates failure classification: each button hits an
// endpoint that fails in a specific way and the screen explains the result.
type ErrorHandlingPage struct {
	Main *MainWindow `wire:""`
}

func NewErrorHandlingPage() *ErrorHandlingPage {
	return &ErrorHandlingPage{}
}

func (p *ErrorHandlingPage) Route() string              { return RouteErrorHandling }
func (p *ErrorHandlingPage) Title() string              { return "Error Handling" }
func (p *ErrorHandlingPage) Transition() nav.Transition { return nav.TransitionRightToLeft }
func (p *ErrorHandlingPage) Binding() nav.Binding       { return ErrorHandlingBinding{} }

func (p *ErrorHandlingPage) Build(i do.Injector) fyne.CanvasObject {
	ctl := do.MustInvoke[*controller.ErrorHandling](i)

	status := widget.NewLabel("Pick a failure to provoke.")
	status.Wrapping = fyne.TextWrapWord

	buttons := lo.Map(ctl.Kinds(), func(kind string, _ int) fyne.CanvasObject {
		return widget.NewButton(kind, func() {
			status.SetText("waiting…")
			go func() {
				err := ctl.Trigger(kind)
				status.SetText(ctl.Describe(err))
			}()
		})
	})

	return container.NewVBox(append(buttons, status)...)
}
