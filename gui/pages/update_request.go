package pages

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/samber/do/v2"

	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/controller"
	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/gui/nav"
)

// UpdateRequestPage demonstrates PUT: replace the name and job of an
// existing user by id.
type UpdateRequestPage struct {
	Main *MainWindow `wire:""`
}

func NewUpdateRequestPage() *UpdateRequestPage {
	return &UpdateRequestPage{}
}

func (p *UpdateRequestPage) Route() string              { return RouteUpdateRequest }
func (p *UpdateRequestPage) Title() string              { return "UPDATE Request" }
func (p *UpdateRequestPage) Transition() nav.Transition { return nav.TransitionRightToLeft }
func (p *UpdateRequestPage) Binding() nav.Binding       { return UpdateRequestBinding{} }

func (p *UpdateRequestPage) Build(i do.Injector) fyne.CanvasObject {
	ctl := do.MustInvoke[*controller.UpdateRequest](i)

	id := widget.NewEntry()
	id.SetPlaceHolder("user id")
	name := widget.NewEntry()
	name.SetPlaceHolder("new name")
	job := widget.NewEntry()
	job.SetPlaceHolder("new job")
	status := widget.NewLabel("")
	status.Wrapping = fyne.TextWrapWord

	form := widget.NewForm(
		widget.NewFormItem("ID", id),
		widget.NewFormItem("Name", name),
		widget.NewFormItem("Job", job),
	)
	form.SubmitText = "Update"
	form.OnSubmit = func() {
		go func() {
			u, err := ctl.Update(id.Text, name.Text, job.Text)
			if err != nil {
				status.SetText(fmt.Sprintf("PUT failed: %v", err))
				return
			}
			status.SetText(fmt.Sprintf("Updated %s → %s (%s)", u.ID, u.Name, u.Job))
		}()
	}

	return container.NewVBox(form, status)
}
