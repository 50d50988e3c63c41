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

// PostRequestPage demonstrates POST: a small form that creates a user and
// shows the id the server assigned.
type PostRequestPage struct {
	Main *MainWindow `wire:""`
}

func NewPostRequestPage() *PostRequestPage {
	return &PostRequestPage{}
}

func (p *PostRequestPage) Route() string              { return RoutePostRequest }
func (p *PostRequestPage) Title() string              { return "POST Request" }
func (p *PostRequestPage) Transition() nav.Transition { return nav.TransitionRightToLeft }
func (p *PostRequestPage) Binding() nav.Binding       { return PostRequestBinding{} }

func (p *PostRequestPage) Build(i do.Injector) fyne.CanvasObject {
	ctl := do.MustInvoke[*controller.PostRequest](i)

	name := widget.NewEntry()
	name.SetPlaceHolder("name")
	job := widget.NewEntry()
	job.SetPlaceHolder("job")
	status := widget.NewLabel("")
	status.Wrapping = fyne.TextWrapWord

	form := widget.NewForm(
		widget.NewFormItem("Name", name),
		widget.NewFormItem("Job", job),
	)
	form.SubmitText = "Create"
	form.OnSubmit = func() {
		go func() {
			u, err := ctl.Create(name.Text, job.Text)
			if err != nil {
				status.SetText(fmt.Sprintf("POST failed: %v", err))
				return
			}
			status.SetText(fmt.Sprintf("Created %s — id %s", u.Name, u.ID))
		}()
	}

	return container.NewVBox(form, status)
}
