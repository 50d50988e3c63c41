package pages

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/samber/do/v2"

	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/apicli"
	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/controller"
	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/gui/nav"
)

// DeleteRequestPage demonstrates DELETE, including the 404 path when the id
// does not exist.
type DeleteRequestPage struct {
	Main *MainWindow `wire:""`
}

func NewDeleteRequestPage() *DeleteRequestPage {
	return &DeleteRequestPage{}
}

func (p *DeleteRequestPage) Route() string              { return RouteDeleteRequest }
func (p *DeleteRequestPage) Title() string              { return "DELETE Request" }
func (p *DeleteRequestPage) Transition() nav.Transition { return nav.TransitionRightToLeft }
func (p *DeleteRequestPage) Binding() nav.Binding       { return DeleteRequestBinding{} }

func (p *DeleteRequestPage) Build(i do.Injector) fyne.CanvasObject {
	ctl := do.MustInvoke[*controller.DeleteRequest](i)

	id := widget.NewEntry()
	id.SetPlaceHolder("user id")
	status := widget.NewLabel("")
	status.Wrapping = fyne.TextWrapWord

	del := widget.NewButton("Delete", func() {
		go func() {
			err := ctl.Delete(id.Text)
			switch {
			case err == nil:
				status.SetText(fmt.Sprintf("Deleted %s", id.Text))
			case apicli.IsNotFound(err):
				status.SetText(fmt.Sprintf("No user with id %s", id.Text))
			default:
				status.SetText(fmt.Sprintf("DELETE failed: %v", err))
			}
		}()
	})
	del.Importance = widget.DangerImportance

	return container.NewVBox(id, del, status)
}
