package pages

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/data/binding"
	"fyne.io/fyne/v2/widget"
	"github.com/samber/do/v2"
	"github.com/samber/lo"

	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/apicli"
	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/controller"
	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/gui/nav"
)

// GetRequestPage demonstrates GET requests: fetch the user list and render
// it. The controller comes out of the screen scope on first read.
type GetRequestPage struct {
	Main *MainWindow `wire:""`
}

func NewGetRequestPage() *GetRequestPage {
	return &GetRequestPage{}
}

func (p *GetRequestPage) Route() string              { return RouteGetRequest }
func (p *GetRequestPage) Title() string              { return "GET Request" }
func (p *GetRequestPage) Transition() nav.Transition { return nav.TransitionRightToLeft }
func (p *GetRequestPage) Binding() nav.Binding       { return GetRequestBinding{} }

func (p *GetRequestPage) Build(i do.Injector) fyne.CanvasObject {
	ctl := do.MustInvoke[*controller.GetRequest](i)

	status := widget.NewLabel("Tap Fetch to load users.")
	data := binding.NewStringList()
	list := widget.NewListWithData(data,
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(item binding.DataItem, obj fyne.CanvasObject) {
			s, _ := item.(binding.String).Get()
			obj.(*widget.Label).SetText(s)
		},
	)

	fetch := widget.NewButton("Fetch users", nil)
	fetch.OnTapped = func() {
		fetch.Disable()
		go func() {
			defer fetch.Enable()
			users, err := ctl.Load()
			if err != nil {
				status.SetText(fmt.Sprintf("GET failed: %v", err))
				return
			}
			status.SetText(fmt.Sprintf("GET /api/users → %d users", len(users)))
			data.Set(lo.Map(users, func(u apicli.User, _ int) string {
				return fmt.Sprintf("%s — %s (%s)", u.Name, u.Job, u.ID)
			}))
		}()
	}

	top := container.NewVBox(fetch, status)
	return container.NewBorder(top, nil, nil, nil, list)
}
