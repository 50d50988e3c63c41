package pages

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/samber/do/v2"

	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/gui/nav"
)

type demoEntry struct {
	title    string
	subtitle string
	route    string
}

var demoEntries = []demoEntry{
	{"GET Request", "Fetch a list of users", RouteGetRequest},
	{"POST Request", "Create a new user", RoutePostRequest},
	{"UPDATE Request", "Replace an existing user", RouteUpdateRequest},
	{"DELETE Request", "Remove a user", RouteDeleteRequest},
	{"File Upload", "Send a file as multipart form data", RouteFileUpload},
	{"Error Handling", "Provoke failures and classify them", RouteErrorHandling},
	{"Best Practices", "Notes on writing well-behaved clients", RouteBestPractices},
}

// HomePage is the demo menu. Its binding is a no-op: the home screen has no
// controller and registers nothing.
type HomePage struct {
	Main *MainWindow `wire:""`
}

func NewHomePage() *HomePage {
	return &HomePage{}
}

func (p *HomePage) Route() string              { return RouteHome }
func (p *HomePage) Title() string              { return "API Learn" }
func (p *HomePage) Transition() nav.Transition { return nav.TransitionFadeIn }
func (p *HomePage) Binding() nav.Binding       { return HomeBinding{} }

func (p *HomePage) Build(do.Injector) fyne.CanvasObject {
	list := widget.NewList(
		func() int { return len(demoEntries) },
		func() fyne.CanvasObject {
			return widget.NewCard("", "", widget.NewLabel(""))
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			card := obj.(*widget.Card)
			card.SetTitle(demoEntries[id].title)
			card.SetSubTitle(demoEntries[id].subtitle)
		},
	)
	list.OnSelected = func(id widget.ListItemID) {
		defer list.Unselect(id)
		if err := p.Main.Navigate(demoEntries[id].route); err != nil {
			dialog.ShowError(err, p.Main.Window())
		}
	}
	return list
}
