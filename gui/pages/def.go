package pages

import (
	"fyne.io/fyne/v2"
	"github.com/samber/do/v2"

	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/gui/nav"
)

// Page is a navigable screen. Implementations are plain components; the
// main window collects them through wiring and folds them into the route
// table.
type Page interface {
	// Route is the stable path the screen is reachable at.
	Route() string
	// Title is shown in the window header.
	Title() string
	// Transition declares how the screen enters.
	Transition() nav.Transition
	// Binding returns the dependency registrations to run in the screen
	// scope before Build, or nil when the screen needs none.
	Binding() nav.Binding
	// Build renders the screen. The injector is the screen's own scope.
	Build(i do.Injector) fyne.CanvasObject
}
