package pages

import (
	"context"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/samber/do/v2"

	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/apicli"
	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/events"
	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/gui/nav"
	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/gui/preference"
	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/themes"
	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/util/fas"
)

// MainWindow owns the window chrome and the navigator. Screens render into
// the content area; the header carries back navigation, the current title
// and the theme toggle.
type MainWindow struct {
	App   fyne.App      `wire:""`
	Api   apicli.ApiCli `wire:""`
	Bus   events.Bus    `wire:""`
	Pages []Page        `wire:""`

	win     fyne.Window
	nav     *nav.Navigator
	content *fyne.Container
	title   *widget.Label
	back    *widget.Button
	titles  map[string]string
}

func NewMainWindow() *MainWindow {
	return &MainWindow{titles: make(map[string]string)}
}

func (w *MainWindow) Init() error {
	w.win = w.App.NewWindow("API Learn")

	table, err := BuildTable(w.Pages...)
	if err != nil {
		return err
	}
	for _, p := range w.Pages {
		w.titles[p.Route()] = p.Title()
	}

	root := do.New()
	do.ProvideValue[apicli.ApiCli](root, w.Api)
	w.nav = nav.New(table, root)

	w.title = widget.NewLabelWithStyle("", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	w.back = widget.NewButtonWithIcon("", theme.NavigateBackIcon(), w.Back)
	w.back.Disable()

	header := container.NewBorder(nil, nil, w.back, w.themeToggle(), w.title)
	w.content = container.NewStack()
	w.win.SetContent(container.NewBorder(header, nil, nil, nil, w.content))
	w.win.Resize(fyne.NewSize(460, 680))
	w.win.CenterOnScreen()
	return nil
}

func (w *MainWindow) ShowAndRun() error {
	w.win.SetMaster()
	if err := w.Navigate(RouteHome); err != nil {
		return err
	}
	w.win.ShowAndRun()
	w.nav.Close()
	return nil
}

// Navigate pushes the named route and shows it. RouteNotFoundError
// propagates to the caller.
func (w *MainWindow) Navigate(name string) error {
	e, err := w.nav.Push(name)
	if err != nil {
		return err
	}
	w.show(e, e.Route.Transition)
	w.Bus.Publish(context.Background(), events.NavPushed, e.Route.Name)
	return nil
}

// Back pops the current screen, disposing its scope, and uncovers the one
// below. At the root it is a no-op.
func (w *MainWindow) Back() {
	e, err := w.nav.Pop()
	if err != nil {
		return
	}
	w.show(e, nav.TransitionNone)
	w.Bus.Publish(context.Background(), events.NavPopped, e.Route.Name)
}

// Window exposes the fyne window for dialogs.
func (w *MainWindow) Window() fyne.Window {
	return w.win
}

// Nav exposes the navigator for inspection in tests.
func (w *MainWindow) Nav() *nav.Navigator {
	return w.nav
}

func (w *MainWindow) show(e *nav.Entry, t nav.Transition) {
	w.content.Objects = []fyne.CanvasObject{e.Content}
	w.content.Refresh()
	w.animate(e.Content, t)
	w.title.SetText(fas.ZeroOr(w.titles[e.Route.Name], e.Route.Name))
	if w.nav.Depth() > 1 {
		w.back.Enable()
	} else {
		w.back.Disable()
	}
}

func (w *MainWindow) animate(obj fyne.CanvasObject, t nav.Transition) {
	size := w.content.Size()
	var from fyne.Position
	switch t {
	case nav.TransitionRightToLeft:
		from = fyne.NewPos(size.Width, 0)
	case nav.TransitionLeftToRight:
		from = fyne.NewPos(-size.Width, 0)
	default:
		// Fades have no per-object opacity in fyne; swap immediately.
		return
	}
	obj.Move(from)
	canvas.NewPositionAnimation(from, fyne.NewPos(0, 0), canvas.DurationShort, obj.Move).Start()
}

func (w *MainWindow) themeToggle() *widget.Button {
	app := w.App
	dark := app.Preferences().BoolWithFallback(preference.ThemeDark, app.Settings().ThemeVariant() == theme.VariantDark)
	app.Settings().SetTheme(fas.TernaryOp(dark, themes.DarkTheme(), themes.LightTheme()))

	btn := widget.NewButton(fas.TernaryOp(dark, "Light", "Dark"), nil)
	btn.OnTapped = func() {
		dark = !dark
		app.Preferences().SetBool(preference.ThemeDark, dark)
		app.Settings().SetTheme(fas.TernaryOp(dark, themes.DarkTheme(), themes.LightTheme()))
		btn.SetText(fas.TernaryOp(dark, "Light", "Dark"))
	}
	return btn
}
