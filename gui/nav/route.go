package nav

import (
	"fmt"
	"sort"

	"fyne.io/fyne/v2"
	"github.com/samber/do/v2"
	"github.com/samber/lo"
)

// Transition declares how a screen enters the window when its route is
// pushed.
type Transition int

const (
	TransitionNone Transition = iota
	TransitionFadeIn
	TransitionRightToLeft
	TransitionLeftToRight
)

func (t Transition) String() string {
	switch t {
	case TransitionFadeIn:
		return "fadeIn"
	case TransitionRightToLeft:
		return "rightToLeft"
	case TransitionLeftToRight:
		return "leftToRight"
	default:
		return "none"
	}
}

// PageFactory builds the screen content. The injector is the screen's own
// scope; the route's binding has already run against it.
type PageFactory func(i do.Injector) fyne.CanvasObject

// Route maps a stable path name to a screen factory, the dependency binding
// to run before the factory, and the enter transition. Binding may be nil for
// purely informational screens.
type Route struct {
	Name       string
	Factory    PageFactory
	Binding    Binding
	Transition Transition
}

// Table is the route table. It is built once at startup and never mutated;
// lookup is by name, entry order is irrelevant.
type Table struct {
	routes map[string]Route
}

// NewTable builds a table from a flat enumeration of routes. Empty names,
// nil factories and duplicate names are rejected.
func NewTable(routes ...Route) (*Table, error) {
	t := &Table{routes: make(map[string]Route, len(routes))}
	for _, r := range routes {
		if r.Name == "" {
			return nil, fmt.Errorf("nav: route with empty name")
		}
		if r.Factory == nil {
			return nil, fmt.Errorf("nav: route %q has no factory", r.Name)
		}
		if _, ok := t.routes[r.Name]; ok {
			return nil, fmt.Errorf("nav: duplicate route %q", r.Name)
		}
		t.routes[r.Name] = r
	}
	return t, nil
}

// MustTable is NewTable for static wiring.
func MustTable(routes ...Route) *Table {
	t, err := NewTable(routes...)
	if err != nil {
		panic(err)
	}
	return t
}

// Resolve returns the route registered under name, or a *RouteNotFoundError.
func (t *Table) Resolve(name string) (*Route, error) {
	r, ok := t.routes[name]
	if !ok {
		return nil, &RouteNotFoundError{Name: name}
	}
	return &r, nil
}

// Names returns the registered route names, sorted.
func (t *Table) Names() []string {
	names := lo.Keys(t.routes)
	sort.Strings(names)
	return names
}

func (t *Table) Len() int {
	return len(t.routes)
}
