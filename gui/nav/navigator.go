package nav

import (
	"fmt"
	"log/slog"

	"github.com/samber/do/v2"
)

// Navigator resolves route names against the table and maintains the stack
// of live screens. Every pushed screen gets a child scope of the root
// injector; the scope is shut down when the screen is popped, which disposes
// any controller that was constructed in it.
//
// All methods run on the UI goroutine; the navigator does no locking of its
// own.
type Navigator struct {
	table *Table
	root  *do.RootScope
	stack *Stack
	seq   int
}

// New creates a navigator over an immutable route table. The root injector
// carries the services shared by all screens (the API client); screen scopes
// inherit from it.
func New(table *Table, root *do.RootScope) *Navigator {
	return &Navigator{
		table: table,
		root:  root,
		stack: NewStack(),
	}
}

// Push resolves name, runs the route's binding in a fresh screen scope, then
// invokes the screen factory. Binding strictly precedes construction. The new
// entry becomes the top of the stack.
func (n *Navigator) Push(name string) (*Entry, error) {
	route, err := n.table.Resolve(name)
	if err != nil {
		return nil, err
	}

	n.seq++
	scope := n.root.Scope(fmt.Sprintf("%s#%d", route.Name, n.seq))
	if route.Binding != nil {
		route.Binding.Dependencies(scope)
	}

	e := &Entry{
		Route:   route,
		Scope:   scope,
		Content: route.Factory(scope),
	}
	n.stack.Push(e)
	slog.Debug("nav: pushed", "route", route.Name, "depth", n.stack.Len())
	return e, nil
}

// Pop removes the top screen, shuts its scope down and returns the entry
// uncovered below it. The root screen cannot be popped.
func (n *Navigator) Pop() (*Entry, error) {
	if n.stack.Len() <= 1 {
		return nil, ErrStackBottom
	}
	e := n.stack.Pop()
	e.Scope.Shutdown()
	slog.Debug("nav: popped", "route", e.Route.Name, "depth", n.stack.Len())
	return n.stack.Peek(), nil
}

// Current returns the entry on display, or nil before the first Push.
func (n *Navigator) Current() *Entry {
	return n.stack.Peek()
}

// Depth returns the number of live screens.
func (n *Navigator) Depth() int {
	return n.stack.Len()
}

// Close shuts down every remaining screen scope, bottom included. Called
// when the window goes away.
func (n *Navigator) Close() {
	for n.stack.Len() > 0 {
		e := n.stack.Pop()
		e.Scope.Shutdown()
	}
}
