package nav

import "github.com/samber/do/v2"

// Binding registers a screen's dependencies into its scope before the screen
// factory runs. Implementations register providers lazily; construction is
// deferred to the screen's first read. Bindings do no error handling of their
// own, provider failures surface on invoke.
type Binding interface {
	Dependencies(i do.Injector)
}

// BindingFunc adapts a plain function to the Binding interface.
type BindingFunc func(i do.Injector)

func (f BindingFunc) Dependencies(i do.Injector) {
	f(i)
}
