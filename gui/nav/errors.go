package nav

import (
	"errors"
	"fmt"
)

// RouteNotFoundError reports navigation to a name absent from the route
// table. It propagates to the caller of Push/Resolve; nothing at this layer
// recovers from it.
type RouteNotFoundError struct {
	Name string
}

func (e *RouteNotFoundError) Error() string {
	return fmt.Sprintf("nav: no route registered for %q", e.Name)
}

// IsRouteNotFound checks if an error is a route resolution failure.
func IsRouteNotFound(err error) bool {
	var rnf *RouteNotFoundError
	return errors.As(err, &rnf)
}

// ErrStackBottom is returned by Pop when only the root screen remains.
var ErrStackBottom = errors.New("nav: already at the root screen")
