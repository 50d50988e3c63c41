package pages

import (
	"github.com/samber/lo"

	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/gui/nav"
)

// Route names are a stable contract; navigation calls reference them by
// literal path.
const (
	RouteHome          = "/"
	RouteGetRequest    = "/get-request"
	RoutePostRequest   = "/post-request"
	RouteUpdateRequest = "/update-request"
	RouteDeleteRequest = "/delete-request"
	RouteFileUpload    = "/file-upload"
	RouteErrorHandling = "/error-handling"
	RouteBestPractices = "/best-practices"
)

// BuildTable folds the wired page components into the immutable route table.
func BuildTable(pages ...Page) (*nav.Table, error) {
	routes := lo.Map(pages, func(p Page, _ int) nav.Route {
		return nav.Route{
			Name:       p.Route(),
			Factory:    p.Build,
			Binding:    p.Binding(),
			Transition: p.Transition(),
		}
	})
	return nav.NewTable(routes...)
}
