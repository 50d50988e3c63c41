package pages

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/samber/do/v2"

	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/gui/nav"
)

const bestPracticesMD = `
# HTTP client best practices

- **Always set a timeout.** A request without a deadline can hang a screen
  forever; pass a context and honour cancellation.
- **Treat status codes as part of the contract.** 404 is an answer, not an
  exception; 5xx may be retried, 4xx usually must not.
- **Never trust the payload.** Decode defensively and surface decoding
  failures distinctly from transport failures.
- **Reuse the client.** One configured client per API, not one per request;
  connection pooling depends on it.
- **Keep request bodies streamable.** Upload from a reader instead of
  buffering whole files when you can.
- **Log requests, not secrets.** Method and path are enough for tracing;
  tokens and payloads are not log material.
`

// BestPracticesPage is purely informational: no binding, no controller,
// nothing registered in its scope.
type BestPracticesPage struct{}

func NewBestPracticesPage() *BestPracticesPage {
	return &BestPracticesPage{}
}

func (p *BestPracticesPage) Route() string              { return RouteBestPractices }
func (p *BestPracticesPage) Title() string              { return "Best Practices" }
func (p *BestPracticesPage) Transition() nav.Transition { return nav.TransitionFadeIn }
func (p *BestPracticesPage) Binding() nav.Binding       { return nil }

func (p *BestPracticesPage) Build(do.Injector) fyne.CanvasObject {
	md := widget.NewRichTextFromMarkdown(bestPracticesMD)
	md.Wrapping = fyne.TextWrapWord
	return container.NewVScroll(md)
}
