package pages

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/samber/do/v2"

	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/controller"
	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/gui/nav"
)

// FileUploadPage demonstrates a multipart file upload: pick a file, send it,
// show what the server accepted.
type FileUploadPage struct {
	Main *MainWindow `wire:""`
}

func NewFileUploadPage() *FileUploadPage {
	return &FileUploadPage{}
}

func (p *FileUploadPage) Route() string              { return RouteFileUpload }
func (p *FileUploadPage) Title() string              { return "File Upload" }
func (p *FileUploadPage) Transition() nav.Transition { return nav.TransitionRightToLeft }
func (p *FileUploadPage) Binding() nav.Binding       { return FileUploadBinding{} }

func (p *FileUploadPage) Build(i do.Injector) fyne.CanvasObject {
	ctl := do.MustInvoke[*controller.FileUpload](i)

	status := widget.NewLabel("Pick a file to upload.")
	status.Wrapping = fyne.TextWrapWord

	pick := widget.NewButton("Choose file…", func() {
		dialog.ShowFileOpen(func(rc fyne.URIReadCloser, err error) {
			if err != nil {
				status.SetText(fmt.Sprintf("open file: %v", err))
				return
			}
			if rc == nil {
				return
			}
			go func() {
				defer rc.Close()
				res, err := ctl.Upload(rc.URI().Name(), rc)
				if err != nil {
					status.SetText(fmt.Sprintf("upload failed: %v", err))
					return
				}
				status.SetText(fmt.Sprintf("Uploaded %s (%d bytes)", res.FileName, res.Size))
			}()
		}, p.Main.Window())
	})

	return container.NewVBox(pick, status)
}
