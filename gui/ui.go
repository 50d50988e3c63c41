package gui

import (
	"fyne.io/fyne/v2"

	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/demosrv"
	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/gui/pages"
)

type ui struct {
	App        fyne.App          `wire:""`
	MainWindow *pages.MainWindow `wire:""`
	API        *demosrv.Server   `wire:""`
}

func NewUI() any {
	return &ui{}
}

func (u *ui) Order() int {
	return 0
}

func (u *ui) Init() error {
	u.logLifecycle()
	return nil
}

func (u *ui) Run() error {
	defer u.API.Close()
	return u.MainWindow.ShowAndRun()
}
