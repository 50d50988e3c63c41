package main

import (
	"fyne.io/fyne/v2/app"
	"github.com/go-kid/ioc"

	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/apicli"
	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/demosrv"
	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/events"
	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/gui"
	"github.com/AbdullahAbuAjwa/Api-Learn-sub001/gui/pages"
)

func init() {
	ioc.Register(
		app.NewWithID("com.abdullahabuajwa.apilearn"),
		gui.NewUI(),
		gui.NewNavLogListener(),
		pages.NewMainWindow(),
		pages.NewHomePage(),
		pages.NewGetRequestPage(),
		pages.NewPostRequestPage(),
		pages.NewUpdateRequestPage(),
		pages.NewDeleteRequestPage(),
		pages.NewFileUploadPage(),
		pages.NewErrorHandlingPage(),
		pages.NewBestPracticesPage(),
		apicli.NewRestCli(),
		demosrv.NewServer(),
		events.NewBus(),
	)
}
