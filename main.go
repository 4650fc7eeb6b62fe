package main

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/formkit/internal/config"
	"github.com/ytget/formkit/internal/platform"
	"github.com/ytget/formkit/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const AppName = "Formkit Playground"

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	opts, err := config.LoadOptions()
	if err != nil {
		log.Printf("Warning: %v; using default options", err)
		opts = config.DefaultOptions()
	}

	myApp := app.NewWithID(opts.App.ID)
	if opts.UI.Compact {
		myApp.Settings().SetTheme(ui.NewCompactTheme())
	}

	// Forms picked in the settings dialog usually live here
	if dir, err := platform.GetFormsDir(); err != nil {
		log.Printf("Warning: failed to resolve forms directory: %v", err)
	} else if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		log.Printf("Warning: failed to ensure forms dir: %v", err)
	}

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	root := ui.NewRootUI(myWindow, myApp, opts)
	myWindow.SetOnClosed(root.Close)

	myWindow.ShowAndRun()
}
