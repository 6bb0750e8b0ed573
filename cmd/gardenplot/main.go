// GardenPlot — Garden Layout Planner
//
// A cross-platform desktop application for planning garden beds on a
// grid, with companion-planting analysis and plan export.
//
// Build:
//   go build -o gardenplot ./cmd/gardenplot
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o gardenplot.exe ./cmd/gardenplot
//   GOOS=darwin  GOARCH=amd64 go build -o gardenplot-darwin ./cmd/gardenplot
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"go.uber.org/zap"

	"github.com/piwi3910/GardenPlot/internal/ui"
)

func main() {
	log, err := zap.NewProduction()
	if err != nil {
		os.Exit(1)
	}
	defer log.Sync()

	application := app.NewWithID("com.piwi3910.gardenplot")

	window := application.NewWindow("GardenPlot — Garden Layout Planner")

	appUI, err := ui.NewApp(window, log)
	if err != nil {
		log.Fatal("startup failed", zap.Error(err))
	}
	appUI.SetupMenus()
	window.SetContent(appUI.Build())
	window.Resize(fyne.NewSize(1200, 760))
	window.CenterOnScreen()

	window.Show()
	application.Run()
}
