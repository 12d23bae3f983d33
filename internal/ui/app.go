package ui

import (
	"log"
	"time"

	"CurveBoard/internal/config"
	"CurveBoard/internal/export"
	"CurveBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/jonboulle/clockwork"
)

const appID = "io.curveboard.app"

// RunApp opens the drawing window and blocks until it is closed. The curve
// is saved when the window closes; a failed save ends the program.
func RunApp(cfg config.Config) {
	myApp := app.NewWithID(appID)
	myWindow := myApp.NewWindow("Continuous Curve Drawer")
	myWindow.SetPadded(false)
	myWindow.SetFixedSize(true)
	myWindow.Resize(fyne.NewSize(float32(cfg.Profile.Width), float32(cfg.Profile.Height)))

	session := state.NewSession(state.NewFileStore(cfg.Out))
	board := NewBoardWidget(session, cfg.Profile)

	stop := make(chan struct{})
	board.OnUpload = func() {
		showUploadDialog(myWindow, myApp.Preferences(), board)
	}
	board.OnQuit = func() {
		close(stop)
		if err := session.Quit(); err != nil {
			log.Fatalf("[UI] %v", err)
		}
		if cfg.PDF != "" {
			w, h := cfg.Profile.Width, cfg.Profile.Height
			if err := export.PDF(cfg.PDF, session.Curve(), w, h, "Curve "+session.ID()); err != nil {
				log.Fatalf("[UI] export pdf: %v", err)
			}
			log.Printf("[UI] exported %s", cfg.PDF)
		}
		myApp.Quit()
	}
	myWindow.SetCloseIntercept(board.RequestQuit)

	myWindow.SetContent(board)
	log.Printf("[UI] profile %s, %dx%d at %d fps", cfg.Profile.Name, cfg.Profile.Width, cfg.Profile.Height, cfg.Profile.FPS)

	step := func() { fyne.DoAndWait(board.Step) }
	go runFrames(clockwork.NewRealClock(), cfg.Profile.FPS, step, stop)
	myWindow.ShowAndRun()
}

// runFrames calls step at the given rate until stop is closed. step runs
// to completion before the next tick is taken, so ticks never pile up
// behind a busy UI.
func runFrames(clock clockwork.Clock, fps int, step func(), stop <-chan struct{}) {
	ticker := clock.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.Chan():
			step()
		}
	}
}
