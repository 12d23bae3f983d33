package ui

import (
	"image/color"
	"log"

	"CurveBoard/internal/raster"
	"CurveBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
)

const (
	uploadLabel    = "Upload Image"
	uploadTextSize = 14
	uploadPadding  = 4
	lastDirPref    = "upload.lastDir"
)

var (
	uploadOrigin = fyne.NewPos(10, 10)
	uploadFill   = color.NRGBA{R: 235, G: 235, B: 235, A: 230}
	uploadBorder = color.NRGBA{R: 90, G: 90, B: 90, A: 255}
)

func uploadButtonSize() fyne.Size {
	text := fyne.MeasureText(uploadLabel, uploadTextSize, fyne.TextStyle{})
	return text.AddWidthHeight(2*uploadPadding, 2*uploadPadding)
}

// uploadButtonRect is the hit region of the upload button in canvas pixels.
func uploadButtonRect() state.Rect {
	size := uploadButtonSize()
	topLeft := toPoint(uploadOrigin)
	bottomRight := toPoint(uploadOrigin.AddXY(size.Width, size.Height))
	return state.Rect{Min: topLeft, Max: bottomRight}
}

func uploadButtonObjects() []fyne.CanvasObject {
	box := canvas.NewRectangle(uploadFill)
	box.StrokeColor = uploadBorder
	box.StrokeWidth = 1
	box.Move(uploadOrigin)
	box.Resize(uploadButtonSize())

	text := canvas.NewText(uploadLabel, color.Black)
	text.TextSize = uploadTextSize
	text.Move(uploadOrigin.AddXY(uploadPadding, uploadPadding))
	text.Resize(text.MinSize())
	return []fyne.CanvasObject{box, text}
}

// showUploadDialog opens the image picker over win. The board stays frozen
// until the dialog is resolved; a cancelled dialog keeps the old image.
// A file that cannot be loaded ends the program.
func showUploadDialog(win fyne.Window, prefs fyne.Preferences, board *BoardWidget) {
	d := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
		if err != nil {
			log.Fatalf("[UI] file dialog: %v", err)
		}
		if rc == nil {
			log.Println("[UI] upload cancelled")
			board.ResolveUpload(nil)
			return
		}
		defer rc.Close()

		img, err := raster.Load(rc, board.profile.Width, board.profile.Height)
		if err != nil {
			log.Fatalf("[UI] load %s: %v", rc.URI().Path(), err)
		}
		if dir, err := storage.Parent(rc.URI()); err == nil {
			prefs.SetString(lastDirPref, dir.String())
		}
		log.Printf("[UI] loaded background %s", rc.URI().Name())
		board.ResolveUpload(img)
	}, win)

	d.SetFilter(storage.NewExtensionFileFilter(raster.Extensions))
	if last := prefs.String(lastDirPref); last != "" {
		if uri, err := storage.ParseURI(last); err == nil {
			if dir, err := storage.ListerForURI(uri); err == nil {
				d.SetLocation(dir)
			}
		}
	}
	d.Resize(fyne.NewSize(float32(board.profile.Width)*0.9, float32(board.profile.Height)*0.9))
	d.Show()
}
