package ui

import (
	"image"
	"image/color"
	"math"

	"CurveBoard/internal/config"
	"CurveBoard/internal/grid"
	"CurveBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

var (
	backgroundColor = color.White
	gridMinorColor  = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
	gridMajorColor  = color.NRGBA{R: 170, G: 170, B: 170, A: 255}
	tickColor       = color.NRGBA{R: 80, G: 80, B: 80, A: 255}
	labelColor      = color.NRGBA{R: 80, G: 80, B: 80, A: 255}
	curveColor      = color.Black
)

const curveWidth = 2

// BoardWidget is the drawing surface. Input callbacks only queue events and
// track the pointer; the session sees them when Step runs the next frame.
type BoardWidget struct {
	widget.BaseWidget
	session *state.Session
	profile config.Profile

	pending []state.Event
	pointer state.Point

	// OnUpload is called when a click lands on the upload button. The
	// handler must eventually call ResolveUpload.
	OnUpload func()
	// OnQuit is called from Step once the quit event has been handled.
	OnQuit func()
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

func NewBoardWidget(s *state.Session, p config.Profile) *BoardWidget {
	b := &BoardWidget{session: s, profile: p}
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) Session() *state.Session { return b.session }

func toPoint(pos fyne.Position) state.Point {
	return state.Point{X: int(math.Round(float64(pos.X))), Y: int(math.Round(float64(pos.Y)))}
}

// Step runs one frame of the loop.
func (b *BoardWidget) Step() {
	events := b.pending
	b.pending = nil

	res := b.session.Frame(b.uploadBox(), events, b.pointer)
	if res.Quit {
		if b.OnQuit != nil {
			b.OnQuit()
		}
		return
	}
	if res.OpenDialog {
		if b.OnUpload != nil {
			b.OnUpload()
		} else {
			b.session.ResolveDialog(nil)
		}
	}
	b.Refresh()
}

// RequestQuit queues the quit event for the next frame.
func (b *BoardWidget) RequestQuit() {
	b.pending = append(b.pending, state.Quit())
}

// ResolveUpload ends the upload dialog; img is nil when it was cancelled.
func (b *BoardWidget) ResolveUpload(img image.Image) {
	b.session.ResolveDialog(img)
	b.Refresh()
}

func (b *BoardWidget) uploadBox() state.Rect {
	if !b.profile.Upload {
		return state.Rect{}
	}
	return uploadButtonRect()
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.pointer = toPoint(e.Position)
	b.pending = append(b.pending, state.Event{Type: state.EventPress, Pos: b.pointer})
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.pointer = toPoint(e.Position)
	b.pending = append(b.pending, state.Event{Type: state.EventRelease, Pos: b.pointer})
}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) { b.pointer = toPoint(e.Position) }
func (b *BoardWidget) Dragged(e *fyne.DragEvent)        { b.pointer = toPoint(e.Position) }
func (b *BoardWidget) MouseIn(*desktop.MouseEvent)      {}
func (b *BoardWidget) MouseOut()                        {}
func (b *BoardWidget) DragEnd()                         {}

func (b *BoardWidget) MinSize() fyne.Size {
	return fyne.NewSize(float32(b.profile.Width), float32(b.profile.Height))
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(backgroundColor)
	r.rebuild()
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	image      *canvas.Image
	imageSrc   image.Image
	objects    []fyne.CanvasObject
}

func (r *boardWidgetRenderer) size() (int, int) {
	s := r.board.Size()
	if s.Width <= 0 || s.Height <= 0 {
		return r.board.profile.Width, r.board.profile.Height
	}
	return int(s.Width), int(s.Height)
}

// rebuild lays out one frame in paint order: background colour, image,
// grid, upload button, then the curve.
func (r *boardWidgetRenderer) rebuild() {
	w, h := r.size()
	full := fyne.NewSize(float32(w), float32(h))

	r.background.Resize(full)
	objects := []fyne.CanvasObject{r.background}

	if img := r.board.session.Background(); img != nil {
		if img != r.imageSrc {
			r.image = canvas.NewImageFromImage(img)
			r.image.FillMode = canvas.ImageFillStretch
			r.imageSrc = img
		}
		r.image.Resize(full)
		objects = append(objects, r.image)
	}

	if r.board.profile.Grid {
		objects = append(objects, gridObjects(grid.Compute(w, h))...)
	}

	if r.board.profile.Upload {
		objects = append(objects, uploadButtonObjects()...)
	}

	for _, seg := range r.board.session.Curve() {
		if len(seg) < 2 {
			continue
		}
		for i := 1; i < len(seg); i++ {
			line := canvas.NewLine(curveColor)
			line.StrokeWidth = curveWidth
			line.Position1 = fyne.NewPos(float32(seg[i-1].X), float32(seg[i-1].Y))
			line.Position2 = fyne.NewPos(float32(seg[i].X), float32(seg[i].Y))
			objects = append(objects, line)
		}
	}
	r.objects = objects
}

func gridObjects(o grid.Overlay) []fyne.CanvasObject {
	objects := make([]fyne.CanvasObject, 0, len(o.Lines)+len(o.Ticks)+len(o.Labels))
	for _, l := range o.Lines {
		c, width := gridMinorColor, float32(0.5)
		if l.Major {
			c, width = gridMajorColor, 1
		}
		objects = append(objects, newLine(l, c, width))
	}
	for _, l := range o.Ticks {
		objects = append(objects, newLine(l, tickColor, 2))
	}
	for _, lb := range o.Labels {
		t := canvas.NewText(lb.Text, labelColor)
		t.TextSize = grid.LabelSize
		t.Move(fyne.NewPos(float32(lb.X), float32(lb.Y)))
		t.Resize(t.MinSize())
		objects = append(objects, t)
	}
	return objects
}

func newLine(l grid.Line, c color.Color, width float32) *canvas.Line {
	line := canvas.NewLine(c)
	line.StrokeWidth = width
	line.Position1 = fyne.NewPos(float32(l.X1), float32(l.Y1))
	line.Position2 = fyne.NewPos(float32(l.X2), float32(l.Y2))
	return line
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardWidgetRenderer) Refresh() {
	r.rebuild()
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.rebuild()
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return r.board.MinSize()
}

func (r *boardWidgetRenderer) Destroy() {}
