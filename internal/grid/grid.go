// Package grid computes the measurement grid drawn over the canvas.
package grid

import "strconv"

const (
	CellSize   = 10
	MajorEvery = 5
	TickLength = 6
	LabelSize  = 9
)

type Line struct {
	X1, Y1, X2, Y2 int
	Major          bool
}

type Label struct {
	X, Y int
	Text string
}

// Overlay is everything the grid draws for one frame.
type Overlay struct {
	Lines  []Line
	Ticks  []Line
	Labels []Label
}

// Compute builds the grid for a w x h canvas. Lines run across the whole
// canvas every CellSize pixels; every MajorEvery-th line also gets a tick
// on the canvas edge and a label with its pixel coordinate.
func Compute(w, h int) Overlay {
	var o Overlay
	if w <= 0 || h <= 0 {
		return o
	}

	for i, x := 0, 0; x < w; i, x = i+1, x+CellSize {
		major := i%MajorEvery == 0
		o.Lines = append(o.Lines, Line{X1: x, Y1: 0, X2: x, Y2: h, Major: major})
		if major && x > 0 {
			o.Ticks = append(o.Ticks, Line{X1: x, Y1: 0, X2: x, Y2: TickLength, Major: true})
			o.Labels = append(o.Labels, Label{X: x + 2, Y: TickLength, Text: strconv.Itoa(x)})
		}
	}

	for i, y := 0, 0; y < h; i, y = i+1, y+CellSize {
		major := i%MajorEvery == 0
		o.Lines = append(o.Lines, Line{X1: 0, Y1: y, X2: w, Y2: y, Major: major})
		if major && y > 0 {
			o.Ticks = append(o.Ticks, Line{X1: 0, Y1: y, X2: TickLength, Y2: y, Major: true})
			o.Labels = append(o.Labels, Label{X: TickLength + 2, Y: y - LabelSize/2, Text: strconv.Itoa(y)})
		}
	}
	return o
}
