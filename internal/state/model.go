package state

import (
	"encoding/json"
	"fmt"
)

// Point is a pixel coordinate on the canvas. It is stored on disk as [x, y].
type Point struct{ X, Y int }

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{p.X, p.Y})
}

func (p *Point) UnmarshalJSON(data []byte) error {
	var xy []int
	if err := json.Unmarshal(data, &xy); err != nil {
		return err
	}
	if len(xy) != 2 {
		return fmt.Errorf("point must have 2 coordinates, got %d", len(xy))
	}
	p.X, p.Y = xy[0], xy[1]
	return nil
}

// Segment is one continuous stroke, in the order the points were sampled.
type Segment []Point

func (s Segment) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Point(s))
}

// Curve is every Segment drawn in a session, in drawing order.
type Curve []Segment

func (c Curve) MarshalJSON() ([]byte, error) {
	if c == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]Segment(c))
}

// Clone returns a deep copy of the curve.
func (c Curve) Clone() Curve {
	out := make(Curve, len(c))
	for i, seg := range c {
		out[i] = append(make(Segment, 0, len(seg)), seg...)
	}
	return out
}

// Rect is an axis-aligned hit region, Min inclusive and Max exclusive.
type Rect struct {
	Min, Max Point
}

func (r Rect) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

func (r Rect) Contains(p Point) bool {
	return !r.Empty() &&
		p.X >= r.Min.X && p.X < r.Max.X &&
		p.Y >= r.Min.Y && p.Y < r.Max.Y
}

type EventType string

const (
	EventPress   EventType = "press"
	EventRelease EventType = "release"
	EventQuit    EventType = "quit"
)

// Event is a queued input event, handled at the start of the next frame.
type Event struct {
	Type EventType
	Pos  Point
}

func Press(x, y int) Event   { return Event{Type: EventPress, Pos: Point{x, y}} }
func Release(x, y int) Event { return Event{Type: EventRelease, Pos: Point{x, y}} }
func Quit() Event            { return Event{Type: EventQuit} }

type Mode int

const (
	Idle Mode = iota
	Drawing
	DialogOpen
	Terminated
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Drawing:
		return "drawing"
	case DialogOpen:
		return "dialog"
	case Terminated:
		return "terminated"
	default:
		return "unknown"
	}
}
