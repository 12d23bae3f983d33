package state

import (
	"fmt"
	"image"
	"log"
)

// Store persists a Curve when the session ends.
type Store interface {
	Save(c Curve) error
}

// FrameResult tells the host what the frame asked for.
type FrameResult struct {
	OpenDialog bool
	Quit       bool
}

// Session owns everything the drawing loop mutates: the curve, the mode,
// the background image and the frame clock. It is not safe for concurrent
// use; the host drives it from a single goroutine.
type Session struct {
	store      Store
	clock      *FrameClock
	mode       Mode
	curve      Curve
	background image.Image
}

func NewSession(store Store) *Session {
	s := &Session{
		store: store,
		clock: NewFrameClock(),
		mode:  Idle,
		curve: make(Curve, 0),
	}
	log.Printf("[SESSION %s] started", s.ID())
	return s
}

func (s *Session) ID() string              { return s.clock.SessionID() }
func (s *Session) Mode() Mode              { return s.mode }
func (s *Session) Frames() uint64          { return s.clock.Frames() }
func (s *Session) Curve() Curve            { return s.curve.Clone() }
func (s *Session) Background() image.Image { return s.background }

// Frame runs one loop iteration. button is this frame's upload button box
// (empty when there is none), events are the inputs queued since the last
// frame and pointer is the current pointer position. While a dialog is open
// or after quit the loop is frozen and the frame does nothing.
func (s *Session) Frame(button Rect, events []Event, pointer Point) FrameResult {
	var res FrameResult
	if s.mode == DialogOpen || s.mode == Terminated {
		return res
	}
	s.clock.Tick()

	for _, ev := range events {
		switch ev.Type {
		case EventQuit:
			res.Quit = true
			return res
		case EventPress:
			if button.Contains(ev.Pos) {
				s.mode = DialogOpen
				res.OpenDialog = true
				return res
			}
			s.mode = Drawing
			s.curve = append(s.curve, make(Segment, 0))
		case EventRelease:
			if s.mode == Drawing {
				s.mode = Idle
			}
		}
	}

	if s.mode == Drawing && len(s.curve) > 0 {
		last := len(s.curve) - 1
		s.curve[last] = append(s.curve[last], pointer)
	}
	return res
}

// ResolveDialog closes the upload dialog. A nil image means the user
// cancelled and the current background stays.
func (s *Session) ResolveDialog(img image.Image) {
	if s.mode != DialogOpen {
		return
	}
	if img != nil {
		s.background = img
		log.Printf("[SESSION %s] background replaced (%v)", s.ID(), img.Bounds().Size())
	}
	s.mode = Idle
}

// Quit writes the curve and ends the session.
func (s *Session) Quit() error {
	s.mode = Terminated
	if err := s.store.Save(s.curve); err != nil {
		return fmt.Errorf("save curve: %w", err)
	}
	log.Printf("[SESSION %s] saved %d segments after %d frames", s.ID(), len(s.curve), s.Frames())
	return nil
}
