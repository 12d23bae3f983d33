package state

import (
	"sync/atomic"

	"github.com/google/uuid"
)

// FrameClock counts rendered frames for one session.
type FrameClock struct {
	sessionID string
	frames    uint64
}

func NewFrameClock() *FrameClock {
	return &FrameClock{sessionID: uuid.NewString()}
}

func (c *FrameClock) Tick() uint64 {
	return atomic.AddUint64(&c.frames, 1)
}

func (c *FrameClock) Frames() uint64 {
	return atomic.LoadUint64(&c.frames)
}

func (c *FrameClock) SessionID() string {
	return c.sessionID
}
