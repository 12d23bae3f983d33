package state

import (
	"errors"
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStore struct {
	saves []Curve
	err   error
}

func (m *memStore) Save(c Curve) error {
	if m.err != nil {
		return m.err
	}
	m.saves = append(m.saves, c.Clone())
	return nil
}

var noButton = Rect{}

func TestDragAcrossFrames(t *testing.T) {
	s := NewSession(&memStore{})

	s.Frame(noButton, []Event{Press(10, 10)}, Point{10, 10})
	assert.Equal(t, Drawing, s.Mode())
	s.Frame(noButton, nil, Point{20, 10})
	s.Frame(noButton, nil, Point{30, 10})
	s.Frame(noButton, []Event{Release(30, 10)}, Point{30, 10})

	assert.Equal(t, Idle, s.Mode())
	assert.Equal(t, Curve{{{10, 10}, {20, 10}, {30, 10}}}, s.Curve())
}

func TestSamplingIsFrameGated(t *testing.T) {
	s := NewSession(&memStore{})
	s.Frame(noButton, []Event{Press(0, 0)}, Point{0, 0})
	for i := 1; i <= 7; i++ {
		s.Frame(noButton, nil, Point{i, i})
	}
	s.Frame(noButton, []Event{Release(7, 7)}, Point{7, 7})

	// one sample for the press frame plus one per held frame
	require.Len(t, s.Curve(), 1)
	assert.Len(t, s.Curve()[0], 8)
	assert.Equal(t, uint64(9), s.Frames())
}

func TestClickWithoutFrameKeepsEmptySegment(t *testing.T) {
	s := NewSession(&memStore{})
	s.Frame(noButton, []Event{Press(5, 5), Release(5, 5)}, Point{5, 5})

	assert.Equal(t, Curve{{}}, s.Curve())
	assert.Equal(t, Idle, s.Mode())
}

func TestSegmentCountMatchesPresses(t *testing.T) {
	s := NewSession(&memStore{})
	s.Frame(noButton, []Event{Press(1, 1), Release(1, 1)}, Point{1, 1})
	s.Frame(noButton, []Event{Press(2, 2)}, Point{2, 2})
	s.Frame(noButton, []Event{Release(2, 2)}, Point{2, 2})
	s.Frame(noButton, []Event{Press(3, 3)}, Point{3, 3})
	s.Frame(noButton, nil, Point{4, 4})
	s.Frame(noButton, []Event{Release(4, 4)}, Point{4, 4})

	c := s.Curve()
	require.Len(t, c, 3)
	assert.Len(t, c[0], 0)
	assert.Len(t, c[1], 1)
	assert.Len(t, c[2], 2)
}

func TestReleaseWhileIdleIsIgnored(t *testing.T) {
	s := NewSession(&memStore{})
	s.Frame(noButton, []Event{Release(1, 1)}, Point{1, 1})
	assert.Equal(t, Idle, s.Mode())
	assert.Empty(t, s.Curve())
}

func TestUploadButtonNeverStartsSegment(t *testing.T) {
	button := Rect{Min: Point{10, 10}, Max: Point{110, 30}}

	t.Run("idle", func(t *testing.T) {
		s := NewSession(&memStore{})
		res := s.Frame(button, []Event{Press(20, 15)}, Point{20, 15})
		assert.True(t, res.OpenDialog)
		assert.Equal(t, DialogOpen, s.Mode())
		assert.Empty(t, s.Curve())
	})

	t.Run("drawing", func(t *testing.T) {
		s := NewSession(&memStore{})
		s.Frame(button, []Event{Press(200, 200)}, Point{200, 200})
		res := s.Frame(button, []Event{Press(50, 20)}, Point{50, 20})
		assert.True(t, res.OpenDialog)
		assert.Equal(t, Curve{{{200, 200}}}, s.Curve())
	})

	t.Run("just outside", func(t *testing.T) {
		s := NewSession(&memStore{})
		res := s.Frame(button, []Event{Press(110, 15)}, Point{110, 15})
		assert.False(t, res.OpenDialog)
		assert.Len(t, s.Curve(), 1)
	})
}

func TestDialogFreezesLoop(t *testing.T) {
	button := Rect{Min: Point{0, 0}, Max: Point{100, 20}}
	s := NewSession(&memStore{})
	s.Frame(button, []Event{Press(5, 5)}, Point{5, 5})
	frames := s.Frames()

	res := s.Frame(button, []Event{Press(300, 300)}, Point{300, 300})
	assert.Equal(t, FrameResult{}, res)
	assert.Equal(t, frames, s.Frames())
	assert.Empty(t, s.Curve())

	s.ResolveDialog(nil)
	assert.Equal(t, Idle, s.Mode())
}

func TestDialogCancelKeepsBackground(t *testing.T) {
	button := Rect{Min: Point{0, 0}, Max: Point{100, 20}}
	s := NewSession(&memStore{})

	s.Frame(button, []Event{Press(5, 5)}, Point{5, 5})
	s.ResolveDialog(nil)
	assert.Nil(t, s.Background())

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	s.Frame(button, []Event{Press(5, 5)}, Point{5, 5})
	s.ResolveDialog(img)
	assert.Same(t, img, s.Background())

	s.Frame(button, []Event{Press(5, 5)}, Point{5, 5})
	s.ResolveDialog(nil)
	assert.Same(t, img, s.Background())

	other := image.NewRGBA(image.Rect(0, 0, 2, 2))
	s.Frame(button, []Event{Press(5, 5)}, Point{5, 5})
	s.ResolveDialog(other)
	assert.Same(t, other, s.Background())
}

func TestQuitEventStopsFrame(t *testing.T) {
	s := NewSession(&memStore{})
	res := s.Frame(noButton, []Event{Press(1, 1), Quit(), Press(2, 2)}, Point{1, 1})
	assert.True(t, res.Quit)
	assert.Len(t, s.Curve(), 1)
}

func TestQuitSavesCurve(t *testing.T) {
	store := &memStore{}
	s := NewSession(store)
	s.Frame(noButton, []Event{Press(1, 2)}, Point{1, 2})
	s.Frame(noButton, []Event{Release(1, 2)}, Point{1, 2})

	require.NoError(t, s.Quit())
	assert.Equal(t, Terminated, s.Mode())
	require.NoError(t, s.Quit())
	require.Len(t, store.saves, 2)
	assert.Equal(t, store.saves[0], store.saves[1])

	res := s.Frame(noButton, []Event{Press(3, 3)}, Point{3, 3})
	assert.Equal(t, FrameResult{}, res)
	assert.Len(t, s.Curve(), 1)
}

func TestQuitPropagatesStoreError(t *testing.T) {
	boom := errors.New("disk full")
	s := NewSession(&memStore{err: boom})
	err := s.Quit()
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestCurveIsACopy(t *testing.T) {
	s := NewSession(&memStore{})
	s.Frame(noButton, []Event{Press(1, 1)}, Point{1, 1})
	c := s.Curve()
	c[0][0] = Point{99, 99}
	assert.Equal(t, Point{1, 1}, s.Curve()[0][0])
}
