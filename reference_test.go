package cubedrag

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock drives time-dependent behavior deterministically in tests.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func frontHit(point mgl64.Vec3) FaceIntersection {
	return FaceIntersection{
		Face:   FaceFront,
		Point:  point,
		Normal: FaceNormal(FaceFront),
	}
}

func TestTrackerSelection(t *testing.T) {
	clock := newFakeClock()
	tr := NewReferenceTracker(WithClock(clock.now))

	assert.Equal(t, TrackingIdle, tr.State())
	assert.Nil(t, tr.Reference())

	res := tr.HandleFaceSelection(frontHit(mgl64.Vec3{0.2, 0.1, 1}))
	assert.True(t, res.Success)
	assert.True(t, res.CanProceed)
	assert.Equal(t, OpSelect, res.Operation)
	assert.Equal(t, TrackingSelected, res.State)

	ref := tr.Reference()
	require.NotNil(t, ref)
	assert.Equal(t, FaceFront, ref.Face)
	assert.Equal(t, clock.t, ref.SelectedAt)
	assert.True(t, ref.Valid)
	assert.Zero(t, ref.DragDistance)
}

func TestTrackerHysteresisSuppression(t *testing.T) {
	tr := NewReferenceTracker(WithClock(newFakeClock().now))
	tr.HandleFaceSelection(frontHit(mgl64.Vec3{0, 0, 1}))

	// Sub-pixel jitter below the hysteresis threshold is suppressed
	// without a reported state change.
	res := tr.HandleDragUpdate(mgl64.Vec3{0.005, 0, 1})
	assert.True(t, res.Success)
	assert.False(t, res.CanProceed)
	assert.Equal(t, OpNone, res.Operation)
	assert.Equal(t, TrackingSelected, res.State)
	assert.Zero(t, tr.Reference().DragDistance)

	// A qualifying delta is accepted.
	res = tr.HandleDragUpdate(mgl64.Vec3{0.3, 0, 1})
	assert.True(t, res.Success)
	assert.True(t, res.CanProceed)
	assert.Equal(t, OpUpdate, res.Operation)
	assert.Equal(t, TrackingDragging, res.State)
	assert.InDelta(t, 0.3, tr.Reference().DragDistance, 1e-12)

	// Hysteresis is measured against the last accepted point.
	res = tr.HandleDragUpdate(mgl64.Vec3{0.305, 0, 1})
	assert.False(t, res.CanProceed)
	assert.InDelta(t, 0.3, tr.Reference().DragDistance, 1e-12)
}

func TestTrackerMaxDragInvalidates(t *testing.T) {
	tr := NewReferenceTracker(WithClock(newFakeClock().now))
	tr.HandleFaceSelection(frontHit(mgl64.Vec3{0, 0, 1}))

	// A 6 unit drag exceeds the 5 unit maximum: the gesture is abandoned,
	// not a rotation attempt.
	res := tr.HandleDragUpdate(mgl64.Vec3{6, 0, 1})
	assert.False(t, res.Success)
	assert.False(t, res.CanProceed)
	assert.Equal(t, OpNone, res.Operation)
	assert.Equal(t, TrackingInvalidated, res.State)
	assert.False(t, tr.Reference().Valid)

	// Further updates are ignored.
	res = tr.HandleDragUpdate(mgl64.Vec3{0.5, 0, 1})
	assert.False(t, res.CanProceed)
}

func TestTrackerTimeout(t *testing.T) {
	clock := newFakeClock()
	tr := NewReferenceTracker(WithClock(clock.now))
	tr.HandleFaceSelection(frontHit(mgl64.Vec3{0, 0, 1}))

	clock.advance(2 * time.Second)
	res := tr.CheckTimeout()
	assert.True(t, res.CanProceed, "still inside the validity window")
	assert.Equal(t, TrackingSelected, res.State)

	clock.advance(2 * time.Second)
	res = tr.CheckTimeout()
	assert.Equal(t, OpClear, res.Operation)
	assert.Equal(t, TrackingIdle, res.State)
	assert.Nil(t, tr.Reference())
}

func TestTrackerTimeoutResetByUpdates(t *testing.T) {
	clock := newFakeClock()
	tr := NewReferenceTracker(WithClock(clock.now))
	tr.HandleFaceSelection(frontHit(mgl64.Vec3{0, 0, 1}))

	// Qualifying updates keep the reference alive past the original
	// selection time.
	clock.advance(2 * time.Second)
	tr.HandleDragUpdate(mgl64.Vec3{0.5, 0, 1})
	clock.advance(2 * time.Second)

	res := tr.CheckTimeout()
	assert.NotEqual(t, TrackingIdle, res.State, "update renewed the validity window")
}

func TestTrackerClearAndInvalidate(t *testing.T) {
	tr := NewReferenceTracker(WithClock(newFakeClock().now))
	tr.HandleFaceSelection(frontHit(mgl64.Vec3{0, 0, 1}))

	res := tr.Invalidate()
	assert.Equal(t, TrackingInvalidated, res.State)
	assert.False(t, tr.Reference().Valid)

	res = tr.Clear()
	assert.Equal(t, TrackingIdle, res.State)
	assert.Nil(t, tr.Reference())

	// Tracker calls on an idle tracker are harmless.
	res = tr.HandleDragUpdate(mgl64.Vec3{1, 0, 0})
	assert.False(t, res.CanProceed)
	res = tr.ConfirmValidAdjacency()
	assert.False(t, res.Success)
}

func TestTrackerConfirmAdjacency(t *testing.T) {
	tr := NewReferenceTracker(WithClock(newFakeClock().now))
	tr.HandleFaceSelection(frontHit(mgl64.Vec3{0, 0, 1}))

	res := tr.ConfirmValidAdjacency()
	assert.True(t, res.Success)
	assert.Equal(t, OpConfirm, res.Operation)
	assert.True(t, tr.Reference().HasValidAdjacency)
}
