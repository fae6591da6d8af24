package cubedrag

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// FaceIntersection is the hit-test result delivered by the external
// raycasting collaborator for one pointer event: which face the pointer is
// over and where, in cube coordinates. The core never performs screen
// projection itself.
type FaceIntersection struct {
	Face     Face
	Point    mgl64.Vec3
	Normal   mgl64.Vec3
	Distance float64
}

// TrackingState is the tracker's position in its gesture state machine.
type TrackingState int

const (
	TrackingIdle TrackingState = iota
	TrackingSelected
	TrackingDragging
	TrackingInvalidated
)

func (s TrackingState) String() string {
	switch s {
	case TrackingIdle:
		return "idle"
	case TrackingSelected:
		return "selected"
	case TrackingDragging:
		return "dragging"
	case TrackingInvalidated:
		return "invalidated"
	default:
		return "unknown"
	}
}

// TrackerOp names the transition a tracker call performed.
type TrackerOp string

const (
	OpSelect     TrackerOp = "select"
	OpUpdate     TrackerOp = "update"
	OpClear      TrackerOp = "clear"
	OpInvalidate TrackerOp = "invalidate"
	OpConfirm    TrackerOp = "confirm"
	OpNone       TrackerOp = "none"
)

// TrackingResult reports the outcome of a tracker call. Tracker methods
// never fail exceptionally; CanProceed false is a normal, frequent outcome
// (most pointer moves during a drag do not yet constitute a valid
// rotation) and tells the orchestrator to skip detection this frame.
type TrackingResult struct {
	Success    bool
	State      TrackingState
	CanProceed bool
	Operation  TrackerOp
}

// FaceReference records what face the user pressed down on and how the
// drag has evolved since. It is owned exclusively by one gesture's
// orchestrator and mutated in place between pointer-down and release.
type FaceReference struct {
	Face              Face
	SelectedAt        time.Time
	Position          mgl64.Vec3 // initial press point
	Normal            mgl64.Vec3
	CurrentDragPoint  mgl64.Vec3
	DragDistance      float64 // Euclidean distance from the press point
	HasValidAdjacency bool
	Valid             bool
}

// ReferenceTracker is the gesture reference state machine:
// idle -> selected -> dragging -> cleared or invalidated -> idle.
type ReferenceTracker struct {
	cfg          *config
	state        TrackingState
	ref          *FaceReference
	lastAccepted mgl64.Vec3
	lastUpdate   time.Time
}

// NewReferenceTracker creates a tracker in the idle state.
func NewReferenceTracker(opts ...Option) *ReferenceTracker {
	return newReferenceTracker(newConfig(opts))
}

func newReferenceTracker(cfg *config) *ReferenceTracker {
	return &ReferenceTracker{cfg: cfg, state: TrackingIdle}
}

// State returns the current tracking state.
func (t *ReferenceTracker) State() TrackingState {
	return t.state
}

// Reference returns the active face reference, or nil when idle.
func (t *ReferenceTracker) Reference() *FaceReference {
	return t.ref
}

// HandleFaceSelection transitions idle (or any prior gesture) to selected,
// recording the pressed face and press geometry.
func (t *ReferenceTracker) HandleFaceSelection(hit FaceIntersection) TrackingResult {
	now := t.cfg.now()
	t.ref = &FaceReference{
		Face:             hit.Face,
		SelectedAt:       now,
		Position:         hit.Point,
		Normal:           hit.Normal,
		CurrentDragPoint: hit.Point,
		Valid:            true,
	}
	t.state = TrackingSelected
	t.lastAccepted = hit.Point
	t.lastUpdate = now
	return TrackingResult{Success: true, State: t.state, CanProceed: true, Operation: OpSelect}
}

// HandleDragUpdate advances the drag to a new position. Sub-hysteresis
// deltas are suppressed without a state change; exceeding the maximum drag
// distance invalidates the gesture as abandoned.
func (t *ReferenceTracker) HandleDragUpdate(position mgl64.Vec3) TrackingResult {
	if t.ref == nil || !t.ref.Valid {
		return TrackingResult{State: t.state, Operation: OpNone}
	}

	if position.Sub(t.lastAccepted).Len() < t.cfg.hysteresis {
		return TrackingResult{Success: true, State: t.state, Operation: OpNone}
	}

	distance := position.Sub(t.ref.Position).Len()
	if distance > t.cfg.maxDragDistance {
		t.ref.Valid = false
		t.state = TrackingInvalidated
		return TrackingResult{State: t.state, Operation: OpNone}
	}

	t.ref.CurrentDragPoint = position
	t.ref.DragDistance = distance
	t.lastAccepted = position
	t.lastUpdate = t.cfg.now()
	t.state = TrackingDragging
	return TrackingResult{Success: true, State: t.state, CanProceed: true, Operation: OpUpdate}
}

// CheckTimeout auto-clears a reference that has gone stale: no qualifying
// update within the validity timeout. This self-heals a missed pointer-up
// (focus loss) without surfacing an error.
func (t *ReferenceTracker) CheckTimeout() TrackingResult {
	if t.ref == nil {
		return TrackingResult{Success: true, State: t.state, Operation: OpNone}
	}
	if t.cfg.now().Sub(t.lastUpdate) > t.cfg.validityTimeout {
		return t.Clear()
	}
	return TrackingResult{Success: true, State: t.state, CanProceed: t.ref.Valid, Operation: OpNone}
}

// Clear drops the reference and returns to idle.
func (t *ReferenceTracker) Clear() TrackingResult {
	t.ref = nil
	t.state = TrackingIdle
	return TrackingResult{Success: true, State: t.state, Operation: OpClear}
}

// Invalidate marks the current gesture unusable without dropping its
// record, e.g. when the pointer leaves the valid area.
func (t *ReferenceTracker) Invalidate() TrackingResult {
	if t.ref != nil {
		t.ref.Valid = false
	}
	t.state = TrackingInvalidated
	return TrackingResult{Success: true, State: t.state, Operation: OpInvalidate}
}

// ConfirmValidAdjacency flags the reference as having a valid adjacent
// target under it, for UI feedback.
func (t *ReferenceTracker) ConfirmValidAdjacency() TrackingResult {
	if t.ref == nil {
		return TrackingResult{State: t.state, Operation: OpNone}
	}
	t.ref.HasValidAdjacency = true
	return TrackingResult{Success: true, State: t.state, CanProceed: t.ref.Valid, Operation: OpConfirm}
}
