package cubedrag

import "time"

// FeedbackState names the visual treatment a face should receive. The
// actual colors and materials are the renderer's concern.
type FeedbackState int

const (
	FeedbackNormal FeedbackState = iota
	FeedbackHover
	FeedbackSelected
	FeedbackRotating
	FeedbackBlocked
	FeedbackPreview
	FeedbackSuccess
)

func (s FeedbackState) String() string {
	switch s {
	case FeedbackNormal:
		return "normal"
	case FeedbackHover:
		return "hover"
	case FeedbackSelected:
		return "selected"
	case FeedbackRotating:
		return "rotating"
	case FeedbackBlocked:
		return "blocked"
	case FeedbackPreview:
		return "preview"
	case FeedbackSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// FaceFeedback is one visual-feedback descriptor, recomputed on every
// accepted drag update. Opacity is a hint in [0,1].
type FaceFeedback struct {
	Face    Face
	State   FeedbackState
	Opacity float64
}

// GestureUpdate is what the orchestrator hands back per pointer event.
// Command and State are set only when a rotation was committed. Vector
// carries the confidence and torque behind the candidate or committed
// command, for telemetry and overlays.
type GestureUpdate struct {
	// Accepted is false when the event was throttled or suppressed.
	Accepted bool
	// ReadyToRotate signals that releasing now would commit a rotation.
	ReadyToRotate bool
	Feedback      []FaceFeedback
	Command       *RotationCommand
	Vector        *RotationVector
	State         *CubeState
}

// Orchestrator wires pointer events through the reference tracker,
// adjacency detector and rotation calculator, and applies committed
// commands to the cube state it owns. It expects serialized pointer
// events (one UI event loop); it is not safe for concurrent use.
type Orchestrator struct {
	cfg        *config
	tracker    *ReferenceTracker
	detector   *AdjacencyDetector
	calculator *RotationCalculator

	state      *CubeState
	pending    *RotationCommand
	pendingVec *RotationVector
	// inFlight tracks faces whose committed rotation has not been
	// completion-signaled yet; a second command for such a face is
	// withheld.
	inFlight      [numFaces]bool
	lastProcessed time.Time
}

// NewOrchestrator creates an orchestrator over a fresh solved cube.
func NewOrchestrator(opts ...Option) *Orchestrator {
	cfg := newConfig(opts)
	return &Orchestrator{
		cfg:        cfg,
		tracker:    newReferenceTracker(cfg),
		detector:   newAdjacencyDetector(cfg),
		calculator: newRotationCalculator(cfg),
		state:      NewSolvedState(),
	}
}

// State returns the current cube state (the logical truth).
func (o *Orchestrator) State() *CubeState {
	return o.state
}

// SetState replaces the cube state, e.g. after deserializing a saved game.
func (o *Orchestrator) SetState(s *CubeState) {
	o.state = s
}

// Tracker exposes the reference tracker for inspection.
func (o *Orchestrator) Tracker() *ReferenceTracker {
	return o.tracker
}

// PointerDown begins a gesture over the face resolved by the external
// hit test.
func (o *Orchestrator) PointerDown(hit FaceIntersection) GestureUpdate {
	o.tracker.HandleFaceSelection(hit)
	return GestureUpdate{
		Accepted: true,
		Feedback: []FaceFeedback{{Face: hit.Face, State: FeedbackSelected, Opacity: 1.0}},
	}
}

// PointerMove advances the gesture. Updates are throttled to the frame
// budget; the adjacency and confidence computation does not need
// sub-frame resolution. On an accepted update the detector classifies the
// hovered face, and above the confidence gate the calculator produces a
// candidate command that a release would commit.
func (o *Orchestrator) PointerMove(hit FaceIntersection) GestureUpdate {
	now := o.cfg.now()
	if now.Sub(o.lastProcessed) < o.cfg.moveThrottle {
		return GestureUpdate{}
	}
	o.lastProcessed = now

	o.tracker.CheckTimeout()
	res := o.tracker.HandleDragUpdate(hit.Point)
	if !res.CanProceed {
		if res.State == TrackingInvalidated {
			o.pending = nil
			o.pendingVec = nil
			if ref := o.tracker.Reference(); ref != nil {
				return GestureUpdate{
					Accepted: true,
					Feedback: []FaceFeedback{{Face: ref.Face, State: FeedbackBlocked, Opacity: 0.5}},
				}
			}
		}
		return GestureUpdate{}
	}

	ref := o.tracker.Reference()
	det := o.detector.DetectWithMetrics(ref, hit.Face)

	feedback := []FaceFeedback{{Face: ref.Face, State: FeedbackSelected, Opacity: 1.0}}
	update := GestureUpdate{Accepted: true}

	if det.Relationship.ValidForRotation {
		o.tracker.ConfirmValidAdjacency()
		feedback = append(feedback, FaceFeedback{Face: hit.Face, State: FeedbackHover, Opacity: 0.8})
	} else if hit.Face != ref.Face {
		feedback = append(feedback, FaceFeedback{Face: hit.Face, State: FeedbackBlocked, Opacity: 0.5})
	}

	if det.CanInitiateRotation {
		calc := o.calculator.Calculate(ref, det.Relationship)
		if calc.CanRotate && !o.inFlight[calc.Command.Face] {
			vec := calc.Vector
			o.pending = calc.Command
			o.pendingVec = &vec
			update.ReadyToRotate = true
			update.Vector = o.pendingVec
			feedback = append(feedback, FaceFeedback{Face: calc.Command.Face, State: FeedbackPreview, Opacity: 0.6})
		} else {
			o.pending = nil
			o.pendingVec = nil
		}
	} else {
		o.pending = nil
		o.pendingVec = nil
	}

	update.Feedback = feedback
	return update
}

// PointerUp ends the gesture. A valid pending command is committed: the
// move is applied to the cube state atomically and the command is emitted
// for the animator. Without a pending command the tracker is simply
// cleared with no state change; cancellation always succeeds because
// nothing mutates before this point.
func (o *Orchestrator) PointerUp() GestureUpdate {
	defer o.tracker.Clear()

	cmd := o.pending
	vec := o.pendingVec
	o.pending = nil
	o.pendingVec = nil
	if cmd == nil || o.inFlight[cmd.Face] {
		return GestureUpdate{Accepted: true}
	}

	next, err := o.state.Apply(cmd.Move())
	if err != nil {
		// A calculator-produced command is always well formed; a failure
		// here is a programming error, not user input.
		return GestureUpdate{Accepted: true}
	}
	o.state = next
	o.inFlight[cmd.Face] = true

	return GestureUpdate{
		Accepted: true,
		Command:  cmd,
		Vector:   vec,
		State:    next,
		Feedback: []FaceFeedback{{Face: cmd.Face, State: FeedbackRotating, Opacity: 1.0}},
	}
}

// RotationComplete is the animator's completion signal for a committed
// command. It releases the face for new commands and returns the tracker
// to idle.
func (o *Orchestrator) RotationComplete(face Face) GestureUpdate {
	if face.valid() {
		o.inFlight[face] = false
	}
	o.tracker.Clear()
	return GestureUpdate{
		Accepted: true,
		Feedback: []FaceFeedback{{Face: face, State: FeedbackSuccess, Opacity: 1.0}},
	}
}

// Cancel abandons the current gesture without committing anything.
func (o *Orchestrator) Cancel() GestureUpdate {
	o.pending = nil
	o.pendingVec = nil
	o.tracker.Clear()
	return GestureUpdate{Accepted: true}
}

// Reset returns the orchestrator to a fresh solved cube and idle gesture
// state. The recovery path for detected state corruption.
func (o *Orchestrator) Reset() {
	o.state = NewSolvedState()
	o.pending = nil
	o.pendingVec = nil
	o.inFlight = [numFaces]bool{}
	o.tracker.Clear()
}
