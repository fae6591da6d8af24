// Package cubedrag implements the interaction core of a 3D Rubik's Cube
// puzzle game: an immutable cube state engine plus the face-to-face
// gesture pipeline that turns pointer drags across the cube surface into
// validated layer rotations.
//
// # Cube state
//
// CubeState is an immutable value. Applying a move never mutates; it
// returns a new state with the move appended to its history:
//
//	s := cubedrag.NewSolvedState()
//	s, err := s.Apply(cubedrag.F)
//	s, err = s.Apply(cubedrag.FPrime)
//	fmt.Println(s.IsSolved()) // true
//
// Moves use standard notation (R, U', F2, ...) and can be parsed from
// strings:
//
//	m, err := cubedrag.ParseMove("R'")
//	moves, err := cubedrag.ParseMoves("R U R' U'")
//
// # Gesture pipeline
//
// The Orchestrator consumes FaceIntersection values (produced by an
// external raycaster) per pointer event and drives the reference tracker,
// adjacency detector and rotation calculator to decide which discrete
// move a drag implies:
//
//	o := cubedrag.NewOrchestrator()
//	o.PointerDown(hit)
//	upd := o.PointerMove(hit2)   // feedback descriptors, readiness
//	upd = o.PointerUp()          // committed RotationCommand, new state
//	o.RotationComplete(upd.Command.Face) // animator signals completion
//
// All thresholds (adjacency radii, hysteresis, drag limits, torque band,
// confidence gate) are tuned for the canonical unit cube (centered at the
// origin, half-extent 1) and configurable through Options.
//
// The pipeline is synchronous and single-threaded: every method returns
// immediately and nothing blocks. CubeState values are safe to share
// across goroutines; an Orchestrator is not, and expects serialized
// pointer events as delivered by a UI event loop.
package cubedrag
