package cubedrag

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// RotationCommand is the discrete move a completed gesture implies, handed
// to the state engine and the external animator. Angle accumulates as the
// animation progresses; IsComplete trips at 90% of the target to tolerate
// floating-point accumulation.
type RotationCommand struct {
	Face        Face
	Direction   Direction
	Angle       float64 // accumulated, degrees
	TargetAngle float64 // degrees
	IsComplete  bool
}

// Move returns the logical move this command applies.
func (c *RotationCommand) Move() Move {
	return Move{Face: c.Face, Direction: c.Direction}
}

// UpdateProgress records the animator's accumulated angle and marks the
// command complete once it reaches 90% of the target.
func (c *RotationCommand) UpdateProgress(angle float64) {
	c.Angle = angle
	c.IsComplete = angle >= 0.9*c.TargetAngle
}

// RotationVector carries the geometric derivation of a rotation: the axis,
// implied direction, torque angle and a confidence score.
type RotationVector struct {
	Axis       mgl64.Vec3
	Angle      float64 // target rotation angle, degrees
	Direction  Direction
	Torque     float64 // degrees
	Confidence float64
	Valid      bool
}

// RotationResult is the calculator's outcome. CanRotate false with a
// Reason is an expected, frequent result of normal dragging, not an error.
type RotationResult struct {
	CanRotate  bool
	Command    *RotationCommand
	Vector     RotationVector
	Reason     string
	Confidence float64
}

// RotationCalculator derives rotation commands from a face reference and
// an adjacency relationship.
type RotationCalculator struct {
	cfg *config
}

// NewRotationCalculator creates a calculator with the given options.
func NewRotationCalculator(opts ...Option) *RotationCalculator {
	return &RotationCalculator{cfg: newConfig(opts)}
}

func newRotationCalculator(cfg *config) *RotationCalculator {
	return &RotationCalculator{cfg: cfg}
}

func reject(reason string) RotationResult {
	return RotationResult{Reason: reason}
}

// Calculate derives the rotation a face-to-face drag implies.
//
// For adjacent faces the axis is cross(referenceNormal, targetNormal):
// rotating the layer about that axis by the right-hand rule carries the
// press point toward the target face. For parallel (opposite) faces the
// cross product degenerates, so a fixed perpendicular axis and a
// face-ordering direction table take over.
func (rc *RotationCalculator) Calculate(ref *FaceReference, rel AdjacencyRelationship) RotationResult {
	if ref == nil || !ref.Valid {
		return reject("face reference is not valid")
	}
	parallel := AreParallel(rel.Reference, rel.Target)
	if !rel.ValidForRotation && !parallel {
		return reject(fmt.Sprintf("relationship %s is not valid for rotation", rel.State))
	}

	var axis mgl64.Vec3
	var dir Direction
	var face Face

	if parallel {
		axis = parallelAxis(rel.Reference)
		// Cross product degenerates for parallel faces; direction comes
		// from a fixed face ordering instead.
		if rel.Reference < rel.Target {
			dir = Clockwise
		} else {
			dir = Counterclockwise
		}
		var ok bool
		face, ok = faceAlongAxis(axis)
		if !ok {
			return reject("no face lies along the planar rotation axis")
		}
	} else {
		cross := FaceNormal(rel.Reference).Cross(FaceNormal(rel.Target))
		if cross.Len() < rc.cfg.axisThreshold {
			return reject("rotation axis is degenerate")
		}
		axis = cross.Normalize()

		// The press point picks the layer: only the outer layers map to a
		// face move.
		along := ref.Position.Dot(axis)
		switch {
		case along > 1.0/3.0:
			var ok bool
			face, ok = faceAlongAxis(axis)
			if !ok {
				return reject("no face lies along the rotation axis")
			}
			// Right-hand rotation about the face's own outward normal is a
			// counterclockwise turn seen from outside.
			dir = Counterclockwise
		case along < -1.0/3.0:
			var ok bool
			face, ok = faceAlongAxis(axis.Mul(-1))
			if !ok {
				return reject("no face lies along the rotation axis")
			}
			dir = Clockwise
		default:
			return reject("press point lies on the middle layer; no face turn implied")
		}
	}

	torque, ok := rc.torqueAngle(ref, rel, parallel)
	if !ok {
		return reject("drag direction is degenerate")
	}
	if torque < rc.cfg.minTorqueAngle || torque > rc.cfg.maxTorqueAngle {
		return reject(fmt.Sprintf("torque angle %.1f° is outside valid range [%.0f°, %.0f°]",
			torque, rc.cfg.minTorqueAngle, rc.cfg.maxTorqueAngle))
	}

	// Confidence: base 0.5, up to 0.3 for torque near the ideal 90° with
	// linear falloff over a 45° window, 0.3 for a usable axis (already
	// validated above).
	off := math.Min(math.Abs(torque-90), 45)
	confidence := 0.5 + 0.3*(1-off/45) + 0.3
	if confidence > 1.0 {
		confidence = 1.0
	}

	vector := RotationVector{
		Axis:       axis,
		Angle:      90,
		Direction:  dir,
		Torque:     torque,
		Confidence: confidence,
		Valid:      true,
	}
	command := &RotationCommand{
		Face:        face,
		Direction:   dir,
		TargetAngle: 90,
	}
	return RotationResult{
		CanRotate:  true,
		Command:    command,
		Vector:     vector,
		Confidence: confidence,
	}
}

// torqueAngle measures the angle between the reference normal and the
// gesture's pull direction: toward the target face center for adjacent
// pairs, along the drag itself for the planar (parallel) case where the
// target center sits straight through the cube.
func (rc *RotationCalculator) torqueAngle(ref *FaceReference, rel AdjacencyRelationship, parallel bool) (float64, bool) {
	var pull mgl64.Vec3
	if parallel {
		pull = ref.CurrentDragPoint.Sub(ref.Position)
	} else {
		pull = FaceCenter(rel.Target).Sub(ref.Position)
	}
	if pull.Len() < rc.cfg.axisThreshold {
		return 0, false
	}
	dot := ref.Normal.Normalize().Dot(pull.Normalize())
	dot = math.Max(-1, math.Min(1, dot))
	return math.Acos(dot) * 180 / math.Pi, true
}

// parallelAxis returns the fixed planar rotation axis for a face pair that
// shares a principal axis.
func parallelAxis(f Face) mgl64.Vec3 {
	switch f.axis() {
	case 0: // left/right pair rotates about y
		return mgl64.Vec3{0, 1, 0}
	case 1: // up/down pair rotates about z
		return mgl64.Vec3{0, 0, 1}
	default: // front/back pair rotates about y
		return mgl64.Vec3{0, 1, 0}
	}
}

// faceAlongAxis finds the face whose outward normal points along the axis.
func faceAlongAxis(axis mgl64.Vec3) (Face, bool) {
	for f := Face(0); f < numFaces; f++ {
		if FaceNormal(f).Dot(axis) > 0.9 {
			return f, true
		}
	}
	return 0, false
}
