package cubedrag

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adjacentRel(t *testing.T, ref, target Face) AdjacencyRelationship {
	t.Helper()
	rel := NewAdjacencyDetector().Detect(ref, target)
	require.Equal(t, AdjacencyAdjacent, rel.State)
	return rel
}

func TestCalculateRejectsInvalidReference(t *testing.T) {
	calc := NewRotationCalculator()
	rel := adjacentRel(t, FaceFront, FaceUp)

	res := calc.Calculate(nil, rel)
	assert.False(t, res.CanRotate)
	assert.NotEmpty(t, res.Reason)
	assert.Zero(t, res.Confidence)

	res = calc.Calculate(&FaceReference{Face: FaceFront, Valid: false}, rel)
	assert.False(t, res.CanRotate)
	assert.NotEmpty(t, res.Reason)
}

func TestCalculateRejectsInvalidRelationship(t *testing.T) {
	calc := NewRotationCalculator()
	rel := NewAdjacencyDetector().Detect(FaceFront, FaceFront)
	ref := &FaceReference{
		Face:     FaceFront,
		Position: mgl64.Vec3{0.8, 0, 1},
		Normal:   FaceNormal(FaceFront),
		Valid:    true,
	}

	res := calc.Calculate(ref, rel)
	assert.False(t, res.CanRotate)
	assert.Contains(t, res.Reason, "identical")
}

func TestCalculateFrontToUp(t *testing.T) {
	calc := NewRotationCalculator()
	rel := adjacentRel(t, FaceFront, FaceUp)

	// Pressing near the right edge of the front face and dragging toward
	// the up face turns the right layer clockwise.
	ref := &FaceReference{
		Face:     FaceFront,
		Position: mgl64.Vec3{0.8, 0, 1},
		Normal:   FaceNormal(FaceFront),
		Valid:    true,
	}
	res := calc.Calculate(ref, rel)
	require.True(t, res.CanRotate, "reason: %s", res.Reason)
	require.NotNil(t, res.Command)

	assert.Equal(t, FaceRight, res.Command.Face)
	assert.Equal(t, Clockwise, res.Command.Direction)
	assert.Equal(t, 90.0, res.Command.TargetAngle)
	assert.False(t, res.Command.IsComplete)
	assert.True(t, res.Vector.Valid)
	assert.Greater(t, res.Confidence, 0.5)

	// The axis is the cross product of the face normals.
	assert.InDelta(t, 0, res.Vector.Axis.Sub(mgl64.Vec3{-1, 0, 0}).Len(), 1e-12)

	// Pressing near the left edge turns the left layer the other way.
	ref.Position = mgl64.Vec3{-0.8, 0, 1}
	res = calc.Calculate(ref, rel)
	require.True(t, res.CanRotate, "reason: %s", res.Reason)
	assert.Equal(t, FaceLeft, res.Command.Face)
	assert.Equal(t, Counterclockwise, res.Command.Direction)
}

func TestCalculateMiddleLayerPressRejected(t *testing.T) {
	calc := NewRotationCalculator()
	rel := adjacentRel(t, FaceFront, FaceUp)

	ref := &FaceReference{
		Face:     FaceFront,
		Position: mgl64.Vec3{0, 0, 1}, // dead center: no outer layer
		Normal:   FaceNormal(FaceFront),
		Valid:    true,
	}
	res := calc.Calculate(ref, rel)
	assert.False(t, res.CanRotate)
	assert.Contains(t, res.Reason, "middle layer")
}

func TestCalculateTorqueGate(t *testing.T) {
	calc := NewRotationCalculator()
	rel := adjacentRel(t, FaceFront, FaceUp)

	// Synthetic press normal aligned with the pull direction toward the
	// target center: torque 0°, below the 15° minimum.
	pull := FaceCenter(FaceUp).Sub(mgl64.Vec3{0.8, 0, 1}).Normalize()
	ref := &FaceReference{
		Face:     FaceFront,
		Position: mgl64.Vec3{0.8, 0, 1},
		Normal:   pull,
		Valid:    true,
	}
	res := calc.Calculate(ref, rel)
	assert.False(t, res.CanRotate)
	assert.Contains(t, res.Reason, "outside valid range")

	// Normal opposing the pull: torque 180°, above the 165° maximum.
	ref.Normal = pull.Mul(-1)
	res = calc.Calculate(ref, rel)
	assert.False(t, res.CanRotate)
	assert.Contains(t, res.Reason, "outside valid range")

	// A widened band admits the same geometry.
	loose := NewRotationCalculator(WithTorqueBand(0, 181))
	res = loose.Calculate(ref, rel)
	assert.True(t, res.CanRotate, "reason: %s", res.Reason)
}

func TestCalculateConfidencePeaksAt90Degrees(t *testing.T) {
	calc := NewRotationCalculator()
	rel := adjacentRel(t, FaceFront, FaceUp)
	pos := mgl64.Vec3{0.8, 0, 1}
	pull := FaceCenter(FaceUp).Sub(pos).Normalize()

	// Build two references whose torque angles differ in distance from
	// the ideal 90°.
	perp := pull.Cross(mgl64.Vec3{1, 0, 0}).Normalize() // exactly 90° from pull
	ideal := &FaceReference{Face: FaceFront, Position: pos, Normal: perp, Valid: true}
	skewed := &FaceReference{Face: FaceFront, Position: pos, Normal: FaceNormal(FaceFront), Valid: true}

	resIdeal := calc.Calculate(ideal, rel)
	resSkewed := calc.Calculate(skewed, rel)
	require.True(t, resIdeal.CanRotate, "reason: %s", resIdeal.Reason)
	require.True(t, resSkewed.CanRotate, "reason: %s", resSkewed.Reason)

	assert.InDelta(t, 90, resIdeal.Vector.Torque, 1e-9)
	assert.InDelta(t, 1.0, resIdeal.Confidence, 1e-9, "base 0.5 + full torque bonus + axis bonus caps at 1.0")
	assert.Greater(t, resIdeal.Confidence, resSkewed.Confidence)
}

func TestCalculateParallelFallback(t *testing.T) {
	calc := NewRotationCalculator()
	det := NewAdjacencyDetector()
	rel := det.Detect(FaceFront, FaceBack)
	require.False(t, rel.ValidForRotation, "opposite faces fail adjacency detection")

	// A planar drag across the front face: the cross product degenerates,
	// so the fixed perpendicular axis and face ordering take over.
	ref := &FaceReference{
		Face:             FaceFront,
		Position:         mgl64.Vec3{-0.5, 0, 1},
		CurrentDragPoint: mgl64.Vec3{0.5, 0, 1},
		Normal:           FaceNormal(FaceFront),
		Valid:            true,
	}
	res := calc.Calculate(ref, rel)
	require.True(t, res.CanRotate, "reason: %s", res.Reason)

	assert.Equal(t, FaceUp, res.Command.Face, "front/back planar rotation is about the y axis")
	assert.Equal(t, Clockwise, res.Command.Direction, "front precedes back in the face ordering")
	assert.InDelta(t, 90, res.Vector.Torque, 1e-9, "in-plane drag is perpendicular to the press normal")

	// Reversed pair flips the direction.
	res = calc.Calculate(ref, det.Detect(FaceBack, FaceFront))
	require.True(t, res.CanRotate, "reason: %s", res.Reason)
	assert.Equal(t, Counterclockwise, res.Command.Direction)
}

func TestCalculateParallelDegenerateDrag(t *testing.T) {
	calc := NewRotationCalculator()
	rel := NewAdjacencyDetector().Detect(FaceFront, FaceBack)

	// No drag displacement: the planar pull direction is undefined.
	ref := &FaceReference{
		Face:             FaceFront,
		Position:         mgl64.Vec3{0, 0, 1},
		CurrentDragPoint: mgl64.Vec3{0, 0, 1},
		Normal:           FaceNormal(FaceFront),
		Valid:            true,
	}
	res := calc.Calculate(ref, rel)
	assert.False(t, res.CanRotate)
	assert.Contains(t, res.Reason, "degenerate")
}

func TestRotationCommandProgress(t *testing.T) {
	cmd := &RotationCommand{Face: FaceRight, Direction: Clockwise, TargetAngle: 90}

	cmd.UpdateProgress(45)
	assert.False(t, cmd.IsComplete)
	cmd.UpdateProgress(80.9)
	assert.False(t, cmd.IsComplete, "below 90%% of the target")
	cmd.UpdateProgress(81)
	assert.True(t, cmd.IsComplete, "completion trips at 90%% of 90°")
	assert.Equal(t, 81.0, cmd.Angle)

	assert.Equal(t, Move{Face: FaceRight, Direction: Clockwise}, cmd.Move())
}
