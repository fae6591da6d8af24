package cubedrag

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectIdentical(t *testing.T) {
	d := NewAdjacencyDetector()
	rel := d.Detect(FaceFront, FaceFront)
	assert.Equal(t, AdjacencyIdentical, rel.State)
	assert.False(t, rel.ValidForRotation)
	assert.Nil(t, rel.SharedEdge)
}

func TestDetectAdjacentPair(t *testing.T) {
	// Reference FRONT, target UP: geometrically adjacent, non-opposite.
	d := NewAdjacencyDetector()
	rel := d.Detect(FaceFront, FaceUp)

	assert.Equal(t, AdjacencyAdjacent, rel.State)
	assert.True(t, rel.LayerCompatible)
	assert.True(t, rel.ValidForRotation)
	assert.InDelta(t, math.Sqrt2, rel.Distance, 1e-12)

	require.NotNil(t, rel.SharedEdge)
	// The front/up shared edge is the segment y=1, z=1.
	for _, p := range []struct{ x, y, z float64 }{
		{rel.SharedEdge.Start.X(), rel.SharedEdge.Start.Y(), rel.SharedEdge.Start.Z()},
		{rel.SharedEdge.End.X(), rel.SharedEdge.End.Y(), rel.SharedEdge.End.Z()},
	} {
		assert.InDelta(t, 1.0, p.y, 1e-12)
		assert.InDelta(t, 1.0, p.z, 1e-12)
	}
}

func TestDetectOppositePair(t *testing.T) {
	// Opposite faces sit at center distance 2.0, beyond the diagonal
	// radius: ordinary adjacency detection must not validate them.
	// Their rotation goes through the calculator's parallel fallback.
	d := NewAdjacencyDetector()
	rel := d.Detect(FaceFront, FaceBack)

	assert.Equal(t, AdjacencyNone, rel.State)
	assert.InDelta(t, 2.0, rel.Distance, 1e-12)
	assert.False(t, rel.LayerCompatible)
	assert.False(t, rel.ValidForRotation)
	assert.Nil(t, rel.SharedEdge)
	assert.True(t, AreParallel(rel.Reference, rel.Target))
}

func TestAdjacencySymmetry(t *testing.T) {
	d := NewAdjacencyDetector()
	for a := Face(0); a < numFaces; a++ {
		for b := Face(0); b < numFaces; b++ {
			relAB := d.Detect(a, b)
			relBA := d.Detect(b, a)
			assert.Equal(t, relAB.State, relBA.State, "symmetry for %v/%v", a, b)
			assert.Equal(t, a == b, relAB.State == AdjacencyIdentical, "identical iff same face: %v/%v", a, b)
		}
	}
}

func TestAllPerpendicularPairsAdjacent(t *testing.T) {
	d := NewAdjacencyDetector()
	for a := Face(0); a < numFaces; a++ {
		for b := Face(0); b < numFaces; b++ {
			if a == b || AreParallel(a, b) {
				continue
			}
			rel := d.Detect(a, b)
			assert.Equal(t, AdjacencyAdjacent, rel.State, "%v/%v", a, b)
			assert.True(t, rel.ValidForRotation, "%v/%v", a, b)
			assert.NotNil(t, rel.SharedEdge, "%v/%v", a, b)
		}
	}
}

func TestDetectWithMetricsConfidence(t *testing.T) {
	d := NewAdjacencyDetector()

	ref := &FaceReference{Face: FaceFront, Valid: true, DragDistance: 0.3}
	res := d.DetectWithMetrics(ref, FaceUp)
	assert.InDelta(t, 1.0, res.Confidence, 1e-12, "adjacent + layer + short drag caps at 1.0")
	assert.True(t, res.CanInitiateRotation)

	ref.DragDistance = 1.5
	res = d.DetectWithMetrics(ref, FaceUp)
	assert.InDelta(t, 1.0, res.Confidence, 1e-12)

	ref.DragDistance = 3.0
	res = d.DetectWithMetrics(ref, FaceUp)
	assert.InDelta(t, 1.0, res.Confidence, 1e-12, "adjacent + layer already saturates")

	// Opposite target never opens the gate.
	res = d.DetectWithMetrics(ref, FaceBack)
	assert.False(t, res.CanInitiateRotation)
	assert.Less(t, res.Confidence, 0.8)

	// Identical target scores only the drag bonus.
	ref.DragDistance = 0.1
	res = d.DetectWithMetrics(ref, FaceFront)
	assert.False(t, res.CanInitiateRotation)
}

func TestConfidenceMonotonicInDragDistance(t *testing.T) {
	// For a fixed adjacent pair, decreasing drag distance never decreases
	// confidence.
	d := NewAdjacencyDetector(WithConfidenceGate(0.99))
	distances := []float64{4.0, 1.9, 0.4, 0.1}
	prev := -1.0
	for _, dist := range distances {
		ref := &FaceReference{Face: FaceFront, Valid: true, DragDistance: dist}
		res := d.DetectWithMetrics(ref, FaceUp)
		assert.GreaterOrEqual(t, res.Confidence, prev, "drag distance %v", dist)
		prev = res.Confidence
	}
}

func TestDetectHonorsThresholdOptions(t *testing.T) {
	// Shrinking the diagonal radius below sqrt(2) pushes neighbors out.
	d := NewAdjacencyDetector(WithAdjacencyThresholds(0.5, 1.2))
	rel := d.Detect(FaceFront, FaceUp)
	assert.Equal(t, AdjacencyNone, rel.State)

	// Widening the adjacent radius admits them directly.
	d = NewAdjacencyDetector(WithAdjacencyThresholds(1.5, 1.9))
	rel = d.Detect(FaceFront, FaceUp)
	assert.Equal(t, AdjacencyAdjacent, rel.State)
	assert.NotNil(t, rel.SharedEdge)
}
