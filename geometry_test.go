package cubedrag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFaceCentersAndNormals(t *testing.T) {
	for f := Face(0); f < numFaces; f++ {
		center := FaceCenter(f)
		normal := FaceNormal(f)

		assert.InDelta(t, 1.0, center.Len(), 1e-12, "center of %v at unit distance", f)
		assert.Equal(t, center, normal, "center and outward normal coincide for %v", f)

		// Axis aligned: exactly one non-zero component.
		nonZero := 0
		for i := 0; i < 3; i++ {
			if center[i] != 0 {
				nonZero++
			}
		}
		assert.Equal(t, 1, nonZero, "center of %v is axis aligned", f)
	}
}

func TestOppositeNormalsCancel(t *testing.T) {
	for f := Face(0); f < numFaces; f++ {
		sum := FaceNormal(f).Add(FaceNormal(f.Opposite()))
		assert.InDelta(t, 0, sum.Len(), 1e-12, "%v and %v normals cancel", f, f.Opposite())
	}
}

func TestFaceEdges(t *testing.T) {
	for f := Face(0); f < numFaces; f++ {
		edges := FaceEdges(f)
		require.Len(t, edges, 4)

		for i, e := range edges {
			assert.InDelta(t, 2.0, e.End.Sub(e.Start).Len(), 1e-12, "face %v edge %d length", f, i)
			assert.InDelta(t, 1.0, e.Direction.Len(), 1e-12, "face %v edge %d unit direction", f, i)

			mid := e.Start.Add(e.End).Mul(0.5)
			assert.InDelta(t, 0, mid.Sub(e.Midpoint).Len(), 1e-12, "face %v edge %d midpoint", f, i)

			// Edges lie on the face plane.
			n := FaceNormal(f)
			assert.InDelta(t, 1.0, e.Start.Dot(n), 1e-12)
			assert.InDelta(t, 1.0, e.End.Dot(n), 1e-12)
		}

		// The four edges form a closed loop.
		for i := range edges {
			next := edges[(i+1)%4]
			assert.InDelta(t, 0, edges[i].End.Sub(next.Start).Len(), 1e-12, "face %v loop closed at %d", f, i)
		}
	}
}

func TestEachFaceSharesOneEdgeWithEachNeighbor(t *testing.T) {
	for a := Face(0); a < numFaces; a++ {
		for b := Face(0); b < numFaces; b++ {
			if a == b {
				continue
			}
			matches := 0
			for _, ea := range FaceEdges(a) {
				for _, eb := range FaceEdges(b) {
					if edgesCoincide(ea, eb, 0.1) {
						matches++
					}
				}
			}
			if AreParallel(a, b) {
				assert.Zero(t, matches, "parallel faces %v/%v share no edge", a, b)
			} else {
				assert.Equal(t, 1, matches, "neighbors %v/%v share exactly one edge", a, b)
			}
		}
	}
}

func TestAreParallel(t *testing.T) {
	assert.True(t, AreParallel(FaceFront, FaceBack))
	assert.True(t, AreParallel(FaceLeft, FaceRight))
	assert.True(t, AreParallel(FaceUp, FaceDown))
	assert.False(t, AreParallel(FaceFront, FaceUp))
	assert.False(t, AreParallel(FaceFront, FaceFront), "a face is not parallel to itself")
}
