package cubedrag

import "github.com/go-gl/mathgl/mgl64"

// Face geometry for the canonical cube: centered at the origin with
// half-extent 1. Each face center sits at distance 1 from the origin along
// its outward normal. These are static facts; everything here is a total
// function over the Face enum.

var faceNormals = [numFaces]mgl64.Vec3{
	FaceUp:    {0, 1, 0},
	FaceDown:  {0, -1, 0},
	FaceFront: {0, 0, 1},
	FaceBack:  {0, 0, -1},
	FaceRight: {1, 0, 0},
	FaceLeft:  {-1, 0, 0},
}

// faceTangents spans each face's plane: u points along the face's local
// "columns" direction, v along its "rows". Only used to build the boundary
// edges; any consistent basis works.
var faceTangents = [numFaces][2]mgl64.Vec3{
	FaceUp:    {{1, 0, 0}, {0, 0, 1}},
	FaceDown:  {{1, 0, 0}, {0, 0, -1}},
	FaceFront: {{1, 0, 0}, {0, 1, 0}},
	FaceBack:  {{-1, 0, 0}, {0, 1, 0}},
	FaceRight: {{0, 0, -1}, {0, 1, 0}},
	FaceLeft:  {{0, 0, 1}, {0, 1, 0}},
}

// FaceEdge is one boundary segment of a face's square.
type FaceEdge struct {
	Start     mgl64.Vec3
	End       mgl64.Vec3
	Direction mgl64.Vec3 // unit vector from Start to End
	Midpoint  mgl64.Vec3
}

var faceEdges = buildFaceEdges()

func buildFaceEdges() [numFaces][4]FaceEdge {
	var out [numFaces][4]FaceEdge
	for f := Face(0); f < numFaces; f++ {
		center := faceNormals[f] // center == normal for the unit cube
		u, v := faceTangents[f][0], faceTangents[f][1]

		corners := [4]mgl64.Vec3{
			center.Sub(u).Sub(v),
			center.Add(u).Sub(v),
			center.Add(u).Add(v),
			center.Sub(u).Add(v),
		}
		for i := 0; i < 4; i++ {
			start, end := corners[i], corners[(i+1)%4]
			out[f][i] = FaceEdge{
				Start:     start,
				End:       end,
				Direction: end.Sub(start).Normalize(),
				Midpoint:  start.Add(end).Mul(0.5),
			}
		}
	}
	return out
}

// FaceCenter returns the face's center point: the unit-distance
// axis-aligned point along its outward normal.
func FaceCenter(f Face) mgl64.Vec3 {
	return faceNormals[f]
}

// FaceNormal returns the face's outward unit normal.
func FaceNormal(f Face) mgl64.Vec3 {
	return faceNormals[f]
}

// FaceEdges returns the four boundary segments of the face's square.
func FaceEdges(f Face) [4]FaceEdge {
	return faceEdges[f]
}

// AreParallel reports whether two distinct faces share a principal axis,
// i.e. they are opposite faces. Parallel faces never share an edge; their
// rotation semantics go through the planar fallback in the calculator
// rather than adjacency detection.
func AreParallel(a, b Face) bool {
	return a != b && a.axis() == b.axis()
}
