package cubedrag

import (
	"time"

	"github.com/go-gl/mathgl/mgl64"
)

// AdjacencyState classifies the spatial relationship of two faces.
type AdjacencyState int

const (
	// AdjacencyIdentical: the same face.
	AdjacencyIdentical AdjacencyState = iota
	// AdjacencyAdjacent: the faces share a boundary edge.
	AdjacencyAdjacent
	// AdjacencyDiagonal: the faces are near each other without a shared
	// edge. Does not occur between real cube faces; kept for synthetic
	// geometry and threshold experiments.
	AdjacencyDiagonal
	// AdjacencyNone: the faces are too far apart, i.e. opposite.
	AdjacencyNone
)

func (s AdjacencyState) String() string {
	switch s {
	case AdjacencyIdentical:
		return "identical"
	case AdjacencyAdjacent:
		return "adjacent"
	case AdjacencyDiagonal:
		return "diagonal"
	case AdjacencyNone:
		return "non_adjacent"
	default:
		return "unknown"
	}
}

// AdjacencyRelationship describes how a candidate target face relates to
// the gesture's reference face. Values are ephemeral: recomputed from
// static face geometry on every detection call, never persisted.
type AdjacencyRelationship struct {
	Reference Face
	Target    Face
	State     AdjacencyState
	// SharedEdge is set only when State is AdjacencyAdjacent.
	SharedEdge *FaceEdge
	// Distance between the two face centers.
	Distance float64
	// LayerCompatible is true when the faces do not share a principal
	// axis; opposite faces are parallel, not rotation neighbors.
	LayerCompatible bool
	// ValidForRotation gates rotation initiation: adjacent and
	// layer-compatible.
	ValidForRotation bool
}

// DetectionResult is the metrics-bearing form of a detection: the
// relationship plus a confidence score used to gate rotation initiation,
// and the time the detection took for perf auditing.
type DetectionResult struct {
	Relationship        AdjacencyRelationship
	Confidence          float64
	CanInitiateRotation bool
	ProcessingTime      time.Duration
}

// AdjacencyDetector classifies face pairs against configured thresholds.
type AdjacencyDetector struct {
	cfg *config
}

// NewAdjacencyDetector creates a detector with the given options.
func NewAdjacencyDetector(opts ...Option) *AdjacencyDetector {
	return &AdjacencyDetector{cfg: newConfig(opts)}
}

func newAdjacencyDetector(cfg *config) *AdjacencyDetector {
	return &AdjacencyDetector{cfg: cfg}
}

// Detect classifies the relationship between a reference face and a
// candidate target face. Pairs whose center distance falls inside the
// diagonal radius are ADJACENT when a shared boundary edge exists and
// DIAGONAL otherwise; beyond the radius they are NON_ADJACENT. On the
// canonical cube, edge-sharing neighbors sit at distance sqrt(2) and
// opposite faces at 2.
func (d *AdjacencyDetector) Detect(reference, target Face) AdjacencyRelationship {
	rel := AdjacencyRelationship{Reference: reference, Target: target}

	if reference == target {
		rel.State = AdjacencyIdentical
		return rel
	}

	rel.Distance = FaceCenter(reference).Sub(FaceCenter(target)).Len()
	rel.LayerCompatible = !AreParallel(reference, target)

	switch {
	case rel.Distance <= d.cfg.adjacencyThreshold:
		rel.State = AdjacencyAdjacent
	case rel.Distance <= d.cfg.diagonalThreshold:
		if edge, ok := d.sharedEdge(reference, target); ok {
			rel.State = AdjacencyAdjacent
			rel.SharedEdge = &edge
		} else {
			rel.State = AdjacencyDiagonal
		}
	default:
		rel.State = AdjacencyNone
	}

	if rel.State == AdjacencyAdjacent && rel.SharedEdge == nil {
		if edge, ok := d.sharedEdge(reference, target); ok {
			rel.SharedEdge = &edge
		}
	}

	rel.ValidForRotation = rel.State == AdjacencyAdjacent && rel.LayerCompatible
	return rel
}

// DetectWithMetrics runs Detect against the tracked reference and scores
// the result. Confidence starts from the classification (0.8 adjacent,
// 0.4 diagonal), gains 0.2 for layer compatibility and up to 0.1 for a
// short drag, capped at 1.0. The rotation gate opens only above the
// configured confidence threshold; jittery orientation drags stay below
// it.
func (d *AdjacencyDetector) DetectWithMetrics(ref *FaceReference, target Face) DetectionResult {
	start := d.cfg.now()
	rel := d.Detect(ref.Face, target)

	confidence := 0.0
	switch rel.State {
	case AdjacencyAdjacent:
		confidence = 0.8
	case AdjacencyDiagonal:
		confidence = 0.4
	}
	if rel.LayerCompatible {
		confidence += 0.2
	}
	switch {
	case ref.DragDistance < 0.5:
		confidence += 0.1
	case ref.DragDistance < 2.0:
		confidence += 0.05
	}
	if confidence > 1.0 {
		confidence = 1.0
	}

	return DetectionResult{
		Relationship:        rel,
		Confidence:          confidence,
		CanInitiateRotation: rel.ValidForRotation && confidence > d.cfg.confidenceGate,
		ProcessingTime:      d.cfg.now().Sub(start),
	}
}

// sharedEdge compares the boundary edges of both faces pairwise and
// returns the pair whose endpoints coincide within the edge tolerance.
func (d *AdjacencyDetector) sharedEdge(a, b Face) (FaceEdge, bool) {
	tol := d.cfg.edgeTolerance
	for _, ea := range FaceEdges(a) {
		for _, eb := range FaceEdges(b) {
			if edgesCoincide(ea, eb, tol) {
				return ea, true
			}
		}
	}
	return FaceEdge{}, false
}

// edgesCoincide reports whether two segments have matching endpoints in
// either orientation.
func edgesCoincide(a, b FaceEdge, tol float64) bool {
	if nearVec(a.Start, b.Start, tol) && nearVec(a.End, b.End, tol) {
		return true
	}
	return nearVec(a.Start, b.End, tol) && nearVec(a.End, b.Start, tol)
}

func nearVec(a, b mgl64.Vec3, tol float64) bool {
	return a.Sub(b).Len() <= tol
}
