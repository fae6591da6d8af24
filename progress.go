package cubedrag

// Solve progress detection for the layer-by-layer method.
// Standard orientation: White on top (U), Green in front (F).

// Progress represents how far a layer-by-layer solve has advanced.
// Values are ordered from scrambled to solved and compare with < and >.
type Progress int

const (
	ProgressScrambled Progress = iota
	ProgressWhiteCross
	ProgressFirstLayer
	ProgressMiddleLayer
	ProgressBottomCross
	ProgressSolved
)

// String returns a short identifier for the progress stage.
func (p Progress) String() string {
	switch p {
	case ProgressScrambled:
		return "scrambled"
	case ProgressWhiteCross:
		return "white_cross"
	case ProgressFirstLayer:
		return "first_layer"
	case ProgressMiddleLayer:
		return "middle_layer"
	case ProgressBottomCross:
		return "bottom_cross"
	case ProgressSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the progress stage.
func (p Progress) DisplayName() string {
	switch p {
	case ProgressScrambled:
		return "Scrambled"
	case ProgressWhiteCross:
		return "White Cross"
	case ProgressFirstLayer:
		return "First Layer"
	case ProgressMiddleLayer:
		return "Middle Layer (F2L)"
	case ProgressBottomCross:
		return "Yellow Cross"
	case ProgressSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// DetectProgress returns the highest progress stage the state satisfies.
func DetectProgress(s *CubeState) Progress {
	switch {
	case s.IsSolved():
		return ProgressSolved
	case s.hasBottomCross():
		return ProgressBottomCross
	case s.hasMiddleLayer():
		return ProgressMiddleLayer
	case s.hasFirstLayer():
		return ProgressFirstLayer
	case s.hasWhiteCross():
		return ProgressWhiteCross
	default:
		return ProgressScrambled
	}
}

// hasWhiteCross checks the four white edges on U with side colors
// matching their centers. U[1] borders B[1], U[3] borders L[1],
// U[5] borders R[1], U[7] borders F[1].
func (s *CubeState) hasWhiteCross() bool {
	u := s.faces[FaceUp].Colors
	for _, pos := range []int{1, 3, 5, 7} {
		if u[pos] != White {
			return false
		}
	}
	for _, f := range []Face{FaceBack, FaceLeft, FaceRight, FaceFront} {
		colors := s.faces[f].Colors
		if colors[1] != colors[4] {
			return false
		}
	}
	return true
}

// hasFirstLayer checks white cross plus all white corners placed: the
// whole U face white and the top row of each side matching its center.
func (s *CubeState) hasFirstLayer() bool {
	if !s.hasWhiteCross() {
		return false
	}
	for _, c := range s.faces[FaceUp].Colors {
		if c != White {
			return false
		}
	}
	for _, f := range []Face{FaceFront, FaceRight, FaceBack, FaceLeft} {
		colors := s.faces[f].Colors
		if colors[0] != colors[4] || colors[2] != colors[4] {
			return false
		}
	}
	return true
}

// hasMiddleLayer checks the first layer plus the middle edges (positions
// 3 and 5) of each side face.
func (s *CubeState) hasMiddleLayer() bool {
	if !s.hasFirstLayer() {
		return false
	}
	for _, f := range []Face{FaceFront, FaceRight, FaceBack, FaceLeft} {
		colors := s.faces[f].Colors
		if colors[3] != colors[4] || colors[5] != colors[4] {
			return false
		}
	}
	return true
}

// hasBottomCross checks the middle layer plus the four yellow edges
// showing on D. Edge positions only; orientation of the last layer is not
// required.
func (s *CubeState) hasBottomCross() bool {
	if !s.hasMiddleLayer() {
		return false
	}
	d := s.faces[FaceDown].Colors
	for _, pos := range []int{1, 3, 5, 7} {
		if d[pos] != Yellow {
			return false
		}
	}
	return true
}
