package cubedrag

import "time"

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved

	numColors = 6
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// SolvedColor returns the color of a face when the cube is solved.
func SolvedColor(f Face) Color {
	switch f {
	case FaceUp:
		return White
	case FaceDown:
		return Yellow
	case FaceFront:
		return Green
	case FaceBack:
		return Blue
	case FaceRight:
		return Red
	case FaceLeft:
		return Orange
	default:
		return White
	}
}

// FaceState holds the 9 stickers of one face in row-major 3x3 order:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// The center (index 4) defines the face color and never moves.
// Rotation is a cosmetic display angle carried for the renderer; it has no
// logical meaning.
type FaceState struct {
	Position Face
	Colors   [9]Color
	Rotation float64
}

// CubeState is an immutable snapshot of a 3x3 Rubik's cube. States are
// created solved by NewSolvedState and derived by Apply; they are never
// mutated in place, so a value may be shared freely by reference.
type CubeState struct {
	faces     [numFaces]FaceState
	history   []Move
	timestamp time.Time
	scrambled bool
	solved    bool
}

// NewSolvedState creates a solved cube with standard orientation:
// White on top, Green in front. The move history is empty.
func NewSolvedState() *CubeState {
	s := &CubeState{
		timestamp: time.Now(),
		solved:    true,
	}
	for f := Face(0); f < numFaces; f++ {
		s.faces[f].Position = f
		color := SolvedColor(f)
		for i := 0; i < 9; i++ {
			s.faces[f].Colors[i] = color
		}
	}
	return s
}

// Face returns the state of one face.
func (s *CubeState) Face(f Face) FaceState {
	return s.faces[f]
}

// Faces returns all six face states, indexed by Face.
func (s *CubeState) Faces() [numFaces]FaceState {
	return s.faces
}

// MoveHistory returns a copy of the moves applied since the solved state.
func (s *CubeState) MoveHistory() []Move {
	out := make([]Move, len(s.history))
	copy(out, s.history)
	return out
}

// MoveCount returns the number of moves applied since the solved state.
func (s *CubeState) MoveCount() int {
	return len(s.history)
}

// LastMove returns the most recent move and true, or false when the
// history is empty.
func (s *CubeState) LastMove() (Move, bool) {
	if len(s.history) == 0 {
		return Move{}, false
	}
	return s.history[len(s.history)-1], true
}

// Timestamp returns when this state value was constructed.
func (s *CubeState) Timestamp() time.Time {
	return s.timestamp
}

// IsSolved reports whether every face is monochrome.
func (s *CubeState) IsSolved() bool {
	return s.solved
}

// IsScrambled reports whether the state descends from a scramble and has
// not been solved since.
func (s *CubeState) IsScrambled() bool {
	return s.scrambled
}

// Apply returns a new state with the move applied and appended to the
// history. The receiver is unchanged. Returns ErrInvalidMove if the move
// descriptor is malformed; a well-formed move never fails, since all moves
// are reversible group operations.
func (s *CubeState) Apply(m Move) (*CubeState, error) {
	if !m.valid() {
		return nil, ErrInvalidMove
	}

	grid := s.grid()
	applyToGrid(&grid, m)

	next := &CubeState{
		history:   append(s.MoveHistory(), m),
		timestamp: time.Now(),
	}
	for f := Face(0); f < numFaces; f++ {
		next.faces[f] = FaceState{Position: f, Colors: grid[f], Rotation: s.faces[f].Rotation}
	}
	next.solved = gridSolved(&grid)
	next.scrambled = s.scrambled && !next.solved
	return next, nil
}

// ApplyAll applies a sequence of moves in order.
func (s *CubeState) ApplyAll(moves ...Move) (*CubeState, error) {
	cur := s
	for _, m := range moves {
		next, err := cur.Apply(m)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// ApplyNotation parses and applies a space-separated move sequence.
// Example: "R U R' U'"
func (s *CubeState) ApplyNotation(notation string) (*CubeState, error) {
	moves, err := ParseMoves(notation)
	if err != nil {
		return nil, err
	}
	return s.ApplyAll(moves...)
}

// Scramble applies the given moves and marks the resulting state
// scrambled. Use NewScramble to generate a sequence.
func (s *CubeState) Scramble(moves []Move) (*CubeState, error) {
	next, err := s.ApplyAll(moves...)
	if err != nil {
		return nil, err
	}
	out := next.Clone()
	out.scrambled = !out.solved
	return out, nil
}

// Validate checks structural integrity: six faces in position order, nine
// stickers per face, and exactly nine stickers of each of the six colors
// across the cube. Color-count conservation is a necessary condition for
// physical realizability; permutation parity is not checked.
func (s *CubeState) Validate() bool {
	var counts [numColors]int
	for f := Face(0); f < numFaces; f++ {
		if s.faces[f].Position != f {
			return false
		}
		for _, c := range s.faces[f].Colors {
			if c >= numColors {
				return false
			}
			counts[c]++
		}
	}
	for _, n := range counts {
		if n != 9 {
			return false
		}
	}
	return true
}

// Equal reports structural equality ignoring timestamps.
func (s *CubeState) Equal(o *CubeState) bool {
	if s == nil || o == nil {
		return s == o
	}
	if s.faces != o.faces || s.scrambled != o.scrambled || s.solved != o.solved {
		return false
	}
	if len(s.history) != len(o.history) {
		return false
	}
	for i := range s.history {
		if s.history[i] != o.history[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the state.
func (s *CubeState) Clone() *CubeState {
	out := &CubeState{
		faces:     s.faces,
		history:   s.MoveHistory(),
		timestamp: s.timestamp,
		scrambled: s.scrambled,
		solved:    s.solved,
	}
	return out
}

// grid extracts the sticker colors as a plain array for permutation.
func (s *CubeState) grid() [numFaces][9]Color {
	var g [numFaces][9]Color
	for f := Face(0); f < numFaces; f++ {
		g[f] = s.faces[f].Colors
	}
	return g
}

// gridSolved reports whether every face matches its center color.
// Centers never move, so a monochrome cube is always in canonical colors.
func gridSolved(g *[numFaces][9]Color) bool {
	for f := 0; f < numFaces; f++ {
		center := g[f][4]
		for i := 0; i < 9; i++ {
			if g[f][i] != center {
				return false
			}
		}
	}
	return true
}

// cwIndex maps each sticker index to its destination under a 90 degree
// clockwise face rotation: corners cycle 0->2->8->6->0, edges 1->5->7->3->1,
// center fixed.
var cwIndex = [9]int{2, 5, 8, 1, 4, 7, 0, 3, 6}

// RotateFace90Clockwise rotates a 3x3 sticker grid 90 degrees clockwise.
func RotateFace90Clockwise(colors [9]Color) [9]Color {
	var out [9]Color
	for i, c := range colors {
		out[cwIndex[i]] = c
	}
	return out
}

// RotateFace90Counterclockwise is the exact inverse of the clockwise
// rotation.
func RotateFace90Counterclockwise(colors [9]Color) [9]Color {
	var out [9]Color
	for i := range colors {
		out[i] = colors[cwIndex[i]]
	}
	return out
}

// RotateFace180 rotates a 3x3 sticker grid 180 degrees: index i maps to
// 8-i.
func RotateFace180(colors [9]Color) [9]Color {
	var out [9]Color
	for i, c := range colors {
		out[8-i] = c
	}
	return out
}

// borderStrip addresses three stickers on one face.
type borderStrip struct {
	face    Face
	indices [3]int
}

// borderCycles lists, for each turned face, the four neighbor strips that
// lie on its layer. Under a clockwise turn the strip contents flow
// 0 -> 1 -> 2 -> 3 -> 0. A full physical move touches five faces: the
// turned face plus these four strips.
var borderCycles = [numFaces][4]borderStrip{
	FaceUp: {
		{FaceFront, [3]int{0, 1, 2}},
		{FaceLeft, [3]int{0, 1, 2}},
		{FaceBack, [3]int{0, 1, 2}},
		{FaceRight, [3]int{0, 1, 2}},
	},
	FaceDown: {
		{FaceFront, [3]int{6, 7, 8}},
		{FaceRight, [3]int{6, 7, 8}},
		{FaceBack, [3]int{6, 7, 8}},
		{FaceLeft, [3]int{6, 7, 8}},
	},
	FaceFront: {
		{FaceUp, [3]int{6, 7, 8}},
		{FaceRight, [3]int{0, 3, 6}},
		{FaceDown, [3]int{2, 1, 0}},
		{FaceLeft, [3]int{8, 5, 2}},
	},
	FaceBack: {
		{FaceUp, [3]int{2, 1, 0}},
		{FaceLeft, [3]int{0, 3, 6}},
		{FaceDown, [3]int{6, 7, 8}},
		{FaceRight, [3]int{8, 5, 2}},
	},
	FaceRight: {
		{FaceUp, [3]int{2, 5, 8}},
		{FaceBack, [3]int{6, 3, 0}},
		{FaceDown, [3]int{2, 5, 8}},
		{FaceFront, [3]int{2, 5, 8}},
	},
	FaceLeft: {
		{FaceUp, [3]int{0, 3, 6}},
		{FaceFront, [3]int{0, 3, 6}},
		{FaceDown, [3]int{0, 3, 6}},
		{FaceBack, [3]int{8, 5, 2}},
	},
}

// applyToGrid applies one move to a sticker grid in place.
func applyToGrid(g *[numFaces][9]Color, m Move) {
	switch m.Direction {
	case Clockwise:
		turnCW(g, m.Face)
	case Counterclockwise:
		turnCW(g, m.Face)
		turnCW(g, m.Face)
		turnCW(g, m.Face)
	case DoubleTurn:
		turnCW(g, m.Face)
		turnCW(g, m.Face)
	}
}

// turnCW performs one clockwise quarter turn: rotate the face itself, then
// cycle the four neighbor strips on its layer.
func turnCW(g *[numFaces][9]Color, face Face) {
	g[face] = RotateFace90Clockwise(g[face])

	strips := borderCycles[face]
	var tmp [3]Color
	for k, idx := range strips[3].indices {
		tmp[k] = g[strips[3].face][idx]
	}
	for i := 3; i > 0; i-- {
		src, dst := strips[i-1], strips[i]
		for k := range dst.indices {
			g[dst.face][dst.indices[k]] = g[src.face][src.indices[k]]
		}
	}
	for k, idx := range strips[0].indices {
		g[strips[0].face][idx] = tmp[k]
	}
}

// String returns a text net of the cube: U on top, then L F R B, then D.
func (s *CubeState) String() string {
	result := ""

	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += s.faces[FaceUp].Colors[row*3+col].String() + " "
		}
		result += "\n"
	}

	for row := 0; row < 3; row++ {
		for _, face := range []Face{FaceLeft, FaceFront, FaceRight, FaceBack} {
			for col := 0; col < 3; col++ {
				result += s.faces[face].Colors[row*3+col].String() + " "
			}
		}
		result += "\n"
	}

	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += s.faces[FaceDown].Colors[row*3+col].String() + " "
		}
		result += "\n"
	}

	return result
}
