package cubedrag

import "strings"

// Face identifies one of the six cube faces. The zero value is FaceUp.
type Face int

const (
	FaceUp    Face = 0 // Up (White when solved)
	FaceDown  Face = 1 // Down (Yellow)
	FaceFront Face = 2 // Front (Green)
	FaceBack  Face = 3 // Back (Blue)
	FaceRight Face = 4 // Right (Red)
	FaceLeft  Face = 5 // Left (Orange)

	numFaces = 6
)

// String returns the standard notation letter for the face.
func (f Face) String() string {
	switch f {
	case FaceUp:
		return "U"
	case FaceDown:
		return "D"
	case FaceFront:
		return "F"
	case FaceBack:
		return "B"
	case FaceRight:
		return "R"
	case FaceLeft:
		return "L"
	default:
		return "?"
	}
}

// valid reports whether f is one of the six faces.
func (f Face) valid() bool {
	return f >= 0 && f < numFaces
}

// Opposite returns the face on the other side of the cube.
func (f Face) Opposite() Face {
	switch f {
	case FaceUp:
		return FaceDown
	case FaceDown:
		return FaceUp
	case FaceFront:
		return FaceBack
	case FaceBack:
		return FaceFront
	case FaceRight:
		return FaceLeft
	case FaceLeft:
		return FaceRight
	default:
		return f
	}
}

// axis returns the principal axis index of the face: 0 = x, 1 = y, 2 = z.
func (f Face) axis() int {
	switch f {
	case FaceRight, FaceLeft:
		return 0
	case FaceUp, FaceDown:
		return 1
	default:
		return 2
	}
}

// Direction represents the direction and magnitude of a face turn.
type Direction int

const (
	Clockwise        Direction = 1  // 90 degrees clockwise
	Counterclockwise Direction = -1 // 90 degrees counter-clockwise
	DoubleTurn       Direction = 2  // 180 degrees
)

// String returns the notation suffix for the direction.
func (d Direction) String() string {
	switch d {
	case Clockwise:
		return ""
	case Counterclockwise:
		return "'"
	case DoubleTurn:
		return "2"
	default:
		return "?"
	}
}

// valid reports whether d is one of the three turn directions.
func (d Direction) valid() bool {
	return d == Clockwise || d == Counterclockwise || d == DoubleTurn
}

// Move represents a single cube move: which face to turn and how.
// Moves are pure descriptors; applying one to a CubeState is done with
// CubeState.Apply and produces a new state.
type Move struct {
	Face      Face
	Direction Direction
}

// Notation returns the standard cube notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	return m.Face.String() + m.Direction.String()
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Direction {
	case Clockwise:
		inv.Direction = Counterclockwise
	case Counterclockwise:
		inv.Direction = Clockwise
		// DoubleTurn is its own inverse
	}
	return inv
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// valid reports whether the move descriptor is well formed.
func (m Move) valid() bool {
	return m.Face.valid() && m.Direction.valid()
}

// ParseFace parses a single face letter (case-insensitive).
func ParseFace(s string) (Face, error) {
	if len(s) != 1 {
		return 0, ErrInvalidNotation
	}
	switch s[0] {
	case 'U', 'u':
		return FaceUp, nil
	case 'D', 'd':
		return FaceDown, nil
	case 'F', 'f':
		return FaceFront, nil
	case 'B', 'b':
		return FaceBack, nil
	case 'R', 'r':
		return FaceRight, nil
	case 'L', 'l':
		return FaceLeft, nil
	default:
		return 0, ErrInvalidNotation
	}
}

// ParseMove parses a standard notation string into a Move.
// Examples: R, R', R2, U, U', U2
// Returns an error if the notation is invalid.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	face, err := ParseFace(s[:1])
	if err != nil {
		return Move{}, err
	}

	dir := Clockwise // Default is clockwise
	if len(s) > 1 {
		switch s[1:] {
		case "'", "`":
			dir = Counterclockwise
		case "2":
			dir = DoubleTurn
		default:
			return Move{}, ErrInvalidNotation
		}
	}

	return Move{Face: face, Direction: dir}, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
// Returns an error on the first invalid token.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
