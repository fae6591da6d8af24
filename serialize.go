package cubedrag

import (
	"encoding/json"
	"fmt"
	"time"
)

// stateJSON is the wire form of a CubeState. Round-trips are exact for
// every field except the timestamp, which loses sub-serialization
// precision.
type stateJSON struct {
	Faces       [numFaces]faceJSON `json:"faces"`
	MoveHistory []string           `json:"moveHistory"`
	Timestamp   time.Time          `json:"timestamp"`
	IsScrambled bool               `json:"isScrambled"`
	IsSolved    bool               `json:"isSolved"`
}

type faceJSON struct {
	Position string    `json:"position"`
	Colors   [9]string `json:"colors"`
	Rotation float64   `json:"rotation"`
}

// Serialize encodes the state as JSON.
func Serialize(s *CubeState) ([]byte, error) {
	var out stateJSON
	for f := Face(0); f < numFaces; f++ {
		face := s.faces[f]
		fj := faceJSON{Position: f.String(), Rotation: face.Rotation}
		for i, c := range face.Colors {
			fj.Colors[i] = c.String()
		}
		out.Faces[f] = fj
	}
	out.MoveHistory = make([]string, len(s.history))
	for i, m := range s.history {
		out.MoveHistory[i] = m.Notation()
	}
	out.Timestamp = s.timestamp
	out.IsScrambled = s.scrambled
	out.IsSolved = s.solved
	return json.Marshal(out)
}

// Deserialize decodes a state previously produced by Serialize. Any
// structural damage (wrong face or sticker counts, unknown colors, a
// color-count imbalance, an unparsable history entry, or a solved flag
// that contradicts the stickers) is reported as ErrCorruptState. The
// caller's recovery policy should be to discard the payload and reset to
// NewSolvedState; partial repair is never attempted.
func Deserialize(data []byte) (*CubeState, error) {
	var in stateJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}

	s := &CubeState{
		timestamp: in.Timestamp,
		scrambled: in.IsScrambled,
	}

	var seen [numFaces]bool
	for i, fj := range in.Faces {
		face, err := ParseFace(fj.Position)
		if err != nil {
			return nil, fmt.Errorf("%w: face %d has unknown position %q", ErrCorruptState, i, fj.Position)
		}
		if seen[face] {
			return nil, fmt.Errorf("%w: duplicate face %s", ErrCorruptState, face)
		}
		seen[face] = true

		fs := FaceState{Position: face, Rotation: fj.Rotation}
		for j, cs := range fj.Colors {
			c, err := parseColor(cs)
			if err != nil {
				return nil, fmt.Errorf("%w: face %s sticker %d has unknown color %q", ErrCorruptState, face, j, cs)
			}
			fs.Colors[j] = c
		}
		s.faces[face] = fs
	}

	s.history = make([]Move, len(in.MoveHistory))
	for i, notation := range in.MoveHistory {
		m, err := ParseMove(notation)
		if err != nil {
			return nil, fmt.Errorf("%w: history entry %d %q", ErrCorruptState, i, notation)
		}
		s.history[i] = m
	}

	if !s.Validate() {
		return nil, fmt.Errorf("%w: sticker color counts are not conserved", ErrCorruptState)
	}

	grid := s.grid()
	s.solved = gridSolved(&grid)
	if s.solved != in.IsSolved {
		return nil, fmt.Errorf("%w: solved flag disagrees with stickers", ErrCorruptState)
	}

	return s, nil
}

func parseColor(s string) (Color, error) {
	switch s {
	case "W":
		return White, nil
	case "Y":
		return Yellow, nil
	case "G":
		return Green, nil
	case "B":
		return Blue, nil
	case "R":
		return Red, nil
	case "O":
		return Orange, nil
	default:
		return 0, ErrCorruptState
	}
}
