package cubedrag

import "math/rand"

// NewScramble generates a random move sequence of the given length.
// Consecutive moves never repeat a face, and no three consecutive moves
// share an axis, so every move disturbs the cube. Pass a seeded rand for
// reproducible scrambles; nil uses the global source.
func NewScramble(length int, rng *rand.Rand) ([]Move, error) {
	if length <= 0 {
		return nil, ErrScrambleLength
	}

	intn := rand.Intn
	if rng != nil {
		intn = rng.Intn
	}

	directions := []Direction{Clockwise, Counterclockwise, DoubleTurn}
	moves := make([]Move, 0, length)

	for len(moves) < length {
		face := Face(intn(numFaces))
		if n := len(moves); n > 0 {
			if moves[n-1].Face == face {
				continue
			}
			if n > 1 && moves[n-1].Face.axis() == face.axis() && moves[n-2].Face.axis() == face.axis() {
				continue
			}
		}
		moves = append(moves, Move{Face: face, Direction: directions[intn(len(directions))]})
	}

	return moves, nil
}
