package cubedrag

import (
	"math/rand"
	"testing"
)

func TestNewScrambleLength(t *testing.T) {
	moves, err := NewScramble(25, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	if len(moves) != 25 {
		t.Errorf("Scramble length = %d, want 25", len(moves))
	}
}

func TestNewScrambleRejectsBadLength(t *testing.T) {
	for _, n := range []int{0, -5} {
		if _, err := NewScramble(n, nil); err != ErrScrambleLength {
			t.Errorf("NewScramble(%d): got %v, want ErrScrambleLength", n, err)
		}
	}
}

func TestNewScrambleAvoidsRedundantMoves(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	moves, err := NewScramble(200, rng)
	if err != nil {
		t.Fatal(err)
	}
	for i := 1; i < len(moves); i++ {
		if moves[i].Face == moves[i-1].Face {
			t.Fatalf("Moves %d and %d repeat face %v", i-1, i, moves[i].Face)
		}
		if i > 1 &&
			moves[i].Face.axis() == moves[i-1].Face.axis() &&
			moves[i-1].Face.axis() == moves[i-2].Face.axis() {
			t.Fatalf("Moves %d..%d stay on one axis", i-2, i)
		}
	}
}

func TestNewScrambleDeterministicWithSeed(t *testing.T) {
	a, err := NewScramble(30, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewScramble(30, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}
	if FormatMoves(a) != FormatMoves(b) {
		t.Error("Same seed should produce the same scramble")
	}
}

func TestScrambledStateValidates(t *testing.T) {
	moves, err := NewScramble(50, rand.New(rand.NewSource(12)))
	if err != nil {
		t.Fatal(err)
	}
	s, err := NewSolvedState().Scramble(moves)
	if err != nil {
		t.Fatal(err)
	}
	if !s.Validate() {
		t.Error("Scrambled state must still conserve sticker colors")
	}
	if s.MoveCount() != 50 {
		t.Errorf("Move count = %d, want 50", s.MoveCount())
	}
}
