package cubedrag

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	s, _ = s.ApplyAll(cubedrag.R, cubedrag.U, cubedrag.RPrime, cubedrag.UPrime)
var (
	// Right face moves
	R      = Move{Face: FaceRight, Direction: Clockwise}
	RPrime = Move{Face: FaceRight, Direction: Counterclockwise}
	R2     = Move{Face: FaceRight, Direction: DoubleTurn}

	// Left face moves
	L      = Move{Face: FaceLeft, Direction: Clockwise}
	LPrime = Move{Face: FaceLeft, Direction: Counterclockwise}
	L2     = Move{Face: FaceLeft, Direction: DoubleTurn}

	// Up face moves
	U      = Move{Face: FaceUp, Direction: Clockwise}
	UPrime = Move{Face: FaceUp, Direction: Counterclockwise}
	U2     = Move{Face: FaceUp, Direction: DoubleTurn}

	// Down face moves
	D      = Move{Face: FaceDown, Direction: Clockwise}
	DPrime = Move{Face: FaceDown, Direction: Counterclockwise}
	D2     = Move{Face: FaceDown, Direction: DoubleTurn}

	// Front face moves
	F      = Move{Face: FaceFront, Direction: Clockwise}
	FPrime = Move{Face: FaceFront, Direction: Counterclockwise}
	F2     = Move{Face: FaceFront, Direction: DoubleTurn}

	// Back face moves
	B      = Move{Face: FaceBack, Direction: Clockwise}
	BPrime = Move{Face: FaceBack, Direction: Counterclockwise}
	B2     = Move{Face: FaceBack, Direction: DoubleTurn}
)

// AllMoves lists the 18 canonical moves in notation order.
var AllMoves = []Move{
	U, UPrime, U2,
	D, DPrime, D2,
	F, FPrime, F2,
	B, BPrime, B2,
	R, RPrime, R2,
	L, LPrime, L2,
}

// Sexy move: R U R' U' - one of the most common algorithms
var SexyMove = []Move{R, U, RPrime, UPrime}
