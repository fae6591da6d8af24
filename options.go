package cubedrag

import "time"

// Option configures the gesture pipeline components.
type Option func(*config)

// config holds every tunable threshold of the pipeline. The defaults are
// calibrated to the canonical cube: centered at the origin, half-extent 1.
// Changing the cube scale requires rescaling every distance threshold
// proportionally.
type config struct {
	adjacencyThreshold float64       // center distance for direct neighbors
	diagonalThreshold  float64       // center distance for diagonal pairs
	edgeTolerance      float64       // endpoint tolerance for shared-edge matching
	hysteresis         float64       // minimum drag delta accepted as an update
	maxDragDistance    float64       // drag distance at which a gesture is abandoned
	validityTimeout    time.Duration // stale face reference timeout
	minTorqueAngle     float64       // degrees
	maxTorqueAngle     float64       // degrees
	axisThreshold      float64       // minimum cross-product magnitude for a usable axis
	confidenceGate     float64       // adjacency confidence required to begin a rotation
	moveThrottle       time.Duration // minimum interval between processed drag updates
	now                func() time.Time
}

func defaultConfig() *config {
	return &config{
		adjacencyThreshold: 1.1,
		diagonalThreshold:  1.6,
		edgeTolerance:      0.1,
		hysteresis:         0.01,
		maxDragDistance:    5.0,
		validityTimeout:    3 * time.Second,
		minTorqueAngle:     15,
		maxTorqueAngle:     165,
		axisThreshold:      0.001,
		confidenceGate:     0.8,
		moveThrottle:       16 * time.Millisecond,
		now:                time.Now,
	}
}

func newConfig(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithAdjacencyThresholds sets the center-distance radii used to classify
// face pairs: within adjacent is a direct neighbor candidate, within
// diagonal a corner-sharing pair, beyond diagonal non-adjacent.
func WithAdjacencyThresholds(adjacent, diagonal float64) Option {
	return func(c *config) {
		c.adjacencyThreshold = adjacent
		c.diagonalThreshold = diagonal
	}
}

// WithEdgeTolerance sets the endpoint tolerance used when matching the
// shared edge of two adjacent faces.
func WithEdgeTolerance(tolerance float64) Option {
	return func(c *config) {
		c.edgeTolerance = tolerance
	}
}

// WithHysteresis sets the minimum position delta for a drag update to be
// accepted. Sub-threshold jitter is suppressed to prevent feedback flicker.
func WithHysteresis(threshold float64) Option {
	return func(c *config) {
		c.hysteresis = threshold
	}
}

// WithMaxDragDistance sets the total drag distance after which a gesture is
// considered abandoned rather than a rotation attempt.
func WithMaxDragDistance(distance float64) Option {
	return func(c *config) {
		c.maxDragDistance = distance
	}
}

// WithValidityTimeout sets how long a face reference stays valid without a
// qualifying update before it self-clears.
func WithValidityTimeout(d time.Duration) Option {
	return func(c *config) {
		c.validityTimeout = d
	}
}

// WithTorqueBand sets the accepted torque angle band in degrees. Angles
// outside the band indicate an ambiguous or near-degenerate gesture.
func WithTorqueBand(minDeg, maxDeg float64) Option {
	return func(c *config) {
		c.minTorqueAngle = minDeg
		c.maxTorqueAngle = maxDeg
	}
}

// WithAxisThreshold sets the minimum cross-product magnitude below which a
// rotation axis is treated as degenerate.
func WithAxisThreshold(threshold float64) Option {
	return func(c *config) {
		c.axisThreshold = threshold
	}
}

// WithConfidenceGate sets the adjacency confidence a drag must exceed
// before the rotation calculator runs.
func WithConfidenceGate(gate float64) Option {
	return func(c *config) {
		c.confidenceGate = gate
	}
}

// WithMoveThrottle sets the minimum interval between processed drag
// updates. The default matches a 60fps frame budget.
func WithMoveThrottle(d time.Duration) Option {
	return func(c *config) {
		c.moveThrottle = d
	}
}

// WithClock replaces the wall clock. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}
