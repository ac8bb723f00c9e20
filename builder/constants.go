// Package builder defines shared constants used by filtration constructors.
package builder

// Method names used to prefix constructor errors.
const (
	MethodBall         = "Ball"
	MethodSphere       = "Sphere"
	MethodCycle        = "Cycle"
	MethodComplete     = "Complete"
	MethodRandomClique = "RandomClique"
	MethodPath         = "Path"
	MethodWheel        = "Wheel"
)

// Minimum sizes.
const (
	// MinCycleNodes is the smallest ring without loops or multi-edges.
	MinCycleNodes = 3

	// MinCompleteNodes is the smallest complete complex (a single vertex).
	MinCompleteNodes = 1

	// MinPathNodes is the smallest path with an edge.
	MinPathNodes = 2

	// MinWheelNodes is a hub plus the smallest ring.
	MinWheelNodes = 4

	// MinBallDim is the smallest Ball/Sphere parameter; Sphere(0) is two points.
	MinBallDim = 0
)

// Probability bounds for RandomClique.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
