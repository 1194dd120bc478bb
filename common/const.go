package common

// Logical world size in fixed world units. Physics always runs in these
// units; the window scale only affects rendering.
const (
	BaseWidth  = 1280
	BaseHeight = 720
)

// Hard world boundaries. The track floor and ceiling always win over any
// entity collision.
const (
	FloorY   = 656.0
	CeilingY = 64.0
)
