package terrain

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Query is the view of the world which the legs need. Implementations must
// be callable at arbitrary points, and must not collide with the markers
// which represent the feet themselves.
type Query interface {

	// SampleGroundBelow casts straight down from origin for at most maxDown
	// (which may be +Inf), and returns the first surface hit.
	SampleGroundBelow(origin mgl64.Vec3, maxDown float64) (mgl64.Vec3, bool)

	// ProbeObstruction checks whether the straight path from origin along
	// direction for maxDistance is blocked. If it is, the result holds the top
	// of the obstruction (if one can be found within climbHeight above the
	// origin) and the point on the obstruction's surface closest to target.
	ProbeObstruction(origin, direction mgl64.Vec3, maxDistance, climbHeight float64, target mgl64.Vec3) (Obstruction, bool)
}

// Obstruction describes something in the way of a step.
type Obstruction struct {

	// The climbable surface above the obstruction. Only valid if HasAbove.
	Above    mgl64.Vec3
	HasAbove bool

	// The point on the surface of the obstruction which is nearest to the
	// target of the probe.
	Closest mgl64.Vec3
}
