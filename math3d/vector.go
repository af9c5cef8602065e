package math3d

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Body-local axes: +Y up, +Z forwards, +X to the right.
var (
	Zero    = mgl64.Vec3{}
	Up      = mgl64.Vec3{0, 1, 0}
	Forward = mgl64.Vec3{0, 0, 1}
	Right   = mgl64.Vec3{1, 0, 0}
)

// Format returns a short human-readable representation of the vector, for
// logging.
func Format(v mgl64.Vec3) string {
	return fmt.Sprintf("&Vec3{x=%0.2f y=%0.2f z=%0.2f}", v.X(), v.Y(), v.Z())
}

// MoveTowards returns the point which is at most maxDelta from cur, on the
// line between cur and target. If target is within reach, it is returned
// exactly, so repeated calls always arrive.
func MoveTowards(cur, target mgl64.Vec3, maxDelta float64) mgl64.Vec3 {
	d := target.Sub(cur)
	dist := d.Len()
	if dist <= maxDelta || dist == 0 {
		return target
	}

	return cur.Add(d.Mul(maxDelta / dist))
}

// PlaneDistance returns the (unsigned) distance from v to the plane which
// passes through p with the given normal. The normal needn't be unit length.
func PlaneDistance(v, p, normal mgl64.Vec3) float64 {
	n := normal.Normalize()
	d := v.Sub(p).Dot(n)
	if d < 0 {
		return -d
	}

	return d
}

// Horizontal returns the vector with the Y component zeroed.
func Horizontal(v mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{v.X(), 0, v.Z()}
}
