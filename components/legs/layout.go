package legs

import (
	"github.com/adammck/crawler/components/legs/gait"
	"github.com/adammck/crawler/math3d"
	"github.com/go-gl/mathgl/mgl64"
)

// Slot is where a single leg is attached to the body.
type Slot struct {
	Side  Side
	Index int

	// The anchor of the leg, in the body coordinate space.
	Offset mgl64.Vec3
}

// Layout is the arrangement of every leg around the body. Slots are ordered
// left front-to-back, then right front-to-back, which is also the order of
// the neighbor table.
type Layout struct {
	Slots     []Slot
	Neighbors gait.Neighbors
}

// Plan spreads legsPerSide legs along each side of the body, separated by
// angleBetweenLegs degrees and legDistance away from the center. An odd number
// of legs puts the middle leg perpendicular to forward; an even number
// straddles the perpendicular by half a step.
func Plan(legsPerSide int, angleBetweenLegs, legDistance float64, forward mgl64.Vec3) Layout {
	fwd := math3d.Horizontal(forward).Normalize()
	left := fwd.Cross(math3d.Up)
	right := math3d.Up.Cross(fwd)

	offset := 0.0
	if legsPerSide%2 == 0 {
		offset = angleBetweenLegs / 2
	}

	// Rotation (towards forward) of the front-most leg.
	front := angleBetweenLegs*float64(legsPerSide/2) - offset

	slots := make([]Slot, 0, legsPerSide*2)
	for _, side := range []Side{Left, Right} {
		for i := 0; i < legsPerSide; i++ {
			deg := front - float64(i)*angleBetweenLegs
			dir := left

			// The right side is the mirror image, so turning towards forward
			// is the other way around.
			if side == Right {
				deg = -deg
				dir = right
			}

			rot := mgl64.QuatRotate(mgl64.DegToRad(deg), math3d.Up)
			slots = append(slots, Slot{
				Side:   side,
				Index:  i,
				Offset: rot.Rotate(dir).Mul(legDistance),
			})
		}
	}

	return Layout{
		Slots:     slots,
		Neighbors: gait.Table(legsPerSide),
	}
}
