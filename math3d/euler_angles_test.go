package math3d

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

func TestMakeSingularEulerAngle(t *testing.T) {
	assert.InDelta(t, mgl64.DegToRad(90), MakeSingularEulerAngle(RotationHeading, 90).Heading, 1e-9)
	assert.InDelta(t, mgl64.DegToRad(-13), MakeSingularEulerAngle(RotationPitch, -13).Pitch, 1e-9)
	assert.InDelta(t, mgl64.DegToRad(11), MakeSingularEulerAngle(RotationBank, 11).Bank, 1e-9)
	assert.Panics(t, func() { MakeSingularEulerAngle(rotation(7), 1) })
}

func TestQuatHeadingIsWorldY(t *testing.T) {

	// Tilting the body must never swing the heading away from the Y axis, so
	// a level forward vector keeps the same horizontal direction.
	ea := EulerAngles{Heading: mgl64.DegToRad(90), Pitch: mgl64.DegToRad(20), Bank: mgl64.DegToRad(-15)}
	fwd := ea.Quat().Rotate(Forward)
	h := Horizontal(fwd).Normalize()
	assert.InDelta(t, 0, h.Sub(Right).Len(), 1e-6, "forward was %s", Format(fwd))
	assert.Less(t, fwd.Y(), 0.0)
}
