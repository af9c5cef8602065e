package math3d

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// EulerAngles is an orientation expressed as three rotations, in radians.
// Heading turns around the Y axis (positive turns forwards towards the
// right), Pitch around the X axis (positive tips the nose down), and Bank
// around the Z axis.
type EulerAngles struct {
	Heading float64 // y
	Pitch   float64 // x
	Bank    float64 // z
}

type rotation int

const (
	RotationHeading rotation = iota
	RotationPitch
	RotationBank
)

var (
	IdentityOrientation = EulerAngles{}
)

// MakeSingularEulerAngle returns an EulerAngles with a single rotation set to
// the given angle, in degrees.
func MakeSingularEulerAngle(rot rotation, angle float64) EulerAngles {
	ea := EulerAngles{}

	switch rot {
	case RotationHeading:
		ea.Heading = mgl64.DegToRad(angle)

	case RotationPitch:
		ea.Pitch = mgl64.DegToRad(angle)

	case RotationBank:
		ea.Bank = mgl64.DegToRad(angle)

	default:
		panic("invalid rotation")
	}

	return ea
}

// Quat returns the orientation as a quaternion. Bank is applied first, then
// pitch, then heading, so the heading is always around the world Y axis.
func (ea EulerAngles) Quat() mgl64.Quat {
	h := mgl64.QuatRotate(ea.Heading, Up)
	p := mgl64.QuatRotate(ea.Pitch, Right)
	b := mgl64.QuatRotate(ea.Bank, Forward)
	return h.Mul(p).Mul(b).Normalize()
}

func (ea EulerAngles) String() string {
	return fmt.Sprintf("&Euler{h=%+.2f° p=%+.2f° b=%+.2f°}", mgl64.RadToDeg(ea.Heading), mgl64.RadToDeg(ea.Pitch), mgl64.RadToDeg(ea.Bank))
}
