package math3d

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// Pose is a position and orientation in the world space.
type Pose struct {
	Position    mgl64.Vec3
	Orientation mgl64.Quat
}

// MakePose returns a pose at the given position, with the given orientation.
func MakePose(pos mgl64.Vec3, ea EulerAngles) Pose {
	return Pose{
		Position:    pos,
		Orientation: ea.Quat(),
	}
}

func (p Pose) String() string {
	f := p.Forward()
	return fmt.Sprintf("Pose{x=%+07.2f y=%+07.2f z=%+07.2f, fwd=%+05.2f,%+05.2f,%+05.2f}", p.Position.X(), p.Position.Y(), p.Position.Z(), f.X(), f.Y(), f.Z())
}

// Forward returns the unit vector pointing forwards out of the body.
func (p Pose) Forward() mgl64.Vec3 {
	return p.Orientation.Rotate(Forward)
}

// Back returns the unit vector pointing out of the back of the body.
func (p Pose) Back() mgl64.Vec3 {
	return p.Forward().Mul(-1)
}

// Up returns the unit vector pointing out of the top of the body.
func (p Pose) Up() mgl64.Vec3 {
	return p.Orientation.Rotate(Up)
}

// Right returns the unit vector pointing out of the right side of the body.
func (p Pose) Right() mgl64.Vec3 {
	return p.Orientation.Rotate(Right)
}

// Transform converts a vector in the pose's local space into the world space.
func (p Pose) Transform(v mgl64.Vec3) mgl64.Vec3 {
	return p.Position.Add(p.Orientation.Rotate(v))
}

// Add returns the pose pp (which is relative to p) in the world space.
func (p Pose) Add(pp Pose) Pose {
	return Pose{
		Position:    p.Transform(pp.Position),
		Orientation: p.Orientation.Mul(pp.Orientation).Normalize(),
	}
}

// World returns a matrix to transform a vector in the pose's coordinate space
// into the world space.
func (p Pose) World() mgl64.Mat4 {
	t := mgl64.Translate3D(p.Position.X(), p.Position.Y(), p.Position.Z())
	return t.Mul4(p.Orientation.Mat4())
}

// Local returns a matrix to transform a vector in the world coordinate space
// into the pose's space.
func (p Pose) Local() mgl64.Mat4 {
	return p.World().Inv()
}
