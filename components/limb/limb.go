package limb

import (
	"github.com/adammck/crawler/math3d"
	"github.com/go-gl/mathgl/mgl64"
	log "github.com/sirupsen/logrus"
)

var logger = log.WithFields(log.Fields{
	"pkg": "limb",
})

type Body interface {
	Pose() math3d.Pose
}

// Limb stands in for the IK solver of a single leg. It converts each goal
// into the space of the leg, such that the anchor is at [0, 0, 0], and
// constrains it to what the leg can reach.
type Limb struct {
	Name string

	body   Body
	origin mgl64.Vec3
	reach  float64

	// The most recent goal, in the leg space.
	Goal mgl64.Vec3

	// True if the most recent goal was out of reach.
	Clamped bool
}

// New returns a limb attached to the body at origin (in the body space) which
// can reach reach units in any direction.
func New(name string, body Body, origin mgl64.Vec3, reach float64) *Limb {
	return &Limb{
		Name:   name,
		body:   body,
		origin: origin,
		reach:  reach,
	}
}

func (l *Limb) SetGoal(world mgl64.Vec3) {

	// Transform the goal into the body space, then into the leg space.
	v := mgl64.TransformCoordinate(world, l.body.Pose().Local()).Sub(l.origin)

	// Constrain to avoid tearing the leg off.
	l.Clamped = v.Len() > l.reach
	if l.Clamped {
		v = v.Normalize().Mul(l.reach)
	}

	l.Goal = v
	logger.WithField("leg", l.Name).Debugf("world=%s local=%s clamped=%v", math3d.Format(world), math3d.Format(v), l.Clamped)
}
