package legs

import (
	"fmt"
	"time"

	"github.com/adammck/crawler/components/legs/gait"
	"github.com/adammck/crawler/components/legs/posture"
	"github.com/adammck/crawler/config"
	"github.com/adammck/crawler/math3d"
	"github.com/adammck/crawler/terrain"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "legs",
})

// Body is the thing the legs are attached to.
type Body interface {
	Pose() math3d.Pose
}

// Legs places the feet of a walking body on the terrain beneath it, and tells
// the body how to tilt in response.
type Legs struct {
	Legs []*Leg

	body    Body
	ground  terrain.Query
	cfg     config.Config
	gait    *gait.Coordinator
	posture *posture.Estimator

	planted bool
}

// New validates the config and creates (but does not plant) every leg.
func New(body Body, ground terrain.Query, sink posture.Sink, cfg config.Config) (*Legs, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid leg config: %w", err)
	}

	layout := Plan(cfg.LegsPerSide, cfg.AngleBetweenLegs, cfg.LegDistanceFromBody, math3d.Forward)

	l := &Legs{
		Legs:    make([]*Leg, len(layout.Slots)),
		body:    body,
		ground:  ground,
		cfg:     cfg,
		posture: posture.New(sink, cfg.LegsPerSide),
	}

	steppers := make([]gait.Stepper, len(layout.Slots))
	for i, s := range layout.Slots {
		l.Legs[i] = newLeg(s)
		steppers[i] = l.Legs[i]
	}

	l.gait = gait.New(layout.Neighbors, steppers)
	return l, nil
}

// Attach connects a limb to leg i, which will be sent the target of that leg
// at the end of every tick.
func (l *Legs) Attach(i int, limb Limb) {
	l.Legs[i].limb = limb
}

// Boot plants every foot on the ground below it.
func (l *Legs) Boot() error {
	l.plant()
	return nil
}

func (l *Legs) plant() {
	pose := l.body.Pose()
	for _, leg := range l.Legs {
		leg.plant(pose, l.ground, l.cfg)
	}

	l.planted = true
	log.Infof("planted %d legs", len(l.Legs))
}

// Tick advances every leg by dt. Every future point is refreshed before any
// leg is allowed to move, so the order of the legs doesn't matter to where
// they want to be, only to which of two neighbors lifts first.
func (l *Legs) Tick(dt time.Duration) error {
	if !l.planted {
		l.plant()
	}

	pose := l.body.Pose()
	secs := dt.Seconds()

	for _, leg := range l.Legs {
		leg.refresh(pose, l.ground, l.cfg)
	}

	for i, leg := range l.Legs {
		leg.step(pose, l.ground, l.cfg, secs, func() bool {
			return l.gait.NeighborsGrounded(i)
		})
	}

	l.posture.Update(l.Feet())

	for _, leg := range l.Legs {
		if leg.Initialized && leg.limb != nil {
			leg.limb.SetGoal(leg.Target)
		}
	}

	return nil
}

// Feet returns the height of every foot, for the posture estimator.
func (l *Legs) Feet() []posture.Foot {
	feet := make([]posture.Foot, len(l.Legs))
	for i, leg := range l.Legs {
		feet[i] = posture.Foot{
			Side:   int(leg.Side),
			Index:  leg.Index,
			Height: leg.Target.Y(),
		}
	}

	return feet
}

// Swinging returns the indices of the legs which are currently in the air.
func (l *Legs) Swinging() []int {
	out := []int{}
	for i, leg := range l.Legs {
		if leg.Swinging() {
			out = append(out, i)
		}
	}

	return out
}

// Footing returns the number of legs which found ground below them on the
// last tick, and the total number of legs.
func (l *Legs) Footing() (int, int) {
	n := 0
	for _, leg := range l.Legs {
		if !leg.Lost {
			n += 1
		}
	}

	return n, len(l.Legs)
}

// Neighbors returns the indices of the legs which must be grounded before leg
// i may lift.
func (l *Legs) Neighbors(i int) []int {
	return l.gait.Neighbors(i)
}
