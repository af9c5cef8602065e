package legs

import (
	"fmt"
	"math"

	"github.com/adammck/crawler/config"
	"github.com/adammck/crawler/math3d"
	"github.com/adammck/crawler/terrain"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
)

type Side int

const (
	Left Side = iota
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "L"
	case Right:
		return "R"
	}

	return fmt.Sprintf("Side(%d)", int(s))
}

type State string

const (
	Grounded State = "grounded"
	Swinging State = "swinging"
)

// Limb is whatever moves a real foot to the target of a leg, e.g. an IK
// solver. Goals are in the world space.
type Limb interface {
	SetGoal(world mgl64.Vec3)
}

type Leg struct {
	Name  string
	Side  Side
	Index int

	// Where the leg is attached, in the body space. Fixed at construction.
	Offset mgl64.Vec3

	State State

	// Where the foot would rest if the body stopped moving right now. This is
	// refreshed every tick, but keeps its last value when there's no ground.
	Future mgl64.Vec3

	// Where the foot actually is. This is what the limb is told to reach for.
	Target mgl64.Vec3

	// Where a swinging foot will land. Meaningless while grounded.
	Forecast mgl64.Vec3

	// Distance to the forecast at the start of the current swing.
	initialSwing float64

	Initialized bool

	// The number of ticks on which no ground could be found below the leg.
	GroundMisses int

	// True if the most recent refresh found no ground.
	Lost bool

	limb Limb
	log  *logrus.Entry
}

func newLeg(s Slot) *Leg {
	name := fmt.Sprintf("%s%d", s.Side, s.Index)

	return &Leg{
		Name:   name,
		Side:   s.Side,
		Index:  s.Index,
		Offset: s.Offset,
		State:  Grounded,
		log:    log.WithField("leg", name),
	}
}

func (l *Leg) String() string {
	return fmt.Sprintf("&Leg{%s %s target=%s}", l.Name, l.State, math3d.Format(l.Target))
}

// Anchor returns the point in the world space where the leg meets the body.
func (l *Leg) Anchor(body math3d.Pose) mgl64.Vec3 {
	return body.Transform(l.Offset)
}

// Swinging returns true if the foot is in the air.
func (l *Leg) Swinging() bool {
	return l.State == Swinging
}

// Lag returns how far the foot is from where it would like to be.
func (l *Leg) Lag() float64 {
	return l.Future.Sub(l.Target).Len()
}

// DistanceToForecast returns how far the foot is from its forecast, measured
// along the forward axis of the body only.
func (l *Leg) DistanceToForecast(body math3d.Pose) float64 {
	return math3d.PlaneDistance(l.Target, l.Forecast, body.Back())
}

// plant puts the foot straight down onto the ground below the anchor.
func (l *Leg) plant(body math3d.Pose, ground terrain.Query, cfg config.Config) {
	if !l.refresh(body, ground, cfg) {
		l.Future = l.Anchor(body)
	}

	l.Target = l.Future
	l.State = Grounded
	l.Initialized = true
	l.log.Debugf("planted at %s", math3d.Format(l.Target))
}

// refresh moves the future point to the ground below the anchor. It looks down
// from the highest point the leg could climb to, so a step up is found as well
// as a step down. Returns false if there was no ground.
func (l *Leg) refresh(body math3d.Pose, ground terrain.Query, cfg config.Config) bool {
	origin := l.Anchor(body).Add(math3d.Up.Mul(cfg.MaxClimbHeight))

	p, ok := ground.SampleGroundBelow(origin, math.Inf(1))
	l.Lost = !ok
	if !ok {
		l.GroundMisses += 1
		l.log.WithField("misses", l.GroundMisses).Debugf("no object below %s", math3d.Format(origin))
		return false
	}

	l.Future = p
	return true
}

// step advances the state machine by dt seconds. canLift is only consulted
// when the leg wants to start a swing.
func (l *Leg) step(body math3d.Pose, ground terrain.Query, cfg config.Config, dt float64, canLift func() bool) {
	if l.State == Grounded && l.Lag() >= cfg.MaxLegLag && canLift() {
		l.Forecast = l.computeForecast(body, ground, cfg)
		l.initialSwing = l.DistanceToForecast(body)
		l.setState(Swinging)
	}

	if l.State != Swinging {
		return
	}

	maxDelta := cfg.LegSpeed * dt
	goal := l.Forecast

	// Rise for the first half of the swing, then come down onto the forecast.
	if l.DistanceToForecast(body) > l.initialSwing/2+maxDelta {
		goal = goal.Add(math3d.Up.Mul(cfg.StepHeight))
	}

	l.Target = math3d.MoveTowards(l.Target, goal, maxDelta)

	if l.DistanceToForecast(body) <= cfg.MaxDistForLegToBeInRange {
		l.setState(Grounded)
	}
}

// computeForecast returns where the foot should land if it lifted now: a
// little ahead of the future point, unless that's off a ledge or inside
// something.
func (l *Leg) computeForecast(body math3d.Pose, ground terrain.Query, cfg config.Config) mgl64.Vec3 {
	fwd := body.Forward()
	ideal := l.Future.Add(fwd.Mul(cfg.ForecastDistance))

	if ideal.Y()+cfg.MaximumDownstep < l.Future.Y() {
		l.log.Debugf("refusing to step %0.2f down", l.Future.Y()-ideal.Y())
		return l.Future
	}

	o, ok := ground.ProbeObstruction(l.Future, fwd, cfg.ForecastDistance, cfg.MaxClimbHeight, ideal)
	if !ok {
		return ideal
	}

	if o.HasAbove {
		l.log.Debugf("climbing onto %s", math3d.Format(o.Above))
		return o.Above
	}

	if o.Closest.Sub(l.Future).Len() <= cfg.ForecastDistance {
		return o.Closest
	}

	return l.Future
}

func (l *Leg) setState(s State) {
	l.log.WithField("state", s).Debugf("%s -> %s", l.State, s)
	l.State = s
}
