package controller

import (
	"math"
	"time"

	"github.com/adammck/crawler"
	"github.com/adammck/crawler/math3d"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
)

const (

	// Tilt (in degrees) per unit of height difference between the front and
	// back feet, and between the left and right feet.
	pitchGain = 13.0
	bankGain  = 11.0
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "controller",
})

// Input is a pair of axes, each in the range [-1, 1]. X moves right, Z moves
// forwards, in the world space.
type Input interface {
	Axes() (x, z float64)
}

// Fixed is an Input which never changes.
type Fixed struct {
	X float64
	Z float64
}

func (f Fixed) Axes() (float64, float64) {
	return f.X, f.Z
}

// Controller moves the body of the crawler around according to its input,
// and tilts and raises it according to the feedback from the legs. It
// implements posture.Sink.
type Controller struct {
	c  *crawler.Crawler
	in Input

	// Movement speed, in units per second at full deflection.
	Speed float64

	// How quickly the body turns to face the direction it's moving.
	RotationSpeed float64

	// Distance between the average height of the feet and the body.
	Clearance float64

	// How quickly the height and tilt catch up with the feedback.
	HeightEase float64
	TiltEase   float64

	heading float64
	pitch   float64
	bank    float64

	targetHeight float64
	targetPitch  float64
	targetBank   float64
	hasHeight    bool

	moving Latch
}

func New(c *crawler.Crawler, in Input) *Controller {
	return &Controller{
		c:             c,
		in:            in,
		Speed:         1.2,
		RotationSpeed: 2.0,
		Clearance:     1.0,
		HeightEase:    5.0,
		TiltEase:      5.0,
	}
}

// Boot adopts the current heading of the body. Any pitch or bank is dropped;
// the legs will ask for it again if it's needed.
func (c *Controller) Boot() error {
	f := c.c.Body.Forward()
	c.heading = math.Atan2(f.X(), f.Z())
	c.targetHeight = c.c.Body.Position.Y() - c.Clearance
	log.Infof("booted at %s", c.c.Body)
	return nil
}

// UpdateHeight sets the height of the ground under the body.
func (c *Controller) UpdateHeight(h float64) {
	c.targetHeight = h
	c.hasHeight = true
}

// Rotate sets the difference in height between the front and back feet, and
// between the left and right feet. The body tilts to follow the ground, so
// the nose comes up when the front feet are higher.
func (c *Controller) Rotate(pitchDelta, rollDelta float64) {
	c.targetPitch = mgl64.DegToRad(-pitchDelta * pitchGain)
	c.targetBank = mgl64.DegToRad(-rollDelta * bankGain)
}

func (c *Controller) Tick(dt time.Duration) error {
	secs := dt.Seconds()
	x, z := c.in.Axes()
	move := mgl64.Vec3{x, 0, z}.Mul(c.Speed)

	walking := move.Len() > 0
	switch started, stopped := c.moving.Run(walking); {
	case started:
		log.Infof("walking towards %s", math3d.Format(move))
	case stopped:
		log.Infof("stopped at %s", math3d.Format(c.c.Body.Position))
	}

	if walking {
		c.heading = c.turnTowards(math.Atan2(move.X(), move.Z()), secs*c.RotationSpeed)
	}

	pos := c.c.Body.Position.Add(move.Mul(secs))

	if c.hasHeight {
		y := pos.Y()
		pos[1] = y + (c.targetHeight+c.Clearance-y)*ease(secs, c.HeightEase)
	}

	c.pitch += (c.targetPitch - c.pitch) * ease(secs, c.TiltEase)
	c.bank += (c.targetBank - c.bank) * ease(secs, c.TiltEase)

	c.c.Body = math3d.MakePose(pos, math3d.EulerAngles{
		Heading: c.heading,
		Pitch:   c.pitch,
		Bank:    c.bank,
	})

	return nil
}

// turnTowards returns the heading after slerping the current heading towards
// the target by t.
func (c *Controller) turnTowards(target, t float64) float64 {
	from := mgl64.QuatRotate(c.heading, math3d.Up)
	to := mgl64.QuatRotate(target, math3d.Up)
	f := mgl64.QuatSlerp(from, to, math.Min(t, 1)).Rotate(math3d.Forward)
	return math.Atan2(f.X(), f.Z())
}

// ease returns the fraction of the remaining distance to cover in one tick.
func ease(secs, rate float64) float64 {
	return math.Min(secs*rate, 1)
}
