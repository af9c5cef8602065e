package crawler

import (
	"fmt"
	"time"

	"github.com/adammck/crawler/math3d"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "crawler",
})

type Crawler struct {
	Components []Component

	// The position and orientation of the center of the body, in the world
	// space. Components which move the body write to this; everything else
	// only reads it.
	Body math3d.Pose

	// Components can set this to true to indicate that the crawler should stop.
	Shutdown bool
}

type Component interface {
	Boot() error
	Tick(dt time.Duration) error
}

// New creates a crawler standing at the given pose.
func New(pose math3d.Pose) *Crawler {
	return &Crawler{
		Components: []Component{},
		Body:       pose,
	}
}

// Add registers a component to receive ticks every frame.
func (c *Crawler) Add(cc Component) {
	c.Components = append(c.Components, cc)
}

// Boot calls Boot on each component, in the order they were added.
func (c *Crawler) Boot() error {
	for i, cc := range c.Components {
		if err := cc.Boot(); err != nil {
			return fmt.Errorf("booting component %d (%T): %w", i, cc, err)
		}
	}

	log.Infof("booted %d components", len(c.Components))
	return nil
}

// Tick calls Tick on each component, in the order they were added, and stops
// at the first error.
func (c *Crawler) Tick(dt time.Duration) error {
	for i, cc := range c.Components {
		if err := cc.Tick(dt); err != nil {
			return fmt.Errorf("ticking component %d (%T): %w", i, cc, err)
		}
	}

	return nil
}

// Pose returns the current pose of the body.
func (c *Crawler) Pose() math3d.Pose {
	return c.Body
}

// World returns a matrix to transform a vector in the body coordinate space
// into the world space.
func (c *Crawler) World() mgl64.Mat4 {
	return c.Body.World()
}

// Local returns a matrix to transform a vector in the world coordinate space
// into the body's space, taking into account its current position and
// orientation.
func (c *Crawler) Local() mgl64.Mat4 {
	return c.Body.Local()
}
