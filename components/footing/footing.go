package footing

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

const (

	// Simulated time between checks. Losing the ground under one foot for a
	// moment is normal at an edge, so there's no point checking every tick.
	interval = 1 * time.Second
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "footing",
})

// ErrLostFooting is returned when too few legs can find the ground, which
// usually means that the body has walked off the edge of the world.
var ErrLostFooting = errors.New("lost footing")

type HasFooting interface {
	Footing() (grounded, total int)
}

// Check periodically counts the legs which have ground below them, and fails
// the tick if there are fewer than the minimum.
type Check struct {
	HasFooting
	minimum int
	elapsed time.Duration
}

func New(legs HasFooting, minimum int) *Check {
	return &Check{
		HasFooting: legs,
		minimum:    minimum,
	}
}

func (c *Check) Boot() error {
	return nil
}

func (c *Check) Tick(dt time.Duration) error {
	c.elapsed += dt
	if c.NeedsCheck() {
		return c.CheckFooting()
	}

	return nil
}

// NeedsCheck returns true if it's been a while since the footing was checked.
func (c *Check) NeedsCheck() bool {
	return c.elapsed >= interval
}

// CheckFooting returns an error if fewer than the minimum number of legs have
// ground below them.
func (c *Check) CheckFooting() error {
	c.elapsed = 0
	n, total := c.Footing()
	log.Debugf("footing: %d/%d", n, total)

	if n < c.minimum {
		return fmt.Errorf("%w: %d of %d legs on the ground", ErrLostFooting, n, total)
	}

	return nil
}
