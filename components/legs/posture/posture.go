package posture

import (
	"github.com/sirupsen/logrus"
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "posture",
})

// Sink is the body controller, which owns the actual transform of the body.
// It is expected to smooth these signals itself.
type Sink interface {
	UpdateHeight(h float64)
	Rotate(pitchDelta, rollDelta float64)
}

// Foot is the height of one foot, and where on the body its leg is.
type Foot struct {
	Side   int // 0 = left, 1 = right
	Index  int // 0 = front
	Height float64
}

// Feedback is the body pose derived from the feet.
type Feedback struct {
	Height float64
	Pitch  float64
	Roll   float64
}

// Estimator derives the height and tilt of the body from the heights of its
// feet, and forwards them to a sink.
type Estimator struct {
	sink        Sink
	legsPerSide int
}

func New(sink Sink, legsPerSide int) *Estimator {
	return &Estimator{
		sink:        sink,
		legsPerSide: legsPerSide,
	}
}

// Estimate returns the feedback for the given feet.
//
// Height is the mean height of every foot. Pitch is the mean height of the
// front half of the feet minus that of the back half; with an odd number of
// legs per side the middle row counts as neither. Roll is the mean height of
// the left feet minus that of the right.
func (e *Estimator) Estimate(feet []Foot) Feedback {
	var all, front, rear, left, right mean

	for _, f := range feet {
		all.add(f.Height)

		if f.Side == 0 {
			left.add(f.Height)
		} else {
			right.add(f.Height)
		}

		switch {
		case f.Index < e.legsPerSide/2:
			front.add(f.Height)
		case f.Index >= (e.legsPerSide+1)/2:
			rear.add(f.Height)
		}
	}

	return Feedback{
		Height: all.value(),
		Pitch:  front.value() - rear.value(),
		Roll:   left.value() - right.value(),
	}
}

// Update estimates the feedback for the given feet and sends it to the sink.
func (e *Estimator) Update(feet []Foot) Feedback {
	fb := e.Estimate(feet)
	log.Debugf("height=%0.3f pitch=%0.3f roll=%0.3f", fb.Height, fb.Pitch, fb.Roll)

	e.sink.UpdateHeight(fb.Height)
	e.sink.Rotate(fb.Pitch, fb.Roll)
	return fb
}

type mean struct {
	sum float64
	n   int
}

func (m *mean) add(v float64) {
	m.sum += v
	m.n += 1
}

// value returns zero when nothing was added, so that an empty half of the
// body never tilts it.
func (m mean) value() float64 {
	if m.n == 0 {
		return 0
	}

	return m.sum / float64(m.n)
}
