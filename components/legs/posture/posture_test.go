package posture

import (
	"testing"

	"github.com/adammck/crawler/fake/sink"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimate(t *testing.T) {
	type eg struct {
		name        string
		legsPerSide int
		feet        []Foot
		exp         Feedback
	}

	examples := []eg{
		{
			name:        "level",
			legsPerSide: 2,
			feet:        []Foot{{0, 0, 1}, {0, 1, 1}, {1, 0, 1}, {1, 1, 1}},
			exp:         Feedback{Height: 1},
		},
		{
			name:        "front up",
			legsPerSide: 2,
			feet:        []Foot{{0, 0, 1}, {0, 1, 0}, {1, 0, 1}, {1, 1, 0}},
			exp:         Feedback{Height: 0.5, Pitch: 1},
		},
		{
			name:        "left up",
			legsPerSide: 2,
			feet:        []Foot{{0, 0, 0.4}, {0, 1, 0.4}, {1, 0, 0}, {1, 1, 0}},
			exp:         Feedback{Height: 0.2, Roll: 0.4},
		},
		{
			name:        "middle row is neither front nor rear",
			legsPerSide: 3,
			feet:        []Foot{{0, 0, 0}, {0, 1, 9}, {0, 2, 0}, {1, 0, 0}, {1, 1, 9}, {1, 2, 0}},
			exp:         Feedback{Height: 3},
		},
		{
			name:        "single row never pitches",
			legsPerSide: 1,
			feet:        []Foot{{0, 0, 2}, {1, 0, 1}},
			exp:         Feedback{Height: 1.5, Roll: 1},
		},
		{
			name:        "no feet",
			legsPerSide: 3,
			feet:        nil,
			exp:         Feedback{},
		},
	}

	for _, x := range examples {
		e := New(sink.New(), x.legsPerSide)
		act := e.Estimate(x.feet)
		assert.InDelta(t, x.exp.Height, act.Height, 1e-9, x.name)
		assert.InDelta(t, x.exp.Pitch, act.Pitch, 1e-9, x.name)
		assert.InDelta(t, x.exp.Roll, act.Roll, 1e-9, x.name)
	}
}

func TestUpdateForwardsToSink(t *testing.T) {
	s := sink.New()
	e := New(s, 2)

	e.Update([]Foot{{0, 0, 1}, {0, 1, 0}, {1, 0, 1}, {1, 1, 0}})
	e.Update([]Foot{{0, 0, 0}, {0, 1, 0}, {1, 0, 0}, {1, 1, 0}})

	require.Equal(t, 2, s.Calls())
	assert.Equal(t, []float64{0.5, 0}, s.Heights)
	assert.Equal(t, []float64{1, 0}, s.Pitches)
	assert.Equal(t, []float64{0, 0}, s.Rolls)
}
