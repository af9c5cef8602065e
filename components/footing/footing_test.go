package footing

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type legs struct {
	grounded int
	calls    int
}

func (l *legs) Footing() (int, int) {
	l.calls += 1
	return l.grounded, 6
}

func TestCheckIsPeriodic(t *testing.T) {
	l := &legs{grounded: 6}
	c := New(l, 3)
	require.NoError(t, c.Boot())

	for i := 0; i < 25; i++ {
		require.NoError(t, c.Tick(100*time.Millisecond))
	}

	assert.Equal(t, 2, l.calls)
}

func TestLostFooting(t *testing.T) {
	l := &legs{grounded: 2}
	c := New(l, 3)

	err := c.Tick(2 * time.Second)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLostFooting))
	assert.Contains(t, err.Error(), "2 of 6")

	l.grounded = 3
	assert.NoError(t, c.Tick(2*time.Second))
}
