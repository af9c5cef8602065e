package crawler

import (
	"errors"
	"testing"
	"time"

	"github.com/adammck/crawler/math3d"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eg struct {
	pos mgl64.Vec3 // position
	rot float64    // rotation (heading)
	vec mgl64.Vec3 // input
	exp mgl64.Vec3 // expected result
}

func TestWorld(t *testing.T) {
	data := []eg{
		{mgl64.Vec3{0, 0, 0}, 0, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 0}},
		{mgl64.Vec3{0, 0, 10}, 0, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 10}},
		{mgl64.Vec3{0, 0, 20}, 0, mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 20}},
		{mgl64.Vec3{0, 0, 30}, 90, mgl64.Vec3{0, 0, 1}, mgl64.Vec3{1, 0, 30}},
	}

	for i, x := range data {
		c := New(math3d.MakePose(x.pos, math3d.MakeSingularEulerAngle(math3d.RotationHeading, x.rot)))

		act := mgl64.TransformCoordinate(x.vec, c.World())
		assert.InDelta(t, 0, act.Sub(x.exp).Len(), 1e-6, "example %d: got %s, expected %s", i+1, math3d.Format(act), math3d.Format(x.exp))
	}
}

func TestLocal(t *testing.T) {
	data := []eg{
		{mgl64.Vec3{0, 0, 0}, 0, mgl64.Vec3{10, 20, 30}, mgl64.Vec3{10, 20, 30}},
		{mgl64.Vec3{0, 0, 10}, 0, mgl64.Vec3{10, 20, 30}, mgl64.Vec3{10, 20, 20}},
		{mgl64.Vec3{0, 0, 20}, 0, mgl64.Vec3{10, 20, 30}, mgl64.Vec3{10, 20, 10}},
		{mgl64.Vec3{0, 0, 30}, 0, mgl64.Vec3{10, 20, 30}, mgl64.Vec3{10, 20, 0}},
	}

	for i, x := range data {
		c := New(math3d.MakePose(x.pos, math3d.MakeSingularEulerAngle(math3d.RotationHeading, x.rot)))

		act := mgl64.TransformCoordinate(x.vec, c.Local())
		assert.InDelta(t, 0, act.Sub(x.exp).Len(), 1e-6, "example %d: got %s, expected %s", i+1, math3d.Format(act), math3d.Format(x.exp))
	}
}

type component struct {
	name  string
	calls *[]string
	err   error
}

func (c *component) Boot() error {
	*c.calls = append(*c.calls, "boot "+c.name)
	return c.err
}

func (c *component) Tick(dt time.Duration) error {
	*c.calls = append(*c.calls, "tick "+c.name)
	return c.err
}

func TestTickOrder(t *testing.T) {
	calls := []string{}
	c := New(math3d.Pose{})
	c.Add(&component{name: "a", calls: &calls})
	c.Add(&component{name: "b", calls: &calls})

	require.NoError(t, c.Boot())
	require.NoError(t, c.Tick(time.Millisecond))
	assert.Equal(t, []string{"boot a", "boot b", "tick a", "tick b"}, calls)
}

func TestTickStopsAtError(t *testing.T) {
	boom := errors.New("boom")
	calls := []string{}
	c := New(math3d.Pose{})
	c.Add(&component{name: "a", calls: &calls, err: boom})
	c.Add(&component{name: "b", calls: &calls})

	err := c.Tick(time.Millisecond)
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Contains(t, err.Error(), "component 0")
	assert.Equal(t, []string{"tick a"}, calls)
}
