package terrain

import (
	"math"
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testWorld(filter Filter) *World {
	marker := MakeBox(-0.1, 0, -0.1, 0.1, 0.5, 0.1)
	marker.Layer = LayerMarker

	return NewWorld(filter,
		MakeBox(-10, -1, -10, 10, 0, 10), // floor
		MakeBox(-1, 0, 2, 1, 0.3, 3),     // step
		MakeBox(-1, 0, 5, 1, 3, 6),       // wall
		marker,
	)
}

func assertVec(t *testing.T, exp, act mgl64.Vec3, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDelta(t, exp.X(), act.X(), 1e-4, msgAndArgs...)
	assert.InDelta(t, exp.Y(), act.Y(), 1e-4, msgAndArgs...)
	assert.InDelta(t, exp.Z(), act.Z(), 1e-4, msgAndArgs...)
}

func TestSampleGroundBelow(t *testing.T) {
	type eg struct {
		origin mgl64.Vec3
		down   float64
		ok     bool
		exp    mgl64.Vec3
	}

	examples := []eg{
		{mgl64.Vec3{0, 1, 0}, math.Inf(1), true, mgl64.Vec3{0, 0, 0}},
		{mgl64.Vec3{3, 1, 0}, 1, true, mgl64.Vec3{3, 0, 0}},
		{mgl64.Vec3{0, 1, 2.5}, math.Inf(1), true, mgl64.Vec3{0, 0.3, 2.5}},
		{mgl64.Vec3{0, 5, 0}, 2, false, mgl64.Vec3{}},
		{mgl64.Vec3{50, 1, 50}, math.Inf(1), false, mgl64.Vec3{}},
		{mgl64.Vec3{0, -5, 0}, math.Inf(1), false, mgl64.Vec3{}},
	}

	w := testWorld(ExcludeLayers(LayerMarker))
	for i, x := range examples {
		act, ok := w.SampleGroundBelow(x.origin, x.down)
		require.Equal(t, x.ok, ok, "example %d", i+1)
		if ok {
			assertVec(t, x.exp, act, "example %d", i+1)
		}
	}
}

func TestSampleGroundBelowFilter(t *testing.T) {

	// Without a filter, the marker above the origin is the first thing hit.
	act, ok := testWorld(nil).SampleGroundBelow(mgl64.Vec3{0, 1, 0}, math.Inf(1))
	require.True(t, ok)
	assertVec(t, mgl64.Vec3{0, 0.5, 0}, act)
}

func TestSampleGroundBelowEmptyWorld(t *testing.T) {
	_, ok := NewWorld(nil).SampleGroundBelow(mgl64.Vec3{0, 1, 0}, math.Inf(1))
	assert.False(t, ok)
}

func TestProbeObstructionClear(t *testing.T) {
	w := testWorld(ExcludeLayers(LayerMarker))

	// Travelling along the top of the floor isn't an obstruction.
	_, ok := w.ProbeObstruction(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{0, 0, 1}, 0.5, 1, mgl64.Vec3{0, 0, 0.5})
	assert.False(t, ok)

	_, ok = w.ProbeObstruction(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{}, 0.5, 1, mgl64.Vec3{0, 0, 0.5})
	assert.False(t, ok)
}

func TestProbeObstructionClimbable(t *testing.T) {
	w := testWorld(ExcludeLayers(LayerMarker))

	o, ok := w.ProbeObstruction(mgl64.Vec3{0, 0, 1.8}, mgl64.Vec3{0, 0, 1}, 0.5, 1, mgl64.Vec3{0, 0, 2.3})
	require.True(t, ok)
	require.True(t, o.HasAbove)
	assertVec(t, mgl64.Vec3{0, 0.3, 2.0 + probeInset}, o.Above)
}

func TestProbeObstructionTooHigh(t *testing.T) {
	w := testWorld(ExcludeLayers(LayerMarker))

	o, ok := w.ProbeObstruction(mgl64.Vec3{0, 0, 4.8}, mgl64.Vec3{0, 0, 1}, 0.5, 1, mgl64.Vec3{0, 0, 5.3})
	require.True(t, ok)
	assert.False(t, o.HasAbove)

	// The target is inside the wall, so the nearest point is on its face.
	assertVec(t, mgl64.Vec3{0, 0, 5}, o.Closest)
}

func TestClosestSurfacePoint(t *testing.T) {
	bb := cube.Box(0, 0, 0, 1, 1, 1)

	type eg struct {
		in  mgl32.Vec3
		exp mgl32.Vec3
	}

	examples := []eg{
		{mgl32.Vec3{2, 0.5, 0.5}, mgl32.Vec3{1, 0.5, 0.5}},
		{mgl32.Vec3{-1, 2, -1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0.5, 0.9, 0.5}, mgl32.Vec3{0.5, 1, 0.5}},
		{mgl32.Vec3{0.1, 0.05, 0.5}, mgl32.Vec3{0, 0.05, 0.5}},
	}

	for i, x := range examples {
		act := closestSurfacePoint(bb, x.in)
		assert.InDelta(t, 0, act.Sub(x.exp).Len(), 1e-5, "example %d: got %v, expected %v", i+1, act, x.exp)
	}
}
