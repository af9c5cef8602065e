package terrain

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/sirupsen/logrus"
)

const (

	// Obstruction probes travel this far above their origin, so that the
	// surface the origin rests on is never mistaken for an obstruction.
	probeLift = 0.01

	// How far past the face of an obstruction to look for its top surface.
	probeInset = 0.05
)

var log = logrus.WithFields(logrus.Fields{
	"pkg": "terrain",
})

// Box is a solid axis-aligned box in the world.
type Box struct {
	BBox  cube.BBox
	Layer Layer
}

// MakeBox returns a ground box with the given corners.
func MakeBox(x0, y0, z0, x1, y1, z1 float64) Box {
	return Box{
		BBox: cube.Box(float32(x0), float32(y0), float32(z0), float32(x1), float32(y1), float32(z1)),
	}
}

// World is a Query over a static set of boxes.
type World struct {
	boxes  []Box
	filter Filter

	// The lowest point of any box. Downward casts never need to go further.
	floor float32
}

// NewWorld returns a world containing the given boxes. Queries only consider
// boxes for which filter returns true; a nil filter accepts every box.
func NewWorld(filter Filter, boxes ...Box) *World {
	w := &World{
		filter: filter,
		floor:  math32.MaxFloat32,
	}

	for _, b := range boxes {
		w.Add(b)
	}

	return w
}

// Flat returns a world with a single square slab of ground whose top is at
// height y, extending halfWidth in every horizontal direction.
func Flat(y, halfWidth float64) *World {
	return NewWorld(ExcludeLayers(LayerMarker), MakeBox(-halfWidth, y-1, -halfWidth, halfWidth, y, halfWidth))
}

// Add places another box in the world.
func (w *World) Add(b Box) {
	w.boxes = append(w.boxes, b)
	w.floor = math32.Min(w.floor, b.BBox.Min().Y())
}

// Len returns the number of boxes in the world.
func (w *World) Len() int {
	return len(w.boxes)
}

// SampleGroundBelow implements Query.
func (w *World) SampleGroundBelow(origin mgl64.Vec3, maxDown float64) (mgl64.Vec3, bool) {
	if len(w.boxes) == 0 {
		return origin, false
	}

	// Nothing is below the floor, so there's no point casting any further.
	limit := origin.Y() - float64(w.floor) + 1
	if math.IsInf(maxDown, 1) || maxDown > limit {
		maxDown = limit
	}

	if maxDown <= 0 {
		return origin, false
	}

	start := vec64To32(origin)
	end := start.Sub(mgl32.Vec3{0, float32(maxDown), 0})

	h, ok := w.cast(start, end, nil)
	if !ok {
		return origin, false
	}

	return vec32To64(h.pos), true
}

// ProbeObstruction implements Query.
func (w *World) ProbeObstruction(origin, direction mgl64.Vec3, maxDistance, climbHeight float64, target mgl64.Vec3) (Obstruction, bool) {
	if direction.Len() == 0 || maxDistance <= 0 {
		return Obstruction{}, false
	}

	dir := direction.Normalize()
	lift := mgl32.Vec3{0, probeLift, 0}
	start := vec64To32(origin).Add(lift)
	end := vec64To32(origin.Add(dir.Mul(maxDistance))).Add(lift)

	// Only boxes which rise above the path can block it.
	above := func(b Box) bool {
		return b.BBox.Max().Y() > start.Y()
	}

	h, ok := w.cast(start, end, above)
	if !ok {
		return Obstruction{}, false
	}

	o := Obstruction{
		Closest: vec32To64(closestSurfacePoint(w.boxes[h.box].BBox, vec64To32(target))),
	}

	// Look down onto the obstruction from the highest point we could climb
	// to, just past the face which was hit.
	top := h.pos.Add(vec64To32(dir).Mul(probeInset))
	top[1] = float32(origin.Y() + climbHeight)
	bottom := mgl32.Vec3{top.X(), start.Y(), top.Z()}
	if top.Y() > bottom.Y() {
		if g, ok := w.cast(top, bottom, above); ok {
			o.Above = vec32To64(g.pos)
			o.HasAbove = true
		}
	}

	if !o.HasAbove {
		log.Debugf("obstruction at %v is too high to climb", h.pos)
	}

	return o, true
}

type hit struct {
	pos  mgl32.Vec3
	box  int
	dist float32
}

// cast returns the nearest intercept of the segment from start to end with
// any box which passes the world filter and accept (if given). Boxes which
// contain start are ignored, so a cast never hits the inside of something.
func (w *World) cast(start, end mgl32.Vec3, accept func(b Box) bool) (hit, bool) {
	best := hit{dist: math32.MaxFloat32}
	found := false

	for i, b := range w.boxes {
		if w.filter != nil && !w.filter(b) {
			continue
		}

		if accept != nil && !accept(b) {
			continue
		}

		if contains(b.BBox, start) {
			continue
		}

		res, ok := trace.BBoxIntercept(b.BBox, start, end)
		if !ok {
			continue
		}

		d := res.Position().Sub(start).Len()
		if d < best.dist {
			best = hit{pos: res.Position(), box: i, dist: d}
			found = true
		}
	}

	return best, found
}

// contains returns true if v is strictly inside the box. Points on the
// surface are outside.
func contains(bb cube.BBox, v mgl32.Vec3) bool {
	lo, hi := bb.Min(), bb.Max()
	for i := 0; i < 3; i++ {
		if v[i] <= lo[i] || v[i] >= hi[i] {
			return false
		}
	}

	return true
}

// closestSurfacePoint returns the point on the surface of the box which is
// nearest to v. Points inside the box are pushed out through the nearest
// face, except the bottom, which is resting on something else.
func closestSurfacePoint(bb cube.BBox, v mgl32.Vec3) mgl32.Vec3 {
	lo, hi := bb.Min(), bb.Max()
	c := v
	inside := true

	for i := 0; i < 3; i++ {
		if c[i] < lo[i] {
			c[i] = lo[i]
			inside = false
		} else if c[i] > hi[i] {
			c[i] = hi[i]
			inside = false
		}
	}

	if !inside {
		return c
	}

	best := float32(math32.MaxFloat32)
	axis, val := 0, v[0]
	for i := 0; i < 3; i++ {
		if d := math32.Abs(v[i] - lo[i]); d < best && i != 1 {
			best, axis, val = d, i, lo[i]
		}
		if d := math32.Abs(hi[i] - v[i]); d < best {
			best, axis, val = d, i, hi[i]
		}
	}

	c[axis] = val
	return c
}

func vec64To32(v mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])}
}

func vec32To64(v mgl32.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}
