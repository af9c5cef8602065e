package terrain

import (
	"github.com/adammck/crawler/terrain"
	"github.com/go-gl/mathgl/mgl64"
	log "github.com/sirupsen/logrus"
)

var logger = log.WithFields(log.Fields{
	"pkg": "fake/terrain",
})

// FakeTerrain is a flat plane at a fixed height, which can be told to miss
// every ground sample, or to report a canned obstruction.
type FakeTerrain struct {
	Height float64

	// When true, SampleGroundBelow reports no hit.
	Void bool

	// When non-nil, every obstruction probe reports this.
	Obstruction *terrain.Obstruction

	Samples int
	Probes  int
}

func New(height float64) *FakeTerrain {
	return &FakeTerrain{Height: height}
}

func (f *FakeTerrain) SampleGroundBelow(origin mgl64.Vec3, maxDown float64) (mgl64.Vec3, bool) {
	f.Samples += 1

	if f.Void || origin.Y()-maxDown > f.Height || origin.Y() < f.Height {
		logger.Debugf("no ground below %v", origin)
		return origin, false
	}

	return mgl64.Vec3{origin.X(), f.Height, origin.Z()}, true
}

func (f *FakeTerrain) ProbeObstruction(origin, direction mgl64.Vec3, maxDistance, climbHeight float64, target mgl64.Vec3) (terrain.Obstruction, bool) {
	f.Probes += 1

	if f.Obstruction == nil {
		return terrain.Obstruction{}, false
	}

	return *f.Obstruction, true
}
