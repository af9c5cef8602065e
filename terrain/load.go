package terrain

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk layout of a world.
type File struct {
	Boxes []FileBox `yaml:"boxes"`
}

// FileBox is a single box in a world file. Layer defaults to ground.
type FileBox struct {
	Min   [3]float64 `yaml:"min"`
	Max   [3]float64 `yaml:"max"`
	Layer string     `yaml:"layer"`
}

// Parse builds a world from the YAML in data. Marker boxes are loaded, but
// are excluded from queries.
func Parse(data []byte) (*World, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing world: %w", err)
	}

	w := NewWorld(ExcludeLayers(LayerMarker))
	for i, fb := range f.Boxes {
		l, err := ParseLayer(fb.Layer)
		if err != nil {
			return nil, fmt.Errorf("box #%d: %w", i, err)
		}

		b := MakeBox(fb.Min[0], fb.Min[1], fb.Min[2], fb.Max[0], fb.Max[1], fb.Max[2])
		b.Layer = l
		w.Add(b)
	}

	return w, nil
}

// Load reads a world from a YAML file.
func Load(path string) (*World, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading world %s: %w", path, err)
	}

	w, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Infof("loaded %d boxes from %s", w.Len(), path)
	return w, nil
}
