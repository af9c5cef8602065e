package terrain

import (
	"fmt"
)

// Layer groups boxes so that queries can ignore some of them.
type Layer uint8

const (
	LayerGround Layer = iota

	// Markers are the debug objects which show where the feet are. They must
	// never be stood on.
	LayerMarker
)

func (l Layer) String() string {
	switch l {
	case LayerGround:
		return "ground"
	case LayerMarker:
		return "marker"
	default:
		return fmt.Sprintf("layer(%d)", uint8(l))
	}
}

// ParseLayer returns the layer with the given name. The empty string is the
// ground layer.
func ParseLayer(s string) (Layer, error) {
	switch s {
	case "", "ground":
		return LayerGround, nil
	case "marker":
		return LayerMarker, nil
	default:
		return 0, fmt.Errorf("unknown layer: %q", s)
	}
}

// Filter returns true if the box should be considered by a query.
type Filter func(b Box) bool

// ExcludeLayers returns a filter which skips boxes on any of the given layers.
func ExcludeLayers(layers ...Layer) Filter {
	return func(b Box) bool {
		for _, l := range layers {
			if b.Layer == l {
				return false
			}
		}

		return true
	}
}
