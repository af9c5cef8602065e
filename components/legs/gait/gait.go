package gait

// Stepper is a leg, as far as the coordinator is concerned.
type Stepper interface {
	Swinging() bool
}

// Neighbors holds, for each leg, the indices of the legs which must be on the
// ground before it may lift.
type Neighbors [][]int

// Coordinator stops a leg from lifting while any of its neighbors are in the
// air. This keeps a stable polygon of feet under the body, but is greedy:
// the first leg to ask wins, and nothing plans further ahead than that.
type Coordinator struct {
	neighbors Neighbors
	legs      []Stepper
}

// New returns a coordinator for the given legs. The neighbor table must have
// one entry per leg.
func New(neighbors Neighbors, legs []Stepper) *Coordinator {
	if len(neighbors) != len(legs) {
		panic("neighbor table doesn't match legs")
	}

	return &Coordinator{
		neighbors: neighbors,
		legs:      legs,
	}
}

// Neighbors returns the indices of the legs which constrain leg i.
func (c *Coordinator) Neighbors(i int) []int {
	return c.neighbors[i]
}

// NeighborsGrounded returns true if none of the neighbors of leg i are
// currently swinging. It reads the current state, so a leg which started
// swinging earlier in the same tick counts.
func (c *Coordinator) NeighborsGrounded(i int) bool {
	for _, n := range c.neighbors[i] {
		if c.legs[n].Swinging() {
			return false
		}
	}

	return true
}
