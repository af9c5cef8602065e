package gait

// Index returns the position of a leg in the flat list of legs, which holds
// every leg on the left (front to back) followed by every leg on the right.
func Index(side, index, legsPerSide int) int {
	return side*legsPerSide + index
}

// Table returns the neighbor table for a walker with the given number of
// legs on each side. Each leg is constrained by:
//
//	(a) the leg at the same position on the other side,
//	(b) the leg in front of it on the same side, if any, and
//	(c) the leg behind it on the same side, if any.
//
// So every leg has at least one neighbor and at most three.
func Table(legsPerSide int) Neighbors {
	t := make(Neighbors, 2*legsPerSide)

	for side := 0; side < 2; side++ {
		for i := 0; i < legsPerSide; i++ {
			n := []int{Index(1-side, i, legsPerSide)}

			if i > 0 {
				n = append(n, Index(side, i-1, legsPerSide))
			}

			if i < legsPerSide-1 {
				n = append(n, Index(side, i+1, legsPerSide))
			}

			t[Index(side, i, legsPerSide)] = n
		}
	}

	return t
}
