package controller

// Latch remembers the last value it saw, to report when a condition starts or
// stops being true.
type Latch struct {
	val bool
}

// Run returns whether v became true (rose) or became false (fell) since the
// previous call.
func (l *Latch) Run(v bool) (rose, fell bool) {
	rose = v && !l.val
	fell = !v && l.val
	l.val = v
	return rose, fell
}
