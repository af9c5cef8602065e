package sink

// FakeSink records the feedback sent to a body controller.
type FakeSink struct {
	Heights []float64
	Pitches []float64
	Rolls   []float64
}

func New() *FakeSink {
	return &FakeSink{}
}

func (s *FakeSink) UpdateHeight(h float64) {
	s.Heights = append(s.Heights, h)
}

func (s *FakeSink) Rotate(pitchDelta, rollDelta float64) {
	s.Pitches = append(s.Pitches, pitchDelta)
	s.Rolls = append(s.Rolls, rollDelta)
}

// Calls returns the number of ticks which have sent feedback.
func (s *FakeSink) Calls() int {
	return len(s.Heights)
}
