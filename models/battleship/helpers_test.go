package battleship

// scriptedSource replays values in order, wrapping around when exhausted.
type scriptedSource struct {
	values []int
	next   int
}

func newScriptedSource(values ...int) *scriptedSource {
	return &scriptedSource{values: values}
}

func (s *scriptedSource) IntN(n int) int {
	v := s.values[s.next%len(s.values)]
	s.next++
	return v % n
}

func cells(pairs ...[2]int) []Coordinates {
	out := make([]Coordinates, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, NewCoordinates(p[0], p[1]))
	}
	return out
}
