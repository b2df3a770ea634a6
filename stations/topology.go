package stations

// Direction is the traversal direction around the loop. OuterLoop walks
// station ordinals upward, InnerLoop downward, both modulo the station
// count.
type Direction string

const (
	OuterLoop Direction = "OuterLoop"
	InnerLoop Direction = "InnerLoop"
)

// Sign returns +1 for OuterLoop and -1 for InnerLoop.
func (d Direction) Sign() int {
	if d == InnerLoop {
		return -1
	}
	return 1
}

// Mod is a floored modulo: the result is always in [0, n) even for
// negative i. Both station ordinals and polyline vertex indices wrap
// through this one helper.
func Mod(i, n int) int {
	m := i % n
	if m < 0 {
		m += n
	}
	return m
}

// Topology is the ordered circular station sequence. Immutable after
// construction.
type Topology struct {
	order []string
	index map[string]int
}

// NewTopology builds a topology from station ids in physical track
// order. Duplicate ids keep their first ordinal.
func NewTopology(order []string) *Topology {
	t := &Topology{
		order: make([]string, len(order)),
		index: make(map[string]int, len(order)),
	}
	copy(t.order, order)
	for i, id := range order {
		if _, ok := t.index[id]; !ok {
			t.index[id] = i
		}
	}
	return t
}

// Len returns the number of stations on the loop.
func (t *Topology) Len() int { return len(t.order) }

// Ordinal returns the ordinal of a station id, or false if the id is
// not on the loop.
func (t *Topology) Ordinal(id string) (int, bool) {
	i, ok := t.index[id]
	return i, ok
}

// StationAt returns the station id at the given ordinal, wrapping
// modulo the station count.
func (t *Topology) StationAt(ordinal int) string {
	return t.order[Mod(ordinal, len(t.order))]
}

// Step moves k stations from the given ordinal in the direction's
// natural sense and returns the resulting ordinal.
func (t *Topology) Step(ordinal, k int, d Direction) int {
	return Mod(ordinal+k*d.Sign(), len(t.order))
}

// Order returns a copy of the station ids in track order.
func (t *Topology) Order() []string {
	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}
