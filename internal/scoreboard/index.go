package scoreboard

// orderedMatches keeps matches addressable by id while preserving the
// order in which they were inserted.
type orderedMatches struct {
	order []MatchID
	byID  map[MatchID]*Match
}

func newOrderedMatches() *orderedMatches {
	return &orderedMatches{
		byID: make(map[MatchID]*Match),
	}
}

func (o *orderedMatches) get(id MatchID) (*Match, bool) {
	m, ok := o.byID[id]
	return m, ok
}

func (o *orderedMatches) put(id MatchID, m *Match) {
	if _, exists := o.byID[id]; !exists {
		o.order = append(o.order, id)
	}
	o.byID[id] = m
}

func (o *orderedMatches) remove(id MatchID) (*Match, bool) {
	m, ok := o.byID[id]
	if !ok {
		return nil, false
	}
	delete(o.byID, id)
	for i, existing := range o.order {
		if existing == id {
			o.order = append(o.order[:i], o.order[i+1:]...)
			break
		}
	}
	return m, true
}

func (o *orderedMatches) len() int {
	return len(o.order)
}

// values returns copies of the matches in insertion order.
func (o *orderedMatches) values() []Match {
	out := make([]Match, 0, len(o.order))
	for _, id := range o.order {
		out = append(out, *o.byID[id])
	}
	return out
}
