package schema

import "slices"

// declarationOrder finds an order of the patterns in which every reference
// points at an earlier pattern. Patterns are walked in declaration order and
// each one's targets are placed before it, so an already valid list comes
// back unchanged.
//
// When the references loop, order is nil and cycle lists the patterns along
// the loop, starting and ending with the same pattern.
func (r *Registry) declarationOrder() (order, cycle []PatternID) {
	const (
		pending = iota
		onPath
		placed
	)

	state := make([]int, len(r.patterns))
	path := make([]int, 0, len(r.patterns))

	var place func(pos int) bool
	place = func(pos int) bool {
		switch state[pos] {
		case placed:
			return true
		case onPath:
			for _, p := range path[slices.Index(path, pos):] {
				cycle = append(cycle, r.patterns[p].Key())
			}

			cycle = append(cycle, r.patterns[pos].Key())

			return false
		}

		state[pos] = onPath
		path = append(path, pos)

		for _, m := range r.patterns[pos].Members {
			if !m.Encoding.IsReference() {
				continue
			}

			target, ok := r.positions[m.Ref]
			if ok && !place(target) {
				return false
			}
		}

		path = path[:len(path)-1]
		state[pos] = placed
		order = append(order, r.patterns[pos].Key())

		return true
	}

	for pos := range r.patterns {
		if !place(pos) {
			return nil, cycle
		}
	}

	return order, nil
}
