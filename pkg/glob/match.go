package glob

// Match reports whether the subject path is accepted by the compiled
// pattern. The path must already be separator-normalized. An empty path,
// or a machine compiled from an empty pattern, never matches.
//
// The error return is only ever non-nil when an edge carries an unknown
// symbol kind (ErrBadSymbol), which indicates a compiler defect rather
// than bad input.
func (m *Machine) Match(path string) (bool, error) {
	if path == "" || len(m.nodes) == 0 {
		return false, nil
	}

	return m.try(toNode(0), path, 0)
}

// try is a depth-first search over (target, position) pairs. Positions run
// over [0, len(path)]; position len(path) is the end-of-input sentinel.
func (m *Machine) try(to Target, path string, pos int) (bool, error) {
	if to.accepting {
		return true, nil
	}

	if pos > len(path) {
		// Guarded defensively; the EndOfInput edges keep traversal
		// from walking past the sentinel.
		return false, nil
	}

	sym := endOfInput
	if pos < len(path) {
		sym = path[pos]
	}

	m.logf("node %d pos %d char %q", to.node, pos, sym)

	for _, e := range m.nodes[to.node].edges {
		ok, err := e.Symbol.Matches(sym)
		if err != nil {
			return false, err
		}
		if !ok {
			continue
		}

		hit, err := m.try(e.To, path, pos+1)
		if hit || err != nil {
			return hit, err
		}
	}

	return false, nil
}
