package glob

// symbolIs reports whether str has character c at pos, treating positions
// outside the string as matching nothing.
func symbolIs(str string, pos int, c byte) bool {
	if pos < 0 || pos >= len(str) {
		return false
	}

	return str[pos] == c
}

// Compile translates a normalized pattern into its state machine. An empty
// pattern produces a machine with no nodes, which matches nothing.
//
// Wildcards are encoded structurally rather than with repetition counters:
// `*` is a self-loop on the current node, `**` a self-loop that also
// accepts separators, and a literal that follows a `*` gets a back-edge to
// the star node so the matcher can hand one more character to the wildcard
// and retry the literal further along the path.
func Compile(pattern string) *Machine {
	m := &Machine{}
	if pattern == "" {
		return m
	}

	m.newNode() // start state

	// Node carrying the active `*`/`**` self-loop for the current
	// segment, -1 when none.
	starNode := -1

	for pos := 0; pos < len(pattern); pos++ {
		switch pattern[pos] {
		case Separator:
			starNode = -1

			current := m.lastNode()
			next := m.newNode()
			m.nodes[current].addEdge(Symbol{Kind: Literal, Char: Separator}, toNode(next))

			if symbolIs(pattern, pos+1, '*') && symbolIs(pattern, pos+2, '*') {
				m.nodes[next].addEdge(Symbol{Kind: Any}, toNode(next))
				starNode = next

				// Skip the "**", and a directly following
				// separator too so it isn't processed twice.
				if symbolIs(pattern, pos+3, Separator) {
					pos += 3
				} else {
					pos += 2
				}
			}

		case '?':
			current := m.lastNode()
			next := m.newNode()
			m.nodes[current].addEdge(Symbol{Kind: AnySegment}, toNode(next))

			starNode = -1

		case '*':
			current := m.lastNode()
			m.nodes[current].addEdge(Symbol{Kind: AnySegment}, toNode(current))

			starNode = current

		default:
			current := m.lastNode()
			next := m.newNode()
			m.nodes[current].addEdge(Symbol{Kind: Literal, Char: pattern[pos]}, toNode(next))

			if starNode >= 0 {
				m.nodes[next].addEdge(Symbol{Kind: AnySegment}, toNode(starNode))
			}
		}
	}

	m.nodes[m.lastNode()].addEdge(Symbol{Kind: EndOfInput}, accept())

	return m
}
