package glob

import (
	"log"
	"sort"
)

// Target is where an edge leads: either a further node in the machine or
// the accepting terminal. A rejecting outcome is never stored on an edge;
// rejection is simply the absence of a usable edge during traversal.
type Target struct {
	accepting bool
	node      int
}

func accept() Target {
	return Target{accepting: true}
}

func toNode(idx int) Target {
	return Target{node: idx}
}

// Edge pairs the symbol it accepts with the target it leads to.
type Edge struct {
	Symbol Symbol
	To     Target
}

// Node holds the outgoing edges of one state, kept sorted so that the most
// specific symbol is tried first. The ordering is a traversal heuristic;
// backtracking still visits every edge that accepts the current character.
type Node struct {
	edges []Edge
}

func (n *Node) addEdge(sym Symbol, to Target) {
	n.edges = append(n.edges, Edge{Symbol: sym, To: to})

	sort.SliceStable(n.edges, func(i, j int) bool {
		return n.edges[i].Symbol.Kind < n.edges[j].Symbol.Kind
	})
}

// Machine is a compiled pattern: an append-only list of nodes where node 0
// is the start state. Once Compile returns, the machine is never mutated,
// so a single machine may serve concurrent Match calls.
type Machine struct {
	nodes []Node

	log *log.Logger
}

func (m *Machine) newNode() int {
	m.nodes = append(m.nodes, Node{})
	return len(m.nodes) - 1
}

func (m *Machine) lastNode() int {
	return len(m.nodes) - 1
}

func (m *Machine) logf(format string, args ...interface{}) {
	if m.log != nil {
		m.log.Printf(format, args...)
	}
}
