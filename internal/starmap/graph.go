package starmap

import "prunmap/internal/fio"

// StarClass is the spectral class of a system's star, taken from the first
// byte of the FIO Type string.
type StarClass uint8

const (
	ClassO StarClass = iota
	ClassB
	ClassA
	ClassF
	ClassG
	ClassK
	ClassM
	ClassUnknown
)

// ClassFromType classifies a FIO spectral type string.
func ClassFromType(s string) StarClass {
	if s == "" {
		return ClassUnknown
	}
	switch s[0] {
	case 'O':
		return ClassO
	case 'B':
		return ClassB
	case 'A':
		return ClassA
	case 'F':
		return ClassF
	case 'G':
		return ClassG
	case 'K':
		return ClassK
	case 'M':
		return ClassM
	default:
		return ClassUnknown
	}
}

// String returns the one-letter spectral class name.
func (c StarClass) String() string {
	switch c {
	case ClassO:
		return "O"
	case ClassB:
		return "B"
	case ClassA:
		return "A"
	case ClassF:
		return "F"
	case ClassG:
		return "G"
	case ClassK:
		return "K"
	case ClassM:
		return "M"
	default:
		return "Unknown"
	}
}

// Node is one star system in the built graph.
type Node struct {
	Name      string
	NaturalID string
	Class     StarClass
	Position  [3]float64
	SectorID  string
}

// Edge is one undirected connection between two systems.
type Edge struct {
	A, B *Node
}

// Graph is the undirected system connectivity graph. It is built once per
// fetch and never mutated afterwards; a re-fetch builds a new Graph and the
// holder swaps the reference.
type Graph struct {
	// Nodes in input record order. Hover testing and search iterate this
	// order, so it must stay stable for the graph's lifetime.
	Nodes []*Node
	// Edges deduplicated: at most one per node pair, whichever endpoint
	// declared it first.
	Edges []Edge

	// ByID maps the opaque FIO record ID to its node; ByNaturalID maps the
	// human-facing system ID. Both stay valid for the graph's lifetime.
	ByID        map[string]*Node
	ByNaturalID map[string]*Node

	adj map[*Node][]*Node
}

// Build constructs the graph from raw FIO system records. Two passes: nodes
// (with both ID indices) first, then edges. Connections naming an unknown
// target are dropped silently; the public feed is known to contain dangling
// references. Connections declared from both endpoints collapse to one edge.
func Build(records []fio.StarSystem) *Graph {
	g := &Graph{
		Nodes:       make([]*Node, 0, len(records)),
		ByID:        make(map[string]*Node, len(records)),
		ByNaturalID: make(map[string]*Node, len(records)),
		adj:         make(map[*Node][]*Node, len(records)),
	}

	for _, rec := range records {
		n := &Node{
			Name:      rec.Name,
			NaturalID: rec.NaturalID,
			Class:     ClassFromType(rec.Type),
			Position:  [3]float64{rec.PositionX, rec.PositionY, rec.PositionZ},
			SectorID:  rec.SectorID,
		}
		g.Nodes = append(g.Nodes, n)
		g.ByID[rec.SystemID] = n
		g.ByNaturalID[rec.NaturalID] = n
	}

	for _, rec := range records {
		from := g.ByID[rec.SystemID]
		for _, conn := range rec.Connections {
			to, ok := g.ByID[conn.ConnectingID]
			if !ok {
				continue // dangling reference
			}
			if g.HasEdge(from, to) {
				continue // declared from the other endpoint already
			}
			g.Edges = append(g.Edges, Edge{A: from, B: to})
			g.adj[from] = append(g.adj[from], to)
			if to != from {
				g.adj[to] = append(g.adj[to], from)
			}
		}
	}

	return g
}

// HasEdge reports whether an edge exists between a and b.
func (g *Graph) HasEdge(a, b *Node) bool {
	for _, n := range g.adj[a] {
		if n == b {
			return true
		}
	}
	return false
}

// Neighbors returns the nodes directly connected to n.
func (g *Graph) Neighbors(n *Node) []*Node {
	return g.adj[n]
}

// NodeCount returns the number of systems.
func (g *Graph) NodeCount() int { return len(g.Nodes) }

// EdgeCount returns the number of deduplicated connections.
func (g *Graph) EdgeCount() int { return len(g.Edges) }
