package starmap

import (
	"math"
	"strings"
)

// Extra screen-space slack around a star's radius for hover testing.
const hoverSlack = 5.0

// NodeRadius returns the drawn radius of a star at the given zoom. Selected
// and hovered stars render enlarged.
func NodeRadius(zoom float64, selected, hovered bool) float64 {
	r := 3.0 + zoom*2.0
	if selected {
		return r * 1.5
	}
	if hovered {
		return r * 1.2
	}
	return r
}

// Interaction holds hover and selection state over a graph. Hovered is
// recomputed every frame; Selected is sticky and independent, so a node can
// stay selected while another is hovered. Both are cleared when the graph is
// replaced.
type Interaction struct {
	graph    *Graph
	Hovered  *Node
	Selected *Node
}

// SetGraph points the interaction at a (new) graph, resetting hover and
// selection since node references from the old graph are no longer valid.
func (ix *Interaction) SetGraph(g *Graph) {
	ix.graph = g
	ix.Hovered = nil
	ix.Selected = nil
}

// Graph returns the graph the interaction currently reads.
func (ix *Interaction) Graph() *Graph { return ix.graph }

// HitTest recomputes the hover target for the given cursor position. The map
// area runs from minX to viewW; a cursor left of minX (over side chrome)
// hovers nothing, and nodes whose screen position falls outside the map area
// are not eligible even when the cursor is within slack of them. A node hits
// when the cursor is within its radius plus slack. Of all qualifying nodes
// the nearest wins, which keeps the result deterministic when stars overlap
// at low zoom.
func (ix *Interaction) HitTest(v *Viewport, cursorX, cursorY, minX, viewW, viewH float64) {
	ix.Hovered = ix.hitTest(v, cursorX, cursorY, minX, viewW, viewH)
}

func (ix *Interaction) hitTest(v *Viewport, cursorX, cursorY, minX, viewW, viewH float64) *Node {
	if ix.graph == nil || cursorX < minX {
		return nil
	}
	var best *Node
	bestDist := math.MaxFloat64
	for _, n := range ix.graph.Nodes {
		sx, sy := v.WorldToScreen(n.Position, viewW, viewH)
		if sx < minX || sx > viewW || sy < 0 || sy > viewH {
			continue
		}
		r := NodeRadius(v.Zoom, n == ix.Selected, n == ix.Hovered)
		dist := math.Hypot(cursorX-sx, cursorY-sy)
		if dist < r+hoverSlack && dist < bestDist {
			bestDist = dist
			best = n
		}
	}
	return best
}

// Click commits the current hover target as the selection, or clears the
// selection when nothing is hovered.
func (ix *Interaction) Click() {
	ix.Selected = ix.Hovered
}

// Search returns up to limit nodes whose display name or natural ID contains
// the query, case-insensitively, in graph iteration order. An empty query
// matches nothing.
func (ix *Interaction) Search(query string, limit int) []*Node {
	if ix.graph == nil || query == "" {
		return nil
	}
	q := strings.ToLower(query)
	var out []*Node
	for _, n := range ix.graph.Nodes {
		if strings.Contains(strings.ToLower(n.Name), q) ||
			strings.Contains(strings.ToLower(n.NaturalID), q) {
			out = append(out, n)
			if len(out) >= limit {
				break
			}
		}
	}
	return out
}

// SelectResult selects a search result and recenters the viewport on it.
func (ix *Interaction) SelectResult(n *Node, v *Viewport) {
	ix.Selected = n
	v.CenterOn(n.Position)
}
