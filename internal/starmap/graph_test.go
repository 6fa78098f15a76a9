package starmap

import (
	"testing"

	"prunmap/internal/fio"
)

func sys(id, natID string, conns ...string) fio.StarSystem {
	s := fio.StarSystem{SystemID: id, Name: "Sys " + natID, NaturalID: natID, Type: "G"}
	for _, c := range conns {
		s.Connections = append(s.Connections, fio.SystemConnection{
			SystemConnectionID: id + "-" + c,
			ConnectingID:       c,
		})
	}
	return s
}

func TestBuild_SymmetricDeclarationsCollapse(t *testing.T) {
	// Each side declares the connection; only one edge should result.
	g := Build([]fio.StarSystem{
		sys("1", "A", "2"),
		sys("2", "B", "1"),
	})
	if g.NodeCount() != 2 {
		t.Errorf("NodeCount = %d, want 2", g.NodeCount())
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount = %d, want 1", g.EdgeCount())
	}
	a := g.ByNaturalID["A"]
	b := g.ByNaturalID["B"]
	if !g.HasEdge(a, b) || !g.HasEdge(b, a) {
		t.Error("edge should exist in both directions")
	}
	if len(g.Neighbors(a)) != 1 || g.Neighbors(a)[0] != b {
		t.Errorf("Neighbors(A) = %v", g.Neighbors(a))
	}
}

func TestBuild_DanglingReferenceDropped(t *testing.T) {
	g := Build([]fio.StarSystem{
		sys("1", "A", "2", "missing"),
		sys("2", "B"),
	})
	if g.NodeCount() != 2 {
		t.Errorf("NodeCount = %d, want 2", g.NodeCount())
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount = %d, want 1 (dangling ref must not count)", g.EdgeCount())
	}
}

func TestBuild_RedundantDeclarationsSameSide(t *testing.T) {
	g := Build([]fio.StarSystem{
		sys("1", "A", "2", "2", "2"),
		sys("2", "B"),
	})
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount = %d, want 1", g.EdgeCount())
	}
}

func TestBuild_Empty(t *testing.T) {
	g := Build(nil)
	if g.NodeCount() != 0 || g.EdgeCount() != 0 {
		t.Errorf("empty input: %d nodes, %d edges", g.NodeCount(), g.EdgeCount())
	}
}

func TestBuild_NodePerRecordInOrder(t *testing.T) {
	records := []fio.StarSystem{
		sys("10", "C"), sys("11", "D"), sys("12", "E"),
	}
	g := Build(records)
	if g.NodeCount() != 3 {
		t.Fatalf("NodeCount = %d, want 3", g.NodeCount())
	}
	for i, want := range []string{"C", "D", "E"} {
		if g.Nodes[i].NaturalID != want {
			t.Errorf("Nodes[%d].NaturalID = %q, want %q", i, g.Nodes[i].NaturalID, want)
		}
	}
}

func TestBuild_Indices(t *testing.T) {
	rec := fio.StarSystem{
		SystemID: "rec-1", Name: "Moria", NaturalID: "OT-580", Type: "K",
		PositionX: 1, PositionY: 2, PositionZ: 3, SectorID: "sec-9",
	}
	g := Build([]fio.StarSystem{rec})

	n := g.ByID["rec-1"]
	if n == nil {
		t.Fatal("ByID lookup failed")
	}
	if g.ByNaturalID["OT-580"] != n {
		t.Error("ByNaturalID must resolve to the same node")
	}
	if n.Name != "Moria" || n.Class != ClassK || n.SectorID != "sec-9" {
		t.Errorf("node = %+v", n)
	}
	if n.Position != [3]float64{1, 2, 3} {
		t.Errorf("Position = %v", n.Position)
	}
}

func TestBuild_EdgeCountAtMostHalfDeclared(t *testing.T) {
	// Triangle declared fully from both sides: 6 declarations, 3 edges.
	g := Build([]fio.StarSystem{
		sys("1", "A", "2", "3"),
		sys("2", "B", "1", "3"),
		sys("3", "C", "1", "2"),
	})
	if g.EdgeCount() != 3 {
		t.Errorf("EdgeCount = %d, want 3", g.EdgeCount())
	}
}

func TestBuild_Idempotent(t *testing.T) {
	records := []fio.StarSystem{
		sys("1", "A", "2", "3"),
		sys("2", "B", "1"),
		sys("3", "C", "1", "nope"),
	}
	g1 := Build(records)
	g2 := Build(records)

	if g1.NodeCount() != g2.NodeCount() || g1.EdgeCount() != g2.EdgeCount() {
		t.Fatalf("rebuild differs: %d/%d vs %d/%d nodes/edges",
			g1.NodeCount(), g1.EdgeCount(), g2.NodeCount(), g2.EdgeCount())
	}
	for _, n1 := range g1.Nodes {
		n2 := g2.ByNaturalID[n1.NaturalID]
		if n2 == nil {
			t.Fatalf("node %q missing from rebuild", n1.NaturalID)
		}
		if n1.Name != n2.Name || n1.Class != n2.Class || n1.Position != n2.Position {
			t.Errorf("node %q attributes differ", n1.NaturalID)
		}
		if len(g1.Neighbors(n1)) != len(g2.Neighbors(n2)) {
			t.Errorf("node %q degree differs", n1.NaturalID)
		}
		for _, m1 := range g1.Neighbors(n1) {
			if !g2.HasEdge(n2, g2.ByNaturalID[m1.NaturalID]) {
				t.Errorf("edge %q-%q missing from rebuild", n1.NaturalID, m1.NaturalID)
			}
		}
	}
}

func TestClassFromType(t *testing.T) {
	cases := []struct {
		in   string
		want StarClass
	}{
		{"O", ClassO}, {"B", ClassB}, {"A", ClassA}, {"F", ClassF},
		{"G", ClassG}, {"K", ClassK}, {"M", ClassM},
		{"G2V", ClassG}, {"", ClassUnknown}, {"X", ClassUnknown},
	}
	for _, c := range cases {
		if got := ClassFromType(c.in); got != c.want {
			t.Errorf("ClassFromType(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}
