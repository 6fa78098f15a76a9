package starmap

import (
	"testing"

	"prunmap/internal/fio"
)

func systemLine(natID string) fio.FlightLine {
	return fio.FlightLine{Type: "system", LineNaturalID: natID}
}

func TestDeriveFlightPath_InterSystem(t *testing.T) {
	f := fio.Flight{
		ShipID: "sh1",
		Segments: []fio.FlightSegment{
			{
				OriginLines:      []fio.FlightLine{systemLine("OT-580")},
				DestinationLines: []fio.FlightLine{systemLine("UV-351")},
			},
		},
	}
	p, ok := DeriveFlightPath(f)
	if !ok {
		t.Fatal("expected derivable path")
	}
	if p.Origin != "OT-580" || p.Destination != "UV-351" {
		t.Errorf("path = %+v", p)
	}
	if p.InSystem {
		t.Error("different endpoints must not be in-system")
	}
	if p.ShipID != "sh1" {
		t.Errorf("ShipID = %q", p.ShipID)
	}
}

func TestDeriveFlightPath_InSystem(t *testing.T) {
	f := fio.Flight{
		Segments: []fio.FlightSegment{
			{
				OriginLines:      []fio.FlightLine{systemLine("OT-580")},
				DestinationLines: []fio.FlightLine{systemLine("OT-580")},
			},
		},
	}
	p, ok := DeriveFlightPath(f)
	if !ok {
		t.Fatal("expected derivable path")
	}
	if !p.InSystem {
		t.Error("identical endpoints must be flagged in-system")
	}
}

func TestDeriveFlightPath_UsesFirstAndLastSegments(t *testing.T) {
	f := fio.Flight{
		Segments: []fio.FlightSegment{
			{
				OriginLines:      []fio.FlightLine{systemLine("OT-580")},
				DestinationLines: []fio.FlightLine{systemLine("mid-1")},
			},
			{
				OriginLines:      []fio.FlightLine{systemLine("mid-1")},
				DestinationLines: []fio.FlightLine{systemLine("UV-351")},
			},
		},
	}
	p, ok := DeriveFlightPath(f)
	if !ok {
		t.Fatal("expected derivable path")
	}
	if p.Origin != "OT-580" || p.Destination != "UV-351" {
		t.Errorf("path = %+v, want first-segment origin, last-segment destination", p)
	}
}

func TestDeriveFlightPath_SkipsNonSystemLines(t *testing.T) {
	f := fio.Flight{
		Segments: []fio.FlightSegment{
			{
				OriginLines: []fio.FlightLine{
					{Type: "planet", LineNaturalID: "OT-580b"},
					systemLine("OT-580"),
				},
				DestinationLines: []fio.FlightLine{
					{Type: "station", LineNaturalID: "ANT"},
					systemLine("ZV-307"),
				},
			},
		},
	}
	p, ok := DeriveFlightPath(f)
	if !ok {
		t.Fatal("expected derivable path")
	}
	if p.Origin != "OT-580" || p.Destination != "ZV-307" {
		t.Errorf("path = %+v, want first line of type system on each end", p)
	}
}

func TestDeriveFlightPath_Underivable(t *testing.T) {
	cases := []struct {
		name string
		f    fio.Flight
	}{
		{"no segments", fio.Flight{}},
		{"no system origin line", fio.Flight{
			Segments: []fio.FlightSegment{{
				OriginLines:      []fio.FlightLine{{Type: "planet", LineNaturalID: "X"}},
				DestinationLines: []fio.FlightLine{systemLine("UV-351")},
			}},
		}},
		{"no system destination line", fio.Flight{
			Segments: []fio.FlightSegment{{
				OriginLines:      []fio.FlightLine{systemLine("OT-580")},
				DestinationLines: nil,
			}},
		}},
	}
	for _, c := range cases {
		if _, ok := DeriveFlightPath(c.f); ok {
			t.Errorf("%s: expected no path", c.name)
		}
	}
}

func TestDeriveFlightPaths_DropsUnderivable(t *testing.T) {
	flights := []fio.Flight{
		{Segments: []fio.FlightSegment{{
			OriginLines:      []fio.FlightLine{systemLine("A")},
			DestinationLines: []fio.FlightLine{systemLine("B")},
		}}},
		{}, // underivable
		{Segments: []fio.FlightSegment{{
			OriginLines:      []fio.FlightLine{systemLine("C")},
			DestinationLines: []fio.FlightLine{systemLine("C")},
		}}},
	}
	paths := DeriveFlightPaths(flights)
	if len(paths) != 2 {
		t.Fatalf("len = %d, want 2", len(paths))
	}
	if paths[0].Origin != "A" || paths[0].InSystem {
		t.Errorf("paths[0] = %+v", paths[0])
	}
	if paths[1].Origin != "C" || !paths[1].InSystem {
		t.Errorf("paths[1] = %+v", paths[1])
	}
}
