package starmap

import "prunmap/internal/fio"

// FlightPath is a derived active flight between two systems. InSystem marks
// local movement (origin equals destination); only inter-system flights are
// drawn as lines on the map.
type FlightPath struct {
	Origin      string // system natural ID
	Destination string // system natural ID
	ShipID      string
	InSystem    bool
}

// lineSystemID returns the natural ID of the first line tagged "system",
// or "" if none.
func lineSystemID(lines []fio.FlightLine) string {
	for _, line := range lines {
		if line.Type == "system" {
			return line.LineNaturalID
		}
	}
	return ""
}

// DeriveFlightPath extracts a FlightPath from a raw flight record: origin from
// the first segment's origin lines, destination from the last segment's
// destination lines. Returns ok=false when either end is underivable; such
// flights are skipped, never an error.
func DeriveFlightPath(f fio.Flight) (FlightPath, bool) {
	if len(f.Segments) == 0 {
		return FlightPath{}, false
	}
	origin := lineSystemID(f.Segments[0].OriginLines)
	dest := lineSystemID(f.Segments[len(f.Segments)-1].DestinationLines)
	if origin == "" || dest == "" {
		return FlightPath{}, false
	}
	return FlightPath{
		Origin:      origin,
		Destination: dest,
		ShipID:      f.ShipID,
		InSystem:    origin == dest,
	}, true
}

// DeriveFlightPaths derives paths for all flights, dropping the underivable.
func DeriveFlightPaths(flights []fio.Flight) []FlightPath {
	var out []FlightPath
	for _, f := range flights {
		if p, ok := DeriveFlightPath(f); ok {
			out = append(out, p)
		}
	}
	return out
}
