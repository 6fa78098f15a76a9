package starmap

// MarkerKind is one ring drawn around a system's star. The declaration order
// is the fixed stacking priority: Exchange outermost, Ship innermost.
type MarkerKind uint8

const (
	MarkerExchange MarkerKind = iota
	MarkerBase
	MarkerShip
)

// String returns a human-readable marker name.
func (k MarkerKind) String() string {
	switch k {
	case MarkerExchange:
		return "Commodity Exchange"
	case MarkerBase:
		return "Base"
	case MarkerShip:
		return "Ship"
	default:
		return "Unknown"
	}
}

// Toggles are the marker visibility switches.
type Toggles struct {
	Exchanges bool
	Bases     bool
	Ships     bool
}

// MarkerInputs are the three independent data sets markers are derived from,
// keyed by system natural ID.
type MarkerInputs struct {
	ExchangeSystems map[string]bool
	ExchangeNames   map[string]string // system natural ID -> CX code
	BaseSystems     map[string]bool
	DockedShips     map[string]bool
	FlightPaths     []FlightPath
}

// ComputeMarkers rebuilds the per-system marker sequences from scratch. Each
// qualifying system maps to its kinds in priority order {Exchange, Base,
// Ship}; systems with no qualifying kind are absent. A system counts as
// having a ship if one is docked there or an in-system flight is underway
// there; inter-system flights mark neither endpoint. Always a full rebuild:
// the source sets change independently (toggle flip, fetch, login/logout)
// and a stale map is worse than the linear rebuild.
func ComputeMarkers(in *MarkerInputs, t Toggles) map[string][]MarkerKind {
	candidates := make(map[string]bool)
	if t.Exchanges {
		for id := range in.ExchangeSystems {
			candidates[id] = true
		}
	}
	if t.Bases {
		for id := range in.BaseSystems {
			candidates[id] = true
		}
	}
	if t.Ships {
		for id := range in.DockedShips {
			candidates[id] = true
		}
		for _, f := range in.FlightPaths {
			if f.InSystem {
				candidates[f.Origin] = true
			}
		}
	}

	out := make(map[string][]MarkerKind, len(candidates))
	for id := range candidates {
		var kinds []MarkerKind
		if t.Exchanges && in.ExchangeSystems[id] {
			kinds = append(kinds, MarkerExchange)
		}
		if t.Bases && in.BaseSystems[id] {
			kinds = append(kinds, MarkerBase)
		}
		if t.Ships && (in.DockedShips[id] || hasInSystemFlight(in.FlightPaths, id)) {
			kinds = append(kinds, MarkerShip)
		}
		if len(kinds) > 0 {
			out[id] = kinds
		}
	}
	return out
}

func hasInSystemFlight(paths []FlightPath, systemID string) bool {
	for _, f := range paths {
		if f.InSystem && f.Origin == systemID {
			return true
		}
	}
	return false
}
