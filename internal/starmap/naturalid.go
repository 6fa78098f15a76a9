package starmap

// SystemFromPlanet derives the parent system natural ID from a planet
// identifier by stripping a single trailing lowercase letter
// ("UV-351a" -> "UV-351"). Identifiers without a planet suffix are returned
// unchanged. This is a textual convention of the FIO feed, not a guaranteed
// invariant, so callers should treat the result as best-effort.
func SystemFromPlanet(planetID string) string {
	if planetID == "" {
		return planetID
	}
	last := planetID[len(planetID)-1]
	if last >= 'a' && last <= 'z' {
		return planetID[:len(planetID)-1]
	}
	return planetID
}
