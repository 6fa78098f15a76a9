package starmap

import "testing"

func TestSystemFromPlanet(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"UV-351a", "UV-351"},
		{"UV-351b", "UV-351"},
		{"OT-580", "OT-580"},   // no planet suffix
		{"ZV-307", "ZV-307"},   // trailing digit
		{"Promitor", "Promito"}, // named planets also end lowercase; best-effort
		{"", ""},
		{"a", ""},
	}
	for _, c := range cases {
		if got := SystemFromPlanet(c.in); got != c.want {
			t.Errorf("SystemFromPlanet(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
