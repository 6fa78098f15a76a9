package config

// Config holds application settings (in-memory representation).
// Persistence is handled by internal/db package.
type Config struct {
	FIOBaseURL string `json:"fio_base_url"`

	WindowW int    `json:"window_w"`
	WindowH int    `json:"window_h"`
	Title   string `json:"title"`

	// Starting zoom, clamped to the viewport's bounds on load.
	InitialZoom float64 `json:"initial_zoom"`

	// Map overlays.
	ShowConnections bool `json:"show_connections"`
	ShowLabels      bool `json:"show_labels"`
	ShowExchanges   bool `json:"show_exchanges"`
	ShowBases       bool `json:"show_bases"`
	ShowShips       bool `json:"show_ships"`

	SearchResultCap int `json:"search_result_cap"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		FIOBaseURL:      "https://rest.fnar.net",
		WindowW:         1280,
		WindowH:         800,
		Title:           "PrUn Star Map",
		InitialZoom:     0.3,
		ShowConnections: true,
		ShowLabels:      false,
		ShowExchanges:   true,
		ShowBases:       true,
		ShowShips:       true,
		SearchResultCap: 10,
	}
}
