package app

import (
	"image/color"

	"prunmap/internal/starmap"
)

// Background and chrome colors.
var (
	colorBackground = color.RGBA{10, 10, 20, 255}
	colorPanel      = color.RGBA{16, 16, 28, 230}
	colorText       = color.RGBA{220, 220, 225, 255}
	colorDimText    = color.RGBA{130, 130, 145, 255}
	colorError      = color.RGBA{235, 80, 80, 255}
	colorConnection = color.RGBA{100, 100, 150, 80}
	colorFlight     = color.RGBA{80, 160, 255, 255}
	colorHighlight  = color.RGBA{255, 255, 255, 255}
)

// starColor returns the display color for a spectral class.
func starColor(c starmap.StarClass) color.RGBA {
	switch c {
	case starmap.ClassO:
		return color.RGBA{155, 176, 255, 255}
	case starmap.ClassB:
		return color.RGBA{170, 191, 255, 255}
	case starmap.ClassA:
		return color.RGBA{202, 215, 255, 255}
	case starmap.ClassF:
		return color.RGBA{248, 247, 255, 255}
	case starmap.ClassG:
		return color.RGBA{255, 244, 234, 255}
	case starmap.ClassK:
		return color.RGBA{255, 210, 161, 255}
	case starmap.ClassM:
		return color.RGBA{255, 204, 111, 255}
	default:
		return color.RGBA{128, 128, 128, 255}
	}
}

// markerColor returns the ring color for a marker kind: CX red, base green,
// ship blue.
func markerColor(k starmap.MarkerKind) color.RGBA {
	switch k {
	case starmap.MarkerExchange:
		return color.RGBA{230, 60, 60, 255}
	case starmap.MarkerBase:
		return color.RGBA{70, 200, 90, 255}
	case starmap.MarkerShip:
		return color.RGBA{80, 160, 255, 255}
	default:
		return color.RGBA{128, 128, 128, 255}
	}
}

// withAlpha returns c with its alpha replaced (for glows).
func withAlpha(c color.RGBA, a uint8) color.RGBA {
	return color.RGBA{c.R, c.G, c.B, a}
}
