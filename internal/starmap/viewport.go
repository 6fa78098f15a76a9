package starmap

// Projection selects which two world coordinates are rendered. Orthographic:
// the third coordinate is dropped, never averaged or perspective-divided.
type Projection uint8

const (
	ProjectionXY Projection = iota
	ProjectionXZ
	ProjectionYZ
)

// String returns the projection's display label.
func (p Projection) String() string {
	switch p {
	case ProjectionXY:
		return "X-Y"
	case ProjectionXZ:
		return "X-Z"
	case ProjectionYZ:
		return "Y-Z"
	default:
		return "?"
	}
}

// Next cycles to the following projection plane.
func (p Projection) Next() Projection {
	switch p {
	case ProjectionXY:
		return ProjectionXZ
	case ProjectionXZ:
		return ProjectionYZ
	default:
		return ProjectionXY
	}
}

// Zoom bounds for the map view.
const (
	MinZoom     = 0.05
	MaxZoom     = 5.0
	DefaultZoom = 0.3
)

// Viewport is the pan/zoom/projection state of the map. It is mutated only by
// the interaction layer (drag, scroll, search-select).
type Viewport struct {
	OffsetX, OffsetY float64
	Zoom             float64
	Plane            Projection
}

// NewViewport returns a viewport at the default zoom, centered on the origin.
func NewViewport() Viewport {
	return Viewport{Zoom: DefaultZoom, Plane: ProjectionXY}
}

// Reset restores the default view.
func (v *Viewport) Reset() {
	*v = NewViewport()
}

// Project selects the two rendered coordinates of a world position for the
// active plane.
func (v *Viewport) Project(pos [3]float64) (x, y float64) {
	switch v.Plane {
	case ProjectionXZ:
		return pos[0], pos[2]
	case ProjectionYZ:
		return pos[1], pos[2]
	default:
		return pos[0], pos[1]
	}
}

// WorldToScreen maps a world position into screen coordinates for a view
// rectangle of the given size. Pure function of the viewport state: the same
// inputs always produce the same pixel, which hit-testing relies on.
func (v *Viewport) WorldToScreen(pos [3]float64, viewW, viewH float64) (sx, sy float64) {
	x, y := v.Project(pos)
	return viewW/2 + x*v.Zoom + v.OffsetX,
		viewH/2 + y*v.Zoom + v.OffsetY
}

// Pan shifts the view by a screen-space delta (1:1 with pointer drag).
func (v *Viewport) Pan(dx, dy float64) {
	v.OffsetX += dx
	v.OffsetY += dy
}

// ZoomAt multiplies the zoom by factor, clamped to [MinZoom, MaxZoom], and
// adjusts the pan offset so the world point under the cursor stays under the
// cursor. When the clamp engages, the anchor math still uses the clamped
// value, so the anchor slips slightly at the extremes; accepted behavior.
func (v *Viewport) ZoomAt(factor, cursorX, cursorY, viewW, viewH float64) {
	oldZoom := v.Zoom
	newZoom := oldZoom * factor
	if newZoom < MinZoom {
		newZoom = MinZoom
	}
	if newZoom > MaxZoom {
		newZoom = MaxZoom
	}
	v.Zoom = newZoom

	zoomChange := newZoom / oldZoom
	cursorOffX := cursorX - viewW/2 - v.OffsetX
	cursorOffY := cursorY - viewH/2 - v.OffsetY
	v.OffsetX -= cursorOffX * (zoomChange - 1)
	v.OffsetY -= cursorOffY * (zoomChange - 1)
}

// CenterOn pans so the given world position maps to the view center under the
// current zoom and projection.
func (v *Viewport) CenterOn(pos [3]float64) {
	x, y := v.Project(pos)
	v.OffsetX = -x * v.Zoom
	v.OffsetY = -y * v.Zoom
}
