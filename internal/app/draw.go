package app

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"prunmap/internal/starmap"
)

const (
	sidebarWidth  = 230
	ringWidth     = 2.5
	ringGap       = 1.0
	arrowPosition = 0.6 // fraction along a flight line where the arrowhead sits
	arrowSize     = 6.0
)

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	g := a.ix.Graph()
	if g == nil {
		drawText(screen, "Fetching star data...", a.viewW/2-60, a.viewH/2, colorDimText)
		a.drawSidebar(screen)
		return
	}

	w, h := float64(a.viewW), float64(a.viewH)
	if a.showConnections {
		a.drawConnections(screen, g, w, h)
	}
	a.drawFlights(screen, g, w, h)
	a.drawStars(screen, g, w, h)
	a.drawSidebar(screen)
}

func (a *App) drawConnections(screen *ebiten.Image, g *starmap.Graph, w, h float64) {
	for _, e := range g.Edges {
		ax, ay := a.view.WorldToScreen(e.A.Position, w, h)
		bx, by := a.view.WorldToScreen(e.B.Position, w, h)
		if !onScreen(ax, ay, w, h) && !onScreen(bx, by, w, h) {
			continue
		}
		vector.StrokeLine(screen, float32(ax), float32(ay), float32(bx), float32(by),
			1, colorConnection, false)
	}
}

func (a *App) drawFlights(screen *ebiten.Image, g *starmap.Graph, w, h float64) {
	for _, fp := range a.markerIn.FlightPaths {
		if fp.InSystem {
			continue
		}
		origin, ok := g.ByNaturalID[fp.Origin]
		if !ok {
			continue
		}
		dest, ok := g.ByNaturalID[fp.Destination]
		if !ok {
			continue
		}
		ox, oy := a.view.WorldToScreen(origin.Position, w, h)
		dx, dy := a.view.WorldToScreen(dest.Position, w, h)
		if !onScreen(ox, oy, w, h) && !onScreen(dx, dy, w, h) {
			continue
		}
		vector.StrokeLine(screen, float32(ox), float32(oy), float32(dx), float32(dy),
			2, colorFlight, false)
		drawArrowhead(screen, ox, oy, dx, dy)
	}
}

// drawArrowhead draws a chevron partway along the line, pointing at the
// destination end.
func drawArrowhead(screen *ebiten.Image, ox, oy, dx, dy float64) {
	px := ox + (dx-ox)*arrowPosition
	py := oy + (dy-oy)*arrowPosition
	ang := math.Atan2(dy-oy, dx-ox)
	leftX := px - arrowSize*math.Cos(ang-0.5)
	leftY := py - arrowSize*math.Sin(ang-0.5)
	rightX := px - arrowSize*math.Cos(ang+0.5)
	rightY := py - arrowSize*math.Sin(ang+0.5)
	vector.StrokeLine(screen, float32(leftX), float32(leftY), float32(px), float32(py),
		2, colorFlight, false)
	vector.StrokeLine(screen, float32(rightX), float32(rightY), float32(px), float32(py),
		2, colorFlight, false)
}

func (a *App) drawStars(screen *ebiten.Image, g *starmap.Graph, w, h float64) {
	for _, n := range g.Nodes {
		sx, sy := a.view.WorldToScreen(n.Position, w, h)
		if sx < -20 || sx > w+20 || sy < -20 || sy > h+20 {
			continue
		}
		selected := n == a.ix.Selected
		hovered := n == a.ix.Hovered
		r := starmap.NodeRadius(a.view.Zoom, selected, hovered)
		clr := starColor(n.Class)

		if selected || hovered {
			vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(r*2),
				withAlpha(clr, 30), false)
		}

		kinds := a.markers[n.NaturalID]
		if len(kinds) > 0 {
			inner := markerColor(kinds[len(kinds)-1])
			vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(r+2),
				withAlpha(inner, 40), false)
			for i, k := range kinds {
				ringRadius := r + 3 + float64(len(kinds)-1-i)*(ringWidth+ringGap)
				vector.StrokeCircle(screen, float32(sx), float32(sy), float32(ringRadius),
					ringWidth, markerColor(k), false)
			}
		}

		vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(r), clr, false)

		if a.showLabels || hovered || selected || len(kinds) > 0 {
			label := n.Name
			if code, ok := a.markerIn.ExchangeNames[n.NaturalID]; ok && code != "" {
				label += " (" + code + ")"
			}
			lx := sx + r + 5 + float64(len(kinds))*3.5
			drawText(screen, label, int(lx), int(sy)+4, colorText)
		}
	}
}

func (a *App) drawSidebar(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, sidebarWidth, float32(a.viewH), colorPanel, false)

	y := 20
	line := func(s string, clr color.RGBA) {
		drawText(screen, s, 12, y, clr)
		y += 16
	}

	line("PrUn Star Map", colorHighlight)
	y += 6

	if g := a.ix.Graph(); g != nil {
		line(fmt.Sprintf("%d systems, %d links", g.NodeCount(), g.EdgeCount()), colorDimText)
	} else if a.loading {
		line("loading...", colorDimText)
	}
	line(fmt.Sprintf("zoom %.0f%%  [%s]", a.view.Zoom*100, a.view.Plane), colorDimText)
	y += 6

	line("[C] connections "+onOff(a.showConnections), colorText)
	line("[L] labels      "+onOff(a.showLabels), colorText)
	line("[E] exchanges   "+onOff(a.toggles.Exchanges), colorText)
	line("[B] bases       "+onOff(a.toggles.Bases), colorText)
	line("[S] ships       "+onOff(a.toggles.Ships), colorText)
	line("[P] plane  [R] reset  [/] search", colorDimText)
	y += 6

	if a.searchActive {
		line("search: "+a.searchQuery+"_", colorHighlight)
		for i, n := range a.searchResults {
			clr := colorText
			if i == a.searchSel {
				clr = colorHighlight
			}
			line("  "+n.Name+" ("+n.NaturalID+")", clr)
		}
		if a.searchQuery != "" && len(a.searchResults) == 0 {
			line("  no matches", colorDimText)
		}
		y += 6
	}

	if sel := a.ix.Selected; sel != nil {
		line(sel.Name, colorHighlight)
		line(sel.NaturalID+"  class "+sel.Class.String(), colorDimText)
		if sel.SectorID != "" {
			line("sector "+sel.SectorID, colorDimText)
		}
		for _, k := range a.markers[sel.NaturalID] {
			line("  "+k.String(), markerColor(k))
		}
		if g := a.ix.Graph(); g != nil {
			neighbors := g.Neighbors(sel)
			line(fmt.Sprintf("%d connections:", len(neighbors)), colorDimText)
			for _, nb := range neighbors {
				line("  "+nb.Name+" ("+nb.NaturalID+")", colorText)
			}
		}
		y += 6
	}

	if a.username != "" {
		line("logged in: "+a.username+"  [O] logout", colorDimText)
	} else {
		line("not logged in", colorDimText)
	}
	if a.status != "" {
		drawText(screen, a.status, 12, a.viewH-16, colorError)
	}
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func onScreen(x, y, w, h float64) bool {
	return x >= 0 && x <= w && y >= 0 && y <= h
}

func drawText(screen *ebiten.Image, s string, x, y int, clr color.RGBA) {
	text.Draw(screen, s, basicfont.Face7x13, x, y, clr)
}
