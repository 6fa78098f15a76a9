package app

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"prunmap/internal/auth"
	"prunmap/internal/config"
	"prunmap/internal/fio"
	"prunmap/internal/logger"
	"prunmap/internal/starmap"
)

// App is the Ebitengine game struct. It owns rendering and input; the spatial
// state lives in internal/starmap and is only mutated here, on the tick.
type App struct {
	cfg      *config.Config
	client   *fio.Client
	sessions *auth.SessionStore

	msgs chan Message

	ix   starmap.Interaction
	view starmap.Viewport

	markerIn starmap.MarkerInputs
	markers  map[string][]starmap.MarkerKind
	toggles  starmap.Toggles

	showConnections bool
	showLabels      bool

	username string
	loading  bool
	status   string // last transport/auth failure, shown in the sidebar

	dragging bool
	dragDist int
	lastX    int
	lastY    int

	searchActive  bool
	searchQuery   string
	searchSel     int
	searchResults []*starmap.Node

	viewW, viewH int
}

// New creates the app and seeds it from the last persisted snapshot, so a map
// renders immediately while fresh fetches are in flight.
func New(cfg *config.Config, client *fio.Client, sessions *auth.SessionStore) *App {
	a := &App{
		cfg:      cfg,
		client:   client,
		sessions: sessions,
		msgs:     make(chan Message, 16),
		view:     starmap.NewViewport(),
		toggles: starmap.Toggles{
			Exchanges: cfg.ShowExchanges,
			Bases:     cfg.ShowBases,
			Ships:     cfg.ShowShips,
		},
		showConnections: cfg.ShowConnections,
		showLabels:      cfg.ShowLabels,
		markers:         map[string][]starmap.MarkerKind{},
		viewW:           cfg.WindowW,
		viewH:           cfg.WindowH,
	}
	if cfg.InitialZoom >= starmap.MinZoom && cfg.InitialZoom <= starmap.MaxZoom {
		a.view.Zoom = cfg.InitialZoom
	}

	if systems, fetchedAt, ok := client.CachedSystems(); ok {
		a.applySystems(systems)
		logger.Info("MAP", fmt.Sprintf("Loaded %d systems from snapshot of %s",
			len(systems), fetchedAt.Format("2006-01-02 15:04")))
	}
	if stations, _, ok := client.CachedExchangeStations(); ok {
		a.applyStations(stations)
	}
	// Markers must exist before the first frame even when no fetch message
	// ever arrives, as in offline mode.
	a.recomputeMarkers()
	return a
}

// StartFetches kicks off the background downloads. Results come back through
// the message queue; a superseded fetch is not cancelled, last to arrive wins.
func (a *App) StartFetches() {
	a.loading = true
	go func() {
		systems, err := a.client.FetchSystems()
		if err != nil {
			a.msgs <- SystemsLoaded{Err: err.Error()}
			return
		}
		a.msgs <- SystemsLoaded{Systems: systems}
	}()
	go func() {
		stations, err := a.client.FetchExchangeStations()
		if err != nil {
			a.msgs <- ExchangeLoaded{Err: err.Error()}
			return
		}
		a.msgs <- ExchangeLoaded{Stations: stations}
	}()

	if sess := a.sessions.Get(); sess != nil {
		a.username = sess.Username
		a.startUserFetch(sess.Username, sess.AuthToken)
	}
}

func (a *App) startUserFetch(username, authToken string) {
	go func() {
		data := a.client.FetchUserData(username, authToken)
		a.msgs <- UserDataLoaded{Data: data}
	}()
}

// drainMessages applies every pending fetch result, then rebuilds derived
// state once. Nothing outside this tick ever sees a partial update.
func (a *App) drainMessages() {
	changed := false
	for {
		select {
		case msg := <-a.msgs:
			changed = a.apply(msg) || changed
		default:
			if changed {
				a.recomputeMarkers()
			}
			return
		}
	}
}

func (a *App) apply(msg Message) bool {
	switch m := msg.(type) {
	case SystemsLoaded:
		a.loading = false
		if m.Err != "" {
			// Keep the last-known-good graph; just surface the failure.
			a.status = m.Err
			logger.Error("FIO", m.Err)
			return false
		}
		a.status = ""
		a.applySystems(m.Systems)
		logger.Success("MAP", fmt.Sprintf("%d systems, %d connections",
			a.ix.Graph().NodeCount(), a.ix.Graph().EdgeCount()))
		return true
	case ExchangeLoaded:
		if m.Err != "" {
			logger.Warn("FIO", "exchange stations: "+m.Err)
			return false
		}
		a.applyStations(m.Stations)
		return true
	case UserDataLoaded:
		if m.Err != "" {
			logger.Warn("FIO", "user data: "+m.Err)
			return false
		}
		a.applyUserData(m.Data)
		return true
	}
	return false
}

// applySystems replaces the graph wholesale. The old graph is never mutated,
// so anything still reading it stays consistent.
func (a *App) applySystems(systems []fio.StarSystem) {
	a.ix.SetGraph(starmap.Build(systems))
	a.searchResults = nil
}

func (a *App) applyStations(stations []fio.ExchangeStation) {
	a.markerIn.ExchangeSystems = make(map[string]bool, len(stations))
	a.markerIn.ExchangeNames = make(map[string]string, len(stations))
	for _, st := range stations {
		a.markerIn.ExchangeSystems[st.SystemNaturalID] = true
		a.markerIn.ExchangeNames[st.SystemNaturalID] = st.ComexCode
	}
}

func (a *App) applyUserData(data *fio.UserData) {
	bases := make(map[string]bool)
	for _, site := range data.Sites {
		if site.PlanetIdentifier != "" {
			bases[starmap.SystemFromPlanet(site.PlanetIdentifier)] = true
		}
	}
	docked := make(map[string]bool)
	for _, ship := range data.Ships {
		// Ships in flight report an empty location.
		if ship.Location != "" {
			docked[starmap.SystemFromPlanet(ship.Location)] = true
		}
	}
	a.markerIn.BaseSystems = bases
	a.markerIn.DockedShips = docked
	a.markerIn.FlightPaths = starmap.DeriveFlightPaths(data.Flights)
}

func (a *App) recomputeMarkers() {
	a.markers = starmap.ComputeMarkers(&a.markerIn, a.toggles)
}

// SyncConfig writes the session's view settings back into the config so they
// can be persisted on exit.
func (a *App) SyncConfig() {
	a.cfg.ShowConnections = a.showConnections
	a.cfg.ShowLabels = a.showLabels
	a.cfg.ShowExchanges = a.toggles.Exchanges
	a.cfg.ShowBases = a.toggles.Bases
	a.cfg.ShowShips = a.toggles.Ships
	a.cfg.InitialZoom = a.view.Zoom
}

// Logout clears the stored credential and all user-derived map state.
func (a *App) Logout() {
	a.sessions.Delete()
	a.username = ""
	a.markerIn.BaseSystems = nil
	a.markerIn.DockedShips = nil
	a.markerIn.FlightPaths = nil
	a.recomputeMarkers()
}

func (a *App) Update() error {
	a.drainMessages()

	// Hover is recomputed every frame, before clicks commit it. The sidebar
	// covers the left edge, so stars under it are not hover targets.
	mx, my := ebiten.CursorPosition()
	a.ix.HitTest(&a.view, float64(mx), float64(my), sidebarWidth, float64(a.viewW), float64(a.viewH))

	if a.searchActive {
		a.updateSearch()
	} else {
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
		a.updateKeys()
	}
	a.updateMouse(mx, my)
	return nil
}

func (a *App) updateKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.view.Plane = a.view.Plane.Next()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		a.showConnections = !a.showConnections
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		a.showLabels = !a.showLabels
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		a.toggles.Exchanges = !a.toggles.Exchanges
		a.recomputeMarkers()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		a.toggles.Bases = !a.toggles.Bases
		a.recomputeMarkers()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		a.toggles.Ships = !a.toggles.Ships
		a.recomputeMarkers()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.view.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) && a.username != "" {
		a.Logout()
		logger.Info("AUTH", "Logged out")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySlash) {
		a.searchActive = true
		a.searchQuery = ""
		a.searchResults = nil
		a.searchSel = 0
	}
}

func (a *App) updateSearch() {
	edited := false
	for _, r := range ebiten.AppendInputChars(nil) {
		if r >= ' ' && r != '/' {
			a.searchQuery += string(r)
			edited = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) && a.searchQuery != "" {
		rs := []rune(a.searchQuery)
		a.searchQuery = string(rs[:len(rs)-1])
		edited = true
	}
	if edited {
		a.searchResults = a.ix.Search(a.searchQuery, a.cfg.SearchResultCap)
		a.searchSel = 0
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyDown) && a.searchSel < len(a.searchResults)-1 {
		a.searchSel++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) && a.searchSel > 0 {
		a.searchSel--
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) && len(a.searchResults) > 0 {
		a.ix.SelectResult(a.searchResults[a.searchSel], &a.view)
		a.searchActive = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.searchActive = false
		a.searchQuery = ""
		a.searchResults = nil
	}
}

func (a *App) updateMouse(mx, my int) {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.dragging = true
		a.dragDist = 0
		a.lastX, a.lastY = mx, my
	}
	if a.dragging && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		dx, dy := mx-a.lastX, my-a.lastY
		if dx != 0 || dy != 0 {
			a.view.Pan(float64(dx), float64(dy))
			a.dragDist += abs(dx) + abs(dy)
			a.lastX, a.lastY = mx, my
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		// A release without meaningful movement is a click. Clicks on the
		// sidebar leave the selection alone.
		if a.dragDist < 3 && a.lastX >= sidebarWidth {
			a.ix.Click()
		}
		a.dragging = false
	}

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		factor := 1.0 + wheelY*0.1
		a.view.ZoomAt(factor, float64(mx), float64(my), float64(a.viewW), float64(a.viewH))
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.viewW, a.viewH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
