// Package dashboard owns the display state of the weather dashboard:
// which location is shown, the cached searched and geolocated
// snapshots, the forecast/history series, and the error slots. All
// mutation goes through the action methods; the renderer only ever
// reads State().
package dashboard

import (
	"context"
	"sync"

	"github.com/i474232898/weather-dashboard/internal/common"
	"github.com/i474232898/weather-dashboard/internal/geo"
	"github.com/i474232898/weather-dashboard/internal/locations"
	"github.com/i474232898/weather-dashboard/internal/weatherapi"
)

// View selects which cached snapshot is displayed.
type View string

const (
	ViewDefault         View = "default"
	ViewCurrentLocation View = "current"
)

const (
	forecastDays = 3
	historyDays  = 7

	// searchErrMessage is the single user-facing message for any
	// failed refresh, whatever the underlying cause.
	searchErrMessage = "Location not found. Please try another search."
)

// WeatherClient is the provider contract the dashboard refreshes
// through. *weatherapi.Client satisfies it.
type WeatherClient interface {
	Current(ctx context.Context, query string) (*weatherapi.Snapshot, error)
	Forecast(ctx context.Context, query string, days int) ([]weatherapi.ForecastDay, error)
	HistoryRange(ctx context.Context, query string, days int) ([]weatherapi.HistoryDay, error)
}

// Locator resolves the device's current position. *geo.Resolver
// satisfies it.
type Locator interface {
	Resolve(ctx context.Context) (geo.Coordinates, error)
}

// DisplayContext is what the renderer shows: the active snapshot and
// whether it is the geolocated one.
type DisplayContext struct {
	Snapshot          *weatherapi.Snapshot `json:"snapshot"`
	IsCurrentLocation bool                 `json:"isCurrentLocation"`
}

// State is a consistent copy of the dashboard for the renderer.
type State struct {
	View            View                     `json:"view"`
	Display         DisplayContext           `json:"display"`
	Forecast        []weatherapi.ForecastDay `json:"forecast"`
	History         []weatherapi.HistoryDay  `json:"history"`
	SavedLocations  []string                 `json:"savedLocations"`
	Loading         bool                     `json:"loading"`
	GettingLocation bool                     `json:"gettingLocation"`
	LoadingExtra    bool                     `json:"loadingExtra"`
	SearchError     string                   `json:"searchError,omitempty"`
	GeoError        string                   `json:"geoError,omitempty"`
}

// Dashboard is the orchestrator. One mutex guards all fields;
// overlapping refreshes are not cancelled, the last writer wins.
type Dashboard struct {
	weather WeatherClient
	locator Locator
	saved   *locations.Store

	defaultLocation string

	mu              sync.Mutex
	view            View
	defaultSnapshot *weatherapi.Snapshot
	currentSnapshot *weatherapi.Snapshot
	forecast        []weatherapi.ForecastDay
	history         []weatherapi.HistoryDay
	defaultQuery    string
	currentQuery    string
	searchErr       string
	geoErr          string
	loading         bool
	gettingLocation bool
	loadingExtra    bool
}

// New creates a Dashboard in the Default view with nothing loaded yet.
// defaultLocation is the query used by Init's startup refresh.
func New(weather WeatherClient, locator Locator, saved *locations.Store, defaultLocation string) *Dashboard {
	return &Dashboard{
		weather:         weather,
		locator:         locator,
		saved:           saved,
		defaultLocation: defaultLocation,
		view:            ViewDefault,
	}
}

// Init runs the startup refresh for the configured default location.
// On failure the dashboard stays up with the search error set and no
// snapshot; the caller decides whether to retry.
func (d *Dashboard) Init(ctx context.Context) error {
	return d.refresh(ctx, d.defaultLocation, ViewDefault)
}

// Search trims text and runs a full refresh for it. Empty input is a
// no-op: no network call, no state change. On success the searched
// snapshot becomes the Default view; on failure the previously
// displayed data is untouched and only the search error is set.
func (d *Dashboard) Search(ctx context.Context, text string) error {
	query := common.TrimQuery(text)
	if query == "" {
		return nil
	}
	return d.refresh(ctx, query, ViewDefault)
}

// SelectSaved loads a saved location, behaving exactly like Search.
func (d *Dashboard) SelectSaved(ctx context.Context, name string) error {
	return d.Search(ctx, name)
}

// UseCurrentLocation resolves the device position and refreshes for
// it. Geolocation failure sets the geo error slot and never touches
// the weather data or the view; no weather call is attempted.
func (d *Dashboard) UseCurrentLocation(ctx context.Context) error {
	d.mu.Lock()
	d.gettingLocation = true
	d.geoErr = ""
	d.mu.Unlock()

	coords, err := d.locator.Resolve(ctx)

	d.mu.Lock()
	d.gettingLocation = false
	if err != nil {
		d.geoErr = err.Error()
		d.mu.Unlock()
		return err
	}
	d.mu.Unlock()

	return d.refresh(ctx, coords.Query(), ViewCurrentLocation)
}

// ReturnToDefault switches back to the searched snapshot. The cached
// current-location snapshot is kept, not re-fetched. Calling it while
// already in the Default view is a no-op.
func (d *Dashboard) ReturnToDefault() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.view != ViewCurrentLocation {
		return
	}
	d.view = ViewDefault
}

// SaveCurrent adds the displayed snapshot's canonical location name to
// the saved list. Nothing displayed or already saved means no-op; the
// return value reports whether the list changed.
func (d *Dashboard) SaveCurrent() bool {
	d.mu.Lock()
	snap := d.displayedLocked()
	d.mu.Unlock()

	if snap == nil {
		return false
	}
	return d.saved.Add(snap.Location.Name)
}

// DeleteSaved removes a name from the saved list. It deliberately has
// no effect on the view or the displayed data.
func (d *Dashboard) DeleteSaved(name string) bool {
	return d.saved.Remove(name)
}

// Refresh re-runs the refresh for whatever is currently displayed.
// A dashboard with no successful load yet is left alone.
func (d *Dashboard) Refresh(ctx context.Context) error {
	d.mu.Lock()
	view := d.view
	query := d.defaultQuery
	if view == ViewCurrentLocation {
		query = d.currentQuery
	}
	d.mu.Unlock()

	if query == "" {
		return nil
	}
	return d.refresh(ctx, query, view)
}

// State returns a consistent copy for the renderer.
func (d *Dashboard) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()

	return State{
		View: d.view,
		Display: DisplayContext{
			Snapshot:          d.displayedLocked(),
			IsCurrentLocation: d.view == ViewCurrentLocation,
		},
		Forecast:        append([]weatherapi.ForecastDay(nil), d.forecast...),
		History:         append([]weatherapi.HistoryDay(nil), d.history...),
		SavedLocations:  d.saved.List(),
		Loading:         d.loading,
		GettingLocation: d.gettingLocation,
		LoadingExtra:    d.loadingExtra,
		SearchError:     d.searchErr,
		GeoError:        d.geoErr,
	}
}

func (d *Dashboard) displayedLocked() *weatherapi.Snapshot {
	if d.view == ViewCurrentLocation {
		return d.currentSnapshot
	}
	return d.defaultSnapshot
}

// refresh is the coordinated current+forecast+history fetch for one
// query. Current conditions land first and become visible immediately
// (loadingExtra covers the window until forecast and history land
// together). The view switches to target with that first commit, so a
// later forecast or history failure leaves the revealed snapshot and
// view in place. A failed current call leaves every displayed field
// untouched, including the view; a failed forecast or history call keeps the
// committed snapshot but reports the same generic search error and
// leaves the previous forecast/history in place.
func (d *Dashboard) refresh(ctx context.Context, query string, target View) error {
	d.mu.Lock()
	d.loading = true
	d.mu.Unlock()
	defer func() {
		d.mu.Lock()
		d.loading = false
		d.mu.Unlock()
	}()

	snap, err := d.weather.Current(ctx, query)
	if err != nil {
		d.mu.Lock()
		d.searchErr = searchErrMessage
		d.mu.Unlock()
		return err
	}

	d.mu.Lock()
	if target == ViewCurrentLocation {
		d.currentSnapshot = snap
		d.currentQuery = query
	} else {
		d.defaultSnapshot = snap
		d.defaultQuery = query
	}
	d.view = target
	d.searchErr = ""
	d.loadingExtra = true
	d.mu.Unlock()

	var (
		wg       sync.WaitGroup
		forecast []weatherapi.ForecastDay
		history  []weatherapi.HistoryDay
		fErr     error
		hErr     error
	)
	wg.Add(2)
	go func() {
		defer wg.Done()
		forecast, fErr = d.weather.Forecast(ctx, query, forecastDays)
	}()
	go func() {
		defer wg.Done()
		history, hErr = d.weather.HistoryRange(ctx, query, historyDays)
	}()
	wg.Wait()

	d.mu.Lock()
	defer d.mu.Unlock()
	d.loadingExtra = false

	if fErr != nil {
		d.searchErr = searchErrMessage
		return fErr
	}
	if hErr != nil {
		d.searchErr = searchErrMessage
		return hErr
	}

	d.forecast = forecast
	d.history = history
	return nil
}
