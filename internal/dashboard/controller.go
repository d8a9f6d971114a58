// Package dashboard holds the navigation state machine behind the station
// dashboard. It knows nothing about rendering: every action mutates State and
// the caller reads a ViewModel back.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/ngmaloney/velib-terminal/internal/models"
	"github.com/ngmaloney/velib-terminal/internal/query"
	"github.com/ngmaloney/velib-terminal/internal/stats"
	"github.com/ngmaloney/velib-terminal/internal/store"
	"github.com/ngmaloney/velib-terminal/internal/velib"
)

// LoadErrorMessage is shown for any failed fetch
const LoadErrorMessage = "Erreur lors du chargement des données. Réessaie plus tard."

var (
	// ErrNotOnList is returned when selecting a page outside the station list
	ErrNotOnList = errors.New("page selection requires the station list")

	// ErrPageOutOfRange is returned for a page outside 1..TotalPages
	ErrPageOutOfRange = errors.New("page out of range")
)

// View identifies which screen is visible
type View int

const (
	ViewHome        View = iota // Dashboard with network totals
	ViewStationList             // Search box and paginated station cards
)

func (v View) String() string {
	switch v {
	case ViewHome:
		return "home"
	case ViewStationList:
		return "stations"
	default:
		return fmt.Sprintf("View(%d)", int(v))
	}
}

// Effect tells the caller what to do after an action
type Effect int

const (
	EffectNone  Effect = iota
	EffectFetch        // run a fetch and report it with CompleteFetch
)

// State is the navigation and query state
type State struct {
	View   View
	Filter string // normalized, "" means no filter
	Page   int    // 1-based
}

// ViewModel is everything the presentation layer needs for one render
type ViewModel struct {
	View          View
	Filter        string
	Page          int
	TotalPages    int
	TotalFiltered int
	Items         []models.Station
	Stats         stats.Summary
	Error         string
	Loading       bool
}

// Controller owns the station store and the state that drives the views.
// It is not safe for concurrent use; the UI event loop is its only caller.
type Controller struct {
	store    *store.Store
	pageSize int
	logger   *log.Logger

	state   State
	summary stats.Summary
	errMsg  string

	// A fetch is outstanding; further requests only retarget pendingView
	fetching    bool
	pendingView View
}

// NewController creates a controller in the Home view with nothing loaded
func NewController(st *store.Store, pageSize int, logger *log.Logger) *Controller {
	if st == nil {
		st = store.New()
	}
	if pageSize <= 0 {
		pageSize = query.DefaultPageSize
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Controller{
		store:    st,
		pageSize: pageSize,
		logger:   logger,
		state:    State{View: ViewHome, Page: 1},
	}
}

// State returns the current navigation state
func (c *Controller) State() State {
	return c.state
}

// Stats returns totals over the whole loaded snapshot
func (c *Controller) Stats() stats.Summary {
	return c.summary
}

// Err returns the message to display, "" when there is none
func (c *Controller) Err() string {
	return c.errMsg
}

// Fetching reports whether a fetch is outstanding
func (c *Controller) Fetching() bool {
	return c.fetching
}

// Start enters Home and asks for the initial fetch
func (c *Controller) Start() Effect {
	c.state.View = ViewHome
	return c.requestFetch(ViewHome)
}

// NavigateToList shows the station list. With nothing loaded it fetches first
// and switches once the fetch completes; otherwise it goes back to page 1 and
// keeps the current filter.
func (c *Controller) NavigateToList() Effect {
	if c.store.Len() == 0 {
		return c.requestFetch(ViewStationList)
	}
	c.state.Page = 1
	c.navigate(ViewStationList)
	return EffectNone
}

// NavigateToHome clears the search, shows Home and reloads everything
func (c *Controller) NavigateToHome() Effect {
	c.state.Filter = ""
	c.state.Page = 1
	c.navigate(ViewHome)
	return c.requestFetch(ViewHome)
}

// SubmitSearch applies a new filter and shows its first page
func (c *Controller) SubmitSearch(text string) {
	c.state.Filter = query.NormalizeFilter(text)
	c.state.Page = 1
	c.navigate(ViewStationList)
	c.logger.Debug("search submitted", "filter", c.state.Filter)
}

// SelectPage moves to page p of the current filter. The state is left
// untouched when the list is not shown or p is out of range.
func (c *Controller) SelectPage(p int) error {
	if c.state.View != ViewStationList {
		return ErrNotOnList
	}

	total := query.Page(c.store.All(), c.state.Filter, 1, c.pageSize).TotalPages
	if p < 1 || p > total {
		return fmt.Errorf("%w: %d not in 1..%d", ErrPageOutOfRange, p, total)
	}

	c.state.Page = p
	return nil
}

// CompleteFetch records the outcome of the fetch requested by EffectFetch.
// On success the snapshot replaces the store and the search is reset; on
// failure the store keeps its previous content.
func (c *Controller) CompleteFetch(stations []models.Station, err error) {
	c.fetching = false

	if err != nil {
		c.logger.Error("fetch failed", "err", err)
		c.errMsg = LoadErrorMessage
	} else {
		c.store.Replace(stations)
		c.state.Filter = ""
		c.state.Page = 1
		c.errMsg = ""
		c.logger.Info("snapshot loaded", "stations", len(stations))
	}

	c.summary = stats.Aggregate(c.store.All())
	c.state.View = c.pendingView
}

// Perform runs effect synchronously against client
func (c *Controller) Perform(ctx context.Context, client velib.StationClient, effect Effect) {
	if effect != EffectFetch {
		return
	}
	stations, err := client.FetchStations(ctx)
	c.CompleteFetch(stations, err)
}

// ViewModel derives the data for the current render
func (c *Controller) ViewModel() ViewModel {
	res := query.Page(c.store.All(), c.state.Filter, c.state.Page, c.pageSize)

	return ViewModel{
		View:          c.state.View,
		Filter:        c.state.Filter,
		Page:          c.state.Page,
		TotalPages:    res.TotalPages,
		TotalFiltered: res.TotalFiltered,
		Items:         res.Items,
		Stats:         c.summary,
		Error:         c.errMsg,
		Loading:       c.fetching,
	}
}

func (c *Controller) navigate(v View) {
	c.state.View = v
	c.pendingView = v
}

func (c *Controller) requestFetch(target View) Effect {
	c.pendingView = target
	if c.fetching {
		c.logger.Debug("fetch already in flight, ignoring request", "target", target)
		return EffectNone
	}

	c.fetching = true
	c.errMsg = ""
	return EffectFetch
}
