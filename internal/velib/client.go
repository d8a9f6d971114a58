// Package velib fetches station availability from the OpenData Paris API.
package velib

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/ngmaloney/velib-terminal/internal/models"
)

const (
	// DefaultBaseURL is the OpenData Paris records search endpoint
	DefaultBaseURL = "https://opendata.paris.fr/api/records/1.0/search/"

	// DefaultDataset is the real-time Vélib' availability dataset
	DefaultDataset = "velib-disponibilite-en-temps-reel"

	// DefaultRows is how many records a single fetch asks for
	DefaultRows = 200
)

// StationClient retrieves a full snapshot of stations
type StationClient interface {
	// FetchStations performs one request and returns every station it got.
	// Failures are always *FetchError.
	FetchStations(ctx context.Context) ([]models.Station, error)
}

// ClientConfig holds settings for OpenDataClient. Zero values use defaults.
type ClientConfig struct {
	BaseURL string
	Dataset string
	Rows    int

	// Timeout for the request; zero means no timeout
	Timeout time.Duration

	HTTPClient *http.Client
	Logger     *log.Logger
}

// OpenDataClient implements StationClient against the OpenData Paris API
type OpenDataClient struct {
	baseURL    string
	dataset    string
	rows       int
	httpClient *http.Client
	logger     *log.Logger
}

// NewClient creates a new OpenData Paris client
func NewClient(cfg ClientConfig) *OpenDataClient {
	c := &OpenDataClient{
		baseURL:    cfg.BaseURL,
		dataset:    cfg.Dataset,
		rows:       cfg.Rows,
		httpClient: cfg.HTTPClient,
		logger:     cfg.Logger,
	}

	if c.baseURL == "" {
		c.baseURL = DefaultBaseURL
	}
	if c.dataset == "" {
		c.dataset = DefaultDataset
	}
	if c.rows <= 0 {
		c.rows = DefaultRows
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}

	return c
}

// FetchStations retrieves up to rows station records in one request.
// A response without a records list yields an empty snapshot.
func (c *OpenDataClient) FetchStations(ctx context.Context) ([]models.Station, error) {
	requestURL, err := c.requestURL()
	if err != nil {
		return nil, transportError("building request URL", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, transportError("creating request", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("fetching stations", "url", requestURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("station request failed", "err", err)
		return nil, transportError("requesting stations", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Error("station API error", "status", resp.StatusCode)
		return nil, apiError(resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.logger.Error("decoding station response", "err", err)
		return nil, transportError("decoding response", err)
	}

	stations := make([]models.Station, 0, len(body.Records))
	for _, rec := range body.Records {
		stations = append(stations, rec.Fields.toStation())
	}

	c.logger.Info("stations fetched", "count", len(stations))
	return stations, nil
}

// requestURL merges dataset and rows into the configured endpoint, keeping
// any query parameters it already carries.
func (c *OpenDataClient) requestURL() (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", err
	}

	params := u.Query()
	params.Set("dataset", c.dataset)
	params.Set("rows", strconv.Itoa(c.rows))
	u.RawQuery = params.Encode()

	return u.String(), nil
}
