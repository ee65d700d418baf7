package weatherapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/sony/gobreaker"
)

const defaultBaseURL = "https://api.weatherapi.com/v1"

// Client talks to WeatherAPI.com. The query passed to each call is
// either a free-text place name or a "<lat>,<lon>" pair; the client
// passes it through verbatim and lets the upstream decide whether the
// location exists.
type Client struct {
	apiKey  string
	baseURL string
	httpCfg HTTPClientConfig
	circuit *gobreaker.CircuitBreaker
}

// NewClient creates a WeatherAPI client on the given HTTP client.
// Refreshes are single-attempt: a failed call surfaces immediately
// rather than being retried.
func NewClient(client *http.Client, apiKey string) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "weatherapi",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		httpCfg: HTTPClientConfig{
			Client: client,
			Backoff: BackoffConfig{
				MaxRetries:      0,
				InitialInterval: 500 * time.Millisecond,
			},
		},
		circuit: cb,
	}
}

// Current fetches current conditions for the query.
func (c *Client) Current(ctx context.Context, query string) (*Snapshot, error) {
	values := url.Values{}
	values.Set("key", c.apiKey)
	values.Set("q", query)
	values.Set("aqi", "no")

	var snap Snapshot
	if err := c.getJSON(ctx, "/current.json", values, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// Forecast fetches the aggregate forecast for the next `days` days.
func (c *Client) Forecast(ctx context.Context, query string, days int) ([]ForecastDay, error) {
	values := url.Values{}
	values.Set("key", c.apiKey)
	values.Set("q", query)
	values.Set("days", strconv.Itoa(days))
	values.Set("aqi", "no")
	values.Set("alerts", "no")

	var payload struct {
		Forecast struct {
			ForecastDay []ForecastDay `json:"forecastday"`
		} `json:"forecast"`
	}
	if err := c.getJSON(ctx, "/forecast.json", values, &payload); err != nil {
		return nil, err
	}
	return payload.Forecast.ForecastDay, nil
}

// History fetches the aggregate actuals for a single past date.
func (c *Client) History(ctx context.Context, query string, date time.Time) (*HistoryDay, error) {
	values := url.Values{}
	values.Set("key", c.apiKey)
	values.Set("q", query)
	values.Set("dt", date.Format("2006-01-02"))

	var payload struct {
		Forecast struct {
			ForecastDay []HistoryDay `json:"forecastday"`
		} `json:"forecast"`
	}
	if err := c.getJSON(ctx, "/history.json", values, &payload); err != nil {
		return nil, err
	}
	if len(payload.Forecast.ForecastDay) == 0 {
		return nil, fmt.Errorf("history response for %s contained no days", date.Format("2006-01-02"))
	}
	return &payload.Forecast.ForecastDay[0], nil
}

// HistoryRange fetches the `days` days immediately preceding now as
// independent per-date requests issued concurrently. Results preserve
// request order, most recent day first. Any single failure fails the
// whole range.
func (c *Client) HistoryRange(ctx context.Context, query string, days int) ([]HistoryDay, error) {
	results := make([]*HistoryDay, days)
	errs := make([]error, days)
	now := time.Now()

	var wg sync.WaitGroup
	for i := 0; i < days; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = c.History(ctx, query, now.AddDate(0, 0, -(i+1)))
		}(i)
	}
	wg.Wait()

	out := make([]HistoryDay, 0, days)
	for i := 0; i < days; i++ {
		if errs[i] != nil {
			return nil, errs[i]
		}
		out = append(out, *results[i])
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, values url.Values, out interface{}) error {
	buildRequest := func() (*http.Request, error) {
		u := fmt.Sprintf("%s%s?%s", c.baseURL, path, values.Encode())
		return http.NewRequest(http.MethodGet, u, nil)
	}

	resp, err := doRequest(ctx, c.httpCfg, c.circuit, buildRequest)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	return json.NewDecoder(resp.Body).Decode(out)
}
