// README: OpenWeatherMap forecast lookup with deterministic degradation.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// NearTermWindow is how far ahead the live forecast is attempted. Beyond it
// the caller degrades to seasonal estimation.
const NearTermWindow = 5 * 24 * time.Hour

// Observation is a single forecast entry for the trip's first day.
type Observation struct {
	Description string
	TempC       float64
}

// Line renders the observation as the context sentence fed into prompts.
func (o Observation) Line(city string, date time.Time) string {
	return fmt.Sprintf("Real-time forecast for %s on %s: %s, %.0f°C.",
		city, date.Format("2006-01-02"), o.Description, o.TempC)
}

// Client calls the OpenWeatherMap 5-day forecast API. A zero API key makes
// every lookup unavailable, which is a valid degraded configuration.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	now     func() time.Time
}

func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "https://api.openweathermap.org/data/2.5/forecast"
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		now:     time.Now,
	}
}

// Lookup returns the forecast for city on date, or ok=false when the date is
// outside the near-term window or anything at all goes wrong upstream. It
// never returns an error: unavailability is a fallback signal, not a failure
// to surface.
func (c *Client) Lookup(ctx context.Context, city string, date time.Time) (Observation, bool) {
	if c.apiKey == "" {
		return Observation{}, false
	}
	// Day granularity: a trip starting today stays inside the window no
	// matter the time of day.
	delta := truncateDay(date).Sub(truncateDay(c.now()))
	if delta < 0 || delta > NearTermWindow {
		return Observation{}, false
	}

	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return Observation{}, false
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return Observation{}, false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Observation{}, false
	}

	var body struct {
		Cod  json.Number `json:"cod"`
		List []struct {
			Main struct {
				Temp float64 `json:"temp"`
			} `json:"main"`
			Weather []struct {
				Description string `json:"description"`
			} `json:"weather"`
		} `json:"list"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Observation{}, false
	}
	if body.Cod.String() != "200" || len(body.List) == 0 || len(body.List[0].Weather) == 0 {
		return Observation{}, false
	}

	return Observation{
		Description: body.List[0].Weather[0].Description,
		TempC:       body.List[0].Main.Temp,
	}, true
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
