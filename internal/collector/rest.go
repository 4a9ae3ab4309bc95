package collector

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"time"

	"VixSentinel/internal/model"
)

// RESTFetcher implements Fetcher against a self-hosted market-data REST API,
// for deployments that proxy or cache quotes instead of hitting Yahoo directly.
type RESTFetcher struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

// NewRESTFetcher creates a new fetcher with optional proxy support.
func NewRESTFetcher(baseURL, apiKey, proxyURL string) *RESTFetcher {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &RESTFetcher{
		BaseURL: baseURL,
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout:   30 * time.Second,
			Transport: transport,
		},
	}
}

func (f *RESTFetcher) Name() string { return "rest" }

// restClose is the expected JSON shape from the closes endpoint.
type restClose struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Close float64 `json:"close"`
}

func (f *RESTFetcher) FetchDailyCloses(ticker string, start, end time.Time) ([]model.PricePoint, error) {
	endpoint := fmt.Sprintf("%s/api/v1/closes?ticker=%s&start=%s&end=%s",
		f.BaseURL, url.QueryEscape(ticker),
		start.Format("2006-01-02"), end.Format("2006-01-02"))

	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return nil, err
	}
	if f.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+f.APIKey)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rest fetch: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("rest read body: %w", err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, nil // unknown ticker
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rest: status %d, body: %s", resp.StatusCode, string(body))
	}

	var closes []restClose
	if err := json.Unmarshal(body, &closes); err != nil {
		return nil, fmt.Errorf("rest decode: %w", err)
	}

	points := make([]model.PricePoint, 0, len(closes))
	for _, c := range closes {
		day, err := time.ParseInLocation("2006-01-02", c.Date, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("rest bad date %q: %w", c.Date, err)
		}
		points = append(points, model.PricePoint{Time: day, Close: c.Close})
	}

	sort.Slice(points, func(i, j int) bool { return points[i].Time.Before(points[j].Time) })
	return points, nil
}
