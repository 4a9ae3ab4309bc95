package collector

import (
	"time"

	"VixSentinel/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
// Data maps ticker to its full close history; FetchDailyCloses filters by the
// requested window. Calls records every (ticker, start, end) request.
type MockFetcher struct {
	Data  map[string][]model.PricePoint
	Err   error
	Calls []MockCall
}

// MockCall is one recorded FetchDailyCloses invocation.
type MockCall struct {
	Ticker     string
	Start, End time.Time
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyCloses(ticker string, start, end time.Time) ([]model.PricePoint, error) {
	m.Calls = append(m.Calls, MockCall{Ticker: ticker, Start: start, End: end})
	if m.Err != nil {
		return nil, m.Err
	}
	var points []model.PricePoint
	for _, p := range m.Data[ticker] {
		if p.Time.Before(start) || p.Time.After(end) {
			continue
		}
		points = append(points, p)
	}
	return points, nil
}

// GenerateMockCloses produces count consecutive daily closes ending today,
// drifting around basePrice.
func GenerateMockCloses(basePrice float64, count int) []model.PricePoint {
	points := make([]model.PricePoint, count)
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	for i := 0; i < count; i++ {
		points[i] = model.PricePoint{
			Time:  today.AddDate(0, 0, -(count - 1 - i)),
			Close: basePrice * (1 + float64(i-count/2)*0.001),
		}
	}
	return points
}
