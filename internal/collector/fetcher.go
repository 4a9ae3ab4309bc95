package collector

import (
	"time"

	"VixSentinel/internal/model"
)

// Fetcher defines the interface for fetching market data. Implementations
// must return an empty slice, not an error, for tickers the source does not
// recognize or windows with no data, so callers can skip absent contracts.
type Fetcher interface {
	FetchDailyCloses(ticker string, start, end time.Time) ([]model.PricePoint, error)
	Name() string
}
