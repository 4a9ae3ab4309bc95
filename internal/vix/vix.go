// Package vix fetches volatility-index series and classifies VIX futures
// term structures.
package vix

import (
	"errors"
	"fmt"
	"time"

	"VixSentinel/internal/collector"
	"VixSentinel/internal/series"
)

// ErrUnknownVIXType is returned for a vix variant outside the recognized set.
var ErrUnknownVIXType = errors.New("unknown vix type")

// indexTickers maps recognized volatility-index variants to their tickers.
var indexTickers = map[string]string{
	"regular": "^VIX",
	"vix9d":   "^VIX9D",
	"vix1d":   "^VIX1D",
}

// futuresTickers are the eight continuous VIX futures contracts, front month
// through eighth month.
var futuresTickers = [8]string{
	"^VX1", "^VX2", "^VX3", "^VX4", "^VX5", "^VX6", "^VX7", "^VX8",
}

// KnownType reports whether vixType names a recognized index variant.
func KnownType(vixType string) bool {
	_, ok := indexTickers[vixType]
	return ok
}

// Service performs volatility-data retrieval and analysis through a Fetcher.
type Service struct {
	Fetcher collector.Fetcher
}

// NewService creates a new Service.
func NewService(fetcher collector.Fetcher) *Service {
	return &Service{Fetcher: fetcher}
}

// FetchVIXSeries retrieves the named volatility-index close series over the
// calendar range spanned by s. Recognized vix types are "regular", "vix9d",
// and "vix1d"; anything else fails with ErrUnknownVIXType before any network
// call. Fetch failures pass through unchanged; there are no retries.
func (v *Service) FetchVIXSeries(s *series.Series, vixType string) (*series.Series, error) {
	ticker, ok := indexTickers[vixType]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want regular, vix9d, or vix1d)", ErrUnknownVIXType, vixType)
	}
	if s.Len() == 0 {
		return nil, errors.New("empty series: no date range to fetch")
	}
	return v.fetchSeries(ticker, s.Start(), s.End())
}

// FetchVIXSeriesRange is FetchVIXSeries with an explicit calendar window
// instead of one inherited from an existing series.
func (v *Service) FetchVIXSeriesRange(vixType string, start, end time.Time) (*series.Series, error) {
	ticker, ok := indexTickers[vixType]
	if !ok {
		return nil, fmt.Errorf("%w: %q (want regular, vix9d, or vix1d)", ErrUnknownVIXType, vixType)
	}
	return v.fetchSeries(ticker, start, end)
}

func (v *Service) fetchSeries(ticker string, start, end time.Time) (*series.Series, error) {
	points, err := v.Fetcher.FetchDailyCloses(ticker, start, end)
	if err != nil {
		return nil, err
	}
	return series.FromPoints(points)
}
