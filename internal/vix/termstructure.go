package vix

import (
	"fmt"
	"time"

	"VixSentinel/internal/model"
	"VixSentinel/internal/series"
)

// FuturesTermStructure queries the eight monthly futures contracts for their
// closing price on date and returns the curve in contract-month order.
// Contracts with no data that date are skipped and the surviving points are
// relabeled "Month 1".."Month K": a gap in month 3 shifts the labels of the
// later months. Callers must treat labels as curve position, not contract
// identity.
func (v *Service) FuturesTermStructure(date time.Time) (model.TermStructure, error) {
	var ts model.TermStructure
	for _, ticker := range futuresTickers {
		points, err := v.Fetcher.FetchDailyCloses(ticker, date, date)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", ticker, err)
		}
		if len(points) == 0 {
			continue // contract not traded that date
		}
		ts = append(ts, model.TermPoint{
			Label: fmt.Sprintf("Month %d", len(ts)+1),
			Price: points[len(points)-1].Close,
		})
	}
	return ts, nil
}

// TermStructureType classifies a curve by its endpoints alone: "contango"
// when the first price is strictly below the last, "backwardation" when
// strictly above, and "undefined" for fewer than 2 points or equal ends.
// Intermediate points are ignored, so a non-monotonic curve still classifies
// by its boundary values.
func TermStructureType(ts model.TermStructure) model.TermShape {
	if len(ts) < 2 {
		return model.ShapeUndefined
	}
	first, last := ts[0].Price, ts[len(ts)-1].Price
	switch {
	case first < last:
		return model.ShapeContango
	case first > last:
		return model.ShapeBackwardation
	default:
		return model.ShapeUndefined
	}
}

// GenerateTermStructureSeries computes and classifies the futures term
// structure for every timestamp in s, in order. Each timestamp costs one
// full contract sweep (8 fetches); there is no batching or caching across
// dates. The result always has exactly s.Len() entries.
func (v *Service) GenerateTermStructureSeries(s *series.Series) ([]model.ShapePoint, error) {
	shapes := make([]model.ShapePoint, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		t, _ := s.At(i)
		ts, err := v.FuturesTermStructure(t)
		if err != nil {
			return nil, fmt.Errorf("term structure for %s: %w", t.Format("2006-01-02"), err)
		}
		shapes = append(shapes, model.ShapePoint{Time: t, Shape: TermStructureType(ts)})
	}
	return shapes, nil
}
