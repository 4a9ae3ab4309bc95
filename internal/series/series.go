// Package series provides the date-indexed time series value type and its
// alignment, statistics, and resampling operations.
package series

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"VixSentinel/internal/model"
)

// ErrInvalidIndex is returned when a series is constructed with anything
// other than valid calendar timestamps as its index.
var ErrInvalidIndex = errors.New("series must be indexed by timestamps")

// Series is an immutable date-indexed numeric series, sorted ascending by
// timestamp. All transforming operations return a new Series; no method
// mutates the receiver after construction.
type Series struct {
	times  []time.Time
	values []float64
}

// New builds a Series from parallel timestamp and value slices. The input is
// copied and sorted ascending by timestamp; duplicate timestamps are kept.
// Fails with ErrInvalidIndex if any timestamp is the zero time.
func New(times []time.Time, values []float64) (*Series, error) {
	if len(times) != len(values) {
		return nil, fmt.Errorf("series: %d timestamps for %d values", len(times), len(values))
	}
	for i, t := range times {
		if t.IsZero() {
			return nil, fmt.Errorf("%w: zero timestamp at position %d", ErrInvalidIndex, i)
		}
	}

	idx := make([]int, len(times))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool {
		return times[idx[i]].Before(times[idx[j]])
	})

	s := &Series{
		times:  make([]time.Time, len(times)),
		values: make([]float64, len(values)),
	}
	for i, j := range idx {
		s.times[i] = times[j]
		s.values[i] = values[j]
	}
	return s, nil
}

// FromPoints builds a Series from dated closing prices.
func FromPoints(points []model.PricePoint) (*Series, error) {
	times := make([]time.Time, len(points))
	for i, p := range points {
		times[i] = p.Time
	}
	return New(times, model.Closes(points))
}

// Len returns the number of observations.
func (s *Series) Len() int { return len(s.values) }

// Start returns the earliest timestamp, or the zero time for an empty series.
func (s *Series) Start() time.Time {
	if len(s.times) == 0 {
		return time.Time{}
	}
	return s.times[0]
}

// End returns the latest timestamp, or the zero time for an empty series.
func (s *Series) End() time.Time {
	if len(s.times) == 0 {
		return time.Time{}
	}
	return s.times[len(s.times)-1]
}

// Times returns a copy of the timestamps in ascending order.
func (s *Series) Times() []time.Time {
	out := make([]time.Time, len(s.times))
	copy(out, s.times)
	return out
}

// Values returns a copy of the values in timestamp order.
func (s *Series) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out
}

// At returns the i-th observation in timestamp order.
func (s *Series) At(i int) (time.Time, float64) {
	return s.times[i], s.values[i]
}

func (s *Series) String() string {
	return fmt.Sprintf("Series(length=%d, start=%s, end=%s)",
		s.Len(), s.Start().Format("2006-01-02"), s.End().Format("2006-01-02"))
}
