package series

import (
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Resample regroups the series into non-overlapping calendar buckets and
// replaces each bucket with the arithmetic mean of the values falling inside
// it. Recognized rules: "D" (calendar day), "W" (ISO week starting Monday),
// "M" (calendar month). Buckets between the first and last observation with
// no values produce NaN. Returns a new Series keyed by bucket start.
func (s *Series) Resample(rule string) (*Series, error) {
	if rule != "D" && rule != "W" && rule != "M" {
		return nil, fmt.Errorf("unknown resample rule %q", rule)
	}
	if s.Len() == 0 {
		return &Series{}, nil
	}

	first := bucketStart(s.times[0], rule)
	last := bucketStart(s.times[len(s.times)-1], rule)

	var times []time.Time
	var values []float64
	i := 0
	for b := first; !b.After(last); b = nextBucket(b, rule) {
		end := nextBucket(b, rule)
		var bucket []float64
		for i < len(s.times) && s.times[i].Before(end) {
			bucket = append(bucket, s.values[i])
			i++
		}
		times = append(times, b)
		if len(bucket) == 0 {
			values = append(values, math.NaN())
		} else {
			values = append(values, stat.Mean(bucket, nil))
		}
	}
	return New(times, values)
}

// bucketStart truncates t to the start of its calendar bucket.
func bucketStart(t time.Time, rule string) time.Time {
	y, m, d := t.Date()
	switch rule {
	case "W":
		// back up to Monday
		offset := (int(t.Weekday()) + 6) % 7
		return time.Date(y, m, d-offset, 0, 0, 0, 0, t.Location())
	case "M":
		return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
	default:
		return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	}
}

func nextBucket(b time.Time, rule string) time.Time {
	switch rule {
	case "W":
		return b.AddDate(0, 0, 7)
	case "M":
		return b.AddDate(0, 1, 0)
	default:
		return b.AddDate(0, 0, 1)
	}
}
