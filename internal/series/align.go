package series

import "time"

// Aligned is the inner join of two series on their shared timestamps,
// ascending. It is a transient result consumed by the statistics functions.
type Aligned struct {
	Times   []time.Time
	Series1 []float64
	Series2 []float64
}

// Len returns the number of aligned rows.
func (a Aligned) Len() int { return len(a.Times) }

// AlignWith restricts s and other to the timestamps present in both and
// returns the matched columns in ascending timestamp order. Timestamps are
// compared by instant. When the other series carries duplicate timestamps the
// last occurrence wins; row order on duplicates is undefined.
func (s *Series) AlignWith(other *Series) Aligned {
	lookup := make(map[int64]float64, other.Len())
	for i, t := range other.times {
		lookup[t.UnixNano()] = other.values[i]
	}

	a := Aligned{}
	for i, t := range s.times {
		v2, ok := lookup[t.UnixNano()]
		if !ok {
			continue
		}
		a.Times = append(a.Times, t)
		a.Series1 = append(a.Series1, s.values[i])
		a.Series2 = append(a.Series2, v2)
	}
	return a
}
