package series

import (
	"errors"
	"testing"
	"time"
)

func day(d int) time.Time {
	return time.Date(2023, 1, d, 0, 0, 0, 0, time.UTC)
}

func mustSeries(t *testing.T, times []time.Time, values []float64) *Series {
	t.Helper()
	s, err := New(times, values)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func daily(t *testing.T, startDay int, values ...float64) *Series {
	t.Helper()
	times := make([]time.Time, len(values))
	for i := range values {
		times[i] = day(startDay + i)
	}
	return mustSeries(t, times, values)
}

func TestNew_RejectsZeroTimestamp(t *testing.T) {
	_, err := New([]time.Time{day(1), {}}, []float64{1, 2})
	if !errors.Is(err, ErrInvalidIndex) {
		t.Fatalf("expected ErrInvalidIndex, got %v", err)
	}
}

func TestNew_RejectsLengthMismatch(t *testing.T) {
	if _, err := New([]time.Time{day(1)}, []float64{1, 2}); err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
}

func TestNew_SortsByTimestamp(t *testing.T) {
	s := mustSeries(t,
		[]time.Time{day(3), day(1), day(2)},
		[]float64{30, 10, 20})

	want := []float64{10, 20, 30}
	for i, v := range s.Values() {
		if v != want[i] {
			t.Errorf("position %d: got %v, want %v", i, v, want[i])
		}
	}
	if !s.Start().Equal(day(1)) || !s.End().Equal(day(3)) {
		t.Errorf("range %s..%s, want day 1..3", s.Start(), s.End())
	}
}

func TestSeries_Immutable(t *testing.T) {
	times := []time.Time{day(1), day(2)}
	values := []float64{1, 2}
	s := mustSeries(t, times, values)

	// mutate the inputs and an accessor result; the series must not change
	values[0] = 99
	times[1] = day(9)
	s.Values()[1] = 99

	if got := s.Values()[0]; got != 1 {
		t.Errorf("value 0 changed to %v", got)
	}
	if got := s.Values()[1]; got != 2 {
		t.Errorf("value 1 changed to %v", got)
	}
	if !s.End().Equal(day(2)) {
		t.Errorf("end changed to %s", s.End())
	}
}

func TestEmptySeries(t *testing.T) {
	s := mustSeries(t, nil, nil)
	if s.Len() != 0 {
		t.Fatalf("expected empty series, got len %d", s.Len())
	}
	if !s.Start().IsZero() || !s.End().IsZero() {
		t.Error("expected zero start/end for empty series")
	}
}

func TestString(t *testing.T) {
	s := daily(t, 1, 1, 2, 3)
	want := "Series(length=3, start=2023-01-01, end=2023-01-03)"
	if got := s.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestAlignWith_IntersectionCount(t *testing.T) {
	a := daily(t, 1, 1, 2, 3, 4, 5) // days 1-5
	b := daily(t, 4, 9, 9, 9, 9)    // days 4-7

	aligned := a.AlignWith(b)
	if aligned.Len() != 2 {
		t.Fatalf("expected 2 aligned rows (days 4, 5), got %d", aligned.Len())
	}
	if !aligned.Times[0].Equal(day(4)) || !aligned.Times[1].Equal(day(5)) {
		t.Errorf("aligned dates %v, want days 4 and 5", aligned.Times)
	}
	if aligned.Series1[0] != 4 || aligned.Series2[0] != 9 {
		t.Errorf("row 0 = (%v, %v), want (4, 9)", aligned.Series1[0], aligned.Series2[0])
	}
}

func TestAlignWith_Disjoint(t *testing.T) {
	a := daily(t, 1, 1, 2)
	b := daily(t, 10, 3, 4)
	if n := a.AlignWith(b).Len(); n != 0 {
		t.Fatalf("expected empty alignment, got %d rows", n)
	}
}
