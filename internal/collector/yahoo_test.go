package collector

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"VixSentinel/internal/model"
)

func testFetcher(handler http.HandlerFunc) (*YahooFetcher, *httptest.Server) {
	srv := httptest.NewServer(handler)
	f := NewYahooFetcher("")
	f.BaseURL = srv.URL
	return f, srv
}

func TestYahooFetchDailyCloses(t *testing.T) {
	// Intraday timestamps for Jan 3-5 2023; Jan 4 closed with a null bar.
	body := `{"chart":{"result":[{
		"timestamp":[1672756200,1672842600,1672929000],
		"indicators":{"quote":[{"close":[22.9,null,21.5]}]}
	}],"error":null}}`

	f, srv := testFetcher(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("interval"); got != "1d" {
			t.Errorf("interval = %q, want 1d", got)
		}
		w.Write([]byte(body))
	})
	defer srv.Close()

	points, err := f.FetchDailyCloses("^VIX",
		time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("FetchDailyCloses: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points (null bar skipped), got %d", len(points))
	}

	wantFirst := time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC)
	if !points[0].Time.Equal(wantFirst) {
		t.Errorf("first point dated %s, want midnight UTC %s", points[0].Time, wantFirst)
	}
	if points[0].Close != 22.9 || points[1].Close != 21.5 {
		t.Errorf("closes = %v, %v; want 22.9, 21.5", points[0].Close, points[1].Close)
	}
}

func TestYahooUnknownTicker(t *testing.T) {
	f, srv := testFetcher(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`))
	})
	defer srv.Close()

	points, err := f.FetchDailyCloses("^NOSUCH", time.Now().AddDate(0, 0, -1), time.Now())
	if err != nil {
		t.Fatalf("expected empty result for unknown ticker, got error: %v", err)
	}
	if len(points) != 0 {
		t.Fatalf("expected no points, got %d", len(points))
	}
}

func TestYahooEmptyWindow(t *testing.T) {
	f, srv := testFetcher(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"chart":{"result":[{"timestamp":[],"indicators":{"quote":[{"close":[]}]}}],"error":null}}`))
	})
	defer srv.Close()

	points, err := f.FetchDailyCloses("^VIX", time.Now(), time.Now())
	if err != nil {
		t.Fatalf("FetchDailyCloses: %v", err)
	}
	if len(points) != 0 {
		t.Fatalf("expected no points, got %d", len(points))
	}
}

func TestYahooShortCloseArray(t *testing.T) {
	// Three timestamps but only two closes; the trailing timestamp is dropped.
	body := `{"chart":{"result":[{
		"timestamp":[1672756200,1672842600,1672929000],
		"indicators":{"quote":[{"close":[22.9,21.5]}]}
	}],"error":null}}`

	f, srv := testFetcher(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	})
	defer srv.Close()

	points, err := f.FetchDailyCloses("^VIX",
		time.Date(2023, 1, 3, 0, 0, 0, 0, time.UTC),
		time.Date(2023, 1, 5, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("FetchDailyCloses: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[1].Close != 21.5 {
		t.Errorf("last close = %v, want 21.5", points[1].Close)
	}
}

func TestYahooServerError(t *testing.T) {
	f, srv := testFetcher(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})
	defer srv.Close()

	if _, err := f.FetchDailyCloses("^VIX", time.Now().AddDate(0, 0, -1), time.Now()); err == nil {
		t.Fatal("expected error for 429 response")
	}
}

func TestMockFetcherWindowFilter(t *testing.T) {
	points := GenerateMockCloses(20, 10)
	mock := &MockFetcher{Data: map[string][]model.PricePoint{"^VIX": points}}

	start := points[3].Time
	end := points[6].Time
	got, err := mock.FetchDailyCloses("^VIX", start, end)
	if err != nil {
		t.Fatalf("FetchDailyCloses: %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("expected 4 points inside the window, got %d", len(got))
	}
	if len(mock.Calls) != 1 || mock.Calls[0].Ticker != "^VIX" {
		t.Errorf("call not recorded: %+v", mock.Calls)
	}
}
