package recorder

import (
	"database/sql"
	"math"
	"path/filepath"
	"testing"
	"time"

	"VixSentinel/internal/model"
)

func openTestRecorder(t *testing.T) *SQLiteRecorder {
	t.Helper()
	r, err := NewSQLiteRecorder(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("NewSQLiteRecorder: %v", err)
	}
	t.Cleanup(func() { r.Close() })
	return r
}

func TestSQLiteRecorder_TermStructure(t *testing.T) {
	r := openTestRecorder(t)
	date := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)

	ts := model.TermStructure{
		{Label: "Month 1", Price: 20.0},
		{Label: "Month 2", Price: 21.5},
	}
	if err := r.RecordTermStructure(date, ts); err != nil {
		t.Fatalf("RecordTermStructure: %v", err)
	}

	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM term_structures WHERE date = ?`, date.Unix()).Scan(&count); err != nil {
		t.Fatalf("query: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 rows, got %d", count)
	}
}

func TestSQLiteRecorder_DependenceNaN(t *testing.T) {
	r := openTestRecorder(t)
	date := time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC)

	err := r.RecordDependence(date, &DependenceStats{
		Correlation:       math.NaN(),
		MutualInformation: 0.42,
		Points:            0,
	})
	if err != nil {
		t.Fatalf("RecordDependence: %v", err)
	}

	var corr sql.NullFloat64
	var mi float64
	if err := r.db.QueryRow(`SELECT correlation, mutual_info FROM dependence_stats`).Scan(&corr, &mi); err != nil {
		t.Fatalf("query: %v", err)
	}
	if corr.Valid {
		t.Errorf("expected NaN correlation stored as NULL, got %v", corr.Float64)
	}
	if mi != 0.42 {
		t.Errorf("mutual_info = %v, want 0.42", mi)
	}
}

func TestSQLiteRecorder_Shape(t *testing.T) {
	r := openTestRecorder(t)
	p := model.ShapePoint{
		Time:  time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		Shape: model.ShapeContango,
	}
	if err := r.RecordShape(p); err != nil {
		t.Fatalf("RecordShape: %v", err)
	}

	var shape string
	if err := r.db.QueryRow(`SELECT shape FROM shape_history`).Scan(&shape); err != nil {
		t.Fatalf("query: %v", err)
	}
	if shape != "contango" {
		t.Errorf("shape = %q, want contango", shape)
	}
}
