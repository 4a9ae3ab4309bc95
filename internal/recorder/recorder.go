package recorder

import (
	"time"

	"VixSentinel/internal/model"
)

// DependenceStats holds one day's dependence measurements between the
// monitored index pair.
type DependenceStats struct {
	Correlation       float64
	MutualInformation float64
	Points            int // aligned observations behind the measurements
}

// Recorder persists historical analysis results.
type Recorder interface {
	RecordTermStructure(date time.Time, ts model.TermStructure) error
	RecordShape(p model.ShapePoint) error
	RecordDependence(date time.Time, stats *DependenceStats) error
	Close() error
}
