package recorder

import (
	"time"

	"VixSentinel/internal/model"
)

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordTermStructure(_ time.Time, _ model.TermStructure) error { return nil }
func (n *NoopRecorder) RecordShape(_ model.ShapePoint) error                         { return nil }
func (n *NoopRecorder) RecordDependence(_ time.Time, _ *DependenceStats) error       { return nil }
func (n *NoopRecorder) Close() error                                                 { return nil }
