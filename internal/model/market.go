package model

import "time"

// PricePoint is a single dated closing price.
type PricePoint struct {
	Time  time.Time
	Close float64
}

// Closes extracts the close values from a point slice, preserving order.
func Closes(points []PricePoint) []float64 {
	closes := make([]float64, len(points))
	for i, p := range points {
		closes[i] = p.Close
	}
	return closes
}
