package model

import "time"

// TermPoint is one futures contract on the curve: a month label and its close.
type TermPoint struct {
	Label string
	Price float64
}

// TermStructure is an ordered curve of futures prices for successive
// contract months on a single date, front month first.
type TermStructure []TermPoint

// TermShape classifies the overall shape of a term structure.
type TermShape string

const (
	ShapeContango      TermShape = "contango"
	ShapeBackwardation TermShape = "backwardation"
	ShapeUndefined     TermShape = "undefined"
)

// ShapePoint is a dated term-structure classification.
type ShapePoint struct {
	Time  time.Time
	Shape TermShape
}
