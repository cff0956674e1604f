package gradient

import (
	"errors"
	"fmt"
)

// Color channels are in the 0-255 range but are kept as unrounded floats;
// nothing here clamps them.
type Color [3]float64

const (
	RED   = 0
	GREEN = 1
	BLUE  = 2
)

// Stop anchors a color at a temperature
type Stop struct {
	T     float64
	Color Color
}

// Table is a list of stops sorted by strictly increasing T
type Table []Stop

var ErrEmptyTable = errors.New("gradient: table has no stops")
var ErrUnsortedTable = errors.New("gradient: stop thresholds must be strictly increasing")

func NewTable(stops ...Stop) (Table, error) {
	if len(stops) == 0 {
		return nil, ErrEmptyTable
	}
	for i := 1; i < len(stops); i++ {
		if stops[i].T <= stops[i-1].T {
			return nil, fmt.Errorf("%w: stop %d (%v) after %v", ErrUnsortedTable, i, stops[i].T, stops[i-1].T)
		}
	}
	var table = make(Table, len(stops))
	copy(table, stops)
	return table, nil
}

func MustTable(stops ...Stop) Table {
	table, err := NewTable(stops...)
	if err != nil {
		panic(err)
	}
	return table
}

var (
	Blue   = Color{0, 0, 255}
	Teal   = Color{4, 226, 211}
	Yellow = Color{238, 255, 0}
	Red    = Color{255, 0, 0}
)

// Temperatures is the cold-to-hot scale used by the picker
var Temperatures = MustTable(
	Stop{-10, Blue},
	Stop{10, Teal},
	Stop{30, Yellow},
	Stop{50, Red},
)

// Lerp moves from c1 towards c2 by alpha, channel by channel.
func Lerp(c1 Color, c2 Color, alpha float64) Color {
	var out Color
	for i := range out {
		out[i] = (c2[i]-c1[i])*alpha + c1[i]
	}
	return out
}

// Bracket returns the stops surrounding t. Past either end of the table both
// results are the same boundary stop.
func (table Table) Bracket(t float64) (lower Stop, upper Stop) {
	lower = table[0]
	upper = table[0]
	for i := range table {
		if t >= table[i].T {
			lower = table[i]
			if i+1 < len(table) {
				upper = table[i+1]
			} else {
				upper = lower
			}
		}
	}
	return lower, upper
}

// At returns the color for temperature t. Values outside the table saturate
// at the first or last stop.
func (table Table) At(t float64) Color {
	lower, upper := table.Bracket(t)

	var alpha float64
	span := upper.T - lower.T
	// lower == upper at (or past) the ends of the table
	if span != 0 {
		alpha = min(1, max(0, (t-lower.T)/span))
	}
	return Lerp(lower.Color, upper.Color, alpha)
}

// Min and Max are the first and last thresholds
func (table Table) Min() float64 {
	return table[0].T
}

func (table Table) Max() float64 {
	return table[len(table)-1].T
}
