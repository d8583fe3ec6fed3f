package entity

import (
	"github.com/google/uuid"
)

// Curve is one named log curve owned by exactly one WellFile. Depths and
// Values align 1:1; missing readings keep the file's null sentinel.
type Curve struct {
	Id          uuid.UUID
	FileId      uuid.UUID
	Name        string
	Unit        string
	Description string
	Position    int // declaration order within the file

	Depths []float64
	Values []float64

	SampleCount int
	MinValue    *float64
	MaxValue    *float64
	MeanValue   *float64
}

// Window returns the (depths, values) pairs whose depth lies in
// [start, end], preserving sample order and null sentinels. An empty window
// yields empty (non-nil) slices.
func (c *Curve) Window(start, end float64) ([]float64, []float64) {
	depths := make([]float64, 0)
	values := make([]float64, 0)
	for i, d := range c.Depths {
		if d >= start && d <= end {
			depths = append(depths, d)
			values = append(values, c.Values[i])
		}
	}
	return depths, values
}
