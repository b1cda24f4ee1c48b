package fit

import "math"

// DataPoint is one row of a dose-response table: a concentration and the
// measured response of every sample column at that concentration.
//
// SampleNames and ReplicateGroups are denormalized onto every row and must
// be identical across the rows of one table; readers treat the first row as
// authoritative. ReplicateGroups is optional (nil means no explicit
// grouping) and, when present, carries one group label per sample column.
type DataPoint struct {
	Concentration   float64
	Responses       []float64
	SampleNames     []string
	ReplicateGroups []string
}

// Table is an ordered collection of rows sharing the same sample columns.
type Table []DataPoint

// Columns returns the number of sample columns, taken from the first row's
// sample names.
func (t Table) Columns() int {
	if len(t) == 0 {
		return 0
	}

	return len(t[0].SampleNames)
}

// SampleNames returns the table's column labels, or nil for an empty table.
func (t Table) SampleNames() []string {
	if len(t) == 0 {
		return nil
	}

	return t[0].SampleNames
}

// ReplicateGroupLabels returns the table's replicate-group labels, or nil
// when no explicit grouping was supplied.
func (t Table) ReplicateGroupLabels() []string {
	if len(t) == 0 {
		return nil
	}

	return t[0].ReplicateGroups
}

// Concentrations returns the concentration of every row in row order.
func (t Table) Concentrations() []float64 {
	concs := make([]float64, len(t))
	for i, row := range t {
		concs[i] = row.Concentration
	}

	return concs
}

// response returns the cell of column j, or NaN when the row carries fewer
// response cells than the table has columns.
func (d DataPoint) response(j int) float64 {
	if j < 0 || j >= len(d.Responses) {
		return math.NaN()
	}

	return d.Responses[j]
}

// responseColumn extracts column j across all rows, padding short rows
// with NaN.
func (t Table) responseColumn(j int) []float64 {
	col := make([]float64, len(t))
	for i, row := range t {
		col[i] = row.response(j)
	}

	return col
}
