package report

import (
	"slices"

	"github.com/andresuchdata/printfloor/internal/domain"
)

// Matrix row metrics.
const (
	MetricProduction = "Production"
	MetricDispatch   = "Dispatch"
)

// Matrix pivots order output by calendar date.
type Matrix struct {
	Dates []string    `json:"dates"`
	Rows  []MatrixRow `json:"rows"`
}

// MatrixRow holds one metric of one order. Cells has a key only for dates
// on which the order has at least one output record, so a recorded zero
// is distinguishable from no activity.
type MatrixRow struct {
	Order  domain.Order   `json:"order"`
	Metric string         `json:"metric"`
	Cells  map[string]int `json:"cells"`
}

// Cell returns the value for date and whether anything was recorded.
func (r MatrixRow) Cell(date string) (int, bool) {
	v, ok := r.Cells[date]
	return v, ok
}

// BuildMatrix returns the dates of every output record in ascending
// order and two rows per order, Production then Dispatch.
func BuildMatrix(d Dataset) Matrix {
	dates := make([]string, 0)
	seen := make(map[string]struct{})
	for _, o := range d.Outputs {
		if _, ok := seen[o.Date]; ok {
			continue
		}
		seen[o.Date] = struct{}{}
		dates = append(dates, o.Date)
	}
	slices.Sort(dates)

	grouped := d.outputsByOrder()

	rows := make([]MatrixRow, 0, 2*len(d.Orders))
	for _, order := range d.Orders {
		production := make(map[string]int)
		dispatch := make(map[string]int)
		for _, o := range grouped[order.ID] {
			production[o.Date] += o.TotalPrinting
			dispatch[o.Date] += o.TotalDispatch
		}
		rows = append(rows,
			MatrixRow{Order: order, Metric: MetricProduction, Cells: production},
			MatrixRow{Order: order, Metric: MetricDispatch, Cells: dispatch},
		)
	}

	return Matrix{Dates: dates, Rows: rows}
}
