package domain

import "strings"

// CounterField names one of the seven hourly counters.
type CounterField string

const (
	FieldSeating  CounterField = "seating"
	FieldPrinting CounterField = "printing"
	FieldCuring   CounterField = "curing"
	FieldChecking CounterField = "checking"
	FieldPacking  CounterField = "packing"
	FieldDispatch CounterField = "dispatch"
	FieldRejects  CounterField = "rejects"
)

// CounterFields lists the counters in grid column order.
var CounterFields = []CounterField{
	FieldSeating, FieldPrinting, FieldCuring, FieldChecking, FieldPacking, FieldDispatch, FieldRejects,
}

// ParseCounterField returns the counter for a column name (case-insensitive).
func ParseCounterField(name string) (CounterField, bool) {
	f := CounterField(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range CounterFields {
		if f == known {
			return f, true
		}
	}
	return "", false
}

// Get returns the value of a counter.
func (h HourlyProduction) Get(field CounterField) int {
	switch field {
	case FieldSeating:
		return h.Seating
	case FieldPrinting:
		return h.Printing
	case FieldCuring:
		return h.Curing
	case FieldChecking:
		return h.Checking
	case FieldPacking:
		return h.Packing
	case FieldDispatch:
		return h.Dispatch
	case FieldRejects:
		return h.Rejects
	}
	return 0
}

// Set assigns a counter. Unknown fields are ignored.
func (h *HourlyProduction) Set(field CounterField, value int) {
	switch field {
	case FieldSeating:
		h.Seating = value
	case FieldPrinting:
		h.Printing = value
	case FieldCuring:
		h.Curing = value
	case FieldChecking:
		h.Checking = value
	case FieldPacking:
		h.Packing = value
	case FieldDispatch:
		h.Dispatch = value
	case FieldRejects:
		h.Rejects = value
	}
}

// SumHourly returns the column sums of rows. TimeSlot is left empty.
func SumHourly(rows []HourlyProduction) HourlyProduction {
	var total HourlyProduction
	for _, row := range rows {
		for _, f := range CounterFields {
			total.Set(f, total.Get(f)+row.Get(f))
		}
	}
	return total
}
