package ledger

import "github.com/andresuchdata/printfloor/internal/domain"

// DefaultTimeSlots are the shift's hourly slot labels.
var DefaultTimeSlots = []string{
	"08:30 - 09:30", "09:30 - 10:30", "10:30 - 11:30",
	"11:30 - 12:30", "12:30 - 01:30", "01:30 - 02:30",
	"02:30 - 03:30", "03:30 - 04:30", "04:30 - 05:30", "05:30 - 06:30",
}

// Grid is the working buffer of hourly counters. It is owned by exactly one
// Ledger and is never handed out; readers get a Snapshot.
type Grid struct {
	rows []domain.HourlyProduction
}

// NewGrid creates a zeroed grid with one row per label.
func NewGrid(labels []string) *Grid {
	rows := make([]domain.HourlyProduction, len(labels))
	for i, label := range labels {
		rows[i].TimeSlot = label
	}
	return &Grid{rows: rows}
}

// Len returns the number of time slots.
func (g *Grid) Len() int { return len(g.rows) }

func (g *Grid) inRange(slot int) bool { return slot >= 0 && slot < len(g.rows) }

func (g *Grid) set(slot int, field domain.CounterField, value int) {
	g.rows[slot].Set(field, value)
}

func (g *Grid) setLabel(slot int, label string) {
	g.rows[slot].TimeSlot = label
}

// Snapshot returns a copy of the rows that shares no memory with the grid.
func (g *Grid) Snapshot() []domain.HourlyProduction {
	return append([]domain.HourlyProduction(nil), g.rows...)
}

// Reset zeroes every counter and keeps the slot labels.
func (g *Grid) Reset() {
	for i := range g.rows {
		g.rows[i] = domain.HourlyProduction{TimeSlot: g.rows[i].TimeSlot}
	}
}
