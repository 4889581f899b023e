// Package report builds the read-side production views. Every view is
// recomputed from the stores on each call; only the per-record totals
// stored on DailyOutputRecord are reused.
package report

import (
	"github.com/andresuchdata/printfloor/internal/domain"
	"github.com/shopspring/decimal"
)

// Dataset is a consistent snapshot of the stores a report reads.
type Dataset struct {
	Orders   []domain.Order
	Plans    []domain.LoadingPlanItem
	Outputs  []domain.DailyOutputRecord
	Downtime []domain.DowntimeRecord
}

// outputsByOrder groups output records under the order their plan
// points at. Outputs whose plan is gone, or whose plan points at a
// deleted order, are skipped.
func (d Dataset) outputsByOrder() map[string][]domain.DailyOutputRecord {
	orderOfPlan := make(map[string]string, len(d.Plans))
	for _, p := range d.Plans {
		orderOfPlan[p.ID] = p.OrderID
	}

	grouped := make(map[string][]domain.DailyOutputRecord)
	for _, o := range d.Outputs {
		orderID, ok := orderOfPlan[o.PlanID]
		if !ok {
			continue
		}
		grouped[orderID] = append(grouped[orderID], o)
	}
	return grouped
}

// SummaryRow is one order with its lifetime production totals.
type SummaryRow struct {
	Order         domain.Order `json:"order"`
	TotalPrint    int          `json:"total_print"`
	TotalPack     int          `json:"total_pack"`
	TotalDispatch int          `json:"total_dispatch"`
	TotalRejects  int          `json:"total_rejects"`
	RejectPct     float64      `json:"reject_pct"`
}

// Summary returns one row per order, in order store order.
func Summary(d Dataset) []SummaryRow {
	grouped := d.outputsByOrder()

	rows := make([]SummaryRow, 0, len(d.Orders))
	for _, order := range d.Orders {
		row := SummaryRow{Order: order}
		for _, o := range grouped[order.ID] {
			row.TotalPrint += o.TotalPrinting
			row.TotalPack += o.TotalPacking
			row.TotalDispatch += o.TotalDispatch
			row.TotalRejects += o.TotalRejects
		}
		row.RejectPct = RejectPct(row.TotalRejects, row.TotalPrint)
		rows = append(rows, row)
	}
	return rows
}

// RejectPct returns rejects as a percentage of printed units rounded to
// one decimal, or 0 when either count is zero.
func RejectPct(rejects, printed int) float64 {
	if rejects <= 0 || printed <= 0 {
		return 0
	}
	return decimal.NewFromInt(int64(rejects)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(printed))).
		Round(1).
		InexactFloat64()
}

// Efficiency returns printed units against the daily target as a whole
// percent, or 0 when the record has no target.
func Efficiency(record domain.DailyOutputRecord) int {
	if record.DailyTarget <= 0 {
		return 0
	}
	return int(decimal.NewFromInt(int64(record.TotalPrinting)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(record.DailyTarget))).
		Round(0).
		IntPart())
}
