package report

import (
	"github.com/andresuchdata/printfloor/internal/domain"
	"github.com/shopspring/decimal"
)

// FloorSheet is the daily report of one plan's output on one date.
//
// Found is false when the plan has no output record on the date; the
// rest of the sheet is then empty. Downtime is floor-wide: every record
// on the date is listed, whichever job was running.
type FloorSheet struct {
	Date           string                    `json:"date"`
	PlanID         string                    `json:"plan_id"`
	Found          bool                      `json:"found"`
	Plan           *domain.LoadingPlanItem   `json:"plan,omitempty"`
	Output         *domain.DailyOutputRecord `json:"output,omitempty"`
	Totals         domain.HourlyProduction   `json:"totals"`
	Efficiency     int                       `json:"efficiency"`
	Downtime       []domain.DowntimeRecord   `json:"downtime"`
	TotalLossHours float64                   `json:"total_loss_hours"`
}

// BuildFloorSheet assembles the sheet for planID on date. When several
// output records match, the first in store order wins.
func BuildFloorSheet(d Dataset, date, planID string) FloorSheet {
	sheet := FloorSheet{
		Date:     date,
		PlanID:   planID,
		Downtime: []domain.DowntimeRecord{},
	}

	var output *domain.DailyOutputRecord
	for i := range d.Outputs {
		if d.Outputs[i].Date == date && d.Outputs[i].PlanID == planID {
			rec := d.Outputs[i].Clone()
			output = &rec
			break
		}
	}
	if output == nil {
		return sheet
	}

	sheet.Found = true
	sheet.Output = output
	sheet.Totals = domain.SumHourly(output.HourlyData)
	sheet.Totals.TimeSlot = "Total"
	sheet.Efficiency = Efficiency(*output)

	for i := range d.Plans {
		if d.Plans[i].ID == planID {
			plan := d.Plans[i]
			sheet.Plan = &plan
			break
		}
	}

	loss := decimal.Zero
	for _, rec := range d.Downtime {
		if rec.Date != date {
			continue
		}
		sheet.Downtime = append(sheet.Downtime, rec)
		loss = loss.Add(decimal.NewFromFloat(rec.Hours))
	}
	sheet.TotalLossHours = loss.InexactFloat64()

	return sheet
}

// PlansForDate returns the plans, in store order, that have at least one
// output record on date.
func PlansForDate(d Dataset, date string) []domain.LoadingPlanItem {
	onDate := make(map[string]struct{})
	for _, o := range d.Outputs {
		if o.Date == date {
			onDate[o.PlanID] = struct{}{}
		}
	}

	plans := make([]domain.LoadingPlanItem, 0)
	for _, p := range d.Plans {
		if _, ok := onDate[p.ID]; ok {
			plans = append(plans, p)
		}
	}
	return plans
}
