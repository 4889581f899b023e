// internal/domain/models.go
package domain

// DateLayout is the calendar date format used by every date field.
const DateLayout = "2006-01-02"

// Order is a customer purchase order for a style and quantity.
type Order struct {
	ID           string `json:"id"`
	Customer     string `json:"customer"`
	Buyer        string `json:"buyer"`
	Style        string `json:"style"`
	Color        string `json:"color"`
	PONo         string `json:"po_no"`
	Qty          int    `json:"qty"`
	DeliveryDate string `json:"delivery_date"`
	PSD          string `json:"psd"`
}

// LoadingPlanItem assigns an order to a print table.
//
// Customer, Style, POQty and PONo are captured from the order when the plan
// is created. They are a point-in-time snapshot and are not refreshed when
// the order is later edited or deleted.
type LoadingPlanItem struct {
	ID             string     `json:"id"`
	OrderID        string     `json:"order_id"`
	Customer       string     `json:"customer"`
	Style          string     `json:"style"`
	POQty          int        `json:"po_qty"`
	PONo           string     `json:"po_no,omitempty"`
	CutInDate      string     `json:"cut_in_date"`
	ReceivedDate   string     `json:"received_date"`
	DispatchedDate string     `json:"dispatched_date"`
	TableNo        string     `json:"table_no"`
	TargetPocket   string     `json:"target_pocket"`
	TargetLogo     string     `json:"target_logo"`
	TargetGraph    string     `json:"target_graph"`
	Status         PlanStatus `json:"status"`
}

// HourlyProduction holds the counters of one time slot.
type HourlyProduction struct {
	TimeSlot string `json:"time_slot"`
	Seating  int    `json:"seating"`
	Printing int    `json:"printing"`
	Curing   int    `json:"curing"`
	Checking int    `json:"checking"`
	Packing  int    `json:"packing"`
	Dispatch int    `json:"dispatch"`
	Rejects  int    `json:"rejects"`
}

// DailyOutputRecord is one shift's hourly output for a plan on a date.
// The totals are computed once when the record is written.
type DailyOutputRecord struct {
	ID            string             `json:"id"`
	PlanID        string             `json:"plan_id"`
	Date          string             `json:"date"`
	Customer      string             `json:"customer"`
	Style         string             `json:"style"`
	DailyTarget   int                `json:"daily_target"`
	HourlyData    []HourlyProduction `json:"hourly_data"`
	TotalPrinting int                `json:"total_printing"`
	TotalPacking  int                `json:"total_packing"`
	TotalDispatch int                `json:"total_dispatch"`
	TotalRejects  int                `json:"total_rejects"`
}

// Clone returns a copy of r that shares no memory with it.
func (r DailyOutputRecord) Clone() DailyOutputRecord {
	out := r
	out.HourlyData = append([]HourlyProduction(nil), r.HourlyData...)
	return out
}

// DowntimeRecord is a logged stoppage attributed to the whole floor for a date.
type DowntimeRecord struct {
	ID             string  `json:"id"`
	Date           string  `json:"date"`
	Category       string  `json:"category"`
	Hours          float64 `json:"hours"`
	Reason         string  `json:"reason"`
	AcknowledgedBy string  `json:"acknowledged_by"`
}

// DevelopmentItem is an artwork/style request awaiting admin approval.
type DevelopmentItem struct {
	ID          string            `json:"id"`
	Customer    string            `json:"customer"`
	Style       string            `json:"style"`
	Factory     string            `json:"factory"`
	Color       string            `json:"color"`
	RequestDate string            `json:"request_date"`
	OrderDate   string            `json:"order_date"`
	Image       string            `json:"image"`
	Status      DevelopmentStatus `json:"status"`
}
