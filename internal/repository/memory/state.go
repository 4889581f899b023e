package memory

import (
	"slices"

	"github.com/andresuchdata/printfloor/internal/domain"
	"github.com/andresuchdata/printfloor/internal/repository"
)

type state struct {
	orders   []domain.Order
	plans    []domain.LoadingPlanItem
	outputs  []domain.DailyOutputRecord
	downtime []domain.DowntimeRecord
	devItems []domain.DevelopmentItem
}

// clone copies every backing array. Output hourly data is shared because
// output records are never modified after they are written.
func (s *state) clone() *state {
	return &state{
		orders:   slices.Clone(s.orders),
		plans:    slices.Clone(s.plans),
		outputs:  slices.Clone(s.outputs),
		downtime: slices.Clone(s.downtime),
		devItems: slices.Clone(s.devItems),
	}
}

type tx struct {
	s        *state
	readOnly bool
}

func (t *tx) mustWrite() {
	if t.readOnly {
		panic("memory: write inside a read-only transaction")
	}
}

func prepend[T any](items []T, item T) []T {
	return append([]T{item}, items...)
}

func find[T any](items []T, id func(T) string, want string) (int, bool) {
	i := slices.IndexFunc(items, func(v T) bool { return id(v) == want })
	return i, i >= 0
}

func orderID(o domain.Order) string                     { return o.ID }
func planID(p domain.LoadingPlanItem) string            { return p.ID }
func downtimeID(d domain.DowntimeRecord) string         { return d.ID }
func developmentItemID(d domain.DevelopmentItem) string { return d.ID }

func (t *tx) Orders() []domain.Order { return slices.Clone(t.s.orders) }

func (t *tx) FindOrder(id string) (domain.Order, bool) {
	i, ok := find(t.s.orders, orderID, id)
	if !ok {
		return domain.Order{}, false
	}
	return t.s.orders[i], true
}

func (t *tx) PrependOrder(order domain.Order) {
	t.mustWrite()
	t.s.orders = prepend(t.s.orders, order)
}

func (t *tx) ReplaceOrder(order domain.Order) bool {
	t.mustWrite()
	i, ok := find(t.s.orders, orderID, order.ID)
	if ok {
		t.s.orders[i] = order
	}
	return ok
}

func (t *tx) DeleteOrder(id string) bool {
	t.mustWrite()
	i, ok := find(t.s.orders, orderID, id)
	if ok {
		t.s.orders = slices.Delete(t.s.orders, i, i+1)
	}
	return ok
}

func (t *tx) Plans() []domain.LoadingPlanItem { return slices.Clone(t.s.plans) }

func (t *tx) FindPlan(id string) (domain.LoadingPlanItem, bool) {
	i, ok := find(t.s.plans, planID, id)
	if !ok {
		return domain.LoadingPlanItem{}, false
	}
	return t.s.plans[i], true
}

func (t *tx) PrependPlan(plan domain.LoadingPlanItem) {
	t.mustWrite()
	t.s.plans = prepend(t.s.plans, plan)
}

func (t *tx) ReplacePlan(plan domain.LoadingPlanItem) bool {
	t.mustWrite()
	i, ok := find(t.s.plans, planID, plan.ID)
	if ok {
		t.s.plans[i] = plan
	}
	return ok
}

func (t *tx) DeletePlan(id string) bool {
	t.mustWrite()
	i, ok := find(t.s.plans, planID, id)
	if ok {
		t.s.plans = slices.Delete(t.s.plans, i, i+1)
	}
	return ok
}

// Outputs returns deep copies so callers can never reach stored hourly data.
func (t *tx) Outputs() []domain.DailyOutputRecord {
	out := make([]domain.DailyOutputRecord, len(t.s.outputs))
	for i, r := range t.s.outputs {
		out[i] = r.Clone()
	}
	return out
}

func (t *tx) PrependOutput(record domain.DailyOutputRecord) {
	t.mustWrite()
	t.s.outputs = prepend(t.s.outputs, record.Clone())
}

func (t *tx) Downtime() []domain.DowntimeRecord { return slices.Clone(t.s.downtime) }

func (t *tx) FindDowntime(id string) (domain.DowntimeRecord, bool) {
	i, ok := find(t.s.downtime, downtimeID, id)
	if !ok {
		return domain.DowntimeRecord{}, false
	}
	return t.s.downtime[i], true
}

func (t *tx) PrependDowntime(record domain.DowntimeRecord) {
	t.mustWrite()
	t.s.downtime = prepend(t.s.downtime, record)
}

func (t *tx) ReplaceDowntime(record domain.DowntimeRecord) bool {
	t.mustWrite()
	i, ok := find(t.s.downtime, downtimeID, record.ID)
	if ok {
		t.s.downtime[i] = record
	}
	return ok
}

func (t *tx) DeleteDowntime(id string) bool {
	t.mustWrite()
	i, ok := find(t.s.downtime, downtimeID, id)
	if ok {
		t.s.downtime = slices.Delete(t.s.downtime, i, i+1)
	}
	return ok
}

func (t *tx) DevelopmentItems() []domain.DevelopmentItem { return slices.Clone(t.s.devItems) }

func (t *tx) FindDevelopmentItem(id string) (domain.DevelopmentItem, bool) {
	i, ok := find(t.s.devItems, developmentItemID, id)
	if !ok {
		return domain.DevelopmentItem{}, false
	}
	return t.s.devItems[i], true
}

func (t *tx) PrependDevelopmentItem(item domain.DevelopmentItem) {
	t.mustWrite()
	t.s.devItems = prepend(t.s.devItems, item)
}

func (t *tx) ReplaceDevelopmentItem(item domain.DevelopmentItem) bool {
	t.mustWrite()
	i, ok := find(t.s.devItems, developmentItemID, item.ID)
	if ok {
		t.s.devItems[i] = item
	}
	return ok
}

var _ repository.Tx = (*tx)(nil)
