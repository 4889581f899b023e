// internal/repository/repository.go
package repository

import (
	"context"

	"github.com/andresuchdata/printfloor/internal/domain"
)

// Store is the transactional entry point to the entity stores.
type Store interface {
	// WithTx runs fn against a working copy of the stores. The copy replaces
	// the stores only when fn returns nil, so either every write in fn lands
	// or none does.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// View runs fn against the current stores. fn must not write.
	View(ctx context.Context, fn func(tx Tx) error) error
}

// Tx exposes the entity stores inside a transaction. List methods return
// copies in store order, newest first.
type Tx interface {
	Orders() []domain.Order
	FindOrder(id string) (domain.Order, bool)
	PrependOrder(order domain.Order)
	ReplaceOrder(order domain.Order) bool
	DeleteOrder(id string) bool

	Plans() []domain.LoadingPlanItem
	FindPlan(id string) (domain.LoadingPlanItem, bool)
	PrependPlan(plan domain.LoadingPlanItem)
	ReplacePlan(plan domain.LoadingPlanItem) bool
	DeletePlan(id string) bool

	// Outputs are append-only.
	Outputs() []domain.DailyOutputRecord
	PrependOutput(record domain.DailyOutputRecord)

	Downtime() []domain.DowntimeRecord
	FindDowntime(id string) (domain.DowntimeRecord, bool)
	PrependDowntime(record domain.DowntimeRecord)
	ReplaceDowntime(record domain.DowntimeRecord) bool
	DeleteDowntime(id string) bool

	DevelopmentItems() []domain.DevelopmentItem
	FindDevelopmentItem(id string) (domain.DevelopmentItem, bool)
	PrependDevelopmentItem(item domain.DevelopmentItem)
	ReplaceDevelopmentItem(item domain.DevelopmentItem) bool
}
