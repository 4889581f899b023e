package report

import (
	"context"

	"github.com/andresuchdata/printfloor/internal/domain"
	"github.com/andresuchdata/printfloor/internal/repository"
	"github.com/rs/zerolog/log"
)

// Engine serves report views from the live stores.
type Engine struct {
	store repository.Store
}

func NewEngine(store repository.Store) *Engine {
	return &Engine{store: store}
}

func (e *Engine) dataset(ctx context.Context) (Dataset, error) {
	var d Dataset
	err := e.store.View(ctx, func(tx repository.Tx) error {
		d = Dataset{
			Orders:   tx.Orders(),
			Plans:    tx.Plans(),
			Outputs:  tx.Outputs(),
			Downtime: tx.Downtime(),
		}
		return nil
	})
	return d, err
}

// Summary returns the per-order production summary.
func (e *Engine) Summary(ctx context.Context) ([]SummaryRow, error) {
	d, err := e.dataset(ctx)
	if err != nil {
		return nil, err
	}
	rows := Summary(d)
	log.Debug().Int("rows", len(rows)).Msg("report: summary built")
	return rows, nil
}

// Matrix returns the date pivot of production and dispatch.
func (e *Engine) Matrix(ctx context.Context) (Matrix, error) {
	d, err := e.dataset(ctx)
	if err != nil {
		return Matrix{}, err
	}
	m := BuildMatrix(d)
	log.Debug().Int("dates", len(m.Dates)).Int("rows", len(m.Rows)).Msg("report: matrix built")
	return m, nil
}

// DailyFloorSheet returns the floor sheet of planID on date.
func (e *Engine) DailyFloorSheet(ctx context.Context, date, planID string) (FloorSheet, error) {
	d, err := e.dataset(ctx)
	if err != nil {
		return FloorSheet{}, err
	}
	sheet := BuildFloorSheet(d, date, planID)
	log.Debug().
		Str("date", date).
		Str("plan_id", planID).
		Bool("found", sheet.Found).
		Msg("report: floor sheet built")
	return sheet, nil
}

// PlansForDate returns the plans with output on date.
func (e *Engine) PlansForDate(ctx context.Context, date string) ([]domain.LoadingPlanItem, error) {
	d, err := e.dataset(ctx)
	if err != nil {
		return nil, err
	}
	return PlansForDate(d, date), nil
}
