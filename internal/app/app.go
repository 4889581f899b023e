// Package app wires the stores, services and engine of one production
// floor.
package app

import (
	"context"

	"github.com/andresuchdata/printfloor/internal/api"
	"github.com/andresuchdata/printfloor/internal/config"
	"github.com/andresuchdata/printfloor/internal/development"
	"github.com/andresuchdata/printfloor/internal/ledger"
	"github.com/andresuchdata/printfloor/internal/report"
	"github.com/andresuchdata/printfloor/internal/repository/memory"
	"github.com/andresuchdata/printfloor/internal/seed"
	"github.com/andresuchdata/printfloor/internal/service"
)

type App struct {
	DB        *memory.DB
	Services  *api.Services
	timeSlots []string
}

func New(cfg *config.Config) *App {
	db := memory.NewDB()
	return &App{
		DB: db,
		Services: &api.Services{
			Orders:      service.NewOrderService(db),
			Plans:       service.NewPlanService(db),
			Downtime:    service.NewDowntimeService(db),
			Ledger:      ledger.New(db, cfg.Ledger.TimeSlots),
			Development: development.NewWorkflow(db, nil),
			Reports:     report.NewEngine(db),
		},
		timeSlots: cfg.Ledger.TimeSlots,
	}
}

// Seed loads a fixture file into the app's stores.
func (a *App) Seed(ctx context.Context, path string) (*seed.Result, error) {
	return seed.Load(ctx, path, seed.Targets{
		Store:       a.DB,
		Orders:      a.Services.Orders,
		Plans:       a.Services.Plans,
		Downtime:    a.Services.Downtime,
		Development: a.Services.Development,
		TimeSlots:   a.timeSlots,
	})
}
