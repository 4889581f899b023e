// Package seed loads a JSON fixture into the stores through the same
// services the HTTP surface uses. Fixture records name each other with
// local refs; the store ids they receive are reported back.
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/andresuchdata/printfloor/internal/development"
	"github.com/andresuchdata/printfloor/internal/domain"
	"github.com/andresuchdata/printfloor/internal/ledger"
	"github.com/andresuchdata/printfloor/internal/repository"
	"github.com/andresuchdata/printfloor/internal/service"
	"github.com/rs/zerolog/log"
)

type Fixture struct {
	Orders      []OrderFixture       `json:"orders"`
	Plans       []PlanFixture        `json:"plans"`
	Outputs     []OutputFixture      `json:"outputs"`
	Downtime    []DowntimeFixture    `json:"downtime"`
	Development []DevelopmentFixture `json:"development"`
}

type OrderFixture struct {
	Ref string `json:"ref"`
	service.OrderInput
}

type PlanFixture struct {
	Ref      string `json:"ref"`
	OrderRef string `json:"order_ref"`
	service.PlanInput
}

// OutputFixture is one submitted shift. Hourly rows fill the grid slots in
// order; their time_slot labels are ignored.
type OutputFixture struct {
	PlanRef     string                    `json:"plan_ref"`
	Date        string                    `json:"date"`
	DailyTarget int                       `json:"daily_target"`
	Hourly      []domain.HourlyProduction `json:"hourly"`
}

type DowntimeFixture struct {
	Role  domain.Role `json:"role"`
	Actor string      `json:"actor"`
	service.DowntimeEntry
}

// DevelopmentFixture is a request and, optionally, the admin decision
// on it: "approve" or "reject".
type DevelopmentFixture struct {
	Ref      string `json:"ref"`
	Decision string `json:"decision"`
	development.Request
}

// Targets are the services a fixture is applied through.
type Targets struct {
	Store       repository.Store
	Orders      *service.OrderService
	Plans       *service.PlanService
	Downtime    *service.DowntimeService
	Development *development.Workflow
	// TimeSlots are the grid labels for fixture outputs; empty means the
	// default slots.
	TimeSlots []string
}

// Result maps fixture refs to the ids the records were stored under.
type Result struct {
	Orders      map[string]string
	Plans       map[string]string
	Development map[string]string
	Outputs     int
	Downtime    int
}

// ReadFile decodes a fixture file. Unknown fields are rejected.
func ReadFile(path string) (*Fixture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open fixture: %w", err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()

	var fx Fixture
	if err := dec.Decode(&fx); err != nil {
		return nil, fmt.Errorf("decode fixture %s: %w", path, err)
	}
	return &fx, nil
}

// Load reads the fixture at path and applies it.
func Load(ctx context.Context, path string, t Targets) (*Result, error) {
	fx, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	res, err := Apply(ctx, fx, t)
	if err != nil {
		return nil, fmt.Errorf("apply fixture %s: %w", path, err)
	}

	log.Info().
		Str("path", path).
		Int("orders", len(res.Orders)).
		Int("plans", len(res.Plans)).
		Int("outputs", res.Outputs).
		Int("downtime", res.Downtime).
		Int("development", len(res.Development)).
		Msg("seed: fixture loaded")
	return res, nil
}

// Apply stores the fixture records in file order: orders, plans, outputs,
// downtime, then development items. It stops at the first failure; records
// applied before it stay.
func Apply(ctx context.Context, fx *Fixture, t Targets) (*Result, error) {
	res := &Result{
		Orders:      make(map[string]string),
		Plans:       make(map[string]string),
		Development: make(map[string]string),
	}

	for i, o := range fx.Orders {
		order, err := t.Orders.CreateOrder(ctx, o.OrderInput)
		if err != nil {
			return res, fmt.Errorf("orders[%d]: %w", i, err)
		}
		res.Orders[refOr(o.Ref, i)] = order.ID
	}

	for i, p := range fx.Plans {
		orderID, ok := res.Orders[p.OrderRef]
		if !ok {
			return res, fmt.Errorf("plans[%d]: unknown order ref %q", i, p.OrderRef)
		}
		plan, err := t.Plans.CreatePlan(ctx, orderID, p.PlanInput)
		if err != nil {
			return res, fmt.Errorf("plans[%d]: %w", i, err)
		}
		res.Plans[refOr(p.Ref, i)] = plan.ID
	}

	for i, o := range fx.Outputs {
		if err := applyOutput(ctx, t, res, o); err != nil {
			return res, fmt.Errorf("outputs[%d]: %w", i, err)
		}
		res.Outputs++
	}

	for i, d := range fx.Downtime {
		if _, err := t.Downtime.Log(ctx, d.Role, d.Actor, d.DowntimeEntry); err != nil {
			return res, fmt.Errorf("downtime[%d]: %w", i, err)
		}
		res.Downtime++
	}

	for i, d := range fx.Development {
		item, err := t.Development.SubmitRequest(ctx, d.Request)
		if err != nil {
			return res, fmt.Errorf("development[%d]: %w", i, err)
		}
		res.Development[refOr(d.Ref, i)] = item.ID

		switch d.Decision {
		case "":
		case "approve":
			_, _, err = t.Development.Approve(ctx, item.ID, domain.RoleAdmin)
		case "reject":
			_, err = t.Development.Reject(ctx, item.ID, domain.RoleAdmin)
		default:
			err = fmt.Errorf("unknown decision %q", d.Decision)
		}
		if err != nil {
			return res, fmt.Errorf("development[%d]: %w", i, err)
		}
	}

	return res, nil
}

// applyOutput replays one shift through a ledger dated on the fixture date,
// so the record gets the same totals a live submission would.
func applyOutput(ctx context.Context, t Targets, res *Result, o OutputFixture) error {
	planID, ok := res.Plans[o.PlanRef]
	if !ok {
		return fmt.Errorf("unknown plan ref %q", o.PlanRef)
	}
	day, err := time.Parse(domain.DateLayout, o.Date)
	if err != nil {
		return domain.NewValidationError("date", "must be YYYY-MM-DD")
	}

	l := ledger.New(t.Store, t.TimeSlots, ledger.WithClock(func() time.Time { return day }))
	for slot, row := range o.Hourly {
		for _, field := range domain.CounterFields {
			if err := l.SetCounter(slot, field, strconv.Itoa(row.Get(field))); err != nil {
				return err
			}
		}
	}

	_, err = l.Submit(ctx, planID, o.DailyTarget)
	return err
}

func refOr(ref string, i int) string {
	if ref != "" {
		return ref
	}
	return "#" + strconv.Itoa(i)
}
