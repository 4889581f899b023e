// Package ledger turns a shift's hourly counter entries into immutable
// daily output records.
package ledger

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/andresuchdata/printfloor/internal/domain"
	"github.com/andresuchdata/printfloor/internal/repository"
	"github.com/rs/zerolog/log"
)

// Ledger owns the working grid of one production floor terminal.
type Ledger struct {
	mu       sync.Mutex
	store    repository.Store
	grid     *Grid
	editMode bool
	now      func() time.Time
	newID    domain.IDFunc
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithClock sets the clock used to date submitted records.
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

// WithIDFunc sets the record id generator.
func WithIDFunc(fn domain.IDFunc) Option {
	return func(l *Ledger) { l.newID = fn }
}

// New creates a ledger with one slot per label. The slot count is fixed for
// the ledger's lifetime; nil or empty labels select DefaultTimeSlots.
func New(store repository.Store, labels []string, opts ...Option) *Ledger {
	if len(labels) == 0 {
		labels = DefaultTimeSlots
	}
	l := &Ledger{
		store: store,
		grid:  NewGrid(labels),
		now:   time.Now,
		newID: domain.NewID,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Grid returns a copy of the working grid.
func (l *Ledger) Grid() []domain.HourlyProduction {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.grid.Snapshot()
}

// EditMode reports whether slot labels may currently be edited.
func (l *Ledger) EditMode() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.editMode
}

// SetCounter sets one counter from raw user input. Empty input means 0.
// Negative or non-numeric input is rejected and leaves the counter as is.
func (l *Ledger) SetCounter(slot int, field domain.CounterField, raw string) error {
	name := field
	field, ok := domain.ParseCounterField(string(name))
	if !ok {
		return domain.NewValidationError("field", fmt.Sprintf("unknown counter %q", name))
	}

	value, err := parseCount(raw)
	if err != nil {
		return domain.NewValidationError(string(field), err.Error())
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.grid.inRange(slot) {
		return domain.NewValidationError("slot", fmt.Sprintf("slot %d is outside 0..%d", slot, l.grid.Len()-1))
	}
	l.grid.set(slot, field, value)
	return nil
}

func parseCount(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", raw)
	}
	if v < 0 {
		return 0, fmt.Errorf("must not be negative")
	}
	return v, nil
}

// SetEditMode toggles slot label editing. Only an admin may switch it on.
func (l *Ledger) SetEditMode(role domain.Role, on bool) error {
	if on {
		if err := domain.RequireAdmin(role, "enable slot label editing"); err != nil {
			return err
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.editMode = on
	return nil
}

// SetSlotLabel renames a time slot. It requires an admin with edit mode on.
func (l *Ledger) SetSlotLabel(role domain.Role, slot int, text string) error {
	if err := domain.RequireAdmin(role, "edit slot label"); err != nil {
		return err
	}

	label := strings.TrimSpace(text)
	if label == "" {
		return domain.NewValidationError("label", "label is required")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.editMode {
		return fmt.Errorf("slot labels are locked, enable edit mode first: %w", domain.ErrPermissionDenied)
	}
	if !l.grid.inRange(slot) {
		return domain.NewValidationError("slot", fmt.Sprintf("slot %d is outside 0..%d", slot, l.grid.Len()-1))
	}
	l.grid.setLabel(slot, label)
	return nil
}

// Submit records the working grid against a plan for today's date.
//
// Either the record is stored and the grid counters are zeroed, or nothing
// changes. Slot labels survive the reset.
func (l *Ledger) Submit(ctx context.Context, planID string, dailyTarget int) (domain.DailyOutputRecord, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var record domain.DailyOutputRecord
	err := l.store.WithTx(ctx, func(tx repository.Tx) error {
		verr := &domain.ValidationError{}

		var plan domain.LoadingPlanItem
		if strings.TrimSpace(planID) == "" {
			verr.Add("customer", "customer is required")
			verr.Add("style", "style is required")
		} else if p, ok := tx.FindPlan(planID); ok {
			plan = p
		} else {
			verr.Add("style", fmt.Sprintf("plan %s does not exist", planID))
		}
		if dailyTarget <= 0 {
			verr.Add("dailyTarget", "daily target must be greater than zero")
		}
		if err := verr.OrNil(); err != nil {
			return err
		}

		hourly := l.grid.Snapshot()
		totals := domain.SumHourly(hourly)
		record = domain.DailyOutputRecord{
			ID:            l.newID(),
			PlanID:        plan.ID,
			Date:          l.now().Format(domain.DateLayout),
			Customer:      plan.Customer,
			Style:         plan.Style,
			DailyTarget:   dailyTarget,
			HourlyData:    hourly,
			TotalPrinting: totals.Printing,
			TotalPacking:  totals.Packing,
			TotalDispatch: totals.Dispatch,
			TotalRejects:  totals.Rejects,
		}
		tx.PrependOutput(record)
		return nil
	})
	if err != nil {
		return domain.DailyOutputRecord{}, err
	}

	l.grid.Reset()

	log.Debug().
		Str("record_id", record.ID).
		Str("plan_id", record.PlanID).
		Str("date", record.Date).
		Int("total_printing", record.TotalPrinting).
		Msg("ledger: daily output submitted")

	return record.Clone(), nil
}

// Outputs returns every submitted record, newest first.
func (l *Ledger) Outputs(ctx context.Context) ([]domain.DailyOutputRecord, error) {
	var outputs []domain.DailyOutputRecord
	err := l.store.View(ctx, func(tx repository.Tx) error {
		outputs = tx.Outputs()
		return nil
	})
	return outputs, err
}
