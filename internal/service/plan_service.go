package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/andresuchdata/printfloor/internal/domain"
	"github.com/andresuchdata/printfloor/internal/lookup"
	"github.com/andresuchdata/printfloor/internal/repository"
	"github.com/rs/zerolog/log"
)

// PlanInput carries the scheduling fields of a loading plan.
type PlanInput struct {
	CutInDate      string `json:"cut_in_date"`
	ReceivedDate   string `json:"received_date"`
	DispatchedDate string `json:"dispatched_date"`
	TableNo        string `json:"table_no"`
	TargetPocket   string `json:"target_pocket"`
	TargetLogo     string `json:"target_logo"`
	TargetGraph    string `json:"target_graph"`
	Status         string `json:"status"`
}

func (in PlanInput) validate(verr *domain.ValidationError) domain.PlanStatus {
	if blank(in.TableNo) {
		verr.Add("tableNo", "Table No is required")
	}
	if blank(in.CutInDate) {
		verr.Add("cutInDate", "Cut In Date is required")
	} else {
		checkDate(verr, "cutInDate", in.CutInDate)
	}
	checkDate(verr, "receivedDate", in.ReceivedDate)
	checkDate(verr, "dispatchedDate", in.DispatchedDate)

	if blank(in.Status) {
		return domain.PlanPending
	}
	status, ok := domain.ParsePlanStatus(in.Status)
	if !ok {
		verr.Add("status", fmt.Sprintf("unknown status %q", in.Status))
	}
	return status
}

func (in PlanInput) apply(p domain.LoadingPlanItem, status domain.PlanStatus) domain.LoadingPlanItem {
	p.CutInDate = strings.TrimSpace(in.CutInDate)
	p.ReceivedDate = strings.TrimSpace(in.ReceivedDate)
	p.DispatchedDate = strings.TrimSpace(in.DispatchedDate)
	p.TableNo = strings.TrimSpace(in.TableNo)
	p.TargetPocket = strings.TrimSpace(in.TargetPocket)
	p.TargetLogo = strings.TrimSpace(in.TargetLogo)
	p.TargetGraph = strings.TrimSpace(in.TargetGraph)
	p.Status = status
	return p
}

type PlanService struct {
	store repository.Store
	opts  options
}

func NewPlanService(store repository.Store, opts ...Option) *PlanService {
	return &PlanService{store: store, opts: newOptions(opts)}
}

// CreatePlan schedules an existing order onto a table. The order's
// customer, style, quantity and PO number are copied onto the plan.
func (s *PlanService) CreatePlan(ctx context.Context, orderID string, in PlanInput) (domain.LoadingPlanItem, error) {
	var plan domain.LoadingPlanItem
	err := s.store.WithTx(ctx, func(tx repository.Tx) error {
		verr := &domain.ValidationError{}
		order, ok := tx.FindOrder(orderID)
		if !ok {
			verr.Add("orderId", "Please select an existing order")
		}
		status := in.validate(verr)
		if err := verr.OrNil(); err != nil {
			return err
		}

		plan = in.apply(domain.LoadingPlanItem{
			ID:       s.opts.newID(),
			OrderID:  order.ID,
			Customer: order.Customer,
			Style:    order.Style,
			POQty:    order.Qty,
			PONo:     order.PONo,
		}, status)
		tx.PrependPlan(plan)
		return nil
	})
	if err != nil {
		return domain.LoadingPlanItem{}, err
	}

	log.Debug().
		Str("plan_id", plan.ID).
		Str("order_id", plan.OrderID).
		Str("table_no", plan.TableNo).
		Msg("plans: plan created")
	return plan, nil
}

// UpdatePlan edits scheduling fields and status. The captured order
// fields are never refreshed.
func (s *PlanService) UpdatePlan(ctx context.Context, id string, in PlanInput) (domain.LoadingPlanItem, error) {
	verr := &domain.ValidationError{}
	status := in.validate(verr)
	if err := verr.OrNil(); err != nil {
		return domain.LoadingPlanItem{}, err
	}

	var plan domain.LoadingPlanItem
	err := s.store.WithTx(ctx, func(tx repository.Tx) error {
		current, ok := tx.FindPlan(id)
		if !ok {
			return fmt.Errorf("plan %s: %w", id, domain.ErrNotFound)
		}
		plan = in.apply(current, status)
		tx.ReplacePlan(plan)
		return nil
	})
	if err != nil {
		return domain.LoadingPlanItem{}, err
	}
	return plan, nil
}

func (s *PlanService) DeletePlan(ctx context.Context, id string) error {
	return s.store.WithTx(ctx, func(tx repository.Tx) error {
		if !tx.DeletePlan(id) {
			return fmt.Errorf("plan %s: %w", id, domain.ErrNotFound)
		}
		return nil
	})
}

func (s *PlanService) ListPlans(ctx context.Context) ([]domain.LoadingPlanItem, error) {
	var plans []domain.LoadingPlanItem
	err := s.store.View(ctx, func(tx repository.Tx) error {
		plans = tx.Plans()
		return nil
	})
	return plans, err
}

func (s *PlanService) SearchPlans(ctx context.Context, customer, style string) ([]domain.LoadingPlanItem, error) {
	plans, err := s.ListPlans(ctx)
	if err != nil {
		return nil, err
	}
	found := lookup.Find(plans, lookup.PlanKey, lookup.Key{Customer: customer, Style: style})
	if found == nil {
		found = []domain.LoadingPlanItem{}
	}
	return found, nil
}

func (s *PlanService) PlanCustomers(ctx context.Context) ([]string, error) {
	plans, err := s.ListPlans(ctx)
	if err != nil {
		return nil, err
	}
	return lookup.Customers(plans, lookup.PlanKey), nil
}

func (s *PlanService) PlanStyles(ctx context.Context, customer string) ([]string, error) {
	plans, err := s.ListPlans(ctx)
	if err != nil {
		return nil, err
	}
	return lookup.Styles(plans, lookup.PlanKey, customer), nil
}
