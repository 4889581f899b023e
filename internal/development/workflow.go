// Package development runs the approval workflow that turns artwork
// requests into orders.
package development

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/andresuchdata/printfloor/internal/domain"
	"github.com/andresuchdata/printfloor/internal/lookup"
	"github.com/andresuchdata/printfloor/internal/repository"
	"github.com/rs/zerolog/log"
)

// Request is a new development submission.
type Request struct {
	Customer    string `json:"customer"`
	Style       string `json:"style"`
	Factory     string `json:"factory"`
	Color       string `json:"color"`
	RequestDate string `json:"request_date"`
	OrderDate   string `json:"order_date"`
	Image       string `json:"image"`
}

func (r Request) validate() error {
	verr := &domain.ValidationError{}
	required := []struct{ field, value, label string }{
		{"customer", r.Customer, "Customer"},
		{"style", r.Style, "Style"},
		{"factory", r.Factory, "Factory"},
		{"color", r.Color, "Color"},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			verr.Add(f.field, f.label+" is required")
		}
	}

	dates := []struct{ field, value, label string }{
		{"requestDate", r.RequestDate, "Request date"},
		{"orderDate", r.OrderDate, "Order date"},
	}
	for _, d := range dates {
		switch {
		case strings.TrimSpace(d.value) == "":
			verr.Add(d.field, d.label+" is required")
		case !isDate(d.value):
			verr.Add(d.field, d.label+" must be YYYY-MM-DD")
		}
	}

	if strings.TrimSpace(r.Image) == "" {
		verr.Add("image", "Artwork image is mandatory")
	}
	return verr.OrNil()
}

func isDate(s string) bool {
	_, err := time.Parse(domain.DateLayout, strings.TrimSpace(s))
	return err == nil
}

// Workflow moves development items from Pending to Approved or Rejected.
type Workflow struct {
	store repository.Store
	newID domain.IDFunc
}

// NewWorkflow creates a workflow over store. A nil newID selects domain.NewID.
func NewWorkflow(store repository.Store, newID domain.IDFunc) *Workflow {
	if newID == nil {
		newID = domain.NewID
	}
	return &Workflow{store: store, newID: newID}
}

// SubmitRequest stores a new Pending item.
func (w *Workflow) SubmitRequest(ctx context.Context, req Request) (domain.DevelopmentItem, error) {
	if err := req.validate(); err != nil {
		return domain.DevelopmentItem{}, err
	}

	item := domain.DevelopmentItem{
		ID:          w.newID(),
		Customer:    strings.TrimSpace(req.Customer),
		Style:       strings.TrimSpace(req.Style),
		Factory:     strings.TrimSpace(req.Factory),
		Color:       strings.TrimSpace(req.Color),
		RequestDate: strings.TrimSpace(req.RequestDate),
		OrderDate:   strings.TrimSpace(req.OrderDate),
		Image:       req.Image,
		Status:      domain.DevelopmentPending,
	}

	err := w.store.WithTx(ctx, func(tx repository.Tx) error {
		tx.PrependDevelopmentItem(item)
		return nil
	})
	if err != nil {
		return domain.DevelopmentItem{}, err
	}
	return item, nil
}

// Approve marks a Pending item Approved and adds an order for its
// customer, style and color in the same transaction.
func (w *Workflow) Approve(ctx context.Context, itemID string, role domain.Role) (domain.DevelopmentItem, domain.Order, error) {
	if err := domain.RequireAdmin(role, "approve development request"); err != nil {
		return domain.DevelopmentItem{}, domain.Order{}, err
	}

	var (
		item  domain.DevelopmentItem
		order domain.Order
	)
	err := w.store.WithTx(ctx, func(tx repository.Tx) error {
		var err error
		item, err = w.transition(tx, itemID, domain.DevelopmentApproved)
		if err != nil {
			return err
		}

		order = domain.Order{
			ID:       w.newID(),
			Customer: item.Customer,
			Style:    item.Style,
			Color:    item.Color,
		}
		tx.PrependOrder(order)
		return nil
	})
	if err != nil {
		return domain.DevelopmentItem{}, domain.Order{}, err
	}

	log.Debug().
		Str("item_id", item.ID).
		Str("order_id", order.ID).
		Str("style", item.Style).
		Msg("development: request approved, order created")

	return item, order, nil
}

// Reject marks a Pending item Rejected.
func (w *Workflow) Reject(ctx context.Context, itemID string, role domain.Role) (domain.DevelopmentItem, error) {
	if err := domain.RequireAdmin(role, "reject development request"); err != nil {
		return domain.DevelopmentItem{}, err
	}

	var item domain.DevelopmentItem
	err := w.store.WithTx(ctx, func(tx repository.Tx) error {
		var err error
		item, err = w.transition(tx, itemID, domain.DevelopmentRejected)
		return err
	})
	if err != nil {
		return domain.DevelopmentItem{}, err
	}

	log.Debug().Str("item_id", item.ID).Msg("development: request rejected")
	return item, nil
}

func (w *Workflow) transition(tx repository.Tx, itemID string, to domain.DevelopmentStatus) (domain.DevelopmentItem, error) {
	item, ok := tx.FindDevelopmentItem(itemID)
	if !ok {
		return domain.DevelopmentItem{}, fmt.Errorf("development item %s: %w", itemID, domain.ErrNotFound)
	}
	if item.Status.Terminal() {
		return domain.DevelopmentItem{}, fmt.Errorf("development item %s is already %s: %w", itemID, item.Status, domain.ErrInvalidState)
	}

	item.Status = to
	tx.ReplaceDevelopmentItem(item)
	return item, nil
}

// Items returns every development item, newest first.
func (w *Workflow) Items(ctx context.Context) ([]domain.DevelopmentItem, error) {
	var items []domain.DevelopmentItem
	err := w.store.View(ctx, func(tx repository.Tx) error {
		items = tx.DevelopmentItems()
		return nil
	})
	return items, err
}

// Artwork returns the first item for a customer and style.
func (w *Workflow) Artwork(ctx context.Context, customer, style string) (domain.DevelopmentItem, error) {
	var (
		item  domain.DevelopmentItem
		found bool
	)
	err := w.store.View(ctx, func(tx repository.Tx) error {
		item, found = lookup.First(tx.DevelopmentItems(), lookup.DevelopmentKey, lookup.Key{Customer: customer, Style: style})
		return nil
	})
	if err != nil {
		return domain.DevelopmentItem{}, err
	}
	if !found {
		return domain.DevelopmentItem{}, fmt.Errorf("artwork for %s / %s: %w", customer, style, domain.ErrNotFound)
	}
	return item, nil
}
